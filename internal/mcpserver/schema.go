package mcpserver

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Argument schemas validated before any credential or network access.
// Stricter than the advertised tool schemas: unknown keys are rejected
// here so a malformed call never reaches the query layer. Limits are
// deliberately unbounded above — values over 100 are clamped by the
// query client, not rejected.

var searchCommitteesSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"query": map[string]interface{}{"type": "string", "minLength": 1},
		"limit": map[string]interface{}{"type": "integer", "minimum": 1},
	},
	"required":             []interface{}{"query"},
	"additionalProperties": false,
}

var getFilingsSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"committee_id":    map[string]interface{}{"type": "string", "minLength": 1},
		"limit":           map[string]interface{}{"type": "integer", "minimum": 1},
		"form_type":       map[string]interface{}{"type": "string"},
		"cycle":           map[string]interface{}{"type": "integer"},
		"report_type":     map[string]interface{}{"type": "string"},
		"sort":            map[string]interface{}{"type": "string"},
		"include_amended": map[string]interface{}{"type": "boolean"},
	},
	"required":             []interface{}{"committee_id"},
	"additionalProperties": false,
}

// validateArguments checks a raw argument map against a tool's schema.
// Returns a caller-safe message listing every violation.
func validateArguments(schema map[string]interface{}, args map[string]interface{}) error {
	if args == nil {
		args = map[string]interface{}{}
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(args),
	)
	if err != nil {
		return fmt.Errorf("validating arguments: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid arguments: %s", strings.Join(problems, "; "))
}
