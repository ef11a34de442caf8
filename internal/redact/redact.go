// Package redact scrubs API key material out of text that is about to
// cross the trust boundary to the calling agent. Every error string
// returned from a tool handler or CLI command passes through here first.
package redact

import (
	"regexp"
	"strings"
)

// Placeholder replaces redacted values in outbound text.
const Placeholder = "REDACTED"

// The FEC API carries the key as an api_key query parameter, so a failed
// request URL embedded in an error message leaks it. Matches every
// occurrence, case-insensitively, including inside wrapped error chains.
var apiKeyParam = regexp.MustCompile(`(?i)(api_key=)[^&\s]+`)

// QueryParam masks the value of every api_key query parameter in text.
// The transform is pure and idempotent: the placeholder itself matches
// the value pattern and re-redacts to the same string.
func QueryParam(text string) string {
	return apiKeyParam.ReplaceAllString(text, "${1}"+Placeholder)
}

// Literal masks every occurrence of the given secret values anywhere in
// text. Values shorter than four characters are skipped so that a
// degenerate key cannot blank out unrelated output.
func Literal(text string, secrets ...string) string {
	result := text
	for _, secret := range secrets {
		if len(secret) > 3 {
			result = strings.ReplaceAll(result, secret, Placeholder)
		}
	}
	return result
}

// Error applies QueryParam to an error's message and returns the
// scrubbed text. Returns "" for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return QueryParam(err.Error())
}
