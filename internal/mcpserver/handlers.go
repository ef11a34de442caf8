package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/systmms/fecops/internal/credential"
	ferrors "github.com/systmms/fecops/internal/errors"
	"github.com/systmms/fecops/internal/fecapi"
)

// Default limits match the original tool contract: searches are
// broader, filing lists shorter.
const (
	defaultSearchLimit  = 20
	defaultFilingsLimit = 10
)

func (s *Server) handleSearchCommittees(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := validateArguments(searchCommitteesSchema, request.GetArguments()); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	query := request.GetString("query", "")
	limit := request.GetInt("limit", defaultSearchLimit)

	results, err := s.client.SearchCommittees(ctx, fecapi.SearchRequest{
		Query: query,
		Limit: limit,
	})
	if err != nil {
		return s.failure(err), nil
	}

	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No committees found matching '%s'", query)), nil
	}
	return s.jsonResult(results)
}

func (s *Server) handleGetFilings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := validateArguments(getFilingsSchema, request.GetArguments()); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	committeeID := request.GetString("committee_id", "")
	req := fecapi.FilingsRequest{
		CommitteeID:    committeeID,
		Limit:          request.GetInt("limit", defaultFilingsLimit),
		FormType:       request.GetString("form_type", ""),
		Cycle:          request.GetInt("cycle", 0),
		ReportType:     request.GetString("report_type", ""),
		Sort:           request.GetString("sort", fecapi.DefaultSort),
		MostRecentOnly: !request.GetBool("include_amended", false),
	}

	filings, err := s.client.GetFilings(ctx, req)
	if err != nil {
		return s.failure(err), nil
	}

	if len(filings) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No filings found for committee '%s'", committeeID)), nil
	}
	return s.jsonResult(filings)
}

// failure converts an internal error into a caller-safe result.
// Credential problems come back as setup guidance rather than an error
// flag: the agent should relay the instructions, not retry.
func (s *Server) failure(err error) *mcp.CallToolResult {
	var unavailable *credential.UnavailableError
	if errors.As(err, &unavailable) {
		return mcp.NewToolResultText(unavailable.Guidance())
	}
	if ferrors.IsValidation(err) {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(s.scrub("API error: " + err.Error()))
}

func (s *Server) jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(s.scrub("encoding results: " + err.Error())), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
