// Package mcpserver exposes the FEC query operations as MCP tools over
// stdio. This is the trust boundary: the calling agent sees tool
// results and sanitized error text, never the API key. Every outbound
// error string is scrubbed before it is handed to the transport.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/systmms/fecops/internal/credential"
	"github.com/systmms/fecops/internal/fecapi"
	"github.com/systmms/fecops/internal/logging"
	"github.com/systmms/fecops/internal/redact"
)

// serverName identifies this MCP server to the harness.
const serverName = "fec-api"

// Server wires the credential resolver and query client into MCP tool
// handlers. Handlers hold no per-invocation state; the only shared
// mutable state is the resolver's memoized key.
type Server struct {
	mcp      *server.MCPServer
	resolver *credential.Resolver
	client   *fecapi.Client
	logger   *logging.Logger
}

// New builds the server and registers its tools.
func New(version string, resolver *credential.Resolver, client *fecapi.Client, logger *logging.Logger) *Server {
	s := &Server{
		mcp: server.NewMCPServer(serverName, version,
			server.WithToolCapabilities(false),
		),
		resolver: resolver,
		client:   client,
		logger:   logger,
	}
	s.registerTools()
	return s
}

// ServeStdio runs the server over stdin/stdout until the harness
// disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("search_committees",
			mcp.WithDescription(
				"Search for FEC committees by name. Returns committee IDs that can "+
					"be used with get_filings. Requires an FEC API key configured in "+
					"the system keyring."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(true),
			mcp.WithString("query",
				mcp.Description("Committee name or partial name to search for"),
				mcp.Required(),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results (default: 20, values above 100 are clamped)"),
				mcp.Min(1),
				mcp.DefaultNumber(defaultSearchLimit),
			),
		),
		s.handleSearchCommittees,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_filings",
			mcp.WithDescription(
				"Get FEC filings for a committee. Returns filing IDs, dates, and "+
					"financial summaries. Use search_committees first to find the "+
					"committee ID. Requires an FEC API key configured in the system "+
					"keyring."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(true),
			mcp.WithString("committee_id",
				mcp.Description("FEC committee ID (e.g. C00089482)"),
				mcp.Required(),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results (default: 10, values above 100 are clamped)"),
				mcp.Min(1),
				mcp.DefaultNumber(defaultFilingsLimit),
			),
			mcp.WithString("form_type",
				mcp.Description("Filter by form type (F3, F3P, F3X)"),
			),
			mcp.WithNumber("cycle",
				mcp.Description("Filter by two-year election cycle (e.g. 2024)"),
			),
			mcp.WithString("report_type",
				mcp.Description("Filter by report type (Q1, Q2, Q3, MY, YE, 12G, 30G)"),
			),
			mcp.WithString("sort",
				mcp.Description("Sort field with optional '-' prefix for descending (default: -receipt_date)"),
				mcp.DefaultString(fecapi.DefaultSort),
			),
			mcp.WithBoolean("include_amended",
				mcp.Description("Include superseded amendments (default: false)"),
				mcp.DefaultBool(false),
			),
		),
		s.handleGetFilings,
	)
}

// scrub sanitizes text about to cross the trust boundary: the api_key
// query parameter pattern first, then the literal resolved key if one
// is memoized. No error path may bypass this.
func (s *Server) scrub(text string) string {
	return s.resolver.Redact(redact.QueryParam(text))
}
