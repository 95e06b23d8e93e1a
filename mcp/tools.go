package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// HandlerSet groups the handlers that close over a Dependencies instance,
// mirroring pyscn's pattern of binding tool functions to shared services
// before registration.
type HandlerSet struct {
	deps *Dependencies
}

// NewHandlerSet constructs a HandlerSet bound to deps.
func NewHandlerSet(deps *Dependencies) *HandlerSet {
	return &HandlerSet{deps: deps}
}

// RegisterTools registers the analyze_styles MCP tool with the server.
func RegisterTools(s *server.MCPServer, handlers *HandlerSet) {
	s.AddTool(mcp.NewTool("analyze_styles",
		mcp.WithDescription("Analyze a YAML style corpus: clusters duplicated property sets, "+
			"suggests shared classes/variables, flags BEM-naming and utility-duplication "+
			"anti-patterns, and can render the corpus as css, scss, tailwind, tokens, md, json, or dot"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to a corpus YAML file or a directory of them")),
		mcp.WithString("format",
			mcp.WithStringEnumItems([]string{"css", "scss", "tailwind", "tokens", "md", "json", "dot"}),
			mcp.Description("Output dialect to render (default: json, a machine-readable findings report)")),
		mcp.WithString("theme",
			mcp.Description("Resolve token themeOverrides for this theme (default: none)")),
		mcp.WithBoolean("validate",
			mcp.Description("Also run schema validation and include warnings (default: true)")),
	), handlers.HandleAnalyzeStyles)
}
