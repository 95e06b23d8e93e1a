package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/stylescan/stylescan/app"
	"github.com/stylescan/stylescan/domain"
)

// HandleAnalyzeStyles handles the analyze_styles tool: it resolves path to
// corpus files, runs the engine, and renders the result in the requested
// dialect (json by default, a machine-readable findings report).
func (h *HandlerSet) HandleAnalyzeStyles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return mcp.NewToolResultError("path parameter is required and must be a string"), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return mcp.NewToolResultError(fmt.Sprintf("path does not exist: %s", path)), nil
	}

	format := domain.OutputFormatJSON
	if f, ok := args["format"].(string); ok && f != "" {
		format = domain.OutputFormat(f)
	}

	theme, _ := args["theme"].(string)

	validate := true
	if v, ok := args["validate"].(bool); ok {
		validate = v
	}

	cfg := h.deps.Config()
	useCase := h.deps.BuildAnalyzeUseCase()

	req := app.AnalyzeRequest{
		Paths:           []string{path},
		IncludePatterns: cfg.Files.IncludePatterns,
		ExcludePatterns: cfg.Files.ExcludePatterns,
		Theme:           theme,
		Config:          cfg.Analysis.ToDomain(),
		Format:          format,
		Validate:        validate,
	}

	resp, err := useCase.Execute(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("style analysis failed: %v", err)), nil
	}

	rendered, err := useCase.Render(resp, format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render %s output: %v", format, err)), nil
	}

	return mcp.NewToolResultText(rendered), nil
}
