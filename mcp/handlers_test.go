package mcp_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/stylescan/stylescan/mcp"
)

const handlerTestCorpus = `
tokens:
  primary-color: "#ff0000"
components:
  button:
    base:
      class: btn
      styles:
        - color: var(--primary-color)
`

func writeHandlerCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(handlerTestCorpus), 0o644))
	return path
}

func callAnalyzeStyles(t *testing.T, arguments map[string]interface{}) *mcplib.CallToolResult {
	t.Helper()
	handlers := mcp.NewHandlerSet(mcp.NewDependencies(nil, ""))
	request := mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{
			Name:      "analyze_styles",
			Arguments: arguments,
		},
	}
	result, err := handlers.HandleAnalyzeStyles(context.Background(), request)
	require.NoError(t, err)
	return result
}

func textOf(t *testing.T, result *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	tc, ok := result.Content[0].(mcplib.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return tc.Text
}

func TestHandleAnalyzeStyles_MissingPathArgument(t *testing.T) {
	result := callAnalyzeStyles(t, map[string]interface{}{})
	require.True(t, result.IsError)
}

func TestHandleAnalyzeStyles_NonexistentPath(t *testing.T) {
	result := callAnalyzeStyles(t, map[string]interface{}{"path": "/no/such/corpus.yaml"})
	require.True(t, result.IsError)
}

func TestHandleAnalyzeStyles_DefaultsToJSONReport(t *testing.T) {
	path := writeHandlerCorpus(t)
	result := callAnalyzeStyles(t, map[string]interface{}{"path": path})
	require.False(t, result.IsError)
	require.Contains(t, textOf(t, result), "corpus")
}

func TestHandleAnalyzeStyles_RendersRequestedFormat(t *testing.T) {
	path := writeHandlerCorpus(t)
	result := callAnalyzeStyles(t, map[string]interface{}{"path": path, "format": "css"})
	require.False(t, result.IsError)
	require.Contains(t, textOf(t, result), ".button")
}
