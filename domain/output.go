package domain

import "io"

// OutputFormat represents a target stylesheet dialect or report format.
type OutputFormat string

const (
	OutputFormatCSS      OutputFormat = "css"
	OutputFormatSCSS     OutputFormat = "scss"
	OutputFormatTailwind OutputFormat = "tailwind"
	OutputFormatTokens   OutputFormat = "tokens"
	OutputFormatMarkdown OutputFormat = "md"
	OutputFormatJSON     OutputFormat = "json"
	OutputFormatDOT      OutputFormat = "dot"
)

// ReportWriter abstracts writing reports to a destination (file or writer)
// and handling side-effects like opening a generated stylesheet for preview.
//
// Implementations live in the service layer.
type ReportWriter interface {
	// Write writes formatted content using the provided writeFunc.
	// - If outputPath is non-empty, implementations should create/truncate the file
	//   at that path and pass the file as the writer to writeFunc.
	// - If outputPath is empty, implementations should pass the provided writer to writeFunc.
	// Implementations may emit user-facing status messages (e.g., file paths).
	Write(writer io.Writer, outputPath string, format OutputFormat, writeFunc func(io.Writer) error) error
}
