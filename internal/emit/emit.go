// Package emit renders a StyleCorpus and its AnalysisResult into one of the
// engine's output dialects. Each dialect is its own file; Emit is the single
// dispatch point service.OutputFormatterImpl calls through.
package emit

import (
	"io"

	"github.com/stylescan/stylescan/domain"
)

// Emit writes corpus/result to w in the requested format.
func Emit(format domain.OutputFormat, corpus domain.StyleCorpus, result *domain.AnalysisResult, w io.Writer) error {
	switch format {
	case domain.OutputFormatCSS:
		return emitCSS(corpus, w, cssOptions{})
	case domain.OutputFormatSCSS:
		return emitSCSS(corpus, w)
	case domain.OutputFormatTailwind:
		return emitTailwind(corpus, result, w)
	case domain.OutputFormatTokens:
		return emitTokens(corpus, w)
	case domain.OutputFormatMarkdown:
		return emitMarkdown(result, w)
	case domain.OutputFormatJSON:
		return emitJSON(corpus, result, w)
	case domain.OutputFormatDOT:
		return emitDOT(result, w)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}
