package emit

import (
	"fmt"
	"io"

	"github.com/stylescan/stylescan/domain"
	"github.com/stylescan/stylescan/internal/reporter"
)

// emitMarkdown renders the analysis result as a Markdown report, grounded
// on pyscn's ComplexityReporter text-rendering idiom (summary stats
// followed by a ranked table), adapted to Markdown syntax.
func emitMarkdown(result *domain.AnalysisResult, w io.Writer) error {
	if result == nil {
		return domain.NewOutputError("markdown emit requires an analysis result", nil)
	}
	report := reporter.BuildReport(result, nil)
	if _, err := fmt.Fprint(w, report.FormatMarkdown()); err != nil {
		return domain.NewOutputError("writing markdown report", err)
	}
	return nil
}
