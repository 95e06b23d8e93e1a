package emit

import (
	"fmt"
	"io"

	"github.com/stylescan/stylescan/domain"
)

// emitTailwind renders the corpus's tokens as a Tailwind theme.extend
// fragment and appends the engine's utility-class suggestions as comments,
// so a human can decide which repeated declarations to promote into the
// Tailwind config themselves.
func emitTailwind(corpus domain.StyleCorpus, result *domain.AnalysisResult, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "module.exports = {\n  theme: {\n    extend: {\n      colors: {},\n      spacing: {\n"); err != nil {
		return domain.NewOutputError("writing tailwind header", err)
	}
	for _, rule := range corpus {
		if rule.Selector != ":root" || rule.Properties == nil {
			continue
		}
		for pair := rule.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if _, err := fmt.Fprintf(w, "        '%s': '%s',\n", pair.Key, pair.Value); err != nil {
				return domain.NewOutputError("writing tailwind token", err)
			}
		}
	}
	if _, err := fmt.Fprintf(w, "      },\n    },\n  },\n};\n"); err != nil {
		return domain.NewOutputError("writing tailwind footer", err)
	}

	if result == nil {
		return nil
	}
	var wrote bool
	for _, s := range result.Suggestions {
		if s.Kind != domain.SuggestionUtility {
			continue
		}
		if !wrote {
			if _, err := fmt.Fprintf(w, "\n// Suggested utility classes:\n"); err != nil {
				return domain.NewOutputError("writing tailwind suggestions header", err)
			}
			wrote = true
		}
		if _, err := fmt.Fprintf(w, "// %s: %s\n", s.Title, s.Detail); err != nil {
			return domain.NewOutputError("writing tailwind suggestion", err)
		}
	}
	return nil
}
