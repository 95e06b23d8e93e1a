package emit

import (
	"fmt"
	"io"

	"github.com/stylescan/stylescan/domain"
)

// emitTokens renders only the corpus's :root rule, as CSS custom
// properties — the design-tokens-only dialect, useful for shipping a
// standalone variables file independent of component rules.
func emitTokens(corpus domain.StyleCorpus, w io.Writer) error {
	if _, err := fmt.Fprintf(w, ":root {\n"); err != nil {
		return domain.NewOutputError("writing tokens header", err)
	}
	for _, rule := range corpus {
		if rule.Selector != ":root" || rule.Properties == nil {
			continue
		}
		for pair := rule.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if _, err := fmt.Fprintf(w, "  --%s: %s;\n", pair.Key, pair.Value); err != nil {
				return domain.NewOutputError("writing token", err)
			}
		}
	}
	_, err := fmt.Fprintf(w, "}\n")
	if err != nil {
		return domain.NewOutputError("writing tokens footer", err)
	}
	return nil
}
