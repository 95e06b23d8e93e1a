package emit

import (
	"fmt"
	"io"

	"github.com/stylescan/stylescan/domain"
)

// cssOptions tunes plain-CSS rendering; minification belongs to the CLI
// layer (it strips the writer's own formatting after the fact), so this
// stays a single always-formatted renderer.
type cssOptions struct{}

// emitCSS renders a corpus as plain CSS, one rule block per selector in
// corpus order.
func emitCSS(corpus domain.StyleCorpus, w io.Writer, _ cssOptions) error {
	for _, rule := range corpus {
		if err := writeRuleBlock(w, rule.Selector, rule); err != nil {
			return domain.NewOutputError("writing css rule", err)
		}
	}
	return nil
}

func writeRuleBlock(w io.Writer, selector string, rule domain.Rule) error {
	if _, err := fmt.Fprintf(w, "%s {\n", selector); err != nil {
		return err
	}
	if rule.Properties != nil {
		for pair := rule.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if _, err := fmt.Fprintf(w, "  %s: %s;\n", pair.Key, pair.Value); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "}\n\n")
	return err
}
