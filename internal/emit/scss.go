package emit

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/stylescan/stylescan/domain"
)

// emitSCSS renders :root tokens as SCSS variables and nests each
// component's elements/modifiers under their block using the `&__x`/`&--x`
// parent-selector syntax, mirroring the BEM convention corpus.Load uses to
// flatten components in the first place.
func emitSCSS(corpus domain.StyleCorpus, w io.Writer) error {
	blocks := make(map[string]*scssBlock)
	var blockOrder []string

	for _, rule := range corpus {
		if rule.Selector == ":root" {
			if err := emitSCSSVariables(rule, w); err != nil {
				return err
			}
			continue
		}

		base, suffix, kind := splitBemSelector(rule.Selector)
		block, ok := blocks[base]
		if !ok {
			block = &scssBlock{selector: base}
			blocks[base] = block
			blockOrder = append(blockOrder, base)
		}
		switch kind {
		case bemBase:
			block.base = rule
		case bemElement:
			block.elements = append(block.elements, nestedRule{suffix, rule})
		case bemModifier:
			block.modifiers = append(block.modifiers, nestedRule{suffix, rule})
		}
	}

	sort.Strings(blockOrder)
	for _, base := range blockOrder {
		if err := blocks[base].write(w); err != nil {
			return domain.NewOutputError("writing scss block", err)
		}
	}
	return nil
}

type bemKind int

const (
	bemBase bemKind = iota
	bemElement
	bemModifier
)

// splitBemSelector decomposes a `.block`, `.block__part`, or
// `.block--variant` selector produced by corpus.Load back into its base
// class and suffix.
func splitBemSelector(selector string) (base, suffix string, kind bemKind) {
	if i := strings.Index(selector, "__"); i >= 0 {
		return selector[:i], selector[i+2:], bemElement
	}
	if i := strings.Index(selector, "--"); i >= 0 {
		return selector[:i], selector[i+2:], bemModifier
	}
	return selector, "", bemBase
}

type nestedRule struct {
	suffix string
	rule   domain.Rule
}

type scssBlock struct {
	selector  string
	base      domain.Rule
	elements  []nestedRule
	modifiers []nestedRule
}

func (b *scssBlock) write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s {\n", b.selector); err != nil {
		return err
	}
	if b.base.Properties != nil {
		for pair := b.base.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if _, err := fmt.Fprintf(w, "  %s: %s;\n", pair.Key, pair.Value); err != nil {
				return err
			}
		}
	}
	for _, e := range b.elements {
		if err := writeNested(w, "__"+e.suffix, e.rule); err != nil {
			return err
		}
	}
	for _, m := range b.modifiers {
		if err := writeNested(w, "--"+m.suffix, m.rule); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "}\n\n")
	return err
}

func writeNested(w io.Writer, suffix string, rule domain.Rule) error {
	if _, err := fmt.Fprintf(w, "  &%s {\n", suffix); err != nil {
		return err
	}
	if rule.Properties != nil {
		for pair := rule.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if _, err := fmt.Fprintf(w, "    %s: %s;\n", pair.Key, pair.Value); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "  }\n")
	return err
}

func emitSCSSVariables(rootRule domain.Rule, w io.Writer) error {
	if rootRule.Properties == nil {
		return nil
	}
	for pair := rootRule.Properties.Oldest(); pair != nil; pair = pair.Next() {
		if _, err := fmt.Fprintf(w, "$%s: %s;\n", pair.Key, pair.Value); err != nil {
			return domain.NewOutputError("writing scss variable", err)
		}
	}
	_, err := fmt.Fprintf(w, "\n")
	return err
}
