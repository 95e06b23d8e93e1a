package corpus

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stylescan/stylescan/domain"
)

// Load reads a YAML corpus file and flattens it into a domain.StyleCorpus,
// per spec.md's corpus schema: an optional `version`, an optional `tokens`
// mapping, an optional `components` mapping (each `base`/`parts`/`variants`),
// and arbitrary remaining top-level mappings treated as free-form "street"
// styles (spec.md §6, SPEC_FULL.md §4.9).
func Load(path string) (domain.StyleCorpus, error) {
	return LoadWithTheme(path, "")
}

// LoadWithTheme is Load, additionally resolving each token's themeOverrides
// entry for theme when present (spec.md §6's `--theme/-t` flag). An empty
// theme or a token with no override for it falls back to the token's base
// value.
func LoadWithTheme(path, theme string) (domain.StyleCorpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}
	return LoadBytesWithTheme(data, theme)
}

// LoadBytes parses raw YAML bytes into a StyleCorpus.
func LoadBytes(data []byte) (domain.StyleCorpus, error) {
	return LoadBytesWithTheme(data, "")
}

// LoadBytesWithTheme is LoadBytes with theme override resolution; see
// LoadWithTheme.
func LoadBytesWithTheme(data []byte, theme string) (domain.StyleCorpus, error) {
	root, err := LoadRoot(data)
	if err != nil {
		return nil, err
	}
	return flatten(root, theme), nil
}

// LoadRoot parses raw YAML bytes into the tagged-variant Value tree, without
// flattening — Validate uses this to inspect the document's raw shape.
func LoadRoot(data []byte) (Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return Value{}, domain.NewParseError("corpus", err)
	}
	root, err := lower(&node)
	if err != nil {
		return Value{}, domain.NewParseError("corpus", err)
	}
	return root, nil
}

// flatten lowers a parsed root Value into a StyleCorpus, resolving token
// values against theme (see LoadWithTheme).
func flatten(root Value, theme string) domain.StyleCorpus {
	if root.Kind != KindMapping {
		return domain.StyleCorpus{}
	}

	var corpus domain.StyleCorpus

	if tokens, ok := root.Get("tokens"); ok && tokens.Kind == KindMapping {
		rootRule := domain.Rule{Selector: ":root", Properties: domain.NewPropertyMap()}
		for pair := tokens.Mapping.Oldest(); pair != nil; pair = pair.Next() {
			if value, ok := scalarTokenValue(pair.Value, theme); ok {
				rootRule.Properties.Set(pair.Key, value)
			}
		}
		if rootRule.Properties.Len() > 0 {
			corpus = append(corpus, rootRule)
		}
	}

	componentNames := map[string]bool{"version": true, "tokens": true, "components": true}

	if components, ok := root.Get("components"); ok && components.Kind == KindMapping {
		for pair := components.Mapping.Oldest(); pair != nil; pair = pair.Next() {
			corpus = append(corpus, componentRules(pair.Key, pair.Value)...)
		}
	}

	for _, key := range root.Keys() {
		if componentNames[key] {
			continue
		}
		entry, _ := root.Get(key)
		if rule, ok := streetStyleRule(key, entry); ok {
			corpus = append(corpus, rule)
		}
	}

	return corpus
}

// scalarTokenValue extracts a token's effective value: the scalar itself, or
// the `value` field of a {value, themeOverrides} mapping — preferring
// themeOverrides[theme] when theme is non-empty and the override exists.
func scalarTokenValue(v Value, theme string) (string, bool) {
	if v.IsScalar() {
		return v.Scalar, true
	}
	if v.Kind != KindMapping {
		return "", false
	}
	if theme != "" {
		if overrides, ok := v.Get("themeOverrides"); ok && overrides.Kind == KindMapping {
			if override, ok := overrides.Get(theme); ok && override.IsScalar() {
				return override.Scalar, true
			}
		}
	}
	if inner, ok := v.Get("value"); ok && inner.IsScalar() {
		return inner.Scalar, true
	}
	return "", false
}

// componentRules expands one `components` entry into its base/parts/variants
// rules, named per spec.md's BEM-shaped selector convention.
func componentRules(name string, entry Value) domain.StyleCorpus {
	var rules domain.StyleCorpus

	if base, ok := entry.Get("base"); ok {
		if rule, ok := buildRule("."+name, base); ok {
			rules = append(rules, rule)
		}
	} else if rule, ok := buildRule("."+name, entry); ok {
		// A component with no explicit `base` key but direct
		// class/styles/media/states fields is treated as its own base.
		rules = append(rules, rule)
	}

	if parts, ok := entry.Get("parts"); ok && parts.Kind == KindMapping {
		for pair := parts.Mapping.Oldest(); pair != nil; pair = pair.Next() {
			if rule, ok := buildRule("."+name+"__"+pair.Key, pair.Value); ok {
				rules = append(rules, rule)
			}
		}
	}

	if variants, ok := entry.Get("variants"); ok && variants.Kind == KindMapping {
		for pair := variants.Mapping.Oldest(); pair != nil; pair = pair.Next() {
			if rule, ok := buildRule("."+name+"--"+pair.Key, pair.Value); ok {
				rules = append(rules, rule)
			}
		}
	}

	return rules
}

// streetStyleRule treats an arbitrary top-level mapping as a one-off
// component's base entry (spec.md: "treated identically to a one-off
// component for analysis").
func streetStyleRule(name string, entry Value) (domain.Rule, bool) {
	return buildRule("."+name, entry)
}

// buildRule constructs a Rule for selector from an entry shaped
// {class, styles, media, states}. Only `styles` (a sequence of single-entry
// property:value mappings) contributes properties; unrecognized or
// non-scalar values are skipped.
func buildRule(selector string, entry Value) (domain.Rule, bool) {
	styles, ok := entry.Get("styles")
	if !ok || styles.Kind != KindSequence {
		return domain.Rule{}, false
	}
	props := domain.NewPropertyMap()
	for _, decl := range styles.Sequence {
		if decl.Kind != KindMapping || decl.Mapping == nil {
			continue
		}
		pair := decl.Mapping.Oldest()
		if pair == nil || !pair.Value.IsScalar() {
			continue
		}
		props.Set(pair.Key, pair.Value.Scalar)
	}
	if props.Len() == 0 {
		return domain.Rule{}, false
	}
	return domain.Rule{Selector: selector, Properties: props}, true
}
