package analyzer

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/stylescan/stylescan/domain"
)

// bemNamePattern matches conforming BEM tokens only: lowercase letters and
// digits, hyphen-separated. camelCase and snake_case names fall through to
// BemPartUnrecognized so the suggestion synthesizer can propose a rewrite.
const bemNamePattern = `[a-z][a-z0-9]*(?:-[a-z0-9]+)*`

var (
	bemElementModifierRe = regexp.MustCompile(`^(` + bemNamePattern + `)__(.+)--(` + bemNamePattern + `)$`)
	bemModifierRe        = regexp.MustCompile(`^(` + bemNamePattern + `)--(` + bemNamePattern + `)$`)
	bemElementRe          = regexp.MustCompile(`^(` + bemNamePattern + `)__(.+)$`)
	bemBlockRe            = regexp.MustCompile(`^` + bemNamePattern + `$`)
)

// ParseBemName classifies a selector into its BEM parts by matching
// ElementModifier, then Modifier, then Element, then Block in that order;
// the first pattern to match wins.
func ParseBemName(name string) (kind domain.BemPartKind, block, element, modifier string) {
	if m := bemElementModifierRe.FindStringSubmatch(name); m != nil {
		return domain.BemPartElementModifier, m[1], m[2], m[3]
	}
	if m := bemModifierRe.FindStringSubmatch(name); m != nil {
		return domain.BemPartModifier, m[1], "", m[2]
	}
	if m := bemElementRe.FindStringSubmatch(name); m != nil {
		return domain.BemPartElement, m[1], m[2], ""
	}
	if bemBlockRe.MatchString(name) {
		return domain.BemPartBlock, name, "", ""
	}
	return domain.BemPartUnrecognized, "", "", ""
}

var (
	classRefPattern = regexp.MustCompile(`\.([a-zA-Z][a-zA-Z0-9_-]*)`)
	varRefPattern   = regexp.MustCompile(`var\(--([a-zA-Z][a-zA-Z0-9_-]*)\)`)
)

// ExtractDependencies scans a value string for .cls class references and
// var(--x) custom property references, returning each referenced name once:
// every var() reference first, then every class reference, each group in
// order of appearance.
func ExtractDependencies(value string) []string {
	var deps []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			deps = append(deps, name)
		}
	}
	for _, m := range varRefPattern.FindAllStringSubmatch(value, -1) {
		add(m[1])
	}
	for _, m := range classRefPattern.FindAllStringSubmatch(value, -1) {
		add(m[1])
	}
	return deps
}

// ExtractBemComponents classifies every rule's selector and gathers its
// value-string dependencies, in corpus order.
func ExtractBemComponents(rules []domain.Rule) []domain.BemComponent {
	components := make([]domain.BemComponent, 0, len(rules))
	for _, rule := range rules {
		kind, block, element, modifier := ParseBemName(rule.Selector)

		seen := make(map[string]bool)
		var deps []string
		if rule.Properties != nil {
			for pair := rule.Properties.Oldest(); pair != nil; pair = pair.Next() {
				for _, d := range ExtractDependencies(pair.Value) {
					if !seen[d] {
						seen[d] = true
						deps = append(deps, d)
					}
				}
			}
		}

		components = append(components, domain.BemComponent{
			Selector:     rule.Selector,
			Kind:         kind,
			Block:        block,
			Element:      element,
			Modifier:     modifier,
			Dependencies: deps,
		})
	}
	return components
}

func propertySet(rule domain.Rule) map[string]bool {
	set := make(map[string]bool)
	for _, p := range rule.PropertyNames() {
		set[p] = true
	}
	return set
}

func jaccardSets(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	var intersection, union int
	union = len(a)
	for p := range b {
		if a[p] {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// BuildBemRelationships constructs the relationship graph over components
// per their parsed BEM structure and property-set similarity.
func BuildBemRelationships(rules []domain.Rule, components []domain.BemComponent, config domain.AnalysisConfig) []domain.BemRelationship {
	bySelector := make(map[string]domain.BemComponent, len(components))
	for _, c := range components {
		bySelector[c.Selector] = c
	}
	propsBySelector := make(map[string]map[string]bool, len(rules))
	for _, r := range rules {
		propsBySelector[r.Selector] = propertySet(r)
	}

	var relationships []domain.BemRelationship

	for _, c := range components {
		switch c.Kind {
		case domain.BemPartElement:
			if i := strings.LastIndex(c.Element, "__"); i >= 0 {
				if base, ok := bySelector[c.Block+"__"+c.Element[:i]]; ok {
					relationships = append(relationships, domain.BemRelationship{From: base.Selector, To: c.Selector, Kind: domain.BemRelationParent, Confidence: 1.0})
					break
				}
			}
			if base, ok := bySelector[c.Block]; ok && base.Kind == domain.BemPartBlock {
				relationships = append(relationships, domain.BemRelationship{From: base.Selector, To: c.Selector, Kind: domain.BemRelationParent, Confidence: 1.0})
			}
		case domain.BemPartModifier:
			if base, ok := bySelector[c.Block]; ok && base.Kind == domain.BemPartBlock {
				relationships = append(relationships, domain.BemRelationship{From: base.Selector, To: c.Selector, Kind: domain.BemRelationModifier, Confidence: 1.0})
			}
		case domain.BemPartElementModifier:
			baseSelector := c.Block + "__" + c.Element
			if base, ok := bySelector[baseSelector]; ok {
				relationships = append(relationships, domain.BemRelationship{From: base.Selector, To: c.Selector, Kind: domain.BemRelationElementModifier, Confidence: 1.0})
			} else if base, ok := bySelector[c.Block]; ok && base.Kind == domain.BemPartBlock {
				relationships = append(relationships, domain.BemRelationship{From: base.Selector, To: c.Selector, Kind: domain.BemRelationElementModifier, Confidence: 1.0})
			}
		}

		for _, dep := range c.Dependencies {
			if target, ok := bySelector[dep]; ok {
				relationships = append(relationships, domain.BemRelationship{From: c.Selector, To: target.Selector, Kind: domain.BemRelationComposition, Confidence: 0.8})
			}
		}
	}

	for i := 0; i < len(components); i++ {
		for j := i + 1; j < len(components); j++ {
			a, b := components[i], components[j]
			sim := jaccardSets(propsBySelector[a.Selector], propsBySelector[b.Selector])
			if sim >= config.StyleSimilarityExtension {
				relationships = append(relationships, domain.BemRelationship{From: a.Selector, To: b.Selector, Kind: domain.BemRelationExtension, Confidence: sim})
			}
		}
	}

	return relationships
}

var upperRe = regexp.MustCompile(`[A-Z]`)

// RewriteName turns a non-BEM-conforming name into a kebab-case candidate:
// camelCase is lowered to kebab-case, underscores become hyphens, triple
// hyphens collapse to double, and verbose modifier/variant/element
// prefixes are stripped.
func RewriteName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	rewritten := b.String()
	for _, prefix := range []string{"--modifier-", "--variant-", "__element-"} {
		rewritten = strings.ReplaceAll(rewritten, prefix, "--")
	}
	rewritten = strings.ReplaceAll(rewritten, "_", "-")
	for strings.Contains(rewritten, "---") {
		rewritten = strings.ReplaceAll(rewritten, "---", "--")
	}
	return rewritten
}

func modifierIsRelevant(concern string, props map[string]bool) bool {
	if concern == "state" {
		return true
	}
	for _, p := range domainModifierRelevantProperties()[concern] {
		for prop := range props {
			if strings.Contains(prop, p) {
				return true
			}
		}
	}
	return false
}

// domainModifierRelevantProperties mirrors domain's package-private
// modifierRelevantProperties table (concern -> property name substrings).
func domainModifierRelevantProperties() map[string][]string {
	return map[string][]string{
		"size":      {"width", "height", "size"},
		"color":     {"color", "background"},
		"layout":    {"display", "flex", "grid"},
		"alignment": {"align", "justify", "text"},
	}
}

// GenerateBemSuggestions builds the naming/structure suggestion candidates
// described in the BEM analyzer's taxonomy.
func GenerateBemSuggestions(ctx context.Context, rules []domain.Rule, components []domain.BemComponent, relationships []domain.BemRelationship, config domain.AnalysisConfig) []domain.Suggestion {
	propsBySelector := make(map[string]map[string]bool, len(rules))
	for _, r := range rules {
		propsBySelector[r.Selector] = propertySet(r)
	}

	blockComponents := make(map[string]domain.BemComponent)
	elementsByBlock := make(map[string]map[string]bool)
	modifiersByBlock := make(map[string]map[string]bool)
	for _, c := range components {
		switch c.Kind {
		case domain.BemPartBlock:
			blockComponents[c.Block] = c
		case domain.BemPartElement:
			if elementsByBlock[c.Block] == nil {
				elementsByBlock[c.Block] = make(map[string]bool)
			}
			elementsByBlock[c.Block][c.Element] = true
		case domain.BemPartModifier, domain.BemPartElementModifier:
			if modifiersByBlock[c.Block] == nil {
				modifiersByBlock[c.Block] = make(map[string]bool)
			}
			modifiersByBlock[c.Block][c.Modifier] = true
		}
	}

	var suggestions []domain.Suggestion

	for i, c := range components {
		select {
		case <-ctx.Done():
			return suggestions
		default:
		}

		if c.Kind == domain.BemPartUnrecognized {
			renamed := RewriteName(c.Selector)
			if renamed != c.Selector {
				suggestions = append(suggestions, domain.Suggestion{
					Kind:       domain.SuggestionNaming,
					Title:      "rename " + c.Selector,
					Detail:     c.Selector + " -> " + renamed,
					Confidence: 0.9,
					Targets:    []string{c.Selector},
				})
			}

			probablyElement := false
			for block, elements := range domain.CommonElements {
				for _, el := range elements {
					if strings.Contains(strings.ToLower(c.Selector), el) && strings.Contains(strings.ToLower(c.Selector), block) {
						probablyElement = true
					}
				}
			}
			if !probablyElement {
				for j, other := range components {
					if i == j {
						continue
					}
					if jaccardSets(propsBySelector[c.Selector], propsBySelector[other.Selector]) >= 0.5 {
						probablyElement = true
						break
					}
				}
			}
			if probablyElement {
				suggestions = append(suggestions, domain.Suggestion{
					Kind:       domain.SuggestionBemStructure,
					Title:      c.Selector + " looks like part of another component",
					Detail:     "consider renaming " + c.Selector + " to a block__element or block--modifier form",
					Confidence: 0.8,
					Targets:    []string{c.Selector},
				})
			}
		}
	}

	var blockNames []string
	for b := range blockComponents {
		blockNames = append(blockNames, b)
	}
	sort.Strings(blockNames)

	for _, block := range blockNames {
		if commonElements, ok := domain.CommonElements[block]; ok {
			have := elementsByBlock[block]
			for _, el := range commonElements {
				if have[el] {
					continue
				}
				suggestions = append(suggestions, domain.Suggestion{
					Kind:       domain.SuggestionCommonPattern,
					Title:      "add " + block + "__" + el,
					Detail:     block + " is missing the common element " + el,
					Confidence: 0.7,
					Targets:    []string{block},
				})
			}
		}

		props := propsBySelector[blockComponents[block].Selector]
		have := modifiersByBlock[block]
		var concerns []string
		for concern := range domain.CommonModifiers {
			concerns = append(concerns, concern)
		}
		sort.Strings(concerns)
		for _, concern := range concerns {
			if !modifierIsRelevant(concern, props) {
				continue
			}
			for _, mod := range domain.CommonModifiers[concern] {
				if have[mod] {
					continue
				}
				suggestions = append(suggestions, domain.Suggestion{
					Kind:       domain.SuggestionCommonPattern,
					Title:      "add " + block + "--" + mod,
					Detail:     block + " is missing the common modifier " + mod,
					Confidence: 0.6,
					Targets:    []string{block},
				})
			}
		}
	}

	for _, rel := range relationships {
		if rel.Kind != domain.BemRelationExtension {
			continue
		}
		sim := jaccardSets(propsBySelector[rel.From], propsBySelector[rel.To])
		suggestions = append(suggestions, domain.Suggestion{
			Kind:       domain.SuggestionRelationship,
			Title:      rel.From + " and " + rel.To + " are highly similar",
			Detail:     "consider linking " + rel.To + " as a modifier of " + rel.From,
			Confidence: sim,
			Targets:    []string{rel.From, rel.To},
		})
	}

	return suggestions
}
