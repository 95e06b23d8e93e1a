package analyzer

import (
	"math"
	"sort"

	"github.com/stylescan/stylescan/domain"
)

// flattenClusters returns every cluster in the forest, parents before
// children, in a stable pre-order walk.
func flattenClusters(roots []*domain.Cluster) []*domain.Cluster {
	var out []*domain.Cluster
	var walk func(c *domain.Cluster)
	walk = func(c *domain.Cluster) {
		out = append(out, c)
		for _, child := range c.Children {
			walk(child)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return out
}

// valueCounts tallies every value appearing anywhere in the corpus,
// regardless of which property declared it.
func valueCounts(rules []domain.Rule) map[string]int {
	counts := make(map[string]int)
	for _, rule := range rules {
		if rule.Properties == nil {
			continue
		}
		for pair := rule.Properties.Oldest(); pair != nil; pair = pair.Next() {
			counts[pair.Value]++
		}
	}
	return counts
}

// propertyValuePairKey identifies one (property, value) assignment.
type propertyValuePairKey struct {
	property string
	value    string
}

// sharedPairsByBlock finds, for each block with >= SharedStylesMinBlockMembers
// components, the (property, value) pairs common to at least two of them -
// the evidence for a SharedStyles suggestion.
func sharedPairsByBlock(rules []domain.Rule, components []domain.BemComponent) map[string][]propertyValuePairKey {
	byBlock := make(map[string][]domain.Rule)
	ruleBySelector := make(map[string]domain.Rule, len(rules))
	for _, r := range rules {
		ruleBySelector[r.Selector] = r
	}
	for _, c := range components {
		if c.Block == "" {
			continue
		}
		if r, ok := ruleBySelector[c.Selector]; ok {
			byBlock[c.Block] = append(byBlock[c.Block], r)
		}
	}

	result := make(map[string][]propertyValuePairKey)
	var blocks []string
	for b := range byBlock {
		blocks = append(blocks, b)
	}
	sort.Strings(blocks)

	for _, block := range blocks {
		members := byBlock[block]
		if len(members) < domain.SharedStylesMinBlockMembers {
			continue
		}
		counts := make(map[propertyValuePairKey]int)
		for _, rule := range members {
			if rule.Properties == nil {
				continue
			}
			for pair := rule.Properties.Oldest(); pair != nil; pair = pair.Next() {
				counts[propertyValuePairKey{pair.Key, pair.Value}]++
			}
		}
		var shared []propertyValuePairKey
		var keys []propertyValuePairKey
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].property != keys[j].property {
				return keys[i].property < keys[j].property
			}
			return keys[i].value < keys[j].value
		})
		for _, k := range keys {
			if counts[k] >= 2 {
				shared = append(shared, k)
			}
		}
		if len(shared) > 0 {
			result[block] = shared
		}
	}
	return result
}

// SynthesizeSuggestions merges cluster-derived, value-frequency-derived,
// and BEM-derived candidates into one ranked list.
func SynthesizeSuggestions(rules []domain.Rule, clusters []*domain.Cluster, components []domain.BemComponent, bemSuggestions []domain.Suggestion, config domain.AnalysisConfig) []domain.Suggestion {
	var suggestions []domain.Suggestion

	for _, c := range flattenClusters(clusters) {
		if c.Cohesion >= config.UtilityConfidenceThreshold && c.Support >= config.VariableFrequencyThreshold {
			suggestions = append(suggestions, domain.Suggestion{
				Kind:       domain.SuggestionUtility,
				Title:      "extract utility class for " + c.Name,
				Detail:     "properties travel together across all members",
				Confidence: c.Cohesion,
				Targets:    append([]string(nil), c.Members...),
			})
		}
		if c.Cohesion >= domain.MixinCohesionThreshold && len(c.Children) > 0 {
			suggestions = append(suggestions, domain.Suggestion{
				Kind:       domain.SuggestionMixin,
				Title:      "extract mixin for " + c.Name,
				Detail:     "cluster decomposes cleanly into sub-groups",
				Confidence: c.Cohesion,
				Targets:    append([]string(nil), c.Members...),
			})
		}
	}

	counts := valueCounts(rules)
	var values []string
	for v := range counts {
		values = append(values, v)
	}
	sort.Strings(values)
	for _, v := range values {
		count := counts[v]
		if count < config.VariableFrequencyThreshold {
			continue
		}
		suggestions = append(suggestions, domain.Suggestion{
			Kind:       domain.SuggestionVariable,
			Title:      "extract css variable for " + v,
			Detail:     "value repeated across the corpus",
			Confidence: math.Min(1.0, float64(count)/10.0),
			Targets:    nil,
		})
	}

	for block, pairs := range sharedPairsByBlock(rules, components) {
		targets := make([]string, 0, len(pairs))
		for _, p := range pairs {
			targets = append(targets, p.property+":"+p.value)
		}
		suggestions = append(suggestions, domain.Suggestion{
			Kind:       domain.SuggestionShared,
			Title:      "extract shared style for " + block,
			Detail:     "members declare identical property-value pairs",
			Confidence: 0.75,
			Targets:    targets,
		})
	}

	suggestions = append(suggestions, bemSuggestions...)

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Less(suggestions[j])
	})
	return suggestions
}
