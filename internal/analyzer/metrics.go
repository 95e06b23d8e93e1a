package analyzer

import (
	"context"
	"sort"
	"strings"

	"github.com/stylescan/stylescan/domain"
)

func combinatorCount(selector string) int {
	count := strings.Count(selector, ">") + strings.Count(selector, "+")
	if fields := strings.Fields(selector); len(fields) > 1 {
		count += len(fields) - 1
	}
	return count
}

func specificity(selector string) int {
	return 100*strings.Count(selector, "#") +
		10*strings.Count(selector, ".") +
		10*strings.Count(selector, ":") +
		10*strings.Count(selector, "[")
}

func ruleComplexity(rule domain.Rule) float64 {
	propCount := 0
	nonStandard := 0
	if rule.Properties != nil {
		for pair := rule.Properties.Oldest(); pair != nil; pair = pair.Next() {
			propCount++
			if !IsStandardValue(strings.TrimSuffix(pair.Value, " !important")) {
				nonStandard++
			}
		}
	}
	return float64(propCount) + 0.5*float64(nonStandard) + 0.5*float64(combinatorCount(rule.Selector))
}

func hasImportant(rule domain.Rule) bool {
	if rule.Properties == nil {
		return false
	}
	for pair := rule.Properties.Oldest(); pair != nil; pair = pair.Next() {
		if strings.Contains(pair.Value, "!important") {
			return true
		}
	}
	return false
}

func topAndBottomProperties(freq map[string]int, n int) (top, bottom []domain.PropertyFrequency) {
	var all []domain.PropertyFrequency
	for p, c := range freq {
		all = append(all, domain.PropertyFrequency{Property: p, Count: c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Property < all[j].Property
	})
	if len(all) <= n {
		top = all
	} else {
		top = all[:n]
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count < all[j].Count
		}
		return all[i].Property < all[j].Property
	})
	if len(all) <= n {
		bottom = all
	} else {
		bottom = all[:n]
	}
	return top, bottom
}

func duplicationGroups(rules []domain.Rule, minSupport int) ([]domain.DuplicationGroup, float64) {
	type key struct{ property, value string }
	counts := make(map[key]int)
	for _, rule := range rules {
		if rule.Properties == nil {
			continue
		}
		for pair := rule.Properties.Oldest(); pair != nil; pair = pair.Next() {
			counts[key{pair.Key, pair.Value}]++
		}
	}

	var keys []key
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].property != keys[j].property {
			return keys[i].property < keys[j].property
		}
		return keys[i].value < keys[j].value
	})

	var groups []domain.DuplicationGroup
	var totalDuplicateOccurrences int
	for _, k := range keys {
		count := counts[k]
		if count >= minSupport {
			groups = append(groups, domain.DuplicationGroup{Property: k.property, Value: k.value, Occurrences: count})
			totalDuplicateOccurrences += count
		}
	}

	var ratio float64
	if len(rules) > 0 {
		ratio = float64(totalDuplicateOccurrences) / float64(len(rules))
	}
	return groups, ratio
}

// AggregateMetrics computes the corpus-level summary metrics. ctx is polled
// between rules; on cancellation the metrics computed so far for
// already-processed rules are still folded into the result.
func AggregateMetrics(ctx context.Context, rules []domain.Rule, freq map[string]int, frequentSetCount int, clusters []*domain.Cluster, components []domain.BemComponent, suggestions []domain.Suggestion, config domain.AnalysisConfig) domain.AnalysisMetrics {
	metrics := domain.AnalysisMetrics{
		RuleCount:         len(rules),
		FrequentSetCount:  frequentSetCount,
		ClusterCount:      len(flattenClusters(clusters)),
		BemComponentCount: len(components),
		SuggestionCount:   len(suggestions),
	}
	metrics.UniquePropertyCount = len(freq)

	var totalComplexity, totalSpecificity float64
	var importantCount int
	var processed int
rules:
	for _, rule := range rules {
		select {
		case <-ctx.Done():
			break rules
		default:
		}
		metrics.PropertyCount += len(rule.PropertyNames())
		totalComplexity += ruleComplexity(rule)
		totalSpecificity += float64(specificity(rule.Selector))
		if hasImportant(rule) {
			importantCount++
		}
		processed++
	}

	if processed > 0 {
		metrics.AverageComplexity = totalComplexity / float64(processed)
		metrics.AverageSpecificity = totalSpecificity / float64(processed)
	}

	metrics.MostUsedProperties, metrics.LeastUsedProperties = topAndBottomProperties(freq, 5)

	flat := flattenClusters(clusters)
	if len(flat) > 0 {
		var sum float64
		for _, c := range flat {
			sum += c.Cohesion
		}
		metrics.AverageCohesion = sum / float64(len(flat))
	}

	groups, ratio := duplicationGroups(rules, config.MinSupport)
	metrics.DuplicationGroups = groups
	metrics.DuplicationRatio = ratio

	var importantFraction float64
	if processed > 0 {
		importantFraction = float64(importantCount) / float64(processed)
	}
	metrics.MaintainabilityIndex = ((metrics.AverageCohesion + (1 - importantFraction) + (1 - metrics.AverageComplexity/100)) / 3) * 100

	return metrics
}
