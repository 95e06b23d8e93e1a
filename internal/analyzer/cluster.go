package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stylescan/stylescan/domain"
)

// BuildClusters materializes the forest of Clusters from a miner's
// FrequentSets, walking them in their given order (already sorted per
// MineFrequentSets' ordering contract). A set whose properties are already
// claimed by an earlier cluster is skipped; a set that fails the support or
// cohesion gate is discarded and its properties remain unclaimed for later
// sets to try.
func BuildClusters(rules []domain.Rule, co *CoOccurrence, frequentSets []domain.FrequentSet, config domain.AnalysisConfig, logger domain.Logger) []*domain.Cluster {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	claimed := make(map[string]bool)
	var roots []*domain.Cluster
	idSeq := 0

	for _, fs := range frequentSets {
		if fs.Size() < 2 {
			continue
		}
		if allClaimed(fs.Properties, claimed) {
			continue
		}
		cluster := materializeCluster(fs.Properties, rules, co, config, &idSeq, 0, claimed, logger)
		if cluster == nil {
			continue
		}
		roots = append(roots, cluster)
		for _, p := range fs.Properties {
			claimed[p] = true
		}
	}
	return roots
}

func allClaimed(props []string, claimed map[string]bool) bool {
	for _, p := range props {
		if !claimed[p] {
			return false
		}
	}
	return true
}

// computeCohesion averages Jaccard(co, a, b) — co[a][b] / max(freq[a],
// freq[b]) over global corpus frequencies — over every ordered pair of
// distinct properties in props: the mean pairwise normalized co-occurrence
// the glossary defines cohesion as.
func computeCohesion(co *CoOccurrence, props []string) float64 {
	if len(props) < 2 {
		return 0
	}
	var sum float64
	var count int
	for i, a := range props {
		for j, b := range props {
			if i == j {
				continue
			}
			sum += Jaccard(co, a, b)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func rulesSuperset(rules []domain.Rule, props []string) []domain.Rule {
	var matching []domain.Rule
	for _, rule := range rules {
		if ruleHasAll(rule, props) {
			matching = append(matching, rule)
		}
	}
	return matching
}

func selectors(rules []domain.Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Selector
	}
	return out
}

func collectValues(rules []domain.Rule, props []string) map[string][]string {
	values := make(map[string][]string, len(props))
	for _, p := range props {
		for _, rule := range rules {
			if v, ok := rule.Properties.Get(p); ok {
				values[p] = append(values[p], v)
			}
		}
	}
	return values
}

// residualProperties returns the properties appearing across matching rules
// but outside props, deduplicated and sorted for deterministic iteration.
func residualProperties(matching []domain.Rule, props []string) []string {
	excluded := make(map[string]bool, len(props))
	for _, p := range props {
		excluded[p] = true
	}
	seen := make(map[string]bool)
	var residual []string
	for _, rule := range matching {
		for _, p := range rule.PropertyNames() {
			if excluded[p] || seen[p] {
				continue
			}
			seen[p] = true
			residual = append(residual, p)
		}
	}
	sort.Strings(residual)
	return residual
}

func synthesizeName(props []string) string {
	sorted := append([]string(nil), props...)
	sort.Strings(sorted)
	return strings.Join(sorted, "-") + "-cluster"
}

func materializeCluster(props []string, rules []domain.Rule, co *CoOccurrence, config domain.AnalysisConfig, idSeq *int, depth int, claimed map[string]bool, logger domain.Logger) *domain.Cluster {
	sorted := append([]string(nil), props...)
	sort.Strings(sorted)

	matching := rulesSuperset(rules, sorted)
	// A cluster describes a pattern repeated across rules; a single
	// supporting rule cannot itself be a pattern, regardless of how low
	// MinSupport is configured.
	if len(matching) < 2 || len(matching) < config.MinSupport {
		return nil
	}

	cohesion := computeCohesion(co, sorted)
	if cohesion < config.MinCohesion {
		return nil
	}
	if cohesion < 0 || cohesion > 1 {
		logger.Warn("cluster cohesion out of range", map[string]interface{}{"properties": sorted, "cohesion": cohesion})
		return nil
	}

	*idSeq++
	id := fmt.Sprintf("cluster-%d", *idSeq)
	values := collectValues(matching, sorted)
	residual := residualProperties(matching, sorted)
	children := buildChildren(matching, residual, co, config, idSeq, depth+1, claimed, logger)

	return &domain.Cluster{
		ID:         id,
		Name:       synthesizeName(sorted),
		Properties: sorted,
		Members:    selectors(matching),
		Values:     values,
		Cohesion:   cohesion,
		Support:    len(matching),
		Children:   children,
		Depth:      depth,
	}
}

// buildChildren partitions R into cohesive groups (Jaccard >= MinCohesion
// against a seed property), each becoming one child cluster over the same
// matching rule set. Groups are claimed against each other so the children
// form a partition of R, matching the cluster forest's disjointness
// invariant.
func buildChildren(matching []domain.Rule, residual []string, co *CoOccurrence, config domain.AnalysisConfig, idSeq *int, depth int, claimed map[string]bool, logger domain.Logger) []*domain.Cluster {
	if depth > config.MaxClusterDepth {
		return nil
	}

	localClaimed := make(map[string]bool)
	var children []*domain.Cluster

	for _, p := range residual {
		if localClaimed[p] || claimed[p] {
			continue
		}
		group := []string{p}
		for _, q := range residual {
			if q == p || localClaimed[q] || claimed[q] {
				continue
			}
			if Jaccard(co, p, q) >= config.MinCohesion {
				group = append(group, q)
			}
		}
		if len(group) < 2 {
			localClaimed[p] = true
			continue
		}
		for _, g := range group {
			localClaimed[g] = true
		}

		sort.Strings(group)
		cohesion := computeCohesion(co, group)
		if cohesion < config.MinCohesion {
			continue
		}

		*idSeq++
		id := fmt.Sprintf("cluster-%d", *idSeq)
		children = append(children, &domain.Cluster{
			ID:         id,
			Name:       synthesizeName(group),
			Properties: group,
			Members:    selectors(matching),
			Values:     collectValues(matching, group),
			Cohesion:   cohesion,
			Support:    len(matching),
			Children:   nil,
			Depth:      depth,
		})
	}
	return children
}
