package analyzer

import (
	"context"
	"sort"
	"strings"

	"github.com/stylescan/stylescan/domain"
)

// itemset is a canonically sorted set of property names, plus the cached
// join used as a map key for dedup.
type itemset struct {
	props []string
	key   string
}

func newItemset(props []string) itemset {
	sorted := append([]string(nil), props...)
	sort.Strings(sorted)
	return itemset{props: sorted, key: strings.Join(sorted, "\x00")}
}

func unionItemset(a, b itemset) itemset {
	seen := make(map[string]struct{}, len(a.props)+len(b.props))
	merged := make([]string, 0, len(a.props)+len(b.props))
	for _, p := range a.props {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			merged = append(merged, p)
		}
	}
	for _, p := range b.props {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			merged = append(merged, p)
		}
	}
	return newItemset(merged)
}

// ruleHasAll reports whether rule declares every property in props.
func ruleHasAll(rule domain.Rule, props []string) bool {
	for _, p := range props {
		if !rule.HasProperty(p) {
			return false
		}
	}
	return true
}

// supportOf returns the supporting rules' selectors for props, in corpus
// order.
func supportOf(rules []domain.Rule, props []string) []string {
	var selectors []string
	for _, rule := range rules {
		if ruleHasAll(rule, props) {
			selectors = append(selectors, rule.Selector)
		}
	}
	return selectors
}

// MineFrequentSets enumerates property sets whose support meets
// config.MinSupport, level by level from k=1 up to config.MaxItemsetSize.
// ctx is polled between levels; on cancellation the sets found so far are
// returned with no error.
func MineFrequentSets(ctx context.Context, rules []domain.Rule, freq map[string]int, config domain.AnalysisConfig) []domain.FrequentSet {
	if len(rules) == 0 {
		return nil
	}

	var all []domain.FrequentSet

	// Level 1.
	var level []itemset
	names := make([]string, 0, len(freq))
	for p := range freq {
		names = append(names, p)
	}
	sort.Strings(names)
	for _, p := range names {
		if freq[p] >= config.MinSupport {
			level = append(level, newItemset([]string{p}))
		}
	}
	all = append(all, materialize(rules, level)...)

	for k := 2; len(level) > 0 && k <= config.MaxItemsetSize; k++ {
		select {
		case <-ctx.Done():
			return orderFrequentSets(all)
		default:
		}

		candidates := make(map[string]itemset)
		for i := 0; i < len(level); i++ {
			for j := i + 1; j < len(level); j++ {
				u := unionItemset(level[i], level[j])
				if len(u.props) != k {
					continue
				}
				if _, ok := candidates[u.key]; !ok {
					candidates[u.key] = u
				}
			}
		}

		var next []itemset
		keys := make([]string, 0, len(candidates))
		for key := range candidates {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			cand := candidates[key]
			selectors := supportOf(rules, cand.props)
			if len(selectors) >= config.MinSupport {
				next = append(next, cand)
			}
		}
		all = append(all, materialize(rules, next)...)
		level = next
	}

	return orderFrequentSets(all)
}

func materialize(rules []domain.Rule, sets []itemset) []domain.FrequentSet {
	out := make([]domain.FrequentSet, 0, len(sets))
	for _, s := range sets {
		selectors := supportOf(rules, s.props)
		out = append(out, domain.FrequentSet{
			Properties: s.props,
			Support:    len(selectors),
			Rules:      selectors,
		})
	}
	return out
}

// orderFrequentSets sorts descending by cardinality, then descending by
// support, ties broken by lexicographic order of the sorted property names.
func orderFrequentSets(sets []domain.FrequentSet) []domain.FrequentSet {
	out := append([]domain.FrequentSet(nil), sets...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if len(a.Properties) != len(b.Properties) {
			return len(a.Properties) > len(b.Properties)
		}
		if a.Support != b.Support {
			return a.Support > b.Support
		}
		return strings.Join(a.Properties, "\x00") < strings.Join(b.Properties, "\x00")
	})
	return out
}
