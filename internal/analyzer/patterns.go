package analyzer

import (
	"sort"

	"github.com/stylescan/stylescan/domain"
)

// pairsFromFrequentSets collects every unordered pair of properties that
// co-occur within some FrequentSet of size >= 2: these are the pairs
// "participating in a detected pattern" that the statistical analyzer
// reports on.
func pairsFromFrequentSets(sets []domain.FrequentSet) [][2]string {
	seen := make(map[[2]string]bool)
	var pairs [][2]string
	for _, fs := range sets {
		props := append([]string(nil), fs.Properties...)
		sort.Strings(props)
		for i := 0; i < len(props); i++ {
			for j := i + 1; j < len(props); j++ {
				key := [2]string{props[i], props[j]}
				if seen[key] {
					continue
				}
				seen[key] = true
				pairs = append(pairs, key)
			}
		}
	}
	return pairs
}

// propertyValues collects, per property, every value declared for it
// across rules, in corpus order.
func propertyValues(rules []domain.Rule) map[string][]string {
	values := make(map[string][]string)
	for _, rule := range rules {
		for pair := rule.Properties.Oldest(); pair != nil; pair = pair.Next() {
			values[pair.Key] = append(values[pair.Key], pair.Value)
		}
	}
	return values
}

// AnalyzeStatistics computes the pairwise correlation statistics for every
// property pair participating in a detected pattern, plus per-property
// numeric distributions and value entropy.
func AnalyzeStatistics(rules []domain.Rule, co *CoOccurrence, frequentSets []domain.FrequentSet, config domain.AnalysisConfig) domain.PatternAnalysis {
	matrix := domain.NewCoOccurrenceMatrix()
	for _, pair := range pairsFromFrequentSets(frequentSets) {
		a, b := pair[0], pair[1]
		chi2 := ChiSquare(rules, a, b)
		matrix.Add(domain.CoOccurrencePair{
			PropertyA:   a,
			PropertyB:   b,
			Count:       co.Count(a, b),
			Jaccard:     Jaccard(co, a, b),
			ChiSquare:   chi2,
			PValue:      PValue(chi2),
			MutualInfo:  MutualInformation(rules, a, b),
			Significant: PValue(chi2) < config.SignificanceAlpha,
		})
	}

	byProperty := propertyValues(rules)
	names := make([]string, 0, len(byProperty))
	for p := range byProperty {
		names = append(names, p)
	}
	sort.Strings(names)

	var numeric []domain.NumericSummary
	entropy := make(map[string]float64, len(names))
	for _, p := range names {
		vals := byProperty[p]
		entropy[p] = ShannonEntropy(vals)

		var nums []float64
		var unit string
		for _, v := range vals {
			n, u, ok := ParseNumericValue(v)
			if !ok {
				continue
			}
			nums = append(nums, n)
			if unit == "" {
				unit = u
			}
		}
		if len(nums) > 0 {
			numeric = append(numeric, NumericDistribution(p, unit, nums))
		}
	}

	return domain.PatternAnalysis{
		FrequentSets: frequentSets,
		CoOccurrence: matrix,
		Numeric:      numeric,
		Entropy:      entropy,
	}
}
