package analyzer

import "github.com/stylescan/stylescan/domain"

// CoOccurrence holds the per-property frequency vector and the symmetric
// property x property co-occurrence counts produced over a rule set.
type CoOccurrence struct {
	Freq map[string]int
	Co   map[string]map[string]int
}

// Frequency returns freq[p], 0 if p never occurred.
func (c *CoOccurrence) Frequency(p string) int {
	return c.Freq[p]
}

// Count returns co[a][b], 0 if the pair never co-occurred.
func (c *CoOccurrence) Count(a, b string) int {
	row, ok := c.Co[a]
	if !ok {
		return 0
	}
	return row[b]
}

func (c *CoOccurrence) increment(a, b string) {
	row, ok := c.Co[a]
	if !ok {
		row = make(map[string]int)
		c.Co[a] = row
	}
	row[b]++
}

// BuildCoOccurrence computes freq and co over rules. For each rule and each
// unordered pair of distinct properties it declares, co[a][b] and co[b][a]
// are both incremented; for each property it declares, freq[p] is
// incremented.
func BuildCoOccurrence(rules []domain.Rule) *CoOccurrence {
	c := &CoOccurrence{
		Freq: make(map[string]int),
		Co:   make(map[string]map[string]int),
	}
	for _, rule := range rules {
		names := rule.PropertyNames()
		for _, p := range names {
			c.Freq[p]++
		}
		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				a, b := names[i], names[j]
				c.increment(a, b)
				c.increment(b, a)
			}
		}
	}
	return c
}
