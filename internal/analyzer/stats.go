package analyzer

import (
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/stylescan/stylescan/domain"
)

// Jaccard returns co[a][b] / max(freq[a], freq[b]), the freq-based
// definition. 0 if both frequencies are 0.
func Jaccard(co *CoOccurrence, a, b string) float64 {
	denom := math.Max(float64(co.Frequency(a)), float64(co.Frequency(b)))
	if denom == 0 {
		return 0
	}
	return float64(co.Count(a, b)) / denom
}

// contingency2x2 holds the four cell counts of "rule contains a" vs "rule
// contains b" over N rules.
type contingency2x2 struct {
	n11, n10, n01, n00 float64
	n                  float64
}

func buildContingency(rules []domain.Rule, a, b string) contingency2x2 {
	var c contingency2x2
	for _, rule := range rules {
		hasA, hasB := rule.HasProperty(a), rule.HasProperty(b)
		switch {
		case hasA && hasB:
			c.n11++
		case hasA && !hasB:
			c.n10++
		case !hasA && hasB:
			c.n01++
		default:
			c.n00++
		}
	}
	c.n = c.n11 + c.n10 + c.n01 + c.n00
	return c
}

// ChiSquare computes the chi-square statistic for the independence of "rule
// contains a" and "rule contains b" over rules, with expected counts
// E_ij = (row_i * col_j) / N.
func ChiSquare(rules []domain.Rule, a, b string) float64 {
	c := buildContingency(rules, a, b)
	if c.n == 0 {
		return 0
	}
	rowA := c.n11 + c.n10
	rowNotA := c.n01 + c.n00
	colB := c.n11 + c.n01
	colNotB := c.n10 + c.n00

	cells := []struct{ o, e float64 }{
		{c.n11, rowA * colB / c.n},
		{c.n10, rowA * colNotB / c.n},
		{c.n01, rowNotA * colB / c.n},
		{c.n00, rowNotA * colNotB / c.n},
	}
	var chi2 float64
	for _, cell := range cells {
		if cell.e == 0 {
			continue
		}
		diff := cell.o - cell.e
		chi2 += diff * diff / cell.e
	}
	return chi2
}

// MutualInformation computes the mutual information in bits between "rule
// contains a" and "rule contains b" over rules. Zero-probability cells
// contribute zero.
func MutualInformation(rules []domain.Rule, a, b string) float64 {
	c := buildContingency(rules, a, b)
	if c.n == 0 {
		return 0
	}
	pA := (c.n11 + c.n10) / c.n
	pNotA := 1 - pA
	pB := (c.n11 + c.n01) / c.n
	pNotB := 1 - pB

	terms := []struct {
		joint, marginalX, marginalY float64
	}{
		{c.n11 / c.n, pA, pB},
		{c.n10 / c.n, pA, pNotB},
		{c.n01 / c.n, pNotA, pB},
		{c.n00 / c.n, pNotA, pNotB},
	}
	var mi float64
	for _, t := range terms {
		if t.joint == 0 || t.marginalX == 0 || t.marginalY == 0 {
			continue
		}
		mi += t.joint * math.Log2(t.joint/(t.marginalX*t.marginalY))
	}
	return mi
}

// PValue returns 1 - CDF(chi2, df=1), the upper tail probability of the
// chi-square distribution with one degree of freedom.
func PValue(chi2 float64) float64 {
	if chi2 <= 0 {
		return 1
	}
	// For df=1, the chi-square CDF is erf(sqrt(x/2)).
	return 1 - math.Erf(math.Sqrt(chi2/2))
}

var numericValuePattern = regexp.MustCompile(`^(-?[0-9]+(?:\.[0-9]+)?)(px|%|rem|em|vh|vw)?$`)

// ParseNumericValue parses a value string of the form "number" or
// "number" + unit in RecognizedUnits. ok is false for anything else.
func ParseNumericValue(value string) (num float64, unit string, ok bool) {
	m := numericValuePattern.FindStringSubmatch(value)
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}
	return n, m[2], true
}

// NumericDistribution computes mean/median/stddev/quartiles/outliers over a
// sample of numeric values using linear interpolation for quartiles and the
// 1.5*IQR rule for outliers. Panics are never raised; an empty sample
// returns a zero-valued summary.
func NumericDistribution(property, unit string, values []float64) domain.NumericSummary {
	summary := domain.NumericSummary{Property: property, Unit: unit, Count: len(values)}
	if len(values) == 0 {
		return summary
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	var variance float64
	for _, v := range sorted {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(sorted))

	q1 := quantile(sorted, 0.25)
	q2 := quantile(sorted, 0.5)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	var outliers []float64
	for _, v := range sorted {
		if v < lower || v > upper {
			outliers = append(outliers, v)
		}
	}

	summary.Mean = mean
	summary.Median = q2
	summary.StdDev = math.Sqrt(variance)
	summary.Min = sorted[0]
	summary.Max = sorted[len(sorted)-1]
	summary.Q1 = q1
	summary.Q3 = q3
	summary.Outliers = outliers
	return summary
}

// quantile returns the p-quantile of an already-sorted sample using linear
// interpolation between the closest ranks.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// ShannonEntropy computes the Shannon entropy in bits of the empirical
// distribution of values.
func ShannonEntropy(values []string) float64 {
	if len(values) == 0 {
		return 0
	}
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	n := float64(len(values))
	var entropy float64
	for _, count := range counts {
		p := float64(count) / n
		entropy -= p * math.Log2(p)
	}
	return entropy
}

var (
	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)
	rgbPattern      = regexp.MustCompile(`^rgba?\([^)]*\)$`)
	keywordValues   = map[string]struct{}{
		"block": {}, "inline": {}, "inline-block": {}, "flex": {}, "grid": {}, "none": {}, "contents": {},
		"static": {}, "relative": {}, "absolute": {}, "fixed": {}, "sticky": {},
		"normal": {}, "bold": {}, "bolder": {}, "lighter": {},
		"left": {}, "right": {}, "center": {}, "top": {}, "bottom": {},
	}
)

// IsStandardValue reports whether value matches one of the recognized
// patterns: hex color, rgb/rgba tuple, a recognized unit, or a known
// display/position/weight/alignment keyword.
func IsStandardValue(value string) bool {
	if hexColorPattern.MatchString(value) {
		return true
	}
	if rgbPattern.MatchString(value) {
		return true
	}
	if _, _, ok := ParseNumericValue(value); ok {
		return true
	}
	_, known := keywordValues[value]
	return known
}
