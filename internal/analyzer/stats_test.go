package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stylescan/stylescan/domain"
)

// TestChiSquare_Independence covers seed case 6: two properties appearing
// independently with probability 0.5 each (joint 0.25) should show
// chi-square near zero and p-value near one.
func TestChiSquare_Independence(t *testing.T) {
	var rules []domain.Rule
	pattern := [][2]bool{
		{true, true}, {true, false}, {false, true}, {false, false},
	}
	for i := 0; i < 25; i++ {
		for _, p := range pattern {
			r := domain.NewPropertyMap()
			if p[0] {
				r.Set("a", "1")
			}
			if p[1] {
				r.Set("b", "1")
			}
			rules = append(rules, domain.Rule{Selector: "r", Properties: r})
		}
	}
	require.Len(t, rules, 100)

	chi2 := ChiSquare(rules, "a", "b")
	require.InDelta(t, 0.0, chi2, 0.01)

	p := PValue(chi2)
	require.InDelta(t, 1.0, p, 0.01)
}

func TestNumericDistribution_MarginValues(t *testing.T) {
	summary := NumericDistribution("margin", "px", []float64{10, 20, 30, 40, 50})
	require.Equal(t, 30.0, summary.Mean)
	require.Equal(t, 30.0, summary.Median)
	require.InDelta(t, 14.14, summary.StdDev, 0.01)
	require.Equal(t, 20.0, summary.Q1)
	require.Equal(t, 40.0, summary.Q3)
	require.Empty(t, summary.Outliers)
}

func TestJaccard_FreqBased(t *testing.T) {
	rules := []domain.Rule{
		rule("a", "x", "1", "y", "1"),
		rule("b", "x", "1"),
	}
	co := BuildCoOccurrence(rules)
	// freq[x]=2, freq[y]=1, co[x][y]=1 -> 1/max(2,1) = 0.5
	require.Equal(t, 0.5, Jaccard(co, "x", "y"))
}

func TestParseNumericValue(t *testing.T) {
	cases := []struct {
		value string
		num   float64
		unit  string
		ok    bool
	}{
		{"10px", 10, "px", true},
		{"1.5rem", 1.5, "rem", true},
		{"50%", 50, "%", true},
		{"auto", 0, "", false},
		{"red", 0, "", false},
	}
	for _, c := range cases {
		n, u, ok := ParseNumericValue(c.value)
		require.Equal(t, c.ok, ok, c.value)
		if ok {
			require.Equal(t, c.num, n, c.value)
			require.Equal(t, c.unit, u, c.value)
		}
	}
}

func TestShannonEntropy_SingleValueIsZero(t *testing.T) {
	require.Equal(t, 0.0, ShannonEntropy([]string{"red", "red", "red"}))
}

func TestIsStandardValue(t *testing.T) {
	require.True(t, IsStandardValue("#fff"))
	require.True(t, IsStandardValue("rgb(0,0,0)"))
	require.True(t, IsStandardValue("10px"))
	require.True(t, IsStandardValue("center"))
	require.False(t, IsStandardValue("some-weird-token!!"))
}
