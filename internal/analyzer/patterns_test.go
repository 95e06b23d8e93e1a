package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stylescan/stylescan/domain"
)

func TestAnalyzeStatistics_CoOccurrenceAndNumeric(t *testing.T) {
	rules := []domain.Rule{
		rule("a", "padding", "10px", "margin", "20px"),
		rule("b", "padding", "20px", "margin", "30px"),
		rule("c", "padding", "30px", "margin", "40px"),
	}
	co := BuildCoOccurrence(rules)
	config := domain.DefaultAnalysisConfig()
	config.MinSupport = 2
	sets := MineFrequentSets(context.Background(), rules, co.Freq, config)

	patterns := AnalyzeStatistics(rules, co, sets, config)
	require.NotEmpty(t, patterns.CoOccurrence.Pairs)

	pair, ok := patterns.CoOccurrence.Lookup("padding", "margin")
	require.True(t, ok)
	require.Equal(t, 3, pair.Count)
	require.Equal(t, 1.0, pair.Jaccard)

	var paddingSummary *domain.NumericSummary
	for i := range patterns.Numeric {
		if patterns.Numeric[i].Property == "padding" {
			paddingSummary = &patterns.Numeric[i]
		}
	}
	require.NotNil(t, paddingSummary)
	require.Equal(t, 20.0, paddingSummary.Mean)
	require.Equal(t, "px", paddingSummary.Unit)
}

func TestAnalyzeStatistics_EntropyCoversAllProperties(t *testing.T) {
	rules := []domain.Rule{
		rule("a", "color", "red"),
		rule("b", "color", "blue"),
		rule("c", "color", "red"),
	}
	co := BuildCoOccurrence(rules)
	config := domain.DefaultAnalysisConfig()
	patterns := AnalyzeStatistics(rules, co, nil, config)

	require.Contains(t, patterns.Entropy, "color")
	require.Greater(t, patterns.Entropy["color"], 0.0)
}
