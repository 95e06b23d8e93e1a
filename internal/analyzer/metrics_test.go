package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stylescan/stylescan/domain"
)

func TestAggregateMetrics_BasicCounts(t *testing.T) {
	rules := []domain.Rule{
		rule("a", "color", "red", "padding", "1rem"),
		rule("b", "color", "red", "padding", "1rem"),
		rule("c#id", "color", "blue"),
	}
	co := BuildCoOccurrence(rules)
	config := domain.DefaultAnalysisConfig()
	config.MinSupport = 2
	sets := MineFrequentSets(context.Background(), rules, co.Freq, config)
	clusters := BuildClusters(rules, co, sets, config, nil)
	components := ExtractBemComponents(rules)

	metrics := AggregateMetrics(context.Background(), rules, co.Freq, len(sets), clusters, components, nil, config)

	require.Equal(t, 3, metrics.RuleCount)
	require.Equal(t, 5, metrics.PropertyCount)
	require.Equal(t, 2, metrics.UniquePropertyCount)
	require.NotEmpty(t, metrics.MostUsedProperties)
	require.NotEmpty(t, metrics.DuplicationGroups)
	require.Greater(t, metrics.DuplicationRatio, 0.0)
}

func TestAggregateMetrics_SpecificityCountsIdSelector(t *testing.T) {
	rules := []domain.Rule{rule("c#id", "color", "blue")}
	metrics := AggregateMetrics(context.Background(), rules, map[string]int{"color": 1}, 0, nil, nil, nil, domain.DefaultAnalysisConfig())
	require.Equal(t, 100.0, metrics.AverageSpecificity)
}

func TestAggregateMetrics_CancellationStopsEarly(t *testing.T) {
	rules := []domain.Rule{
		rule("a", "color", "red"),
		rule("b", "color", "blue"),
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	metrics := AggregateMetrics(ctx, rules, map[string]int{"color": 2}, 0, nil, nil, nil, domain.DefaultAnalysisConfig())
	require.Equal(t, 2, metrics.RuleCount)
	require.Equal(t, 0, metrics.PropertyCount, "no rule should be processed once the context is already cancelled")
}

func TestAggregateMetrics_MaintainabilityWithinBounds(t *testing.T) {
	rules := []domain.Rule{
		rule("a", "color", "red !important", "padding", "1rem"),
		rule("b", "color", "blue"),
	}
	metrics := AggregateMetrics(context.Background(), rules, map[string]int{"color": 2, "padding": 1}, 0, nil, nil, nil, domain.DefaultAnalysisConfig())
	require.GreaterOrEqual(t, metrics.MaintainabilityIndex, 0.0)
}
