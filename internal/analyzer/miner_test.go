package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stylescan/stylescan/domain"
)

func TestMineFrequentSets_BoxModelPattern(t *testing.T) {
	rules := []domain.Rule{
		rule("a", "padding", "1rem", "margin", "1rem", "border-radius", "4px"),
		rule("b", "padding", "1rem", "margin", "1rem", "border-radius", "4px"),
		rule("c", "padding", "1rem", "margin", "1rem", "border-radius", "4px"),
	}
	co := BuildCoOccurrence(rules)
	config := domain.DefaultAnalysisConfig()

	sets := MineFrequentSets(context.Background(), rules, co.Freq, config)
	require.NotEmpty(t, sets)

	top := sets[0]
	require.Equal(t, 3, top.Size())
	require.ElementsMatch(t, []string{"padding", "margin", "border-radius"}, top.Properties)
	require.Equal(t, 3, top.Support)
}

func TestMineFrequentSets_SingleRuleProducesNoClusters(t *testing.T) {
	rules := []domain.Rule{
		rule("a", "color", "red", "display", "flex"),
	}
	co := BuildCoOccurrence(rules)
	config := domain.DefaultAnalysisConfig()
	config.MinSupport = 1

	sets := MineFrequentSets(context.Background(), rules, co.Freq, config)
	require.NotEmpty(t, sets)

	var full *domain.FrequentSet
	for i := range sets {
		if sets[i].Size() == 2 {
			full = &sets[i]
		}
	}
	require.NotNil(t, full, "the rule's full property set should be mined")
	require.ElementsMatch(t, []string{"color", "display"}, full.Properties)

	clusters := BuildClusters(rules, co, sets, config, nil)
	require.Empty(t, clusters, "a single supporting rule cannot form a cluster regardless of min_support")
}

func TestMineFrequentSets_OrderingIsDeterministic(t *testing.T) {
	rules := []domain.Rule{
		rule("a", "x", "1", "y", "2", "z", "3"),
		rule("b", "x", "1", "y", "2"),
		rule("c", "x", "1", "y", "2"),
	}
	co := BuildCoOccurrence(rules)
	config := domain.DefaultAnalysisConfig()
	config.MinSupport = 2

	first := MineFrequentSets(context.Background(), rules, co.Freq, config)
	second := MineFrequentSets(context.Background(), rules, co.Freq, config)
	require.Equal(t, first, second)

	for i := 1; i < len(first); i++ {
		require.LessOrEqual(t, first[i].Size(), first[i-1].Size())
	}
}

func TestMineFrequentSets_EmptyCorpus(t *testing.T) {
	config := domain.DefaultAnalysisConfig()
	sets := MineFrequentSets(context.Background(), nil, map[string]int{}, config)
	require.Empty(t, sets)
}

func TestMineFrequentSets_CancellationReturnsPartial(t *testing.T) {
	rules := []domain.Rule{
		rule("a", "p1", "v", "p2", "v", "p3", "v", "p4", "v"),
		rule("b", "p1", "v", "p2", "v", "p3", "v", "p4", "v"),
	}
	co := BuildCoOccurrence(rules)
	config := domain.DefaultAnalysisConfig()
	config.MinSupport = 2
	config.MaxItemsetSize = 4

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sets := MineFrequentSets(ctx, rules, co.Freq, config)
	// Level 1 is always computed synchronously before the first poll; the
	// poll happens only between levels, so level-1 sets are guaranteed.
	require.NotEmpty(t, sets)
}
