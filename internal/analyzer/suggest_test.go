package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stylescan/stylescan/domain"
)

func TestSynthesizeSuggestions_UtilityFromHighCohesionCluster(t *testing.T) {
	rules := []domain.Rule{
		rule("a", "padding", "1rem", "margin", "1rem", "border-radius", "4px"),
		rule("b", "padding", "1rem", "margin", "1rem", "border-radius", "4px"),
		rule("c", "padding", "1rem", "margin", "1rem", "border-radius", "4px"),
	}
	co := BuildCoOccurrence(rules)
	config := domain.DefaultAnalysisConfig()
	config.VariableFrequencyThreshold = 3
	sets := MineFrequentSets(context.Background(), rules, co.Freq, config)
	clusters := BuildClusters(rules, co, sets, config, nil)
	components := ExtractBemComponents(rules)

	suggestions := SynthesizeSuggestions(rules, clusters, components, nil, config)

	var foundUtility, foundVariable bool
	for _, s := range suggestions {
		if s.Kind == domain.SuggestionUtility {
			foundUtility = true
		}
		if s.Kind == domain.SuggestionVariable {
			foundVariable = true
		}
	}
	require.True(t, foundUtility)
	require.True(t, foundVariable)
}

func TestSynthesizeSuggestions_OrderingIsStable(t *testing.T) {
	suggestions := []domain.Suggestion{
		{Kind: domain.SuggestionNaming, Title: "b", Confidence: 0.9},
		{Kind: domain.SuggestionUtility, Title: "a", Confidence: 0.9},
		{Kind: domain.SuggestionVariable, Title: "c", Confidence: 0.5},
	}
	config := domain.DefaultAnalysisConfig()
	out := SynthesizeSuggestions(nil, nil, nil, suggestions, config)
	require.Len(t, out, 3)
	// Confidence 0.9 items come first; within equal confidence, kind order
	// breaks the tie (Utility < Naming), then title.
	require.Equal(t, "a", out[0].Title)
	require.Equal(t, "b", out[1].Title)
	require.Equal(t, "c", out[2].Title)
}

func TestSynthesizeSuggestions_SharedStylesRequiresMinBlockMembers(t *testing.T) {
	rules := []domain.Rule{
		rule("card__a", "color", "red", "padding", "1rem"),
		rule("card__b", "color", "red", "padding", "1rem"),
	}
	components := ExtractBemComponents(rules)
	config := domain.DefaultAnalysisConfig()

	suggestions := SynthesizeSuggestions(rules, nil, components, nil, config)
	for _, s := range suggestions {
		require.NotEqual(t, domain.SuggestionShared, s.Kind, "two members should not satisfy SharedStylesMinBlockMembers")
	}
}

func TestSynthesizeSuggestions_SharedStylesAcrossThreeMembers(t *testing.T) {
	rules := []domain.Rule{
		rule("card__a", "color", "red", "padding", "1rem"),
		rule("card__b", "color", "red", "padding", "1rem"),
		rule("card__c", "color", "red", "padding", "2rem"),
	}
	components := ExtractBemComponents(rules)
	config := domain.DefaultAnalysisConfig()

	suggestions := SynthesizeSuggestions(rules, nil, components, nil, config)
	var found bool
	for _, s := range suggestions {
		if s.Kind == domain.SuggestionShared {
			found = true
			require.Contains(t, s.Targets, "color:red")
		}
	}
	require.True(t, found)
}
