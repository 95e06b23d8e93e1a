package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stylescan/stylescan/domain"
)

func TestEngine_Analyze_Determinism(t *testing.T) {
	corpus := domain.StyleCorpus{
		rule("card", "padding", "1rem", "margin", "1rem", "border-radius", "4px"),
		rule("card__title", "font-weight", "bold"),
		rule("card--featured", "border-color", "gold"),
	}
	engine := NewEngine(nil)
	config := domain.DefaultAnalysisConfig()

	first, err := engine.Analyze(context.Background(), corpus, config)
	require.NoError(t, err)
	second, err := engine.Analyze(context.Background(), corpus, config)
	require.NoError(t, err)

	require.Equal(t, first.Suggestions, second.Suggestions)
	require.Equal(t, first.Clusters, second.Clusters)
	require.Equal(t, first.Metrics.RuleCount, second.Metrics.RuleCount)
}

func TestEngine_Analyze_EmptyCorpus(t *testing.T) {
	engine := NewEngine(nil)
	result, err := engine.Analyze(context.Background(), domain.StyleCorpus{}, domain.DefaultAnalysisConfig())
	require.NoError(t, err)
	require.Empty(t, result.Clusters)
	require.Empty(t, result.Suggestions)
}

func TestEngine_Analyze_InvalidConfigIsFatal(t *testing.T) {
	engine := NewEngine(nil)
	config := domain.DefaultAnalysisConfig()
	config.MinSupport = 0
	_, err := engine.Analyze(context.Background(), domain.StyleCorpus{rule("a", "color", "red")}, config)
	require.Error(t, err)

	var domainErr domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, domain.ErrCodeConfigError, domainErr.Code)
}

func TestEngine_Analyze_CancellationReturnsPartialNotError(t *testing.T) {
	corpus := domain.StyleCorpus{
		rule("a", "color", "red", "padding", "1rem"),
		rule("b", "color", "blue", "padding", "2rem"),
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewEngine(nil)
	result, err := engine.Analyze(ctx, corpus, domain.DefaultAnalysisConfig())
	require.NoError(t, err)
	require.NotNil(t, result)
}

func TestEngine_BemAnalyze(t *testing.T) {
	corpus := domain.StyleCorpus{
		rule("form", "display", "block"),
		rule("form__group", "margin-bottom", "1rem"),
	}
	engine := NewEngine(nil)
	result, err := engine.BemAnalyze(context.Background(), corpus, domain.DefaultAnalysisConfig())
	require.NoError(t, err)
	require.Len(t, result.Components, 2)

	var hasParent bool
	for _, r := range result.Relationships {
		if r.Kind == domain.BemRelationParent && r.From == "form" && r.To == "form__group" {
			hasParent = true
		}
	}
	require.True(t, hasParent)
}
