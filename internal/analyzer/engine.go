package analyzer

import (
	"context"
	"sync"
	"time"

	"github.com/stylescan/stylescan/domain"
	"golang.org/x/sync/errgroup"
)

// Engine is the default, concurrent implementation of domain.Engine. The
// frequent-set miner (plus the cluster builder and statistical analyzer
// that depend on it) and the BEM analyzer run in separate goroutines since
// both are pure functions over the same read-only corpus; the suggestion
// synthesizer then merges their output deterministically.
type Engine struct {
	logger domain.Logger
}

// NewEngine returns an Engine. A nil logger falls back to domain.NopLogger.
func NewEngine(logger domain.Logger) *Engine {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Engine{logger: logger}
}

type operationTimer struct {
	mu   sync.Mutex
	perf map[string]domain.OperationStats
}

func newOperationTimer() *operationTimer {
	return &operationTimer{perf: make(map[string]domain.OperationStats)}
}

func (t *operationTimer) record(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.perf[name]
	s.Count++
	s.TotalDuration += d
	s.MeanDuration = s.TotalDuration / time.Duration(s.Count)
	t.perf[name] = s
}

func (t *operationTimer) snapshot() map[string]domain.OperationStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]domain.OperationStats, len(t.perf))
	for k, v := range t.perf {
		out[k] = v
	}
	return out
}

func timed(timer *operationTimer, name string, fn func()) {
	start := time.Now()
	fn()
	timer.record(name, time.Since(start))
}

// Analyze runs the full pipeline. An empty corpus yields an empty result
// with no error. A config that fails Validate is a fatal ConfigError.
func (e *Engine) Analyze(ctx context.Context, corpus domain.StyleCorpus, config domain.AnalysisConfig) (*domain.AnalysisResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(corpus) == 0 {
		return &domain.AnalysisResult{Performance: map[string]domain.OperationStats{}}, nil
	}

	rules := ExtractRules(corpus)
	co := BuildCoOccurrence(rules)
	timer := newOperationTimer()

	var frequentSets []domain.FrequentSet
	var clusters []*domain.Cluster
	var patterns domain.PatternAnalysis

	var bemComponents []domain.BemComponent
	var bemRelationships []domain.BemRelationship
	var bemSuggestions []domain.Suggestion

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		timed(timer, "frequent_set_miner", func() {
			frequentSets = MineFrequentSets(ctx, rules, co.Freq, config)
		})
		timed(timer, "cluster_builder", func() {
			clusters = BuildClusters(rules, co, frequentSets, config, e.logger)
		})
		timed(timer, "statistical_analyzer", func() {
			patterns = AnalyzeStatistics(rules, co, frequentSets, config)
		})
		return nil
	})

	g.Go(func() error {
		timed(timer, "bem_analyzer", func() {
			bemComponents = ExtractBemComponents(rules)
			bemRelationships = BuildBemRelationships(rules, bemComponents, config)
			bemSuggestions = GenerateBemSuggestions(ctx, rules, bemComponents, bemRelationships, config)
		})
		return nil
	})

	// Neither goroutine returns a real error: core failures are absorbed
	// as InvariantViolations per sub-stage. Wait only for completion.
	_ = g.Wait()

	var suggestions []domain.Suggestion
	timed(timer, "suggestion_synthesizer", func() {
		suggestions = SynthesizeSuggestions(rules, clusters, bemComponents, bemSuggestions, config)
	})

	var metrics domain.AnalysisMetrics
	timed(timer, "metrics_aggregator", func() {
		metrics = AggregateMetrics(ctx, rules, co.Freq, len(frequentSets), clusters, bemComponents, suggestions, config)
	})

	return &domain.AnalysisResult{
		Patterns: patterns,
		Clusters: clusters,
		Bem: domain.BemAnalysis{
			Components:    bemComponents,
			Relationships: bemRelationships,
			Suggestions:   bemSuggestions,
		},
		Suggestions: suggestions,
		Metrics:     metrics,
		Performance: timer.snapshot(),
	}, nil
}

// BemAnalyze runs only the naming subsystem, for callers that don't need
// the full pipeline.
func (e *Engine) BemAnalyze(ctx context.Context, corpus domain.StyleCorpus, config domain.AnalysisConfig) (*domain.BemAnalysis, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	rules := ExtractRules(corpus)
	components := ExtractBemComponents(rules)
	relationships := BuildBemRelationships(rules, components, config)
	suggestions := GenerateBemSuggestions(ctx, rules, components, relationships, config)
	return &domain.BemAnalysis{
		Components:    components,
		Relationships: relationships,
		Suggestions:   suggestions,
	}, nil
}

var _ domain.Engine = (*Engine)(nil)
