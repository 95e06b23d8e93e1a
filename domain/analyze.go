package domain

import (
	"context"
	"time"
)

// AnalysisConfig holds the thresholds that tune every stage of the style
// analysis engine. Zero-value fields are never valid configuration; callers
// should start from DefaultAnalysisConfig and override individual fields.
type AnalysisConfig struct {
	// MinSupport is the minimum number of rules an itemset must appear in
	// to be retained by the frequent-set miner.
	MinSupport int

	// MinCohesion is the minimum cohesion for a cluster to be kept, and the
	// minimum Jaccard similarity to treat two properties as "related".
	MinCohesion float64

	// MaxClusterDepth bounds recursion depth when synthesizing child
	// clusters.
	MaxClusterDepth int

	// MaxItemsetSize bounds k for level-wise frequent-set mining.
	MaxItemsetSize int

	// PairCorrelationThreshold is the lower bound for pairs advertised as
	// "strongly correlated".
	PairCorrelationThreshold float64

	// UtilityConfidenceThreshold is the minimum cohesion to recommend a
	// utility class.
	UtilityConfidenceThreshold float64

	// VariableFrequencyThreshold is the minimum number of repetitions of a
	// value before a CSS variable is recommended.
	VariableFrequencyThreshold int

	// StyleSimilarityExtension is the minimum Jaccard over property sets to
	// flag two components as extension-related.
	StyleSimilarityExtension float64

	// SignificanceAlpha is the p-value below which a pair is "significantly
	// dependent".
	SignificanceAlpha float64
}

// DefaultAnalysisConfig returns the engine's built-in default thresholds.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		MinSupport:                 DefaultMinSupport,
		MinCohesion:                DefaultMinCohesion,
		MaxClusterDepth:            DefaultMaxClusterDepth,
		MaxItemsetSize:             DefaultMaxItemsetSize,
		PairCorrelationThreshold:   DefaultPairCorrelationThreshold,
		UtilityConfidenceThreshold: DefaultUtilityConfidenceThreshold,
		VariableFrequencyThreshold: DefaultVariableFrequencyThreshold,
		StyleSimilarityExtension:   DefaultStyleSimilarityExtension,
		SignificanceAlpha:          DefaultSignificanceAlpha,
	}
}

// Validate checks that every threshold is within its documented domain.
// A violation is a ConfigError: fatal to the call, unlike an
// InvariantViolation discovered mid-analysis.
func (c AnalysisConfig) Validate() error {
	if c.MinSupport < 1 {
		return NewConfigError("min_support must be >= 1", nil)
	}
	if c.MaxClusterDepth < 0 {
		return NewConfigError("max_cluster_depth must be >= 0", nil)
	}
	if c.MaxItemsetSize < 1 {
		return NewConfigError("max_itemset_size must be >= 1", nil)
	}
	if c.VariableFrequencyThreshold < 1 {
		return NewConfigError("variable_frequency_threshold must be >= 1", nil)
	}
	for name, v := range map[string]float64{
		"min_cohesion":                  c.MinCohesion,
		"pair_correlation_threshold":    c.PairCorrelationThreshold,
		"utility_confidence_threshold":  c.UtilityConfidenceThreshold,
		"style_similarity_extension":    c.StyleSimilarityExtension,
		"significance_alpha":            c.SignificanceAlpha,
	} {
		if v < 0.0 || v > 1.0 {
			return NewConfigError(name+" must be between 0.0 and 1.0", nil)
		}
	}
	return nil
}

// OperationStats aggregates timing for one named stage of the pipeline.
type OperationStats struct {
	Count        int
	TotalDuration time.Duration
	MeanDuration  time.Duration
}

// AnalysisResult is the complete, immutable output of a single analysis.
// Every container within it is ordered deterministically for a given
// (corpus, config) pair.
type AnalysisResult struct {
	Patterns    PatternAnalysis
	Clusters    []*Cluster
	Bem         BemAnalysis
	Suggestions []Suggestion
	Metrics     AnalysisMetrics
	Performance map[string]OperationStats
}

// Engine is the core's single entry point: analyze(corpus, config) ->
// AnalysisResult, plus the bem_analyze helper for callers that only need
// the naming subsystem (spec.md §6).
type Engine interface {
	// Analyze runs the full eight-stage pipeline over corpus under config.
	// It never returns an error for a structurally valid, validated config;
	// InvariantViolations are absorbed and reflected by omission in the
	// result. Cancellation via ctx yields a partial result, not an error.
	Analyze(ctx context.Context, corpus StyleCorpus, config AnalysisConfig) (*AnalysisResult, error)

	// BemAnalyze runs only the BEM naming/relationship subsystem.
	BemAnalyze(ctx context.Context, corpus StyleCorpus, config AnalysisConfig) (*BemAnalysis, error)
}

// Logger is the minimal structured-logging seam the core uses to surface
// InvariantViolations without aborting the enclosing analysis. The core
// never logs to stdout/stderr directly.
type Logger interface {
	Warn(msg string, fields map[string]interface{})
}

// NopLogger discards every message. It is the default when no Logger is
// supplied.
type NopLogger struct{}

// Warn implements Logger.
func (NopLogger) Warn(string, map[string]interface{}) {}
