package domain

import "testing"

// TestDefaultValueConsistency ensures the built-in analysis thresholds are
// internally consistent and within their documented ranges.
func TestDefaultValueConsistency(t *testing.T) {
	t.Run("fractional thresholds are within [0,1]", func(t *testing.T) {
		thresholds := []struct {
			name  string
			value float64
		}{
			{"MinCohesion", DefaultMinCohesion},
			{"PairCorrelationThreshold", DefaultPairCorrelationThreshold},
			{"UtilityConfidenceThreshold", DefaultUtilityConfidenceThreshold},
			{"StyleSimilarityExtension", DefaultStyleSimilarityExtension},
			{"SignificanceAlpha", DefaultSignificanceAlpha},
			{"MixinCohesionThreshold", MixinCohesionThreshold},
		}
		for _, th := range thresholds {
			if th.value < 0.0 || th.value > 1.0 {
				t.Errorf("%s (%.2f) is outside [0.0, 1.0]", th.name, th.value)
			}
		}
	})

	t.Run("integer thresholds are positive", func(t *testing.T) {
		ints := []struct {
			name  string
			value int
		}{
			{"MinSupport", DefaultMinSupport},
			{"MaxClusterDepth", DefaultMaxClusterDepth},
			{"MaxItemsetSize", DefaultMaxItemsetSize},
			{"VariableFrequencyThreshold", DefaultVariableFrequencyThreshold},
			{"SharedStylesMinBlockMembers", SharedStylesMinBlockMembers},
		}
		for _, th := range ints {
			if th.value <= 0 {
				t.Errorf("%s (%d) should be > 0", th.name, th.value)
			}
		}
	})

	t.Run("mixin threshold is at least as strict as utility threshold", func(t *testing.T) {
		if MixinCohesionThreshold < DefaultUtilityConfidenceThreshold {
			t.Errorf("mixin threshold (%.2f) should be >= utility threshold (%.2f)",
				MixinCohesionThreshold, DefaultUtilityConfidenceThreshold)
		}
	})

	t.Run("BEM tables are non-empty", func(t *testing.T) {
		if len(CommonElements) == 0 {
			t.Error("CommonElements table should not be empty")
		}
		if len(CommonModifiers) == 0 {
			t.Error("CommonModifiers table should not be empty")
		}
		for block, elements := range CommonElements {
			if len(elements) == 0 {
				t.Errorf("block %q has no common elements", block)
			}
		}
	})

	t.Run("recognized units are non-empty", func(t *testing.T) {
		if len(RecognizedUnits) == 0 {
			t.Error("RecognizedUnits should not be empty")
		}
	})
}
