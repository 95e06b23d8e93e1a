package domain

// PropertyFrequency pairs a property name with its occurrence count, used
// for the most/least-used property rankings.
type PropertyFrequency struct {
	Property string
	Count    int
}

// DuplicationGroup is one (property, value) combination repeated at least
// MinSupport times across the corpus.
type DuplicationGroup struct {
	Property   string
	Value      string
	Occurrences int
}

// AnalysisMetrics summarizes a single analysis run as corpus-level scalars,
// independent of any one rule, cluster, or suggestion.
type AnalysisMetrics struct {
	RuleCount           int
	PropertyCount        int
	UniquePropertyCount  int
	FrequentSetCount     int
	ClusterCount         int
	BemComponentCount    int
	SuggestionCount      int

	MostUsedProperties  []PropertyFrequency
	LeastUsedProperties []PropertyFrequency

	// AverageComplexity is the mean per-rule complexity: |properties| +
	// 0.5*(non-standard value count) + 0.5*(combinator count).
	AverageComplexity float64

	// AverageSpecificity is the mean per-selector specificity score
	// (100*# + 10*. + 10*: + 10*[).
	AverageSpecificity float64

	// MaintainabilityIndex is the average of {mean cluster cohesion,
	// 1 - fraction of rules with !important, 1 - complexity/100}, scaled
	// to [0, 100].
	MaintainabilityIndex float64

	DuplicationGroups []DuplicationGroup

	// AverageCohesion is the mean Cohesion across every Cluster produced,
	// 0 when no clusters were produced.
	AverageCohesion float64

	// DuplicationRatio is total duplicate-occurrences / rule count, over
	// the DuplicationGroups above.
	DuplicationRatio float64
}
