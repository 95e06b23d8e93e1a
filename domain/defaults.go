package domain

// ============================================================================
// Analysis Config Defaults
// ============================================================================

// Thresholds governing the style analysis engine. Defaults mirror the
// values a design-system team would start from before tuning per project.
const (
	// DefaultMinSupport is the minimum number of rules an itemset must
	// appear in to be retained by the frequent-set miner.
	DefaultMinSupport = 2

	// DefaultMinCohesion is the minimum cohesion for a cluster to be kept,
	// and the minimum Jaccard similarity to treat two properties as related.
	DefaultMinCohesion = 0.5

	// DefaultMaxClusterDepth bounds recursion depth when synthesizing child
	// clusters.
	DefaultMaxClusterDepth = 3

	// DefaultMaxItemsetSize bounds k for level-wise frequent-set mining.
	DefaultMaxItemsetSize = 5

	// DefaultPairCorrelationThreshold is the lower bound for pairs
	// advertised as "strongly correlated".
	DefaultPairCorrelationThreshold = 0.5

	// DefaultUtilityConfidenceThreshold is the minimum cohesion to
	// recommend a utility class.
	DefaultUtilityConfidenceThreshold = 0.8

	// DefaultVariableFrequencyThreshold is the minimum repetitions of a
	// value before a CSS variable is suggested.
	DefaultVariableFrequencyThreshold = 3

	// DefaultStyleSimilarityExtension is the minimum Jaccard over property
	// sets to flag two components as extension-related.
	DefaultStyleSimilarityExtension = 0.7

	// DefaultSignificanceAlpha is the p-value below which a pair is
	// considered significantly dependent.
	DefaultSignificanceAlpha = 0.05
)

// ============================================================================
// Mixin / Mutation Thresholds
// ============================================================================

const (
	// MixinCohesionThreshold is the cohesion a cluster must clear, on top
	// of having at least one child, to be suggested as a mixin.
	MixinCohesionThreshold = 0.8

	// SharedStylesMinBlockMembers is the minimum number of members a block
	// must have before a SharedStyles suggestion is considered.
	SharedStylesMinBlockMembers = 3
)

// ============================================================================
// Numeric Value Parsing
// ============================================================================

// RecognizedUnits lists the unit suffixes the numeric extractor accepts
// after a bare number.
var RecognizedUnits = []string{"px", "%", "rem", "em", "vh", "vw"}

// ============================================================================
// BEM Built-in Tables
// ============================================================================

// CommonElements maps a block name to the element names it is conventionally
// expected to have. Used by the BEM analyzer's CommonPattern suggestions.
var CommonElements = map[string][]string{
	"card":   {"header", "body", "footer", "title", "content"},
	"form":   {"group", "label", "input", "error", "help"},
	"nav":    {"item", "link", "icon", "text", "dropdown"},
	"list":   {"item", "header", "content", "footer"},
	"modal":  {"header", "body", "footer", "close", "title"},
	"table":  {"header", "row", "cell", "footer"},
	"button": {"icon", "text", "badge"},
}

// CommonModifiers maps a modifier concern to its conventional values. Used by
// the BEM analyzer's CommonPattern suggestions, gated by property relevance.
var CommonModifiers = map[string][]string{
	"size":      {"sm", "md", "lg", "xl"},
	"color":     {"primary", "secondary", "success", "danger", "warning", "info"},
	"state":     {"active", "disabled", "loading", "selected", "expanded"},
	"layout":    {"horizontal", "vertical", "compact", "expanded"},
	"alignment": {"left", "center", "right", "top", "bottom"},
}

// modifierRelevantProperties maps a modifier concern to the property name
// substrings that make it relevant for a given rule's property set. "state"
// is always relevant regardless of the properties present.
var modifierRelevantProperties = map[string][]string{
	"size":      {"width", "height", "size"},
	"color":     {"color", "background"},
	"layout":    {"display", "flex", "grid"},
	"alignment": {"align", "justify", "text"},
}
