package reporter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stylescan/stylescan/domain"
)

// StyleReport is a serialization-friendly view over an AnalysisResult,
// grounded on pyscn's ComplexityReport (Summary/Results/Metadata/Warnings
// shape) — here "Results" becomes the ranked suggestion list, since
// suggestions are the actionable output of this engine the way per-function
// complexity rows were pyscn's.
type StyleReport struct {
	Summary     ReportSummary      `json:"summary" yaml:"summary"`
	Suggestions []SuggestionView   `json:"suggestions" yaml:"suggestions"`
	Warnings    []ValidationView   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ReportSummary mirrors the scalar fields of domain.AnalysisMetrics that are
// most relevant to a human skimming a report.
type ReportSummary struct {
	RuleCount            int     `json:"rule_count" yaml:"rule_count"`
	PropertyCount        int     `json:"property_count" yaml:"property_count"`
	ClusterCount         int     `json:"cluster_count" yaml:"cluster_count"`
	BemComponentCount    int     `json:"bem_component_count" yaml:"bem_component_count"`
	SuggestionCount      int     `json:"suggestion_count" yaml:"suggestion_count"`
	AverageComplexity    float64 `json:"average_complexity" yaml:"average_complexity"`
	AverageSpecificity   float64 `json:"average_specificity" yaml:"average_specificity"`
	MaintainabilityIndex float64 `json:"maintainability_index" yaml:"maintainability_index"`
}

// SuggestionView is a flattened, serializable Suggestion.
type SuggestionView struct {
	Kind       string   `json:"kind" yaml:"kind"`
	Title      string   `json:"title" yaml:"title"`
	Detail     string   `json:"detail" yaml:"detail"`
	Confidence float64  `json:"confidence" yaml:"confidence"`
	Targets    []string `json:"targets" yaml:"targets"`
}

// ValidationView is a flattened, serializable domain.ValidationWarning.
type ValidationView struct {
	Path    string `json:"path" yaml:"path"`
	Message string `json:"message" yaml:"message"`
}

// BuildReport assembles a StyleReport from an AnalysisResult and the
// optional schema-validation warnings gathered separately by
// internal/corpus.Validate.
func BuildReport(result *domain.AnalysisResult, warnings []domain.ValidationWarning) *StyleReport {
	report := &StyleReport{
		Summary: ReportSummary{
			RuleCount:            result.Metrics.RuleCount,
			PropertyCount:        result.Metrics.PropertyCount,
			ClusterCount:         result.Metrics.ClusterCount,
			BemComponentCount:    result.Metrics.BemComponentCount,
			SuggestionCount:      result.Metrics.SuggestionCount,
			AverageComplexity:    result.Metrics.AverageComplexity,
			AverageSpecificity:   result.Metrics.AverageSpecificity,
			MaintainabilityIndex: result.Metrics.MaintainabilityIndex,
		},
	}
	for _, s := range result.Suggestions {
		report.Suggestions = append(report.Suggestions, SuggestionView{
			Kind:       s.Kind.String(),
			Title:      s.Title,
			Detail:     s.Detail,
			Confidence: s.Confidence,
			Targets:    s.Targets,
		})
	}
	for _, w := range warnings {
		report.Warnings = append(report.Warnings, ValidationView{Path: w.Path, Message: w.Message})
	}
	return report
}

// FormatMarkdown renders the report as a Markdown document: a summary list
// followed by a ranked suggestions table, grounded on pyscn's
// ComplexityReporter text rendering (header + stats + table), adapted to
// Markdown syntax for the `md` output dialect.
func (r *StyleReport) FormatMarkdown() string {
	var b strings.Builder

	b.WriteString("# Style Analysis Report\n\n")
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Rules: %d\n", r.Summary.RuleCount)
	fmt.Fprintf(&b, "- Properties: %d\n", r.Summary.PropertyCount)
	fmt.Fprintf(&b, "- Clusters: %d\n", r.Summary.ClusterCount)
	fmt.Fprintf(&b, "- BEM components: %d\n", r.Summary.BemComponentCount)
	fmt.Fprintf(&b, "- Average complexity: %.2f\n", r.Summary.AverageComplexity)
	fmt.Fprintf(&b, "- Average specificity: %.2f\n", r.Summary.AverageSpecificity)
	fmt.Fprintf(&b, "- Maintainability index: %.1f\n\n", r.Summary.MaintainabilityIndex)

	if len(r.Suggestions) > 0 {
		b.WriteString("## Suggestions\n\n")
		b.WriteString("| Confidence | Kind | Title | Detail |\n")
		b.WriteString("|---|---|---|---|\n")
		suggestions := make([]SuggestionView, len(r.Suggestions))
		copy(suggestions, r.Suggestions)
		sort.SliceStable(suggestions, func(i, j int) bool { return suggestions[i].Confidence > suggestions[j].Confidence })
		for _, s := range suggestions {
			fmt.Fprintf(&b, "| %.2f | %s | %s | %s |\n", s.Confidence, s.Kind, s.Title, s.Detail)
		}
		b.WriteString("\n")
	}

	if len(r.Warnings) > 0 {
		b.WriteString("## Validation Warnings\n\n")
		b.WriteString("| Path | Message |\n|---|---|\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "| %s | %s |\n", w.Path, w.Message)
		}
	}

	return b.String()
}
