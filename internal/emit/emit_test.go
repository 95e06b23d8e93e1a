package emit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stylescan/stylescan/domain"
)

func sampleCorpus() domain.StyleCorpus {
	root := domain.NewPropertyMap()
	root.Set("primary-color", "#ff0000")

	button := domain.NewPropertyMap()
	button.Set("color", "var(--primary-color)")

	icon := domain.NewPropertyMap()
	icon.Set("width", "16px")

	return domain.StyleCorpus{
		{Selector: ":root", Properties: root},
		{Selector: ".button", Properties: button},
		{Selector: ".button__icon", Properties: icon},
	}
}

func sampleResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Bem: domain.BemAnalysis{
			Components: []domain.BemComponent{
				{Selector: ".button", Kind: domain.BemPartBlock, Block: "button"},
				{Selector: ".button__icon", Kind: domain.BemPartElement, Block: "button", Element: "icon"},
			},
			Relationships: []domain.BemRelationship{
				{From: ".button", To: ".button__icon", Kind: domain.BemRelationParent},
			},
		},
		Clusters: []*domain.Cluster{
			{ID: "c1", Name: "cluster-1", Properties: []string{"color", "background", "border", "padding"}},
		},
		Suggestions: []domain.Suggestion{
			{Kind: domain.SuggestionUtility, Title: "Extract utility", Detail: "color repeats 3 times", Confidence: 0.8},
		},
		Metrics: domain.AnalysisMetrics{RuleCount: 3, PropertyCount: 3},
	}
}

func TestEmit_CSS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(domain.OutputFormatCSS, sampleCorpus(), sampleResult(), &buf))
	out := buf.String()
	require.Contains(t, out, ".button {")
	require.Contains(t, out, "color: var(--primary-color);")
}

func TestEmit_SCSS_NestsElementsUnderBlock(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(domain.OutputFormatSCSS, sampleCorpus(), sampleResult(), &buf))
	out := buf.String()
	require.Contains(t, out, "$primary-color: #ff0000;")
	require.Contains(t, out, ".button {")
	require.Contains(t, out, "&__icon {")
}

func TestEmit_Tokens_OnlyRootProperties(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(domain.OutputFormatTokens, sampleCorpus(), sampleResult(), &buf))
	out := buf.String()
	require.Contains(t, out, "--primary-color: #ff0000;")
	require.False(t, strings.Contains(out, "--color:"))
}

func TestEmit_Tailwind_IncludesTokensAndSuggestions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(domain.OutputFormatTailwind, sampleCorpus(), sampleResult(), &buf))
	out := buf.String()
	require.Contains(t, out, "'primary-color': '#ff0000'")
	require.Contains(t, out, "Extract utility")
}

func TestEmit_Markdown_RendersSummaryAndSuggestions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(domain.OutputFormatMarkdown, sampleCorpus(), sampleResult(), &buf))
	out := buf.String()
	require.Contains(t, out, "# Style Analysis Report")
	require.Contains(t, out, "Extract utility")
}

func TestEmit_JSON_RoundTripsCorpusAndResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(domain.OutputFormatJSON, sampleCorpus(), sampleResult(), &buf))
	out := buf.String()
	require.Contains(t, out, `"corpus"`)
	require.Contains(t, out, `"result"`)
	require.Contains(t, out, "primary-color")
}

func TestEmit_DOT_RendersComponentsAndClusters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(domain.OutputFormatDOT, sampleCorpus(), sampleResult(), &buf))
	out := buf.String()
	require.Contains(t, out, "digraph style_analysis")
	require.Contains(t, out, `".button" -> ".button__icon"`)
	require.Contains(t, out, "+1 more")
}

func TestEmit_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Emit(domain.OutputFormat("bogus"), sampleCorpus(), sampleResult(), &buf)
	require.Error(t, err)
}
