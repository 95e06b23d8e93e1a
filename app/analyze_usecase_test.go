package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stylescan/stylescan/domain"
)

type fakeEngine struct {
	result *domain.AnalysisResult
	calls  int
}

func (f *fakeEngine) Analyze(ctx context.Context, corpus domain.StyleCorpus, config domain.AnalysisConfig) (*domain.AnalysisResult, error) {
	f.calls++
	return f.result, nil
}

func (f *fakeEngine) BemAnalyze(ctx context.Context, corpus domain.StyleCorpus, config domain.AnalysisConfig) (*domain.BemAnalysis, error) {
	return &f.result.Bem, nil
}

func writeCorpusFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestAnalyzeUseCase_ExecuteLoadsAndAnalyzesCorpus(t *testing.T) {
	dir := t.TempDir()
	path := writeCorpusFile(t, dir, "corpus.yaml", "tokens:\n  primary-color: \"#f00\"\n")

	engine := &fakeEngine{result: &domain.AnalysisResult{Metrics: domain.AnalysisMetrics{RuleCount: 1}}}
	uc := NewAnalyzeUseCaseBuilder().WithEngine(engine).Build()

	resp, err := uc.Execute(context.Background(), AnalyzeRequest{
		Paths:  []string{path},
		Config: domain.DefaultAnalysisConfig(),
	})
	require.NoError(t, err)
	require.Len(t, resp.Corpus, 1)
	require.Equal(t, 1, resp.Result.Metrics.RuleCount)
	require.Equal(t, 1, engine.calls)
}

func TestAnalyzeUseCase_ExecuteCachesSecondCall(t *testing.T) {
	dir := t.TempDir()
	path := writeCorpusFile(t, dir, "corpus.yaml", "tokens:\n  primary-color: \"#f00\"\n")

	engine := &fakeEngine{result: &domain.AnalysisResult{}}
	uc := NewAnalyzeUseCaseBuilder().WithEngine(engine).Build()

	req := AnalyzeRequest{Paths: []string{path}, Config: domain.DefaultAnalysisConfig()}
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, 1, engine.calls)
}

func TestAnalyzeUseCase_ExecuteValidatesWhenRequested(t *testing.T) {
	dir := t.TempDir()
	path := writeCorpusFile(t, dir, "corpus.yaml", "version: \"bad\"\ntokens:\n  x: \"1px\"\n")

	engine := &fakeEngine{result: &domain.AnalysisResult{}}
	uc := NewAnalyzeUseCaseBuilder().WithEngine(engine).Build()

	resp, err := uc.Execute(context.Background(), AnalyzeRequest{
		Paths:    []string{path},
		Config:   domain.DefaultAnalysisConfig(),
		Validate: true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Warnings, 1)
}

func TestAnalyzeUseCase_RenderFormatsResult(t *testing.T) {
	engine := &fakeEngine{result: &domain.AnalysisResult{}}
	uc := NewAnalyzeUseCaseBuilder().WithEngine(engine).Build()

	root := domain.NewPropertyMap()
	root.Set("x", "1px")
	resp := &AnalyzeResponse{Corpus: domain.StyleCorpus{{Selector: ":root", Properties: root}}, Result: engine.result}

	out, err := uc.Render(resp, domain.OutputFormatCSS)
	require.NoError(t, err)
	require.Contains(t, out, ":root {")
}

func TestAnalyzeUseCaseBuilder_PanicsWithoutEngine(t *testing.T) {
	require.Panics(t, func() {
		NewAnalyzeUseCaseBuilder().Build()
	})
}
