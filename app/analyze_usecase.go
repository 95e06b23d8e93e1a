// Package app wires the domain engine and service-layer collaborators into
// the use cases cmd/stylescan and cmd/stylescan-mcp both call through,
// mirroring pyscn's app package (a builder-constructed use case sitting
// between the CLI and the domain engine).
package app

import (
	"context"
	"io"
	"os"

	"github.com/stylescan/stylescan/domain"
	"github.com/stylescan/stylescan/internal/corpus"
	"github.com/stylescan/stylescan/service"
)

// AnalyzeRequest is the fully-resolved input to a single analysis run.
type AnalyzeRequest struct {
	// Paths are corpus files or directories to analyze.
	Paths []string

	IncludePatterns []string
	ExcludePatterns []string

	// Theme selects which token themeOverrides entry to resolve; empty
	// uses each token's base value.
	Theme string

	Config domain.AnalysisConfig

	// Format/OutputPath control how the result is rendered, applied
	// only when the caller asks for output via Render/Write below.
	Format     domain.OutputFormat
	OutputPath string

	// Validate, when true, additionally runs schema validation over every
	// resolved corpus file and returns the warnings alongside the result.
	Validate bool
}

// AnalyzeResponse is the use case's output: the merged corpus, the analysis
// result computed over it, and any non-fatal schema warnings.
type AnalyzeResponse struct {
	Corpus   domain.StyleCorpus
	Result   *domain.AnalysisResult
	Warnings []domain.ValidationWarning
}

// AnalyzeUseCase orchestrates corpus discovery, loading, caching, analysis,
// and rendering. Grounded on pyscn's AnalyzeUseCase/AnalyzeUseCaseBuilder
// shape, collapsed from five delegate use cases (complexity/dead
// code/clones/CBO/system) down to the single style-analysis engine this
// domain has.
type AnalyzeUseCase struct {
	engine           domain.Engine
	corpusReader     *service.CorpusReaderImpl
	cache            *service.AnalysisCache
	formatter        *service.OutputFormatterImpl
	writer           domain.ReportWriter
	progressManager  *service.ProgressManager
	errorCategorizer *service.ErrorCategorizer
	logger           domain.Logger
}

// AnalyzeUseCaseBuilder builds an AnalyzeUseCase from its collaborators,
// each defaulted so a caller only overrides what it needs to.
type AnalyzeUseCaseBuilder struct {
	useCase *AnalyzeUseCase
}

// NewAnalyzeUseCaseBuilder creates a new builder with every collaborator
// defaulted to its production implementation.
func NewAnalyzeUseCaseBuilder() *AnalyzeUseCaseBuilder {
	return &AnalyzeUseCaseBuilder{
		useCase: &AnalyzeUseCase{
			corpusReader:     service.NewCorpusReader(),
			cache:            service.NewAnalysisCache(),
			formatter:        service.NewOutputFormatter(),
			writer:           service.NewFileOutputWriter(os.Stderr),
			progressManager:  service.NewProgressManager(),
			errorCategorizer: service.NewErrorCategorizer(),
			logger:           domain.NopLogger{},
		},
	}
}

// WithEngine sets the analysis engine (required — there is no default).
func (b *AnalyzeUseCaseBuilder) WithEngine(engine domain.Engine) *AnalyzeUseCaseBuilder {
	b.useCase.engine = engine
	return b
}

// WithCorpusReader overrides the corpus file discovery service.
func (b *AnalyzeUseCaseBuilder) WithCorpusReader(reader *service.CorpusReaderImpl) *AnalyzeUseCaseBuilder {
	b.useCase.corpusReader = reader
	return b
}

// WithCache overrides the analysis result cache.
func (b *AnalyzeUseCaseBuilder) WithCache(cache *service.AnalysisCache) *AnalyzeUseCaseBuilder {
	b.useCase.cache = cache
	return b
}

// WithWriter overrides the report writer (e.g. to suppress status lines in
// tests).
func (b *AnalyzeUseCaseBuilder) WithWriter(writer domain.ReportWriter) *AnalyzeUseCaseBuilder {
	b.useCase.writer = writer
	return b
}

// WithLogger overrides the engine's warning logger.
func (b *AnalyzeUseCaseBuilder) WithLogger(logger domain.Logger) *AnalyzeUseCaseBuilder {
	b.useCase.logger = logger
	return b
}

// Build returns the constructed use case. Panics if no engine was set,
// since every operation requires one.
func (b *AnalyzeUseCaseBuilder) Build() *AnalyzeUseCase {
	if b.useCase.engine == nil {
		panic("app: AnalyzeUseCase requires WithEngine")
	}
	return b.useCase
}

// Execute resolves req's paths to corpus files, loads and merges them, runs
// the engine (reusing a cached result when the merged corpus and config
// were seen before), and optionally validates each file's schema.
func (uc *AnalyzeUseCase) Execute(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	files, err := ResolveCorpusPaths(uc.corpusReader, req.Paths, req.IncludePatterns, req.ExcludePatterns)
	if err != nil {
		return nil, uc.categorize(err)
	}

	merged, warnings, err := uc.loadAndValidate(files, req.Theme, req.Validate)
	if err != nil {
		return nil, uc.categorize(err)
	}

	key, err := uc.cache.Key(merged, req.Config)
	if err != nil {
		return nil, uc.categorize(err)
	}
	if cached, ok := uc.cache.Get(key); ok {
		return &AnalyzeResponse{Corpus: merged, Result: cached, Warnings: warnings}, nil
	}

	result, err := uc.engine.Analyze(ctx, merged, req.Config)
	if err != nil {
		return nil, uc.categorize(err)
	}
	uc.cache.Put(key, result)

	return &AnalyzeResponse{Corpus: merged, Result: result, Warnings: warnings}, nil
}

// Render formats resp's result in format and returns it as a string,
// without writing anywhere.
func (uc *AnalyzeUseCase) Render(resp *AnalyzeResponse, format domain.OutputFormat) (string, error) {
	return uc.formatter.Format(resp.Corpus, resp.Result, format)
}

// Write formats resp's result and writes it via the configured
// ReportWriter — to outputPath if non-empty, otherwise to w.
func (uc *AnalyzeUseCase) Write(w io.Writer, resp *AnalyzeResponse, format domain.OutputFormat, outputPath string) error {
	return uc.writer.Write(w, outputPath, format, func(dst io.Writer) error {
		return uc.formatter.Write(resp.Corpus, resp.Result, format, dst)
	})
}

func (uc *AnalyzeUseCase) loadAndValidate(files []string, theme string, validate bool) (domain.StyleCorpus, []domain.ValidationWarning, error) {
	var merged domain.StyleCorpus
	var warnings []domain.ValidationWarning

	for _, file := range files {
		rules, err := corpus.LoadWithTheme(file, theme)
		if err != nil {
			return nil, nil, err
		}
		merged = append(merged, rules...)

		if validate {
			fileWarnings, err := corpus.Validate(file)
			if err != nil {
				return nil, nil, err
			}
			warnings = append(warnings, fileWarnings...)
		}
	}
	return merged, warnings, nil
}

func (uc *AnalyzeUseCase) categorize(err error) error {
	if err == nil {
		return nil
	}
	categorized := uc.errorCategorizer.Categorize(err)
	uc.logger.Warn(categorized.Message, map[string]interface{}{"category": string(categorized.Category)})
	return categorized
}
