// Package mcp exposes the style analysis engine over the Model Context
// Protocol, grounded on pyscn's cmd/pyscn-mcp companion package but
// collapsed to the single analyze_styles tool this domain needs instead of
// pyscn's six code-quality tools.
package mcp

import (
	"github.com/stylescan/stylescan/app"
	"github.com/stylescan/stylescan/internal/config"
	"github.com/stylescan/stylescan/internal/logging"
	"github.com/stylescan/stylescan/service"
)

// Dependencies aggregates the shared services required by MCP handlers.
type Dependencies struct {
	config     *config.Config
	configPath string
}

// NewDependencies constructs the dependency set with sane defaults.
func NewDependencies(cfg *config.Config, configPath string) *Dependencies {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Dependencies{config: cfg, configPath: configPath}
}

// Config exposes the loaded configuration snapshot.
func (d *Dependencies) Config() *config.Config {
	return d.config
}

// ConfigPath returns the configured config file path (may be empty to
// trigger discovery).
func (d *Dependencies) ConfigPath() string {
	return d.configPath
}

// BuildAnalyzeUseCase assembles a fresh AnalyzeUseCase with the analyzer
// engine, domain logger and corpus reader; engine thresholds are not bound
// here but passed in each AnalyzeRequest's Config.
func (d *Dependencies) BuildAnalyzeUseCase() *app.AnalyzeUseCase {
	engine := analyzerEngine()
	return app.NewAnalyzeUseCaseBuilder().
		WithEngine(engine).
		WithLogger(logging.NewDomainLogger()).
		WithCorpusReader(service.NewCorpusReader()).
		Build()
}
