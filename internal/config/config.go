package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/stylescan/stylescan/domain"
)

// Config is the root configuration structure, covering the analysis engine's
// thresholds plus the surrounding CLI/service concerns (file discovery,
// output rendering, watch/serve tuning).
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
	Files    FilesConfig    `mapstructure:"files" yaml:"files"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Watch    WatchConfig    `mapstructure:"watch" yaml:"watch"`
	Serve    ServeConfig    `mapstructure:"serve" yaml:"serve"`
}

// AnalysisConfig mirrors domain.AnalysisConfig with serialization tags; it
// is the only section whose values flow straight into the analysis engine.
type AnalysisConfig struct {
	MinSupport                 int     `mapstructure:"min_support" yaml:"min_support"`
	MinCohesion                float64 `mapstructure:"min_cohesion" yaml:"min_cohesion"`
	MaxClusterDepth            int     `mapstructure:"max_cluster_depth" yaml:"max_cluster_depth"`
	MaxItemsetSize             int     `mapstructure:"max_itemset_size" yaml:"max_itemset_size"`
	PairCorrelationThreshold   float64 `mapstructure:"pair_correlation_threshold" yaml:"pair_correlation_threshold"`
	UtilityConfidenceThreshold float64 `mapstructure:"utility_confidence_threshold" yaml:"utility_confidence_threshold"`
	VariableFrequencyThreshold int     `mapstructure:"variable_frequency_threshold" yaml:"variable_frequency_threshold"`
	StyleSimilarityExtension   float64 `mapstructure:"style_similarity_extension" yaml:"style_similarity_extension"`
	SignificanceAlpha          float64 `mapstructure:"significance_alpha" yaml:"significance_alpha"`
}

// ToDomain converts the serializable config section into the engine's
// AnalysisConfig value.
func (a AnalysisConfig) ToDomain() domain.AnalysisConfig {
	return domain.AnalysisConfig{
		MinSupport:                 a.MinSupport,
		MinCohesion:                a.MinCohesion,
		MaxClusterDepth:            a.MaxClusterDepth,
		MaxItemsetSize:             a.MaxItemsetSize,
		PairCorrelationThreshold:   a.PairCorrelationThreshold,
		UtilityConfidenceThreshold: a.UtilityConfidenceThreshold,
		VariableFrequencyThreshold: a.VariableFrequencyThreshold,
		StyleSimilarityExtension:   a.StyleSimilarityExtension,
		SignificanceAlpha:          a.SignificanceAlpha,
	}
}

func analysisConfigFromDomain(d domain.AnalysisConfig) AnalysisConfig {
	return AnalysisConfig{
		MinSupport:                 d.MinSupport,
		MinCohesion:                d.MinCohesion,
		MaxClusterDepth:            d.MaxClusterDepth,
		MaxItemsetSize:             d.MaxItemsetSize,
		PairCorrelationThreshold:   d.PairCorrelationThreshold,
		UtilityConfidenceThreshold: d.UtilityConfidenceThreshold,
		VariableFrequencyThreshold: d.VariableFrequencyThreshold,
		StyleSimilarityExtension:   d.StyleSimilarityExtension,
		SignificanceAlpha:          d.SignificanceAlpha,
	}
}

// FilesConfig controls which corpus files a directory scan picks up.
type FilesConfig struct {
	IncludePatterns []string `mapstructure:"include_patterns" yaml:"include_patterns"`
	ExcludePatterns []string `mapstructure:"exclude_patterns" yaml:"exclude_patterns"`
}

// OutputConfig controls how a result is rendered.
type OutputConfig struct {
	Format    string `mapstructure:"format" yaml:"format"`
	Directory string `mapstructure:"directory" yaml:"directory"`
	Minify    bool   `mapstructure:"minify" yaml:"minify"`
}

// WatchConfig holds the watch.debounce_ms setting. It is loaded and
// validated, but `stylescan watch` does not read it: service.Watcher
// debounces with a fixed 150 ms interval.
type WatchConfig struct {
	DebounceMillis int `mapstructure:"debounce_ms" yaml:"debounce_ms"`
}

// ServeConfig controls the `stylescan serve` live-reload server.
type ServeConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// DefaultConfig returns the built-in configuration: the engine's documented
// defaults (domain.DefaultAnalysisConfig) plus conservative ambient values.
func DefaultConfig() *Config {
	return &Config{
		Analysis: analysisConfigFromDomain(domain.DefaultAnalysisConfig()),
		Files: FilesConfig{
			IncludePatterns: []string{"**/*.yaml", "**/*.yml"},
			ExcludePatterns: []string{"**/node_modules/**"},
		},
		Output: OutputConfig{
			Format:    "css",
			Directory: "",
			Minify:    false,
		},
		Watch: WatchConfig{
			DebounceMillis: 150,
		},
		Serve: ServeConfig{
			Host: "127.0.0.1",
			Port: 8420,
		},
	}
}

// Validate checks the ambient sections and delegates threshold validation to
// domain.AnalysisConfig.Validate, so the CLI and the engine agree on one
// taxonomy of configuration errors.
func (c *Config) Validate() error {
	if err := c.Analysis.ToDomain().Validate(); err != nil {
		return err
	}
	if len(c.Files.IncludePatterns) == 0 {
		return domain.NewConfigError("files.include_patterns cannot be empty", nil)
	}
	validFormats := map[string]bool{"css": true, "scss": true, "tailwind": true, "tokens": true, "md": true, "json": true, "dot": true}
	if !validFormats[c.Output.Format] {
		return domain.NewConfigError(fmt.Sprintf("invalid output.format %q", c.Output.Format), nil)
	}
	if c.Watch.DebounceMillis < 0 {
		return domain.NewConfigError("watch.debounce_ms must be >= 0", nil)
	}
	if c.Serve.Port <= 0 || c.Serve.Port > 65535 {
		return domain.NewConfigError("serve.port must be a valid TCP port", nil)
	}
	return nil
}

// LoadConfig loads configuration from file or falls back to defaults.
func LoadConfig(configPath, targetPath string) (*Config, error) {
	loader := NewTomlConfigLoader()
	resolved, err := loader.ResolveConfigPath(configPath, targetPath)
	if err != nil {
		return nil, domain.NewConfigError("failed to resolve configuration", err)
	}

	cfg := DefaultConfig()
	if resolved != "" {
		if err := loader.LoadInto(resolved, cfg); err != nil {
			return nil, domain.NewConfigError("failed to load configuration", err)
		}
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes a configuration to a TOML file, creating parent
// directories as needed.
func SaveConfig(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}
