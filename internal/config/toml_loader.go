package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// tomlConfig mirrors Config but with pointer/optional fields so the loader
// can tell "absent from the file" apart from "explicitly zero".
type tomlConfig struct {
	Analysis *analysisTomlSection `toml:"analysis"`
	Files    *filesTomlSection    `toml:"files"`
	Output   *outputTomlSection   `toml:"output"`
	Watch    *watchTomlSection    `toml:"watch"`
	Serve    *serveTomlSection    `toml:"serve"`
}

type analysisTomlSection struct {
	MinSupport                 *int     `toml:"min_support"`
	MinCohesion                *float64 `toml:"min_cohesion"`
	MaxClusterDepth            *int     `toml:"max_cluster_depth"`
	MaxItemsetSize             *int     `toml:"max_itemset_size"`
	PairCorrelationThreshold   *float64 `toml:"pair_correlation_threshold"`
	UtilityConfidenceThreshold *float64 `toml:"utility_confidence_threshold"`
	VariableFrequencyThreshold *int     `toml:"variable_frequency_threshold"`
	StyleSimilarityExtension   *float64 `toml:"style_similarity_extension"`
	SignificanceAlpha          *float64 `toml:"significance_alpha"`
}

type filesTomlSection struct {
	IncludePatterns []string `toml:"include_patterns"`
	ExcludePatterns []string `toml:"exclude_patterns"`
}

type outputTomlSection struct {
	Format    string `toml:"format"`
	Directory string `toml:"directory"`
	Minify    *bool  `toml:"minify"`
}

type watchTomlSection struct {
	DebounceMillis *int `toml:"debounce_ms"`
}

type serveTomlSection struct {
	Host string `toml:"host"`
	Port *int   `toml:"port"`
}

// TomlConfigLoader discovers and parses `.stylescan.toml` files, merging
// present values over a Config's existing defaults.
type TomlConfigLoader struct{}

// NewTomlConfigLoader returns a ready-to-use loader.
func NewTomlConfigLoader() *TomlConfigLoader {
	return &TomlConfigLoader{}
}

const configFileName = ".stylescan.toml"

// LoadInto parses the TOML file at path and merges present values into cfg.
func (l *TomlConfigLoader) LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var parsed tomlConfig
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return err
	}
	mergeTomlConfig(cfg, &parsed)
	return nil
}

func mergeTomlConfig(cfg *Config, t *tomlConfig) {
	if s := t.Analysis; s != nil {
		if s.MinSupport != nil {
			cfg.Analysis.MinSupport = *s.MinSupport
		}
		if s.MinCohesion != nil {
			cfg.Analysis.MinCohesion = *s.MinCohesion
		}
		if s.MaxClusterDepth != nil {
			cfg.Analysis.MaxClusterDepth = *s.MaxClusterDepth
		}
		if s.MaxItemsetSize != nil {
			cfg.Analysis.MaxItemsetSize = *s.MaxItemsetSize
		}
		if s.PairCorrelationThreshold != nil {
			cfg.Analysis.PairCorrelationThreshold = *s.PairCorrelationThreshold
		}
		if s.UtilityConfidenceThreshold != nil {
			cfg.Analysis.UtilityConfidenceThreshold = *s.UtilityConfidenceThreshold
		}
		if s.VariableFrequencyThreshold != nil {
			cfg.Analysis.VariableFrequencyThreshold = *s.VariableFrequencyThreshold
		}
		if s.StyleSimilarityExtension != nil {
			cfg.Analysis.StyleSimilarityExtension = *s.StyleSimilarityExtension
		}
		if s.SignificanceAlpha != nil {
			cfg.Analysis.SignificanceAlpha = *s.SignificanceAlpha
		}
	}
	if s := t.Files; s != nil {
		if len(s.IncludePatterns) > 0 {
			cfg.Files.IncludePatterns = s.IncludePatterns
		}
		if len(s.ExcludePatterns) > 0 {
			cfg.Files.ExcludePatterns = s.ExcludePatterns
		}
	}
	if s := t.Output; s != nil {
		if s.Format != "" {
			cfg.Output.Format = s.Format
		}
		if s.Directory != "" {
			cfg.Output.Directory = s.Directory
		}
		if s.Minify != nil {
			cfg.Output.Minify = *s.Minify
		}
	}
	if s := t.Watch; s != nil {
		if s.DebounceMillis != nil {
			cfg.Watch.DebounceMillis = *s.DebounceMillis
		}
	}
	if s := t.Serve; s != nil {
		if s.Host != "" {
			cfg.Serve.Host = s.Host
		}
		if s.Port != nil {
			cfg.Serve.Port = *s.Port
		}
	}
}

// ResolveConfigPath resolves the effective configuration file path once, so
// every analysis phase reads the same source. An explicit configPath must
// exist; an empty one triggers an upward search from targetPath (or cwd).
func (l *TomlConfigLoader) ResolveConfigPath(configPath, targetPath string) (string, error) {
	if configPath != "" {
		info, err := os.Stat(configPath)
		if err != nil {
			return "", fmt.Errorf("config file not found: %s", configPath)
		}
		if !info.IsDir() {
			return configPath, nil
		}
		return l.FindConfigFileFromPath(configPath), nil
	}

	searchPath := targetPath
	if searchPath == "" {
		searchPath = "."
	}
	return l.FindConfigFileFromPath(searchPath), nil
}

// FindConfigFileFromPath walks up from startPath looking for
// `.stylescan.toml`, returning "" if none is found before the filesystem
// root.
func (l *TomlConfigLoader) FindConfigFileFromPath(startPath string) string {
	dir, err := normalizeSearchDir(startPath)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func normalizeSearchDir(path string) (string, error) {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return filepath.Dir(abs), nil
	}
	return abs, nil
}
