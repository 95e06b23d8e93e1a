package service

import (
	"github.com/stylescan/stylescan/internal/config"
)

// ConfigurationLoader loads the effective Config for a CLI invocation:
// built-in defaults, overridden by a discovered/explicit .stylescan.toml,
// overridden by explicitly-set CLI flags — mirroring pyscn's layered
// ConfigurationLoaderWithFlags without pyscn's clone/complexity-specific
// section sprawl.
type ConfigurationLoader struct {
	flagTracker *config.FlagTracker
}

// NewConfigurationLoader creates a loader that treats no flags as explicitly set.
func NewConfigurationLoader() *ConfigurationLoader {
	return &ConfigurationLoader{flagTracker: config.NewFlagTracker()}
}

// NewConfigurationLoaderWithFlags creates a loader aware of which CLI flags
// the user explicitly passed, so merges respect flag > file > default.
func NewConfigurationLoaderWithFlags(explicitFlags map[string]bool) *ConfigurationLoader {
	return &ConfigurationLoader{flagTracker: config.NewFlagTrackerWithFlags(explicitFlags)}
}

// Load resolves and loads configuration, given an explicit config path (may
// be empty) and the target path analysis will run against (used for the
// upward .stylescan.toml search when configPath is empty).
func (c *ConfigurationLoader) Load(configPath, targetPath string) (*config.Config, error) {
	return config.LoadConfig(configPath, targetPath)
}

// MergeFlags overlays explicitly-set CLI flag values onto a loaded config.
// Each parameter is the flag's parsed value; it is applied only if
// flagName was recorded as explicitly set.
func (c *ConfigurationLoader) MergeFlags(cfg *config.Config, format string, minify bool, outDir string) *config.Config {
	merged := *cfg
	merged.Output.Format = c.flagTracker.MergeString(cfg.Output.Format, format, "format")
	merged.Output.Minify = c.flagTracker.MergeBool(cfg.Output.Minify, minify, "minify")
	merged.Output.Directory = c.flagTracker.MergeString(cfg.Output.Directory, outDir, "out")
	return &merged
}

// WasSet reports whether the named flag was explicitly passed on the CLI.
func (c *ConfigurationLoader) WasSet(flag string) bool {
	return c.flagTracker.WasSet(flag)
}
