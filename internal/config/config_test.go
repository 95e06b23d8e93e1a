package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate_RejectsBadFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = "xml"
	require.Error(t, cfg.Validate())
}

func TestConfig_Validate_RejectsBadPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Serve.Port = 0
	require.Error(t, cfg.Validate())
}

func TestLoadConfig_MergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".stylescan.toml")
	contents := `
[analysis]
min_support = 5

[output]
format = "scss"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Analysis.MinSupport)
	require.Equal(t, "scss", cfg.Output.Format)
	// Untouched sections keep their defaults.
	require.Equal(t, DefaultConfig().Analysis.MinCohesion, cfg.Analysis.MinCohesion)
}

func TestLoadConfig_NoFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadConfig("", dir)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".stylescan.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"scss\"\n"), 0644))

	t.Setenv("STYLESCAN_OUTPUT_FORMAT", "tailwind")
	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)
	require.Equal(t, "tailwind", cfg.Output.Format)
}

func TestSaveConfig_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", ".stylescan.toml")
	cfg := DefaultConfig()
	cfg.Analysis.MinSupport = 7

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path, "")
	require.NoError(t, err)
	require.Equal(t, 7, loaded.Analysis.MinSupport)
}

func TestGenerateDefaultConfigTOML(t *testing.T) {
	text, err := GenerateDefaultConfigTOML()
	require.NoError(t, err)
	require.Contains(t, text, "[analysis]")
}
