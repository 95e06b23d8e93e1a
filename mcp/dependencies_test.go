package mcp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stylescan/stylescan/internal/config"
)

func TestNewDependencies_DefaultsConfigWhenNil(t *testing.T) {
	deps := NewDependencies(nil, "")
	require.NotNil(t, deps.Config())
	require.Equal(t, config.DefaultConfig().Output.Format, deps.Config().Output.Format)
}

func TestNewDependencies_KeepsGivenConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.Format = "scss"
	deps := NewDependencies(cfg, "/tmp/stylescan.toml")

	require.Equal(t, "scss", deps.Config().Output.Format)
	require.Equal(t, "/tmp/stylescan.toml", deps.ConfigPath())
}

func TestBuildAnalyzeUseCase_ReturnsUsableUseCase(t *testing.T) {
	deps := NewDependencies(nil, "")
	require.NotNil(t, deps.BuildAnalyzeUseCase())
}
