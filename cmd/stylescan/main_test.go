package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stylescan/stylescan/internal/version"
)

func TestVersion(t *testing.T) {
	require.NotEmpty(t, version.Short())
}

func TestRootCmd_RegistersAllSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"build", "analyze", "watch", "serve", "tokens", "validate", "init", "version"} {
		require.True(t, names[want], "expected subcommand %q to be registered", want)
	}
}

func TestResolvePaths_MergesFlagAndArgs(t *testing.T) {
	require.Equal(t, []string{"a.yaml", "b.yaml"}, resolvePaths("a.yaml", []string{"b.yaml"}))
	require.Equal(t, []string{"a.yaml"}, resolvePaths("a.yaml", nil))
	require.Equal(t, []string{"b.yaml"}, resolvePaths("", []string{"b.yaml"}))
	require.Nil(t, resolvePaths("", nil))
}

func TestExtensionForFormat(t *testing.T) {
	require.Equal(t, "css", extensionForFormat("css"))
	require.Equal(t, "js", extensionForFormat("tailwind"))
	require.Equal(t, "txt", extensionForFormat("unknown"))
}
