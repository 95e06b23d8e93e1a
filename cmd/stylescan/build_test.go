package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const buildTestCorpus = `
tokens:
  spacing-sm:
    value: "4px"
    themeOverrides:
      dark: "8px"
components:
  button:
    base:
      class: btn
      styles:
        - color: red
`

func TestBuildCommand_RendersCSSToStdout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(buildTestCorpus), 0644))

	cmd := NewBuildCommand().CreateCobraCommand()
	cmd.SetArgs([]string{"-f", path})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), ".button")
	require.Contains(t, out.String(), "4px")
}

func TestBuildCommand_ResolvesThemeOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(buildTestCorpus), 0644))

	cmd := NewBuildCommand().CreateCobraCommand()
	cmd.SetArgs([]string{"-f", path, "--format", "tokens", "--theme", "dark"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "8px")
	require.NotContains(t, out.String(), "4px")
}

func TestBuildCommand_MinifyStripsWhitespace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(buildTestCorpus), 0644))

	cmd := NewBuildCommand().CreateCobraCommand()
	cmd.SetArgs([]string{"-f", path, "--minify"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	require.NotContains(t, out.String(), "\n\n")
}

func TestBuildCommand_MissingPathErrors(t *testing.T) {
	cmd := NewBuildCommand().CreateCobraCommand()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.Error(t, cmd.Execute())
}
