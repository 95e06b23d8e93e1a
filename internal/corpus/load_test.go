package corpus

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCorpus = `
version: "1.0.0"
tokens:
  primary-color: "#ff0000"
  spacing-sm:
    value: "4px"
    themeOverrides:
      dark: "8px"
components:
  button:
    base:
      class: btn
      styles:
        - color: var(--primary-color)
        - padding: 4px
    parts:
      icon:
        styles:
          - width: 16px
    variants:
      primary:
        styles:
          - background: var(--primary-color)
navbar:
  class: nav
  styles:
    - display: flex
`

func TestLoadBytes_FlattensTokensComponentsAndStreetStyles(t *testing.T) {
	c, err := LoadBytes([]byte(sampleCorpus))
	require.NoError(t, err)

	selectors := make([]string, 0, len(c))
	for _, rule := range c {
		selectors = append(selectors, rule.Selector)
	}
	require.Contains(t, selectors, ":root")
	require.Contains(t, selectors, ".button")
	require.Contains(t, selectors, ".button__icon")
	require.Contains(t, selectors, ".button--primary")
	require.Contains(t, selectors, ".navbar")

	for _, rule := range c {
		if rule.Selector == ":root" {
			value, ok := rule.Properties.Get("primary-color")
			require.True(t, ok)
			require.Equal(t, "#ff0000", value)

			value, ok = rule.Properties.Get("spacing-sm")
			require.True(t, ok)
			require.Equal(t, "4px", value)
		}
		if rule.Selector == ".button" {
			value, ok := rule.Properties.Get("color")
			require.True(t, ok)
			require.Equal(t, "var(--primary-color)", value)
		}
	}
}

func TestLoadBytesWithTheme_ResolvesOverride(t *testing.T) {
	c, err := LoadBytesWithTheme([]byte(sampleCorpus), "dark")
	require.NoError(t, err)

	for _, rule := range c {
		if rule.Selector == ":root" {
			value, ok := rule.Properties.Get("spacing-sm")
			require.True(t, ok)
			require.Equal(t, "8px", value)
		}
	}
}

func TestLoadBytesWithTheme_FallsBackWhenThemeHasNoOverride(t *testing.T) {
	c, err := LoadBytesWithTheme([]byte(sampleCorpus), "light")
	require.NoError(t, err)

	for _, rule := range c {
		if rule.Selector == ":root" {
			value, ok := rule.Properties.Get("spacing-sm")
			require.True(t, ok)
			require.Equal(t, "4px", value)
		}
	}
}

func TestLoadBytes_EmptyDocumentYieldsEmptyCorpus(t *testing.T) {
	c, err := LoadBytes([]byte(""))
	require.NoError(t, err)
	require.Empty(t, c)
}

func TestValidate_FlagsBadVersionButNotFatal(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/corpus.yaml"
	require.NoError(t, os.WriteFile(path, []byte("version: \"bad\"\ntokens:\n  x: \"1px\"\n"), 0644))

	warnings, err := Validate(path)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Equal(t, "version", warnings[0].Path)
}

func TestValidate_NoWarningsForCleanCorpus(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/corpus.yaml"
	require.NoError(t, os.WriteFile(path, []byte(sampleCorpus), 0644))

	warnings, err := Validate(path)
	require.NoError(t, err)
	require.Empty(t, warnings)
}
