package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stylescan/stylescan/service"
)

func TestResolveCorpusPaths_ReturnsExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tokens:\n  x: 1px\n"), 0644))

	files, err := ResolveCorpusPaths(service.NewCorpusReader(), []string{path}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []string{path}, files)
}

func TestResolveCorpusPaths_CollectsFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("tokens:\n  x: 1px\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644))

	files, err := ResolveCorpusPaths(service.NewCorpusReader(), []string{dir}, nil, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, filepath.Join(dir, "a.yaml"), files[0])
}

func TestResolveCorpusPaths_MissingPathErrors(t *testing.T) {
	_, err := ResolveCorpusPaths(service.NewCorpusReader(), []string{"/nonexistent/path.yaml"}, nil, nil)
	require.Error(t, err)
}
