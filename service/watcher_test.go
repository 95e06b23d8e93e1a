package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_InvokesCallbackOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tokens:\n  x: 1px\n"), 0644))

	w, err := NewWatcher([]string{path})
	require.NoError(t, err)
	defer w.Close()

	changed := make(chan string, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	go func() {
		_ = w.Watch(ctx, func(p string) {
			select {
			case changed <- p:
			default:
			}
		})
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("tokens:\n  x: 2px\n"), 0644))

	select {
	case got := <-changed:
		require.Equal(t, path, got)
	case <-time.After(1500 * time.Millisecond):
		t.Fatal("timed out waiting for watcher callback")
	}
}

func TestIsCorpusFile(t *testing.T) {
	require.True(t, isCorpusFile("tokens.yaml"))
	require.True(t, isCorpusFile("tokens.YML"))
	require.False(t, isCorpusFile("tokens.json"))
}
