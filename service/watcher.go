package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/stylescan/stylescan/domain"
)

// debounceInterval coalesces bursts of filesystem events (editors often
// write a file in several steps) into a single callback.
const debounceInterval = 150 * time.Millisecond

// Watcher watches a set of corpus files/directories for changes and invokes
// a callback, debounced, whenever one is modified. Grounded on SPEC_FULL.md
// §2's pairing of fsnotify with pyscn's service-layer shape: pyscn has no
// file watcher of its own, so this follows fsnotify's own recommended usage
// (one watcher, add all directories, filter events by suffix) rather than
// adapting a nonexistent teacher file.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dirs      map[string]bool
}

// NewWatcher creates a Watcher observing the directories containing each of
// paths. fsnotify watches directories, not individual files, so two files in
// the same directory share one underlying watch.
func NewWatcher(paths []string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, domain.NewInternalError("creating file watcher", err)
	}

	w := &Watcher{fsWatcher: fsWatcher, dirs: make(map[string]bool)}
	for _, path := range paths {
		dir := filepath.Dir(path)
		if w.dirs[dir] {
			continue
		}
		if err := fsWatcher.Add(dir); err != nil {
			fsWatcher.Close()
			return nil, domain.NewInternalError("watching directory "+dir, err)
		}
		w.dirs[dir] = true
	}
	return w, nil
}

// Watch blocks until ctx is cancelled, invoking onChange (debounced) with
// the path of each corpus file that was created or written. All state is
// owned by this single goroutine; the debounce timer only ever signals
// through its own channel, so there is no concurrent access to pending.
func (w *Watcher) Watch(ctx context.Context, onChange func(path string)) error {
	timer := time.NewTimer(debounceInterval)
	if !timer.Stop() {
		<-timer.C
	}
	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if !isCorpusFile(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			pending[event.Name] = true
			timer.Reset(debounceInterval)
		case <-timer.C:
			for path := range pending {
				onChange(path)
			}
			pending = make(map[string]bool)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			return domain.NewInternalError("watching corpus files", err)
		}
	}
}

// Close releases the underlying OS watch handles.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

func isCorpusFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
