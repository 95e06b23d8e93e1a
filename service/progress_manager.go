package service

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// ProgressManager tracks and displays progress for long-running stages of
// the CLI (corpus discovery, analysis, emission), grounded on pyscn's
// ProgressManagerImpl. pyscn's own domain package never declares the
// ProgressManager interface its doc-comment claims to implement (see
// DESIGN.md), so this is a concrete type rather than an interface
// implementation.
type ProgressManager struct {
	mu          sync.Mutex
	writer      io.Writer
	tasks       map[string]*TaskProgress
	totalFiles  int
	interactive bool
	initialized bool
}

// TaskProgress tracks the progress of a single named stage.
type TaskProgress struct {
	Name        string
	ProgressBar *progressbar.ProgressBar
	Started     bool
	Completed   bool
	Success     bool
	Processed   int
	Total       int
}

// NewProgressManager creates a new progress manager writing to stderr.
func NewProgressManager() *ProgressManager {
	return &ProgressManager{
		tasks:       make(map[string]*TaskProgress),
		writer:      os.Stderr,
		interactive: IsInteractiveEnvironment(),
	}
}

// Initialize sets up progress tracking for the given number of files.
func (pm *ProgressManager) Initialize(totalFiles int) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.totalFiles = totalFiles
	pm.initialized = true
	pm.tasks = make(map[string]*TaskProgress)
}

// StartTask marks a task as started, creating a progress bar if interactive.
func (pm *ProgressManager) StartTask(taskName string) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	if !pm.initialized {
		return
	}
	task, exists := pm.tasks[taskName]
	if !exists {
		task = &TaskProgress{Name: taskName, Total: pm.totalFiles}
		pm.tasks[taskName] = task
	}
	task.Started = true
	if pm.interactive && task.ProgressBar == nil {
		task.ProgressBar = pm.createProgressBar(taskName, pm.totalFiles)
	}
}

// CompleteTask marks a task as completed.
func (pm *ProgressManager) CompleteTask(taskName string, success bool) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	task, exists := pm.tasks[taskName]
	if !exists {
		return
	}
	task.Completed = true
	task.Success = success
	if task.ProgressBar != nil {
		_ = task.ProgressBar.Finish()
	}
}

// UpdateProgress updates the progress for a specific task.
func (pm *ProgressManager) UpdateProgress(taskName string, processed, total int) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	task, exists := pm.tasks[taskName]
	if !exists {
		task = &TaskProgress{Name: taskName, Total: total}
		pm.tasks[taskName] = task
	}
	task.Processed = processed
	task.Total = total
	if task.ProgressBar != nil {
		_ = task.ProgressBar.Set(processed)
	}
}

// SetWriter sets the output writer for progress bars and re-checks TTY-ness.
func (pm *ProgressManager) SetWriter(writer io.Writer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.writer = writer
	if file, ok := writer.(*os.File); ok {
		pm.interactive = term.IsTerminal(int(file.Fd()))
	} else {
		pm.interactive = false
	}
}

// IsInteractive returns true if progress bars should be shown.
func (pm *ProgressManager) IsInteractive() bool {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	return pm.interactive
}

// Close finishes any incomplete progress bars.
func (pm *ProgressManager) Close() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	for _, task := range pm.tasks {
		if task.ProgressBar != nil && !task.Completed {
			_ = task.ProgressBar.Finish()
		}
	}
}

func (pm *ProgressManager) createProgressBar(description string, max int) *progressbar.ProgressBar {
	writer := pm.writer
	if writer == nil {
		writer = io.Discard
	}
	return progressbar.NewOptions(max,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetWriter(writer),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(writer) }),
	)
}
