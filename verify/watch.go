package verify

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/prooflabs/pcheck/scanner"
)

// Watcher re-verifies proof files as they are written. Every fresh report
// is handed to the report callback from the watch goroutine.
type Watcher struct {
	checker    ProofChecker
	watcher    *fsnotify.Watcher
	logger     *zap.Logger
	report     func(FileReport)
	isWatching bool
}

// NewWatcher builds a watcher that checks changed files with checker and
// delivers results through report.
func NewWatcher(logger *zap.Logger, checker ProofChecker, report func(FileReport)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}

	return &Watcher{
		checker: checker,
		watcher: w,
		logger:  logger,
		report:  report,
	}, nil
}

// Watch registers every directory under dirs, recursively, and starts the
// watch loop. It returns immediately; Stop ends the loop.
func (w *Watcher) Watch(dirs ...string) error {
	if w.isWatching {
		return errors.New("already watching")
	}

	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return w.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	w.isWatching = true
	go w.watchLoop()
	return nil
}

// Stop closes the watcher; the watch loop exits once its channels drain.
func (w *Watcher) Stop() error {
	w.isWatching = false
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if filepath.Ext(event.Name) != scanner.DefaultExtension {
		return
	}

	// wait for a while after file change to consider multiple changes as one
	time.Sleep(100 * time.Millisecond)

	report, err := ProcessFile(w.checker, event.Name)
	if err != nil {
		w.logger.Error("Error re-checking file", zap.String("file", event.Name), zap.Error(err))
		return
	}
	w.report(FileReport{Path: event.Name, Report: report})
}
