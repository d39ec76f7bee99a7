package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/daonguyenios/SwiftFlagCleaner/internal/objc"
	"github.com/daonguyenios/SwiftFlagCleaner/internal/types"
)

type watcher = *fsnotify.Watcher

// StartWatching re-runs the pipeline whenever a source file under one of
// the given directories changes. Results are delivered on the returned
// channel until StopWatching is called.
func (e *Engine) StartWatching(dirs []string) (<-chan types.FileResult, error) {
	if e.isWatching.Load() {
		return nil, fmt.Errorf("already watching")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	e.watcher = w
	e.watchDirs = dirs

	for _, dir := range e.watchDirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return e.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			e.watcher.Close()
			return nil, fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	results := make(chan types.FileResult)
	e.isWatching.Store(true)
	go e.watchLoop(results)
	return results, nil
}

func (e *Engine) StopWatching() error {
	if !e.isWatching.Swap(false) {
		return nil
	}
	return e.watcher.Close()
}

func (e *Engine) watchLoop(results chan<- types.FileResult) {
	defer close(results)
	for e.isWatching.Load() {
		select {
		case event, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event, results)
		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			e.logger.Error("watcher error", zap.Error(err))
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event, results chan<- types.FileResult) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	ext := filepath.Ext(event.Name)
	if ext != ".swift" && !objc.Extensions[ext] {
		return
	}
	// wait for a while after file change to consider multiple changes as one
	time.Sleep(100 * time.Millisecond)
	results <- e.Run(event.Name)
}
