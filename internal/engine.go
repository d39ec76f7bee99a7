package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/daonguyenios/SwiftFlagCleaner/internal/objc"
	"github.com/daonguyenios/SwiftFlagCleaner/internal/rewrite"
	"github.com/daonguyenios/SwiftFlagCleaner/internal/types"
)

// Engine drives the per-file pipeline: read, resolve the flag for the
// file's dialect, then atomically write back or delete. Files are
// independent; one Engine may be shared by concurrent workers.
type Engine struct {
	flag         string
	dryRun       bool
	ignoredPaths []string
	logger       *zap.Logger

	// watch mode state, see watch.go
	watcher    watcher
	watchDirs  []string
	isWatching atomic.Bool
}

// NewEngine creates an engine that resolves flag to permanently-true.
// With dryRun set, outcomes are computed but nothing touches the disk.
func NewEngine(flag string, dryRun bool, logger *zap.Logger) (*Engine, error) {
	if flag == "" {
		return nil, fmt.Errorf("flag name must not be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{flag: flag, dryRun: dryRun, logger: logger}, nil
}

// Flag returns the target flag name.
func (e *Engine) Flag() string { return e.flag }

// IgnorePath excludes a path prefix from processing.
func (e *Engine) IgnorePath(path string) {
	e.ignoredPaths = append(e.ignoredPaths, filepath.Clean(path))
}

func (e *Engine) isIgnored(path string) bool {
	clean := filepath.Clean(path)
	for _, p := range e.ignoredPaths {
		if clean == p || strings.HasPrefix(clean, p+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Run processes a single file and returns its terminal outcome. The file
// is either rewritten in one atomic replacement, deleted, reported
// unchanged, or reported failed; partial writes are never visible.
func (e *Engine) Run(path string) types.FileResult {
	if e.isIgnored(path) {
		return types.FileResult{Path: path, Outcome: types.OutcomeUnchanged}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return failed(path, fmt.Errorf("read: %w", err))
	}

	switch ext := filepath.Ext(path); {
	case ext == ".swift":
		return e.runSwift(path, content)
	case objc.Extensions[ext]:
		return e.runObjC(path, content)
	default:
		return types.FileResult{Path: path, Outcome: types.OutcomeUnchanged}
	}
}

// RunSource resolves the flag in Swift source text without touching the
// filesystem. This is the library entry point mirrored by Run.
func (e *Engine) RunSource(source []byte) (rewrite.Result, error) {
	return rewrite.ProcessSource(source, e.flag)
}

func (e *Engine) runSwift(path string, content []byte) types.FileResult {
	res, err := rewrite.ProcessSource(content, e.flag)
	if err != nil {
		return failed(path, err)
	}
	if !res.Edited {
		return types.FileResult{Path: path, Outcome: types.OutcomeUnchanged}
	}

	if res.DeleteRequested {
		if !e.dryRun {
			if err := os.Remove(path); err != nil {
				return failed(path, fmt.Errorf("delete: %w", err))
			}
		}
		e.logger.Debug("deleted empty file", zap.String("file", path))
		return types.FileResult{Path: path, Outcome: types.OutcomeDeleted}
	}

	if !e.dryRun {
		if err := replaceFile(path, res.NewText); err != nil {
			return failed(path, fmt.Errorf("write: %w", err))
		}
	}
	e.logger.Debug("rewrote file", zap.String("file", path))
	return types.FileResult{Path: path, Outcome: types.OutcomeWritten}
}

func (e *Engine) runObjC(path string, content []byte) types.FileResult {
	newText, edited := objc.Transform(content, e.flag)
	if !edited {
		return types.FileResult{Path: path, Outcome: types.OutcomeUnchanged}
	}
	if !e.dryRun {
		if err := replaceFile(path, newText); err != nil {
			return failed(path, fmt.Errorf("write: %w", err))
		}
	}
	e.logger.Debug("rewrote file", zap.String("file", path))
	return types.FileResult{Path: path, Outcome: types.OutcomeWritten}
}

// replaceFile swaps in new content via a rename so readers never observe
// a half-written file.
func replaceFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".flagcleaner-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if info, err := os.Stat(path); err == nil {
		_ = tmp.Chmod(info.Mode())
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func failed(path string, err error) types.FileResult {
	return types.FileResult{
		Path:    path,
		Outcome: types.OutcomeFailed,
		Err:     err,
		Reason:  err.Error(),
	}
}
