// Package rewrite resolves a single feature flag to permanently-true
// inside parsed Swift source, removing the conditional-compilation
// scaffolding around it.
package rewrite

import (
	"fmt"

	"github.com/daonguyenios/SwiftFlagCleaner/internal/syntax"
)

// Result is the outcome of processing one file's source text.
type Result struct {
	// Edited reports whether any block was resolved. False means the file
	// matched the pre-filter but nothing in it concerned the flag alone.
	Edited bool
	// NewText is the rewritten source, set only when Edited is true and
	// DeleteRequested is false.
	NewText []byte
	// DeleteRequested means the rewrite left no meaningful declaration and
	// the file should be removed instead of written.
	DeleteRequested bool
}

// ProcessSource runs the full per-file pipeline on source text:
// parse, rewrite, and, if anything changed, reparse the output and decide
// between writing and deleting. The caller applies the result to disk.
func ProcessSource(src []byte, flag string) (Result, error) {
	file, err := syntax.ParseFile(src)
	if err != nil {
		return Result{}, fmt.Errorf("parse: %w", err)
	}

	rewritten, edited := RewriteFile(file, flag)
	if !edited {
		return Result{}, nil
	}

	text := rewritten.Text()
	reparsed, err := syntax.ParseFile([]byte(text))
	if err != nil {
		return Result{}, fmt.Errorf("reparse after rewrite: %w", err)
	}
	if !HasMeaningfulDecl(reparsed) {
		return Result{Edited: true, DeleteRequested: true}, nil
	}
	return Result{Edited: true, NewText: []byte(text)}, nil
}
