package internal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/daonguyenios/SwiftFlagCleaner/internal/types"
)

var (
	writtenStyle   = color.New(color.FgGreen, color.Bold)
	deletedStyle   = color.New(color.FgRed, color.Bold)
	unchangedStyle = color.New(color.FgYellow)
	failedStyle    = color.New(color.FgRed, color.Bold)
	fileStyle      = color.New(color.FgCyan)
)

// FormatResults renders the per-file outcomes as a console report:
// changed files first, grouped by outcome, then a one-line summary.
func FormatResults(results []types.FileResult, verbose bool) string {
	sorted := make([]types.FileResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	var builder strings.Builder
	counts := make(map[types.Outcome]int)

	for _, r := range sorted {
		counts[r.Outcome]++
		switch r.Outcome {
		case types.OutcomeWritten:
			builder.WriteString(writtenStyle.Sprint("  rewrote ") + fileStyle.Sprint(r.Path) + "\n")
		case types.OutcomeDeleted:
			builder.WriteString(deletedStyle.Sprint("  deleted ") + fileStyle.Sprint(r.Path) + "\n")
		case types.OutcomeFailed:
			builder.WriteString(failedStyle.Sprint("  failed  ") + fileStyle.Sprint(r.Path) +
				fmt.Sprintf(": %s", r.Reason) + "\n")
		case types.OutcomeUnchanged:
			if verbose {
				builder.WriteString(unchangedStyle.Sprint("  skipped ") + fileStyle.Sprint(r.Path) + "\n")
			}
		}
	}

	builder.WriteString(fmt.Sprintf("\n%d rewritten, %d deleted, %d unchanged, %d failed\n",
		counts[types.OutcomeWritten], counts[types.OutcomeDeleted],
		counts[types.OutcomeUnchanged], counts[types.OutcomeFailed]))
	return builder.String()
}
