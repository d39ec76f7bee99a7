package types

// Outcome is the terminal state of one processed file. Every file ends in
// exactly one outcome; a computed-but-unapplied change is Failed, never
// Unchanged.
type Outcome int

const (
	// OutcomeUnchanged means the file matched the pre-filter but contained no
	// block referencing only the target flag. Nothing was written.
	OutcomeUnchanged Outcome = iota
	// OutcomeWritten means at least one block was resolved and the new
	// content replaced the file.
	OutcomeWritten
	// OutcomeDeleted means the rewrite left no meaningful declaration and
	// the file was removed.
	OutcomeDeleted
	// OutcomeFailed means parsing or I/O failed; the file was left as-is.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeWritten:
		return "written"
	case OutcomeDeleted:
		return "deleted"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// FileResult records what happened to a single file.
type FileResult struct {
	Path    string  `json:"path"`
	Outcome Outcome `json:"outcome"`
	// Err is set only when Outcome is OutcomeFailed.
	Err error `json:"-"`
	// Reason is the printable form of Err for JSON output.
	Reason string `json:"reason,omitempty"`
}
