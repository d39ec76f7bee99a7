package syntax

// Trivia is non-semantic content attached to a declaration: blank lines and
// comments that precede it. Trivia prints back verbatim; the rewriter moves
// whole pieces between declarations but never edits their contents.

// TriviaKind classifies a trivia run.
type TriviaKind int

const (
	// TriviaBlankLines is a run of consecutive lines containing nothing but
	// whitespace.
	TriviaBlankLines TriviaKind = iota
	// TriviaComment is a // line or a /* ... */ span.
	TriviaComment
)

// TriviaPiece is one classified run in a declaration's leading trivia. Text
// holds the raw source lines of the run, indentation included.
type TriviaPiece struct {
	Kind TriviaKind
	Text []string
}

// CommentLines builds a comment run from raw source lines.
func CommentLines(lines ...string) TriviaPiece {
	return TriviaPiece{Kind: TriviaComment, Text: lines}
}
