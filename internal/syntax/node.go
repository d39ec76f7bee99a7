package syntax

// Decl is one item in a file's declaration stream: either an opaque source
// line (Raw) or a structured conditional-compilation block (CondBlock).
type Decl interface {
	declNode()
	appendLines(ls *[]string)
}

// Raw is an opaque declaration line. The parser does not interpret Swift
// declarations beyond the keyword scan in classify.go; the line is carried
// and printed verbatim.
type Raw struct {
	Leading []TriviaPiece
	Lines   []string
}

func (*Raw) declNode() {}

// ClauseKind identifies which branch of a conditional block a clause is.
type ClauseKind int

const (
	ClauseIf ClauseKind = iota
	ClauseElseIf
	ClauseElse
)

// Clause is one branch of a conditional-compilation block. Cond is nil for
// else clauses and for conditions the tokenizer could not classify; the
// latter is flagged with Unsupported so the rewriter can leave the whole
// block alone.
type Clause struct {
	Kind        ClauseKind
	Cond        Expr
	Unsupported bool
	// Directive is the raw directive line as written, indentation and any
	// trailing comment included.
	Directive string
	Body      []Decl
	// Trailing is the trivia between the last body declaration and the next
	// directive line.
	Trailing []TriviaPiece
}

// CondBlock is a parsed #if/#elseif/#else/#endif region.
type CondBlock struct {
	Leading []TriviaPiece
	// Clauses holds at least one clause; an else clause, if present, is last.
	Clauses   []Clause
	EndifLine string
}

func (*CondBlock) declNode() {}

// File is the parsed declaration tree of one source file.
type File struct {
	Decls []Decl
	// Trailing is trivia after the last declaration.
	Trailing []TriviaPiece
	// FinalNewline records whether the source ended with a line terminator.
	FinalNewline bool
}
