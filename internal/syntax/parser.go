package syntax

import (
	"fmt"
	"strings"
)

// ParseError reports source that could not be parsed into a declaration
// tree, e.g. an unbalanced #endif. Files that fail to parse are never
// rewritten.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

type directiveKind int

const (
	directiveNone directiveKind = iota
	directiveIf
	directiveElseIf
	directiveElse
	directiveEndif
)

// ParseFile parses source text into a declaration tree. Declarations are
// kept as opaque lines; only conditional-compilation directives, blank
// lines and comments are given structure. Text() on the result reproduces
// the input byte-for-byte.
func ParseFile(src []byte) (*File, error) {
	text := string(src)
	f := &File{}
	if text == "" {
		return f, nil
	}
	f.FinalNewline = strings.HasSuffix(text, "\n")
	if f.FinalNewline {
		text = text[:len(text)-1]
	}

	p := &parser{lines: strings.Split(text, "\n")}
	decls, trailing, err := p.parseDecls(false)
	if err != nil {
		return nil, err
	}
	f.Decls = decls
	f.Trailing = trailing
	return f, nil
}

type parser struct {
	lines []string
	pos   int
}

func (p *parser) eof() bool { return p.pos >= len(p.lines) }

// parseDecls consumes declarations until EOF, or until a #elseif/#else/#endif
// line when inBlock is set (the directive line is left unconsumed). It
// returns the declarations and any trivia pending after the last one.
func (p *parser) parseDecls(inBlock bool) ([]Decl, []TriviaPiece, error) {
	var decls []Decl
	var pending []TriviaPiece
	inString := false

	for !p.eof() {
		line := p.lines[p.pos]
		trimmed := strings.TrimSpace(line)

		// Inside a multiline string literal every line is content, even
		// ones that look like directives, comments or blank lines.
		if inString {
			decls = append(decls, &Raw{Leading: pending, Lines: []string{line}})
			pending = nil
			inString = !togglesStringLiteral(line)
			p.pos++
			continue
		}

		switch {
		case trimmed == "":
			start := p.pos
			for !p.eof() && strings.TrimSpace(p.lines[p.pos]) == "" {
				p.pos++
			}
			pending = append(pending, TriviaPiece{Kind: TriviaBlankLines, Text: p.lines[start:p.pos]})

		case strings.HasPrefix(trimmed, "//"):
			pending = append(pending, CommentLines(line))
			p.pos++

		case strings.HasPrefix(trimmed, "/*"):
			start := p.pos
			for !p.eof() && !strings.Contains(p.lines[p.pos], "*/") {
				p.pos++
			}
			if !p.eof() {
				p.pos++ // line containing */
			}
			pending = append(pending, CommentLines(p.lines[start:p.pos]...))

		default:
			kind := classifyDirective(trimmed)
			switch kind {
			case directiveIf:
				block, err := p.parseBlock(pending)
				if err != nil {
					return nil, nil, err
				}
				pending = nil
				decls = append(decls, block)
			case directiveElseIf, directiveElse, directiveEndif:
				if inBlock {
					return decls, pending, nil
				}
				return nil, nil, &ParseError{Line: p.pos + 1, Msg: fmt.Sprintf("unexpected %s outside a conditional block", trimmed)}
			default:
				decls = append(decls, &Raw{Leading: pending, Lines: []string{line}})
				pending = nil
				inString = togglesStringLiteral(line)
				p.pos++
			}
		}
	}
	return decls, pending, nil
}

// parseBlock consumes a whole #if ... #endif region, recursing through
// nested blocks inside clause bodies.
func (p *parser) parseBlock(leading []TriviaPiece) (*CondBlock, error) {
	block := &CondBlock{Leading: leading}
	startLine := p.pos + 1

	for {
		if p.eof() {
			return nil, &ParseError{Line: startLine, Msg: "conditional block is missing #endif"}
		}
		line := p.lines[p.pos]
		trimmed := strings.TrimSpace(line)
		kind := classifyDirective(trimmed)

		var clause Clause
		switch kind {
		case directiveIf:
			if len(block.Clauses) > 0 {
				// A nested #if is handled by parseDecls, not here.
				return nil, &ParseError{Line: p.pos + 1, Msg: "unexpected #if"}
			}
			clause = Clause{Kind: ClauseIf, Directive: line}
			clause.Cond, clause.Unsupported = parseCondition(strings.TrimPrefix(trimmed, "#if"))
		case directiveElseIf:
			clause = Clause{Kind: ClauseElseIf, Directive: line}
			clause.Cond, clause.Unsupported = parseCondition(strings.TrimPrefix(trimmed, "#elseif"))
		case directiveElse:
			clause = Clause{Kind: ClauseElse, Directive: line}
		case directiveEndif:
			block.EndifLine = line
			p.pos++
			return block, nil
		default:
			return nil, &ParseError{Line: p.pos + 1, Msg: "expected a conditional directive"}
		}

		if len(block.Clauses) > 0 && block.Clauses[len(block.Clauses)-1].Kind == ClauseElse {
			return nil, &ParseError{Line: p.pos + 1, Msg: "#else must be the last clause"}
		}

		p.pos++
		body, trailing, err := p.parseDecls(true)
		if err != nil {
			return nil, err
		}
		clause.Body = body
		clause.Trailing = trailing
		block.Clauses = append(block.Clauses, clause)
	}
}

// classifyDirective recognizes conditional-compilation directives. The
// keyword must end at a word boundary so identifiers like "#iffy" are not
// mistaken for directives.
func classifyDirective(trimmed string) directiveKind {
	for _, d := range []struct {
		word string
		kind directiveKind
	}{
		{"#elseif", directiveElseIf},
		{"#else", directiveElse},
		{"#endif", directiveEndif},
		{"#if", directiveIf},
	} {
		if rest, ok := strings.CutPrefix(trimmed, d.word); ok {
			if rest == "" || !isIdentChar(rest[0]) {
				return d.kind
			}
		}
	}
	return directiveNone
}

// togglesStringLiteral reports whether a line opens or closes a multiline
// string literal, i.e. carries an odd number of `"""` delimiters. A line
// that opens and closes one on the spot toggles nothing.
func togglesStringLiteral(line string) bool {
	return strings.Count(line, `"""`)%2 == 1
}

func isIdentChar(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
