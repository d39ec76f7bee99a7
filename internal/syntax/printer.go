package syntax

import "strings"

// Text reconstitutes the tree into source text. An untouched tree prints
// byte-for-byte equal to the input it was parsed from.
func (f *File) Text() string {
	var lines []string
	for _, d := range f.Decls {
		d.appendLines(&lines)
	}
	appendTrivia(&lines, f.Trailing)
	if len(lines) == 0 {
		return ""
	}
	out := strings.Join(lines, "\n")
	if f.FinalNewline {
		out += "\n"
	}
	return out
}

func appendTrivia(ls *[]string, trivia []TriviaPiece) {
	for _, p := range trivia {
		*ls = append(*ls, p.Text...)
	}
}

func (r *Raw) appendLines(ls *[]string) {
	appendTrivia(ls, r.Leading)
	*ls = append(*ls, r.Lines...)
}

func (b *CondBlock) appendLines(ls *[]string) {
	appendTrivia(ls, b.Leading)
	for _, c := range b.Clauses {
		*ls = append(*ls, c.Directive)
		for _, d := range c.Body {
			d.appendLines(ls)
		}
		appendTrivia(ls, c.Trailing)
	}
	*ls = append(*ls, b.EndifLine)
}
