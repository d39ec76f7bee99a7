package rewrite

import "github.com/daonguyenios/SwiftFlagCleaner/internal/syntax"

// RewriteFile resolves every conditional block that references only flag,
// assuming the flag is permanently true. The input tree is not mutated; the
// result is a fresh tree plus whether any block was resolved. Blocks whose
// conditions mention other flags (or mention nothing the evaluator
// understands) survive verbatim, but their clause bodies are still visited
// so nested blocks on the target flag are resolved independently.
func RewriteFile(f *syntax.File, flag string) (*syntax.File, bool) {
	decls, edited, dangling := rewriteDecls(f.Decls, flag)
	return &syntax.File{
		Decls:        decls,
		Trailing:     concatTrivia(dangling, f.Trailing),
		FinalNewline: f.FinalNewline,
	}, edited
}

// rewriteDecls rewrites one declaration list. dangling is leading trivia of
// a removed block at the end of the list, which the caller re-attaches to
// whatever follows so comments and blank lines keep their place in the
// stream.
func rewriteDecls(decls []syntax.Decl, flag string) (out []syntax.Decl, edited bool, dangling []syntax.TriviaPiece) {
	var pending []syntax.TriviaPiece

	for _, d := range decls {
		switch node := d.(type) {
		case *syntax.Raw:
			if len(pending) > 0 {
				node = &syntax.Raw{Leading: concatTrivia(pending, node.Leading), Lines: node.Lines}
				pending = nil
			}
			out = append(out, node)

		case *syntax.CondBlock:
			names, ok := CollectFlags(node)
			if !ok || len(names) != 1 || !names[flag] {
				block, ed := rewriteUnrelatedBlock(node, flag)
				edited = edited || ed
				if len(pending) > 0 {
					block.Leading = concatTrivia(pending, block.Leading)
					pending = nil
				}
				out = append(out, block)
				continue
			}

			// Resolving the block removes its directive lines no matter
			// what replaces it.
			edited = true
			pending = concatTrivia(pending, node.Leading)

			winner := SelectClause(node, flag)
			if winner == nil {
				continue
			}
			body, _, bodyDangling := rewriteDecls(winner.Body, flag)
			if len(body) == 0 {
				pending = concatTrivia(pending, bodyDangling)
				continue
			}
			body[0] = withLeading(body[0], concatTrivia(pending, leadingOf(body[0])))
			pending = bodyDangling
			out = append(out, body...)
		}
	}
	return out, edited, pending
}

// rewriteUnrelatedBlock keeps a guard-failed block intact while its clause
// bodies are traversed for nested blocks on the target flag.
func rewriteUnrelatedBlock(block *syntax.CondBlock, flag string) (*syntax.CondBlock, bool) {
	edited := false
	clauses := make([]syntax.Clause, len(block.Clauses))
	for i, clause := range block.Clauses {
		body, ed, dangling := rewriteDecls(clause.Body, flag)
		clause.Body = body
		clause.Trailing = concatTrivia(dangling, clause.Trailing)
		clauses[i] = clause
		edited = edited || ed
	}
	return &syntax.CondBlock{
		Leading:   block.Leading,
		Clauses:   clauses,
		EndifLine: block.EndifLine,
	}, edited
}

func leadingOf(d syntax.Decl) []syntax.TriviaPiece {
	switch node := d.(type) {
	case *syntax.Raw:
		return node.Leading
	case *syntax.CondBlock:
		return node.Leading
	}
	return nil
}

func withLeading(d syntax.Decl, leading []syntax.TriviaPiece) syntax.Decl {
	switch node := d.(type) {
	case *syntax.Raw:
		return &syntax.Raw{Leading: leading, Lines: node.Lines}
	case *syntax.CondBlock:
		return &syntax.CondBlock{Leading: leading, Clauses: node.Clauses, EndifLine: node.EndifLine}
	}
	return d
}

func concatTrivia(a, b []syntax.TriviaPiece) []syntax.TriviaPiece {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	merged := make([]syntax.TriviaPiece, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return merged
}
