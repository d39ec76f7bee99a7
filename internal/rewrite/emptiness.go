package rewrite

import "github.com/daonguyenios/SwiftFlagCleaner/internal/syntax"

// HasMeaningfulDecl reports whether the tree still contains any
// declaration worth keeping a file for. Comments and imports do not
// count; the walk stops at the first hit since the caller only needs
// any-versus-none.
func HasMeaningfulDecl(f *syntax.File) bool {
	return anyMeaningful(f.Decls)
}

func anyMeaningful(decls []syntax.Decl) bool {
	for _, d := range decls {
		switch node := d.(type) {
		case *syntax.Raw:
			if syntax.IsMeaningfulDecl(node) {
				return true
			}
		case *syntax.CondBlock:
			for _, clause := range node.Clauses {
				if anyMeaningful(clause.Body) {
					return true
				}
			}
		}
	}
	return false
}
