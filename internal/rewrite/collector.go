package rewrite

import "github.com/daonguyenios/SwiftFlagCleaner/internal/syntax"

// CollectFlags returns the set of distinct identifier names referenced by
// any clause condition of the block. ok is false when a clause carries a
// condition the parser could not classify; such a block is treated as
// guard-failed and left untouched.
func CollectFlags(block *syntax.CondBlock) (names map[string]bool, ok bool) {
	names = make(map[string]bool)
	for _, clause := range block.Clauses {
		if clause.Kind == syntax.ClauseElse {
			continue
		}
		if clause.Unsupported || clause.Cond == nil {
			return nil, false
		}
		collectIdents(clause.Cond, names)
	}
	return names, true
}

func collectIdents(e syntax.Expr, names map[string]bool) {
	switch v := e.(type) {
	case syntax.Ident:
		names[v.Name] = true
	case syntax.IntLit:
		// literals contribute no names
	case syntax.Not:
		collectIdents(v.X, names)
	case syntax.Binary:
		collectIdents(v.Left, names)
		collectIdents(v.Right, names)
	case syntax.Paren:
		collectIdents(v.Inner, names)
	}
}
