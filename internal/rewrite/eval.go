package rewrite

import "github.com/daonguyenios/SwiftFlagCleaner/internal/syntax"

// Eval evaluates a condition under the assumption that flag is defined and
// true. It is only called on expressions whose sole identifier is flag,
// which CollectFlags guarantees.
//
// The condition parser builds && and || left-associatively with no relative
// precedence, so evaluation collapses each operator as soon as its right
// operand is known, and parentheses only bound that grouping. For
// conjunctions and disjunctions over a single flag and integer literals
// this is exact; a mixed-operator chain like `a || b && c` evaluates as
// `(a || b) && c`. Tests pin this down; see DESIGN.md.
func Eval(e syntax.Expr, flag string) bool {
	switch v := e.(type) {
	case syntax.Ident:
		return v.Name == flag
	case syntax.IntLit:
		return v.Value > 0
	case syntax.Not:
		return !Eval(v.X, flag)
	case syntax.Binary:
		if v.Op == syntax.OpAnd {
			return Eval(v.Left, flag) && Eval(v.Right, flag)
		}
		return Eval(v.Left, flag) || Eval(v.Right, flag)
	case syntax.Paren:
		return Eval(v.Inner, flag)
	}
	return false
}
