package rewrite

import "github.com/daonguyenios/SwiftFlagCleaner/internal/syntax"

// SelectClause returns the clause that survives once flag is permanently
// true: the first if/elseif clause whose condition evaluates true, the
// else clause when none does, or nil when the block has no else. A nil
// result means the whole block disappears with no replacement.
func SelectClause(block *syntax.CondBlock, flag string) *syntax.Clause {
	var elseClause *syntax.Clause
	for i := range block.Clauses {
		clause := &block.Clauses[i]
		if clause.Kind == syntax.ClauseElse {
			elseClause = clause
			continue
		}
		if Eval(clause.Cond, flag) {
			return clause
		}
	}
	return elseClause
}
