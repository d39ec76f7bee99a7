package syntax

// Expr represents a condition expression node after `#if` or `#elseif`.
type Expr interface {
	exprNode()
}

// Ident is a bare flag reference like FEATURE_X.
type Ident struct {
	Name string
}

func (Ident) exprNode() {}

// IntLit is an integer literal condition like `#if 0`.
type IntLit struct {
	Value int
}

func (IntLit) exprNode() {}

// Not is a negation like `!FEATURE_X`.
type Not struct {
	X Expr
}

func (Not) exprNode() {}

// BinaryOp identifies the operator of a Binary expression.
type BinaryOp int

const (
	OpAnd BinaryOp = iota // &&
	OpOr                  // ||
)

// Binary is a two-operand boolean operation.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (Binary) exprNode() {}

// Paren is a parenthesized expression.
type Paren struct {
	Inner Expr
}

func (Paren) exprNode() {}
