package syntax

import (
	"strconv"
	"strings"
)

// parseCondition parses the text after #if or #elseif into an expression.
// Conditions built from identifiers, integer literals, !, &&, || and
// parentheses are supported. Anything else, including platform conditions
// like os(iOS) or swift(>=5), yields (nil, true) so the enclosing block is
// left untouched.
//
// Operators are parsed left-associatively with no precedence between &&
// and ||, matching an evaluator that collapses each pending operator as
// soon as its right operand appears. See internal/rewrite/eval.go.
func parseCondition(s string) (expr Expr, unsupported bool) {
	toks, ok := tokenizeCondition(s)
	if !ok || len(toks) == 0 {
		return nil, true
	}
	p := condParser{toks: toks}
	e, ok := p.parseExpr()
	if !ok || p.pos != len(p.toks) {
		return nil, true
	}
	return e, false
}

type condToken struct {
	kind condTokenKind
	text string
}

type condTokenKind int

const (
	tokIdent condTokenKind = iota
	tokInt
	tokNot
	tokAnd
	tokOr
	tokLParen
	tokRParen
)

func tokenizeCondition(s string) ([]condToken, bool) {
	var toks []condToken
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '!':
			toks = append(toks, condToken{kind: tokNot})
			i++
		case c == '(':
			toks = append(toks, condToken{kind: tokLParen})
			i++
		case c == ')':
			toks = append(toks, condToken{kind: tokRParen})
			i++
		case c == '&' || c == '|':
			if i+1 >= len(s) || s[i+1] != c {
				return nil, false
			}
			if c == '&' {
				toks = append(toks, condToken{kind: tokAnd})
			} else {
				toks = append(toks, condToken{kind: tokOr})
			}
			i += 2
		case c == '/':
			// A trailing comment ends the condition.
			if strings.HasPrefix(s[i:], "//") {
				return toks, true
			}
			return nil, false
		case c >= '0' && c <= '9':
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			toks = append(toks, condToken{kind: tokInt, text: s[i:j]})
			i = j
		case isIdentChar(c):
			j := i
			for j < len(s) && isIdentChar(s[j]) {
				j++
			}
			toks = append(toks, condToken{kind: tokIdent, text: s[i:j]})
			i = j
		default:
			return nil, false
		}
	}
	return toks, true
}

type condParser struct {
	toks []condToken
	pos  int
}

func (p *condParser) parseExpr() (Expr, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for p.pos < len(p.toks) {
		var op BinaryOp
		switch p.toks[p.pos].kind {
		case tokAnd:
			op = OpAnd
		case tokOr:
			op = OpOr
		default:
			return left, true
		}
		p.pos++
		right, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
	return left, true
}

func (p *condParser) parseUnary() (Expr, bool) {
	if p.pos >= len(p.toks) {
		return nil, false
	}
	switch t := p.toks[p.pos]; t.kind {
	case tokNot:
		p.pos++
		x, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return Not{X: x}, true
	case tokIdent:
		p.pos++
		return Ident{Name: t.text}, true
	case tokInt:
		p.pos++
		n, err := strconv.Atoi(t.text)
		if err != nil {
			return nil, false
		}
		return IntLit{Value: n}, true
	case tokLParen:
		p.pos++
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if p.pos >= len(p.toks) || p.toks[p.pos].kind != tokRParen {
			return nil, false
		}
		p.pos++
		return Paren{Inner: inner}, true
	}
	return nil, false
}
