package arith

import (
	"errors"
	"strconv"
	"strings"
)

// Expr = Prefix | Add | Sub | Mul | Div | Pow
// Prefix = num | '(' Expr ')' | Pos | Neg | Prefix num | Prefix '(' Expr ')'
// Pos = '+' Prefix
// Neg = '-' Prefix
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Pow = Expr '^' Expr

// Expr is a parsed expression. An Expr is immutable and may be evaluated
// concurrently.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// src is the text the expression was parsed from.
	src string
}

// parser holds the state of a single parse.
type parser struct {
	scan *lexer
	// cur is the lookahead token. It is never an error token.
	cur lexToken
	src string
	ctx *parsectx
}

// advance scans the next lookahead token. A character the lexer does not
// understand ends parsing.
func (ps *parser) advance() error {
	ps.cur = ps.scan.next()
	if ps.cur.kind == tokenError {
		return &LexError{Input: ps.src, Text: ps.cur.text, Col: ps.cur.pos}
	}
	return nil
}

// unexpected creates an error for the lookahead token.
func (ps *parser) unexpected() error {
	return &MalformedError{Input: ps.src, Col: ps.cur.pos, Text: ps.cur.text, Reason: reason(ps.cur.text, ps.cur.pos)}
}

// Parse parses an expression so it can be evaluated. The given options are
// applied in order.
//
// Characters which cannot begin a token cause a *LexError. Tokens following a
// complete expression and unclosed brackets cause a *MalformedError. Other
// positions where no term can start, like a stray operator or an empty input,
// do not fail parsing; they fail evaluation instead, and Check reports them
// without evaluating.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	p := defaultParsectx()
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	ps := parser{scan: lex(src), src: src, ctx: &p}
	if err := ps.advance(); err != nil {
		return nil, err
	}
	n, err := parseexpr(&ps, exprprec)
	if err != nil {
		return nil, err
	}
	if ps.cur.kind != tokenEOF {
		return nil, ps.unexpected()
	}
	return &Expr{n: n, src: src}, nil
}

// parseexpr parses operators which bind more tightly than until.
func parseexpr(ps *parser, until operator) (*node, error) {
	n, err := parseprefix(ps)
	if err != nil {
		return nil, err
	}
	for {
		op := ps.binop(ps.cur.kind)
		if op.prec == precMin || !op.moreBinding(until) {
			return n, nil
		}
		tok := ps.cur
		if err := ps.advance(); err != nil {
			return nil, err
		}
		rhs, err := parseexpr(ps, op)
		if err != nil {
			return nil, err
		}
		n = &node{kind: op.op, pos: tok.pos, left: n, right: rhs}
	}
}

// parseprefix parses a term: a number, a bracketed expression, or a unary
// operator applied to a term. If no term can start at the current token,
// the result is an error node and no tokens are consumed. A term followed
// immediately by a number or open bracket is multiplied by it. Further
// implicit factors nest on the right, so "2(3)(4)" is "2*(3*4)".
func parseprefix(ps *parser) (*node, error) {
	tok := ps.cur
	var n *node
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			// The lexer only produces digits with at most one point.
			panic("arith: invalid number " + strconv.Quote(tok.text) + ": " + err.Error())
		}
		// Out of range numbers are infinite.
		n = &node{kind: nodeNum, num: v, text: tok.text, pos: tok.pos}
		if err := ps.advance(); err != nil {
			return nil, err
		}
	case tokenOpen:
		if err := ps.advance(); err != nil {
			return nil, err
		}
		rhs, err := parseexpr(ps, exprprec)
		if err != nil {
			return nil, err
		}
		switch ps.cur.kind {
		case tokenClose:
			if err := ps.advance(); err != nil {
				return nil, err
			}
		case tokenEOF:
			if !ps.ctx.lenient {
				return nil, &MalformedError{Input: ps.src, Col: tok.pos, Text: tok.text, Reason: reasonUnclosed}
			}
		default:
			return nil, ps.unexpected()
		}
		n = rhs
	case tokenPlus, tokenMinus:
		if err := ps.advance(); err != nil {
			return nil, err
		}
		rhs, err := parseprefix(ps)
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodePos, pos: tok.pos, left: rhs}
		if tok.kind == tokenMinus {
			n.kind = nodeNeg
		}
	default:
		n = &node{kind: nodeError, text: tok.text, pos: tok.pos}
	}
	if ps.cur.kind == tokenNum || ps.cur.kind == tokenOpen {
		// 2(3) -> (2) * (3)
		// 2(3)^2 -> (2) * ((3)^2)
		// 2(3)(4) -> (2) * ((3) * (4))
		pos := ps.cur.pos
		rhs, err := parseexpr(ps, divprec)
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeMul, pos: pos, left: n, right: rhs}
	}
	return n, nil
}

// String creates a string representation of the parsed expression with each
// term in brackets. Parsing the result gives the same expression.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b)
	return b.String()
}

// Source returns the text the expression was parsed from.
func (e *Expr) Source() string {
	return e.src
}

// Check returns a *MalformedError for the first position in the expression
// where no term could start, or nil if there is none. Evaluating an
// expression for which Check returns an error always fails.
func (e *Expr) Check() error {
	if n := e.n.firstError(); n != nil {
		return n.malformed(e.src)
	}
	return nil
}

// malformed creates the error for an error node.
func (n *node) malformed(src string) error {
	return &MalformedError{Input: src, Col: n.pos, Text: n.text, Reason: reason(n.text, n.pos)}
}

// reason describes why no term can start at a token.
func reason(text string, pos int) string {
	switch {
	case text == "" && pos <= 1:
		return reasonNoExpr
	case text == "":
		return reasonNoExprEnd
	case isAlpha(text[0]):
		return reasonName
	default:
		return reasonUnexpected
	}
}

type precedence int8

const (
	// precMin is lower than any operator.
	precMin precedence = iota
	precTerm
	precMul
	precDiv
	precPow
)

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec precedence
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the binary operator for a token kind. If there is no such
// binary operator, then the result has a prec of precMin.
func (ps *parser) binop(kind tokenKind) operator {
	if kind == tokenCaret {
		return ps.ctx.pow
	}
	return binop(kind)
}

// binop gets the default binary operator for a token kind. If there is no
// such binary operator, then the result has a prec of precMin.
func binop(kind tokenKind) operator {
	switch kind {
	case tokenPlus:
		return operator{precTerm, false, nodeAdd}
	case tokenMinus:
		return operator{precTerm, false, nodeSub}
	case tokenStar:
		return operator{precMul, false, nodeMul}
	case tokenSlash:
		return operator{precDiv, false, nodeDiv}
	case tokenCaret:
		return operator{precPow, false, nodePow}
	default:
		return operator{}
	}
}

var (
	// divprec is the precedence of the right side of an implicit
	// multiplication. It is that of division, so "2(3)^2" is "2*(3^2)" and
	// "2(6)/3" is "(2*6)/3".
	divprec = binop(tokenSlash)
	// powprec is the default precedence of exponentiation.
	powprec = binop(tokenCaret)
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = operator{precMin, false, nodeError}
)
