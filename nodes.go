package arith

import (
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// num is the value of a nodeNum.
	num float64
	// text is the source text of a nodeNum, or the offending token of a
	// nodeError.
	text string
	// pos is the column of the token that produced the node.
	pos int

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeError nodeKind = iota // no term could start here

	nodeNum // num

	nodePos // evaluate left
	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes the node fully parenthesized, so that parsing the result
// produces the same tree.
func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeError:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		b.WriteString(n.text)
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.text)
	case nodePos:
		b.WriteByte('+')
		n.left.fmt(b)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeAdd:
		n.binary(b, " + ")
	case nodeSub:
		n.binary(b, " - ")
	case nodeMul:
		n.binary(b, " * ")
	case nodeDiv:
		n.binary(b, " / ")
	case nodePow:
		n.binary(b, " ^ ")
	default:
		panic("arith: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) binary(b *strings.Builder, op string) {
	n.left.fmt(b)
	b.WriteString(op)
	n.right.fmt(b)
}

// firstError finds the leftmost error node in the tree, or nil.
func (n *node) firstError() *node {
	if n == nil {
		return nil
	}
	if n.kind == nodeError {
		return n
	}
	if e := n.left.firstError(); e != nil {
		return e
	}
	return n.right.firstError()
}
