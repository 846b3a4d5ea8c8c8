package arith

import (
	"math"
)

// DivisionEpsilon is the smallest magnitude of a divisor. Dividing by
// anything closer to zero is a *DivisionByZeroError.
const DivisionEpsilon = 1e-6

// Eval evaluates the expression in double precision. Evaluation fails with a
// *MalformedError if the expression has a position where no term could
// start, or with a *DivisionByZeroError if any divisor is closer to zero than
// DivisionEpsilon. Other invalid operations, like a negative number raised to
// a fractional power, give NaN or an infinity without error.
//
// When the package tracer is at info level or more, Eval traces the
// expression, the result, and the time taken to evaluate it.
func (e *Expr) Eval() (float64, error) {
	tr := startTrace(e.src)
	r, err := e.n.eval(e.src)
	if err != nil {
		tr.fail(err)
		return 0, err
	}
	tr.done(r)
	return r, nil
}

// eval computes the node's value.
func (n *node) eval(src string) (float64, error) {
	switch n.kind {
	case nodeError:
		return 0, n.malformed(src)
	case nodeNum:
		return n.num, nil
	case nodePos:
		return n.left.eval(src)
	case nodeNeg:
		x, err := n.left.eval(src)
		if err != nil {
			return 0, err
		}
		return -x, nil
	}
	l, err := n.left.eval(src)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(src)
	if err != nil {
		return 0, err
	}
	switch n.kind {
	case nodeAdd:
		return l + r, nil
	case nodeSub:
		return l - r, nil
	case nodeMul:
		return l * r, nil
	case nodeDiv:
		if math.Abs(r) < DivisionEpsilon {
			return 0, &DivisionByZeroError{Col: n.pos, Divisor: r}
		}
		return l / r, nil
	case nodePow:
		return math.Pow(l, r), nil
	default:
		panic("arith: invalid AST node " + n.kind.String())
	}
}

// EvalString parses and evaluates an expression in double precision. Parse
// errors are traced like evaluation errors.
func EvalString(src string, opts ...ParseOption) (float64, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		startTrace(src).fail(err)
		return 0, err
	}
	return a.Eval()
}
