package arith

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Context is a context for evaluating expressions to arbitrary precision. It
// is not safe to use a Context concurrently.
type Context struct {
	stack []*big.Float
	nums  map[string]*big.Float
	prec  uint
	err   error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{nums: make(map[string]*big.Float), prec: 64}
	return ctx.Clone(opts...)
}

// Eval evaluates an expression and returns the result. If an error occurs,
// then the result is nil and ctx.Err returns the error. The errors are those
// of Expr.Eval, plus *DomainError for operations with no real result, e.g.
// a negative number raised to a fractional power.
func (ctx *Context) Eval(e *Expr) *big.Float {
	switch len(ctx.stack) {
	case 0: // do nothing
	case 1:
		// Don't overwrite the previous result.
		ctx.stack[0] = new(big.Float).SetPrec(ctx.prec)
		ctx.stack = ctx.stack[:0]
	default:
		panic("arith: Eval during Eval")
	}
	tr := startTrace(e.src)
	err := e.n.bigeval(ctx, e.src)
	ctx.err = err
	if err != nil {
		ctx.stack = ctx.stack[:0]
		tr.fail(err)
		return nil
	}
	r := ctx.Result()
	tr.done(r)
	return r
}

// Result returns the result obtained after evaluating an expression. Panics if
// ctx has not been used to evaluate an expression. Returns nil if an error
// occurred during evaluation.
func (ctx *Context) Result() *big.Float {
	if ctx.err != nil {
		return nil
	}
	switch len(ctx.stack) {
	case 0:
		panic("arith: Context.Result called before evaluating any expression")
	case 1:
		return ctx.stack[0]
	default:
		panic("arith: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
}

// Err returns the error that occurred during the last evaluation with ctx,
// if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Clone creates a copy of a context and applies options to it. The returned
// context has no Result and is safe to use to evaluate an expression.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		stack: make([]*big.Float, 0, cap(ctx.stack)),
		nums:  make(map[string]*big.Float, len(ctx.nums)),
		prec:  ctx.prec,
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil: // do nothing
		case precopt:
			n.prec = uint(opt)
		default:
			panic("arith: unknown option type")
		}
	}
	// Copy numbers only if the new precision is no higher than the old, so
	// that we always use the precision we need.
	if n.prec <= ctx.prec {
		for k, v := range ctx.nums {
			n.nums[k] = new(big.Float).SetPrec(n.prec).Set(v)
		}
	}
	return &n
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float).SetPrec(ctx.prec)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float).SetPrec(ctx.prec))
	}
	return ctx.stack[len(ctx.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future node evaluations.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// num gets a possibly cached number from its text.
func (ctx *Context) num(s string) *big.Float {
	if r := ctx.nums[s]; r != nil {
		return r
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(s, 10)
	if err != nil {
		// The lexer only produces digits with at most one point.
		panic("arith: invalid number: " + s + " (" + err.Error() + ")")
	}
	ctx.nums[s] = r
	return r
}

var bigepsilon = big.NewFloat(DivisionEpsilon)

// bigeval pushes the node's value to the context's stack.
func (n *node) bigeval(ctx *Context, src string) (err error) {
	switch n.kind {
	case nodeError:
		return n.malformed(src)
	case nodeNum:
		ctx.push().Set(ctx.num(n.text))
		return nil
	case nodePos:
		return n.left.bigeval(ctx, src)
	case nodeNeg:
		if err := n.left.bigeval(ctx, src); err != nil {
			return err
		}
		v := ctx.top()
		v.Neg(v)
		return nil
	}
	if err := n.left.bigeval(ctx, src); err != nil {
		return err
	}
	if err := n.right.bigeval(ctx, src); err != nil {
		return err
	}
	r := ctx.pop()
	l := ctx.top()
	// Operations on infinities can panic with big.ErrNaN.
	defer func() {
		x := recover()
		if x == nil {
			return
		}
		if _, ok := x.(big.ErrNaN); !ok {
			panic(x)
		}
		err = &DomainError{Col: n.pos, X: r.String(), Op: n.op()}
	}()
	switch n.kind {
	case nodeAdd:
		l.Add(l, r)
	case nodeSub:
		l.Sub(l, r)
	case nodeMul:
		l.Mul(l, r)
	case nodeDiv:
		if new(big.Float).Abs(r).Cmp(bigepsilon) < 0 {
			d, _ := r.Float64()
			return &DivisionByZeroError{Col: n.pos, Divisor: d}
		}
		if l.IsInf() && r.IsInf() {
			return &DomainError{Col: n.pos, X: r.String(), Op: "/"}
		}
		l.Quo(l, r)
	case nodePow:
		return bigpow(n, l, r)
	default:
		panic("arith: invalid AST node " + n.kind.String())
	}
	return nil
}

// bigpow sets l to l^r. Results follow math.Pow wherever it is real.
func bigpow(n *node, l, r *big.Float) error {
	switch {
	case r.Sign() == 0:
		l.SetInt64(1)
	case l.Sign() == 0, l.IsInf():
		// 0^-r and Inf^r are infinite, 0^r and Inf^-r are zero. The sign
		// survives only for odd integer powers.
		neg := l.Signbit() && oddint(r)
		if l.IsInf() == (r.Sign() > 0) {
			l.SetInf(neg)
			return nil
		}
		l.SetInt64(0)
		if neg {
			l.Neg(l)
		}
	case l.Signbit():
		// Negative bases only have real powers for integer exponents.
		if !r.IsInt() {
			return &DomainError{Col: n.pos, X: l.String(), Op: "^"}
		}
		l.Neg(l)
		bigfloat.Pow(l, l, r)
		if oddint(r) {
			l.Neg(l)
		}
	default:
		bigfloat.Pow(l, l, r)
	}
	return nil
}

// oddint reports whether x is an odd integer.
func oddint(x *big.Float) bool {
	if !x.IsInt() {
		return false
	}
	k, _ := x.Int(nil)
	return k.Bit(0) == 1
}

// op returns the operator symbol for a binary node.
func (n *node) op() string {
	switch n.kind {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodePow:
		return "^"
	default:
		return n.kind.String()
	}
}

// EvalBig is a shortcut to parse an expression with default options and
// evaluate it to arbitrary precision.
func EvalBig(src string, opts ...ContextOption) (*big.Float, error) {
	ctx := NewContext(opts...)
	a, err := Parse(src)
	if err != nil {
		return nil, err
	}
	ctx.Eval(a)
	return ctx.Result(), ctx.Err()
}
