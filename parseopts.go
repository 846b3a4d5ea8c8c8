package arith

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	lenientopt  struct{}
	rightpowopt struct{}
)

// parsectx holds general data for parsing. It is also a ParseOption.
type parsectx struct {
	// lenient indicates that an open bracket may be closed by the end of
	// the input.
	lenient bool
	// pow is the operator used for ^.
	pow operator
}

func defaultParsectx() parsectx {
	return parsectx{pow: powprec}
}

// LenientBrackets tells the parser to accept open brackets which are never
// closed, so that "(2+3" is the same as "(2+3)". By default, an unclosed
// bracket is a *MalformedError.
func LenientBrackets() ParseOption {
	return lenientopt{}
}

func (lenientopt) parseOption(p parsectx) parsectx {
	p.lenient = true
	return p
}

// RightAssociativePow tells the parser to group chains of exponentiations
// from the right, so that "2^3^2" is "2^(3^2)". By default, ^ is
// left-associative like every other operator and "2^3^2" is "(2^3)^2".
func RightAssociativePow() ParseOption {
	return rightpowopt{}
}

func (rightpowopt) parseOption(p parsectx) parsectx {
	p.pow.right = true
	return p
}

// ParsingPreset collects parsing options into one. A preset panics when it
// would change any option from the default, but it is safe to apply other
// options after a preset.
func ParsingPreset(opts ...ParseOption) ParseOption {
	p := defaultParsectx()
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	if p != defaultParsectx() {
		panic("arith: preset applied to non-default parse config")
	}
	return *o
}
