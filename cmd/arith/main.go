package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/zephyrtronium/arith"
)

type cliArgs struct {
	Expr     string `arg:"" help:"Expression to evaluate."`
	Prec     uint   `short:"p" help:"Precision of calculations in bits. Zero calculates in double precision."`
	Fmt      string `default:"%g" help:"Result formatting string."`
	Echo     bool   `help:"Print the parse tree."`
	Trace    bool   `help:"Trace evaluation and timing to stderr."`
	Lenient  bool   `help:"Accept open brackets which are never closed."`
	RightPow bool   `help:"Group chains of ^ from the right."`
}

const description = `
Evaluate an arithmetic expression of numbers, parentheses, + - * / ^, unary
+ and -, and implicit multiplication like 2(3).
`

func main() {
	var cli cliArgs
	kctx := kong.Parse(&cli, kong.Description(description))
	if cli.Trace {
		t := gologadapter.New()
		t.SetTraceLevel(tracing.LevelInfo)
		t.SetOutput(os.Stderr)
		tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return t }))
	}
	err := run(&cli, os.Stdout)
	if d := arith.Diagnostic(err); d != "" {
		fmt.Fprintln(os.Stderr, d)
	}
	kctx.FatalIfErrorf(err)
}

// run evaluates the expression named by the arguments and writes the result
// to w.
func run(cli *cliArgs, w io.Writer) error {
	var opts []arith.ParseOption
	if cli.Lenient {
		opts = append(opts, arith.LenientBrackets())
	}
	if cli.RightPow {
		opts = append(opts, arith.RightAssociativePow())
	}
	a, err := arith.Parse(cli.Expr, opts...)
	if err != nil {
		return err
	}
	if cli.Echo {
		fmt.Fprintf(w, "%v : ", a)
	}

	verb := cli.Fmt + "\n"
	if cli.Prec == 0 {
		r, err := a.Eval()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, verb, r)
		return nil
	}
	ctx := arith.NewContext(arith.Prec(cli.Prec))
	r := ctx.Eval(a)
	if err := ctx.Err(); err != nil {
		return err
	}
	fmt.Fprintf(w, verb, r)
	return nil
}
