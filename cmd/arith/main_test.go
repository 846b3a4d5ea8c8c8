package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/arith"
)

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"plain", []string{"2(3)^2"}, "18\n"},
		{"fmt", []string{"--fmt=%.3f", "1/4"}, "0.250\n"},
		{"echo", []string{"--echo", "--", "-2^2"}, "((-(2)) ^ (2)) : 4\n"},
		{"rightpow", []string{"--right-pow", "2^3^2"}, "512\n"},
		{"lenient", []string{"--lenient", "(2+3"}, "5\n"},
		{"prec", []string{"-p", "128", "--fmt=%.30g", "2/3"}, "0.666666666666666666666666666667\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var cli cliArgs
			k, err := kong.New(&cli, kong.Description(description))
			require.NoError(t, err)
			_, err = k.Parse(c.args)
			require.NoError(t, err)
			var b strings.Builder
			require.NoError(t, run(&cli, &b))
			require.Equal(t, c.want, b.String())
		})
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		cli  cliArgs
		err  arith.InputError
	}{
		{"lex", cliArgs{Expr: "2@3", Fmt: "%g"}, new(arith.LexError)},
		{"unclosed", cliArgs{Expr: "(2+3", Fmt: "%g"}, new(arith.MalformedError)},
		{"div", cliArgs{Expr: "1/0", Fmt: "%g"}, new(arith.DivisionByZeroError)},
		{"div-big", cliArgs{Expr: "1/0", Fmt: "%g", Prec: 100}, new(arith.DivisionByZeroError)},
		{"domain", cliArgs{Expr: "(-2)^0.5", Fmt: "%g", Prec: 100}, new(arith.DomainError)},
		{"echo", cliArgs{Expr: "2)", Fmt: "%g", Echo: true}, new(arith.MalformedError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b strings.Builder
			err := run(&c.cli, &b)
			require.IsType(t, c.err, err)
			require.Empty(t, b.String())
		})
	}
}

func TestRunTrace(t *testing.T) {
	var buf bytes.Buffer
	tr := gologadapter.New()
	tr.SetTraceLevel(tracing.LevelInfo)
	tr.SetOutput(&buf)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return tr }))
	defer tracing.SetTraceSelector(nil)

	cases := []struct {
		name string
		cli  cliArgs
		want string
	}{
		{"double", cliArgs{Expr: "2(3)^2", Fmt: "%g", Echo: true}, "((2) * ((3) ^ (2))) : 18\n"},
		{"big", cliArgs{Expr: "2(3)^2", Fmt: "%g", Echo: true, Prec: 100}, "((2) * ((3) ^ (2))) : 18\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf.Reset()
			var b strings.Builder
			require.NoError(t, run(&c.cli, &b))
			require.Equal(t, c.want, b.String())
			require.Equal(t, 1, strings.Count(buf.String(), "evaluation for 2(3)^2"), "trace:\n%s", buf.String())
		})
	}
}
