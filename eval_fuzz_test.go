//go:build go1.18
// +build go1.18

package arith_test

import (
	"testing"

	"github.com/zephyrtronium/arith"
)

func FuzzEval(f *testing.F) {
	f.Add("1/0")
	f.Add("2(3)(4)")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		arith.EvalString(s)
		arith.EvalBig(s)
	})
}
