//go:build go1.18
// +build go1.18

package arith_test

import (
	"testing"

	"github.com/zephyrtronium/arith"
)

func FuzzParse(f *testing.F) {
	f.Add("2(3)^2")
	f.Add("(2+3")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := arith.Parse(s)
		if err != nil {
			if _, ok := err.(arith.InputError); !ok {
				t.Errorf("%q gave non-input error %#v", s, err)
			}
			return
		}
		if _, err := arith.Parse(a.String()); err != nil && a.Check() == nil {
			t.Errorf("%q formatted as %q, which does not parse: %v", s, a.String(), err)
		}
	})
}
