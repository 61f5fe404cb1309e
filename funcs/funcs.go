// Package funcs is a small catalog of named group-relaxation functions
// used by tests and callers: the GMIC function and a minimal-but-not-
// extreme example whose perturbation only shows up on a refined grid.
package funcs

import (
	"fmt"

	"github.com/exactcut/groupfn/exact"
	"github.com/exactcut/groupfn/pwl"
)

// Gmic returns the Gomory mixed-integer cut function with parameter f:
// breakpoints [0, f, 1] and values [0, 1, 0]. It is extreme for every
// f in (0, 1). Panics if f is outside (0, 1).
func Gmic(f exact.Number) *pwl.Function {
	if f.Sign() <= 0 || f.Cmp(exact.One()) >= 0 {
		panic(fmt.Sprintf("cannot Gmic: f = %v outside (0, 1)", f))
	}
	fn, err := pwl.FromBreakpoints(
		[]exact.Number{exact.Zero(), f, exact.One()},
		[]exact.Number{exact.Zero(), exact.One(), exact.Zero()},
	)
	if err != nil {
		panic(err)
	}
	return fn
}

// NotExtremeCoarse returns a continuous minimal function that is not
// extreme, together with its distinguished point f = 1/5. Its additivity
// system on the natural grid (1/5)Z has a trivial kernel, so the finite
// test at oversampling 1 wrongly reports extremality; the perturbation
// appears on the half grid, and oversampling 2 detects it.
func NotExtremeCoarse() (*pwl.Function, exact.Number) {
	bkpts := make([]exact.Number, 6)
	for i := range bkpts {
		bkpts[i] = exact.NewRational(int64(i), 5)
	}
	values := []exact.Number{
		exact.Zero(),
		exact.One(),
		exact.NewRational(1, 3),
		exact.NewRational(1, 2),
		exact.NewRational(2, 3),
		exact.Zero(),
	}
	fn, err := pwl.FromBreakpoints(bkpts, values)
	if err != nil {
		panic(err)
	}
	return fn, exact.NewRational(1, 5)
}
