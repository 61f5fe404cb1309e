package minimality

import (
	"github.com/exactcut/groupfn/exact"
	"github.com/exactcut/groupfn/pwl"
)

// Symmetric reports whether fn(x) + fn(f-x mod 1) = 1 everywhere, checked
// on the breakpoints and their reflections about f.
func Symmetric(fn *pwl.Function, f exact.Number) bool {
	one := exact.One()
	for _, x := range symmetryPoints(fn, f) {
		y := wrapUnit(f.Sub(x))
		if !fn.Defined(x) || !fn.Defined(y) {
			return false
		}
		if !exact.Eq(fn.Evaluate(x).Add(fn.Evaluate(y)), one) {
			return false
		}
	}
	return true
}

// Minimal reports whether fn is a minimal valid function for the
// distinguished point f: fn(0) = 0, fn(f) = 1, values within [0, 1],
// subadditive, and symmetric about f.
func Minimal(fn *pwl.Function, f exact.Number) bool {
	zero, one := exact.Zero(), exact.One()
	if !fn.Defined(zero) || fn.Evaluate(zero).Sign() != 0 {
		return false
	}
	if !fn.Defined(f) || !exact.Eq(fn.Evaluate(f), one) {
		return false
	}
	for _, x := range fn.Breakpoints() {
		v := fn.Evaluate(x)
		if v.Sign() < 0 || v.Cmp(one) > 0 {
			return false
		}
	}
	return Subadditive(fn) && Symmetric(fn, f)
}

func symmetryPoints(fn *pwl.Function, f exact.Number) []exact.Number {
	pts := fn.Breakpoints()
	out := make([]exact.Number, 0, 2*len(pts))
	out = append(out, pts...)
	for _, x := range pts {
		r := wrapUnit(f.Sub(x))
		dup := false
		for _, y := range out {
			if exact.Eq(r, y) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, r)
		}
	}
	return out
}
