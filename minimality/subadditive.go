// Package minimality implements the subadditivity, minimality and symmetry
// oracles for piecewise-affine group-relaxation functions, a scan for the
// minimum positive additivity gap, and the validity check for candidate
// perturbations. Verdicts are exact; the only floating point lives in the
// diagnostic GapReport.
//
// For a continuous piecewise-affine function the subadditivity slack
// delta(x, y) = fn(x) + fn(y) - fn(x+y mod 1) is piecewise affine on the
// two-dimensional complex spanned by the breakpoints, so its extrema are
// attained on the vertex set: pairs of breakpoints together with pairs
// (x, y-x mod 1). All scans below range over that set, or over all grid
// pairs for discrete functions.
package minimality

import (
	"github.com/exactcut/groupfn/exact"
	"github.com/exactcut/groupfn/pwl"
)

// DeltaPi returns the subadditivity slack fn(x) + fn(y) - fn(x+y mod 1).
func DeltaPi(fn *pwl.Function, x, y exact.Number) exact.Number {
	return fn.Evaluate(x).Add(fn.Evaluate(y)).Sub(fn.Evaluate(wrapUnit(x.Add(y))))
}

// Subadditive reports whether delta(x, y) >= 0 everywhere.
func Subadditive(fn *pwl.Function) bool {
	neg := false
	scanVertices(fn, func(d exact.Number) bool {
		if d.Sign() < 0 {
			neg = true
			return false
		}
		return true
	})
	return !neg
}

// FindGamma returns the minimum positive subadditivity slack of fn. The
// second return value is false when every slack is zero (the function is
// additive everywhere on its vertex set).
func FindGamma(fn *pwl.Function) (exact.Number, bool) {
	var best exact.Number
	scanVertices(fn, func(d exact.Number) bool {
		if d.Sign() > 0 && (best == nil || d.Cmp(best) < 0) {
			best = d
		}
		return true
	})
	return best, best != nil
}

// scanVertices feeds every vertex slack of fn to visit, stopping early
// when visit returns false.
func scanVertices(fn *pwl.Function, visit func(d exact.Number) bool) {
	scanPoints(fn, fn.Breakpoints(), func(x, y exact.Number) bool {
		return visit(DeltaPi(fn, x, y))
	})
}

// definedPair reports whether the slack delta(x, y) of fn is defined.
func definedPair(fn *pwl.Function, x, y exact.Number) bool {
	return fn.Defined(x) && fn.Defined(y) && fn.Defined(wrapUnit(x.Add(y)))
}

// wrapUnit reduces s in [-1, 2] to the fundamental domain [0, 1).
func wrapUnit(s exact.Number) exact.Number {
	one := exact.One()
	for s.Sign() < 0 {
		s = s.Add(one)
	}
	for s.Cmp(one) >= 0 {
		s = s.Sub(one)
	}
	return s
}
