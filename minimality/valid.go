package minimality

import (
	"github.com/exactcut/groupfn/exact"
	"github.com/exactcut/groupfn/pwl"
)

// PerturbationValid reports whether pert is a genuine witness against the
// extremality of fn: a nonzero perturbation such that fn + t*pert and
// fn - t*pert are both minimal for some t > 0. The scale t is derived from
// the minimum positive additivity slack of fn against the largest slack
// the perturbation can consume, then the two perturbed functions are
// checked exactly.
func PerturbationValid(fn, pert *pwl.Function, f exact.Number) bool {
	if !pert.Defined(exact.Zero()) || pert.Evaluate(exact.Zero()).Sign() != 0 {
		return false
	}

	sum, err := fn.Add(pert)
	if err != nil {
		return false
	}
	pts := sum.Breakpoints()

	// smin is the minimum positive slack of fn; maxPert the largest
	// |delta| the perturbation can consume.
	var smin exact.Number
	maxPert := exact.Zero()
	nonzero := false
	scanPoints(fn, pts, func(x, y exact.Number) bool {
		d := DeltaPi(fn, x, y)
		if d.Sign() > 0 && (smin == nil || d.Cmp(smin) < 0) {
			smin = d
		}
		if definedPair(pert, x, y) {
			pd := exact.Abs(DeltaPi(pert, x, y))
			maxPert = exact.Max(maxPert, pd)
		}
		return true
	})
	for _, x := range pts {
		if pert.Defined(x) && !pert.Evaluate(x).IsZero() {
			nonzero = true
			break
		}
	}
	if !nonzero {
		return false
	}

	t := exact.One()
	if maxPert.Sign() > 0 {
		if smin == nil {
			// fn is additive everywhere, yet the perturbation would
			// disturb a tight relation
			return false
		}
		t = smin.Div(maxPert.Mul(exact.New(2)))
	}

	up, err := fn.Add(pert.ScalarMul(t))
	if err != nil {
		return false
	}
	dn, err := fn.Add(pert.ScalarMul(t.Neg()))
	if err != nil {
		return false
	}
	return Minimal(up, f) && Minimal(dn, f)
}

// scanPoints visits every vertex pair drawn from pts for which the slack
// of fn is defined, stopping early when visit returns false.
func scanPoints(fn *pwl.Function, pts []exact.Number, visit func(x, y exact.Number) bool) {
	for _, x := range pts {
		for _, y := range pts {
			if definedPair(fn, x, y) {
				if !visit(x, y) {
					return
				}
			}
			// vertex with the sum x + y' landing on the breakpoint y
			d := wrapUnit(y.Sub(x))
			if definedPair(fn, x, d) {
				if !visit(x, d) {
					return
				}
			}
		}
	}
}
