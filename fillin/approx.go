package fillin

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/exactcut/groupfn/exact"
	"github.com/exactcut/groupfn/group"
	"github.com/exactcut/groupfn/minimality"
	"github.com/exactcut/groupfn/pwl"
)

// ApproxOptions tunes the symmetric two-slope approximation loop.
type ApproxOptions struct {
	// MaxIterations bounds the number of grid refinements. Defaults to 32.
	MaxIterations int
}

// PiDelta returns the tent function with breakpoints
// [0, delta, f-delta, f, f+delta, 1-delta, 1] and values
// [0, 1/2, 1/2, 1, 1/2, 1/2, 0]. It is minimal for f and strictly
// subadditive away from the trivial relations, which makes it the
// standard blending partner for restoring slack in a combination.
// Requires 0 < delta < min(f/2, (1-f)/2).
func PiDelta(f, delta exact.Number) (*pwl.Function, error) {
	half := exact.NewRational(1, 2)
	bound := exact.Min(f.Mul(half), exact.One().Sub(f).Mul(half))
	if delta.Sign() <= 0 || delta.Cmp(bound) >= 0 {
		return nil, fmt.Errorf("cannot PiDelta: delta %v outside (0, %v): %w", delta, bound, ErrInvalidParameter)
	}
	one := exact.One()
	fn, err := pwl.FromBreakpoints(
		[]exact.Number{exact.Zero(), delta, f.Sub(delta), f, f.Add(delta), one.Sub(delta), one},
		[]exact.Number{exact.Zero(), half, half, one, half, half, exact.Zero()},
	)
	if err != nil {
		return nil, fmt.Errorf("cannot PiDelta: %w", err)
	}
	return fn, nil
}

// PiComb blends fn with the tent function: (1-gamma)*fn + gamma*PiDelta.
// For minimal fn the blend is minimal again, with every non-trivial
// additivity relation of fn opened up into positive slack.
func PiComb(fn *pwl.Function, gamma, delta, f exact.Number) (*pwl.Function, error) {
	if gamma.Sign() <= 0 || gamma.Cmp(exact.One()) >= 0 {
		return nil, fmt.Errorf("cannot PiComb: gamma %v outside (0, 1): %w", gamma, ErrInvalidParameter)
	}
	tent, err := PiDelta(f, delta)
	if err != nil {
		return nil, fmt.Errorf("cannot PiComb: %w", err)
	}
	out, err := fn.ScalarMul(exact.One().Sub(gamma)).Add(tent.ScalarMul(gamma))
	if err != nil {
		return nil, fmt.Errorf("cannot PiComb: %w", err)
	}
	return out, nil
}

// PiPWL returns the continuous interpolation of fn on the grid (1/q)Z,
// a piecewise-affine approximation within eps of fn in the sup norm. The
// order q is taken from the breakpoint denominators (and f) when order is
// zero; for a function with irrational breakpoints the order is derived
// from the slope bound instead, as the smallest multiple of den(f) with
// grid cells shorter than eps / maxslope, so that sampling moves no value
// by more than eps/2.
func PiPWL(fn *pwl.Function, eps, f exact.Number, order int) (*pwl.Function, error) {
	if eps.Sign() <= 0 {
		return nil, fmt.Errorf("cannot PiPWL: eps %v: %w", eps, ErrInvalidParameter)
	}
	q := order
	if q == 0 {
		var err error
		q, err = group.OrderFor(fn, group.OrderOptions{F: f})
		if errors.Is(err, group.ErrNoFiniteGroup) {
			q, err = slopeBoundOrder(fn, eps, f)
		}
		if err != nil {
			return nil, fmt.Errorf("cannot PiPWL: %w", err)
		}
	}
	restricted, err := group.Restrict(fn, q)
	if err != nil {
		return nil, fmt.Errorf("cannot PiPWL: %w", err)
	}
	out, err := group.Interpolate(restricted, true)
	if err != nil {
		return nil, fmt.Errorf("cannot PiPWL: %w", err)
	}
	return out, nil
}

// slopeBoundOrder derives a grid order for a function whose breakpoints
// span no finite group: the smallest multiple of den(f) not smaller than
// maxslope / (2 * eps * den(f)) * den(f).
func slopeBoundOrder(fn *pwl.Function, eps, f exact.Number) (int, error) {
	den, ok := exact.Denominator(f)
	if !ok {
		return 0, fmt.Errorf("distinguished point %v is irrational: %w", f, group.ErrNoFiniteGroup)
	}
	ratio := fn.MaxSlopeAbs().Div(eps.Mul(exact.New(2)).Mul(exact.New(den)))
	if _, ok := ratio.Rat(); !ok {
		return 0, fmt.Errorf("slope bound %v is irrational: %w", ratio, group.ErrNoFiniteGroup)
	}
	cells := exact.Ceil(ratio)
	if cells.Sign() < 1 {
		cells = big.NewInt(1)
	}
	q := new(big.Int).Mul(cells, den)
	if !q.IsInt64() {
		return 0, fmt.Errorf("derived order %v exceeds int64: %w", q, ErrInvalidParameter)
	}
	return int(q.Int64()), nil
}

// SymmetricTwoSlope approximates a continuous minimal function fn by an
// extreme symmetric two-slope function within eps in the sup norm. It
// interpolates fn on a grid at eps/3, then alternates two-slope fill-in
// with symmetrization on successively finer grids; whenever the
// symmetrized candidate loses subadditivity, fn is first blended with a
// shrinking tent function to restore slack. Fails with ErrConvergence
// when the iteration budget or ctx expires first.
func SymmetricTwoSlope(ctx context.Context, fn *pwl.Function, f, eps exact.Number, opts ApproxOptions) (*pwl.Function, error) {
	budget := opts.MaxIterations
	if budget == 0 {
		budget = 32
	}
	eps3 := eps.Div(exact.New(3))
	base, err := PiPWL(fn, eps3, f, 0)
	if err != nil {
		return nil, fmt.Errorf("cannot SymmetricTwoSlope: %w", err)
	}

	q0, err := group.OrderFor(base, group.OrderOptions{F: f})
	if err != nil {
		return nil, fmt.Errorf("cannot SymmetricTwoSlope: %w", err)
	}
	// symmetrization needs f/2 and (1+f)/2 on the grid
	half := exact.NewRational(1, 2)
	if den, _ := exact.Denominator(f.Mul(half)); new(big.Int).Mod(big.NewInt(int64(q0)), den).Sign() != 0 {
		q0 *= 2
	}

	delta := tentBound(base, f).Mul(half)
	cur := base
	for k := 0; k < budget; k++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cannot SymmetricTwoSlope: %w: %w", err, ErrConvergence)
		}
		if k > 0 {
			delta = delta.Mul(half)
			if cur, err = PiComb(base, eps3, delta, f); err != nil {
				return nil, fmt.Errorf("cannot SymmetricTwoSlope: %w", err)
			}
		}
		ts, err := TwoSlope(cur, q0*(k+1))
		if err != nil {
			return nil, fmt.Errorf("cannot SymmetricTwoSlope: %w", err)
		}
		sym, err := PiSym(ts, f)
		if err != nil {
			return nil, fmt.Errorf("cannot SymmetricTwoSlope: %w", err)
		}
		if minimality.Subadditive(sym) && sym.SupDistance(fn).Cmp(eps) <= 0 {
			return sym, nil
		}
	}
	return nil, fmt.Errorf("cannot SymmetricTwoSlope: no approximation within %v after %d refinements: %w", eps, budget, ErrConvergence)
}

// tentBound returns the largest admissible tent half-width for blending
// with fn: bounded by f/2, (1-f)/2 and the distance from the ends of the
// domain to the first and last interior breakpoints of fn.
func tentBound(fn *pwl.Function, f exact.Number) exact.Number {
	half := exact.NewRational(1, 2)
	one := exact.One()
	b := exact.Min(f.Mul(half), one.Sub(f).Mul(half))
	pts := fn.Breakpoints()
	if len(pts) > 2 {
		b = exact.Min(b, pts[1])
		b = exact.Min(b, one.Sub(pts[len(pts)-2]))
	}
	return b
}
