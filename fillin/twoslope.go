// Package fillin extends finite-grid functions to genuine two-slope
// infinite-group functions and approximates arbitrary continuous minimal
// functions by extreme symmetric two-slope functions within a prescribed
// sup-norm distance.
package fillin

import (
	"errors"
	"fmt"

	"github.com/exactcut/groupfn/exact"
	"github.com/exactcut/groupfn/group"
	"github.com/exactcut/groupfn/pwl"
)

var (
	// ErrInvalidParameter reports a bad argument.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrPrecondition reports a violated construction precondition.
	ErrPrecondition = errors.New("precondition violated")
	// ErrConvergence reports an exhausted iteration or time budget in the
	// approximation loop.
	ErrConvergence = errors.New("refinement budget exhausted")
)

// LimitingSlopes returns the slopes (sp, sm) of fn over its first and last
// support gaps. For a minimal function these bound the slopes of any valid
// subadditive extension of its grid restriction.
func LimitingSlopes(fn *pwl.Function) (sp, sm exact.Number, err error) {
	pts := fn.Breakpoints()
	if len(pts) < 2 {
		return nil, nil, fmt.Errorf("cannot LimitingSlopes: need at least two support points: %w", ErrInvalidParameter)
	}
	first, second := pts[0], pts[1]
	sp = fn.Evaluate(second).Sub(fn.Evaluate(first)).Div(second.Sub(first))
	last, prev := pts[len(pts)-1], pts[len(pts)-2]
	sm = fn.Evaluate(last).Sub(fn.Evaluate(prev)).Div(last.Sub(prev))
	return sp, sm, nil
}

// TwoSlope extends fn to a continuous function using only the two limiting
// slopes: between consecutive grid points the graph follows slope sp
// leaving the left point and slope sm arriving at the right point, meeting
// at their intersection. A non-discrete fn is first restricted to the grid
// of the given order (derived from the breakpoints when order is zero).
// The result is subadditive whenever the restricted function is
// subadditive and minimal (two-slope fill-in theorem).
func TwoSlope(fn *pwl.Function, order int) (*pwl.Function, error) {
	sp, sm, err := LimitingSlopes(fn)
	if err != nil {
		return nil, err
	}
	if sp.Cmp(sm) <= 0 {
		return nil, fmt.Errorf("cannot TwoSlope: limiting slopes %v, %v are not separated: %w", sp, sm, ErrInvalidParameter)
	}

	discrete := fn
	if !fn.IsDiscrete() {
		q, err := group.OrderFor(fn, group.OrderOptions{Order: order})
		if err != nil {
			return nil, fmt.Errorf("cannot TwoSlope: %w", err)
		}
		if discrete, err = group.Restrict(fn, q); err != nil {
			return nil, fmt.Errorf("cannot TwoSlope: %w", err)
		}
	}

	support := discrete.Breakpoints()
	var pieces []pwl.Piece
	for i := 0; i+1 < len(support); i++ {
		x0, x1 := support[i], support[i+1]
		y0, y1 := discrete.Evaluate(x0), discrete.Evaluate(x1)
		// intersection of slope sp leaving (x0, y0) with slope sm
		// arriving at (x1, y1)
		mx := x1.Mul(sm).Sub(x0.Mul(sp)).Add(y0).Sub(y1).Div(sm.Sub(sp))
		if mx.Cmp(x0) <= 0 || mx.Cmp(x1) >= 0 {
			pieces = append(pieces, pwl.PieceThrough(pwl.ClosedInterval(x0, x1), x0, y0, x1, y1))
			continue
		}
		my := y0.Add(sp.Mul(mx.Sub(x0)))
		pieces = append(pieces,
			pwl.PieceThrough(pwl.ClosedInterval(x0, mx), x0, y0, mx, my),
			pwl.PieceThrough(pwl.ClosedInterval(mx, x1), mx, my, x1, y1),
		)
	}
	out, err := pwl.New(pieces)
	if err != nil {
		return nil, fmt.Errorf("cannot TwoSlope: %w", err)
	}
	return out.Merge(), nil
}
