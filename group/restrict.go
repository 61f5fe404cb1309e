package group

import (
	"fmt"

	"github.com/exactcut/groupfn/exact"
	"github.com/exactcut/groupfn/pwl"
)

// Restrict samples fn on the grid {0, 1/q, ..., 1} and returns the
// resulting discrete function. For a continuous input this restriction is
// lossless with respect to additivity exactly when all breakpoints lie in
// (1/q)Z.
func Restrict(fn *pwl.Function, q int) (*pwl.Function, error) {
	if q < 1 {
		return nil, fmt.Errorf("cannot Restrict: order %d: %w", q, ErrInvalidParameter)
	}
	points := make([]exact.Number, q+1)
	values := make([]exact.Number, q+1)
	for i := 0; i <= q; i++ {
		x := exact.NewRational(int64(i), int64(q))
		if !fn.Defined(x) {
			return nil, fmt.Errorf("cannot Restrict: %v outside the support of the function", x)
		}
		points[i] = x
		values[i] = fn.Evaluate(x)
	}
	return pwl.NewDiscrete(points, values)
}

// RestrictToFiniteGroup derives the grid order per opts and restricts fn
// to it.
func RestrictToFiniteGroup(fn *pwl.Function, opts OrderOptions) (*pwl.Function, error) {
	q, err := OrderFor(fn, opts)
	if err != nil {
		return nil, err
	}
	return Restrict(fn, q)
}
