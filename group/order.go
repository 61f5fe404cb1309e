// Package group reduces piecewise-affine functions on [0, 1] to finite
// cyclic groups (1/q)Z/Z and back: grid-order derivation from breakpoint
// denominators, restriction to a grid, interpolation back to the infinite
// group, and the multiplicative homomorphisms and automorphisms of the
// group.
package group

import (
	"errors"
	"fmt"

	"github.com/exactcut/groupfn/exact"
	"github.com/exactcut/groupfn/pwl"
)

var (
	// ErrInvalidParameter reports a bad or conflicting argument.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNoFiniteGroup reports that a function has an irrational
	// breakpoint and no explicit grid order was supplied.
	ErrNoFiniteGroup = errors.New("no finite group contains all breakpoints")
	// ErrNotCoprime reports an automorphism factor sharing a divisor with
	// the group order.
	ErrNotCoprime = errors.New("factor not coprime to group order")
)

// OrderOptions selects the finite group order for a function. Order and
// Oversampling are mutually exclusive; zero values mean "not set".
type OrderOptions struct {
	// F is the distinguished breakpoint whose denominator must divide the
	// order. Optional.
	F exact.Number
	// Oversampling multiplies the derived order. An oversampling of 3 on
	// a continuous function makes the finite extremality test equivalent
	// to the infinite one.
	Oversampling int
	// Order overrides the derivation entirely.
	Order int
}

// OrderFor returns the finite group order q such that all breakpoints of
// fn, and F if set, lie on the grid (1/q)Z. An explicit Order wins. Fails
// with ErrNoFiniteGroup if a breakpoint or F is irrational and no Order is
// given.
func OrderFor(fn *pwl.Function, opts OrderOptions) (int, error) {
	if opts.Order != 0 && opts.Oversampling != 0 {
		return 0, fmt.Errorf("cannot OrderFor: order and oversampling are mutually exclusive: %w", ErrInvalidParameter)
	}
	if opts.Order != 0 {
		if opts.Order < 0 {
			return 0, fmt.Errorf("cannot OrderFor: order %d: %w", opts.Order, ErrInvalidParameter)
		}
		return opts.Order, nil
	}
	if opts.Oversampling < 0 {
		return 0, fmt.Errorf("cannot OrderFor: oversampling %d: %w", opts.Oversampling, ErrInvalidParameter)
	}

	xs := fn.Breakpoints()
	if opts.F != nil {
		xs = append(xs, opts.F)
	}
	l, ok := exact.DenominatorLCM(xs)
	if !ok {
		return 0, fmt.Errorf("cannot OrderFor: %w", ErrNoFiniteGroup)
	}
	if !l.IsInt64() {
		return 0, fmt.Errorf("cannot OrderFor: breakpoint denominator lcm %v exceeds int64", l)
	}
	q := int(l.Int64())
	if opts.Oversampling > 0 {
		q *= opts.Oversampling
	}
	return q, nil
}
