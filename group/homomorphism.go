package group

import (
	"fmt"

	"github.com/exactcut/groupfn/exact"
	"github.com/exactcut/groupfn/pwl"
	"github.com/exactcut/groupfn/utils"
)

// MultiplicativeHomomorphism returns the function x -> fn(m*x mod 1) for a
// nonzero integer multiplier m: |m| rescaled copies of fn laid side by
// side, reversed when m is negative, then merged.
func MultiplicativeHomomorphism(fn *pwl.Function, m int) (*pwl.Function, error) {
	if m == 0 {
		return nil, fmt.Errorf("cannot MultiplicativeHomomorphism: multiplier must be a nonzero integer: %w", ErrInvalidParameter)
	}
	lo, hi := 0, m
	if m < 0 {
		lo, hi = m, 0
	}
	divisor := exact.NewInt(int64(m))
	var pieces []pwl.Piece
	for i := lo; i < hi; i++ {
		copyFn, err := fn.Reparameterize(exact.NewInt(int64(i)), divisor)
		if err != nil {
			return nil, fmt.Errorf("cannot MultiplicativeHomomorphism: %w", err)
		}
		pieces = append(pieces, copyFn.Pieces()...)
	}
	out, err := pwl.New(pieces)
	if err != nil {
		return nil, fmt.Errorf("cannot MultiplicativeHomomorphism: %w", err)
	}
	return out.Merge(), nil
}

// Automorphism applies the group automorphism x -> factor*x. On a discrete
// function over Z/q this permutes the grid, g(i/q) = fn((factor*i mod q)/q),
// and requires gcd(factor, q) = 1; otherwise ErrNotCoprime. On an infinite
// group function only factor = +-1 is an automorphism; -1 delegates to the
// multiplicative homomorphism.
func Automorphism(fn *pwl.Function, factor int) (*pwl.Function, error) {
	if !fn.IsDiscrete() {
		switch factor {
		case 1:
			return fn, nil
		case -1:
			return MultiplicativeHomomorphism(fn, -1)
		default:
			return nil, fmt.Errorf("cannot Automorphism: factor %d on a non-discrete function: %w", factor, ErrInvalidParameter)
		}
	}

	q, err := OrderFor(fn, OrderOptions{})
	if err != nil {
		return nil, fmt.Errorf("cannot Automorphism: %w", err)
	}
	if utils.GCD(factor, q) != 1 {
		return nil, fmt.Errorf("cannot Automorphism: factor %d, order %d: %w", factor, q, ErrNotCoprime)
	}
	points := make([]exact.Number, q+1)
	values := make([]exact.Number, q+1)
	for i := 0; i <= q; i++ {
		j := ((factor*i)%q + q) % q
		points[i] = exact.NewRational(int64(i), int64(q))
		src := exact.NewRational(int64(j), int64(q))
		if !fn.Defined(src) {
			return nil, fmt.Errorf("cannot Automorphism: support is not the full grid (1/%d)Z", q)
		}
		values[i] = fn.Evaluate(src)
	}
	return pwl.NewDiscrete(points, values)
}
