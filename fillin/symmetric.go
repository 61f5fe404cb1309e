package fillin

import (
	"fmt"

	"github.com/exactcut/groupfn/exact"
	"github.com/exactcut/groupfn/pwl"
)

// PiSym symmetrizes fn about the distinguished point f: the restriction of
// fn to [0, f/2] is kept and reflected through the point (f/2, 1/2) onto
// [f/2, f], and the restriction to [(1+f)/2, 1] is kept and reflected
// through ((1+f)/2, 1/2) onto [f, (1+f)/2]. The result satisfies the
// symmetry condition by construction. Requires fn(f/2) = fn((1+f)/2) = 1/2.
func PiSym(fn *pwl.Function, f exact.Number) (*pwl.Function, error) {
	half := exact.NewRational(1, 2)
	a := f.Mul(half)
	b := f.Add(exact.One()).Mul(half)
	for _, x := range []exact.Number{a, b} {
		if !fn.Defined(x) || !exact.Eq(fn.Evaluate(x), half) {
			return nil, fmt.Errorf("cannot PiSym: fn(%v) != 1/2: %w", x, ErrPrecondition)
		}
	}

	left, err := fn.RestrictDomain(exact.Zero(), a)
	if err != nil {
		return nil, fmt.Errorf("cannot PiSym: %w", err)
	}
	right, err := fn.RestrictDomain(b, exact.One())
	if err != nil {
		return nil, fmt.Errorf("cannot PiSym: %w", err)
	}

	// x -> 1 - fn(f - x) maps [0, f/2] onto [f/2, f]
	leftRefl, err := left.Reparameterize(f.Neg(), exact.NewInt(-1))
	if err != nil {
		return nil, fmt.Errorf("cannot PiSym: %w", err)
	}
	// x -> 1 - fn(1 + f - x) maps [(1+f)/2, 1] onto [f, (1+f)/2]
	rightRefl, err := right.Reparameterize(f.Add(exact.One()).Neg(), exact.NewInt(-1))
	if err != nil {
		return nil, fmt.Errorf("cannot PiSym: %w", err)
	}

	one := exact.One()
	pieces := append([]pwl.Piece{}, left.Pieces()...)
	pieces = append(pieces, leftRefl.Neg().AddConst(one).Pieces()...)
	pieces = append(pieces, rightRefl.Neg().AddConst(one).Pieces()...)
	pieces = append(pieces, right.Pieces()...)
	out, err := pwl.New(pieces)
	if err != nil {
		return nil, fmt.Errorf("cannot PiSym: %w", err)
	}
	return out.Merge(), nil
}
