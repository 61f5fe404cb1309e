// Package extremality implements the finite-dimensional extremality test
// for minimal group-relaxation functions: restrict to a finite cyclic
// group, collect the tight additivity relations into a sparse homogeneous
// system, and decide extremality from the dimension of its kernel. A
// nontrivial kernel yields explicit perturbation witnesses, which are
// lifted back to the infinite group and confirmed exactly.
package extremality

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/exactcut/groupfn/exact"
	"github.com/exactcut/groupfn/group"
	"github.com/exactcut/groupfn/minimality"
	"github.com/exactcut/groupfn/pwl"
)

// ErrInvalidParameter reports a bad argument.
var ErrInvalidParameter = errors.New("invalid parameter")

// Options tunes the finite test.
type Options struct {
	// Oversampling multiplies the natural grid order. The default of 3
	// makes the finite test of a continuous function equivalent to the
	// infinite one; smaller factors can miss perturbations that only
	// live on a refined grid. Defaults to 1 for discrete functions.
	Oversampling int
	// Order fixes the grid order outright, overriding Oversampling.
	Order int
	// EnumerateAll lifts the whole kernel basis into perturbation
	// witnesses instead of only the first basis vector.
	EnumerateAll bool
}

// Result is the outcome of the finite extremality test.
type Result struct {
	// Order is the grid order the test ran on.
	Order int
	// Minimal reports whether the input was minimal at all; a
	// non-minimal function is never extreme and the test stops there.
	Minimal bool
	// KernelDim is the dimension of the kernel of the additivity system.
	KernelDim int
	// Extreme reports a trivial kernel.
	Extreme bool
	// Perturbations are the kernel basis vectors lifted back to
	// functions, in canonical order.
	Perturbations []*pwl.Function
	// Confirmed reports that at least one lifted perturbation passed the
	// exact validity check, certifying non-extremality independently of
	// the kernel computation.
	Confirmed bool
	// Fingerprint identifies the restriction the test ran on.
	Fingerprint [32]byte
}

// SimpleFiniteDimensionalTest decides extremality of fn for the
// distinguished point f on a finite grid. The function is restricted to
// the grid, every tight subadditivity relation contributes one equation
// pi(i) + pi(j) = pi(i+j), and pi(0) = pi(f) = 0 pin the normalization; fn
// is extreme on the grid iff the system has only the zero solution.
func SimpleFiniteDimensionalTest(fn *pwl.Function, f exact.Number, opts Options) (Result, error) {
	if !minimality.Minimal(fn, f) {
		return Result{}, nil
	}
	res := Result{Minimal: true}

	q, err := testOrder(fn, f, opts)
	if err != nil {
		return Result{}, fmt.Errorf("cannot SimpleFiniteDimensionalTest: %w", err)
	}
	res.Order = q
	fIdx, err := gridIndex(f, q)
	if err != nil {
		return Result{}, fmt.Errorf("cannot SimpleFiniteDimensionalTest: %w", err)
	}
	restricted, err := group.Restrict(fn, q)
	if err != nil {
		return Result{}, fmt.Errorf("cannot SimpleFiniteDimensionalTest: %w", err)
	}
	res.Fingerprint = restricted.Fingerprint()

	basis := kernelBasis(additivitySystem(restricted, q, fIdx), q)
	res.KernelDim = len(basis)
	res.Extreme = len(basis) == 0
	if res.Extreme {
		return res, nil
	}

	if !opts.EnumerateAll {
		basis = basis[:1]
	}
	for _, v := range basis {
		pert, err := liftPerturbation(fn, v, q)
		if err != nil {
			return Result{}, fmt.Errorf("cannot SimpleFiniteDimensionalTest: %w", err)
		}
		res.Perturbations = append(res.Perturbations, pert)
		if minimality.PerturbationValid(fn, pert, f) {
			res.Confirmed = true
		}
	}
	return res, nil
}

// testOrder derives the grid order for the test.
func testOrder(fn *pwl.Function, f exact.Number, opts Options) (int, error) {
	if opts.Order != 0 {
		return group.OrderFor(fn, group.OrderOptions{Order: opts.Order})
	}
	ov := opts.Oversampling
	if ov == 0 {
		ov = 3
		if fn.IsDiscrete() {
			ov = 1
		}
	}
	return group.OrderFor(fn, group.OrderOptions{F: f, Oversampling: ov})
}

// gridIndex returns the index of x on the grid (1/q)Z, reduced mod q.
func gridIndex(x exact.Number, q int) (int, error) {
	r, ok := x.Mul(exact.New(q)).Rat()
	if !ok || !r.IsInt() {
		return 0, fmt.Errorf("point %v does not lie on the grid (1/%d)Z: %w", x, q, ErrInvalidParameter)
	}
	i := new(big.Int).Mod(r.Num(), big.NewInt(int64(q)))
	return int(i.Int64()), nil
}

// additivitySystem collects the homogeneous equations every valid
// perturbation of the restriction must satisfy: the normalizations
// pi(0) = pi(fIdx) = 0 and one relation per tight subadditivity pair.
func additivitySystem(restricted *pwl.Function, q, fIdx int) []sparseRow {
	values := make([]exact.Number, q)
	for i := 0; i < q; i++ {
		values[i] = restricted.Evaluate(exact.NewRational(int64(i), int64(q)))
	}

	rows := []sparseRow{
		{0: big.NewRat(1, 1)},
		{fIdx: big.NewRat(1, 1)},
	}
	for i := 0; i < q; i++ {
		for j := i; j < q; j++ {
			k := (i + j) % q
			if !exact.Eq(values[i].Add(values[j]), values[k]) {
				continue
			}
			r := make(sparseRow)
			addEntry(r, i, 1)
			addEntry(r, j, 1)
			addEntry(r, k, -1)
			if len(r) > 0 {
				rows = append(rows, r)
			}
		}
	}
	return rows
}

func addEntry(r sparseRow, col int, delta int64) {
	cur, ok := r[col]
	if !ok {
		cur = new(big.Rat)
		r[col] = cur
	}
	cur.Add(cur, new(big.Rat).SetInt64(delta))
	if cur.Sign() == 0 {
		delete(r, col)
	}
}

// liftPerturbation turns a kernel vector into a function on [0, 1]: the
// grid values v[i] at i/q, closed up with v[0] at 1, interpolated
// affinely between grid points unless fn itself is discrete. The affine
// lift is exact for continuous fn; for a discontinuous fn it certifies
// the grid relations only.
func liftPerturbation(fn *pwl.Function, v []*big.Rat, q int) (*pwl.Function, error) {
	points := make([]exact.Number, q+1)
	values := make([]exact.Number, q+1)
	for i := 0; i <= q; i++ {
		points[i] = exact.NewRational(int64(i), int64(q))
		values[i] = exact.FromRat(v[i%q])
	}
	d, err := pwl.NewDiscrete(points, values)
	if err != nil {
		return nil, fmt.Errorf("cannot liftPerturbation: %w", err)
	}
	if fn.IsDiscrete() {
		return d, nil
	}
	return group.Interpolate(d, true)
}
