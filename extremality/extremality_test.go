package extremality

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exactcut/groupfn/exact"
	"github.com/exactcut/groupfn/funcs"
	"github.com/exactcut/groupfn/group"
)

func q(num, den int64) exact.Number { return exact.NewRational(num, den) }

func TestKernelBasis(t *testing.T) {
	one := big.NewRat(1, 1)
	negOne := big.NewRat(-1, 1)

	t.Run("one free column", func(t *testing.T) {
		rows := []sparseRow{
			{0: one},
			{0: one, 1: one, 2: negOne},
		}
		basis := kernelBasis(rows, 3)
		require.Len(t, basis, 1)
		want := []int64{0, 1, 1}
		for i, w := range want {
			require.Zero(t, basis[0][i].Cmp(big.NewRat(w, 1)))
		}
	})

	t.Run("full rank", func(t *testing.T) {
		rows := []sparseRow{{0: one}, {1: one}, {2: one}}
		require.Empty(t, kernelBasis(rows, 3))
	})

	t.Run("no rows", func(t *testing.T) {
		require.Len(t, kernelBasis(nil, 2), 2)
	})

	t.Run("redundant rows collapse", func(t *testing.T) {
		rows := []sparseRow{
			{0: one, 1: negOne},
			{1: one, 2: negOne},
			{0: one, 2: negOne},
		}
		basis := kernelBasis(rows, 3)
		require.Len(t, basis, 1)
		for i := 0; i < 3; i++ {
			require.Zero(t, basis[0][i].Cmp(one))
		}
	})
}

func TestGmicExtreme(t *testing.T) {
	f := q(1, 2)
	res, err := SimpleFiniteDimensionalTest(funcs.Gmic(f), f, Options{})
	require.NoError(t, err)
	require.True(t, res.Minimal)
	require.Equal(t, 6, res.Order)
	require.Zero(t, res.KernelDim)
	require.True(t, res.Extreme)
	require.Empty(t, res.Perturbations)
}

func TestNotMinimalInput(t *testing.T) {
	// gmic(2/5) is not minimal for f = 1/2
	res, err := SimpleFiniteDimensionalTest(funcs.Gmic(q(2, 5)), q(1, 2), Options{})
	require.NoError(t, err)
	require.False(t, res.Minimal)
	require.False(t, res.Extreme)
}

func TestOversamplingFindsPerturbation(t *testing.T) {
	fn, f := funcs.NotExtremeCoarse()

	t.Run("natural grid misses it", func(t *testing.T) {
		res, err := SimpleFiniteDimensionalTest(fn, f, Options{Oversampling: 1})
		require.NoError(t, err)
		require.Equal(t, 5, res.Order)
		require.True(t, res.Extreme)
	})

	t.Run("refined grid detects it", func(t *testing.T) {
		res, err := SimpleFiniteDimensionalTest(fn, f, Options{Oversampling: 2})
		require.NoError(t, err)
		require.Equal(t, 10, res.Order)
		require.False(t, res.Extreme)
		require.Equal(t, 1, res.KernelDim)
		require.Len(t, res.Perturbations, 1)
		require.True(t, res.Confirmed)

		pert := res.Perturbations[0]
		require.True(t, exact.Eq(pert.Evaluate(q(1, 2)), exact.New(-1)))
		require.True(t, exact.Eq(pert.Evaluate(q(7, 10)), exact.One()))
		require.True(t, pert.Evaluate(q(1, 5)).IsZero())
		require.True(t, pert.Evaluate(exact.Zero()).IsZero())
	})

	t.Run("explicit order", func(t *testing.T) {
		res, err := SimpleFiniteDimensionalTest(fn, f, Options{Order: 10})
		require.NoError(t, err)
		require.Equal(t, 10, res.Order)
		require.False(t, res.Extreme)
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := SimpleFiniteDimensionalTest(fn, f, Options{Oversampling: 2, EnumerateAll: true})
		require.NoError(t, err)
		b, err := SimpleFiniteDimensionalTest(fn, f, Options{Oversampling: 2, EnumerateAll: true})
		require.NoError(t, err)
		require.Equal(t, a.Fingerprint, b.Fingerprint)
		require.Equal(t, len(a.Perturbations), len(b.Perturbations))
		for i := range a.Perturbations {
			require.True(t, a.Perturbations[i].Equal(b.Perturbations[i]))
		}
	})
}

func TestMultiplicativeImageExtreme(t *testing.T) {
	h, err := group.MultiplicativeHomomorphism(funcs.Gmic(q(4, 5)), 3)
	require.NoError(t, err)
	f := q(4, 15)
	res, err := SimpleFiniteDimensionalTest(h, f, Options{})
	require.NoError(t, err)
	require.True(t, res.Minimal)
	require.Equal(t, 45, res.Order)
	require.True(t, res.Extreme)
}

func TestGridIndex(t *testing.T) {
	i, err := gridIndex(q(4, 15), 45)
	require.NoError(t, err)
	require.Equal(t, 12, i)

	_, err = gridIndex(q(1, 7), 45)
	require.ErrorIs(t, err, ErrInvalidParameter)
}
