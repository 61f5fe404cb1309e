package pwl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exactcut/groupfn/exact"
)

func q(num, den int64) exact.Number { return exact.NewRational(num, den) }

func nums(xs ...interface{}) []exact.Number {
	out := make([]exact.Number, len(xs))
	for i, x := range xs {
		out[i] = exact.New(x)
	}
	return out
}

// gmicFn returns the GMIC function with parameter f, built directly from
// breakpoints for use in this package's tests.
func gmicFn(t *testing.T, f exact.Number) *Function {
	fn, err := FromBreakpoints([]exact.Number{exact.Zero(), f, exact.One()}, nums(0, 1, 0))
	require.NoError(t, err)
	return fn
}

func TestFromBreakpoints(t *testing.T) {
	fn := gmicFn(t, q(2, 5))

	require.Equal(t, Continuous, fn.Kind())
	require.True(t, exact.Eq(exact.Zero(), fn.Evaluate(exact.Zero())))
	require.True(t, exact.Eq(exact.One(), fn.Evaluate(q(2, 5))))
	require.True(t, exact.Eq(q(1, 2), fn.Evaluate(q(1, 5))))
	require.True(t, exact.Eq(q(1, 2), fn.Evaluate(q(7, 10))))
	require.True(t, exact.Eq(exact.Zero(), fn.Evaluate(exact.One())))
}

func TestEvaluateHonorsOpenSides(t *testing.T) {
	// step with a jump at 1/2: left limit 0, value 1, right limit 2
	pieces := []Piece{
		NewPiece(NewInterval(exact.Zero(), q(1, 2), true, false), exact.Zero(), exact.Zero()),
		PointPiece(q(1, 2), exact.One()),
		NewPiece(NewInterval(q(1, 2), exact.One(), false, true), exact.Zero(), exact.New(2)),
	}
	fn, err := New(pieces)
	require.NoError(t, err)

	require.Equal(t, Discontinuous, fn.Kind())
	require.True(t, exact.Eq(exact.One(), fn.Evaluate(q(1, 2))))
	require.True(t, exact.Eq(exact.Zero(), fn.LimitLeft(q(1, 2))))
	require.True(t, exact.Eq(exact.New(2), fn.LimitRight(q(1, 2))))
	require.True(t, exact.Eq(exact.Zero(), fn.Evaluate(q(1, 4))))
	require.True(t, exact.Eq(exact.New(2), fn.Evaluate(q(3, 4))))
}

func TestNewRejectsOverlapAndDisagreement(t *testing.T) {
	t.Run("overlap", func(t *testing.T) {
		_, err := New([]Piece{
			NewPiece(ClosedInterval(exact.Zero(), q(1, 2)), exact.One(), exact.Zero()),
			NewPiece(ClosedInterval(q(1, 4), exact.One()), exact.One(), exact.Zero()),
		})
		require.Error(t, err)
	})

	t.Run("shared endpoint disagreement", func(t *testing.T) {
		_, err := New([]Piece{
			NewPiece(ClosedInterval(exact.Zero(), q(1, 2)), exact.One(), exact.Zero()),
			NewPiece(ClosedInterval(q(1, 2), exact.One()), exact.Zero(), exact.Zero()),
		})
		require.Error(t, err)
	})

	t.Run("outside unit interval", func(t *testing.T) {
		_, err := New([]Piece{
			NewPiece(ClosedInterval(exact.Zero(), exact.New(2)), exact.One(), exact.Zero()),
		})
		require.Error(t, err)
	})
}

func TestDiscreteFunction(t *testing.T) {
	fn, err := NewDiscrete(nums("0", "1/3", "2/3", "1"), nums("0", "1", "1/2", "0"))
	require.NoError(t, err)

	require.Equal(t, Discrete, fn.Kind())
	require.True(t, fn.Defined(q(1, 3)))
	require.False(t, fn.Defined(q(1, 2)))
	require.True(t, exact.Eq(q(1, 2), fn.Evaluate(q(2, 3))))
	require.Panics(t, func() { fn.Evaluate(q(1, 2)) })
}

func TestBreakpoints(t *testing.T) {
	fn := gmicFn(t, q(1, 2))
	bk := fn.Breakpoints()
	require.Len(t, bk, 3)
	require.True(t, exact.Eq(exact.Zero(), bk[0]))
	require.True(t, exact.Eq(q(1, 2), bk[1]))
	require.True(t, exact.Eq(exact.One(), bk[2]))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "discrete", Discrete.String())
	require.Equal(t, "continuous", Continuous.String())
	require.Equal(t, "discontinuous", Discontinuous.String())
}
