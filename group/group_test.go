package group

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exactcut/groupfn/exact"
	"github.com/exactcut/groupfn/pwl"
)

func q(num, den int64) exact.Number { return exact.NewRational(num, den) }

func nums(xs ...interface{}) []exact.Number {
	out := make([]exact.Number, len(xs))
	for i, x := range xs {
		out[i] = exact.New(x)
	}
	return out
}

func gmicFn(t *testing.T, f exact.Number) *pwl.Function {
	fn, err := pwl.FromBreakpoints([]exact.Number{exact.Zero(), f, exact.One()}, nums(0, 1, 0))
	require.NoError(t, err)
	return fn
}

func TestOrderFor(t *testing.T) {
	fn := gmicFn(t, q(2, 5))

	t.Run("lcm of denominators", func(t *testing.T) {
		got, err := OrderFor(fn, OrderOptions{})
		require.NoError(t, err)
		require.Equal(t, 5, got)
	})

	t.Run("with f", func(t *testing.T) {
		got, err := OrderFor(fn, OrderOptions{F: q(1, 3)})
		require.NoError(t, err)
		require.Equal(t, 15, got)
	})

	t.Run("oversampling", func(t *testing.T) {
		got, err := OrderFor(fn, OrderOptions{Oversampling: 3})
		require.NoError(t, err)
		require.Equal(t, 15, got)
	})

	t.Run("explicit order wins", func(t *testing.T) {
		got, err := OrderFor(fn, OrderOptions{Order: 40})
		require.NoError(t, err)
		require.Equal(t, 40, got)
	})

	t.Run("order and oversampling conflict", func(t *testing.T) {
		_, err := OrderFor(fn, OrderOptions{Order: 40, Oversampling: 2})
		require.ErrorIs(t, err, ErrInvalidParameter)
	})
}

// quad is an element a + b*sqrt(2) of the extension field Q(sqrt 2),
// implementing exact.Number to exercise the algebraic-input paths.
type quad struct{ a, b *big.Rat }

func newQuad(a, b *big.Rat) exact.Number {
	if b.Sign() == 0 {
		return exact.FromRat(a)
	}
	return quad{a: a, b: b}
}

func asQuad(o exact.Number) quad {
	if r, ok := o.Rat(); ok {
		return quad{a: r, b: new(big.Rat)}
	}
	return o.(quad)
}

func (e quad) Add(o exact.Number) exact.Number {
	q := asQuad(o)
	return newQuad(new(big.Rat).Add(e.a, q.a), new(big.Rat).Add(e.b, q.b))
}

func (e quad) Sub(o exact.Number) exact.Number { return e.Add(o.Neg()) }

func (e quad) Mul(o exact.Number) exact.Number {
	q := asQuad(o)
	// (a + b s)(c + d s) = ac + 2bd + (ad + bc) s, s = sqrt(2)
	ac := new(big.Rat).Mul(e.a, q.a)
	bd2 := new(big.Rat).Mul(new(big.Rat).Mul(e.b, q.b), big.NewRat(2, 1))
	ad := new(big.Rat).Mul(e.a, q.b)
	bc := new(big.Rat).Mul(e.b, q.a)
	return newQuad(new(big.Rat).Add(ac, bd2), new(big.Rat).Add(ad, bc))
}

func (e quad) Div(o exact.Number) exact.Number { return e.Mul(o.Inv()) }

func (e quad) Neg() exact.Number {
	return quad{a: new(big.Rat).Neg(e.a), b: new(big.Rat).Neg(e.b)}
}

func (e quad) Inv() exact.Number {
	// 1/(a + b s) = (a - b s)/(a^2 - 2 b^2)
	den := new(big.Rat).Sub(
		new(big.Rat).Mul(e.a, e.a),
		new(big.Rat).Mul(new(big.Rat).Mul(e.b, e.b), big.NewRat(2, 1)),
	)
	return newQuad(new(big.Rat).Quo(e.a, den), new(big.Rat).Quo(new(big.Rat).Neg(e.b), den))
}

func (e quad) Cmp(o exact.Number) int { return e.Sub(o).Sign() }

func (e quad) Sign() int {
	s, b := e.a.Sign(), e.b.Sign()
	switch {
	case b == 0:
		return s
	case s == 0:
		return b
	case s == b:
		return s
	}
	// signs differ: compare a^2 with 2 b^2
	aa := new(big.Rat).Mul(e.a, e.a)
	bb2 := new(big.Rat).Mul(new(big.Rat).Mul(e.b, e.b), big.NewRat(2, 1))
	if aa.Cmp(bb2) > 0 {
		return s
	}
	return b
}

func (e quad) IsZero() bool          { return e.a.Sign() == 0 && e.b.Sign() == 0 }
func (e quad) Rat() (*big.Rat, bool) { return nil, false }
func (e quad) String() string {
	return e.a.RatString() + "+" + e.b.RatString() + "*sqrt(2)"
}

func TestOrderForIrrationalBreakpoint(t *testing.T) {
	// f = sqrt(2)/2
	f := newQuad(new(big.Rat), big.NewRat(1, 2))
	fn, err := pwl.FromBreakpoints(
		[]exact.Number{exact.Zero(), f, exact.One()},
		nums(0, 1, 0),
	)
	require.NoError(t, err)

	_, err = OrderFor(fn, OrderOptions{})
	require.ErrorIs(t, err, ErrNoFiniteGroup)

	got, err := OrderFor(fn, OrderOptions{Order: 12})
	require.NoError(t, err)
	require.Equal(t, 12, got)

	// the algebra itself is field-generic: evaluation near f stays exact
	half := fn.Evaluate(f.Div(exact.New(2)))
	require.True(t, exact.Eq(exact.NewRational(1, 2), half))
}

func TestRestrictInterpolateRoundTrip(t *testing.T) {
	fn := gmicFn(t, q(2, 5))

	restricted, err := Restrict(fn, 10)
	require.NoError(t, err)
	require.True(t, restricted.IsDiscrete())
	require.True(t, exact.Eq(q(1, 4), restricted.Evaluate(q(1, 10))))

	back, err := Interpolate(restricted, true)
	require.NoError(t, err)
	require.True(t, back.Equal(fn))
}

func TestRestrictToFiniteGroup(t *testing.T) {
	fn := gmicFn(t, q(1, 2))
	restricted, err := RestrictToFiniteGroup(fn, OrderOptions{F: q(1, 2), Oversampling: 3})
	require.NoError(t, err)
	bk := restricted.Breakpoints()
	require.Len(t, bk, 7) // grid 0, 1/6, ..., 1
}

func TestMultiplicativeHomomorphism(t *testing.T) {
	fn := gmicFn(t, q(4, 5))

	h, err := MultiplicativeHomomorphism(fn, 3)
	require.NoError(t, err)
	// h(x) = fn(3x mod 1) peaks at 4/15, 3/5 and 14/15
	for _, x := range nums("4/15", "3/5", "14/15") {
		require.True(t, exact.Eq(exact.One(), h.Evaluate(x)), "at %v", x)
	}
	require.True(t, exact.Eq(exact.Zero(), h.Evaluate(q(1, 3))))
	require.True(t, exact.Eq(q(1, 2), h.Evaluate(q(2, 15))))

	t.Run("negative multiplier reflects", func(t *testing.T) {
		g := gmicFn(t, q(2, 5))
		r, err := MultiplicativeHomomorphism(g, -1)
		require.NoError(t, err)
		require.True(t, r.Equal(gmicFn(t, q(3, 5))))
	})

	t.Run("zero multiplier", func(t *testing.T) {
		_, err := MultiplicativeHomomorphism(fn, 0)
		require.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestAutomorphismDiscrete(t *testing.T) {
	fn := gmicFn(t, q(2, 5))
	restricted, err := Restrict(fn, 5)
	require.NoError(t, err)

	got, err := Automorphism(restricted, 2)
	require.NoError(t, err)
	want := nums("0", "1", "1/3", "1/2", "2/3", "0")
	for i, w := range want {
		x := q(int64(i), 5)
		require.True(t, exact.Eq(w, got.Evaluate(x)), "at %v", x)
	}

	t.Run("not coprime", func(t *testing.T) {
		r6, err := Restrict(gmicFn(t, q(1, 2)), 6)
		require.NoError(t, err)
		for _, factor := range []int{2, 3, 4, 6, 8} {
			_, err := Automorphism(r6, factor)
			require.ErrorIs(t, err, ErrNotCoprime, "factor %d", factor)
		}
	})

	t.Run("continuous negation", func(t *testing.T) {
		neg, err := Automorphism(fn, -1)
		require.NoError(t, err)
		require.True(t, neg.Equal(gmicFn(t, q(3, 5))))

		_, err = Automorphism(fn, 2)
		require.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestInterpolateRejectsContinuous(t *testing.T) {
	fn := gmicFn(t, q(1, 2))
	_, err := Interpolate(fn, true)
	require.ErrorIs(t, err, ErrInvalidParameter)
	require.True(t, errors.Is(err, ErrInvalidParameter))
}
