package exact

import (
	"math/big"
)

// GCD returns the greatest common divisor of |a| and |b|.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

// LCM returns the least common multiple of |a| and |b|.
func LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	g := GCD(a, b)
	l := new(big.Int).Abs(new(big.Int).Mul(a, b))
	return l.Div(l, g)
}

// DenominatorLCM returns the least common multiple of the denominators of
// xs. The second return value is false if any element is irrational, in
// which case no finite cyclic group contains all of xs.
func DenominatorLCM(xs []Number) (*big.Int, bool) {
	l := big.NewInt(1)
	for _, x := range xs {
		r, ok := x.Rat()
		if !ok {
			return nil, false
		}
		l = LCM(l, r.Denom())
	}
	return l, true
}

// Denominator returns the reduced denominator of a rational x. The second
// return value is false if x is irrational.
func Denominator(x Number) (*big.Int, bool) {
	r, ok := x.Rat()
	if !ok {
		return nil, false
	}
	return r.Denom(), true
}
