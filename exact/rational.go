package exact

import (
	"math/big"
)

// Rational is a rational Number backed by a big.Rat. The zero value is not
// usable; construct through New, NewInt or NewRational. The wrapped big.Rat
// is never mutated after construction.
type Rational struct {
	r *big.Rat
}

// NewInt returns the rational n.
func NewInt(n int64) Rational {
	return Rational{r: new(big.Rat).SetInt64(n)}
}

// NewRational returns the rational num/den. Panics if den is zero.
func NewRational(num, den int64) Rational {
	if den == 0 {
		panic("cannot NewRational: zero denominator")
	}
	return Rational{r: big.NewRat(num, den)}
}

// FromRat returns a Rational holding a copy of r.
func FromRat(r *big.Rat) Rational {
	return Rational{r: new(big.Rat).Set(r)}
}

func (a Rational) Add(b Number) Number {
	if rb, ok := b.Rat(); ok {
		return Rational{r: new(big.Rat).Add(a.r, rb)}
	}
	return b.Add(a)
}

func (a Rational) Sub(b Number) Number {
	if rb, ok := b.Rat(); ok {
		return Rational{r: new(big.Rat).Sub(a.r, rb)}
	}
	return b.Sub(a).Neg()
}

func (a Rational) Mul(b Number) Number {
	if rb, ok := b.Rat(); ok {
		return Rational{r: new(big.Rat).Mul(a.r, rb)}
	}
	return b.Mul(a)
}

func (a Rational) Div(b Number) Number {
	if rb, ok := b.Rat(); ok {
		if rb.Sign() == 0 {
			panic("cannot Div: division by zero")
		}
		return Rational{r: new(big.Rat).Quo(a.r, rb)}
	}
	return a.Mul(b.Inv())
}

func (a Rational) Neg() Number {
	return Rational{r: new(big.Rat).Neg(a.r)}
}

func (a Rational) Inv() Number {
	if a.r.Sign() == 0 {
		panic("cannot Inv: zero element")
	}
	return Rational{r: new(big.Rat).Inv(a.r)}
}

func (a Rational) Cmp(b Number) int {
	if rb, ok := b.Rat(); ok {
		return a.r.Cmp(rb)
	}
	return -b.Cmp(a)
}

func (a Rational) Sign() int { return a.r.Sign() }

func (a Rational) IsZero() bool { return a.r.Sign() == 0 }

// Rat returns the underlying rational value. The returned big.Rat is a copy
// and may be mutated freely by the caller.
func (a Rational) Rat() (*big.Rat, bool) {
	return new(big.Rat).Set(a.r), true
}

func (a Rational) String() string {
	return a.r.RatString()
}

var _ Number = Rational{}
