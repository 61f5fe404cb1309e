// Package exact provides the exact scalar arithmetic underlying the
// piecewise-affine function algebra. The Number interface abstracts an
// element of an exact ordered field; the Rational implementation covers the
// rationals via math/big. Elements of an algebraic extension field can be
// supplied by the caller as additional Number implementations and flow
// through the whole algebra unchanged.
package exact

import (
	"fmt"
	"math/big"
)

// Number is an element of an exact ordered field. Implementations are
// immutable: every operation returns a new element and never mutates the
// receiver or its operand. Cmp defines a total order compatible with the
// field operations.
type Number interface {
	Add(Number) Number
	Sub(Number) Number
	Mul(Number) Number
	Div(Number) Number
	Neg() Number
	Inv() Number
	Cmp(Number) int
	Sign() int
	IsZero() bool
	// Rat returns the exact rational value of the element. The second
	// return value is false for elements of a proper algebraic extension;
	// such elements have no finite cyclic group and callers must supply an
	// explicit grid order.
	Rat() (*big.Rat, bool)
	String() string
}

// New creates a Number from x.
// Accepted types are: int, int64, *big.Int, *big.Rat, string (in big.Rat
// syntax, e.g. "3/5") or Number.
func New(x interface{}) Number {
	switch x := x.(type) {
	case int:
		return NewInt(int64(x))
	case int64:
		return NewInt(x)
	case *big.Int:
		return Rational{r: new(big.Rat).SetInt(x)}
	case *big.Rat:
		return Rational{r: new(big.Rat).Set(x)}
	case string:
		r, ok := new(big.Rat).SetString(x)
		if !ok {
			panic(fmt.Sprintf("cannot New: invalid rational literal %q", x))
		}
		return Rational{r: r}
	case Number:
		return x
	default:
		panic(fmt.Sprintf("cannot New: accepted types are int, int64, *big.Int, *big.Rat, string or Number, but is %T", x))
	}
}

// Zero returns the rational 0.
func Zero() Number { return NewInt(0) }

// One returns the rational 1.
func One() Number { return NewInt(1) }

// Eq reports whether a == b.
func Eq(a, b Number) bool { return a.Cmp(b) == 0 }

// Min returns the smaller of a and b.
func Min(a, b Number) Number {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Number) Number {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Abs returns |a|.
func Abs(a Number) Number {
	if a.Sign() < 0 {
		return a.Neg()
	}
	return a
}

// Mod1 returns x mod 1, in [0, 1). The element must be rational.
func Mod1(x Number) Number {
	r, ok := x.Rat()
	if !ok {
		panic(fmt.Sprintf("cannot Mod1: %v is not rational", x))
	}
	f := new(big.Int)
	f.Div(r.Num(), r.Denom()) // floor division
	out := new(big.Rat).Sub(r, new(big.Rat).SetInt(f))
	return Rational{r: out}
}

// Floor returns the largest integer not greater than x.
func Floor(x Number) *big.Int {
	r, ok := x.Rat()
	if !ok {
		panic(fmt.Sprintf("cannot Floor: %v is not rational", x))
	}
	return new(big.Int).Div(r.Num(), r.Denom())
}

// Ceil returns the smallest integer not less than x.
func Ceil(x Number) *big.Int {
	r, ok := x.Rat()
	if !ok {
		panic(fmt.Sprintf("cannot Ceil: %v is not rational", x))
	}
	f := new(big.Int).Div(r.Num(), r.Denom())
	if new(big.Rat).SetInt(f).Cmp(r) != 0 {
		f.Add(f, big.NewInt(1))
	}
	return f
}
