// Package pwl implements the exact piecewise-affine function algebra on the
// unit interval: ordered affine pieces with exact endpoints, evaluation,
// linear combination, affine reparameterization, domain restriction and
// canonicalization. Functions are immutable value objects; every operation
// returns a new Function.
package pwl

import (
	"fmt"

	"github.com/exactcut/groupfn/exact"
)

// Interval is a non-empty sub-interval of the reals with exact endpoints.
// A singleton interval has Lo == Hi and is closed on both ends.
type Interval struct {
	Lo, Hi             exact.Number
	LoClosed, HiClosed bool
}

// NewInterval returns the interval between lo and hi. Panics if lo > hi or
// if a singleton is not closed on both ends.
func NewInterval(lo, hi exact.Number, loClosed, hiClosed bool) Interval {
	switch c := lo.Cmp(hi); {
	case c > 0:
		panic(fmt.Sprintf("cannot NewInterval: lo %v > hi %v", lo, hi))
	case c == 0 && !(loClosed && hiClosed):
		panic("cannot NewInterval: singleton interval must be closed on both ends")
	}
	return Interval{Lo: lo, Hi: hi, LoClosed: loClosed, HiClosed: hiClosed}
}

// ClosedInterval returns [lo, hi].
func ClosedInterval(lo, hi exact.Number) Interval {
	return NewInterval(lo, hi, true, true)
}

// Singleton returns the one-point interval [x, x].
func Singleton(x exact.Number) Interval {
	return Interval{Lo: x, Hi: x, LoClosed: true, HiClosed: true}
}

// IsSingleton reports whether the interval contains exactly one point.
func (iv Interval) IsSingleton() bool {
	return exact.Eq(iv.Lo, iv.Hi)
}

// Contains reports whether x lies in the interval, honoring the open or
// closed ends.
func (iv Interval) Contains(x exact.Number) bool {
	lo := x.Cmp(iv.Lo)
	hi := x.Cmp(iv.Hi)
	if lo < 0 || hi > 0 {
		return false
	}
	if lo == 0 && !iv.LoClosed {
		return false
	}
	if hi == 0 && !iv.HiClosed {
		return false
	}
	return true
}

// interiorOverlaps reports whether the open interiors of iv and other share
// a point.
func (iv Interval) interiorOverlaps(other Interval) bool {
	if iv.IsSingleton() || other.IsSingleton() {
		return false
	}
	lo := exact.Max(iv.Lo, other.Lo)
	hi := exact.Min(iv.Hi, other.Hi)
	return lo.Cmp(hi) < 0
}

func (iv Interval) String() string {
	l, r := "(", ")"
	if iv.LoClosed {
		l = "["
	}
	if iv.HiClosed {
		r = "]"
	}
	return fmt.Sprintf("%s%v, %v%s", l, iv.Lo, iv.Hi, r)
}
