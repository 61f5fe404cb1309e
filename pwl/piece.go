package pwl

import (
	"fmt"

	"github.com/exactcut/groupfn/exact"
)

// Piece is an affine map x -> Slope*x + Intercept restricted to an
// interval. A singleton piece stores its value in Intercept with Slope
// zero, so ValueAt is uniform across both shapes.
type Piece struct {
	Interval  Interval
	Slope     exact.Number
	Intercept exact.Number
}

// NewPiece returns the affine piece slope*x + intercept on iv.
func NewPiece(iv Interval, slope, intercept exact.Number) Piece {
	return Piece{Interval: iv, Slope: slope, Intercept: intercept}
}

// PointPiece returns the singleton piece with value v at x.
func PointPiece(x, v exact.Number) Piece {
	return Piece{Interval: Singleton(x), Slope: exact.Zero(), Intercept: v}
}

// PieceThrough returns the affine piece on iv interpolating (x0, y0) and
// (x1, y1). Panics if x0 == x1.
func PieceThrough(iv Interval, x0, y0, x1, y1 exact.Number) Piece {
	dx := x1.Sub(x0)
	if dx.IsZero() {
		panic(fmt.Sprintf("cannot PieceThrough: coincident abscissae %v", x0))
	}
	slope := y1.Sub(y0).Div(dx)
	intercept := y0.Sub(slope.Mul(x0))
	return Piece{Interval: iv, Slope: slope, Intercept: intercept}
}

// ValueAt returns the value of the affine map at x. The map is evaluated on
// the closure of the interval; callers check Interval.Contains when the
// open/closed sides matter.
func (p Piece) ValueAt(x exact.Number) exact.Number {
	return p.Slope.Mul(x).Add(p.Intercept)
}

// IsSingleton reports whether the piece is a single point.
func (p Piece) IsSingleton() bool {
	return p.Interval.IsSingleton()
}

// sameMap reports whether p and q are restrictions of the same affine map.
func (p Piece) sameMap(q Piece) bool {
	return exact.Eq(p.Slope, q.Slope) && exact.Eq(p.Intercept, q.Intercept)
}

func (p Piece) String() string {
	if p.IsSingleton() {
		return fmt.Sprintf("{%v: %v}", p.Interval.Lo, p.Intercept)
	}
	return fmt.Sprintf("{%v: %v*x + %v}", p.Interval, p.Slope, p.Intercept)
}
