package pwl

import (
	"fmt"
	"sort"

	"github.com/exactcut/groupfn/exact"
)

// Kind classifies a Function by the shape of its piece sequence.
type Kind int

const (
	// Discrete functions consist of singleton pieces only.
	Discrete Kind = iota
	// Continuous functions cover their domain with no jump at any
	// interior breakpoint.
	Continuous
	// Discontinuous functions cover their domain but jump at one or more
	// breakpoints; one-sided limits are carried by open-ended pieces and
	// the point value by a singleton piece.
	Discontinuous
)

func (k Kind) String() string {
	switch k {
	case Discrete:
		return "discrete"
	case Continuous:
		return "continuous"
	case Discontinuous:
		return "discontinuous"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Function is an ordered, non-overlapping sequence of affine pieces on
// [0, 1]. Functions are immutable: all operations return new instances.
type Function struct {
	pieces []Piece
	kind   Kind
}

// New builds a Function from pieces. The pieces are sorted by interval;
// they must lie within [0, 1] and may overlap only at a shared closed
// endpoint where both affine maps agree. A singleton piece with nonzero
// slope is normalized to carry its value with slope zero, so truncating a
// piece to one of its endpoints preserves the canonical form.
func New(pieces []Piece) (*Function, error) {
	if len(pieces) == 0 {
		return nil, fmt.Errorf("cannot New: no pieces")
	}
	ps := make([]Piece, len(pieces))
	for i, p := range pieces {
		if p.IsSingleton() && !p.Slope.IsZero() {
			p = PointPiece(p.Interval.Lo, p.ValueAt(p.Interval.Lo))
		}
		ps[i] = p
	}
	sortPieces(ps)

	zero, one := exact.Zero(), exact.One()
	for _, p := range ps {
		if p.Interval.Lo.Cmp(zero) < 0 || p.Interval.Hi.Cmp(one) > 0 {
			return nil, fmt.Errorf("cannot New: piece %v outside [0, 1]", p)
		}
	}
	for i := 1; i < len(ps); i++ {
		a, b := ps[i-1], ps[i]
		if a.Interval.interiorOverlaps(b.Interval) {
			return nil, fmt.Errorf("cannot New: pieces %v and %v overlap", a, b)
		}
		if exact.Eq(a.Interval.Hi, b.Interval.Lo) && a.Interval.HiClosed && b.Interval.LoClosed {
			x := b.Interval.Lo
			if !exact.Eq(a.ValueAt(x), b.ValueAt(x)) {
				return nil, fmt.Errorf("cannot New: pieces %v and %v disagree at shared endpoint %v", a, b, x)
			}
		}
	}
	return &Function{pieces: ps, kind: classify(ps)}, nil
}

// MustNew is New, panicking on error. For statically known piece data.
func MustNew(pieces []Piece) *Function {
	f, err := New(pieces)
	if err != nil {
		panic(err)
	}
	return f
}

// FromBreakpoints returns the continuous function interpolating values at
// the given strictly increasing breakpoints. The first breakpoint must be 0
// and the last 1.
func FromBreakpoints(bkpts, values []exact.Number) (*Function, error) {
	if len(bkpts) != len(values) || len(bkpts) < 2 {
		return nil, fmt.Errorf("cannot FromBreakpoints: need matching breakpoints and values, got %d and %d", len(bkpts), len(values))
	}
	if bkpts[0].Sign() != 0 || !exact.Eq(bkpts[len(bkpts)-1], exact.One()) {
		return nil, fmt.Errorf("cannot FromBreakpoints: breakpoints must span [0, 1]")
	}
	pieces := make([]Piece, 0, len(bkpts)-1)
	for i := 0; i+1 < len(bkpts); i++ {
		if bkpts[i].Cmp(bkpts[i+1]) >= 0 {
			return nil, fmt.Errorf("cannot FromBreakpoints: breakpoints not strictly increasing at %v", bkpts[i])
		}
		iv := ClosedInterval(bkpts[i], bkpts[i+1])
		pieces = append(pieces, PieceThrough(iv, bkpts[i], values[i], bkpts[i+1], values[i+1]))
	}
	return New(pieces)
}

// NewDiscrete returns the discrete function with the given values at the
// given strictly increasing points.
func NewDiscrete(points, values []exact.Number) (*Function, error) {
	if len(points) != len(values) || len(points) == 0 {
		return nil, fmt.Errorf("cannot NewDiscrete: need matching points and values, got %d and %d", len(points), len(values))
	}
	pieces := make([]Piece, len(points))
	for i := range points {
		if i > 0 && points[i-1].Cmp(points[i]) >= 0 {
			return nil, fmt.Errorf("cannot NewDiscrete: points not strictly increasing at %v", points[i])
		}
		pieces[i] = PointPiece(points[i], values[i])
	}
	return New(pieces)
}

// Kind returns the function's classification.
func (f *Function) Kind() Kind { return f.kind }

// IsDiscrete reports whether every piece is a singleton.
func (f *Function) IsDiscrete() bool { return f.kind == Discrete }

// IsContinuous reports whether the function is continuous on its domain.
func (f *Function) IsContinuous() bool { return f.kind == Continuous }

// Pieces returns a copy of the ordered piece sequence.
func (f *Function) Pieces() []Piece {
	ps := make([]Piece, len(f.pieces))
	copy(ps, f.pieces)
	return ps
}

// Defined reports whether x lies in the function's support.
func (f *Function) Defined(x exact.Number) bool {
	_, ok := f.pieceAt(x)
	return ok
}

// Evaluate returns f(x). Panics if x is outside the support; use Defined to
// probe first when the support is partial (discrete functions).
func (f *Function) Evaluate(x exact.Number) exact.Number {
	p, ok := f.pieceAt(x)
	if !ok {
		panic(fmt.Sprintf("cannot Evaluate: %v outside support", x))
	}
	return p.ValueAt(x)
}

// LimitLeft returns the limit of f approaching x from below. Panics if no
// piece has interior points immediately left of x.
func (f *Function) LimitLeft(x exact.Number) exact.Number {
	for _, p := range f.pieces {
		if p.IsSingleton() {
			continue
		}
		if p.Interval.Lo.Cmp(x) < 0 && p.Interval.Hi.Cmp(x) >= 0 {
			return p.ValueAt(x)
		}
	}
	panic(fmt.Sprintf("cannot LimitLeft: no piece left of %v", x))
}

// LimitRight returns the limit of f approaching x from above. Panics if no
// piece has interior points immediately right of x.
func (f *Function) LimitRight(x exact.Number) exact.Number {
	for _, p := range f.pieces {
		if p.IsSingleton() {
			continue
		}
		if p.Interval.Lo.Cmp(x) <= 0 && p.Interval.Hi.Cmp(x) > 0 {
			return p.ValueAt(x)
		}
	}
	panic(fmt.Sprintf("cannot LimitRight: no piece right of %v", x))
}

// Breakpoints returns the sorted distinct interval endpoints of all pieces.
func (f *Function) Breakpoints() []exact.Number {
	var out []exact.Number
	for _, p := range f.pieces {
		out = appendDistinct(out, p.Interval.Lo)
		out = appendDistinct(out, p.Interval.Hi)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })
	return out
}

func (f *Function) String() string {
	return fmt.Sprintf("pwl.Function{%s, %v}", f.kind, f.pieces)
}

func (f *Function) pieceAt(x exact.Number) (Piece, bool) {
	for _, p := range f.pieces {
		if p.Interval.Contains(x) {
			return p, true
		}
		if p.Interval.Lo.Cmp(x) > 0 {
			break
		}
	}
	return Piece{}, false
}

func appendDistinct(xs []exact.Number, x exact.Number) []exact.Number {
	for _, y := range xs {
		if exact.Eq(x, y) {
			return xs
		}
	}
	return append(xs, x)
}

func sortPieces(ps []Piece) {
	sort.Slice(ps, func(i, j int) bool {
		a, b := ps[i].Interval, ps[j].Interval
		if c := a.Lo.Cmp(b.Lo); c != 0 {
			return c < 0
		}
		// closed start first, then singletons before open-started pieces
		if a.LoClosed != b.LoClosed {
			return a.LoClosed
		}
		return a.Hi.Cmp(b.Hi) < 0
	})
}

// classify derives the Kind of a validated, sorted piece sequence.
func classify(ps []Piece) Kind {
	discrete := true
	for _, p := range ps {
		if !p.IsSingleton() {
			discrete = false
			break
		}
	}
	if discrete {
		return Discrete
	}
	// A jump shows up as disagreeing values where two pieces meet, or as a
	// singleton carrying a value off the neighboring maps.
	for i := 1; i < len(ps); i++ {
		a, b := ps[i-1], ps[i]
		if !exact.Eq(a.Interval.Hi, b.Interval.Lo) {
			continue
		}
		x := b.Interval.Lo
		if !exact.Eq(a.ValueAt(x), b.ValueAt(x)) {
			return Discontinuous
		}
	}
	return Continuous
}
