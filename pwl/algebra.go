package pwl

import (
	"fmt"

	"github.com/exactcut/groupfn/exact"
)

// ScalarMul returns c*f.
func (f *Function) ScalarMul(c exact.Number) *Function {
	ps := make([]Piece, len(f.pieces))
	for i, p := range f.pieces {
		ps[i] = Piece{Interval: p.Interval, Slope: p.Slope.Mul(c), Intercept: p.Intercept.Mul(c)}
	}
	return &Function{pieces: ps, kind: f.kind}
}

// AddConst returns f + c.
func (f *Function) AddConst(c exact.Number) *Function {
	ps := make([]Piece, len(f.pieces))
	for i, p := range f.pieces {
		ps[i] = Piece{Interval: p.Interval, Slope: p.Slope, Intercept: p.Intercept.Add(c)}
	}
	return &Function{pieces: ps, kind: f.kind}
}

// Neg returns -f.
func (f *Function) Neg() *Function {
	return f.ScalarMul(exact.NewInt(-1))
}

// Add returns f + g. The supports must agree: two discrete functions must
// share their support points, and otherwise both functions must cover the
// same intervals.
func (f *Function) Add(g *Function) (*Function, error) {
	if f.IsDiscrete() != g.IsDiscrete() {
		return nil, fmt.Errorf("cannot Add: mixing %s and %s functions", f.kind, g.kind)
	}
	if f.IsDiscrete() {
		if len(f.pieces) != len(g.pieces) {
			return nil, fmt.Errorf("cannot Add: discrete supports differ")
		}
		ps := make([]Piece, len(f.pieces))
		for i, p := range f.pieces {
			q := g.pieces[i]
			if !exact.Eq(p.Interval.Lo, q.Interval.Lo) {
				return nil, fmt.Errorf("cannot Add: discrete supports differ at %v", p.Interval.Lo)
			}
			ps[i] = PointPiece(p.Interval.Lo, p.Intercept.Add(q.Intercept))
		}
		return New(ps)
	}

	pts := mergeBreakpoints(f.Breakpoints(), g.Breakpoints())
	var ps []Piece
	for _, x := range pts {
		if f.Defined(x) && g.Defined(x) {
			ps = append(ps, PointPiece(x, f.Evaluate(x).Add(g.Evaluate(x))))
		}
	}
	for i := 0; i+1 < len(pts); i++ {
		u, v := pts[i], pts[i+1]
		pf, okf := f.coveringPiece(u, v)
		pg, okg := g.coveringPiece(u, v)
		switch {
		case okf && okg:
			iv := NewInterval(u, v, false, false)
			ps = append(ps, NewPiece(iv, pf.Slope.Add(pg.Slope), pf.Intercept.Add(pg.Intercept)))
		case okf != okg:
			return nil, fmt.Errorf("cannot Add: supports differ on (%v, %v)", u, v)
		}
	}
	sum, err := New(ps)
	if err != nil {
		return nil, fmt.Errorf("cannot Add: %w", err)
	}
	return sum.Merge(), nil
}

// Reparameterize returns the function h with h(x) = f(x*divisor - shift).
// A piece on [a, b] maps to the interval with endpoints (a+shift)/divisor
// and (b+shift)/divisor; for divisor < 0 the interval is reversed end to
// end and its open/closed sides are swapped. Panics if divisor is zero.
// Returns an error if the image leaves [0, 1].
func (f *Function) Reparameterize(shift, divisor exact.Number) (*Function, error) {
	if divisor.IsZero() {
		panic("cannot Reparameterize: zero divisor")
	}
	neg := divisor.Sign() < 0
	ps := make([]Piece, len(f.pieces))
	for i, p := range f.pieces {
		lo := p.Interval.Lo.Add(shift).Div(divisor)
		hi := p.Interval.Hi.Add(shift).Div(divisor)
		loC, hiC := p.Interval.LoClosed, p.Interval.HiClosed
		if neg {
			lo, hi = hi, lo
			loC, hiC = hiC, loC
		}
		ps[i] = Piece{
			Interval:  NewInterval(lo, hi, loC, hiC),
			Slope:     p.Slope.Mul(divisor),
			Intercept: p.Intercept.Sub(p.Slope.Mul(shift)),
		}
	}
	out, err := New(ps)
	if err != nil {
		return nil, fmt.Errorf("cannot Reparameterize: %w", err)
	}
	return out, nil
}

// RestrictDomain returns f restricted to [lo, hi], in canonical form.
// Pieces crossing the cut points are truncated with closed ends; pieces
// entirely outside are dropped. A piece truncated to a single point
// becomes a singleton carrying the value there.
func (f *Function) RestrictDomain(lo, hi exact.Number) (*Function, error) {
	if lo.Cmp(hi) > 0 {
		return nil, fmt.Errorf("cannot RestrictDomain: lo %v > hi %v", lo, hi)
	}
	var ps []Piece
	for _, p := range f.pieces {
		iv := p.Interval
		nlo, nloC := iv.Lo, iv.LoClosed
		if c := lo.Cmp(nlo); c > 0 {
			nlo, nloC = lo, true
		}
		nhi, nhiC := iv.Hi, iv.HiClosed
		if c := hi.Cmp(nhi); c < 0 {
			nhi, nhiC = hi, true
		}
		switch c := nlo.Cmp(nhi); {
		case c > 0:
			continue
		case c == 0 && !(nloC && nhiC):
			continue
		}
		ps = append(ps, Piece{Interval: NewInterval(nlo, nhi, nloC, nhiC), Slope: p.Slope, Intercept: p.Intercept})
	}
	if len(ps) == 0 {
		return nil, fmt.Errorf("cannot RestrictDomain: empty intersection with [%v, %v]", lo, hi)
	}
	out, err := New(ps)
	if err != nil {
		return nil, fmt.Errorf("cannot RestrictDomain: %w", err)
	}
	return out.Merge(), nil
}

// Merge returns the canonical form of f: adjacent pieces that restrict the
// same affine map are coalesced, and singleton pieces lying on a
// neighboring map are absorbed into it.
func (f *Function) Merge() *Function {
	if len(f.pieces) < 2 {
		return f
	}
	var out []Piece
	cur := f.pieces[0]
	flush := func() {
		out = append(out, cur)
	}
	for _, p := range f.pieces[1:] {
		if !exact.Eq(cur.Interval.Hi, p.Interval.Lo) {
			flush()
			cur = p
			continue
		}
		x := p.Interval.Lo
		switch {
		case p.IsSingleton() && !cur.IsSingleton() && exact.Eq(cur.ValueAt(x), p.Intercept):
			// absorb the point into the left piece
			cur.Interval.HiClosed = true
		case cur.IsSingleton() && !p.IsSingleton() && exact.Eq(p.ValueAt(x), cur.Intercept):
			// absorb the point into the right piece
			p.Interval.LoClosed = true
			cur = p
		case cur.IsSingleton() && p.IsSingleton() && exact.Eq(cur.Intercept, p.Intercept):
			// duplicate point
		case !cur.IsSingleton() && !p.IsSingleton() && cur.sameMap(p) && (cur.Interval.HiClosed || p.Interval.LoClosed):
			cur.Interval.Hi = p.Interval.Hi
			cur.Interval.HiClosed = p.Interval.HiClosed
		default:
			flush()
			cur = p
		}
	}
	flush()
	return &Function{pieces: out, kind: classify(out)}
}

// SupDistance returns the exact sup-norm distance between f and g over the
// points where both are defined, sampling the union of their breakpoints.
// For continuous piecewise-affine functions on a shared domain this is the
// exact sup norm.
func (f *Function) SupDistance(g *Function) exact.Number {
	pts := mergeBreakpoints(f.Breakpoints(), g.Breakpoints())
	d := exact.Zero()
	for _, x := range pts {
		if !f.Defined(x) || !g.Defined(x) {
			continue
		}
		d = exact.Max(d, exact.Abs(f.Evaluate(x).Sub(g.Evaluate(x))))
	}
	return d
}

// MaxSlopeAbs returns the largest |slope| over the non-singleton pieces,
// or zero for a discrete function.
func (f *Function) MaxSlopeAbs() exact.Number {
	m := exact.Zero()
	for _, p := range f.pieces {
		if p.IsSingleton() {
			continue
		}
		m = exact.Max(m, exact.Abs(p.Slope))
	}
	return m
}

// Equal reports whether f and g are the same function, comparing canonical
// forms piece by piece.
func (f *Function) Equal(g *Function) bool {
	a, b := f.Merge(), g.Merge()
	if len(a.pieces) != len(b.pieces) {
		return false
	}
	for i, p := range a.pieces {
		q := b.pieces[i]
		if !exact.Eq(p.Interval.Lo, q.Interval.Lo) || !exact.Eq(p.Interval.Hi, q.Interval.Hi) {
			return false
		}
		if p.Interval.LoClosed != q.Interval.LoClosed || p.Interval.HiClosed != q.Interval.HiClosed {
			return false
		}
		if !p.sameMap(q) {
			return false
		}
	}
	return true
}

func (f *Function) coveringPiece(u, v exact.Number) (Piece, bool) {
	for _, p := range f.pieces {
		if p.IsSingleton() {
			continue
		}
		if p.Interval.Lo.Cmp(u) <= 0 && p.Interval.Hi.Cmp(v) >= 0 {
			return p, true
		}
	}
	return Piece{}, false
}

func mergeBreakpoints(a, b []exact.Number) []exact.Number {
	out := make([]exact.Number, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case i == len(a):
			out = appendDistinct(out, b[j])
			j++
		case j == len(b):
			out = appendDistinct(out, a[i])
			i++
		case a[i].Cmp(b[j]) <= 0:
			out = appendDistinct(out, a[i])
			i++
		default:
			out = appendDistinct(out, b[j])
			j++
		}
	}
	return out
}
