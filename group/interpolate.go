package group

import (
	"fmt"

	"github.com/exactcut/groupfn/pwl"
)

// Interpolate lifts a discrete function back to the infinite group by
// inserting one affine piece between each pair of consecutive support
// points. It is the exact left inverse of Restrict for continuous
// functions that are affine between the grid points. When merge is set,
// adjacent collinear pieces are coalesced.
func Interpolate(fn *pwl.Function, merge bool) (*pwl.Function, error) {
	if !fn.IsDiscrete() {
		return nil, fmt.Errorf("cannot Interpolate: function is %v, not discrete: %w", fn.Kind(), ErrInvalidParameter)
	}
	support := fn.Breakpoints()
	if len(support) < 2 {
		return nil, fmt.Errorf("cannot Interpolate: need at least two support points: %w", ErrInvalidParameter)
	}
	pieces := make([]pwl.Piece, 0, len(support)-1)
	for i := 0; i+1 < len(support); i++ {
		x0, x1 := support[i], support[i+1]
		iv := pwl.ClosedInterval(x0, x1)
		pieces = append(pieces, pwl.PieceThrough(iv, x0, fn.Evaluate(x0), x1, fn.Evaluate(x1)))
	}
	out, err := pwl.New(pieces)
	if err != nil {
		return nil, fmt.Errorf("cannot Interpolate: %w", err)
	}
	if merge {
		out = out.Merge()
	}
	return out, nil
}
