package minimality

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/exactcut/groupfn/exact"
	"github.com/exactcut/groupfn/pwl"
)

// GapReport summarizes the distribution of the positive subadditivity
// slacks of a function. The floats are diagnostic only; every verdict in
// this package is computed exactly.
type GapReport struct {
	// Pairs is the number of vertex pairs scanned.
	Pairs int
	// Tight is the number of pairs with zero slack (additivity relations).
	Tight int
	// Positive is the number of pairs with positive slack.
	Positive int
	// Min, Mean and Median summarize the positive slacks.
	Min, Mean, Median float64
}

// NewGapReport scans the vertex set of fn and summarizes its slacks.
func NewGapReport(fn *pwl.Function) GapReport {
	var r GapReport
	var gaps []float64
	scanVertices(fn, func(d exact.Number) bool {
		r.Pairs++
		switch {
		case d.Sign() == 0:
			r.Tight++
		case d.Sign() > 0:
			r.Positive++
			if rat, ok := d.Rat(); ok {
				f, _ := rat.Float64()
				gaps = append(gaps, f)
			}
		}
		return true
	})
	if len(gaps) > 0 {
		r.Min, _ = stats.Min(gaps)
		r.Mean, _ = stats.Mean(gaps)
		r.Median, _ = stats.Median(gaps)
	}
	return r
}

func (r GapReport) String() string {
	return fmt.Sprintf("gaps{pairs: %d, tight: %d, positive: %d, min: %g, mean: %g, median: %g}",
		r.Pairs, r.Tight, r.Positive, r.Min, r.Mean, r.Median)
}
