package signif

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tipping/pipeline"
)

// Quantile flags change values outside their own column's empirical
// quantiles: with level P, values at or above the column's P quantile
// (Right), at or below its 1-P quantile (Left), or either (Both, the
// Left rule OR the Right rule against those same two cuts).
//
// The comparisons are closed (≥, ≤), so on any non-degenerate column
// at least the extreme value is flagged — a quantile-based tester never
// silently returns zero flags, unlike Sigma.
type Quantile struct {
	// P is the quantile level in (0, 1), conventionally above 0.5
	// (e.g. 0.95). Values below 0.5 simply mirror the cuts.
	P    float64
	Tail Tail
}

// Test flags res.XChange values column by column.
//
// Errors:
//   - ErrInvalidTail, ErrBadProbability.
func (q Quantile) Test(res *pipeline.SlidingResults) ([][]bool, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	return mapColumns(res.XChange, q.flagColumn)
}

// TestSegmented flags segmented change values, column by column within
// each segment. A degenerate whole-segment column holds a single value,
// which is its own quantile on both sides: the closed comparisons
// always flag it (Sigma behaves the opposite way).
func (q Quantile) TestSegmented(res *pipeline.SegmentedResults) ([][][]bool, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	return mapSegments(res.XChange, q.flagColumn)
}

func (q Quantile) validate() error {
	if !q.Tail.valid() {
		return ErrInvalidTail
	}
	if q.P <= 0 || q.P >= 1 {
		return ErrBadProbability
	}

	return nil
}

func (q Quantile) flagColumn(_ int, col []float64) ([]bool, error) {
	sorted := append([]float64(nil), col...)
	sort.Float64s(sorted)

	qHi := stat.Quantile(q.P, stat.Empirical, sorted, nil)
	qLo := stat.Quantile(1-q.P, stat.Empirical, sorted, nil)

	out := make([]bool, len(col))
	for i, v := range col {
		switch q.Tail {
		case Right:
			out[i] = v >= qHi
		case Left:
			out[i] = v <= qLo
		case Both:
			out[i] = v <= qLo || v >= qHi
		}
	}

	return out, nil
}
