package signif

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tipping/pipeline"
)

// Sigma flags change values more than factor·σ away from their
// column's mean. Unlike Quantile it carries no non-zero-flag
// guarantee: a tight column legitimately yields no flags at all.
type Sigma struct {
	// Factor is the band half-width in standard deviations, applied to
	// every column unless FactorPerColumn is set. Must be positive.
	Factor float64
	// FactorPerColumn optionally overrides Factor with one value per
	// change-metric column.
	FactorPerColumn []float64
	Tail            Tail
}

// Test flags res.XChange values column by column.
//
// Errors:
//   - ErrInvalidTail, ErrBadFactor.
//   - ErrFactorCount when FactorPerColumn does not match the columns.
func (s Sigma) Test(res *pipeline.SlidingResults) ([][]bool, error) {
	if err := s.validate(len(res.XChange)); err != nil {
		return nil, err
	}

	return mapColumns(res.XChange, s.flagColumn)
}

// TestSegmented flags segmented change values, column by column within
// each segment. FactorPerColumn indexes the change-metric column, which
// is shared across segments. A degenerate whole-segment column holds a
// single value whose standard deviation is NaN, so Sigma never flags it
// (Quantile behaves the opposite way).
func (s Sigma) TestSegmented(res *pipeline.SegmentedResults) ([][][]bool, error) {
	ncol := 0
	if len(res.XChange) > 0 {
		ncol = len(res.XChange[0])
	}
	if err := s.validate(ncol); err != nil {
		return nil, err
	}

	return mapSegments(res.XChange, s.flagColumn)
}

func (s Sigma) validate(ncol int) error {
	if !s.Tail.valid() {
		return ErrInvalidTail
	}
	if s.FactorPerColumn != nil {
		if len(s.FactorPerColumn) != ncol {
			return ErrFactorCount
		}
		for _, f := range s.FactorPerColumn {
			if f <= 0 || math.IsNaN(f) {
				return ErrBadFactor
			}
		}

		return nil
	}
	if s.Factor <= 0 || math.IsNaN(s.Factor) {
		return ErrBadFactor
	}

	return nil
}

func (s Sigma) flagColumn(j int, col []float64) ([]bool, error) {
	f := s.Factor
	if s.FactorPerColumn != nil {
		f = s.FactorPerColumn[j]
	}
	mean, sd := stat.MeanStdDev(col, nil)
	lo, hi := mean-f*sd, mean+f*sd

	out := make([]bool, len(col))
	for i, v := range col {
		switch s.Tail {
		case Right:
			out[i] = v > hi
		case Left:
			out[i] = v < lo
		case Both:
			out[i] = v < lo || v > hi
		}
	}

	return out, nil
}
