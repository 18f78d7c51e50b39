package signif

import "github.com/katalvlaran/tipping/pipeline"

// Threshold flags change values beyond a single fixed cut.
//
// Tail semantics against the one cut:
//   - Right — flag x > Threshold.
//   - Left  — flag x < Threshold.
//   - Both  — flag x < Threshold OR x > Threshold, i.e. everything but
//     exact equality. A meaningful two-sided test needs two distinct
//     cuts, which a single-threshold tester cannot express; compose two
//     Threshold testers (one Left, one Right) for a band.
type Threshold struct {
	Threshold float64
	Tail      Tail
}

// Test flags res.XChange values against the cut.
//
// Errors:
//   - ErrInvalidTail for an unrecognized tail.
func (th Threshold) Test(res *pipeline.SlidingResults) ([][]bool, error) {
	if !th.Tail.valid() {
		return nil, ErrInvalidTail
	}

	return mapColumns(res.XChange, th.flagColumn)
}

// TestSegmented flags segmented change values against the cut.
func (th Threshold) TestSegmented(res *pipeline.SegmentedResults) ([][][]bool, error) {
	if !th.Tail.valid() {
		return nil, ErrInvalidTail
	}

	return mapSegments(res.XChange, th.flagColumn)
}

func (th Threshold) flagColumn(_ int, col []float64) ([]bool, error) {
	out := make([]bool, len(col))
	for i, v := range col {
		switch th.Tail {
		case Right:
			out[i] = v > th.Threshold
		case Left:
			out[i] = v < th.Threshold
		case Both:
			out[i] = v < th.Threshold || v > th.Threshold
		}
	}

	return out, nil
}
