// Package signif defines the Tail enum, tester contracts and sentinel
// errors for the signif subpackage of github.com/katalvlaran/tipping.
package signif

import (
	"errors"

	"github.com/katalvlaran/tipping/pipeline"
)

// Sentinel errors for significance testing.
var (
	// ErrInvalidTail indicates a tail outside {Left, Right, Both}.
	ErrInvalidTail = errors.New("signif: tail must be Left, Right or Both")
	// ErrBadProbability indicates a significance level outside (0, 1).
	ErrBadProbability = errors.New("signif: p must lie strictly between 0 and 1")
	// ErrBadFactor indicates a non-positive sigma factor.
	ErrBadFactor = errors.New("signif: sigma factor must be positive")
	// ErrFactorCount indicates a per-column factor vector whose length
	// does not match the change columns.
	ErrFactorCount = errors.New("signif: per-column factor count must match the change columns")
	// ErrBadSurrogateCount indicates fewer than one surrogate realization.
	ErrBadSurrogateCount = errors.New("signif: surrogate count must be at least 1")
	// ErrNoMethod indicates a Surrogates tester without a surrogate method.
	ErrNoMethod = errors.New("signif: a surrogate method is required")
)

// Tail selects which side of a distribution counts as significant.
type Tail int

const (
	// Both flags unusually small and unusually large values. Default.
	Both Tail = iota
	// Left flags unusually small values only.
	Left
	// Right flags unusually large values only.
	Right
)

// String returns the tail name, or "Tail(?)" for invalid values.
func (t Tail) String() string {
	switch t {
	case Both:
		return "Both"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Tail(?)"
	}
}

// valid reports whether t is one of the recognized tails.
func (t Tail) valid() bool {
	return t == Both || t == Left || t == Right
}

// Tester flags significant values of a sliding-window result. The
// returned matrix mirrors res.XChange: flags[j][i] covers change metric
// j at change window i. Testers read the result, never mutate it.
type Tester interface {
	Test(res *pipeline.SlidingResults) ([][]bool, error)
}

// SegmentedTester flags significant values of a segmented result. The
// returned matrix mirrors res.XChange: flags[k][j] covers segment k,
// change metric j (a single flag per degenerate whole-segment value).
type SegmentedTester interface {
	TestSegmented(res *pipeline.SegmentedResults) ([][][]bool, error)
}

// SignificantTransitions applies a tester to a sliding result. It is a
// thin naming convenience mirroring the estimation entry point.
func SignificantTransitions(res *pipeline.SlidingResults, t Tester) ([][]bool, error) {
	return t.Test(res)
}

// SignificantSegments applies a tester to a segmented result.
func SignificantSegments(res *pipeline.SegmentedResults, t SegmentedTester) ([][][]bool, error) {
	return t.TestSegmented(res)
}

// mapColumns applies a per-column flagger to a sliding change matrix.
func mapColumns(x [][]float64, f func(j int, col []float64) ([]bool, error)) ([][]bool, error) {
	flags := make([][]bool, len(x))
	for j, col := range x {
		out, err := f(j, col)
		if err != nil {
			return nil, err
		}
		flags[j] = out
	}

	return flags, nil
}

// mapSegments applies a per-column flagger segment by segment.
func mapSegments(x [][][]float64, f func(j int, col []float64) ([]bool, error)) ([][][]bool, error) {
	flags := make([][][]bool, len(x))
	for k, seg := range x {
		out, err := mapColumns(seg, f)
		if err != nil {
			return nil, err
		}
		flags[k] = out
	}

	return flags, nil
}
