package signif_test

import (
	"fmt"

	"github.com/katalvlaran/tipping/metric"
	"github.com/katalvlaran/tipping/pipeline"
	"github.com/katalvlaran/tipping/signif"
	"github.com/katalvlaran/tipping/surrogate"
	"github.com/katalvlaran/tipping/window"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleQuantile
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A change column with one pronounced spike; the tester flags every
//	value at or above the column's own 0.95 quantile.
//
// Options:
//   - P=0.95, Tail=Right (large values only)
//
// Use case:
//
//	Quick triage without a null model: "which change windows stand out
//	within this run", at the cost of always flagging something.
//
// Complexity: O(m log m) per column of m change values.
func ExampleQuantile() {
	res := &pipeline.SlidingResults{
		XChange: [][]float64{{0.1, 0.2, 0.1, 0.3, 2.5, 0.2, 0.1, 0.2, 0.3, 0.1}},
	}

	flags, err := signif.SignificantTransitions(res, signif.Quantile{P: 0.95, Tail: signif.Right})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, f := range flags[0] {
		if f {
			fmt.Printf("window %d stands out\n", i)
		}
	}
	// Output:
	// window 4 stands out
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSurrogates
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Is the upward trend of a ramp real, or could random ordering of the
//	same values produce it? Forty shuffle surrogates build the null.
//
// Options:
//   - N=40 shuffle surrogates, Seed=1 (bit-reproducible)
//   - P=0.05, Tail=Right (trends larger than the null)
//   - change metric: ridge-regression slope over raw-series windows
//
// Use case:
//
//	The standard trend-significance question for early-warning
//	indicators: shuffling destroys temporal order, so a shuffled ramp
//	has slope near zero and the real unit slope clears the null.
//
// Complexity: O(N · pipeline) time, the dominant cost of the system.
func ExampleSurrogates() {
	x := make([]float64, 200)
	for i := range x {
		x[i] = float64(i)
	}
	cfg, err := pipeline.NewSliding(nil, []metric.Metric{metric.RidgeSlope{}},
		pipeline.SlidingOptions{
			WidthInd: 1, StrideInd: 1,
			WidthCha: 100, StrideCha: 50,
			WhichTime: window.MidTime,
		})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	res, err := pipeline.EstimateChanges(cfg, x, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	s := signif.Surrogates{N: 40, Method: surrogate.Shuffle, Seed: 1, P: 0.05, Tail: signif.Right}
	flags, err := s.Test(res)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("change windows=%d\n", len(flags[0]))
	fmt.Println("significant:", flags[0])
	// Output:
	// change windows=3
	// significant: [true true true]
}
