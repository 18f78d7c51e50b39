package metric_test

import (
	"fmt"

	"github.com/katalvlaran/tipping/metric"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRidgeSlope_Compile
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Estimate the trend of many windows sharing one time axis.
//	  axis   = [0, 1, 2, 3]
//	  window = [1, 3, 5, 7]    (slope 2 per unit time)
//
// Options:
//   - Lambda = 0 (ordinary least squares)
//
// Use case:
//
//	A change metric swept across hundreds of windows: the regression
//	matrix is inverted once, each window costs one dot product.
//
// Complexity: Compile O(n), Evaluate O(n) per window.
func ExampleRidgeSlope_Compile() {
	axis := []float64{0, 1, 2, 3}
	slope, err := metric.RidgeSlope{}.Compile(axis)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("slope=%.1f\n", slope.Evaluate([]float64{1, 3, 5, 7}))
	// Output:
	// slope=2.0
}
