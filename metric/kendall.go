package metric

import "gonum.org/v1/gonum/stat"

// KendallTau is a trend change metric: Kendall's rank correlation of
// window values against their sample order. It ranges in [-1, 1], is
// insensitive to the magnitude of changes, and needs no compilation
// (rank correlation against any monotone axis is the same).
type KendallTau struct{}

// Evaluate returns Kendall's tau of the window against 0..len-1.
func (KendallTau) Evaluate(window []float64) float64 {
	idx := make([]float64, len(window))
	for i := range idx {
		idx[i] = float64(i)
	}

	return stat.Kendall(idx, window, nil)
}
