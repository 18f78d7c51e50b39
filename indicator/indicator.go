package indicator

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of the window.
func Mean(window []float64) float64 {
	return stat.Mean(window, nil)
}

// Variance returns the unbiased sample variance of the window.
func Variance(window []float64) float64 {
	return stat.Variance(window, nil)
}

// StdDev returns the unbiased sample standard deviation of the window.
func StdDev(window []float64) float64 {
	return stat.StdDev(window, nil)
}

// CoeffVariation returns the coefficient of variation StdDev/Mean.
// A zero-mean window yields ±Inf or NaN per IEEE semantics.
func CoeffVariation(window []float64) float64 {
	return stat.StdDev(window, nil) / stat.Mean(window, nil)
}

// Skewness returns the sample skewness of the window.
func Skewness(window []float64) float64 {
	return stat.Skew(window, nil)
}

// Kurtosis returns the excess kurtosis of the window (0 for a Gaussian).
func Kurtosis(window []float64) float64 {
	return stat.ExKurtosis(window, nil)
}

// AutoCorrelation returns a window statistic computing the Pearson
// correlation between the window and itself shifted by lag samples.
// lag must be at least 1; windows shorter than lag+2 yield NaN.
func AutoCorrelation(lag int) func([]float64) float64 {
	return func(window []float64) float64 {
		if lag < 1 || len(window) < lag+2 {
			return math.NaN()
		}

		return stat.Correlation(window[:len(window)-lag], window[lag:], nil)
	}
}
