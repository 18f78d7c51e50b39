// Package indicator ships the stock window statistics used as
// regime-shift indicators, as thin wrappers over gonum/stat.
//
// What:
//
//	Mean, Variance, StdDev, CoeffVariation, Skewness, Kurtosis and
//	AutoCorrelation(lag) — each a plain func([]float64) float64, ready
//	to wrap with metric.Func and feed to a pipeline.
//
// Why:
//
//	Rising variance and lag-1 autocorrelation are the classical early
//	warnings of an approaching transition (critical slowing down);
//	skewness and kurtosis flag asymmetry and flickering.
//
// Conventions:
//
//   - Variance and StdDev are the unbiased (n-1) sample estimators.
//   - Kurtosis is excess kurtosis (0 for a Gaussian).
//   - AutoCorrelation(lag) is the Pearson correlation of the window
//     with itself shifted by lag samples; windows shorter than lag+2
//     yield NaN.
//
// All functions are pure and allocation-free except AutoCorrelation's
// internal sub-slicing, which borrows rather than copies.
package indicator
