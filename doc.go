// Package tipping is your in-memory toolkit for detecting regime
// transitions in time series — from lazy windowed statistics to
// surrogate-based significance testing.
//
// 🚀 What is tipping?
//
//	A modern, deterministic library that brings together:
//		• Lazy windowing: fixed-width, fixed-stride views with zero copying
//		• Metrics: plain callables plus precomputable (compile-once) functions
//		• Indicators: variance, autocorrelation, skewness & friends (gonum-backed)
//		• Pipelines: sliding or segmented indicator → change-metric estimation
//		• Surrogates: shuffle, block-bootstrap, Fourier & AAFT null models
//		• Significance: threshold, quantile, sigma and Monte-Carlo testers
//
// ✨ Why choose tipping?
//
//   - Reproducible – every random draw flows from one explicit seed
//   - Allocation-aware – windows borrow, never copy; plans compile once
//   - Explicit configuration – documented defaults, no global state
//   - Pure Go – gonum for the numerics, nothing else
//
// Under the hood, everything is organized under six subpackages:
//
//	window/    — lazy strided View, windowed mapping, time-stamp policies
//	metric/    — Metric capability, precomputable ridge-regression slope
//	indicator/ — stock window statistics built on gonum/stat
//	surrogate/ — null-model sequence generators (shuffle, block, Fourier, AAFT)
//	pipeline/  — sliding & segmented configs, EstimateChanges, Results
//	signif/    — Threshold | Quantile | Sigma | Surrogates significance
//
// Quick sketch:
//
//	raw series ──window──▶ indicators ──window──▶ change metrics
//	                                                  │
//	       surrogates ──(same pipeline ×N)──▶ null ───▶ flags
//
// Dive into each package's doc.go for contracts, error taxonomy and
// worked examples.
//
//	go get github.com/katalvlaran/tipping
package tipping
