// Package pipeline estimates how fast a time series is changing by
// running a two-stage windowed computation: indicators over windows of
// the raw series, then change metrics over windows of the indicator
// series.
//
// What:
//
//   - SlidingConfig: one global indicator window and one global change
//     window swept across the whole series.
//   - SegmentedConfig: independent windowing and change analysis inside
//     caller-specified [start, end] sub-intervals of the time axis; a
//     segment too short for windowed change computation degenerates to
//     one whole-segment change value per metric.
//   - EstimateChanges / EstimateSegmented: execute a validated config
//     against a sequence (and optional time axis, defaulting to sample
//     indices) into an immutable Results value.
//
// Validation:
//
//	Configurations are checked twice, both before any computation:
//	construction (NewSliding / NewSegmented) rejects nonsensical
//	parameter sets — widths or strides below one, missing change
//	metrics, indicator/change-metric count mismatches, malformed
//	segment bounds — and execution first checks the config against the
//	actual sequence length, rejecting width/stride pairs that leave
//	fewer than two derived windows.
//
// Precomputation:
//
//	Metrics carrying the metric.Precomputable capability are compiled
//	exactly once per stage, against the first window's slice of the
//	relevant time axis, never per window. Compiled metrics carrying the
//	metric.Checked capability are verified before the sweep, so an
//	evenly-spaced-axis violation surfaces as an error, not a panic.
//
// Determinism:
//
//	Estimation is pure: repeating a run on the same inputs yields
//	bit-identical Results. Results borrow the caller's slices and must
//	be treated as read-only by all parties.
//
// Errors:
//
//   - ErrBadWindow, ErrNoChangeMetric, ErrNilMetric, ErrMetricCount:
//     construction-time configuration errors.
//   - ErrSegmentBounds, ErrNoSegments, ErrBadMinWidth: segmented
//     construction errors.
//   - ErrWindowCount, ErrAxisLength: execution-time configuration
//     errors, raised before any computation.
//   - ErrSegmentEmpty, ErrSegmentShort: per-segment execution errors,
//     wrapped with the offending segment index.
package pipeline
