// Package pipeline defines options, defaults and sentinel errors for
// the pipeline subpackage of github.com/katalvlaran/tipping.
package pipeline

import (
	"errors"

	"github.com/katalvlaran/tipping/window"
)

// Sentinel errors for pipeline configuration and execution.
var (
	// ErrBadWindow indicates a window width or stride below one.
	ErrBadWindow = errors.New("pipeline: window widths and strides must be at least 1")
	// ErrNoChangeMetric indicates an empty change-metric set.
	ErrNoChangeMetric = errors.New("pipeline: at least one change metric is required")
	// ErrNilMetric indicates a nil entry in a metric slice.
	ErrNilMetric = errors.New("pipeline: metrics must be non-nil")
	// ErrMetricCount indicates the change-metric count is neither one
	// (shared) nor equal to the indicator count.
	ErrMetricCount = errors.New("pipeline: change metric count must be 1 or match the indicator count")
	// ErrSegmentBounds indicates start/end vectors of differing length or
	// a start beyond its matching end.
	ErrSegmentBounds = errors.New("pipeline: segment bounds must pair equal-length vectors with start ≤ end")
	// ErrNoSegments indicates an empty segment set.
	ErrNoSegments = errors.New("pipeline: at least one segment is required")
	// ErrBadMinWidth indicates a negative MinWidthCha.
	ErrBadMinWidth = errors.New("pipeline: MinWidthCha must be non-negative")
	// ErrWindowCount indicates a width/stride pair that leaves fewer than
	// two derived windows for the sequence at hand.
	ErrWindowCount = errors.New("pipeline: width/stride leave fewer than two windows")
	// ErrAxisLength indicates a time axis whose length differs from the sequence.
	ErrAxisLength = errors.New("pipeline: time axis length must equal sequence length")
	// ErrSegmentEmpty indicates a segment covering no samples of the time axis.
	ErrSegmentEmpty = errors.New("pipeline: segment contains no samples")
	// ErrSegmentShort indicates a segment too short for the configured
	// windows or the MinWidthCha floor.
	ErrSegmentShort = errors.New("pipeline: segment too short for the configured windows")
)

// DEFAULTS - single source of truth for DefaultSlidingOptions and
// DefaultSegmentedOptions. Chosen for series of a few thousand samples;
// always set widths explicitly for shorter data.
const (
	// DefaultWidthInd is the default indicator window width in samples.
	DefaultWidthInd = 100
	// DefaultStrideInd is the default indicator window stride.
	DefaultStrideInd = 1
	// DefaultWidthCha is the default change-metric window width in samples.
	DefaultWidthCha = 50
	// DefaultStrideCha is the default change-metric window stride.
	DefaultStrideCha = 1
	// DefaultMinWidthCha permits degenerate whole-segment change values.
	DefaultMinWidthCha = 0
)

// SlidingOptions sets the window geometry and time-stamping policy of a
// sliding pipeline.
//
// Fields:
//   - WidthInd, StrideInd — indicator-stage window width and stride.
//   - WidthCha, StrideCha — change-stage window width and stride.
//   - WhichTime           — policy mapping each window to one
//     representative timestamp (window.MidTime default).
type SlidingOptions struct {
	WidthInd  int
	StrideInd int
	WidthCha  int
	StrideCha int
	WhichTime window.TimeMode
}

// DefaultSlidingOptions returns the documented defaults:
// WidthInd=100, StrideInd=1, WidthCha=50, StrideCha=1, WhichTime=MidTime.
func DefaultSlidingOptions() SlidingOptions {
	return SlidingOptions{
		WidthInd:  DefaultWidthInd,
		StrideInd: DefaultStrideInd,
		WidthCha:  DefaultWidthCha,
		StrideCha: DefaultStrideCha,
		WhichTime: window.MidTime,
	}
}

// SegmentedOptions extends SlidingOptions with the per-segment floor on
// the number of change windows.
//
// MinWidthCha semantics:
//   - 0 — a segment too short for windowed change computation is
//     allowed to degenerate to one whole-segment change value per metric.
//   - k ≥ 1 — a segment yielding fewer than k change windows is
//     rejected with ErrSegmentShort.
type SegmentedOptions struct {
	SlidingOptions
	MinWidthCha int
}

// DefaultSegmentedOptions returns DefaultSlidingOptions plus
// MinWidthCha=0 (degenerate whole-segment values permitted).
func DefaultSegmentedOptions() SegmentedOptions {
	return SegmentedOptions{
		SlidingOptions: DefaultSlidingOptions(),
		MinWidthCha:    DefaultMinWidthCha,
	}
}
