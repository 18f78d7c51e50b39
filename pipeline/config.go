package pipeline

import (
	"github.com/katalvlaran/tipping/metric"
	"github.com/katalvlaran/tipping/window"
)

// SlidingConfig is a validated sliding-window pipeline configuration:
// one global indicator window and one global change window swept across
// the whole series. Immutable once built; safe to share between runs,
// which is how surrogate replay reuses it.
type SlidingConfig struct {
	indicators    []metric.Metric // empty ⇒ change metrics on the raw series
	changeMetrics []metric.Metric
	opts          SlidingOptions
}

// NewSliding validates and builds a sliding configuration.
//
// indicators may be nil or empty, in which case the change metrics are
// applied directly to the raw sequence. changeMetrics must hold either
// exactly one metric (shared across all indicator columns) or one per
// indicator. The metric slices are copied; later mutation of the
// caller's slices does not affect the config.
//
// Errors:
//   - ErrBadWindow: any width or stride below 1.
//   - ErrNoChangeMetric: empty changeMetrics.
//   - ErrNilMetric: nil entry in either slice.
//   - ErrMetricCount: changeMetrics length neither 1 nor len(indicators).
//   - window.ErrBadTimeMode: unrecognized WhichTime.
func NewSliding(indicators, changeMetrics []metric.Metric, opts SlidingOptions) (*SlidingConfig, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if err := validateMetrics(indicators, changeMetrics); err != nil {
		return nil, err
	}

	return &SlidingConfig{
		indicators:    cloneMetrics(indicators),
		changeMetrics: cloneMetrics(changeMetrics),
		opts:          opts,
	}, nil
}

// Options returns the configured window geometry and time policy.
func (c *SlidingConfig) Options() SlidingOptions { return c.opts }

// NumColumns returns the number of change-metric columns the config
// produces: one per indicator, or one per change metric when the
// indicator stage is skipped.
func (c *SlidingConfig) NumColumns() int {
	if len(c.indicators) > 0 {
		return len(c.indicators)
	}

	return len(c.changeMetrics)
}

// changeMetric returns the change metric serving column j, resolving
// the shared-single-metric case.
func (c *SlidingConfig) changeMetric(j int) metric.Metric {
	if len(c.changeMetrics) == 1 {
		return c.changeMetrics[0]
	}

	return c.changeMetrics[j]
}

// validateAgainst rejects the config for a sequence of length n when
// either derived stage would hold fewer than two windows. Called by the
// estimators before any computation.
func (c *SlidingConfig) validateAgainst(n int) error {
	nInd := n
	if len(c.indicators) > 0 {
		nInd = window.Count(n, c.opts.WidthInd, c.opts.StrideInd)
		if nInd < 2 {
			return ErrWindowCount
		}
	}
	if window.Count(nInd, c.opts.WidthCha, c.opts.StrideCha) < 2 {
		return ErrWindowCount
	}

	return nil
}

// SegmentedConfig is a validated segmented-window configuration:
// the sliding computation restricted independently to each
// [SegmentStart[k], SegmentEnd[k]] interval of the time axis.
type SegmentedConfig struct {
	indicators    []metric.Metric
	changeMetrics []metric.Metric
	segStart      []float64
	segEnd        []float64
	opts          SegmentedOptions
}

// NewSegmented validates and builds a segmented configuration.
// segStart and segEnd pair up one interval per index, expressed in time
// units of the axis passed to EstimateSegmented; intervals may overlap
// or be disjoint. All slices are copied.
//
// Errors: the NewSliding set, plus
//   - ErrNoSegments: empty segment vectors.
//   - ErrSegmentBounds: length mismatch or a start beyond its end.
//   - ErrBadMinWidth: negative MinWidthCha.
func NewSegmented(indicators, changeMetrics []metric.Metric, segStart, segEnd []float64, opts SegmentedOptions) (*SegmentedConfig, error) {
	if err := validateOptions(opts.SlidingOptions); err != nil {
		return nil, err
	}
	if err := validateMetrics(indicators, changeMetrics); err != nil {
		return nil, err
	}
	if opts.MinWidthCha < 0 {
		return nil, ErrBadMinWidth
	}
	if len(segStart) == 0 {
		return nil, ErrNoSegments
	}
	if len(segStart) != len(segEnd) {
		return nil, ErrSegmentBounds
	}
	for k := range segStart {
		if segStart[k] > segEnd[k] {
			return nil, ErrSegmentBounds
		}
	}

	return &SegmentedConfig{
		indicators:    cloneMetrics(indicators),
		changeMetrics: cloneMetrics(changeMetrics),
		segStart:      append([]float64(nil), segStart...),
		segEnd:        append([]float64(nil), segEnd...),
		opts:          opts,
	}, nil
}

// Options returns the configured geometry, time policy and MinWidthCha.
func (c *SegmentedConfig) Options() SegmentedOptions { return c.opts }

// NumSegments returns the number of configured segments.
func (c *SegmentedConfig) NumSegments() int { return len(c.segStart) }

// sliding projects the segmented config onto the per-segment sliding
// computation. The projection shares the (immutable) metric slices.
func (c *SegmentedConfig) sliding() *SlidingConfig {
	return &SlidingConfig{
		indicators:    c.indicators,
		changeMetrics: c.changeMetrics,
		opts:          c.opts.SlidingOptions,
	}
}

func validateOptions(o SlidingOptions) error {
	if o.WidthInd < 1 || o.StrideInd < 1 || o.WidthCha < 1 || o.StrideCha < 1 {
		return ErrBadWindow
	}
	switch o.WhichTime {
	case window.MidTime, window.FirstTime, window.LastTime:
		return nil
	default:
		return window.ErrBadTimeMode
	}
}

func validateMetrics(indicators, changeMetrics []metric.Metric) error {
	if len(changeMetrics) == 0 {
		return ErrNoChangeMetric
	}
	for _, m := range indicators {
		if m == nil {
			return ErrNilMetric
		}
	}
	for _, m := range changeMetrics {
		if m == nil {
			return ErrNilMetric
		}
	}
	if len(indicators) > 0 && len(changeMetrics) != 1 && len(changeMetrics) != len(indicators) {
		return ErrMetricCount
	}

	return nil
}

func cloneMetrics(ms []metric.Metric) []metric.Metric {
	if len(ms) == 0 {
		return nil
	}

	return append([]metric.Metric(nil), ms...)
}
