package pipeline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tipping/indicator"
	"github.com/katalvlaran/tipping/metric"
	"github.com/katalvlaran/tipping/pipeline"
	"github.com/katalvlaran/tipping/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ramp returns [0, 1, ..., n-1].
func ramp(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}

	return x
}

var (
	meanM = metric.Func(indicator.Mean)
	varM  = metric.Func(indicator.Variance)
)

// TestNewSliding_ConstructionErrors covers every construction-time
// configuration error of the sliding variant.
func TestNewSliding_ConstructionErrors(t *testing.T) {
	opts := pipeline.DefaultSlidingOptions()

	bad := opts
	bad.WidthInd = 0
	_, err := pipeline.NewSliding(nil, []metric.Metric{meanM}, bad)
	assert.ErrorIs(t, err, pipeline.ErrBadWindow)

	bad = opts
	bad.StrideCha = -1
	_, err = pipeline.NewSliding(nil, []metric.Metric{meanM}, bad)
	assert.ErrorIs(t, err, pipeline.ErrBadWindow)

	_, err = pipeline.NewSliding([]metric.Metric{meanM}, nil, opts)
	assert.ErrorIs(t, err, pipeline.ErrNoChangeMetric)

	_, err = pipeline.NewSliding([]metric.Metric{meanM, nil}, []metric.Metric{meanM}, opts)
	assert.ErrorIs(t, err, pipeline.ErrNilMetric)

	// Three indicators, two change metrics: neither shared nor matched.
	_, err = pipeline.NewSliding(
		[]metric.Metric{meanM, varM, meanM},
		[]metric.Metric{meanM, varM},
		opts,
	)
	assert.ErrorIs(t, err, pipeline.ErrMetricCount)

	bad = opts
	bad.WhichTime = window.TimeMode(42)
	_, err = pipeline.NewSliding(nil, []metric.Metric{meanM}, bad)
	assert.ErrorIs(t, err, window.ErrBadTimeMode)
}

// TestEstimateChanges_WindowCountGuard verifies a width/stride pair
// leaving fewer than two derived windows is rejected before any
// computation.
func TestEstimateChanges_WindowCountGuard(t *testing.T) {
	opts := pipeline.DefaultSlidingOptions()
	opts.WidthInd, opts.StrideInd = 100, 100
	opts.WidthCha, opts.StrideCha = 100, 100
	cfg, err := pipeline.NewSliding(
		[]metric.Metric{meanM},
		[]metric.Metric{metric.RidgeSlope{}},
		opts,
	)
	require.NoError(t, err, "the pair is only invalid relative to a length")

	// 1001 samples → 10 indicator windows → zero change windows.
	_, err = pipeline.EstimateChanges(cfg, ramp(1001), nil)
	assert.ErrorIs(t, err, pipeline.ErrWindowCount)

	// 150 samples → one indicator window.
	_, err = pipeline.EstimateChanges(cfg, ramp(150), nil)
	assert.ErrorIs(t, err, pipeline.ErrWindowCount)
}

// TestEstimateChanges_AxisLength verifies the t/x length invariant.
func TestEstimateChanges_AxisLength(t *testing.T) {
	cfg, err := pipeline.NewSliding(nil, []metric.Metric{metric.KendallTau{}},
		pipeline.SlidingOptions{WidthInd: 1, StrideInd: 1, WidthCha: 5, StrideCha: 1})
	require.NoError(t, err)

	_, err = pipeline.EstimateChanges(cfg, ramp(20), ramp(19))
	assert.ErrorIs(t, err, pipeline.ErrAxisLength)
}

// TestEstimateChanges_MeanTrend verifies the core numeric property:
// the ridge slope of the windowed mean of a ramp equals 1 against the
// time axis, and equals the indicator stride against sample order.
func TestEstimateChanges_MeanTrend(t *testing.T) {
	const strideInd = 7
	opts := pipeline.SlidingOptions{
		WidthInd: 20, StrideInd: strideInd,
		WidthCha: 10, StrideCha: 1,
		WhichTime: window.MidTime,
	}
	cfg, err := pipeline.NewSliding(
		[]metric.Metric{meanM},
		[]metric.Metric{metric.RidgeSlope{}},
		opts,
	)
	require.NoError(t, err)

	res, err := pipeline.EstimateChanges(cfg, ramp(500), nil)
	require.NoError(t, err)
	require.Len(t, res.XChange, 1)

	// Compiled against the (stride-spaced) indicator time axis the mean
	// of a unit ramp rises one unit per unit time.
	for i, v := range res.XChange[0] {
		assert.InDelta(t, 1.0, v, 1e-9, "row %d", i)
	}

	// Against plain sample order the same indicator series rises by the
	// indicator stride per step.
	slope := metric.RidgeSlope{}.Evaluate(res.XIndicator[0])
	assert.InDelta(t, float64(strideInd), slope, 1e-9)
}

// TestEstimateChanges_VarianceTrendZero verifies the variance of a
// linear sequence is constant across windows, hence its trend is zero.
func TestEstimateChanges_VarianceTrendZero(t *testing.T) {
	opts := pipeline.SlidingOptions{
		WidthInd: 50, StrideInd: 10,
		WidthCha: 8, StrideCha: 1,
		WhichTime: window.MidTime,
	}
	cfg, err := pipeline.NewSliding(
		[]metric.Metric{varM},
		[]metric.Metric{metric.RidgeSlope{}},
		opts,
	)
	require.NoError(t, err)

	res, err := pipeline.EstimateChanges(cfg, ramp(600), nil)
	require.NoError(t, err)
	for i, v := range res.XChange[0] {
		assert.InDelta(t, 0.0, v, 1e-9, "row %d", i)
	}
}

// TestEstimateChanges_EndToEnd is the regression guard over the full
// two-indicator scenario: x = 1..1001, indicators {mean, variance}, a
// shared ridge-slope change metric.
func TestEstimateChanges_EndToEnd(t *testing.T) {
	x := make([]float64, 1001)
	for i := range x {
		x[i] = float64(i + 1)
	}
	opts := pipeline.SlidingOptions{
		WidthInd: 100, StrideInd: 100,
		WidthCha: 5, StrideCha: 1,
		WhichTime: window.MidTime,
	}
	cfg, err := pipeline.NewSliding(
		[]metric.Metric{meanM, varM},
		[]metric.Metric{metric.RidgeSlope{}},
		opts,
	)
	require.NoError(t, err)

	res, err := pipeline.EstimateChanges(cfg, x, nil)
	require.NoError(t, err)
	require.Len(t, res.XIndicator, 2)
	require.Len(t, res.XChange, 2)
	require.Equal(t, 10, len(res.XIndicator[0]), "10 non-overlapping indicator windows")
	require.Equal(t, 6, len(res.XChange[0]))

	for i := range res.XChange[0] {
		assert.InDelta(t, 1.0, res.XChange[0][i], 1e-9, "mean trend, row %d", i)
		assert.InDelta(t, 0.0, res.XChange[1][i], 1e-9, "variance trend, row %d", i)
	}
}

// TestEstimateChanges_Idempotent verifies repeated runs on identical
// inputs are bit-identical.
func TestEstimateChanges_Idempotent(t *testing.T) {
	opts := pipeline.SlidingOptions{
		WidthInd: 30, StrideInd: 5,
		WidthCha: 10, StrideCha: 2,
		WhichTime: window.LastTime,
	}
	cfg, err := pipeline.NewSliding(
		[]metric.Metric{meanM, varM},
		[]metric.Metric{metric.RidgeSlope{Lambda: 0.5}, metric.KendallTau{}},
		opts,
	)
	require.NoError(t, err)

	x := make([]float64, 400)
	for i := range x {
		x[i] = 10*math.Sin(float64(i)/3) + float64(i)/10
	}
	a, err := pipeline.EstimateChanges(cfg, x, nil)
	require.NoError(t, err)
	b, err := pipeline.EstimateChanges(cfg, x, nil)
	require.NoError(t, err)

	assert.Equal(t, a.TIndicator, b.TIndicator)
	assert.Equal(t, a.XIndicator, b.XIndicator)
	assert.Equal(t, a.TChange, b.TChange)
	assert.Equal(t, a.XChange, b.XChange)
}

// TestEstimateChanges_NoIndicators verifies the change metrics apply
// directly to the raw series when the indicator stage is skipped.
func TestEstimateChanges_NoIndicators(t *testing.T) {
	opts := pipeline.SlidingOptions{
		WidthInd: 1, StrideInd: 1,
		WidthCha: 10, StrideCha: 5,
		WhichTime: window.MidTime,
	}
	cfg, err := pipeline.NewSliding(nil,
		[]metric.Metric{metric.RidgeSlope{}, metric.KendallTau{}}, opts)
	require.NoError(t, err)

	res, err := pipeline.EstimateChanges(cfg, ramp(100), nil)
	require.NoError(t, err)

	assert.Nil(t, res.XIndicator, "indicator stage skipped")
	assert.Nil(t, res.TIndicator)
	require.Len(t, res.XChange, 2, "one column per change metric")
	for i := range res.XChange[0] {
		assert.InDelta(t, 1.0, res.XChange[0][i], 1e-9, "raw ramp slope")
		assert.InDelta(t, 1.0, res.XChange[1][i], 1e-9, "raw ramp tau")
	}
}

// TestEstimateChanges_TimeAxes verifies the derived axes follow the
// WhichTime policy on a custom (non-index) axis.
func TestEstimateChanges_TimeAxes(t *testing.T) {
	n := 30
	x := ramp(n)
	tt := make([]float64, n)
	for i := range tt {
		tt[i] = 2000 + float64(i) // years
	}
	opts := pipeline.SlidingOptions{
		WidthInd: 10, StrideInd: 5,
		WidthCha: 3, StrideCha: 1,
		WhichTime: window.LastTime,
	}
	cfg, err := pipeline.NewSliding([]metric.Metric{meanM},
		[]metric.Metric{metric.RidgeSlope{}}, opts)
	require.NoError(t, err)

	res, err := pipeline.EstimateChanges(cfg, x, tt)
	require.NoError(t, err)

	// Indicator windows end at samples 9, 14, 19, 24, 29.
	assert.Equal(t, []float64{2009, 2014, 2019, 2024, 2029}, res.TIndicator)
	// Change windows of width 3 over that axis end at its samples 2, 3, 4.
	assert.Equal(t, []float64{2019, 2024, 2029}, res.TChange)
}

// TestEstimateChanges_NonEquispacedAxis verifies a precomputable change
// metric aborts the run with ErrNonEquispaced on an uneven axis.
func TestEstimateChanges_NonEquispacedAxis(t *testing.T) {
	n := 60
	x := ramp(n)
	tt := make([]float64, n)
	for i := range tt {
		tt[i] = float64(i) * float64(i) // quadratic spacing
	}
	opts := pipeline.SlidingOptions{
		WidthInd: 10, StrideInd: 2,
		WidthCha: 5, StrideCha: 1,
		WhichTime: window.FirstTime,
	}
	cfg, err := pipeline.NewSliding([]metric.Metric{meanM},
		[]metric.Metric{metric.RidgeSlope{}}, opts)
	require.NoError(t, err)

	_, err = pipeline.EstimateChanges(cfg, x, tt)
	assert.ErrorIs(t, err, metric.ErrNonEquispaced)

	// The same geometry with a plain change metric runs fine.
	cfg, err = pipeline.NewSliding([]metric.Metric{meanM},
		[]metric.Metric{metric.KendallTau{}}, opts)
	require.NoError(t, err)
	_, err = pipeline.EstimateChanges(cfg, x, tt)
	assert.NoError(t, err)
}
