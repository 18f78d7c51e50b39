package pipeline

import (
	"fmt"

	"github.com/katalvlaran/tipping/metric"
	"github.com/katalvlaran/tipping/window"
)

// EstimateChanges runs the two-stage sliding pipeline: every configured
// indicator over windows of x, then every change metric over windows of
// the resulting indicator series (or over x itself when the indicator
// stage is skipped).
//
// t is the time axis; nil defaults to the sample indices 0..len(x)-1.
// The run is pure and deterministic: identical inputs produce
// bit-identical Results.
//
// Errors:
//   - ErrAxisLength when len(t) != len(x).
//   - ErrWindowCount when either derived stage would hold fewer than
//     two windows — checked before any computation.
//   - metric.ErrNonEquispaced (and other metric compile errors) when a
//     precomputable metric cannot honor its axis contract; the run
//     aborts, nothing partial is returned.
func EstimateChanges(cfg *SlidingConfig, x, t []float64) (*SlidingResults, error) {
	t, err := resolveAxis(x, t)
	if err != nil {
		return nil, err
	}
	if err = cfg.validateAgainst(len(x)); err != nil {
		return nil, err
	}

	return cfg.run(x, t, false)
}

// EstimateSegmented runs the sliding computation independently inside
// every configured [start, end] interval of the time axis. Segment k
// covers the samples from the first t ≥ SegmentStart[k] through the
// last t ≤ SegmentEnd[k].
//
// A segment whose indicator series is too short for windowed change
// computation degenerates to one whole-segment change value per metric
// when MinWidthCha permits it (see SegmentedOptions).
//
// Errors:
//   - ErrAxisLength when len(t) != len(x).
//   - ErrSegmentEmpty / ErrSegmentShort, wrapped with the segment index.
//   - metric compile errors, wrapped with the segment index.
func EstimateSegmented(cfg *SegmentedConfig, x, t []float64) (*SegmentedResults, error) {
	t, err := resolveAxis(x, t)
	if err != nil {
		return nil, err
	}

	o := cfg.opts
	sl := cfg.sliding()
	res := &SegmentedResults{T: t, X: x, Config: cfg}
	for k := range cfg.segStart {
		i1, i2, ok := segmentBounds(t, cfg.segStart[k], cfg.segEnd[k])
		if !ok {
			return nil, fmt.Errorf("%w: segment %d", ErrSegmentEmpty, k)
		}
		xSeg, tSeg := x[i1:i2+1], t[i1:i2+1]

		nInd := len(xSeg)
		if len(cfg.indicators) > 0 {
			nInd = window.Count(len(xSeg), o.WidthInd, o.StrideInd)
		}
		if nInd < 2 {
			return nil, fmt.Errorf("%w: segment %d", ErrSegmentShort, k)
		}
		nCha := window.Count(nInd, o.WidthCha, o.StrideCha)
		if nCha < o.MinWidthCha {
			return nil, fmt.Errorf("%w: segment %d", ErrSegmentShort, k)
		}

		sub, err := sl.run(xSeg, tSeg, nCha == 0)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", k, err)
		}

		res.I1 = append(res.I1, i1)
		res.I2 = append(res.I2, i2)
		res.TIndicator = append(res.TIndicator, sub.TIndicator)
		res.XIndicator = append(res.XIndicator, sub.XIndicator)
		res.TChange = append(res.TChange, sub.TChange)
		res.XChange = append(res.XChange, sub.XChange)
	}

	return res, nil
}

// run executes the two stages over one contiguous range. When
// degenerate is true the change stage collapses to a single
// whole-range window, yielding one change value per metric.
// Callers have already validated geometry against len(x).
func (c *SlidingConfig) run(x, t []float64, degenerate bool) (*SlidingResults, error) {
	o := c.opts
	res := &SlidingResults{T: t, X: x, Config: c}

	// Indicator stage: one column per indicator, or the raw series when
	// the stage is skipped.
	src := make([][]float64, c.NumColumns())
	tInd := t
	if len(c.indicators) > 0 {
		xv, err := window.New(x, o.WidthInd, o.StrideInd)
		if err != nil {
			return nil, err
		}
		tv, err := window.New(t, o.WidthInd, o.StrideInd)
		if err != nil {
			return nil, err
		}
		if tInd, err = tv.Stamp(o.WhichTime); err != nil {
			return nil, err
		}
		compiled, err := compileAllChecked(c.indicators, t[:o.WidthInd])
		if err != nil {
			return nil, err
		}
		for j, m := range compiled {
			src[j] = window.Map(m.Evaluate, xv)
		}
		res.TIndicator, res.XIndicator = tInd, src
	} else {
		for j := range src {
			src[j] = x
		}
	}

	// Change stage. Each distinct metric is compiled once, against the
	// first change window's slice of the indicator axis; a shared metric
	// is never recompiled per column, let alone per window.
	widthCha, strideCha := o.WidthCha, o.StrideCha
	if degenerate {
		widthCha, strideCha = len(src[0]), 1
	}
	tcv, err := window.New(tInd, widthCha, strideCha)
	if err != nil {
		return nil, err
	}
	tCha, err := tcv.Stamp(o.WhichTime)
	if err != nil {
		return nil, err
	}

	axis := tInd[:widthCha]
	ncol := c.NumColumns()
	compiledCha := make([]metric.Metric, ncol)
	if len(c.changeMetrics) == 1 {
		shared, err := compileChecked(c.changeMetrics[0], axis)
		if err != nil {
			return nil, err
		}
		for j := range compiledCha {
			compiledCha[j] = shared
		}
	} else {
		for j := range compiledCha {
			if compiledCha[j], err = compileChecked(c.changeMetric(j), axis); err != nil {
				return nil, err
			}
		}
	}

	cols := make([][]float64, ncol)
	for j := 0; j < ncol; j++ {
		cv, err := window.New(src[j], widthCha, strideCha)
		if err != nil {
			return nil, err
		}
		cols[j] = window.Map(compiledCha[j].Evaluate, cv)
	}
	res.TChange, res.XChange = tCha, cols

	return res, nil
}

// compileChecked compiles one metric against the axis and verifies any
// call-time precondition the compiled form carries, so axis-contract
// violations surface as errors before the sweep starts.
func compileChecked(m metric.Metric, axis []float64) (metric.Metric, error) {
	cm, err := metric.Compile(m, axis)
	if err != nil {
		return nil, err
	}
	if ck, ok := cm.(metric.Checked); ok {
		if err = ck.Err(); err != nil {
			return nil, err
		}
	}

	return cm, nil
}

// compileAllChecked compiles a metric slice via compileChecked.
func compileAllChecked(ms []metric.Metric, axis []float64) ([]metric.Metric, error) {
	out := make([]metric.Metric, len(ms))
	for i, m := range ms {
		c, err := compileChecked(m, axis)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}

// resolveAxis defaults a nil time axis to sample indices and enforces
// the axis/sequence length invariant.
func resolveAxis(x, t []float64) ([]float64, error) {
	if t == nil {
		t = make([]float64, len(x))
		for i := range t {
			t[i] = float64(i)
		}

		return t, nil
	}
	if len(t) != len(x) {
		return nil, ErrAxisLength
	}

	return t, nil
}

// segmentBounds locates the inclusive index range of [start, end] in
// the ascending axis t: the first sample with t ≥ start through the
// last with t ≤ end. ok is false when the interval covers no samples.
func segmentBounds(t []float64, start, end float64) (i1, i2 int, ok bool) {
	i1 = len(t)
	for i, v := range t {
		if v >= start {
			i1 = i

			break
		}
	}
	i2 = -1
	for i := len(t) - 1; i >= 0; i-- {
		if t[i] <= end {
			i2 = i

			break
		}
	}
	if i1 >= len(t) || i2 < 0 || i2 < i1 {
		return 0, 0, false
	}

	return i1, i2, true
}
