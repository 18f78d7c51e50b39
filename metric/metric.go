// Package metric defines the Metric capability, the precompile helper
// and sentinel errors for the metric subpackage of
// github.com/katalvlaran/tipping.
package metric

import (
	"errors"
	"math"
)

// Sentinel errors for metric compilation and evaluation.
var (
	// ErrShortAxis indicates a compile axis with fewer than two points.
	ErrShortAxis = errors.New("metric: axis must have at least 2 points")
	// ErrBadLambda indicates a negative or non-finite regularization constant.
	ErrBadLambda = errors.New("metric: lambda must be finite and non-negative")
	// ErrSingularDesign indicates the ridge normal matrix could not be inverted.
	ErrSingularDesign = errors.New("metric: singular ridge design matrix")
	// ErrNonEquispaced indicates a compiled metric was invoked although its
	// evenly-spaced-axis contract does not hold.
	ErrNonEquispaced = errors.New("metric: compiled on a non-equispaced time axis")
)

// EquispaceTol is the relative tolerance used to compare successive axis
// deltas when deciding whether an axis is evenly spaced.
const EquispaceTol = 1e-8

// Metric evaluates one window of values to a scalar. Implementations
// must not retain or mutate the window: it is a borrowed, read-only view.
type Metric interface {
	Evaluate(window []float64) float64
}

// Func adapts a plain function to the Metric capability. Plain callables
// pass through Compile unchanged.
type Func func([]float64) float64

// Evaluate calls f on the window.
func (f Func) Evaluate(window []float64) float64 { return f(window) }

// Precomputable is the optional capability of metrics whose per-call
// setup can be amortized across all windows sharing one time axis.
// Compile is invoked exactly once per axis, before any window evaluation.
type Precomputable interface {
	Metric
	Compile(t []float64) (Metric, error)
}

// Checked is the optional capability of compiled metrics that carry
// call-time preconditions on the axis they were compiled against.
// A non-nil Err means Evaluate is not defined and must not be called.
type Checked interface {
	Err() error
}

// Compile resolves m against the time axis t: precomputable metrics are
// compiled once, plain metrics pass through as a no-op.
func Compile(m Metric, t []float64) (Metric, error) {
	if p, ok := m.(Precomputable); ok {
		return p.Compile(t)
	}

	return m, nil
}

// CompileAll resolves every metric in ms against t, returning a fresh
// slice. The inputs are never mutated.
func CompileAll(ms []Metric, t []float64) ([]Metric, error) {
	out := make([]Metric, len(ms))
	for i, m := range ms {
		c, err := Compile(m, t)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}

// Equispaced reports whether the axis t is evenly spaced, comparing
// every successive delta against the first one with relative tolerance
// EquispaceTol. Axes with fewer than three points are trivially even.
func Equispaced(t []float64) bool {
	if len(t) < 3 {
		return true
	}
	d0 := t[1] - t[0]
	tol := EquispaceTol * math.Max(math.Abs(d0), 1)
	for i := 2; i < len(t); i++ {
		if math.Abs((t[i]-t[i-1])-d0) > tol {
			return false
		}
	}

	return true
}
