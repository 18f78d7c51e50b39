package metric

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RidgeSlope is a precomputable trend metric: the slope of an
// L2-regularized (ridge) linear regression of window values against the
// window's time axis.
//
// Given an axis t of length n, compilation stacks the design
// T = [t | 1] (n×2) and solves
//
//	M = (TᵀT + λI)⁻¹ Tᵀ,
//
// keeping only row 0 of M as a weight vector. The compiled call is then
// the dot product weights·window — one fused multiply-add pass per
// window instead of a regression per window.
type RidgeSlope struct {
	// Lambda is the non-negative ridge regularization constant.
	// Zero yields ordinary least squares.
	Lambda float64
}

// Compile builds the ridge design against the axis t and returns the
// ready-to-call compiled metric. It records whether t was evenly
// spaced; see CompiledRidgeSlope.
//
// Errors:
//   - ErrShortAxis when len(t) < 2.
//   - ErrBadLambda when Lambda is negative or non-finite.
//   - ErrSingularDesign when the normal matrix is not invertible.
func (r RidgeSlope) Compile(t []float64) (Metric, error) {
	if len(t) < 2 {
		return nil, ErrShortAxis
	}
	if r.Lambda < 0 || math.IsNaN(r.Lambda) || math.IsInf(r.Lambda, 0) {
		return nil, ErrBadLambda
	}
	w, err := ridgeWeights(t, r.Lambda)
	if err != nil {
		return nil, err
	}

	return &CompiledRidgeSlope{weights: w, equispaced: Equispaced(t)}, nil
}

// Evaluate regresses the window against its own sample indices
// 0..len-1, compiling on the fly. It is the uncompiled convenience
// path; pipelines should compile once per axis instead. Windows shorter
// than two samples yield NaN.
func (r RidgeSlope) Evaluate(window []float64) float64 {
	if len(window) < 2 {
		return math.NaN()
	}
	idx := make([]float64, len(window))
	for i := range idx {
		idx[i] = float64(i)
	}
	w, err := ridgeWeights(idx, math.Max(r.Lambda, 0))
	if err != nil {
		return math.NaN()
	}

	return dot(w, window)
}

// CompiledRidgeSlope is the product of RidgeSlope.Compile: an immutable
// weight vector plus a flag recording whether the compiling axis was
// evenly spaced. The single weight vector is only valid when every
// window shares the compiling axis' spacing, so evaluation under a
// violated contract is a programmer error.
type CompiledRidgeSlope struct {
	weights    []float64
	equispaced bool
}

// Equispaced reports whether the compiling axis was evenly spaced.
func (c *CompiledRidgeSlope) Equispaced() bool { return c.equispaced }

// Err implements the Checked capability: it returns ErrNonEquispaced
// when the evenly-spaced-axis contract does not hold, nil otherwise.
func (c *CompiledRidgeSlope) Err() error {
	if !c.equispaced {
		return ErrNonEquispaced
	}

	return nil
}

// Evaluate returns the ridge slope of the window. The window length
// must equal the compiling axis length. Panics with ErrNonEquispaced
// when Err() is non-nil; callers are expected to check Err first.
func (c *CompiledRidgeSlope) Evaluate(window []float64) float64 {
	if !c.equispaced {
		panic(ErrNonEquispaced)
	}

	return dot(c.weights, window)
}

// ridgeWeights returns row 0 of (TᵀT + λI)⁻¹Tᵀ for T = [t | 1].
func ridgeWeights(t []float64, lambda float64) ([]float64, error) {
	n := len(t)
	design := mat.NewDense(n, 2, nil)
	for i, ti := range t {
		design.Set(i, 0, ti)
		design.Set(i, 1, 1)
	}

	var normal mat.Dense
	normal.Mul(design.T(), design) // 2×2
	normal.Set(0, 0, normal.At(0, 0)+lambda)
	normal.Set(1, 1, normal.At(1, 1)+lambda)

	var inv mat.Dense
	if err := inv.Inverse(&normal); err != nil {
		return nil, ErrSingularDesign
	}

	var m mat.Dense
	m.Mul(&inv, design.T()) // 2×n

	return mat.Row(nil, 0, &m), nil
}

// dot returns the inner product of two equal-length vectors.
func dot(a, b []float64) float64 {
	var s float64
	for i, v := range a {
		s += v * b[i]
	}

	return s
}
