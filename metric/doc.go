// Package metric defines the capability model for window statistics:
// every metric evaluates one window to a scalar, and precomputable
// metrics additionally compile expensive per-axis setup exactly once.
//
// What:
//
//   - Metric: the uniform Evaluate(window) → scalar entry point.
//   - Func: adapter turning any func([]float64) float64 into a Metric.
//   - Precomputable: the optional Compile(axis) → Metric capability;
//     Compile (the package-level helper) resolves any Metric against an
//     axis, passing plain callables through unchanged.
//   - RidgeSlope: ridge-regression trend slope whose design matrix
//     M = (TᵀT + λI)⁻¹Tᵀ is built once per axis with gonum/mat; the
//     compiled call is a single dot product with row 0 of M.
//   - KendallTau: rank-correlation trend of a window (gonum/stat).
//
// Why precompute:
//
//	A metric whose per-window work collapses to one matrix-vector
//	product once the window axis is known should pay its setup cost
//	(matrix inversion, plan construction) once per axis, not once per
//	window. Compiling amortizes that cost across every window sharing
//	the axis.
//
// Axis contract:
//
//	A compiled RidgeSlope records whether the compiling axis was evenly
//	spaced (successive deltas compared with tolerance EquispaceTol).
//	The single design matrix is only valid when every window shares the
//	same spacing, so evaluating a metric compiled on a non-equispaced
//	axis is a reportable error: CompiledRidgeSlope.Err returns
//	ErrNonEquispaced and Evaluate panics with it. Pipelines check Err
//	via the Checked capability before sweeping.
//
// Errors:
//
//   - ErrShortAxis: Compile axis with fewer than 2 points.
//   - ErrBadLambda: negative or non-finite ridge regularization.
//   - ErrSingularDesign: ridge normal matrix not invertible (λ=0 on a
//     degenerate axis).
//   - ErrNonEquispaced: compiled metric invoked under a violated
//     evenly-spaced-axis contract.
package metric
