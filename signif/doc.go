// Package signif decides whether the change values estimated by a
// pipeline are statistically significant, via four interchangeable
// strategies sharing one contract: consume an immutable Results value,
// emit a flag matrix shaped exactly like its change series.
//
// Strategies:
//
//   - Threshold: flag values beyond a fixed cut. The Both tail against
//     a single cut is degenerate — see Threshold.
//   - Quantile: flag values outside the column's own empirical
//     quantiles; guaranteed to flag at least one value per tail on any
//     non-degenerate column.
//   - Sigma: flag values more than factor·σ from the column mean; may
//     legitimately flag nothing.
//   - Surrogates: the Monte-Carlo core — replay the identical pipeline
//     on N surrogate realizations of the original series, accumulate an
//     empirical null distribution per change value, and flag real
//     values beyond the null's p-driven quantiles.
//
// Tail semantics (shared):
//
//   - Right — flag unusually large values.
//   - Left  — flag unusually small values.
//   - Both  — flag either side. Surrogates splits the level across the
//     two sides so the total false-positive rate stays ≈ p; Quantile
//     applies the Left and Right rules against the same two cuts.
//
// Reproducibility & cost:
//
//	Surrogates is the dominant cost of the whole system: it reruns the
//	full two-stage pipeline N times. Each realization k draws from its
//	own PCG sub-stream seeded (Seed, k), so results are bit-identical
//	for a fixed Seed regardless of the worker count; with Workers > 1
//	the realizations fan out across goroutines, each owning its
//	generator and scratch, never sharing a mutable buffer.
//
// Errors:
//
//   - ErrInvalidTail, ErrBadProbability, ErrBadFactor, ErrFactorCount,
//     ErrBadSurrogateCount, ErrNoMethod — all validated up front;
//     pipeline and surrogate errors propagate wrapped.
package signif
