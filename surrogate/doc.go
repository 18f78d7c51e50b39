// Package surrogate generates synthetic realizations of a time series
// under a null-hypothesis resampling scheme, for building empirical
// null distributions in significance testing.
//
// What:
//
//   - Shuffle: random permutation — destroys all temporal structure,
//     preserves the amplitude distribution.
//   - Block(size): circular block bootstrap — preserves short-range
//     correlation up to the block size.
//   - Fourier: FFT phase randomization — preserves the power spectrum
//     (linear correlation), destroys phase structure.
//   - AmplitudeAdjusted: AAFT — preserves both the amplitude
//     distribution and, approximately, the power spectrum.
//
// Contracts:
//
//   - A Method builds a Generator for one original sequence; the
//     Generator snapshots the sequence (and precomputes its FFT plan
//     and spectrum where applicable) at construction.
//   - Generate(rng) returns one fresh realization per call. Given the
//     same rng state, output is bit-reproducible.
//   - A Generator is NOT safe for concurrent use: it owns scratch
//     buffers. Build one per goroutine via its Method.
//
// Randomness:
//
//	All draws flow through the *rand.Rand (math/rand/v2) passed to
//	Generate — the seedable source type gonum consumes — so callers
//	control reproducibility by partitioning sub-streams.
//
// Errors:
//
//   - ErrEmptySequence: the original sequence has no samples.
//   - ErrBadBlockSize: block size below 1 or beyond the sequence length.
package surrogate
