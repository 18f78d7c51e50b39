// Package surrogate defines the Generator and Method contracts and
// sentinel errors for the surrogate subpackage of
// github.com/katalvlaran/tipping.
package surrogate

import (
	"errors"
	"math/rand/v2"
)

// Sentinel errors for surrogate construction.
var (
	// ErrEmptySequence indicates the original sequence has no samples.
	ErrEmptySequence = errors.New("surrogate: original sequence must be non-empty")
	// ErrBadBlockSize indicates a block size below 1 or beyond the sequence length.
	ErrBadBlockSize = errors.New("surrogate: block size must be in [1, len(x)]")
)

// Generator produces surrogate realizations of one fixed original
// sequence. Each Generate call returns a fresh slice of the same length
// as the original, drawn with rng; identical rng state yields identical
// output. Generators own scratch buffers and are not safe for
// concurrent use — build one per goroutine.
type Generator interface {
	Generate(rng *rand.Rand) []float64
}

// Method constructs a Generator for an original sequence. The ready
// methods are Shuffle, Block(size), Fourier and AmplitudeAdjusted.
type Method func(x []float64) (Generator, error)
