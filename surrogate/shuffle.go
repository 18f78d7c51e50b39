package surrogate

import "math/rand/v2"

// Shuffle builds a random-permutation Generator: every realization is
// the original sequence in a fresh uniform order. This is the strictest
// null — any temporal structure in the original registers against it.
// Shuffle satisfies Method.
func Shuffle(x []float64) (Generator, error) {
	if len(x) == 0 {
		return nil, ErrEmptySequence
	}
	s := &shuffle{x: make([]float64, len(x))}
	copy(s.x, x)

	return s, nil
}

type shuffle struct {
	x []float64 // snapshot of the original
}

// Generate returns a uniform random permutation of the original.
func (s *shuffle) Generate(rng *rand.Rand) []float64 {
	out := make([]float64, len(s.x))
	copy(out, s.x)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}

// Block returns a circular block-bootstrap Method with the given block
// size: realizations are stitched from uniformly chosen wrapped blocks
// of the original, preserving correlation up to the block length.
func Block(size int) Method {
	return func(x []float64) (Generator, error) {
		if len(x) == 0 {
			return nil, ErrEmptySequence
		}
		if size < 1 || size > len(x) {
			return nil, ErrBadBlockSize
		}
		b := &block{x: make([]float64, len(x)), size: size}
		copy(b.x, x)

		return b, nil
	}
}

type block struct {
	x    []float64
	size int
}

// Generate stitches ceil(n/size) uniformly positioned circular blocks.
func (b *block) Generate(rng *rand.Rand) []float64 {
	n := len(b.x)
	out := make([]float64, n)
	for i := 0; i < n; i += b.size {
		start := rng.IntN(n)
		for j := 0; j < b.size && i+j < n; j++ {
			out[i+j] = b.x[(start+j)%n]
		}
	}

	return out
}
