package surrogate

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat/distuv"
)

// Fourier builds a phase-randomization Generator: realizations share
// the original's power spectrum but carry uniformly random phases.
// The FFT plan and the original spectrum are computed once at
// construction; each Generate costs one inverse transform.
// Fourier satisfies Method.
func Fourier(x []float64) (Generator, error) {
	if len(x) == 0 {
		return nil, ErrEmptySequence
	}
	fft := fourier.NewFFT(len(x))

	return &phaseRandom{
		n:     len(x),
		fft:   fft,
		coeff: fft.Coefficients(nil, x),
	}, nil
}

type phaseRandom struct {
	n       int
	fft     *fourier.FFT
	coeff   []complex128 // spectrum of the original, never mutated
	scratch []complex128 // per-call working copy, reused across calls
}

// Generate rotates every non-DC (and non-Nyquist) bin by a uniform
// random phase and inverts the transform.
func (p *phaseRandom) Generate(rng *rand.Rand) []float64 {
	if p.scratch == nil {
		p.scratch = make([]complex128, len(p.coeff))
	}
	copy(p.scratch, p.coeff)
	randomizePhases(p.scratch, p.n, rng)

	out := p.fft.Sequence(nil, p.scratch)
	inv := 1 / float64(p.n) // gonum's round trip scales by n
	for i := range out {
		out[i] *= inv
	}

	return out
}

// AmplitudeAdjusted builds an AAFT Generator: realizations preserve the
// original's exact amplitude distribution and, approximately, its power
// spectrum. The classic three steps per realization: gaussianize by
// rank, phase-randomize, then rank-remap back onto the sorted original
// amplitudes. AmplitudeAdjusted satisfies Method.
func AmplitudeAdjusted(x []float64) (Generator, error) {
	if len(x) == 0 {
		return nil, ErrEmptySequence
	}
	n := len(x)
	a := &aaft{
		n:      n,
		fft:    fourier.NewFFT(n),
		sorted: make([]float64, n),
		order:  argsort(x),
	}
	copy(a.sorted, x)
	sort.Float64s(a.sorted)

	return a, nil
}

type aaft struct {
	n      int
	fft    *fourier.FFT
	sorted []float64 // original amplitudes, ascending
	order  []int     // indices of the original in ascending value order
}

func (a *aaft) Generate(rng *rand.Rand) []float64 {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}

	// Gaussianize: sorted normal draws placed onto the rank order of x.
	draws := make([]float64, a.n)
	for i := range draws {
		draws[i] = norm.Rand()
	}
	sort.Float64s(draws)
	gauss := make([]float64, a.n)
	for r, idx := range a.order {
		gauss[idx] = draws[r]
	}

	// Phase-randomize the gaussianized series.
	coeff := a.fft.Coefficients(nil, gauss)
	randomizePhases(coeff, a.n, rng)
	seq := a.fft.Sequence(nil, coeff)
	inv := 1 / float64(a.n)
	for i := range seq {
		seq[i] *= inv
	}

	// Rank-remap back onto the original amplitudes.
	out := make([]float64, a.n)
	for r, idx := range argsort(seq) {
		out[idx] = a.sorted[r]
	}

	return out
}

// randomizePhases rotates each bin of a half-spectrum by a uniform
// random phase, preserving magnitudes. The DC bin is kept; so is the
// Nyquist bin when n is even, since it must stay real for the inverse
// transform to be real.
func randomizePhases(coeff []complex128, n int, rng *rand.Rand) {
	last := len(coeff)
	if n%2 == 0 {
		last--
	}
	for k := 1; k < last; k++ {
		phi := 2 * math.Pi * rng.Float64()
		coeff[k] = cmplx.Rect(cmplx.Abs(coeff[k]), phi)
	}
}

// argsort returns the indices of x in ascending value order.
func argsort(x []float64) []int {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return x[idx[i]] < x[idx[j]] })

	return idx
}
