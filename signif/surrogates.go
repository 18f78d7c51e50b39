package signif

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tipping/pipeline"
	"github.com/katalvlaran/tipping/surrogate"
)

// DEFAULTS for the Surrogates tester.
const (
	// DefaultSurrogateCount is the default number of realizations.
	DefaultSurrogateCount = 100
	// DefaultP is the default significance level.
	DefaultP = 0.05
)

// Surrogates is the Monte-Carlo significance tester: it replays the
// result's own pipeline configuration on N surrogate realizations of
// the original series, building an empirical null distribution for
// every change value, and flags real values beyond the null's
// quantiles.
//
// Tail rule against the sorted null sample of one change value:
//   - Right — flag x > null quantile(1-P).
//   - Left  — flag x < null quantile(P).
//   - Both  — either side at level P/2, keeping the total ≈ P.
//
// Realization k draws from the PCG sub-stream seeded (Seed, k), so a
// fixed Seed reproduces flags bit-identically, serial or parallel.
// This loop re-runs the entire two-stage pipeline N times and is the
// dominant cost of the system; raise Workers to fan realizations out
// across goroutines, each with its own generator and scratch buffers.
type Surrogates struct {
	// N is the number of surrogate realizations.
	N int
	// Method builds the null model, e.g. surrogate.Shuffle or
	// surrogate.Block(25).
	Method surrogate.Method
	// Seed roots every realization's random sub-stream.
	Seed uint64
	// P is the significance level in (0, 1).
	P float64
	// Tail selects the side(s) of the null that count as significant.
	Tail Tail
	// Workers caps the surrogate-loop goroutines; values below 2 run
	// serially. Parallel and serial runs produce identical flags.
	Workers int
}

// DefaultSurrogates returns a tester with the documented defaults:
// N=100, P=0.05, Tail=Both, Seed=1, serial execution.
func DefaultSurrogates(m surrogate.Method) Surrogates {
	return Surrogates{N: DefaultSurrogateCount, Method: m, Seed: 1, P: DefaultP, Tail: Both, Workers: 1}
}

// Test flags res.XChange values against pipeline replays on N
// surrogates of res.X. The comparison is per row per column: row i of
// the real column j is ranked against row i of column j across all N
// surrogate runs.
//
// Errors:
//   - ErrBadSurrogateCount, ErrNoMethod, ErrBadProbability, ErrInvalidTail.
//   - Surrogate-construction and pipeline-replay errors, wrapped with
//     the realization index.
func (s Surrogates) Test(res *pipeline.SlidingResults) ([][]bool, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	// Null accumulation: one full change matrix per realization.
	runs := make([][][]float64, s.N)
	err := s.each(res.X, func(k int, sx []float64) error {
		sub, err := pipeline.EstimateChanges(res.Config, sx, res.T)
		if err != nil {
			return err
		}
		runs[k] = sub.XChange

		return nil
	})
	if err != nil {
		return nil, err
	}

	flags := make([][]bool, len(res.XChange))
	null := make([]float64, s.N)
	for j, col := range res.XChange {
		flags[j] = make([]bool, len(col))
		for i, v := range col {
			for k := 0; k < s.N; k++ {
				null[k] = runs[k][j][i]
			}
			sort.Float64s(null)
			flags[j][i] = s.beyond(v, null)
		}
	}

	return flags, nil
}

// TestSegmented flags segmented change values. Degenerate whole-segment
// columns hold a single value, compared against the full N-sample null
// distribution for that segment and metric.
func (s Surrogates) TestSegmented(res *pipeline.SegmentedResults) ([][][]bool, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	runs := make([][][][]float64, s.N)
	err := s.each(res.X, func(k int, sx []float64) error {
		sub, err := pipeline.EstimateSegmented(res.Config, sx, res.T)
		if err != nil {
			return err
		}
		runs[k] = sub.XChange

		return nil
	})
	if err != nil {
		return nil, err
	}

	flags := make([][][]bool, len(res.XChange))
	null := make([]float64, s.N)
	for seg, cols := range res.XChange {
		flags[seg] = make([][]bool, len(cols))
		for j, col := range cols {
			flags[seg][j] = make([]bool, len(col))
			for i, v := range col {
				for k := 0; k < s.N; k++ {
					null[k] = runs[k][seg][j][i]
				}
				sort.Float64s(null)
				flags[seg][j][i] = s.beyond(v, null)
			}
		}
	}

	return flags, nil
}

func (s Surrogates) validate() error {
	if s.N < 1 {
		return ErrBadSurrogateCount
	}
	if s.Method == nil {
		return ErrNoMethod
	}
	if s.P <= 0 || s.P >= 1 {
		return ErrBadProbability
	}
	if !s.Tail.valid() {
		return ErrInvalidTail
	}

	return nil
}

// each runs body for every realization index, serially or across a
// worker pool. body receives a fresh surrogate realization and writes
// only its own slot, so workers never share a mutable buffer; the rng
// for realization k depends only on (Seed, k), never on scheduling.
func (s Surrogates) each(x []float64, body func(k int, sx []float64) error) error {
	workers := s.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > s.N {
		workers = s.N
	}

	if workers == 1 {
		gen, err := s.Method(x)
		if err != nil {
			return fmt.Errorf("signif: building surrogate generator: %w", err)
		}
		for k := 0; k < s.N; k++ {
			rng := rand.New(rand.NewPCG(s.Seed, uint64(k)))
			if err = body(k, gen.Generate(rng)); err != nil {
				return fmt.Errorf("signif: surrogate %d: %w", k, err)
			}
		}

		return nil
	}

	jobs := make(chan int, s.N)
	for k := 0; k < s.N; k++ {
		jobs <- k
	}
	close(jobs)

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			gen, err := s.Method(x) // one generator (and scratch) per worker
			if err != nil {
				errs[w] = fmt.Errorf("signif: building surrogate generator: %w", err)

				return
			}
			for k := range jobs {
				rng := rand.New(rand.NewPCG(s.Seed, uint64(k)))
				if err = body(k, gen.Generate(rng)); err != nil {
					errs[w] = fmt.Errorf("signif: surrogate %d: %w", k, err)

					return
				}
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// beyond applies the tail rule to one real value against its sorted
// null sample.
func (s Surrogates) beyond(v float64, sortedNull []float64) bool {
	switch s.Tail {
	case Right:
		return v > stat.Quantile(1-s.P, stat.Empirical, sortedNull, nil)
	case Left:
		return v < stat.Quantile(s.P, stat.Empirical, sortedNull, nil)
	default: // Both
		half := s.P / 2

		return v < stat.Quantile(half, stat.Empirical, sortedNull, nil) ||
			v > stat.Quantile(1-half, stat.Empirical, sortedNull, nil)
	}
}
