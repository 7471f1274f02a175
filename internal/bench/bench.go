// Package bench measures every sorting strategy across input sizes.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/sortviz/internal/engine"
	"github.com/verte-zerg/sortviz/internal/generator"
	"github.com/verte-zerg/sortviz/internal/metrics"
	"github.com/verte-zerg/sortviz/internal/model"
)

// DefaultSizes are the input sizes measured when none are configured.
var DefaultSizes = []int{100, 500, 1000, 2000, 5000, 10000}

// ErrInvalidSize is returned for a non-positive benchmark size.
var ErrInvalidSize = errors.New("invalid benchmark size")

// Cell describes one finished measurement.
type Cell struct {
	Algorithm engine.Algorithm
	Size      int
	Duration  time.Duration
	Counters  engine.Counters
	Done      int
	Total     int
}

// ProgressFunc is called after every measured cell.
type ProgressFunc func(Cell)

// Options configures a benchmark run. Zero values pick defaults.
type Options struct {
	Generator *generator.Generator
	Metrics   *metrics.BenchMetrics
	Progress  ProgressFunc
}

// Result holds the timings and counters of one benchmark run. Timings and
// Counters are indexed like Sizes.
type Result struct {
	RunID      string
	StartedAt  time.Time
	Sizes      []int
	Algorithms []engine.Algorithm
	Timings    map[engine.Algorithm][]time.Duration
	Counters   map[engine.Algorithm][]engine.Counters
	// Final holds the counters measured at the largest size.
	Final map[engine.Algorithm]engine.Counters
}

// Run sorts a fresh random input for every size and algorithm, timing each
// call with the no-op observer and no delay. Cancellation is checked between
// cells; a cancelled run returns the cells finished so far with the context
// error.
func Run(ctx context.Context, cfg model.BenchConfig, opts Options) (Result, error) {
	sizes := cfg.Sizes
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	seen := make(map[int]bool, len(sizes))
	for _, n := range sizes {
		if n <= 0 {
			return Result{}, fmt.Errorf("%w: %d must be > 0", ErrInvalidSize, n)
		}
		if seen[n] {
			return Result{}, fmt.Errorf("%w: %d listed twice", ErrInvalidSize, n)
		}
		seen[n] = true
	}
	algorithms := cfg.Algorithms
	if len(algorithms) == 0 {
		algorithms = engine.All()
	}
	for _, alg := range algorithms {
		if !alg.Valid() {
			return Result{}, fmt.Errorf("%w: %s", engine.ErrUnknownAlgorithm, alg)
		}
	}
	gen := opts.Generator
	if gen == nil {
		if cfg.Seed != 0 {
			gen = generator.NewSeeded(cfg.Seed)
		} else {
			gen = generator.New()
		}
	}

	res := Result{
		RunID:      uuid.NewString(),
		StartedAt:  time.Now(),
		Sizes:      append([]int(nil), sizes...),
		Algorithms: append([]engine.Algorithm(nil), algorithms...),
		Timings:    make(map[engine.Algorithm][]time.Duration, len(algorithms)),
		Counters:   make(map[engine.Algorithm][]engine.Counters, len(algorithms)),
		Final:      make(map[engine.Algorithm]engine.Counters, len(algorithms)),
	}
	total := len(sizes) * len(algorithms)
	done := 0
	for _, n := range sizes {
		for _, alg := range algorithms {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			input := gen.Benchmark(n)
			start := time.Now()
			counters, err := engine.Sort(alg, input, engine.Nop, 0)
			elapsed := time.Since(start)
			if err != nil {
				return res, fmt.Errorf("failed to benchmark %s at n=%d: %w", alg, n, err)
			}
			res.Timings[alg] = append(res.Timings[alg], elapsed)
			res.Counters[alg] = append(res.Counters[alg], counters)
			res.Final[alg] = counters
			if opts.Metrics != nil {
				opts.Metrics.Observe(alg.String(), n, elapsed, counters.Comparisons, counters.Swaps)
			}
			done++
			if opts.Progress != nil {
				opts.Progress(Cell{
					Algorithm: alg,
					Size:      n,
					Duration:  elapsed,
					Counters:  counters,
					Done:      done,
					Total:     total,
				})
			}
		}
	}
	return res, nil
}

// Header returns the stored header of the benchmark.
func (r Result) Header() model.BenchRun {
	return model.BenchRun{
		RunID:     r.RunID,
		StartedAt: r.StartedAt,
		Sizes:     append([]int(nil), r.Sizes...),
	}
}

// Records flattens the result into one row per algorithm and size. Cells a
// cancelled run never reached are omitted.
func (r Result) Records() []model.BenchResult {
	out := make([]model.BenchResult, 0, len(r.Sizes)*len(r.Algorithms))
	for _, alg := range r.Algorithms {
		timings := r.Timings[alg]
		counters := r.Counters[alg]
		for i, d := range timings {
			out = append(out, model.BenchResult{
				RunID:       r.RunID,
				Algorithm:   alg.String(),
				Size:        r.Sizes[i],
				DurationNs:  d.Nanoseconds(),
				Comparisons: counters[i].Comparisons,
				Swaps:       counters[i].Swaps,
			})
		}
	}
	return out
}
