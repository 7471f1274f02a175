package bench

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/sortviz/internal/engine"
	"github.com/verte-zerg/sortviz/internal/generator"
	"github.com/verte-zerg/sortviz/internal/metrics"
	"github.com/verte-zerg/sortviz/internal/model"
)

func TestRunMeasuresEveryCell(t *testing.T) {
	var cells []Cell
	m := metrics.NewBenchMetrics()
	cfg := model.BenchConfig{
		Sizes:      []int{10, 40},
		Algorithms: []engine.Algorithm{engine.Bubble, engine.Merge, engine.Builtin},
	}
	res, err := Run(context.Background(), cfg, Options{
		Generator: generator.NewSeeded(1),
		Metrics:   m,
		Progress:  func(c Cell) { cells = append(cells, c) },
	})
	require.NoError(t, err)

	_, err = uuid.Parse(res.RunID)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 40}, res.Sizes)
	require.Len(t, cells, 6)
	assert.Equal(t, 6, cells[5].Done)
	assert.Equal(t, 6, cells[5].Total)

	for _, alg := range cfg.Algorithms {
		assert.Len(t, res.Timings[alg], 2, alg.String())
		assert.Len(t, res.Counters[alg], 2, alg.String())
	}
	// Unoptimised bubble sort compares n(n-1)/2 pairs regardless of input.
	assert.Equal(t, 40*39/2, res.Final[engine.Bubble].Comparisons)
	assert.Equal(t, engine.Counters{}, res.Final[engine.Builtin])

	assert.Equal(t, float64(10*9/2+40*39/2), testutil.ToFloat64(m.Comparisons.WithLabelValues("bubble")))
	assert.Len(t, res.Records(), 6)
}

func TestRunDefaults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Run(ctx, model.BenchConfig{}, Options{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, DefaultSizes, res.Sizes)
	assert.Equal(t, engine.All(), res.Algorithms)
	assert.Empty(t, res.Records())
}

func TestRunValidation(t *testing.T) {
	_, err := Run(context.Background(), model.BenchConfig{Sizes: []int{10, 0}}, Options{})
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = Run(context.Background(), model.BenchConfig{Sizes: []int{50, 50}}, Options{})
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = Run(context.Background(), model.BenchConfig{
		Sizes:      []int{10},
		Algorithms: []engine.Algorithm{engine.Algorithm(42)},
	}, Options{})
	require.ErrorIs(t, err, engine.ErrUnknownAlgorithm)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	res, err := Run(ctx, model.BenchConfig{
		Sizes:      []int{5, 10, 20},
		Algorithms: []engine.Algorithm{engine.Quick},
	}, Options{
		Generator: generator.NewSeeded(3),
		Progress: func(c Cell) {
			if c.Done == 1 {
				cancel()
			}
		},
	})
	require.ErrorIs(t, err, context.Canceled)
	records := res.Records()
	require.Len(t, records, 1)
	assert.Equal(t, 5, records[0].Size)
}

func TestWriteYAML(t *testing.T) {
	res, err := Run(context.Background(), model.BenchConfig{
		Sizes:      []int{8},
		Algorithms: []engine.Algorithm{engine.Selection},
	}, Options{Generator: generator.NewSeeded(2)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, res))

	var doc exportDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, res.RunID, doc.RunID)
	require.Len(t, doc.Algorithms, 1)
	assert.Equal(t, "selection", doc.Algorithms[0].Name)
	require.Len(t, doc.Algorithms[0].Results, 1)
	assert.Equal(t, 8*7/2, doc.Algorithms[0].Results[0].Comparisons)
}

func TestRender(t *testing.T) {
	res, err := Run(context.Background(), model.BenchConfig{
		Sizes:      []int{10, 20},
		Algorithms: []engine.Algorithm{engine.Insertion, engine.Quick},
	}, Options{Generator: generator.NewSeeded(4)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, res, 60, 6, false))
	out := buf.String()
	assert.Contains(t, out, "Execution time vs size")
	assert.Contains(t, out, "Counters at n=20")
	assert.Contains(t, out, "insertion")
	assert.Contains(t, out, "quick")
}
