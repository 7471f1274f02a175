package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAccumulates(t *testing.T) {
	m := NewBenchMetrics()
	m.Observe("quick", 100, 2*time.Millisecond, 600, 300)
	m.Observe("quick", 500, 8*time.Millisecond, 4000, 2000)

	assert.InDelta(t, 0.002, testutil.ToFloat64(m.Duration.WithLabelValues("quick", "100")), 1e-9)
	assert.InDelta(t, 0.008, testutil.ToFloat64(m.Duration.WithLabelValues("quick", "500")), 1e-9)
	assert.Equal(t, 4600.0, testutil.ToFloat64(m.Comparisons.WithLabelValues("quick")))
	assert.Equal(t, 2300.0, testutil.ToFloat64(m.Swaps.WithLabelValues("quick")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Duration))
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewBenchMetrics()
	b := NewBenchMetrics()
	a.Observe("merge", 10, time.Millisecond, 5, 5)
	assert.Equal(t, 0, testutil.CollectAndCount(b.Comparisons))

	n, err := testutil.GatherAndCount(a.Registry(), "sortviz_comparisons_total", "sortviz_swaps_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = testutil.GatherAndCount(b.Registry(), "sortviz_comparisons_total")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestWriteTextfile(t *testing.T) {
	m := NewBenchMetrics()
	m.Observe("bubble", 100, time.Millisecond, 4950, 2500)

	path := filepath.Join(t.TempDir(), "sortviz.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, `sortviz_bench_duration_seconds{algorithm="bubble",size="100"} 0.001`), out)
	assert.True(t, strings.Contains(out, `sortviz_comparisons_total{algorithm="bubble"} 4950`), out)
	assert.True(t, strings.Contains(out, `sortviz_swaps_total{algorithm="bubble"} 2500`), out)
}
