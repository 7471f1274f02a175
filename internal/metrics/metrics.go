// Package metrics exposes benchmark measurements as Prometheus metrics.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sortviz"

// BenchMetrics holds the collectors for one benchmark run. Each instance owns
// its registry so runs never share state.
type BenchMetrics struct {
	registry *prometheus.Registry

	// Duration is the wall-clock time of one sort.
	// Labels: algorithm, size
	Duration *prometheus.GaugeVec

	// Comparisons accumulates element comparisons across sizes.
	// Labels: algorithm
	Comparisons *prometheus.CounterVec

	// Swaps accumulates element relocations across sizes.
	// Labels: algorithm
	Swaps *prometheus.CounterVec
}

// NewBenchMetrics registers the benchmark collectors on a fresh registry.
func NewBenchMetrics() *BenchMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &BenchMetrics{
		registry: reg,
		Duration: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "bench",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of one benchmark sort",
		}, []string{"algorithm", "size"}),
		Comparisons: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comparisons_total",
			Help:      "Element comparisons performed during benchmarks",
		}, []string{"algorithm"}),
		Swaps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swaps_total",
			Help:      "Element swaps and relocations performed during benchmarks",
		}, []string{"algorithm"}),
	}
}

// Observe records one benchmark cell.
func (m *BenchMetrics) Observe(algorithm string, size int, d time.Duration, comparisons, swaps int) {
	m.Duration.WithLabelValues(algorithm, strconv.Itoa(size)).Set(d.Seconds())
	m.Comparisons.WithLabelValues(algorithm).Add(float64(comparisons))
	m.Swaps.WithLabelValues(algorithm).Add(float64(swaps))
}

// Registry returns the underlying registry.
func (m *BenchMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the collected metrics in the text exposition format,
// suitable for the node exporter textfile collector.
func (m *BenchMetrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
