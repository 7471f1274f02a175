package bench

import (
	"fmt"
	"io"

	"github.com/verte-zerg/sortviz/internal/stats"
)

// Render prints the shared-scale timing chart followed by the counters
// table for the largest size.
func Render(w io.Writer, r Result, totalWidth, height int, useColor bool) error {
	records := r.Records()
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No benchmark results.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Benchmark %s\n", r.RunID); err != nil {
		return err
	}
	if err := stats.RenderBenchChart(w, records, totalWidth, height, useColor); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return stats.RenderBenchTable(w, records, 0)
}
