package stats

import (
	"context"
	"fmt"
	"io"

	"github.com/verte-zerg/sortviz/internal/model"
	"github.com/verte-zerg/sortviz/internal/store"
)

const quizTrendWindow = 3

// Report contains precomputed data for history rendering.
type Report struct {
	Runs []model.SortRun
	// LatestBench is nil when no benchmark has been stored.
	LatestBench  *model.BenchRun
	BenchResults []model.BenchResult
	BenchRuns    []model.BenchRun
	Quiz         []model.QuizAttempt
}

// BuildReport loads runs, the latest benchmark and quiz attempts.
func BuildReport(ctx context.Context, st *store.Store, cfg model.HistoryConfig) (Report, error) {
	runs, err := st.ListSortRuns(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	benchRuns, err := st.ListBenchRuns(ctx, cfg.Last)
	if err != nil {
		return Report{}, err
	}
	attempts, err := st.ListQuizAttempts(ctx, cfg.Last)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Runs:      runs,
		BenchRuns: benchRuns,
		Quiz:      attempts,
	}
	if len(benchRuns) == 0 {
		return report, nil
	}
	latest := benchRuns[len(benchRuns)-1]
	results, err := st.ListBenchResults(ctx, latest.RunID)
	if err != nil {
		return Report{}, err
	}
	if cfg.Algorithm != "" {
		results = filterResults(results, cfg.Algorithm)
	}
	report.LatestBench = &latest
	report.BenchResults = results
	return report, nil
}

func filterResults(results []model.BenchResult, algorithm string) []model.BenchResult {
	out := results[:0:0]
	for _, r := range results {
		if r.Algorithm == algorithm {
			out = append(out, r)
		}
	}
	return out
}

// RenderReport prints the whole report as plain text.
func RenderReport(w io.Writer, report Report, totalWidth int, useColor bool) error {
	if err := RenderRunSummary(w, report.Runs); err != nil {
		return err
	}
	if err := RenderRunTable(w, report.Runs); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if report.LatestBench == nil || len(report.BenchResults) == 0 {
		if _, err := fmt.Fprintln(w, "No benchmarks found."); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "Benchmark %s (%s)\n", report.LatestBench.RunID,
			report.LatestBench.StartedAt.Local().Format("2006-01-02 15:04")); err != nil {
			return err
		}
		if err := RenderBenchChart(w, report.BenchResults, totalWidth, defaultPlotHeight, useColor); err != nil {
			return err
		}
		if err := RenderBenchTable(w, report.BenchResults, 0); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return RenderQuizSummary(w, report.Quiz, quizTrendWindow)
}
