package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/sortviz/internal/model"
	"github.com/verte-zerg/sortviz/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sortviz.db")
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		run := model.SortRun{
			StartedAt:   start,
			EndedAt:     start.Add(30 * time.Second),
			Algorithm:   "bubble",
			Size:        50,
			Comparisons: 1225,
			Swaps:       600 + i,
			DelayMs:     50,
			Frames:      1900,
		}
		if _, err := st.InsertSortRun(ctx, run); err != nil {
			t.Fatalf("insert run: %v", err)
		}
	}
	for i, id := range []string{"old", "new"} {
		run := model.BenchRun{RunID: id, StartedAt: time.Unix(int64(100+i), 0), Sizes: []int{100}}
		results := []model.BenchResult{
			{Algorithm: "merge", Size: 100, DurationNs: int64(1000 + i)},
			{Algorithm: "quick", Size: 100, DurationNs: int64(900 + i)},
		}
		if _, err := st.InsertBenchRun(ctx, run, results); err != nil {
			t.Fatalf("insert bench run: %v", err)
		}
	}
	if _, err := st.InsertQuizAttempt(ctx, model.QuizAttempt{TakenAt: time.Unix(5, 0), Score: 3, Total: 6}); err != nil {
		t.Fatalf("insert attempt: %v", err)
	}

	report, err := BuildReport(ctx, st, model.HistoryConfig{Last: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(report.Runs))
	}
	if report.Runs[1].Swaps != 602 {
		t.Fatalf("expected newest run last, got %+v", report.Runs)
	}
	if report.LatestBench == nil || report.LatestBench.RunID != "new" {
		t.Fatalf("unexpected latest bench: %+v", report.LatestBench)
	}
	if len(report.BenchResults) != 2 {
		t.Fatalf("expected 2 bench results, got %d", len(report.BenchResults))
	}
	if len(report.Quiz) != 1 {
		t.Fatalf("expected 1 quiz attempt, got %d", len(report.Quiz))
	}

	filtered, err := BuildReport(ctx, st, model.HistoryConfig{Algorithm: "quick"})
	if err != nil {
		t.Fatalf("build filtered report: %v", err)
	}
	if len(filtered.Runs) != 0 {
		t.Fatalf("expected no quick runs, got %d", len(filtered.Runs))
	}
	if len(filtered.BenchResults) != 1 || filtered.BenchResults[0].Algorithm != "quick" {
		t.Fatalf("unexpected filtered results: %+v", filtered.BenchResults)
	}
}

func TestBuildReportEmptyStore(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "sortviz.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	report, err := BuildReport(context.Background(), st, model.HistoryConfig{})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if report.LatestBench != nil || len(report.Runs) != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestRenderReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderReport(&buf, Report{}, 80, false); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"No runs found.", "No benchmarks found.", "No quiz attempts found."} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderReportSections(t *testing.T) {
	end := time.Unix(60, 0)
	report := Report{
		Runs: []model.SortRun{
			{EndedAt: end, Algorithm: "quick", Size: 10, Comparisons: 30, Swaps: 12, DelayMs: 50},
		},
		LatestBench: &model.BenchRun{RunID: "abc", StartedAt: end, Sizes: []int{100, 200}},
		BenchResults: []model.BenchResult{
			{Algorithm: "quick", Size: 100, DurationNs: 1_000_000},
			{Algorithm: "quick", Size: 200, DurationNs: 2_000_000},
		},
		Quiz: []model.QuizAttempt{{TakenAt: end, Score: 4, Total: 6}},
	}
	var buf bytes.Buffer
	if err := RenderReport(&buf, report, 80, false); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Runs: 1", "Benchmark abc", "Counters at n=200", "Last: 4/6"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
