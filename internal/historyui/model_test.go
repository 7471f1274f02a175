package historyui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/sortviz/internal/model"
	"github.com/verte-zerg/sortviz/internal/store"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "sortviz.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	ctx := context.Background()
	base := time.Unix(1700000000, 0)
	for i, alg := range []string{"quick", "merge", "quick"} {
		run := model.SortRun{
			StartedAt:   base.Add(time.Duration(i) * time.Minute),
			EndedAt:     base.Add(time.Duration(i)*time.Minute + time.Second),
			Algorithm:   alg,
			Size:        50,
			Comparisons: 300 + i,
			Swaps:       100,
			DelayMs:     50,
		}
		if _, err := st.InsertSortRun(ctx, run); err != nil {
			t.Fatalf("insert run: %v", err)
		}
	}
	results := []model.BenchResult{
		{Algorithm: "quick", Size: 100, DurationNs: 40_000, Comparisons: 640, Swaps: 380},
		{Algorithm: "quick", Size: 1000, DurationNs: 500_000, Comparisons: 11_000, Swaps: 6_000},
	}
	if _, err := st.InsertBenchRun(ctx, model.BenchRun{RunID: "r1", StartedAt: base, Sizes: []int{100, 1000}}, results); err != nil {
		t.Fatalf("insert bench: %v", err)
	}
	if _, err := st.InsertQuizAttempt(ctx, model.QuizAttempt{TakenAt: base, Score: 5, Total: 6}); err != nil {
		t.Fatalf("insert attempt: %v", err)
	}
	return st
}

func TestTabsRenderReport(t *testing.T) {
	m := NewModel(seededStore(t), model.HistoryConfig{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	if len(m.report.Runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(m.report.Runs))
	}
	view := m.View()
	if !strings.Contains(view, "Runs") || !strings.Contains(view, "Quick") {
		t.Fatalf("expected runs table in view:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabBench {
		t.Fatalf("expected benchmarks tab, got %d", m.activeTab)
	}
	if view := m.View(); !strings.Contains(view, "Execution time vs size") {
		t.Fatalf("expected benchmark chart in view:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if view := m.View(); !strings.Contains(view, "Attempts: 1") {
		t.Fatalf("expected quiz summary in view:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabRuns {
		t.Fatalf("expected tabs to wrap around, got %d", m.activeTab)
	}
}

func TestApplyFilter(t *testing.T) {
	m := NewModel(seededStore(t), model.HistoryConfig{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.startFilter()
	m.filterInputs[0].SetValue("Quick Sort")
	m.filterInputs[1].SetValue("1")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.filterMode {
		t.Fatalf("expected filter mode to close")
	}
	if m.cfg.Algorithm != "quick" || m.cfg.Last != 1 {
		t.Fatalf("unexpected config: %+v", m.cfg)
	}
	if len(m.report.Runs) != 1 || m.report.Runs[0].Comparisons != 302 {
		t.Fatalf("unexpected filtered runs: %+v", m.report.Runs)
	}
}

func TestApplyFilterRejectsUnknownAlgorithm(t *testing.T) {
	m := NewModel(seededStore(t), model.HistoryConfig{})
	m.startFilter()
	m.filterInputs[0].SetValue("bogo")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.filterMode || m.filterError == "" {
		t.Fatalf("expected filter error, got mode=%v err=%q", m.filterMode, m.filterError)
	}
}

func TestEmptyStore(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "sortviz.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	m := NewModel(st, model.HistoryConfig{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if view := m.View(); !strings.Contains(view, "No runs found.") {
		t.Fatalf("expected empty message:\n%s", view)
	}
	if got := renderBench(m.report, 80); !strings.Contains(got, "No benchmark results") {
		t.Fatalf("unexpected bench content: %q", got)
	}
}

func TestFitLines(t *testing.T) {
	out := fitLines("a\nb\nc", 3, 2)
	if out != "a  \nb  " {
		t.Fatalf("unexpected fit: %q", out)
	}
	if got := truncateLine("abcdefgh", 6); got != "abc..." {
		t.Fatalf("unexpected truncate: %q", got)
	}
}
