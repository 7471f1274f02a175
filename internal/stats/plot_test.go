package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestPlotSeries(t *testing.T) {
	var buf bytes.Buffer
	err := PlotSeries(&buf, []Series{
		{Name: "A", Values: []float64{1, 2, 3, 2, 1}},
		{Name: "B", Values: []float64{1, 1, 2, 3, 4}},
	}, PlotOptions{
		Title:  "Test Plot",
		Unit:   "ms",
		X:      []float64{100, 200, 500, 1000, 5000},
		Width:  12,
		Height: 4,
	})
	if err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Test Plot") {
		t.Fatalf("expected title in output")
	}
	if !strings.Contains(out, "4.00ms") || !strings.Contains(out, "0.00ms") {
		t.Fatalf("expected shared axis labels in output:\n%s", out)
	}
	if !strings.Contains(out, "100") || !strings.Contains(out, "5000") {
		t.Fatalf("expected x axis bounds in output:\n%s", out)
	}
	if !strings.Contains(out, "Legend:") {
		t.Fatalf("expected legend in output")
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	expected := 1 + 4 + 1 + 1
	if len(lines) != expected {
		t.Fatalf("expected %d lines of output, got %d", expected, len(lines))
	}
}

func TestPlotSeriesSkipsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotSeries(&buf, []Series{{Name: "empty"}}, PlotOptions{Title: "x"}); err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestPlotSeriesBreaksLineAtMissingPoint(t *testing.T) {
	var buf bytes.Buffer
	err := PlotSeries(&buf, []Series{
		{Name: "partial", Values: []float64{4, math.NaN(), 4}},
	}, PlotOptions{Width: 10, Height: 1})
	if err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	first := strings.SplitN(buf.String(), "\n", 2)[0]
	parts := strings.SplitN(first, axisSeparator, 2)
	if len(parts) != 2 {
		t.Fatalf("unexpected row: %q", first)
	}
	cells := []rune(parts[1])
	if len(cells) != 10 {
		t.Fatalf("expected 10 cells, got %d", len(cells))
	}
	if cells[0] == brailleFromMask(0) || cells[9] == brailleFromMask(0) {
		t.Fatalf("expected dots at both known points: %q", parts[1])
	}
	for x := 1; x < 9; x++ {
		if cells[x] != brailleFromMask(0) {
			t.Fatalf("expected a gap at cell %d: %q", x, parts[1])
		}
	}
	if !strings.Contains(buf.String(), "4.00") {
		t.Fatalf("expected axis to ignore the missing point:\n%s", buf.String())
	}
}

func TestPlotSeriesSkipsAllMissing(t *testing.T) {
	var buf bytes.Buffer
	err := PlotSeries(&buf, []Series{{Name: "none", Values: []float64{math.NaN(), math.NaN()}}}, PlotOptions{})
	if err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestPointColumnsUsesXPositions(t *testing.T) {
	cols := pointColumns([]float64{1, 1, 1}, []float64{0, 10, 100}, 101)
	if cols[0] != 0 || cols[1] != 10 || cols[2] != 100 {
		t.Fatalf("unexpected columns: %v", cols)
	}
	even := pointColumns([]float64{1, 1, 1}, nil, 11)
	if even[1] != 5 || even[2] != 10 {
		t.Fatalf("unexpected even columns: %v", even)
	}
}

func TestPlotWidthFor(t *testing.T) {
	total := 80
	expected := total - axisLabelWidth - runewidth.StringWidth(axisSeparator)
	if got := PlotWidthFor(total); got != expected {
		t.Fatalf("expected width %d, got %d", expected, got)
	}
	if got := PlotWidthFor(0); got != minPlotWidth {
		t.Fatalf("expected min width %d, got %d", minPlotWidth, got)
	}
}
