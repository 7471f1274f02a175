// Package stats contains benchmark and history calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/sortviz/internal/model"
)

const sparkChars = " .:-=+*#%@"

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Milliseconds converts a nanosecond duration to fractional milliseconds.
func Milliseconds(ns int64) float64 {
	return float64(ns) / float64(time.Millisecond)
}

// RenderRunSummary prints per-algorithm totals for visualiser runs.
func RenderRunSummary(w io.Writer, runs []model.SortRun) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Runs: %d\n", len(runs)); err != nil {
		return err
	}
	summaries := SummarizeRuns(runs)
	headers := []string{"Algorithm", "Runs", "Avg Size", "Avg Comparisons", "Avg Swaps"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Algorithm,
			fmt.Sprintf("%d", s.Runs),
			fmt.Sprintf("%.1f", s.AvgSize),
			fmt.Sprintf("%.1f", s.AvgComparisons),
			fmt.Sprintf("%.1f", s.AvgSwaps),
		})
	}
	return writeTable(w, headers, rows, map[int]bool{1: true, 2: true, 3: true, 4: true})
}

// RenderRunTable prints one line per visualiser run.
func RenderRunTable(w io.Writer, runs []model.SortRun) error {
	if len(runs) == 0 {
		return nil
	}
	headers := []string{"Finished", "Algorithm", "Size", "Comparisons", "Swaps", "Delay (ms)"}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.EndedAt.Local().Format("2006-01-02 15:04"),
			r.Algorithm,
			fmt.Sprintf("%d", r.Size),
			fmt.Sprintf("%d", r.Comparisons),
			fmt.Sprintf("%d", r.Swaps),
			fmt.Sprintf("%d", r.DelayMs),
		})
	}
	return writeTable(w, headers, rows, map[int]bool{2: true, 3: true, 4: true, 5: true})
}

// BenchSeries groups benchmark results into one millisecond series per
// algorithm, aligned on the returned sizes. Sizes an algorithm has no
// result for are NaN.
func BenchSeries(results []model.BenchResult) ([]Series, []float64) {
	sizes := benchSizes(results)
	index := make(map[int]int, len(sizes))
	for i, n := range sizes {
		index[n] = i
	}
	var order []string
	byAlg := map[string][]float64{}
	for _, r := range results {
		values, ok := byAlg[r.Algorithm]
		if !ok {
			values = make([]float64, len(sizes))
			for i := range values {
				values[i] = math.NaN()
			}
			order = append(order, r.Algorithm)
		}
		values[index[r.Size]] = Milliseconds(r.DurationNs)
		byAlg[r.Algorithm] = values
	}
	series := make([]Series, 0, len(order))
	for _, alg := range order {
		series = append(series, Series{Name: alg, Values: byAlg[alg]})
	}
	xs := make([]float64, len(sizes))
	for i, n := range sizes {
		xs[i] = float64(n)
	}
	return series, xs
}

// RenderBenchChart prints execution time against input size for every
// algorithm on a shared scale.
func RenderBenchChart(w io.Writer, results []model.BenchResult, totalWidth, height int, useColor bool) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No benchmark results found.")
		return err
	}
	series, xs := BenchSeries(results)
	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	return PlotSeries(w, series, PlotOptions{
		Title:      "Execution time vs size",
		Unit:       "ms",
		X:          xs,
		Width:      width,
		Height:     height,
		ForceColor: useColor,
	})
}

// RenderBenchTable prints counters and timings at one size, fastest first.
// A non-positive size selects the largest measured size.
func RenderBenchTable(w io.Writer, results []model.BenchResult, size int) error {
	if len(results) == 0 {
		return nil
	}
	if size <= 0 {
		sizes := benchSizes(results)
		size = sizes[len(sizes)-1]
	}
	ranked := RankAtSize(results, size)
	if _, err := fmt.Fprintf(w, "Counters at n=%d\n", size); err != nil {
		return err
	}
	headers := []string{"#", "Algorithm", "Time (ms)", "Comparisons", "Swaps"}
	rows := make([][]string, 0, len(ranked))
	for i, r := range ranked {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.Algorithm,
			fmt.Sprintf("%.3f", Milliseconds(r.DurationNs)),
			fmt.Sprintf("%d", r.Comparisons),
			fmt.Sprintf("%d", r.Swaps),
		})
	}
	return writeTable(w, headers, rows, map[int]bool{0: true, 2: true, 3: true, 4: true})
}

// RenderQuizSummary prints quiz totals and a sparkline of scores.
func RenderQuizSummary(w io.Writer, attempts []model.QuizAttempt, window int) error {
	if len(attempts) == 0 {
		_, err := fmt.Fprintln(w, "No quiz attempts found.")
		return err
	}
	percents := make([]float64, len(attempts))
	var total, best float64
	for i, a := range attempts {
		p := a.Percent() * 100
		percents[i] = p
		total += p
		best = math.Max(best, p)
	}
	last := attempts[len(attempts)-1]
	lines := []string{
		"Quiz",
		fmt.Sprintf("Attempts: %d", len(attempts)),
		fmt.Sprintf("Avg Score: %.1f%%", total/float64(len(attempts))),
		fmt.Sprintf("Best Score: %.1f%%", best),
		fmt.Sprintf("Last: %d/%d", last.Score, last.Total),
		"Trend: " + Sparkline(MovingAverage(percents, window)),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, headers []string, rows [][]string, rightAlign map[int]bool) error {
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
