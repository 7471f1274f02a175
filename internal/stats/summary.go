package stats

import (
	"sort"

	"github.com/verte-zerg/sortviz/internal/model"
)

// AlgorithmSummary aggregates visualiser runs of one algorithm.
type AlgorithmSummary struct {
	Algorithm      string
	Runs           int
	AvgSize        float64
	AvgComparisons float64
	AvgSwaps       float64
}

// SummarizeRuns groups runs by algorithm, most used first.
func SummarizeRuns(runs []model.SortRun) []AlgorithmSummary {
	if len(runs) == 0 {
		return nil
	}
	type acc struct {
		runs, size, comparisons, swaps int
	}
	totals := map[string]*acc{}
	for _, r := range runs {
		a, ok := totals[r.Algorithm]
		if !ok {
			a = &acc{}
			totals[r.Algorithm] = a
		}
		a.runs++
		a.size += r.Size
		a.comparisons += r.Comparisons
		a.swaps += r.Swaps
	}
	out := make([]AlgorithmSummary, 0, len(totals))
	for alg, a := range totals {
		n := float64(a.runs)
		out = append(out, AlgorithmSummary{
			Algorithm:      alg,
			Runs:           a.runs,
			AvgSize:        float64(a.size) / n,
			AvgComparisons: float64(a.comparisons) / n,
			AvgSwaps:       float64(a.swaps) / n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Runs == out[j].Runs {
			return out[i].Algorithm < out[j].Algorithm
		}
		return out[i].Runs > out[j].Runs
	})
	return out
}

// RankAtSize returns the results measured at size, fastest first.
func RankAtSize(results []model.BenchResult, size int) []model.BenchResult {
	out := make([]model.BenchResult, 0, len(results))
	for _, r := range results {
		if r.Size == size {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DurationNs == out[j].DurationNs {
			return out[i].Algorithm < out[j].Algorithm
		}
		return out[i].DurationNs < out[j].DurationNs
	})
	return out
}

func benchSizes(results []model.BenchResult) []int {
	seen := map[int]struct{}{}
	sizes := make([]int, 0)
	for _, r := range results {
		if _, ok := seen[r.Size]; ok {
			continue
		}
		seen[r.Size] = struct{}{}
		sizes = append(sizes, r.Size)
	}
	sort.Ints(sizes)
	return sizes
}
