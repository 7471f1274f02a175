// Package model defines shared data structures.
package model

import (
	"time"

	"github.com/verte-zerg/sortviz/internal/engine"
)

// Config defines visualiser settings.
type Config struct {
	Algorithm engine.Algorithm
	Size      int
	Min       int
	Max       int
	Delay     time.Duration
	Seed      int64
	InputPath string
}

// BenchConfig defines which algorithms and sizes a benchmark covers.
type BenchConfig struct {
	Sizes      []int
	Algorithms []engine.Algorithm
	Seed       int64
}

// HistoryConfig defines filters for the history views.
type HistoryConfig struct {
	Algorithm string
	Last      int
}

// SortRun captures a completed animated sort.
type SortRun struct {
	ID          int64
	StartedAt   time.Time
	EndedAt     time.Time
	Algorithm   string
	Size        int
	Comparisons int
	Swaps       int
	DelayMs     int64
	Frames      int
}

// BenchRun describes one benchmark invocation.
type BenchRun struct {
	ID        int64
	RunID     string
	StartedAt time.Time
	Sizes     []int
}

// BenchResult stores the measurement for one algorithm at one size.
type BenchResult struct {
	RunID       string
	Algorithm   string
	Size        int
	DurationNs  int64
	Comparisons int
	Swaps       int
}

// QuizAttempt records a finished quiz.
type QuizAttempt struct {
	ID      int64
	TakenAt time.Time
	Score   int
	Total   int
}

// Percent returns the score as a fraction in [0, 1].
func (q QuizAttempt) Percent() float64 {
	if q.Total <= 0 {
		return 0
	}
	return float64(q.Score) / float64(q.Total)
}
