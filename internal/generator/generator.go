// Package generator builds random input sequences.
package generator

import (
	"math/rand"
	"time"
)

// Default bounds used by the visualiser.
const (
	DefaultSize = 50
	DefaultMin  = 10
	DefaultMax  = 300
)

// Generator produces randomized sequences.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed, for reproducible runs.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Values returns n integers drawn uniformly from [lo, hi].
func (g *Generator) Values(n, lo, hi int) []int {
	if n < 0 {
		n = 0
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	span := hi - lo + 1
	out := make([]int, n)
	for i := range out {
		out[i] = lo + g.rnd.Intn(span)
	}
	return out
}

// Benchmark returns n integers drawn uniformly from [1, n].
func (g *Generator) Benchmark(n int) []int {
	if n <= 0 {
		return []int{}
	}
	return g.Values(n, 1, n)
}

// Shuffle permutes n items in place through swap.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	g.rnd.Shuffle(n, swap)
}
