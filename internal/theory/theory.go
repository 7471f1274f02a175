// Package theory holds the per-algorithm explanations shown next to the
// animation.
package theory

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/verte-zerg/sortviz/internal/engine"
)

// Entry is the theory for one algorithm.
type Entry struct {
	Principle  string
	Complexity string
	Stable     bool
	InPlace    bool
}

var entries = map[engine.Algorithm]Entry{
	engine.Selection: {
		Principle:  "Scan the array for the minimum element and place it in the first position, then repeat for the rest of the array.",
		Complexity: "O(n²) comparisons in every case, at most n-1 swaps.",
		InPlace:    true,
	},
	engine.Insertion: {
		Principle:  "Grow a sorted prefix by inserting each new element at its correct position, shifting larger elements right.",
		Complexity: "O(n²) in the worst case, O(n) on already sorted input.",
		Stable:     true,
		InPlace:    true,
	},
	engine.Bubble: {
		Principle:  "Compare and swap adjacent elements; each pass bubbles the largest remaining element to the end.",
		Complexity: "O(n²). This variant never stops early, so it always makes n(n-1)/2 comparisons.",
		Stable:     true,
		InPlace:    true,
	},
	engine.Quick: {
		Principle:  "Partition the array around a pivot (here the last element), then sort both sides recursively.",
		Complexity: "O(n log n) on average, O(n²) in the worst case such as already sorted input.",
		InPlace:    true,
	},
	engine.Merge: {
		Principle:  "Split the array in two, sort both halves recursively, then merge the two sorted halves.",
		Complexity: "O(n log n) in every case, with O(n) extra memory.",
		Stable:     true,
	},
	engine.Builtin: {
		Principle:  "Hybrid sort provided by the runtime. Go uses pattern-defeating quicksort, which mixes quicksort, insertion sort and heapsort.",
		Complexity: "O(n log n) in the worst case. Its work is not counted step by step.",
		InPlace:    true,
	},
}

// Lookup returns the theory entry for alg.
func Lookup(alg engine.Algorithm) (Entry, bool) {
	e, ok := entries[alg]
	return e, ok
}

// Markdown renders the entry for alg as markdown.
func Markdown(alg engine.Algorithm) (string, error) {
	e, ok := Lookup(alg)
	if !ok {
		return "", fmt.Errorf("%w: %s", engine.ErrUnknownAlgorithm, alg)
	}
	return fmt.Sprintf("# %s\n\n**Principle:** %s\n\n**Complexity:** %s\n\n- Stable: %s\n- In place: %s\n",
		alg.Title(), e.Principle, e.Complexity, yesNo(e.Stable), yesNo(e.InPlace)), nil
}

// Renderer turns theory markdown into styled terminal output.
type Renderer struct {
	r *glamour.TermRenderer
}

// NewRenderer builds a renderer wrapping text at width columns, styled for
// the detected terminal background.
func NewRenderer(width int) (*Renderer, error) {
	return newRenderer(width, glamour.WithAutoStyle())
}

// NewStyledRenderer uses a named glamour style ("dark", "light", "notty")
// instead of querying the terminal, which is unsafe once a full-screen
// program owns it.
func NewStyledRenderer(width int, style string) (*Renderer, error) {
	return newRenderer(width, glamour.WithStandardStyle(style))
}

func newRenderer(width int, style glamour.TermRendererOption) (*Renderer, error) {
	opts := []glamour.TermRendererOption{style}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &Renderer{r: r}, nil
}

// Render returns the styled theory for alg.
func (r *Renderer) Render(alg engine.Algorithm) (string, error) {
	md, err := Markdown(alg)
	if err != nil {
		return "", err
	}
	return r.r.Render(md)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
