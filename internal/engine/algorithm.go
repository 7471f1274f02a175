package engine

import (
	"fmt"
	"strings"
)

// Algorithm identifies one sorting strategy.
type Algorithm int

const (
	Selection Algorithm = iota
	Insertion
	Bubble
	Quick
	Merge
	Builtin
)

var algorithmNames = []struct {
	key   string
	title string
}{
	Selection: {key: "selection", title: "Selection Sort"},
	Insertion: {key: "insertion", title: "Insertion Sort"},
	Bubble:    {key: "bubble", title: "Bubble Sort"},
	Quick:     {key: "quick", title: "Quick Sort"},
	Merge:     {key: "merge", title: "Merge Sort"},
	Builtin:   {key: "builtin", title: "Built-in Sort"},
}

// All returns every algorithm in display order.
func All() []Algorithm {
	return []Algorithm{Selection, Insertion, Bubble, Quick, Merge, Builtin}
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= Selection && a <= Builtin
}

// String returns the short key used on the command line and in storage.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
	return algorithmNames[a].key
}

// Title returns the human-readable name.
func (a Algorithm) Title() string {
	if !a.Valid() {
		return a.String()
	}
	return algorithmNames[a].title
}

// ParseAlgorithm resolves a key or title, case-insensitively. "tim" and
// "timsort" are accepted as aliases for Builtin.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(strings.TrimSuffix(name, " sort"), "sort")
	name = strings.TrimSpace(name)
	switch name {
	case "tim", "hybrid", "built-in":
		return Builtin, nil
	}
	for _, a := range All() {
		if name == a.String() {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// ParseAlgorithms parses a comma-separated list. An empty list or "all"
// yields every algorithm.
func ParseAlgorithms(s string) ([]Algorithm, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return All(), nil
	}
	var out []Algorithm
	seen := map[Algorithm]bool{}
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		a, err := ParseAlgorithm(part)
		if err != nil {
			return nil, err
		}
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty list", ErrUnknownAlgorithm)
	}
	return out, nil
}
