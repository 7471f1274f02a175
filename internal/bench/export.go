package bench

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/sortviz/internal/stats"
)

type exportDoc struct {
	RunID      string            `yaml:"run_id"`
	StartedAt  time.Time         `yaml:"started_at"`
	Sizes      []int             `yaml:"sizes"`
	Algorithms []exportAlgorithm `yaml:"algorithms"`
}

type exportAlgorithm struct {
	Name    string       `yaml:"name"`
	Title   string       `yaml:"title"`
	Results []exportCell `yaml:"results"`
}

type exportCell struct {
	Size        int     `yaml:"size"`
	Millis      float64 `yaml:"ms"`
	Comparisons int     `yaml:"comparisons"`
	Swaps       int     `yaml:"swaps"`
}

// WriteYAML encodes the result as a YAML document.
func WriteYAML(w io.Writer, r Result) error {
	doc := exportDoc{
		RunID:     r.RunID,
		StartedAt: r.StartedAt.UTC(),
		Sizes:     r.Sizes,
	}
	for _, alg := range r.Algorithms {
		entry := exportAlgorithm{Name: alg.String(), Title: alg.Title()}
		counters := r.Counters[alg]
		for i, d := range r.Timings[alg] {
			entry.Results = append(entry.Results, exportCell{
				Size:        r.Sizes[i],
				Millis:      stats.Milliseconds(d.Nanoseconds()),
				Comparisons: counters[i].Comparisons,
				Swaps:       counters[i].Swaps,
			})
		}
		doc.Algorithms = append(doc.Algorithms, entry)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode benchmark: %w", err)
	}
	return enc.Close()
}

// ExportFile writes the result as YAML to path.
func ExportFile(path string, r Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WriteYAML(f, r)
}
