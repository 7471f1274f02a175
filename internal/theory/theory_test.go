package theory

import (
	"errors"
	"strings"
	"testing"

	"github.com/verte-zerg/sortviz/internal/engine"
)

func TestEveryAlgorithmHasTheory(t *testing.T) {
	for _, alg := range engine.All() {
		md, err := Markdown(alg)
		if err != nil {
			t.Fatalf("markdown for %s: %v", alg, err)
		}
		if !strings.Contains(md, alg.Title()) || !strings.Contains(md, "Complexity") {
			t.Fatalf("unexpected markdown for %s: %s", alg, md)
		}
	}
}

func TestMarkdownUnknown(t *testing.T) {
	_, err := Markdown(engine.Algorithm(77))
	if !errors.Is(err, engine.ErrUnknownAlgorithm) {
		t.Fatalf("expected unknown algorithm error, got %v", err)
	}
}

func TestRendererRender(t *testing.T) {
	r, err := NewRenderer(60)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.Render(engine.Merge)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Merge") {
		t.Fatalf("expected title in rendered output: %q", out)
	}
}

func TestStyledRendererRender(t *testing.T) {
	r, err := NewStyledRenderer(40, "notty")
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.Render(engine.Quick)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Quick Sort") {
		t.Fatalf("expected title in rendered output: %q", out)
	}
}
