package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/sortviz/internal/engine"
)

func TestRenderFooterFormats(t *testing.T) {
	m := &Model{
		counters:    engine.Counters{Comparisons: 1225, Swaps: 612},
		hasCounters: true,
	}
	out := m.renderFooter()
	if out != "Comparisons: 1225 | Swaps: 612" {
		t.Fatalf("unexpected footer: %q", out)
	}

	m.running = true
	m.steps = make([]step, 10)
	m.stepIdx = 4
	if out := m.renderFooter(); !strings.Contains(out, "step 4/10") {
		t.Fatalf("expected progress in footer: %q", out)
	}

	idle := &Model{}
	if out := idle.renderFooter(); !strings.Contains(out, "enter") {
		t.Fatalf("expected prompt in idle footer: %q", out)
	}
}
