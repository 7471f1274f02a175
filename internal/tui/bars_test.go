package tui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/sortviz/internal/engine"
)

func TestRolesPriority(t *testing.T) {
	ev := engine.Event{Compared: []int{1, 3}, Swapped: []int{3}, Boundary: 1, Region: engine.RegionPrefix}
	got := roles(5, ev)
	want := []barRole{roleSorted, roleCompared, roleDefault, roleSwapped, roleDefault}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected role %d, got %d", i, want[i], got[i])
		}
	}

	suffix := roles(4, engine.Event{Boundary: 2, Region: engine.RegionSuffix})
	if suffix[1] != roleDefault || suffix[2] != roleSorted || suffix[3] != roleSorted {
		t.Fatalf("unexpected suffix roles: %v", suffix)
	}
}

func TestLayoutColumnsWide(t *testing.T) {
	cols, gap := layoutColumns([]int{1, 2, 3}, make([]barRole, 3), 30)
	if gap != 1 || len(cols) != 3 || cols[0].width != 9 {
		t.Fatalf("unexpected wide layout: gap=%d cols=%+v", gap, cols)
	}
}

func TestLayoutColumnsNarrowMergesBars(t *testing.T) {
	values := []int{1, 9, 2, 3, 8, 4}
	rs := []barRole{roleDefault, roleDefault, roleDefault, roleSwapped, roleDefault, roleDefault}
	cols, gap := layoutColumns(values, rs, 3)
	if gap != 0 || len(cols) != 3 {
		t.Fatalf("unexpected narrow layout: gap=%d cols=%+v", gap, cols)
	}
	if cols[0].value != 9 || cols[1].value != 3 || cols[2].value != 8 {
		t.Fatalf("expected group maxima, got %+v", cols)
	}
	if cols[1].role != roleSwapped {
		t.Fatalf("expected swapped role to win in group, got %d", cols[1].role)
	}
}

func TestRenderBarsShape(t *testing.T) {
	out := renderBars([]int{8, 4, 0}, engine.Event{}, 8, 6, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	for _, line := range lines {
		// three one-cell bars separated by one-cell gaps
		if w := runewidth.StringWidth(stripANSI(line)); w != 5 {
			t.Fatalf("expected row width 5, got %d: %q", w, line)
		}
	}
	top := []rune(stripANSI(lines[0]))
	bottom := []rune(stripANSI(lines[1]))
	if top[0] != '█' || top[2] != ' ' || bottom[2] != '█' || bottom[4] != ' ' {
		t.Fatalf("unexpected bars:\n%s", out)
	}
}

func TestCellRune(t *testing.T) {
	if cellRune(12, 0) != '█' || cellRune(12, 1) != '▄' || cellRune(12, 2) != ' ' {
		t.Fatalf("unexpected partial block rendering")
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
