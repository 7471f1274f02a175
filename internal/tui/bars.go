package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/sortviz/internal/engine"
)

type barRole int

const (
	roleDefault barRole = iota
	roleSorted
	roleCompared
	roleSwapped
)

var (
	defaultBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	comparedBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CA6C0F"))
	swappedBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	sortedBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#004D99"))
)

// Partial blocks in eighths, index 0 is empty.
var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

func (r barRole) style() lipgloss.Style {
	switch r {
	case roleSwapped:
		return swappedBarStyle
	case roleCompared:
		return comparedBarStyle
	case roleSorted:
		return sortedBarStyle
	default:
		return defaultBarStyle
	}
}

// roles assigns each index its colour role for ev. Swapped wins over
// compared, which wins over the sorted region.
func roles(n int, ev engine.Event) []barRole {
	out := make([]barRole, n)
	if ev.HasBoundary() {
		for i := range out {
			if ev.InSorted(i) {
				out[i] = roleSorted
			}
		}
	}
	for _, i := range ev.Compared {
		if i >= 0 && i < n {
			out[i] = max(out[i], roleCompared)
		}
	}
	for _, i := range ev.Swapped {
		if i >= 0 && i < n {
			out[i] = roleSwapped
		}
	}
	return out
}

type column struct {
	value int
	role  barRole
	width int
}

// layoutColumns fits n bars into width cells. When there is room each bar
// gets several cells and a one-cell gap; when there is not, neighbouring
// bars share a column showing their maximum and most prominent role.
func layoutColumns(values []int, rs []barRole, width int) ([]column, int) {
	n := len(values)
	if n == 0 || width <= 0 {
		return nil, 0
	}
	if n*2 <= width {
		barWidth := width/n - 1
		cols := make([]column, n)
		for i, v := range values {
			cols[i] = column{value: v, role: rs[i], width: barWidth}
		}
		return cols, 1
	}
	count := min(n, width)
	cols := make([]column, count)
	for c := range cols {
		lo := c * n / count
		hi := (c + 1) * n / count
		col := column{value: values[lo], role: rs[lo], width: 1}
		for i := lo + 1; i < hi; i++ {
			col.value = max(col.value, values[i])
			col.role = max(col.role, rs[i])
		}
		cols[c] = col
	}
	return cols, 0
}

// renderBars draws values as vertical bars scaled so maxValue fills height.
func renderBars(values []int, ev engine.Event, maxValue, width, height int) string {
	if height <= 0 || len(values) == 0 {
		return ""
	}
	if maxValue <= 0 {
		maxValue = 1
	}
	cols, gap := layoutColumns(values, roles(len(values), ev), width)
	levels := make([]int, len(cols))
	for i, c := range cols {
		v := max(c.value, 0)
		levels[i] = v * height * 8 / maxValue
		if v > 0 && levels[i] == 0 {
			levels[i] = 1
		}
	}

	rows := make([]string, height)
	for r := 0; r < height; r++ {
		fromBottom := height - 1 - r
		var row strings.Builder
		var run strings.Builder
		runRole := barRole(-1)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			row.WriteString(runRole.style().Render(run.String()))
			run.Reset()
		}
		for i, c := range cols {
			if c.role != runRole {
				flush()
				runRole = c.role
			}
			cell := cellRune(levels[i], fromBottom)
			run.WriteString(strings.Repeat(string(cell), c.width))
			if gap > 0 && i < len(cols)-1 {
				run.WriteString(strings.Repeat(" ", gap))
			}
		}
		flush()
		rows[r] = row.String()
	}
	return strings.Join(rows, "\n")
}

func cellRune(level, fromBottom int) rune {
	full := level / 8
	switch {
	case fromBottom < full:
		return eighths[8]
	case fromBottom == full:
		return eighths[level%8]
	default:
		return eighths[0]
	}
}
