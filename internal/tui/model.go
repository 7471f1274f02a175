// Package tui provides the Bubble Tea sorting visualiser.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/sortviz/internal/engine"
	"github.com/verte-zerg/sortviz/internal/generator"
	"github.com/verte-zerg/sortviz/internal/logging"
	"github.com/verte-zerg/sortviz/internal/model"
	"github.com/verte-zerg/sortviz/internal/store"
	"github.com/verte-zerg/sortviz/internal/theory"
)

const (
	// Steps faster than one frame are batched into a single repaint.
	minFrameInterval = 16 * time.Millisecond
	delayStep        = 10 * time.Millisecond
	maxDelay         = 2 * time.Second
	theoryPaneRatio  = 0.38
	chromeLines      = 3
)

// MaxSize is the largest sequence the visualiser accepts. Larger inputs
// cannot be drawn as distinct bars and make the recorded replay too big.
const MaxSize = 500

type tickMsg struct {
	run int
}

// tracedMsg carries a sort recorded off the update loop.
type tracedMsg struct {
	run      int
	steps    []step
	counters engine.Counters
	err      error
}

// Model implements the Bubble Tea visualiser.
type Model struct {
	config model.Config
	store  *store.Store
	gen    *generator.Generator
	logger *slog.Logger

	keys   keyMap
	help   help.Model
	theory viewport.Model

	width  int
	height int

	algorithm engine.Algorithm
	delay     time.Duration
	values    []int
	maxValue  int
	event     engine.Event

	runID     int
	running   bool
	preparing bool
	steps     []step
	stepIdx   int
	startedAt time.Time
	runDelay  time.Duration
	pending   engine.Counters

	counters    engine.Counters
	hasCounters bool
	showTheory  bool
	status      string
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E0E0E0"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CA6C0F"))
	paneStyle   = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).PaddingLeft(1)
)

// NewModel constructs a visualiser. initial may be nil, in which case a
// random sequence is generated from cfg.
func NewModel(cfg model.Config, st *store.Store, gen *generator.Generator, initial []int, logger *slog.Logger) *Model {
	if logger == nil {
		logger = logging.NewNop()
	}
	m := &Model{
		config:    cfg,
		store:     st,
		gen:       gen,
		logger:    logger,
		keys:      defaultKeyMap(),
		help:      help.New(),
		theory:    viewport.New(0, 0),
		algorithm: cfg.Algorithm,
		delay:     cfg.Delay,
	}
	if initial != nil {
		m.setValues(slices.Clone(initial))
	} else {
		m.generate()
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refreshTheory()
		return m, nil
	case tracedMsg:
		if !m.running || msg.run != m.runID {
			return m, nil
		}
		return m, m.play(msg)
	case tickMsg:
		if !m.running || m.preparing || msg.run != m.runID {
			return m, nil
		}
		m.advance()
		if !m.running {
			return m, nil
		}
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Theory):
		m.showTheory = !m.showTheory
		m.refreshTheory()
	case key.Matches(msg, m.keys.Slower):
		m.delay = min(m.delay+delayStep, maxDelay)
	case key.Matches(msg, m.keys.Faster):
		m.delay = max(m.delay-delayStep, 0)
	}
	if m.running {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Generate):
		m.generate()
	case key.Matches(msg, m.keys.Prev):
		m.selectAlgorithm(-1)
	case key.Matches(msg, m.keys.Next):
		m.selectAlgorithm(1)
	case key.Matches(msg, m.keys.Run):
		return m, m.start()
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	barsWidth := m.width
	var pane string
	if m.showTheory {
		paneWidth := m.theoryWidth()
		barsWidth = m.width - paneWidth - 2
		pane = paneStyle.Height(m.height - chromeLines).Render(m.theory.View())
	}
	barsHeight := max(m.height-chromeLines, 1)
	bars := renderBars(m.values, m.event, m.maxValue, barsWidth, barsHeight)
	body := lipgloss.NewStyle().Width(barsWidth).Height(barsHeight).Render(bars)
	if pane != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", pane)
	}
	sections := []string{
		m.renderHeader(),
		body,
		footerStyle.Render(m.renderFooter()),
		m.help.View(m.keys),
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderHeader() string {
	title := titleStyle.Render(fmt.Sprintf("◀ %s ▶", m.algorithm.Title()))
	info := fmt.Sprintf("  n=%d  delay %s", len(m.values), m.delay)
	if m.status != "" {
		info += "  " + statusStyle.Render(m.status)
	}
	return title + footerStyle.Render(info)
}

func (m *Model) renderFooter() string {
	if m.running && m.preparing {
		return "Recording steps…"
	}
	if m.running {
		return fmt.Sprintf("Sorting… step %d/%d", m.stepIdx, len(m.steps))
	}
	if !m.hasCounters {
		return "Press enter to sort"
	}
	return fmt.Sprintf("Comparisons: %d | Swaps: %d", m.counters.Comparisons, m.counters.Swaps)
}

func (m *Model) generate() {
	cfg := m.config
	size := cfg.Size
	if size <= 0 {
		size = generator.DefaultSize
	}
	m.setValues(m.gen.Values(size, cfg.Min, cfg.Max))
	m.status = ""
}

func (m *Model) setValues(values []int) {
	m.values = values
	m.maxValue = 0
	for _, v := range values {
		m.maxValue = max(m.maxValue, v)
	}
	m.event = engine.Event{}
	m.hasCounters = false
}

func (m *Model) selectAlgorithm(delta int) {
	all := engine.All()
	idx := slices.Index(all, m.algorithm)
	idx = (idx + delta + len(all)) % len(all)
	m.algorithm = all[idx]
	m.event = engine.Event{}
	m.hasCounters = false
	m.refreshTheory()
}

// start records the sort of a copy of the values in a command, so the
// update loop stays responsive, and replays the steps on a timer once they
// arrive.
func (m *Model) start() tea.Cmd {
	seq := slices.Clone(m.values)
	alg := m.algorithm
	m.status = ""
	m.runID++
	m.running = true
	m.preparing = true
	m.steps = nil
	m.stepIdx = 0
	m.hasCounters = false
	m.startedAt = time.Now()
	m.runDelay = m.delay
	id := m.runID
	return func() tea.Msg {
		steps, counters, err := record(alg, seq)
		return tracedMsg{run: id, steps: steps, counters: counters, err: err}
	}
}

func (m *Model) play(msg tracedMsg) tea.Cmd {
	m.preparing = false
	if msg.err != nil {
		m.running = false
		m.status = msg.err.Error()
		m.logger.Error("failed to sort", "algorithm", m.algorithm.String(), "error", msg.err)
		return nil
	}
	m.steps = msg.steps
	m.pending = msg.counters
	if len(m.steps) == 0 {
		m.finish()
		return nil
	}
	m.logger.Debug("sort started", "algorithm", m.algorithm.String(), "size", len(m.values), "steps", len(m.steps))
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	id := m.runID
	return tea.Tick(max(m.delay, minFrameInterval), func(time.Time) tea.Msg {
		return tickMsg{run: id}
	})
}

// advance applies the steps due in one frame.
func (m *Model) advance() {
	batch := 1
	if m.delay < minFrameInterval {
		batch = int(minFrameInterval / max(m.delay, time.Millisecond))
	}
	for i := 0; i < batch && m.stepIdx < len(m.steps); i++ {
		s := m.steps[m.stepIdx]
		s.apply(m.values)
		m.event = s.event
		m.stepIdx++
	}
	if m.stepIdx >= len(m.steps) {
		m.finish()
	}
}

func (m *Model) finish() {
	m.running = false
	m.counters = m.pending
	m.hasCounters = true
	m.saveRun()
}

func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	run := model.SortRun{
		StartedAt:   m.startedAt,
		EndedAt:     time.Now(),
		Algorithm:   m.algorithm.String(),
		Size:        len(m.values),
		Comparisons: m.counters.Comparisons,
		Swaps:       m.counters.Swaps,
		DelayMs:     m.runDelay.Milliseconds(),
		Frames:      len(m.steps),
	}
	if _, err := m.store.InsertSortRun(context.Background(), run); err != nil {
		m.logger.Error("failed to save run", "error", err)
	}
}

func (m *Model) theoryWidth() int {
	return max(int(float64(m.width)*theoryPaneRatio), 20)
}

func (m *Model) refreshTheory() {
	if !m.showTheory || m.width == 0 {
		return
	}
	width := m.theoryWidth()
	m.theory.Width = width
	m.theory.Height = max(m.height-chromeLines, 1)
	r, err := theory.NewStyledRenderer(width-2, "dark")
	if err != nil {
		m.logger.Warn("theory renderer unavailable", "error", err)
		return
	}
	text, err := r.Render(m.algorithm)
	if err != nil {
		m.logger.Warn("failed to render theory", "algorithm", m.algorithm.String(), "error", err)
		return
	}
	m.theory.SetContent(text)
	m.theory.GotoTop()
}
