// Package quizui provides the Bubble Tea quiz interface.
package quizui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/sortviz/internal/logging"
	"github.com/verte-zerg/sortviz/internal/model"
	"github.com/verte-zerg/sortviz/internal/quiz"
	"github.com/verte-zerg/sortviz/internal/store"
)

var (
	promptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E0E0E0"))
	optionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CA6C0F")).Bold(true)
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3FB950"))
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	boxStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#004D99")).
			Padding(1, 2)
)

// Model implements the Bubble Tea quiz UI.
type Model struct {
	session *quiz.Session
	store   *store.Store
	logger  *slog.Logger

	cursor  int
	chosen  string
	saved   bool
	errMsg  string
	takenAt time.Time

	width  int
	height int
}

// NewModel constructs a quiz UI over session. st may be nil to skip saving.
func NewModel(session *quiz.Session, st *store.Store, logger *slog.Logger) *Model {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Model{
		session: session,
		store:   st,
		logger:  logger,
		takenAt: time.Now(),
	}
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
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
		if m.session.Done() {
			if msg.Type == tea.KeyEnter {
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "enter", " ":
			if m.session.Answered() {
				m.next()
			} else {
				m.submit()
			}
		case "n":
			m.next()
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	q, ok := m.session.Current()
	if !ok || m.session.Answered() {
		return
	}
	count := len(q.Options)
	m.cursor = (m.cursor + delta + count) % count
}

func (m *Model) submit() {
	q, ok := m.session.Current()
	if !ok {
		return
	}
	m.chosen = q.Options[m.cursor]
	if _, err := m.session.Submit(m.chosen); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
}

func (m *Model) next() {
	more, err := m.session.Next()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.cursor = 0
	m.chosen = ""
	if !more {
		m.saveAttempt()
	}
}

func (m *Model) saveAttempt() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true
	attempt := model.QuizAttempt{
		TakenAt: m.takenAt,
		Score:   m.session.Score(),
		Total:   m.session.Total(),
	}
	if _, err := m.store.InsertQuizAttempt(context.Background(), attempt); err != nil {
		m.logger.Error("failed to save quiz attempt", "error", err)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	content := m.renderContent()
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(content))
}

func (m *Model) renderContent() string {
	if m.session.Done() {
		return m.renderScore()
	}
	q, _ := m.session.Current()
	lines := []string{
		mutedStyle.Render(fmt.Sprintf("Question %d of %d", m.session.Index()+1, m.session.Total())),
		promptStyle.Render(q.Prompt),
		"",
	}
	for i, opt := range q.Options {
		lines = append(lines, m.renderOption(i, opt, q.Answer))
	}
	lines = append(lines, "")
	if m.session.Answered() {
		if m.session.LastCorrect() {
			lines = append(lines, correctStyle.Render("Correct!"))
		} else {
			lines = append(lines, wrongStyle.Render("Incorrect. The answer is "+q.Answer+"."))
		}
		lines = append(lines, mutedStyle.Render("enter/n: next question  q: quit"))
	} else {
		lines = append(lines, mutedStyle.Render("up/down: choose  enter: submit  q: quit"))
	}
	if m.errMsg != "" {
		lines = append(lines, wrongStyle.Render(m.errMsg))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderOption(i int, opt, answer string) string {
	marker := "  "
	if i == m.cursor {
		marker = "> "
	}
	label := marker + opt
	if !m.session.Answered() {
		if i == m.cursor {
			return selectedStyle.Render(label)
		}
		return optionStyle.Render(label)
	}
	switch {
	case opt == answer:
		return correctStyle.Render(label)
	case opt == m.chosen:
		return wrongStyle.Render(label)
	default:
		return optionStyle.Render(label)
	}
}

func (m *Model) renderScore() string {
	score := m.session.Score()
	total := m.session.Total()
	pct := 0.0
	if total > 0 {
		pct = float64(score) / float64(total) * 100
	}
	lines := []string{
		promptStyle.Render("Quiz complete"),
		"",
		fmt.Sprintf("Score: %d / %d (%.0f%%)", score, total, pct),
		"",
		mutedStyle.Render("enter/q: exit"),
	}
	return strings.Join(lines, "\n")
}
