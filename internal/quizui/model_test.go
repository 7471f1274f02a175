package quizui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/sortviz/internal/quiz"
	"github.com/verte-zerg/sortviz/internal/store"
)

func testQuestions() []quiz.Question {
	return []quiz.Question{
		{Prompt: "Stable?", Options: []string{"Quick Sort", "Merge Sort"}, Answer: "Merge Sort"},
		{Prompt: "Pivot?", Options: []string{"Last element", "First element"}, Answer: "Last element"},
	}
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		switch k {
		case "enter":
			m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		case "down":
			m.Update(tea.KeyMsg{Type: tea.KeyDown})
		case "up":
			m.Update(tea.KeyMsg{Type: tea.KeyUp})
		default:
			m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		}
	}
}

func TestQuizFlowSavesAttempt(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "sortviz.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	session, err := quiz.NewSession(testQuestions())
	require.NoError(t, err)
	m := NewModel(session, st, nil)

	press(m, "down", "enter")
	assert.True(t, session.Answered())
	assert.True(t, session.LastCorrect())
	assert.Contains(t, m.View(), "Correct!")

	// Cursor movement is locked once answered.
	press(m, "up")
	assert.Equal(t, 1, m.cursor)

	press(m, "n")
	assert.Equal(t, 1, session.Index())
	assert.Equal(t, 0, m.cursor)

	press(m, "down", "enter")
	assert.False(t, session.LastCorrect())
	assert.Contains(t, m.View(), "The answer is Last element.")

	press(m, "enter")
	require.True(t, session.Done())
	assert.Contains(t, m.View(), "Score: 1 / 2 (50%)")

	attempts, err := st.ListQuizAttempts(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, 1, attempts[0].Score)
	assert.Equal(t, 2, attempts[0].Total)
}

func TestNextBeforeAnswerShowsError(t *testing.T) {
	session, err := quiz.NewSession(testQuestions())
	require.NoError(t, err)
	m := NewModel(session, nil, nil)

	press(m, "n")
	assert.Equal(t, 0, session.Index())
	assert.True(t, strings.Contains(m.View(), quiz.ErrNotAnswered.Error()))
}

func TestCursorWraps(t *testing.T) {
	session, err := quiz.NewSession(testQuestions())
	require.NoError(t, err)
	m := NewModel(session, nil, nil)
	press(m, "up")
	assert.Equal(t, 1, m.cursor)
	press(m, "down")
	assert.Equal(t, 0, m.cursor)
}

func TestQuitKeys(t *testing.T) {
	session, err := quiz.NewSession(testQuestions())
	require.NoError(t, err)
	m := NewModel(session, nil, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
