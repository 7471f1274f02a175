package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQuestionsAreValid(t *testing.T) {
	require.NoError(t, Validate(DefaultQuestions()))
}

func TestValidateRejectsBadAnswer(t *testing.T) {
	err := Validate([]Question{{Prompt: "?", Options: []string{"a"}, Answer: "b"}})
	require.Error(t, err)
	require.Error(t, Validate(nil))
}

func TestSessionFlow(t *testing.T) {
	s, err := NewSession([]Question{
		{Prompt: "one", Options: []string{"a", "b"}, Answer: "a"},
		{Prompt: "two", Options: []string{"c", "d"}, Answer: "d"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Total())

	_, err = s.Next()
	require.ErrorIs(t, err, ErrNotAnswered)

	ok, err := s.Submit("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, s.LastCorrect())

	_, err = s.Submit("b")
	require.ErrorIs(t, err, ErrAlreadyAnswered)

	more, err := s.Next()
	require.NoError(t, err)
	assert.True(t, more)
	q, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "two", q.Prompt)

	_, err = s.Submit("zzz")
	require.ErrorIs(t, err, ErrInvalidOption)

	ok, err = s.Submit("c")
	require.NoError(t, err)
	assert.False(t, ok)

	more, err = s.Next()
	require.NoError(t, err)
	assert.False(t, more)
	assert.True(t, s.Done())
	assert.Equal(t, 1, s.Score())

	_, err = s.Submit("c")
	require.ErrorIs(t, err, ErrFinished)
	_, ok = s.Current()
	assert.False(t, ok)
}

func TestShuffledCopies(t *testing.T) {
	questions := DefaultQuestions()
	reversed := Shuffled(questions, func(n int, swap func(i, j int)) {
		for i := 0; i < n/2; i++ {
			swap(i, n-1-i)
		}
	})
	require.Len(t, reversed, len(questions))
	assert.Equal(t, questions[0].Prompt, reversed[len(reversed)-1].Prompt)
	assert.Equal(t, DefaultQuestions()[0].Prompt, questions[0].Prompt)
}
