// Package quiz implements the sorting-algorithm quiz.
package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyAnswered is returned when the current question was answered.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrNotAnswered is returned when moving on before answering.
	ErrNotAnswered = errors.New("question not answered yet")
	// ErrFinished is returned once every question has been handled.
	ErrFinished = errors.New("quiz is finished")
	// ErrInvalidOption is returned for an answer outside the options.
	ErrInvalidOption = errors.New("invalid option")
)

// Question is a single multiple-choice question.
type Question struct {
	Prompt  string
	Options []string
	Answer  string
}

// DefaultQuestions returns the built-in question bank.
func DefaultQuestions() []Question {
	return []Question{
		{
			Prompt:  "Which algorithm is the most efficient on average?",
			Options: []string{"Selection Sort", "Insertion Sort", "Quick Sort", "Merge Sort", "Tim Sort"},
			Answer:  "Quick Sort",
		},
		{
			Prompt:  "Which algorithm uses the divide and conquer principle?",
			Options: []string{"Insertion Sort", "Quick Sort", "Selection Sort", "Bubble Sort"},
			Answer:  "Quick Sort",
		},
		{
			Prompt:  "Which of these algorithms is stable?",
			Options: []string{"Selection Sort", "Quick Sort", "Merge Sort"},
			Answer:  "Merge Sort",
		},
		{
			Prompt:  "Where does this quick sort take its pivot from?",
			Options: []string{"First element", "Middle element", "Last element", "Median of three"},
			Answer:  "Last element",
		},
		{
			Prompt:  "How many comparisons does unoptimised bubble sort make on n sorted elements?",
			Options: []string{"n - 1", "n log n", "n(n-1)/2", "0"},
			Answer:  "n(n-1)/2",
		},
		{
			Prompt:  "Which algorithm performs at most n-1 swaps?",
			Options: []string{"Selection Sort", "Bubble Sort", "Insertion Sort"},
			Answer:  "Selection Sort",
		},
	}
}

// Validate checks that every question has options and a valid answer.
func Validate(questions []Question) error {
	if len(questions) == 0 {
		return errors.New("quiz has no questions")
	}
	for i, q := range questions {
		if len(q.Options) == 0 {
			return fmt.Errorf("question %d has no options", i+1)
		}
		if indexOf(q.Options, q.Answer) < 0 {
			return fmt.Errorf("question %d: answer %q is not an option", i+1, q.Answer)
		}
	}
	return nil
}

// Session walks through a question list, tracking the score.
type Session struct {
	questions []Question
	current   int
	answered  bool
	lastOK    bool
	score     int
}

// NewSession validates questions and starts at the first one.
func NewSession(questions []Question) (*Session, error) {
	if err := Validate(questions); err != nil {
		return nil, err
	}
	return &Session{questions: questions}, nil
}

// Current returns the question being asked. ok is false once finished.
func (s *Session) Current() (q Question, ok bool) {
	if s.Done() {
		return Question{}, false
	}
	return s.questions[s.current], true
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int {
	return s.current
}

// Total returns the number of questions.
func (s *Session) Total() int {
	return len(s.questions)
}

// Answered reports whether the current question has been submitted.
func (s *Session) Answered() bool {
	return s.answered
}

// LastCorrect reports whether the latest submission was correct.
func (s *Session) LastCorrect() bool {
	return s.lastOK
}

// Submit answers the current question with option.
func (s *Session) Submit(option string) (bool, error) {
	q, ok := s.Current()
	if !ok {
		return false, ErrFinished
	}
	if s.answered {
		return false, ErrAlreadyAnswered
	}
	if indexOf(q.Options, option) < 0 {
		return false, fmt.Errorf("%w: %q", ErrInvalidOption, option)
	}
	s.answered = true
	s.lastOK = option == q.Answer
	if s.lastOK {
		s.score++
	}
	return s.lastOK, nil
}

// Next advances past an answered question. It returns false when the quiz
// is finished.
func (s *Session) Next() (bool, error) {
	if s.Done() {
		return false, ErrFinished
	}
	if !s.answered {
		return false, ErrNotAnswered
	}
	s.current++
	s.answered = false
	s.lastOK = false
	return !s.Done(), nil
}

// Done reports whether all questions were handled.
func (s *Session) Done() bool {
	return s.current >= len(s.questions)
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int {
	return s.score
}

func indexOf(options []string, v string) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return -1
}

// Shuffled returns a copy of questions reordered by shuffle, which has the
// signature of rand.Shuffle. Options inside each question keep their order.
func Shuffled(questions []Question, shuffle func(n int, swap func(i, j int))) []Question {
	out := append([]Question(nil), questions...)
	shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
