package quiz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/denisok6893-rgb/commstyle-assessment/internal/domain"
)

var (
	ErrMissingName   = errors.New("please enter your name to begin the assessment")
	ErrNotStarted    = errors.New("assessment not started")
	ErrInvalidAnswer = errors.New("answer out of range")
	ErrIncomplete    = errors.New("current question has no answer")
	ErrFinished      = errors.New("assessment already finished")
	ErrStarted       = errors.New("assessment already started")
)

// Scorer turns a complete answer vector into results.
type Scorer interface {
	Compute(answers domain.Answers) (domain.ScoreResult, error)
}

type Phase int

const (
	PhaseIntro Phase = iota
	PhaseQuestions
	PhaseResults
)

// Session is the state of one participant walking through the questions.
// It is not safe for concurrent use.
type Session struct {
	id          string
	scorer      Scorer
	phase       Phase
	participant string
	index       int
	answers     [domain.QuestionCount]int
	result      *domain.ScoreResult
}

func NewSession(scorer Scorer) *Session {
	return &Session{id: uuid.NewString(), scorer: scorer}
}

func (s *Session) ID() string          { return s.id }
func (s *Session) Phase() Phase        { return s.phase }
func (s *Session) Participant() string { return s.participant }
func (s *Session) Index() int          { return s.index }

// Start records the participant name and moves to the first question.
// It only works from the intro phase; call Reset to run the quiz again.
func (s *Session) Start(name string) error {
	if s.phase != PhaseIntro {
		return ErrStarted
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrMissingName
	}
	s.participant = name
	s.phase = PhaseQuestions
	s.index = 0
	return nil
}

// Current returns the question being asked and its stored answer (0 if none).
func (s *Session) Current() (domain.Question, int) {
	q, _ := domain.QuestionAt(s.index)
	return q, s.answers[s.index]
}

// Select stores an answer for the current question.
func (s *Session) Select(value int) error {
	if s.phase != PhaseQuestions {
		return ErrNotStarted
	}
	if value < domain.MinAnswer || value > domain.MaxAnswer {
		return fmt.Errorf("%w: %d", ErrInvalidAnswer, value)
	}
	s.answers[s.index] = value
	return nil
}

// CanAdvance reports whether "next" (or "submit") is enabled.
func (s *Session) CanAdvance() bool {
	return s.phase == PhaseQuestions && s.answers[s.index] != 0
}

// CanGoBack reports whether "previous" is enabled.
func (s *Session) CanGoBack() bool {
	return s.phase == PhaseQuestions && s.index > 0
}

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool {
	return s.index == domain.QuestionCount-1
}

// Progress is the progress bar fill in percent.
func (s *Session) Progress() float64 {
	if s.phase == PhaseIntro {
		return 0
	}
	return float64(s.index+1) / domain.QuestionCount * 100
}

func (s *Session) Previous() {
	if s.CanGoBack() {
		s.index--
	}
}

// Next moves forward. On the last question it scores the answers and returns
// the result; the scorer runs once per completed session.
func (s *Session) Next() (*domain.ScoreResult, error) {
	switch s.phase {
	case PhaseIntro:
		return nil, ErrNotStarted
	case PhaseResults:
		return nil, ErrFinished
	}
	if !s.CanAdvance() {
		return nil, ErrIncomplete
	}
	if !s.IsLast() {
		s.index++
		return nil, nil
	}

	res, err := s.scorer.Compute(s.Answers())
	if err != nil {
		return nil, fmt.Errorf("compute results: %w", err)
	}
	s.result = &res
	s.phase = PhaseResults
	return s.result, nil
}

// Answers returns a copy of the answer store.
func (s *Session) Answers() domain.Answers {
	out := make(domain.Answers, domain.QuestionCount)
	copy(out, s.answers[:])
	return out
}

// Result is nil until the last question has been submitted.
func (s *Session) Result() *domain.ScoreResult {
	return s.result
}

// Reset clears everything and returns to the intro; the session keeps its ID.
func (s *Session) Reset() {
	s.phase = PhaseIntro
	s.participant = ""
	s.index = 0
	s.answers = [domain.QuestionCount]int{}
	s.result = nil
}
