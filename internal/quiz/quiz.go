// Package quiz implements the multiple-choice quiz state machine.
package quiz

import (
	"errors"

	"github.com/arjun/roadmapper/internal/roadmap"
)

// State is the quiz lifecycle state.
type State int

const (
	// NotStarted means no questions are loaded.
	NotStarted State = iota
	// InProgress means at least one question remains unanswered.
	InProgress
	// Done means every question has been answered.
	Done
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// ErrNotInProgress is returned by Submit outside the InProgress state.
var ErrNotInProgress = errors.New("quiz is not in progress")

// SubmitResult reports the outcome of one answer submission.
type SubmitResult struct {
	Correct     bool
	Answer      string
	Explanation string
	// Finished is true when this submission was the last one.
	Finished bool
}

// Machine walks a fixed question list exactly once per run.
// Submitting an answer grades it and advances to the next question in the
// same step; there is no separate advance action. Answers cannot be
// revisited or changed.
type Machine struct {
	questions []roadmap.QuizQuestion
	index     int
	score     int
	done      bool
}

// New creates a Machine over the given questions. With no questions the
// machine stays in NotStarted and rejects submissions.
func New(questions []roadmap.QuizQuestion) *Machine {
	return &Machine{questions: questions}
}

// State returns the current lifecycle state.
func (m *Machine) State() State {
	switch {
	case len(m.questions) == 0:
		return NotStarted
	case m.done:
		return Done
	default:
		return InProgress
	}
}

// Current returns the question awaiting an answer, or nil outside InProgress.
func (m *Machine) Current() *roadmap.QuizQuestion {
	if m.State() != InProgress {
		return nil
	}
	return &m.questions[m.index]
}

// Index returns the number of questions answered so far.
func (m *Machine) Index() int { return m.index }

// Score returns the number of correct answers so far.
func (m *Machine) Score() int { return m.score }

// Total returns the number of questions.
func (m *Machine) Total() int { return len(m.questions) }

// Submit grades choice against the current question and advances.
// Grading is literal string equality with the question's answer text.
func (m *Machine) Submit(choice string) (SubmitResult, error) {
	if m.State() != InProgress {
		return SubmitResult{}, ErrNotInProgress
	}

	q := m.questions[m.index]
	correct := choice == q.Answer
	if correct {
		m.score++
	}

	m.index++
	if m.index >= len(m.questions) {
		m.done = true
	}

	return SubmitResult{
		Correct:     correct,
		Answer:      q.Answer,
		Explanation: q.Explanation,
		Finished:    m.done,
	}, nil
}

// Retry resets index and score so the same questions can be taken again.
// It is a no-op in NotStarted.
func (m *Machine) Retry() {
	m.index = 0
	m.score = 0
	m.done = false
}

// Percent returns the score as a whole percentage of total questions.
func (m *Machine) Percent() int {
	if len(m.questions) == 0 {
		return 0
	}
	return m.score * 100 / len(m.questions)
}

// Verdict returns the encouragement line for a completed quiz.
func (m *Machine) Verdict() string {
	switch pct := m.Percent(); {
	case pct >= 80:
		return "Excellent! You have a strong foundation!"
	case pct >= 50:
		return "Good effort! Review the roadmap and retry."
	default:
		return "Keep learning! Revisit the basics and try again."
	}
}
