// Package session holds the in-memory state of one learning session:
// the generated roadmap, topic progress, quiz state, and XP.
//
// Session state lives only for the process lifetime. The event journal
// records XP awards for cross-session stats, but nothing here is reloaded
// from it.
package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/arjun/roadmapper/internal/profile"
	"github.com/arjun/roadmapper/internal/quiz"
	"github.com/arjun/roadmapper/internal/roadmap"
	"github.com/arjun/roadmapper/internal/xp"
)

// State is the mutable session aggregate. It is not safe for concurrent
// use; the TUI event loop owns it.
type State struct {
	ID             string
	Profile        profile.Profile
	Roadmap        *roadmap.Roadmap
	RawText        string
	Quiz           *quiz.Machine
	XP             int
	completed      map[string]bool
	xpService      *xp.Service
	generatedCount int
}

// New creates an empty session. xpService may be nil to disable journaling.
func New(xpService *xp.Service) *State {
	return &State{
		ID:        uuid.NewString(),
		Quiz:      quiz.New(nil),
		completed: make(map[string]bool),
		xpService: xpService,
	}
}

// ApplyResult installs a generation result, resetting topic progress and
// the quiz. A structured roadmap awards generation XP; basic mode does not.
func (s *State) ApplyResult(ctx context.Context, p profile.Profile, res *roadmap.Result) {
	s.Profile = p
	s.Roadmap = res.Roadmap
	s.RawText = res.RawText
	s.completed = make(map[string]bool)
	s.generatedCount++

	if res.Roadmap != nil {
		s.Quiz = quiz.New(res.Roadmap.Quiz)
		s.award(ctx, xp.RewardGenerate, xp.ReasonGenerate)
	} else {
		s.Quiz = quiz.New(nil)
	}
}

// Basic reports whether the session only has plain-text content.
func (s *State) Basic() bool {
	return s.Roadmap == nil && s.RawText != ""
}

// HasContent reports whether any generation has succeeded.
func (s *State) HasContent() bool {
	return s.Roadmap != nil || s.RawText != ""
}

// Generations returns how many times a result was applied this session.
func (s *State) Generations() int { return s.generatedCount }

// TopicCompleted reports whether a topic has been checked off.
func (s *State) TopicCompleted(topic string) bool {
	return s.completed[topic]
}

// CompletedCount returns the number of distinct completed topics.
func (s *State) CompletedCount() int { return len(s.completed) }

// ToggleTopic flips a topic's completion state.
func (s *State) ToggleTopic(ctx context.Context, topic string) {
	s.SetTopicCompleted(ctx, topic, !s.completed[topic])
}

// SetTopicCompleted marks a topic done or not done. Setting an already-done
// topic done again is a no-op, so repeated checks award XP at most once per
// completion event. Unchecking never claws XP back.
func (s *State) SetTopicCompleted(ctx context.Context, topic string, done bool) {
	if !done {
		delete(s.completed, topic)
		return
	}
	if s.completed[topic] {
		return
	}
	s.completed[topic] = true
	s.award(ctx, xp.RewardTopic, xp.ReasonTopic)
}

// ProgressPercent returns overall topic completion as a whole percentage.
func (s *State) ProgressPercent() int {
	if s.Roadmap == nil {
		return 0
	}
	total := s.Roadmap.TotalTopics()
	if total == 0 {
		return 0
	}
	return len(s.completed) * 100 / total
}

// PhaseCompletionRatio returns the fraction of a phase's topics completed,
// in [0, 1]. A phase with no topics reads as zero.
func (s *State) PhaseCompletionRatio(p roadmap.Phase) float64 {
	if len(p.Topics) == 0 {
		return 0
	}
	done := 0
	for _, t := range p.Topics {
		if s.completed[t] {
			done++
		}
	}
	return float64(done) / float64(len(p.Topics))
}

// SubmitQuizAnswer grades a choice through the quiz machine. A correct
// answer awards XP.
func (s *State) SubmitQuizAnswer(ctx context.Context, choice string) (quiz.SubmitResult, error) {
	res, err := s.Quiz.Submit(choice)
	if err != nil {
		return res, err
	}
	if res.Correct {
		s.award(ctx, xp.RewardCorrectAnswer, xp.ReasonCorrectAnswer)
	}
	return res, nil
}

// RetryQuiz restarts the quiz over the same questions. Score and index
// reset; XP earned on previous runs is kept.
func (s *State) RetryQuiz() {
	s.Quiz.Retry()
}

func (s *State) award(ctx context.Context, amount int, reason string) {
	s.XP += amount
	if s.xpService != nil {
		s.xpService.Award(ctx, s.ID, amount, reason)
	}
}
