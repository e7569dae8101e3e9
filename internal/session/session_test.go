package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/roadmapper/internal/profile"
	"github.com/arjun/roadmapper/internal/quiz"
	"github.com/arjun/roadmapper/internal/roadmap"
)

func testRoadmap() *roadmap.Roadmap {
	return &roadmap.Roadmap{
		Overview: "Learn things.",
		Phases: []roadmap.Phase{
			{
				Phase:        1,
				Title:        "Basics",
				Duration:     "2 weeks",
				Topics:       []string{"intro", "setup"},
				SkillsGained: []string{"fundamentals"},
			},
			{
				Phase:        2,
				Title:        "Practice",
				Duration:     "1 month",
				Topics:       []string{"project"},
				SkillsGained: []string{"fundamentals", "building"},
			},
		},
		Quiz: []roadmap.QuizQuestion{
			{Question: "Q1?", Options: []string{"A", "B"}, Answer: "A"},
			{Question: "Q2?", Options: []string{"A", "B"}, Answer: "B"},
		},
	}
}

func testProfile() profile.Profile {
	p := profile.Default()
	p.AreaOfInterest = "Web Development"
	return p
}

func TestApplyStructuredResult(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	s.ApplyResult(ctx, testProfile(), &roadmap.Result{Roadmap: testRoadmap()})

	assert.Equal(t, 50, s.XP)
	assert.False(t, s.Basic())
	assert.True(t, s.HasContent())
	assert.Equal(t, quiz.InProgress, s.Quiz.State())
	assert.Equal(t, 0, s.CompletedCount())
}

func TestApplyBasicResultAwardsNoXP(t *testing.T) {
	s := New(nil)

	s.ApplyResult(context.Background(), testProfile(), &roadmap.Result{RawText: "plain roadmap"})

	assert.Zero(t, s.XP)
	assert.True(t, s.Basic())
	assert.Equal(t, quiz.NotStarted, s.Quiz.State())
}

func TestRegenerationResetsProgressNotXP(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	s.ApplyResult(ctx, testProfile(), &roadmap.Result{Roadmap: testRoadmap()})
	s.ToggleTopic(ctx, "intro")
	require.Equal(t, 60, s.XP)

	s.ApplyResult(ctx, testProfile(), &roadmap.Result{Roadmap: testRoadmap()})

	assert.Equal(t, 0, s.CompletedCount())
	assert.False(t, s.TopicCompleted("intro"))
	assert.Equal(t, 110, s.XP) // accumulates across generations
	assert.Equal(t, 2, s.Generations())
}

func TestToggleTopicXP(t *testing.T) {
	s := New(nil)
	ctx := context.Background()
	s.ApplyResult(ctx, testProfile(), &roadmap.Result{Roadmap: testRoadmap()})

	s.ToggleTopic(ctx, "intro")
	assert.Equal(t, 60, s.XP)
	assert.True(t, s.TopicCompleted("intro"))

	// Unchecking never claws XP back.
	s.ToggleTopic(ctx, "intro")
	assert.Equal(t, 60, s.XP)
	assert.False(t, s.TopicCompleted("intro"))

	// Re-completing awards again, matching one award per completion event.
	s.ToggleTopic(ctx, "intro")
	assert.Equal(t, 70, s.XP)
}

func TestSetTopicCompletedIdempotent(t *testing.T) {
	s := New(nil)
	ctx := context.Background()
	s.ApplyResult(ctx, testProfile(), &roadmap.Result{Roadmap: testRoadmap()})

	s.SetTopicCompleted(ctx, "intro", true)
	s.SetTopicCompleted(ctx, "intro", true)
	assert.Equal(t, 60, s.XP)
	assert.Equal(t, 1, s.CompletedCount())

	s.SetTopicCompleted(ctx, "intro", false)
	s.SetTopicCompleted(ctx, "intro", false)
	assert.Equal(t, 60, s.XP)
	assert.Equal(t, 0, s.CompletedCount())
}

func TestSubmitQuizAnswerXP(t *testing.T) {
	s := New(nil)
	ctx := context.Background()
	s.ApplyResult(ctx, testProfile(), &roadmap.Result{Roadmap: testRoadmap()})

	res, err := s.SubmitQuizAnswer(ctx, "A")
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, 70, s.XP)

	res, err = s.SubmitQuizAnswer(ctx, "A")
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.True(t, res.Finished)
	assert.Equal(t, 70, s.XP)

	assert.Equal(t, quiz.Done, s.Quiz.State())
	assert.Equal(t, 1, s.Quiz.Score())
}

func TestRetryQuizKeepsXP(t *testing.T) {
	s := New(nil)
	ctx := context.Background()
	s.ApplyResult(ctx, testProfile(), &roadmap.Result{Roadmap: testRoadmap()})

	_, _ = s.SubmitQuizAnswer(ctx, "A")
	_, _ = s.SubmitQuizAnswer(ctx, "B")
	require.Equal(t, 90, s.XP)

	s.RetryQuiz()

	assert.Equal(t, quiz.InProgress, s.Quiz.State())
	assert.Equal(t, 0, s.Quiz.Score())
	assert.Equal(t, 90, s.XP)
}

func TestProgressPercent(t *testing.T) {
	s := New(nil)
	ctx := context.Background()
	s.ApplyResult(ctx, testProfile(), &roadmap.Result{Roadmap: testRoadmap()})

	assert.Equal(t, 0, s.ProgressPercent())

	s.ToggleTopic(ctx, "intro")
	assert.Equal(t, 33, s.ProgressPercent())

	s.ToggleTopic(ctx, "setup")
	s.ToggleTopic(ctx, "project")
	assert.Equal(t, 100, s.ProgressPercent())
}

func TestPhaseCompletionRatio(t *testing.T) {
	s := New(nil)
	ctx := context.Background()
	rm := testRoadmap()
	s.ApplyResult(ctx, testProfile(), &roadmap.Result{Roadmap: rm})

	assert.Zero(t, s.PhaseCompletionRatio(rm.Phases[0]))

	s.ToggleTopic(ctx, "intro")
	assert.InDelta(t, 0.5, s.PhaseCompletionRatio(rm.Phases[0]), 1e-9)

	// Phase with no topics reads zero rather than dividing by zero.
	assert.Zero(t, s.PhaseCompletionRatio(roadmap.Phase{}))
}
