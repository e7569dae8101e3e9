package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/roadmapper/internal/roadmap"
)

func questions(n int) []roadmap.QuizQuestion {
	qs := make([]roadmap.QuizQuestion, n)
	for i := range qs {
		qs[i] = roadmap.QuizQuestion{
			Question:    fmt.Sprintf("Question %d?", i+1),
			Options:     []string{"A) yes", "B) no"},
			Answer:      "A) yes",
			Explanation: "Because.",
		}
	}
	return qs
}

func TestEmptyMachineNotStarted(t *testing.T) {
	m := New(nil)
	assert.Equal(t, NotStarted, m.State())
	assert.Nil(t, m.Current())

	_, err := m.Submit("A) yes")
	assert.ErrorIs(t, err, ErrNotInProgress)
}

func TestSubmitAdvancesAndTerminates(t *testing.T) {
	m := New(questions(3))
	require.Equal(t, InProgress, m.State())

	// Any 3 submissions drive the machine to Done exactly once.
	answers := []string{"A) yes", "B) no", "garbage"}
	for i, a := range answers {
		res, err := m.Submit(a)
		require.NoError(t, err)
		assert.Equal(t, i == len(answers)-1, res.Finished)
	}

	assert.Equal(t, Done, m.State())
	assert.Equal(t, 3, m.Index())
	assert.Equal(t, 1, m.Score())

	_, err := m.Submit("A) yes")
	assert.ErrorIs(t, err, ErrNotInProgress)
}

func TestGradingIsLiteralEquality(t *testing.T) {
	m := New(questions(1))

	// Case and whitespace differences do not count as correct.
	res, err := m.Submit("a) yes")
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Equal(t, "A) yes", res.Answer)
	assert.Equal(t, 0, m.Score())
}

func TestScoreBound(t *testing.T) {
	m := New(questions(5))
	correct := 0
	for i := 0; i < 5; i++ {
		choice := "B) no"
		if i%2 == 0 {
			choice = "A) yes"
			correct++
		}
		_, err := m.Submit(choice)
		require.NoError(t, err)
	}

	assert.Equal(t, Done, m.State())
	assert.Equal(t, correct, m.Score())
	assert.LessOrEqual(t, m.Score(), m.Total())
}

func TestRetryResets(t *testing.T) {
	m := New(questions(2))
	_, _ = m.Submit("A) yes")
	_, _ = m.Submit("A) yes")
	require.Equal(t, Done, m.State())

	m.Retry()

	assert.Equal(t, InProgress, m.State())
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, 0, m.Score())
	require.NotNil(t, m.Current())
	assert.Equal(t, "Question 1?", m.Current().Question)
}

func TestVerdictBands(t *testing.T) {
	tests := []struct {
		correct int
		total   int
		want    string
	}{
		{5, 5, "Excellent! You have a strong foundation!"},
		{4, 5, "Excellent! You have a strong foundation!"},
		{3, 5, "Good effort! Review the roadmap and retry."},
		{2, 5, "Keep learning! Revisit the basics and try again."},
		{0, 5, "Keep learning! Revisit the basics and try again."},
	}

	for _, tt := range tests {
		m := New(questions(tt.total))
		for i := 0; i < tt.total; i++ {
			choice := "B) no"
			if i < tt.correct {
				choice = "A) yes"
			}
			_, err := m.Submit(choice)
			require.NoError(t, err)
		}
		assert.Equal(t, tt.want, m.Verdict(), "%d/%d", tt.correct, tt.total)
	}
}
