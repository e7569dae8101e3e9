package radar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/roadmapper/internal/roadmap"
)

func fixedRatio(ratios map[int]float64) func(roadmap.Phase) float64 {
	return func(p roadmap.Phase) float64 { return ratios[p.Phase] }
}

func TestScoresAccumulate(t *testing.T) {
	phases := []roadmap.Phase{
		{Phase: 1, SkillsGained: []string{"python", "stats"}},
		{Phase: 2, SkillsGained: []string{"python", "ml"}},
	}

	scores := Scores(phases, fixedRatio(map[int]float64{1: 0.5, 2: 0.25}))
	require.Len(t, scores, 3)

	assert.Equal(t, Score{"python", 75}, scores[0])
	assert.Equal(t, Score{"stats", 50}, scores[1])
	assert.Equal(t, Score{"ml", 25}, scores[2])
}

func TestScoresCappedAt100(t *testing.T) {
	// A skill taught in three fully-completed phases sums to 3.0 raw;
	// it must report exactly 100, never higher.
	phases := []roadmap.Phase{
		{Phase: 1, SkillsGained: []string{"git"}},
		{Phase: 2, SkillsGained: []string{"git"}},
		{Phase: 3, SkillsGained: []string{"git"}},
	}

	scores := Scores(phases, fixedRatio(map[int]float64{1: 1, 2: 1, 3: 1}))
	require.Len(t, scores, 1)
	assert.Equal(t, 100.0, scores[0].Value)
}

func TestScoresFirstEightFirstSeen(t *testing.T) {
	phases := []roadmap.Phase{
		{Phase: 1, SkillsGained: []string{"s1", "s2", "s3", "s4", "s5"}},
		{Phase: 2, SkillsGained: []string{"s6", "s1", "s7", "s8", "s9", "s10"}},
	}

	scores := Scores(phases, fixedRatio(nil))
	require.Len(t, scores, MaxSkills)

	got := make([]string, len(scores))
	for i, s := range scores {
		got[i] = s.Skill
	}
	assert.Equal(t, []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8"}, got)
}

func TestScoresNoSkills(t *testing.T) {
	phases := []roadmap.Phase{{Phase: 1, Topics: []string{"a"}}}
	assert.Nil(t, Scores(phases, fixedRatio(nil)))
}
