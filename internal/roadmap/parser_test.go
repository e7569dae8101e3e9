package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBareJSON(t *testing.T) {
	rm, err := Parse(`{"overview": "x", "phases": []}`)
	require.NoError(t, err)
	assert.Equal(t, "x", rm.Overview)
}

func TestParseStripsFences(t *testing.T) {
	rm, err := Parse("```json\n{\"overview\":\"x\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "x", rm.Overview)
}

func TestParseStripsBareFences(t *testing.T) {
	rm, err := Parse("```\n{\"overview\":\"y\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "y", rm.Overview)
}

func TestParseNotJSON(t *testing.T) {
	rm, err := Parse("not json at all")
	assert.Nil(t, rm)
	assert.ErrorIs(t, err, ErrUnstructured)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse("   \n\t ")
	assert.ErrorIs(t, err, ErrUnstructured)
}

func TestParseNull(t *testing.T) {
	rm, err := Parse("null")
	assert.Nil(t, rm)
	assert.ErrorIs(t, err, ErrUnstructured)
}

func TestParseNonObject(t *testing.T) {
	for _, raw := range []string{`[1, 2, 3]`, `"just a string"`, `42`} {
		_, err := Parse(raw)
		assert.ErrorIs(t, err, ErrUnstructured, "input: %s", raw)
	}
}

func TestParseFullDocument(t *testing.T) {
	raw := `{
		"overview": "Web development fundamentals.",
		"career_paths": ["Frontend Dev", "Backend Dev"],
		"avg_salary_range": "$60k-120k",
		"phases": [
			{
				"phase": 1,
				"title": "HTML & CSS",
				"duration": "2 weeks",
				"topics": ["HTML basics", "CSS selectors"],
				"free_resources": [
					{"name": "MDN", "url": "https://developer.mozilla.org", "type": "Docs"}
				],
				"project": "Personal portfolio page",
				"skills_gained": ["HTML", "CSS"]
			}
		],
		"quiz": [
			{
				"question": "What does CSS stand for?",
				"options": ["A) Cascading Style Sheets", "B) Creative Style System"],
				"answer": "A) Cascading Style Sheets",
				"explanation": "CSS is Cascading Style Sheets."
			}
		],
		"daily_schedule": {"morning": "Read docs", "afternoon": "Build", "evening": "Review"},
		"motivational_quote": "Keep shipping."
	}`

	rm, err := Parse(raw)
	require.NoError(t, err)

	require.Len(t, rm.Phases, 1)
	assert.Equal(t, "HTML & CSS", rm.Phases[0].Title)
	assert.Len(t, rm.Phases[0].FreeResources, 1)
	require.Len(t, rm.Quiz, 1)
	assert.Equal(t, "A) Cascading Style Sheets", rm.Quiz[0].Answer)
	assert.Equal(t, "Build", rm.DailySchedule.Afternoon)
	assert.Equal(t, 2, rm.TotalTopics())
}
