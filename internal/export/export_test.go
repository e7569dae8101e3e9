package export

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/roadmapper/internal/roadmap"
)

func sampleRoadmap() *roadmap.Roadmap {
	return &roadmap.Roadmap{
		Overview:       "A short overview.",
		CareerPaths:    []string{"Analyst", "Engineer"},
		AvgSalaryRange: "$70k-130k",
		Phases: []roadmap.Phase{
			{
				Phase:    1,
				Title:    "Foundations",
				Duration: "3 weeks",
				Topics:   []string{"syntax", "tooling"},
				FreeResources: []roadmap.Resource{
					{Name: "Official Tour", URL: "https://example.org/tour", Type: "Docs"},
				},
				Project:      "CLI todo app",
				SkillsGained: []string{"basics"},
			},
		},
		Quiz: []roadmap.QuizQuestion{
			{Question: "Q?", Options: []string{"A", "B"}, Answer: "A", Explanation: "Because."},
		},
		DailySchedule:     roadmap.DailySchedule{Morning: "read", Afternoon: "code", Evening: "review"},
		MotivationalQuote: "Onward.",
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown("Data Science", sampleRoadmap())

	assert.Contains(t, md, "# Data Science Learning Roadmap")
	assert.Contains(t, md, "**Career Paths:** Analyst, Engineer")
	assert.Contains(t, md, "## Phase 1: Foundations (3 weeks)")
	assert.Contains(t, md, "- syntax")
	assert.Contains(t, md, "[Official Tour](https://example.org/tour)")
	assert.Contains(t, md, "CLI todo app")
}

func TestJSONRoundTrip(t *testing.T) {
	rm := sampleRoadmap()

	data, err := JSON(rm)
	require.NoError(t, err)

	var back roadmap.Roadmap
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *rm, back)
}

func TestJSONIndent(t *testing.T) {
	data, err := JSON(sampleRoadmap())
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"overview\"")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Web_Development_roadmap.md", Filename("Web Development", "md"))
	assert.Equal(t, "ML_roadmap.json", Filename("ML", "json"))
}
