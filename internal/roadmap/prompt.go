package roadmap

import (
	"fmt"
	"strings"

	"github.com/arjun/roadmapper/internal/profile"
)

// BuildPrompt constructs the structured-generation prompt for a profile.
// The schema block mirrors the wire format in types.go.
func BuildPrompt(p profile.Profile) string {
	goal := p.Goal
	if goal == "" {
		goal = "General learning"
	}

	styles := make([]string, len(p.LearningStyles))
	for i, s := range p.LearningStyles {
		styles[i] = string(s)
	}

	var b strings.Builder
	b.WriteString("You are an expert educational counselor. Return ONLY valid JSON (no markdown, no explanation).\n\n")
	b.WriteString("Create a learning roadmap for:\n")
	fmt.Fprintf(&b, "- Area: %s\n", p.AreaOfInterest)
	fmt.Fprintf(&b, "- Qualification: %s\n", p.Qualification)
	fmt.Fprintf(&b, "- Daily Time: %g hours\n", p.DailyHours)
	fmt.Fprintf(&b, "- Duration: %s\n", p.Duration)
	fmt.Fprintf(&b, "- Level: %s\n", p.Experience)
	fmt.Fprintf(&b, "- Learning Style: %s\n", strings.Join(styles, ", "))
	fmt.Fprintf(&b, "- Goal: %s\n\n", goal)
	b.WriteString("JSON schema (fill all fields with real content):\n")
	b.WriteString(`{
  "overview": "2-3 sentence overview of the field",
  "career_paths": ["role1", "role2", "role3", "role4"],
  "avg_salary_range": "e.g. $60k-120k",
  "phases": [
    {
      "phase": 1,
      "title": "Phase title",
      "duration": "e.g. 2 weeks",
      "topics": ["topic1", "topic2", "topic3"],
      "free_resources": [
        {"name": "resource name", "url": "https://...", "type": "Video/Course/Docs"}
      ],
      "project": "A concrete mini-project to build",
      "skills_gained": ["skill1", "skill2"]
    }
  ],
  "quiz": [
    {
      "question": "Question text?",
      "options": ["A) ...", "B) ...", "C) ...", "D) ..."],
      "answer": "A) ...",
      "explanation": "Why this is correct"
    }
  ],
  "daily_schedule": {
    "morning": "30-min activity",
    "afternoon": "1-hour activity",
    "evening": "30-min activity"
  },
  "motivational_quote": "An inspiring quote relevant to learning `)
	b.WriteString(p.AreaOfInterest)
	b.WriteString(`"
}
`)
	b.WriteString("\nReturn 4-6 phases and 5 quiz questions. All resources must be real and free.\n")
	return b.String()
}

// BuildFallbackPrompt constructs the plain-text prompt used when the
// structured response cannot be parsed.
func BuildFallbackPrompt(p profile.Profile) string {
	return fmt.Sprintf(
		"Create a detailed learning roadmap for %s.\n"+
			"Qualification: %s, Level: %s,\n"+
			"Duration: %s, Daily time: %gh.\n"+
			"Include phases, free resources, projects, and career paths.\n",
		p.AreaOfInterest, p.Qualification, p.Experience, p.Duration, p.DailyHours,
	)
}
