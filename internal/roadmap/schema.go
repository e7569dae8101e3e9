package roadmap

import "github.com/arjun/roadmapper/internal/llm"

// ResponseSchema describes the structured roadmap for providers that
// support JSON-schema output. Only overview and phases are required: the
// rest of the document degrades gracefully when absent, and a strict
// required list makes smaller models fail generation entirely.
func ResponseSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "learning-roadmap",
		Description: "A phased learning roadmap with resources, quiz, and daily schedule",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"overview":         map[string]any{"type": "string"},
				"career_paths":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"avg_salary_range": map[string]any{"type": "string"},
				"phases": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"phase":    map[string]any{"type": "integer"},
							"title":    map[string]any{"type": "string"},
							"duration": map[string]any{"type": "string"},
							"topics":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							"free_resources": map[string]any{
								"type": "array",
								"items": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"name": map[string]any{"type": "string"},
										"url":  map[string]any{"type": "string"},
										"type": map[string]any{"type": "string"},
									},
								},
							},
							"project":       map[string]any{"type": "string"},
							"skills_gained": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						},
						"required": []any{"phase", "title", "duration", "topics"},
					},
				},
				"quiz": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question":    map[string]any{"type": "string"},
							"options":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							"answer":      map[string]any{"type": "string"},
							"explanation": map[string]any{"type": "string"},
						},
						"required": []any{"question", "options", "answer"},
					},
				},
				"daily_schedule": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"morning":   map[string]any{"type": "string"},
						"afternoon": map[string]any{"type": "string"},
						"evening":   map[string]any{"type": "string"},
					},
				},
				"motivational_quote": map[string]any{"type": "string"},
			},
			"required": []any{"overview", "phases"},
		},
	}
}
