// Package roadmap holds the structured learning roadmap model, the prompt
// that requests it, and the parser that recovers it from model output.
package roadmap

// Roadmap is the structured result of a generation.
// Field tags follow the wire schema the model is asked to produce, so the
// JSON export mirrors the in-memory value exactly.
type Roadmap struct {
	Overview          string         `json:"overview"`
	CareerPaths       []string       `json:"career_paths"`
	AvgSalaryRange    string         `json:"avg_salary_range"`
	Phases            []Phase        `json:"phases"`
	Quiz              []QuizQuestion `json:"quiz"`
	DailySchedule     DailySchedule  `json:"daily_schedule"`
	MotivationalQuote string         `json:"motivational_quote"`
}

// Phase is one stage of the roadmap.
type Phase struct {
	Phase         int        `json:"phase"`
	Title         string     `json:"title"`
	Duration      string     `json:"duration"`
	Topics        []string   `json:"topics"`
	FreeResources []Resource `json:"free_resources"`
	Project       string     `json:"project"`
	SkillsGained  []string   `json:"skills_gained"`
}

// Resource is a free learning resource linked from a phase.
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// QuizQuestion is one multiple-choice question.
// Answer is the full option text; grading is literal string equality.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// DailySchedule splits the learner's day into three study blocks.
type DailySchedule struct {
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

// TotalTopics counts topics across all phases.
func (r *Roadmap) TotalTopics() int {
	n := 0
	for _, p := range r.Phases {
		n += len(p.Topics)
	}
	return n
}
