// Package profile defines the learner profile that drives roadmap generation.
package profile

import "fmt"

// Qualification is the learner's current education level.
type Qualification string

const (
	Qual10thGrade    Qualification = "10th Grade"
	Qual12thGrade    Qualification = "12th Grade"
	QualUndergrad    Qualification = "Undergraduate"
	QualGraduate     Qualification = "Graduate"
	QualPostGraduate Qualification = "Post Graduate"
	QualOther        Qualification = "Other"
)

// Qualifications lists the selectable education levels in display order.
var Qualifications = []Qualification{
	Qual10thGrade,
	Qual12thGrade,
	QualUndergrad,
	QualGraduate,
	QualPostGraduate,
	QualOther,
}

// Duration is the total time the learner wants the roadmap to span.
type Duration string

const (
	Duration1Month  Duration = "1 Month"
	Duration3Months Duration = "3 Months"
	Duration6Months Duration = "6 Months"
	Duration1Year   Duration = "1 Year"
)

// Durations lists the selectable roadmap durations in display order.
var Durations = []Duration{
	Duration1Month,
	Duration3Months,
	Duration6Months,
	Duration1Year,
}

// Experience is the learner's prior exposure to the target area.
type Experience string

const (
	ExperienceBeginner      Experience = "Complete Beginner"
	ExperienceSomeKnowledge Experience = "Some Knowledge"
	ExperienceIntermediate  Experience = "Intermediate"
	ExperienceAdvanced      Experience = "Advanced"
)

// Experiences lists the selectable experience levels in display order.
var Experiences = []Experience{
	ExperienceBeginner,
	ExperienceSomeKnowledge,
	ExperienceIntermediate,
	ExperienceAdvanced,
}

// LearningStyle is how the learner prefers to consume material.
// A profile can carry any subset of styles.
type LearningStyle string

const (
	StyleVideos    LearningStyle = "Videos"
	StyleReading   LearningStyle = "Reading/Docs"
	StyleProjects  LearningStyle = "Hands-on Projects"
	StyleQuizzes   LearningStyle = "Quizzes"
	StyleCommunity LearningStyle = "Community/Forums"
)

// LearningStyles lists the selectable learning styles in display order.
var LearningStyles = []LearningStyle{
	StyleVideos,
	StyleReading,
	StyleProjects,
	StyleQuizzes,
	StyleCommunity,
}

// DailyHours bounds for the time commitment slider. Steps of 0.5.
const (
	MinDailyHours  = 0.5
	MaxDailyHours  = 8.0
	DailyHoursStep = 0.5
)

// Profile captures everything the generator needs to know about the learner.
// It is an immutable input to generation: transitions never mutate it.
type Profile struct {
	AreaOfInterest string
	Qualification  Qualification
	DailyHours     float64
	Duration       Duration
	Experience     Experience
	LearningStyles []LearningStyle
	Goal           string // optional
}

// ValidationError reports a rejected profile field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s %s", e.Field, e.Reason)
}

// Default returns a Profile with the same starting selections the form shows.
func Default() Profile {
	return Profile{
		Qualification:  Qual10thGrade,
		DailyHours:     2.0,
		Duration:       Duration1Month,
		Experience:     ExperienceBeginner,
		LearningStyles: []LearningStyle{StyleVideos, StyleProjects},
	}
}

// Validate checks the profile before it is handed to the generator.
// The area of interest is the only required free-text field; everything
// else comes from fixed option lists.
func (p Profile) Validate() error {
	if p.AreaOfInterest == "" {
		return &ValidationError{Field: "area of interest", Reason: "must not be empty"}
	}
	if p.DailyHours < MinDailyHours || p.DailyHours > MaxDailyHours {
		return &ValidationError{
			Field:  "daily hours",
			Reason: fmt.Sprintf("must be between %.1f and %.1f", MinDailyHours, MaxDailyHours),
		}
	}
	return nil
}
