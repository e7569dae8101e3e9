// Package radar derives per-skill progress scores from topic completion.
package radar

import "github.com/arjun/roadmapper/internal/roadmap"

// MaxSkills bounds how many skills the radar shows.
const MaxSkills = 8

// Score is one radar axis: a skill and its progress in [0, 100].
type Score struct {
	Skill string
	Value float64
}

// Scores computes a progress score per skill. Each phase contributes its
// completion ratio to every skill it teaches; a skill taught by several
// phases accumulates their ratios. Values are scaled to percent and capped
// at 100. The first MaxSkills distinct skills, in first-seen order, are
// reported; returns nil when no phase names any skill.
func Scores(phases []roadmap.Phase, completionRatio func(roadmap.Phase) float64) []Score {
	sums := make(map[string]float64)
	var order []string

	for _, p := range phases {
		ratio := completionRatio(p)
		for _, skill := range p.SkillsGained {
			if _, seen := sums[skill]; !seen {
				order = append(order, skill)
			}
			sums[skill] += ratio
		}
	}

	if len(order) == 0 {
		return nil
	}
	if len(order) > MaxSkills {
		order = order[:MaxSkills]
	}

	scores := make([]Score, len(order))
	for i, skill := range order {
		v := sums[skill] * 100
		if v > 100 {
			v = 100
		}
		scores[i] = Score{Skill: skill, Value: v}
	}
	return scores
}
