// Package timeline turns phase durations into a contiguous schedule.
package timeline

import (
	"regexp"
	"strconv"
	"time"

	"github.com/arjun/roadmapper/internal/roadmap"
)

// DefaultWeeks is assumed when a phase duration cannot be parsed.
const DefaultWeeks = 2

var (
	weekRe  = regexp.MustCompile(`(?i)(\d+)\s*week`)
	monthRe = regexp.MustCompile(`(?i)(\d+)\s*month`)
)

// ParseWeeks extracts a duration in weeks from free text like "3 weeks" or
// "2 months". Months count as four weeks. Unmatched text yields
// DefaultWeeks.
func ParseWeeks(s string) int {
	if m := weekRe.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	if m := monthRe.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n * 4
		}
	}
	return DefaultWeeks
}

// Span is one phase placed on the calendar.
type Span struct {
	Phase int
	Title string
	Weeks int
	Start time.Time
	End   time.Time
}

// Build lays phases out back to back starting from start. Each span begins
// where the previous one ends, so the schedule has no gaps or overlaps.
func Build(phases []roadmap.Phase, start time.Time) []Span {
	spans := make([]Span, 0, len(phases))
	cursor := start
	for _, p := range phases {
		weeks := ParseWeeks(p.Duration)
		end := cursor.AddDate(0, 0, weeks*7)
		spans = append(spans, Span{
			Phase: p.Phase,
			Title: p.Title,
			Weeks: weeks,
			Start: cursor,
			End:   end,
		})
		cursor = end
	}
	return spans
}

// TotalWeeks sums the parsed duration of every span.
func TotalWeeks(spans []Span) int {
	total := 0
	for _, s := range spans {
		total += s.Weeks
	}
	return total
}
