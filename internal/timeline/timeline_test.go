package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/roadmapper/internal/roadmap"
)

func TestParseWeeks(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3 weeks", 3},
		{"1 week", 1},
		{"2 Weeks", 2},
		{"2 months", 8},
		{"1 month", 4},
		{"approximately 6 weeks of study", 6},
		{"", 2},
		{"a while", 2},
		{"two weeks", 2}, // spelled-out numbers fall back to the default
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseWeeks(tt.in), "input: %q", tt.in)
	}
}

func TestParseWeeksPrefersWeeksOverMonths(t *testing.T) {
	// When both units appear, weeks win.
	assert.Equal(t, 3, ParseWeeks("3 weeks (about 1 month)"))
}

func TestBuildContiguous(t *testing.T) {
	start := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	phases := []roadmap.Phase{
		{Phase: 1, Title: "Basics", Duration: "2 weeks"},
		{Phase: 2, Title: "Core", Duration: "1 month"},
		{Phase: 3, Title: "Capstone", Duration: "unclear"},
	}

	spans := Build(phases, start)
	require.Len(t, spans, 3)

	assert.Equal(t, start, spans[0].Start)
	for i := 1; i < len(spans); i++ {
		assert.Equal(t, spans[i-1].End, spans[i].Start, "phase %d must start where phase %d ends", i+1, i)
	}

	assert.Equal(t, 2, spans[0].Weeks)
	assert.Equal(t, 4, spans[1].Weeks)
	assert.Equal(t, 2, spans[2].Weeks)
	assert.Equal(t, start.AddDate(0, 0, 8*7), spans[2].End)
	assert.Equal(t, 8, TotalWeeks(spans))
}

func TestBuildEmpty(t *testing.T) {
	spans := Build(nil, time.Now())
	assert.Empty(t, spans)
	assert.Zero(t, TotalWeeks(spans))
}
