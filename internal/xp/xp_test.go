package xp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(offset int) time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local).AddDate(0, 0, offset)
}

func TestStreakFrom(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		days []time.Time
		want int
	}{
		{"no activity", nil, 0},
		{"today only", []time.Time{day(0)}, 1},
		{"yesterday only", []time.Time{day(-1)}, 1},
		{"three consecutive ending today", []time.Time{day(0), day(-1), day(-2)}, 3},
		{"gap breaks the run", []time.Time{day(0), day(-1), day(-3)}, 2},
		{"streak ended two days ago", []time.Time{day(-2), day(-3)}, 0},
		{"duplicate days tolerated", []time.Time{day(0), day(0), day(-1)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, streakFrom(tt.days, now))
		})
	}
}

func TestNilRepoIsSafe(t *testing.T) {
	svc := NewService(nil)

	svc.Award(t.Context(), "session", RewardGenerate, ReasonGenerate)

	total, err := svc.Total(t.Context())
	assert.NoError(t, err)
	assert.Zero(t, total)

	streak, err := svc.Streak(t.Context())
	assert.NoError(t, err)
	assert.Zero(t, streak)
}
