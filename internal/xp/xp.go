// Package xp tracks experience points and the daily activity streak.
package xp

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/arjun/roadmapper/internal/store"
)

// XP awards per action.
const (
	RewardGenerate      = 50 // generating a roadmap
	RewardTopic         = 10 // completing a topic
	RewardCorrectAnswer = 20 // answering a quiz question correctly
)

// Award reasons recorded in the journal.
const (
	ReasonGenerate      = "roadmap-generated"
	ReasonTopic         = "topic-completed"
	ReasonCorrectAnswer = "quiz-correct"
)

// Service journals XP awards and derives totals and streaks from the
// journal. A nil repo disables persistence: awards are accepted silently
// and totals read as zero.
type Service struct {
	repo store.EventRepo
}

// NewService creates an XP service over the event journal.
func NewService(repo store.EventRepo) *Service {
	return &Service{repo: repo}
}

// Award records an XP grant. Journal failures are reported to stderr but
// never fail the caller's action.
func (s *Service) Award(ctx context.Context, sessionID string, amount int, reason string) {
	if s.repo == nil {
		return
	}
	err := s.repo.AppendXPAward(ctx, store.XPEventData{
		SessionID: sessionID,
		Amount:    amount,
		Reason:    reason,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to journal XP award: %v\n", err)
	}
}

// Total returns the all-time XP across every session.
func (s *Service) Total(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, nil
	}
	return s.repo.TotalXP(ctx)
}

// Streak returns the number of consecutive calendar days, ending today or
// yesterday, on which any XP was earned. A streak that ended before
// yesterday reads as zero.
func (s *Service) Streak(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, nil
	}
	days, err := s.repo.ActivityDays(ctx)
	if err != nil {
		return 0, err
	}
	return streakFrom(days, time.Now()), nil
}

// streakFrom counts consecutive days in a newest-first list of local
// calendar days (midnight-truncated, deduped).
func streakFrom(days []time.Time, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	today := truncateDay(now)
	yesterday := today.AddDate(0, 0, -1)

	// The streak is only alive if the latest activity was today or yesterday.
	latest := truncateDay(days[0])
	if !latest.Equal(today) && !latest.Equal(yesterday) {
		return 0
	}

	streak := 1
	prev := latest
	for _, d := range days[1:] {
		d = truncateDay(d)
		if d.Equal(prev.AddDate(0, 0, -1)) {
			streak++
			prev = d
		} else if !d.Equal(prev) {
			break
		}
	}
	return streak
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
