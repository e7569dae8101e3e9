package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock-1",
		Purpose:      "roadmap-gen",
		InputTokens:  100,
		OutputTokens: 200,
		LatencyMs:    42,
		Success:      true,
		RequestBody:  "prompt",
		ResponseBody: `{"ok":true}`,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock-1",
		Purpose:      "roadmap-fallback",
		Success:      false,
		ErrorMessage: "boom",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Equal(t, "roadmap-fallback", events[0].Purpose)
	assert.False(t, events[0].Success)
	assert.Equal(t, "roadmap-gen", events[1].Purpose)
	assert.Equal(t, 100, events[1].InputTokens)
	assert.Greater(t, events[0].Sequence, events[1].Sequence)
}

func TestQueryLLMEventsFiltered(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"roadmap-gen", "roadmap-gen", "roadmap-fallback"} {
		require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "m", Purpose: purpose, Success: true,
		}))
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "roadmap-gen"})
	require.NoError(t, err)
	assert.Len(t, events, 2)

	events, err = repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "m", Purpose: "roadmap-gen", Success: true,
		RequestBody: "the prompt",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, "the prompt", ev.RequestBody)

	missing, err := repo.GetLLMEvent(ctx, 99999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsageStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "model-a", Purpose: "roadmap-gen",
			InputTokens: 10, OutputTokens: 20, Success: true,
		}))
	}
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "model-b", Purpose: "roadmap-fallback",
		InputTokens: 5, OutputTokens: 5, Success: false,
	}))

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)

	var a LLMUsageStat
	for _, st := range byModel {
		if st.Model == "model-a" {
			a = st
		}
	}
	assert.Equal(t, 3, a.Calls)
	assert.Equal(t, 30, a.InputTokens)
	assert.Equal(t, 60, a.OutputTokens)
}

func TestXPJournal(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendXPAward(ctx, XPEventData{SessionID: "s1", Amount: 50, Reason: "roadmap-generated"}))
	require.NoError(t, repo.AppendXPAward(ctx, XPEventData{SessionID: "s1", Amount: 10, Reason: "topic-completed"}))

	total, err := repo.TotalXP(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, total)

	days, err := repo.ActivityDays(ctx)
	require.NoError(t, err)
	assert.Len(t, days, 1)
}
