package llm

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/roadmapper/internal/store"
)

// recordingRepo captures appended events for assertions.
type recordingRepo struct {
	llmEvents []store.LLMRequestEventData
	xpEvents  []store.XPEventData
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.llmEvents = append(r.llmEvents, data)
	return nil
}

func (r *recordingRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (r *recordingRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (r *recordingRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func (r *recordingRepo) LLMUsageByModel(context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func (r *recordingRepo) AppendXPAward(_ context.Context, data store.XPEventData) error {
	r.xpEvents = append(r.xpEvents, data)
	return nil
}

func (r *recordingRepo) TotalXP(context.Context) (int, error) { return 0, nil }

func (r *recordingRepo) ActivityDays(context.Context) ([]time.Time, error) { return nil, nil }

func TestLoggingProviderJournalsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok": true}`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30},
	})
	repo := &recordingRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "plan-gen")
	resp, err := p.Generate(ctx, Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.Len(t, repo.llmEvents, 1)
	ev := repo.llmEvents[0]
	assert.Equal(t, "mock", ev.Provider)
	assert.Equal(t, "plan-gen", ev.Purpose)
	assert.True(t, ev.Success)
	assert.Equal(t, 10, ev.InputTokens)
	assert.Equal(t, 20, ev.OutputTokens)
	assert.Contains(t, ev.RequestBody, "hello")
	assert.JSONEq(t, `{"ok": true}`, ev.ResponseBody)
}

func TestLoggingProviderJournalsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Err: &ErrRateLimit{},
	})
	repo := &recordingRepo{}
	p := WithLogging(mock, repo)

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)

	require.Len(t, repo.llmEvents, 1)
	ev := repo.llmEvents[0]
	assert.False(t, ev.Success)
	assert.NotEmpty(t, ev.ErrorMessage)
	assert.Equal(t, "unknown", ev.Purpose)
}

func TestLoggingProviderSingleAttempt(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithLogging(mock, &recordingRepo{})

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)
	assert.Equal(t, 1, mock.CallCount())
}
