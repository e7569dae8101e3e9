package roadmap

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/roadmapper/internal/llm"
	"github.com/arjun/roadmapper/internal/profile"
)

func testProfile() profile.Profile {
	p := profile.Default()
	p.AreaOfInterest = "Data Science"
	return p
}

func TestGenerateStructured(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"overview": "DS overview", "phases": [{"phase": 1, "title": "Basics", "duration": "2 weeks", "topics": ["stats"]}]}`),
	})
	svc := NewService(mock)

	res, err := svc.Generate(context.Background(), testProfile())
	require.NoError(t, err)

	assert.False(t, res.Basic())
	assert.Equal(t, "DS overview", res.Roadmap.Overview)
	assert.Equal(t, 1, mock.CallCount())

	// The structured request carries the schema and the full prompt.
	req := mock.Calls[0]
	require.NotNil(t, req.Schema)
	assert.Contains(t, req.Messages[0].Content, "Data Science")
}

func TestGenerateFallsBackOnUnparseable(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`Sorry, here is your roadmap as prose...`)},
		llm.MockResponse{Content: json.RawMessage(`Week 1: learn the basics. Week 2: build things.`)},
	)
	svc := NewService(mock)

	res, err := svc.Generate(context.Background(), testProfile())
	require.NoError(t, err)

	assert.True(t, res.Basic())
	assert.Contains(t, res.RawText, "Week 1")
	assert.Equal(t, 2, mock.CallCount())

	// The fallback request is plain: no schema attached.
	assert.Nil(t, mock.Calls[1].Schema)
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Content: json.RawMessage(`plain text roadmap`)},
	)
	svc := NewService(mock)

	res, err := svc.Generate(context.Background(), testProfile())
	require.NoError(t, err)
	assert.True(t, res.Basic())
}

func TestGenerateRecoversSchemaValidationFailure(t *testing.T) {
	// A document that fails strict schema validation but still decodes:
	// the generator parses the rejected content rather than discarding it.
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrInvalidResponse{Content: json.RawMessage(`{"overview": "ok", "phases": []}`)}},
	)
	svc := NewService(mock)

	res, err := svc.Generate(context.Background(), testProfile())
	require.NoError(t, err)
	assert.False(t, res.Basic())
	assert.Equal(t, "ok", res.Roadmap.Overview)
	assert.Equal(t, 1, mock.CallCount())
}

func TestGenerateBothAttemptsFail(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
	)
	svc := NewService(mock)

	_, err := svc.Generate(context.Background(), testProfile())
	require.Error(t, err)
	assert.Equal(t, 2, mock.CallCount())
}

func TestGenerateRejectsInvalidProfile(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock)

	p := profile.Default() // empty area of interest
	_, err := svc.Generate(context.Background(), p)
	require.Error(t, err)
	assert.Equal(t, 0, mock.CallCount())
}
