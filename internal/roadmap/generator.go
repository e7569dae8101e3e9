package roadmap

import (
	"context"
	"errors"
	"fmt"

	"github.com/arjun/roadmapper/internal/llm"
	"github.com/arjun/roadmapper/internal/profile"
)

const (
	// PurposeGenerate labels the structured roadmap request in the journal.
	PurposeGenerate = "roadmap-gen"
	// PurposeFallback labels the plain-text fallback request.
	PurposeFallback = "roadmap-fallback"

	generateMaxTokens = 8192
)

// Result is the outcome of a generation: either a structured Roadmap or,
// in basic mode, the model's plain-text answer.
type Result struct {
	Roadmap *Roadmap
	RawText string
}

// Basic reports whether the result is plain text only.
func (r *Result) Basic() bool { return r.Roadmap == nil }

// Service generates roadmaps through an LLM provider.
type Service struct {
	provider llm.Provider
}

// NewService creates a generation service on top of a provider.
func NewService(p llm.Provider) *Service {
	return &Service{provider: p}
}

// Generate builds a roadmap for the profile.
//
// It makes exactly one structured attempt. If that attempt fails — the
// provider errors, or the output cannot be parsed — it makes exactly one
// plain-text fallback attempt and returns the raw text. An error is
// returned only when both attempts fail.
func (s *Service) Generate(ctx context.Context, p profile.Profile) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rm, structErr := s.generateStructured(ctx, p)
	if structErr == nil {
		return &Result{Roadmap: rm}, nil
	}

	raw, fallbackErr := s.generateFallback(ctx, p)
	if fallbackErr != nil {
		return nil, fmt.Errorf("roadmap generation failed (structured: %v): %w", structErr, fallbackErr)
	}

	return &Result{RawText: raw}, nil
}

func (s *Service) generateStructured(ctx context.Context, p profile.Profile) (*Roadmap, error) {
	ctx = llm.WithPurpose(ctx, PurposeGenerate)

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildPrompt(p)},
		},
		Schema:    ResponseSchema(),
		MaxTokens: generateMaxTokens,
	})
	if err != nil {
		// Schema validation failures still carry content worth parsing:
		// the tolerant wire schema accepts more than the validator's view.
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) && len(invalid.Content) > 0 {
			if rm, perr := Parse(string(invalid.Content)); perr == nil {
				return rm, nil
			}
		}
		return nil, err
	}

	return Parse(string(resp.Content))
}

func (s *Service) generateFallback(ctx context.Context, p profile.Profile) (string, error) {
	ctx = llm.WithPurpose(ctx, PurposeFallback)

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildFallbackPrompt(p)},
		},
		MaxTokens: generateMaxTokens,
	})
	if err != nil {
		return "", err
	}

	return string(resp.Content), nil
}
