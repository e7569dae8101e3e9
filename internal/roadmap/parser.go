package roadmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnstructured indicates the model output could not be parsed as a
// structured roadmap. Callers fall back to plain-text mode on this error.
var ErrUnstructured = errors.New("response is not a structured roadmap")

// Parse recovers a Roadmap from raw model output.
//
// The model is told to return bare JSON, but frequently wraps it in
// markdown code fences anyway; those are stripped before decoding. Any
// input that does not decode to a JSON object yields ErrUnstructured —
// Parse never panics on malformed input.
func Parse(raw string) (*Roadmap, error) {
	text := stripFences(strings.TrimSpace(raw))
	if text == "" {
		return nil, fmt.Errorf("empty response: %w", ErrUnstructured)
	}

	// A bare JSON null decodes without error but carries no roadmap.
	if text == "null" {
		return nil, fmt.Errorf("null response: %w", ErrUnstructured)
	}

	var rm Roadmap
	if err := json.Unmarshal([]byte(text), &rm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnstructured, err)
	}

	return &rm, nil
}

// stripFences removes a leading ```json (or bare ```) fence and a trailing
// ``` fence, tolerating whitespace around both.
func stripFences(s string) string {
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "```json"):
		s = s[len("```json"):]
	case strings.HasPrefix(s, "```"):
		s = s[len("```"):]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
