package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSchema() *Schema {
	return &Schema{
		Name: "test-plan",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"overview": map[string]any{"type": "string"},
				"phases":   map[string]any{"type": "array"},
			},
			"required": []any{"overview", "phases"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name:    "valid",
			raw:     `{"overview": "a plan", "phases": []}`,
			wantErr: false,
		},
		{
			name:    "missing required field",
			raw:     `{"overview": "a plan"}`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			raw:     `{"overview": 42, "phases": []}`,
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			raw:     `{"overview": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if tt.wantErr {
				var invalid *ErrInvalidResponse
				assert.True(t, errors.As(err, &invalid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	err := validateResponse(nil, json.RawMessage(`not even json`))
	assert.NoError(t, err)
}

func TestSchemaCacheReuse(t *testing.T) {
	s := testSchema()

	first, err := getCompiledSchema(s)
	assert.NoError(t, err)

	second, err := getCompiledSchema(s)
	assert.NoError(t, err)
	assert.Same(t, first, second)
}
