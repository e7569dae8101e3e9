package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-flash", cfg.Gemini.Model)
	assert.Empty(t, cfg.Gemini.APIKey)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ROADMAPPER_LLM_PROVIDER", "openai")
	t.Setenv("ROADMAPPER_OPENAI_API_KEY", "test-key")
	t.Setenv("ROADMAPPER_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "test-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "gemini without key",
			mutate:  func(c *Config) { c.Provider = "gemini" },
			wantErr: true,
		},
		{
			name: "gemini with key",
			mutate: func(c *Config) {
				c.Provider = "gemini"
				c.Gemini.APIKey = "key"
			},
			wantErr: false,
		},
		{
			name: "anthropic with key",
			mutate: func(c *Config) {
				c.Provider = "anthropic"
				c.Anthropic.APIKey = "key"
			},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			mutate:  func(c *Config) { c.Provider = "mock" },
			wantErr: false,
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Provider = "llama" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDiscoverConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, ok := DiscoverConfig()
	assert.False(t, ok)

	t.Setenv("ANTHROPIC_API_KEY", "anth-key")
	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "anth-key", cfg.Anthropic.APIKey)

	// Gemini takes priority when multiple keys are present.
	t.Setenv("GEMINI_API_KEY", "gem-key")
	cfg, ok = DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "gemini", cfg.Provider)
}
