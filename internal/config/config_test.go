package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPlaceholderAPIKey(t *testing.T) {
	placeholders := []string{"", "   ", "YOUR_API_KEY", "your-api-key", "changeme", "REPLACE_ME", "<GEMINI_API_KEY>"}
	for _, key := range placeholders {
		assert.True(t, IsPlaceholderAPIKey(key), "key %q should be a placeholder", key)
	}

	assert.False(t, IsPlaceholderAPIKey("AIzaSyExample000000000000000000000000"))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Logger.Env)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "test-key", cfg.LLM.Gemini.APIKey)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Quiz.QuestionCount)
	assert.NotZero(t, cfg.Server.Port)
	assert.NotEmpty(t, cfg.LLM.Gemini.Model)
}
