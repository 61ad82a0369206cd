package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LEXIPLAY_FEEDBACK_ENABLED", "true")
	t.Setenv("LEXIPLAY_FEEDBACK_ENDPOINT", "http://feedback.test/score")
	t.Setenv("LEXIPLAY_FEEDBACK_TIMEOUT_MS", "1500")
	t.Setenv("LEXIPLAY_FEEDBACK_MAX_RETRIES", "0")
	t.Setenv("LEXIPLAY_FEEDBACK_LOG_CALLS", "1")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, "http://feedback.test/score", cfg.Endpoint)
	assert.Equal(t, 1500, cfg.TimeoutMs)
	assert.Equal(t, 0, cfg.MaxRetries)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("LEXIPLAY_FEEDBACK_TIMEOUT_MS", "soon")
	t.Setenv("LEXIPLAY_FEEDBACK_MAX_RETRIES", "-2")

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestConfigWithEnv_InvalidBoolKeepsValue(t *testing.T) {
	t.Setenv("LEXIPLAY_FEEDBACK_ENABLED", "maybe")
	t.Setenv("LEXIPLAY_FEEDBACK_LOG_CALLS", "sometimes")

	base := DefaultConfig()
	base.Enabled = true
	base.LogCalls = true

	cfg := base.withEnv()
	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.LogCalls)

	t.Setenv("LEXIPLAY_FEEDBACK_ENABLED", "false")
	assert.False(t, base.withEnv().Enabled)
}
