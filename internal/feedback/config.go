package feedback

import (
	"os"
	"strconv"
)

// Config holds the remote feedback settings.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns the defaults. Remote feedback is off by default.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:8787/feedback",
		TimeoutMs:  8000,
		MaxRetries: 1,
	}
}

// LoadConfig reads LEXIPLAY_FEEDBACK_* variables over the defaults.
func LoadConfig() Config {
	return DefaultConfig().withEnv()
}

// withEnv overlays the environment on c. Invalid values leave the field
// unchanged.
func (c Config) withEnv() Config {
	if v := os.Getenv("LEXIPLAY_FEEDBACK_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Enabled = b
		}
	}
	if v := os.Getenv("LEXIPLAY_FEEDBACK_LOG_CALLS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.LogCalls = b
		}
	}
	if v := os.Getenv("LEXIPLAY_FEEDBACK_ENDPOINT"); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv("LEXIPLAY_FEEDBACK_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TimeoutMs = n
		}
	}
	if v := os.Getenv("LEXIPLAY_FEEDBACK_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.MaxRetries = n
		}
	}
	return c
}
