package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("ALERT_THROTTLE", "not-a-duration")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("SMTP_PORT", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 10*time.Minute, cfg.Alert.Throttle)
	assert.True(t, cfg.App.OtelEnabled)
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("CONTENT_CACHE_TTL", "90s")
	assert.Equal(t, 90*time.Second, getEnvAsDuration("CONTENT_CACHE_TTL", time.Minute))
}
