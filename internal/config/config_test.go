package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cfg := Load()

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiryPeriod)
	assert.Equal(t, 30*time.Minute, cfg.Reconcile.Interval)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingJWTSecret)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("PORT", "8080")
	t.Setenv("CACHE_TTL", "5s")
	t.Setenv("RECONCILE_BATCH_SIZE", "25")

	cfg := Load()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 25, cfg.Reconcile.BatchSize)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("SMTP_PORT", "not-a-port")

	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}

	for in, want := range tests {
		cfg := &Config{LogLevel: in}
		assert.Equal(t, want, cfg.SlogLevel(), in)
	}
}
