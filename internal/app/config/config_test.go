package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "CORS_ALLOW_ORIGINS", "MARKET_SEED", "RUN_MIGRATIONS", "INSIGHTS_CACHE_TTL"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, Config{
		Port:             "8080",
		LogLevel:         slog.LevelInfo,
		CORSAllowOrigins: []string{"*"},
		CacheTTL:         15 * time.Minute,
	}, cfg)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173, https://arthasutra.example ,")
	t.Setenv("MARKET_SEED", "42")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("INSIGHTS_CACHE_TTL", "1h")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173", "https://arthasutra.example"}, cfg.CORSAllowOrigins)
	assert.Equal(t, uint64(42), cfg.MarketSeed)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}
