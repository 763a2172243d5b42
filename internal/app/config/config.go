// Package config はcmd/serverのプロセス全体の設定を読み込みます。
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config はサーバーの設定です。各アダプターの設定はそれぞれが読み込みます
// （gemini.LoadConfig、db.LoadConfigFromEnv、redis.LoadConfig）。
type Config struct {
	Port             string
	LogLevel         slog.Level
	CORSAllowOrigins []string
	// MarketSeed が0以外の場合、合成データの乱数を固定します。
	MarketSeed    uint64
	RunMigrations bool
	CacheTTL      time.Duration
}

// LoadDotEnv は .env があれば環境変数に読み込みます。既存の環境変数が優先されます。
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
}

// Load は環境変数からサーバー設定を読み込みます。
func Load() Config {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         ParseLevel(os.Getenv("LOG_LEVEL")),
		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		RunMigrations:    os.Getenv("RUN_MIGRATIONS") == "true",
		CacheTTL:         15 * time.Minute,
	}
	if v, err := strconv.ParseUint(os.Getenv("MARKET_SEED"), 10, 64); err == nil {
		cfg.MarketSeed = v
	}
	if d, err := time.ParseDuration(os.Getenv("INSIGHTS_CACHE_TTL")); err == nil && d > 0 {
		cfg.CacheTTL = d
	}
	return cfg
}

// ParseLevel は debug|info|warn|error をslogのレベルに変換します。それ以外はinfoです。
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
