// Package redis は任意利用のRedisキャッシュへの接続を提供します。
package redis

import (
	"context"
	"log/slog"
	"net"
	"os"

	"github.com/redis/go-redis/v9"
)

// Config はRedisの接続設定です。Hostが空の場合、Redisは無効です。
type Config struct {
	Host     string
	Port     string
	Password string
}

// LoadConfig は REDIS_HOST・REDIS_PORT・REDIS_PASSWORD を読み込みます。
func LoadConfig() Config {
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	return Config{
		Host:     os.Getenv("REDIS_HOST"),
		Port:     port,
		Password: os.Getenv("REDIS_PASSWORD"),
	}
}

// Options は設定をgo-redisのオプションに変換します。
func (c Config) Options() *redis.Options {
	return &redis.Options{
		Addr:     net.JoinHostPort(c.Host, c.Port),
		Password: c.Password,
		DB:       0,
	}
}

// NewRedisClient はRedisに接続し、疎通を確認します。
// ホストが未設定の場合はnilクライアントとnilエラーを返し、呼び出し側はキャッシュなしで動作します。
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Host == "" {
		slog.Info("Redis not configured, caching disabled")
		return nil, nil
	}
	opts := cfg.Options()
	rdb := redis.NewClient(opts)

	// 接続確認
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", opts.Addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", opts.Addr)
	return rdb, nil
}
