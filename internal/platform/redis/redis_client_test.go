package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_PASSWORD", "pw")

	cfg := LoadConfig()
	assert.Equal(t, Config{Host: "cache.internal", Port: "6379", Password: "pw"}, cfg)

	opts := cfg.Options()
	assert.Equal(t, "cache.internal:6379", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
}

func TestNewRedisClient_Disabled(t *testing.T) {
	t.Parallel()

	rdb, err := NewRedisClient(context.Background(), Config{})
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}
