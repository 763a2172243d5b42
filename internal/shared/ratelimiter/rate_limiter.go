// Package ratelimiter はクォータ制限のある外部APIへの呼び出し頻度を制限します。
package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Limiter は次の1回の呼び出しが許可されるまでブロックするインターフェースです。
type Limiter interface {
	Wait(ctx context.Context) error
}

// RateLimiterは固定ウィンドウ方式で、interval ごとに最大 limit 回の呼び出しを許可します。
// 上限を超えた呼び出しは次の空きウィンドウに割り当てられ、その開始まで待機します。
type RateLimiter struct {
	mu          sync.Mutex
	limit       int
	interval    time.Duration
	count       int
	windowStart time.Time
	now         func() time.Time
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。limit は正の値である必要があります。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:       max(limit, 1),
		interval:    interval,
		windowStart: time.Now(),
		now:         time.Now,
	}
}

// Waitは枠を予約し、そのウィンドウが始まるまで待機します。
// contextが取り消された場合はそのエラーを返します。予約済みの枠は解放しません。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	wait := rl.reserve()
	if wait <= 0 {
		return nil
	}

	slog.Warn("rate limit reached, waiting", "limit", rl.limit, "interval", rl.interval, "wait", wait)
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// reserve は次の枠を予約し、使用可能になるまでの待ち時間を返します。
func (rl *RateLimiter) reserve() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.windowStart) >= rl.interval {
		rl.windowStart, rl.count = now, 0
	}
	if rl.count >= rl.limit {
		rl.windowStart = rl.windowStart.Add(rl.interval)
		rl.count = 0
	}
	rl.count++
	return rl.windowStart.Sub(now)
}
