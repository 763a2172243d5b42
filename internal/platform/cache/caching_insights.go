// Package cache はinsightsゲートウェイ用のキャッシュデコレーターを提供します。
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"arthasutra_backend/internal/feature/insights/domain/entity"
	"arthasutra_backend/internal/feature/insights/usecase"
	marketentity "arthasutra_backend/internal/feature/market/domain/entity"
)

const (
	kindSentiment = "sentiment"
	kindNews      = "news"
)

// CachingInsights はセンチメント・ニュースゲートウェイをRedisキャッシュで装飾します。
// 保存するのは成功結果のみで、失敗は次回の呼び出しで必ず内部ゲートウェイに到達します。
// エントリは ttl 経過時か次の営業日切り替え時刻のどちらか早い方で失効します。
type CachingInsights struct {
	sentiment usecase.SentimentGateway
	news      usecase.NewsGateway
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	now       func() time.Time
}

var (
	_ usecase.SentimentGateway = (*CachingInsights)(nil)
	_ usecase.NewsGateway      = (*CachingInsights)(nil)
)

// NewCachingInsights はゲートウェイをRedisキャッシュで装飾します。
// ttl が0の場合は15分、namespace が空の場合は "insights" を使用します。
// rdb がnilの場合、キャッシュは無効です。
func NewCachingInsights(rdb *redis.Client, ttl time.Duration, sentiment usecase.SentimentGateway, news usecase.NewsGateway, namespace string) *CachingInsights {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if namespace == "" {
		namespace = "insights"
	}
	return &CachingInsights{
		sentiment: sentiment,
		news:      news,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
		now:       time.Now,
	}
}

// Sentiment は銘柄のキャッシュ済みセンチメントを返し、なければ内部ゲートウェイに問い合わせます。
func (c *CachingInsights) Sentiment(ctx context.Context, q marketentity.Quote) entity.Result[entity.Sentiment] {
	if c.rdb == nil {
		return c.sentiment.Sentiment(ctx, q)
	}

	key := c.cacheKey(kindSentiment, q.Symbol)
	var cached entity.Sentiment
	if c.load(ctx, key, &cached) {
		return entity.Ok(cached)
	}

	r := c.sentiment.Sentiment(ctx, q)
	if v, ok := r.Value(); ok {
		c.store(ctx, key, v)
	}
	return r
}

// News は銘柄のキャッシュ済み記事を返し、なければ内部ゲートウェイに問い合わせます。
// 空のリストも成功結果としてキャッシュします。
func (c *CachingInsights) News(ctx context.Context, q marketentity.Quote) entity.Result[[]entity.Article] {
	if c.rdb == nil {
		return c.news.News(ctx, q)
	}

	key := c.cacheKey(kindNews, q.Symbol)
	var cached []entity.Article
	if c.load(ctx, key, &cached) {
		if cached == nil {
			cached = []entity.Article{}
		}
		return entity.Ok(cached)
	}

	r := c.news.News(ctx, q)
	if v, ok := r.Value(); ok {
		c.store(ctx, key, v)
	}
	return r
}

// Invalidate は銘柄のキャッシュ済みセンチメントとニュースを破棄します。
// キーは完全一致の名前で削除するため、銘柄がパターンとして解釈されることはありません。
func (c *CachingInsights) Invalidate(ctx context.Context, symbol string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.cacheKey(kindSentiment, symbol), c.cacheKey(kindNews, symbol)).Err()
}

// load は key を読み込み dst にデコードします。破損したエントリは削除します。
func (c *CachingInsights) load(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// store は v を key に書き込みます（ベストエフォート）。
func (c *CachingInsights) store(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, b, c.expiry()).Err()
}

// expiry は設定されたTTLを次の寄り付き前の切り替え時刻までに制限します。
func (c *CachingInsights) expiry() time.Duration {
	return min(c.ttl, TimeUntilNextRollover(c.now()))
}

func (c *CachingInsights) cacheKey(kind, symbol string) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, kind, safe(symbol))
}

// safe はRedisキーで問題となる文字をエスケープします。
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
