package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"arthasutra_backend/internal/feature/insights/adapters/gemini"
	"arthasutra_backend/internal/feature/insights/adapters/unavailable"
	insightshandler "arthasutra_backend/internal/feature/insights/transport/handler"
	insightsusecase "arthasutra_backend/internal/feature/insights/usecase"
	"arthasutra_backend/internal/platform/cache"
	infrahttp "arthasutra_backend/internal/platform/http"
)

// Gateways はinsightsユースケースが依存するLLMゲートウェイ群です。
// キャッシュ未設定の場合、Invalidatorはnilです。
type Gateways struct {
	Advice      insightsusecase.AdviceGateway
	Sentiment   insightsusecase.SentimentGateway
	News        insightsusecase.NewsGateway
	Invalidator insightshandler.CacheInvalidator
}

// NewGateways はAPIキーが設定されていればGeminiゲートウェイを、なければunavailableゲートウェイを返します。
// Redisクライアントがある場合、センチメントとニュースをキャッシュします。
func NewGateways(ctx context.Context, cfg gemini.Config, rdb *redis.Client, cacheTTL time.Duration) (Gateways, error) {
	if !cfg.Enabled() {
		slog.Warn("GEMINI_API_KEY is not set; AI insights are disabled")
		u := unavailable.Gateway{}
		return Gateways{Advice: u, Sentiment: u, News: u}, nil
	}

	g, err := gemini.NewGateway(ctx, cfg, infrahttp.NewHTTPClient(cfg.Timeout))
	if err != nil {
		return Gateways{}, err
	}
	gw := Gateways{Advice: g, Sentiment: g, News: g}
	if rdb != nil {
		c := cache.NewCachingInsights(rdb, cacheTTL, g, g, "insights")
		gw.Sentiment, gw.News, gw.Invalidator = c, c, c
	}
	return gw, nil
}
