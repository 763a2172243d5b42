// Package router はginエンジンを組み立て、全ルートを登録します。
package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	candleshandler "arthasutra_backend/internal/feature/candles/transport/handler"
	insightshandler "arthasutra_backend/internal/feature/insights/transport/handler"
	markethandler "arthasutra_backend/internal/feature/market/transport/handler"
	pulsemaphandler "arthasutra_backend/internal/feature/pulsemap/transport/handler"
	symbollisthandler "arthasutra_backend/internal/feature/symbollist/transport/handler"
	platformhandler "arthasutra_backend/internal/platform/http/handler"
	"arthasutra_backend/internal/platform/http/middleware"
)

// Handlers はNewRouterがマウントする各フィーチャーのハンドラーです。
type Handlers struct {
	Market   *markethandler.MarketHandler
	PulseMap *pulsemaphandler.PulseMapHandler
	Symbols  *symbollisthandler.SymbolHandler
	Candles  *candleshandler.CandlesHandler
	Insights *insightshandler.InsightsHandler
	Checks   []platformhandler.Check
}

// Options は横断的なミドルウェアの設定です。
type Options struct {
	Logger       *slog.Logger
	AllowOrigins []string
}

// NewRouter はリカバリー・リクエストID・アクセスログ・CORSを適用したエンジンを返します。
func NewRouter(h Handlers, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(logger))
	r.Use(cors.New(corsConfig(opts.AllowOrigins)))

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.OPTIONS("/healthz", platformhandler.Health)
	r.GET("/readyz", platformhandler.Ready(h.Checks...))

	v1 := r.Group("/v1")

	market := v1.Group("/market")
	{
		market.GET("/symbols", h.Symbols.List)
		market.GET("/quotes", h.Market.Quotes)
		market.GET("/quotes/:symbol", h.Market.Quote)
		market.GET("/movers", h.Market.Movers)
		market.GET("/sectors", h.Market.Sectors)
		market.GET("/flow", h.Market.Flow)
		market.GET("/premarket", h.Market.Premarket)
		market.GET("/search", h.Market.Search)
		market.GET("/pulsemap", h.PulseMap.Get)
	}

	v1.GET("/stocks/:symbol/history", h.Candles.GetIntraday)

	insights := v1.Group("/insights")
	{
		insights.POST("/advice", h.Insights.Advice)
		insights.GET("/stocks/:symbol", h.Insights.Detail)
		insights.GET("/stocks/:symbol/sentiment", h.Insights.Sentiment)
		insights.GET("/stocks/:symbol/news", h.Insights.News)
		insights.DELETE("/stocks/:symbol/cache", h.Insights.Refresh)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
