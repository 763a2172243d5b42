// Package handler はinsightsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"arthasutra_backend/internal/api"
	"arthasutra_backend/internal/feature/insights/domain/entity"
	"arthasutra_backend/internal/feature/insights/transport/http/dto"
	"arthasutra_backend/internal/feature/insights/usecase"
	marketentity "arthasutra_backend/internal/feature/market/domain/entity"
)

// InsightsUsecase はAIインサイトのユースケースインターフェースを定義します。
type InsightsUsecase interface {
	Advice(ctx context.Context) entity.Panel[entity.Advice]
	Detail(ctx context.Context, symbol string) (usecase.Detail, error)
	Sentiment(ctx context.Context, symbol string) (entity.Panel[entity.Sentiment], error)
	News(ctx context.Context, symbol string) (entity.Panel[[]entity.Article], error)
	Quote(ctx context.Context, symbol string) (marketentity.Quote, error)
}

// CacheInvalidator は銘柄ごとのインサイトキャッシュを破棄します。
type CacheInvalidator interface {
	Invalidate(ctx context.Context, symbol string) error
}

// InsightsHandler はAIインサイトのHTTPリクエストを処理します。
// ゲートウェイの失敗はパネルのerror状態として200で返します。
type InsightsHandler struct {
	uc    InsightsUsecase
	cache CacheInvalidator
}

// NewInsightsHandler は指定されたusecaseでInsightsHandlerの新しいインスタンスを生成します。
// cacheがnilの場合、Refreshは何もせず成功を返します。
func NewInsightsHandler(uc InsightsUsecase, cache CacheInvalidator) *InsightsHandler {
	return &InsightsHandler{uc: uc, cache: cache}
}

// Advice は現在の市場スナップショットから3期間の推奨を生成します。
//
// POST /v1/insights/advice
func (h *InsightsHandler) Advice(c *gin.Context) {
	p := h.uc.Advice(c.Request.Context())
	c.JSON(http.StatusOK, dto.FromPanel(p, dto.FromAdvice))
}

// Detail は銘柄のQuote・センチメント・ニュースをまとめて返します。
//
// GET /v1/insights/stocks/:symbol
func (h *InsightsHandler) Detail(c *gin.Context) {
	symbol := c.Param("symbol")
	d, err := h.uc.Detail(c.Request.Context(), symbol)
	if err != nil {
		respondQuoteError(c, symbol, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDetail(d))
}

// Sentiment はセンチメントパネルのみを返します。
//
// GET /v1/insights/stocks/:symbol/sentiment
func (h *InsightsHandler) Sentiment(c *gin.Context) {
	symbol := c.Param("symbol")
	p, err := h.uc.Sentiment(c.Request.Context(), symbol)
	if err != nil {
		respondQuoteError(c, symbol, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPanel(p, dto.FromSentiment))
}

// News はニュースパネルのみを返します。
//
// GET /v1/insights/stocks/:symbol/news
func (h *InsightsHandler) News(c *gin.Context) {
	symbol := c.Param("symbol")
	p, err := h.uc.News(c.Request.Context(), symbol)
	if err != nil {
		respondQuoteError(c, symbol, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPanel(p, dto.FromArticles))
}

// Refresh は銘柄のキャッシュ済みセンチメント・ニュースを破棄し、次回の取得で再生成させます。
// カタログ外の銘柄は他の :symbol ルートと同じく404です。
//
// DELETE /v1/insights/stocks/:symbol/cache
func (h *InsightsHandler) Refresh(c *gin.Context) {
	symbol := c.Param("symbol")
	q, err := h.uc.Quote(c.Request.Context(), symbol)
	if err != nil {
		respondQuoteError(c, symbol, err)
		return
	}
	if h.cache != nil {
		if err := h.cache.Invalidate(c.Request.Context(), q.Symbol); err != nil {
			slog.Error("failed to invalidate insights cache", "symbol", q.Symbol, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to invalidate cache"})
			return
		}
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "cache cleared for " + q.Symbol})
}

func respondQuoteError(c *gin.Context, symbol string, err error) {
	if errors.Is(err, marketentity.ErrUnknownSymbol) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "unknown symbol: " + symbol})
		return
	}
	slog.Error("failed to load stock insights", "symbol", symbol, "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load stock insights"})
}
