// Package handler はmarketフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"arthasutra_backend/internal/api"
	"arthasutra_backend/internal/feature/market/domain/entity"
	"arthasutra_backend/internal/feature/market/transport/http/dto"
	"arthasutra_backend/internal/feature/market/usecase"
)

// MarketUsecase は市場データ投影のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MarketUsecase interface {
	Universe(ctx context.Context) []entity.Quote
	Quote(ctx context.Context, symbol string) (entity.Quote, error)
	Movers(ctx context.Context, n int) usecase.Movers
	Sectors(ctx context.Context) []entity.SectorAggregate
	Flow(ctx context.Context) entity.FlowSnapshot
	Forecasts(ctx context.Context) []entity.Forecast
	Search(ctx context.Context, query string, limit int) []entity.Quote
}

// MarketHandler は市場データのHTTPリクエストを処理します。
type MarketHandler struct {
	uc MarketUsecase
}

// NewMarketHandler は指定されたusecaseでMarketHandlerの新しいインスタンスを生成します。
func NewMarketHandler(uc MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// Quotes はカタログ全銘柄のスナップショットを返します。
//
// GET /v1/market/quotes
func (h *MarketHandler) Quotes(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FromQuotes(h.uc.Universe(c.Request.Context())))
}

// Quote は1銘柄のスナップショットを返します。カタログ外の銘柄は404です。
//
// GET /v1/market/quotes/:symbol
func (h *MarketHandler) Quote(c *gin.Context) {
	symbol := c.Param("symbol")
	q, err := h.uc.Quote(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, entity.ErrUnknownSymbol) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "unknown symbol: " + symbol})
			return
		}
		slog.Error("failed to generate quote", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to generate quote"})
		return
	}
	c.JSON(http.StatusOK, dto.FromQuote(q))
}

// Movers は値上がり・値下がり上位を返します。
//
// GET /v1/market/movers?n=5
func (h *MarketHandler) Movers(c *gin.Context) {
	// 不正な値はusecase側でデフォルトに丸める
	n, _ := strconv.Atoi(c.DefaultQuery("n", strconv.Itoa(usecase.DefaultMoversCount)))
	m := h.uc.Movers(c.Request.Context(), n)
	c.JSON(http.StatusOK, dto.MoversResponse{
		Gainers: dto.FromQuotes(m.Gainers),
		Losers:  dto.FromQuotes(m.Losers),
	})
}

// Sectors はセクター別騰落率を降順で返します。
//
// GET /v1/market/sectors
func (h *MarketHandler) Sectors(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FromSectors(h.uc.Sectors(c.Request.Context())))
}

// Flow はFII/DIIの売買フローを返します。
//
// GET /v1/market/flow
func (h *MarketHandler) Flow(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FromFlow(h.uc.Flow(c.Request.Context())))
}

// Premarket は寄り付き前予想を返します。
//
// GET /v1/market/premarket
func (h *MarketHandler) Premarket(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FromForecasts(h.uc.Forecasts(c.Request.Context())))
}

// Search は銘柄コードまたは表示名で検索します。結果は常に配列です。
//
// GET /v1/market/search?q=tata&limit=5
func (h *MarketHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultSearchLimit)))
	hits := h.uc.Search(c.Request.Context(), c.Query("q"), limit)
	c.JSON(http.StatusOK, dto.FromQuotes(hits))
}
