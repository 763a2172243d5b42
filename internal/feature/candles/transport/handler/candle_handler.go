// Package handler はcandlesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"arthasutra_backend/internal/api"
	"arthasutra_backend/internal/feature/candles/domain/entity"
	"arthasutra_backend/internal/feature/candles/transport/http/dto"
	"arthasutra_backend/internal/feature/candles/usecase"
	marketentity "arthasutra_backend/internal/feature/market/domain/entity"
)

// CandlesUsecase はローソク足データ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CandlesUsecase interface {
	GetIntraday(ctx context.Context, symbol, interval string) ([]entity.Candle, error)
}

// CandlesHandler はローソク足データのHTTPリクエストを処理します。
type CandlesHandler struct {
	uc CandlesUsecase
}

// NewCandlesHandler は指定されたusecaseでCandlesHandlerの新しいインスタンスを生成します。
func NewCandlesHandler(uc CandlesUsecase) *CandlesHandler {
	return &CandlesHandler{uc: uc}
}

// GetIntraday は銘柄コードと時間間隔を受け取り、当日の分足をJSONで返します。
//
// エンドポイント例:
// GET /v1/stocks/:symbol/history?interval=5min
func (h *CandlesHandler) GetIntraday(c *gin.Context) {
	symbol := c.Param("symbol")
	interval := c.DefaultQuery("interval", string(usecase.DefaultInterval))

	candles, err := h.uc.GetIntraday(c.Request.Context(), symbol, interval)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid interval: " + interval})
		case errors.Is(err, marketentity.ErrUnknownSymbol):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "unknown symbol: " + symbol})
		default:
			slog.Error("failed to generate intraday series", "symbol", symbol, "interval", interval, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to generate intraday series"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.FromCandles(candles))
}
