// Package handler はpulsemapフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"arthasutra_backend/internal/api"
	"arthasutra_backend/internal/feature/pulsemap/transport/http/dto"
	"arthasutra_backend/internal/feature/pulsemap/usecase"
)

// PulseMapUsecase はツリーマップ生成のユースケースインターフェースです。
type PulseMapUsecase interface {
	Build(ctx context.Context, width, height float64) ([]usecase.Tile, error)
}

// PulseMapHandler はツリーマップのHTTPリクエストを処理します。
type PulseMapHandler struct {
	uc PulseMapUsecase
}

// NewPulseMapHandler は新しい PulseMapHandler を作成します。
func NewPulseMapHandler(uc PulseMapUsecase) *PulseMapHandler {
	return &PulseMapHandler{uc: uc}
}

// Get は時価総額ツリーマップを返します。
//
// GET /v1/market/pulsemap?width=1000&height=600
func (h *PulseMapHandler) Get(c *gin.Context) {
	width, ok := dimension(c, "width", usecase.DefaultWidth)
	if !ok {
		return
	}
	height, ok := dimension(c, "height", usecase.DefaultHeight)
	if !ok {
		return
	}

	tiles, err := h.uc.Build(c.Request.Context(), width, height)
	if err != nil {
		slog.Error("failed to build pulse map", "width", width, "height", height, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to build pulse map"})
		return
	}

	out := make([]dto.TileResponse, 0, len(tiles))
	for _, t := range tiles {
		out = append(out, dto.TileResponse{
			Symbol:        t.Quote.Symbol,
			Name:          t.Quote.Name,
			Sector:        string(t.Quote.Sector),
			LastPrice:     t.Quote.LastPrice,
			ChangePercent: t.Quote.ChangePercent,
			MarketCap:     t.Quote.MarketCap,
			X0:            t.X0,
			Y0:            t.Y0,
			X1:            t.X1,
			Y1:            t.Y1,
			Color:         t.Color,
		})
	}
	c.JSON(http.StatusOK, dto.PulseMapResponse{
		Width:  min(width, usecase.MaxDimension),
		Height: min(height, usecase.MaxDimension),
		Tiles:  out,
	})
}

// dimension はクエリパラメータを正の数として読み取ります。不正な値は400を返します。
func dimension(c *gin.Context, key string, def float64) (float64, bool) {
	raw, present := c.GetQuery(key)
	if !present || raw == "" {
		return def, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !(v > 0) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid " + key})
		return 0, false
	}
	return v, true
}
