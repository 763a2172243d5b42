package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"arthasutra_backend/internal/api"
	"arthasutra_backend/internal/feature/symbollist/domain/entity"
	"arthasutra_backend/internal/feature/symbollist/transport/http/dto"
)

// SymbolUsecase は銘柄カタログに関するユースケースのインターフェースです。
// Goの慣習に従い、インターフェースは提供側（usecase）ではなく利用側（handler）で定義します。
type SymbolUsecase interface {
	ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error)
}

// SymbolHandler は銘柄カタログに関するHTTPリクエストを処理します。
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler は新しい SymbolHandler を作成します。
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List は有効な銘柄の一覧を取得するAPIです。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListActiveSymbols(c.Request.Context())
	if err != nil {
		slog.Error("failed to list symbols", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list symbols"})
		return
	}
	out := make([]dto.SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, dto.SymbolItem{Symbol: s.Code, Name: s.Name, Sector: s.Sector})
	}
	c.JSON(http.StatusOK, out)
}
