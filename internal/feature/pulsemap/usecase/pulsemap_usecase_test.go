package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arthasutra_backend/internal/feature/market/domain/entity"
	"arthasutra_backend/internal/feature/pulsemap/usecase"
	"arthasutra_backend/internal/platform/treemap"
)

// mockUniverse はUniverseSourceインターフェースのモック実装です。
type mockUniverse struct {
	quotes []entity.Quote
}

func (m *mockUniverse) GenerateUniverse() []entity.Quote { return m.quotes }

// TestPulseMapUsecase_Build はツリーマップの配置と色付けを検証します。
func TestPulseMapUsecase_Build(t *testing.T) {
	t.Parallel()

	src := &mockUniverse{quotes: []entity.Quote{
		{Symbol: "A", MarketCap: 20, ChangePercent: -3},
		{Symbol: "B", MarketCap: 5, ChangePercent: 0},
		{Symbol: "C", MarketCap: 10, ChangePercent: 2.5},
		{Symbol: "D", MarketCap: 1, ChangePercent: 4},
	}}
	uc := usecase.NewPulseMapUsecase(src, nil)

	tiles, err := uc.Build(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, tiles, 4)

	colors := map[string]string{}
	for i, tile := range tiles {
		assert.Equal(t, src.quotes[i].Symbol, tile.Quote.Symbol, "catalog order is kept")
		assert.GreaterOrEqual(t, tile.X0, usecase.DefaultPaddingOuter)
		assert.LessOrEqual(t, tile.X1, usecase.DefaultWidth-usecase.DefaultPaddingOuter+1e-9)
		assert.LessOrEqual(t, tile.Y1, usecase.DefaultHeight-usecase.DefaultPaddingOuter+1e-9)
		colors[tile.Quote.Symbol] = tile.Color
	}
	assert.Equal(t, "#ef4444", colors["A"])
	assert.Equal(t, "#4b5563", colors["B"])
	assert.Equal(t, "#22c55e", colors["D"], "values above +3 clamp to green")

	area := func(tl usecase.Tile) float64 { return (tl.X1 - tl.X0) * (tl.Y1 - tl.Y0) }
	assert.Greater(t, area(tiles[0]), area(tiles[2]))
	assert.Greater(t, area(tiles[2]), area(tiles[1]))
}

// TestPulseMapUsecase_Build_Empty は銘柄がない場合に空配列を返すことを検証します。
func TestPulseMapUsecase_Build_Empty(t *testing.T) {
	t.Parallel()

	tiles, err := usecase.NewPulseMapUsecase(&mockUniverse{}, nil).Build(context.Background(), 300, 200)
	require.NoError(t, err)
	assert.Empty(t, tiles)
}

// TestPulseMapUsecase_Build_InvalidWeight は時価総額が0の銘柄をエラーにすることを検証します。
func TestPulseMapUsecase_Build_InvalidWeight(t *testing.T) {
	t.Parallel()

	src := &mockUniverse{quotes: []entity.Quote{{Symbol: "A", MarketCap: 0}}}
	_, err := usecase.NewPulseMapUsecase(src, nil).Build(context.Background(), 300, 200)
	assert.ErrorIs(t, err, treemap.ErrInvalidWeight)
}

// TestPulseMapUsecase_Build_ClampsCanvas は過大なキャンバスを上限に丸めることを検証します。
func TestPulseMapUsecase_Build_ClampsCanvas(t *testing.T) {
	t.Parallel()

	src := &mockUniverse{quotes: []entity.Quote{{Symbol: "A", MarketCap: 1}}}
	tiles, err := usecase.NewPulseMapUsecase(src, nil).Build(context.Background(), 1e9, 1e9)
	require.NoError(t, err)
	require.Len(t, tiles, 1)
	assert.InDelta(t, usecase.MaxDimension-usecase.DefaultPaddingOuter, tiles[0].X1, 1e-9)
}
