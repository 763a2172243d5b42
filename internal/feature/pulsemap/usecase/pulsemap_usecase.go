// Package usecase はpulsemapフィーチャー（時価総額ツリーマップ）のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"arthasutra_backend/internal/feature/market/domain/entity"
	"arthasutra_backend/internal/platform/colorscale"
	"arthasutra_backend/internal/platform/treemap"
)

// 既定のキャンバスと余白です。
const (
	DefaultWidth        = 1000.0
	DefaultHeight       = 600.0
	DefaultPaddingInner = 4.0
	DefaultPaddingOuter = 6.0
	// MaxDimension はキャンバスの一辺の上限です。
	MaxDimension = 10000.0
)

// UniverseSource は全銘柄のスナップショットを供給します。
type UniverseSource interface {
	GenerateUniverse() []entity.Quote
}

// Tile はツリーマップ上の1銘柄分の矩形です。
type Tile struct {
	Quote  entity.Quote
	X0, Y0 float64
	X1, Y1 float64
	Color  string // #rrggbb
}

// PulseMapUsecase は時価総額で重み付けしたツリーマップを生成します。
type PulseMapUsecase struct {
	src   UniverseSource
	scale *colorscale.Scale
}

// NewPulseMapUsecase はPulseMapUsecaseの新しいインスタンスを生成します。
// scaleがnilの場合は騰落率用の既定スケールを使います。
func NewPulseMapUsecase(src UniverseSource, scale *colorscale.Scale) *PulseMapUsecase {
	if scale == nil {
		scale = colorscale.Performance()
	}
	return &PulseMapUsecase{src: src, scale: scale}
}

// Build は指定サイズのキャンバスに全銘柄を配置します。
// width/heightが0以下の場合は既定値を使います。
func (u *PulseMapUsecase) Build(ctx context.Context, width, height float64) ([]Tile, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	width = min(width, MaxDimension)
	height = min(height, MaxDimension)

	universe := u.src.GenerateUniverse()
	nodes, err := treemap.Layout(universe, func(q entity.Quote) float64 {
		return float64(q.MarketCap)
	}, treemap.Options{
		Width:        width,
		Height:       height,
		PaddingInner: DefaultPaddingInner,
		PaddingOuter: DefaultPaddingOuter,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to lay out pulse map: %w", err)
	}

	tiles := make([]Tile, 0, len(nodes))
	for _, n := range nodes {
		tiles = append(tiles, Tile{
			Quote: n.Item,
			X0:    n.X0,
			Y0:    n.Y0,
			X1:    n.X1,
			Y1:    n.Y1,
			Color: u.scale.Hex(n.Item.ChangePercent),
		})
	}
	return tiles, nil
}
