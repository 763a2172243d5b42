// Package usecase は銘柄カタログの読み込みと一覧取得を実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"arthasutra_backend/internal/feature/market/domain/catalog"
	"arthasutra_backend/internal/feature/market/domain/entity"
	symbolentity "arthasutra_backend/internal/feature/symbollist/domain/entity"
)

// SymbolRepository は銘柄カタログの永続化層を抽象化します。
// Goの慣習に従い、インターフェースは提供側（adapters）ではなく利用側（usecase）で定義します。
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]symbolentity.Symbol, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, symbols []symbolentity.Symbol) error
}

// SymbolUsecase は銘柄カタログのビジネスロジックを提供します。
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase は指定されたリポジトリでSymbolUsecaseの新しいインスタンスを生成します。
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols は有効な銘柄を並び順で全件返します。
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]symbolentity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// LoadCatalog は有効な行を読み込み、不変のカタログを構築します。
// 行の並び順がそのままカタログ順になります。
func (u *SymbolUsecase) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	rows, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog symbols: %w", err)
	}
	entries := make([]catalog.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, catalog.Entry{
			Symbol: r.Code,
			Name:   r.Name,
			Sector: entity.SectorName(r.Sector),
		})
	}
	c, err := catalog.New(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	return c, nil
}

// SeedIfEmpty はテーブルが空の場合に指定されたエントリを投入し、投入件数を返します。
func (u *SymbolUsecase) SeedIfEmpty(ctx context.Context, entries []catalog.Entry) (int, error) {
	n, err := u.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count catalog symbols: %w", err)
	}
	if n > 0 {
		slog.Info("catalog table already populated, skipping seed", "rows", n)
		return 0, nil
	}
	symbols := SymbolsFromEntries(entries)
	if err := u.repo.CreateBatch(ctx, symbols); err != nil {
		return 0, fmt.Errorf("failed to seed catalog symbols: %w", err)
	}
	slog.Info("catalog table seeded", "rows", len(symbols))
	return len(symbols), nil
}

// SymbolsFromEntries はカタログエントリを、位置を並び順とする有効な行に変換します。
func SymbolsFromEntries(entries []catalog.Entry) []symbolentity.Symbol {
	out := make([]symbolentity.Symbol, 0, len(entries))
	for i, e := range entries {
		out = append(out, symbolentity.Symbol{
			Code:     e.Symbol,
			Name:     e.Name,
			Sector:   string(e.Sector),
			IsActive: true,
			SortKey:  i + 1,
		})
	}
	return out
}
