// Package di はアプリケーションのコンポーネントを生成する依存性注入ファクトリを提供します。
package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"arthasutra_backend/internal/feature/market/domain/catalog"
	symbollistadapters "arthasutra_backend/internal/feature/symbollist/adapters"
	symbolentity "arthasutra_backend/internal/feature/symbollist/domain/entity"
	symbollistusecase "arthasutra_backend/internal/feature/symbollist/usecase"
	"arthasutra_backend/internal/platform/db"
)

const dbConnectTimeout = 60 * time.Second

// CatalogSource は読み込んだカタログと、/v1/market/symbols を提供するユースケースの組です。
// 組み込みカタログを使う場合、DBはnilです。
type CatalogSource struct {
	Catalog *catalog.Catalog
	Symbols *symbollistusecase.SymbolUsecase
	DB      *gorm.DB
}

// NewCatalogSource は銘柄カタログを読み込みます。
// DB未設定の場合は組み込みの一覧を読み取り専用で提供します。
// DBがある場合、runMigrations が真ならテーブルをマイグレーションして組み込みの一覧で初期投入し、
// そこからカタログを読み込みます。
func NewCatalogSource(ctx context.Context, cfg db.Config, runMigrations bool) (*CatalogSource, error) {
	if !cfg.Enabled() {
		uc := symbollistusecase.NewSymbolUsecase(symbollistadapters.NewStaticRepository(catalog.DefaultEntries()))
		c, err := uc.LoadCatalog(ctx)
		if err != nil {
			return nil, err
		}
		slog.Info("using built-in symbol catalog", "symbols", c.Len())
		return &CatalogSource{Catalog: c, Symbols: uc}, nil
	}

	gdb, err := db.Open(cfg, dbConnectTimeout)
	if err != nil {
		return nil, err
	}
	return catalogFromDB(ctx, gdb, runMigrations)
}

func catalogFromDB(ctx context.Context, gdb *gorm.DB, runMigrations bool) (*CatalogSource, error) {
	uc := symbollistusecase.NewSymbolUsecase(symbollistadapters.NewSymbolRepository(gdb))
	if runMigrations {
		if err := gdb.WithContext(ctx).AutoMigrate(&symbolentity.Symbol{}); err != nil {
			return nil, fmt.Errorf("failed to migrate catalog table: %w", err)
		}
		if _, err := uc.SeedIfEmpty(ctx, catalog.DefaultEntries()); err != nil {
			return nil, err
		}
	}
	c, err := uc.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded symbol catalog from database", "symbols", c.Len())
	return &CatalogSource{Catalog: c, Symbols: uc, DB: gdb}, nil
}
