package di

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"arthasutra_backend/internal/app/config"
	candlessynthetic "arthasutra_backend/internal/feature/candles/adapters/synthetic"
	candleshandler "arthasutra_backend/internal/feature/candles/transport/handler"
	candlesusecase "arthasutra_backend/internal/feature/candles/usecase"
	"arthasutra_backend/internal/feature/insights/adapters/gemini"
	insightshandler "arthasutra_backend/internal/feature/insights/transport/handler"
	insightsusecase "arthasutra_backend/internal/feature/insights/usecase"
	"arthasutra_backend/internal/feature/market/adapters/bleveindex"
	"arthasutra_backend/internal/feature/market/adapters/synthetic"
	markethandler "arthasutra_backend/internal/feature/market/transport/handler"
	marketusecase "arthasutra_backend/internal/feature/market/usecase"
	pulsemaphandler "arthasutra_backend/internal/feature/pulsemap/transport/handler"
	pulsemapusecase "arthasutra_backend/internal/feature/pulsemap/usecase"
	symbollisthandler "arthasutra_backend/internal/feature/symbollist/transport/handler"
	"arthasutra_backend/internal/platform/colorscale"
	"arthasutra_backend/internal/platform/db"
	platformhandler "arthasutra_backend/internal/platform/http/handler"
	infraredis "arthasutra_backend/internal/platform/redis"
)

// Container は組み立て済みのハンドラーと、終了時に解放するリソースを保持します。
type Container struct {
	Market   *markethandler.MarketHandler
	PulseMap *pulsemaphandler.PulseMapHandler
	Symbols  *symbollisthandler.SymbolHandler
	Candles  *candleshandler.CandlesHandler
	Insights *insightshandler.InsightsHandler
	Checks   []platformhandler.Check

	closers []func() error
}

// Build は環境変数から全フィーチャーを組み立てます。
// Redisは任意で、接続に失敗した場合は警告を出してキャッシュなしで起動します。
func Build(ctx context.Context, cfg config.Config) (*Container, error) {
	c := &Container{}

	src, err := NewCatalogSource(ctx, db.LoadConfigFromEnv(), cfg.RunMigrations)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if src.DB != nil {
		sqlDB, err := src.DB.DB()
		if err != nil {
			return nil, fmt.Errorf("catalog db handle: %w", err)
		}
		c.closers = append(c.closers, sqlDB.Close)
		c.Checks = append(c.Checks, platformhandler.Check{Name: "catalog_db", Ping: sqlDB.PingContext})
	}

	var genOpts []synthetic.Option
	if cfg.MarketSeed != 0 {
		genOpts = append(genOpts, synthetic.WithSeed(cfg.MarketSeed))
		slog.Info("synthetic market data seeded", "seed", cfg.MarketSeed)
	}
	gen := synthetic.NewGenerator(src.Catalog, genOpts...)

	index, err := bleveindex.NewSymbolIndex(src.Catalog)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("symbol index: %w", err)
	}
	c.closers = append(c.closers, index.Close)

	var rdb *redis.Client
	if r, err := infraredis.NewRedisClient(ctx, infraredis.LoadConfig()); err != nil {
		slog.Warn("Redis unavailable; running without insights cache", "error", err)
	} else if r != nil {
		rdb = r
		c.closers = append(c.closers, rdb.Close)
		c.Checks = append(c.Checks, platformhandler.Check{Name: "redis", Ping: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}

	gw, err := NewGateways(ctx, gemini.LoadConfig(), rdb, cfg.CacheTTL)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("insights gateways: %w", err)
	}

	seriesSeed := cfg.MarketSeed
	if seriesSeed != 0 {
		seriesSeed++
	}

	c.Market = markethandler.NewMarketHandler(marketusecase.NewMarketUsecase(gen, src.Catalog, index))
	c.PulseMap = pulsemaphandler.NewPulseMapHandler(pulsemapusecase.NewPulseMapUsecase(gen, colorscale.Performance()))
	c.Symbols = symbollisthandler.NewSymbolHandler(src.Symbols)
	c.Candles = candleshandler.NewCandlesHandler(candlesusecase.NewCandlesUsecase(gen, candlessynthetic.NewSeriesGenerator(seriesSeed)))
	c.Insights = insightshandler.NewInsightsHandler(
		insightsusecase.NewInsightsUsecase(gen, gw.Advice, gw.Sentiment, gw.News),
		gw.Invalidator,
	)
	return c, nil
}

// Close は取得と逆の順序でリソースを解放します。
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
