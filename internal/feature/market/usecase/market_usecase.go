// Package usecase はmarketフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"arthasutra_backend/internal/feature/market/domain/catalog"
	"arthasutra_backend/internal/feature/market/domain/entity"
	"arthasutra_backend/internal/feature/market/domain/ranking"
)

const (
	// DefaultMoversCount は値上がり・値下がり上位のデフォルト件数です。
	DefaultMoversCount = 5
	// MaxMoversCount は値上がり・値下がり上位の最大件数です。
	MaxMoversCount = 50
	// DefaultSearchLimit は検索結果のデフォルト件数です。
	DefaultSearchLimit = 5
	// MaxSearchLimit は検索結果の最大件数です。
	MaxSearchLimit = 50
	// MinQueryLength はこれより短いクエリを検索しない文字数（rune数）です。
	MinQueryLength = 2
)

// SymbolMatcher はクエリに一致する銘柄コードを返す検索インデックスです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SymbolMatcher interface {
	Match(ctx context.Context, query string) ([]string, error)
}

// Movers は値上がり上位と値下がり上位の組です。
type Movers struct {
	Gainers []entity.Quote
	Losers  []entity.Quote
}

// MarketUsecase はダッシュボード向けの市場データ投影を提供します。
type MarketUsecase struct {
	gen     Generator
	catalog *catalog.Catalog
	matcher SymbolMatcher
}

// NewMarketUsecase はMarketUsecaseの新しいインスタンスを生成します。
// matcherがnilの場合はカタログの部分一致走査で検索します。
func NewMarketUsecase(gen Generator, c *catalog.Catalog, matcher SymbolMatcher) *MarketUsecase {
	return &MarketUsecase{gen: gen, catalog: c, matcher: matcher}
}

// Universe はカタログ全銘柄のQuoteを返します。
func (u *MarketUsecase) Universe(ctx context.Context) []entity.Quote {
	return u.gen.GenerateUniverse()
}

// Quote は1銘柄分のQuoteを返します。
func (u *MarketUsecase) Quote(ctx context.Context, symbol string) (entity.Quote, error) {
	return u.gen.GenerateQuote(strings.ToUpper(strings.TrimSpace(symbol)))
}

// Movers は同一スナップショットから値上がり・値下がり上位n件を導出します。
func (u *MarketUsecase) Movers(ctx context.Context, n int) Movers {
	if n <= 0 || n > MaxMoversCount {
		n = DefaultMoversCount
	}
	universe := u.gen.GenerateUniverse()
	return Movers{
		Gainers: ranking.TopGainers(universe, n),
		Losers:  ranking.TopLosers(universe, n),
	}
}

// Sectors はセクター別騰落率を返します。
func (u *MarketUsecase) Sectors(ctx context.Context) []entity.SectorAggregate {
	return u.gen.GenerateSectors()
}

// Flow はFII/DIIの売買フローを返します。
func (u *MarketUsecase) Flow(ctx context.Context) entity.FlowSnapshot {
	return u.gen.GenerateFlow()
}

// Forecasts は寄り付き前予想を返します。
func (u *MarketUsecase) Forecasts(ctx context.Context) []entity.Forecast {
	return u.gen.GenerateForecasts()
}

// Search はクエリに一致する銘柄をカタログ順で最大limit件返します。
// 短いクエリはGeneratorを呼ばずに空の結果を返し、Quoteは一致した銘柄についてのみ生成します。
func (u *MarketUsecase) Search(ctx context.Context, query string, limit int) []entity.Quote {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return []entity.Quote{}
	}
	if limit <= 0 || limit > MaxSearchLimit {
		limit = DefaultSearchLimit
	}

	symbols := u.match(ctx, query)
	sort.SliceStable(symbols, func(i, j int) bool {
		return u.catalog.Position(symbols[i]) < u.catalog.Position(symbols[j])
	})

	out := make([]entity.Quote, 0, limit)
	for _, s := range symbols {
		if len(out) == limit {
			break
		}
		q, err := u.gen.GenerateQuote(s)
		if err != nil {
			slog.Warn("search hit is not in the catalog", "symbol", s, "error", err)
			continue
		}
		out = append(out, q)
	}
	return out
}

// match はインデックスで一致銘柄を求め、失敗時はカタログ走査に切り替えます。
func (u *MarketUsecase) match(ctx context.Context, query string) []string {
	if u.matcher != nil {
		symbols, err := u.matcher.Match(ctx, query)
		if err == nil {
			return dedupeKnown(u.catalog, symbols)
		}
		slog.Warn("search index failed, scanning catalog", "query", query, "error", err)
	}
	return ScanCatalog(u.catalog, query)
}

// ScanCatalog はカタログを走査して部分一致する銘柄コードをカタログ順で返します。
func ScanCatalog(c *catalog.Catalog, query string) []string {
	var out []string
	for _, e := range c.Entries() {
		if ranking.Matches(e.Symbol, e.Name, query) {
			out = append(out, e.Symbol)
		}
	}
	return out
}

func dedupeKnown(c *catalog.Catalog, symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if c.Position(s) < 0 {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
