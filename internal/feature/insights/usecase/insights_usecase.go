// Package usecase はinsightsフィーチャー（AIによる推奨・センチメント・ニュース）のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"arthasutra_backend/internal/feature/insights/domain/entity"
	marketentity "arthasutra_backend/internal/feature/market/domain/entity"
	"arthasutra_backend/internal/feature/market/domain/ranking"
)

// AdviceMoversCount は推奨生成に渡す値上がり・値下がり銘柄の件数です。
const AdviceMoversCount = 5

// Detail は銘柄詳細画面の内容です。
type Detail struct {
	Quote marketentity.Quote
	DetailSnapshot
}

// InsightsUsecase はゲートウェイ呼び出しを組み立て、結果をパネルに変換します。
type InsightsUsecase struct {
	market    MarketSource
	advice    AdviceGateway
	sentiment SentimentGateway
	news      NewsGateway
}

// NewInsightsUsecase はInsightsUsecaseの新しいインスタンスを生成します。
func NewInsightsUsecase(m MarketSource, a AdviceGateway, s SentimentGateway, n NewsGateway) *InsightsUsecase {
	return &InsightsUsecase{market: m, advice: a, sentiment: s, news: n}
}

// Advice は現在のスナップショットから値動き上位5件とセクター動向を求め、推奨を生成します。
func (u *InsightsUsecase) Advice(ctx context.Context) entity.Panel[entity.Advice] {
	universe := u.market.GenerateUniverse()
	in := AdviceInput{
		Gainers: ranking.TopGainers(universe, AdviceMoversCount),
		Losers:  ranking.TopLosers(universe, AdviceMoversCount),
		Sectors: u.market.GenerateSectors(),
	}
	return entity.AdvicePanel(u.advice.Advise(ctx, in))
}

// Detail は銘柄のQuoteを生成し、センチメントとニュースを並行して取得します。
// 片方の失敗はもう片方に影響しません。
func (u *InsightsUsecase) Detail(ctx context.Context, symbol string) (Detail, error) {
	q, err := u.quote(symbol)
	if err != nil {
		return Detail{}, err
	}

	view := NewDetailView()
	ticket := view.Select(q.Symbol)

	// ゲートウェイの失敗はResultとしてパネルに入るため、各goroutineは常にnilを返す。
	// このグループは失敗せず、Waitは両方の完了を待つためだけに使う
	var g errgroup.Group
	g.Go(func() error {
		view.ApplySentiment(ticket, u.sentiment.Sentiment(ctx, q))
		return nil
	})
	g.Go(func() error {
		view.ApplyNews(ticket, u.news.News(ctx, q))
		return nil
	})
	_ = g.Wait()

	return Detail{Quote: q, DetailSnapshot: view.Snapshot()}, nil
}

// Sentiment はセンチメントパネルのみを返します。
func (u *InsightsUsecase) Sentiment(ctx context.Context, symbol string) (entity.Panel[entity.Sentiment], error) {
	q, err := u.quote(symbol)
	if err != nil {
		return entity.Panel[entity.Sentiment]{}, err
	}
	return entity.SentimentPanel(u.sentiment.Sentiment(ctx, q)), nil
}

// News はニュースパネルのみを返します。
func (u *InsightsUsecase) News(ctx context.Context, symbol string) (entity.Panel[[]entity.Article], error) {
	q, err := u.quote(symbol)
	if err != nil {
		return entity.Panel[[]entity.Article]{}, err
	}
	return entity.NewsPanel(u.news.News(ctx, q)), nil
}

// Quote はカタログ上の銘柄であることを確認し、そのQuoteを返します。
// カタログ外の銘柄は marketentity.ErrUnknownSymbol を包んだエラーです。
func (u *InsightsUsecase) Quote(ctx context.Context, symbol string) (marketentity.Quote, error) {
	return u.quote(symbol)
}

func (u *InsightsUsecase) quote(symbol string) (marketentity.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	q, err := u.market.GenerateQuote(symbol)
	if err != nil {
		return marketentity.Quote{}, fmt.Errorf("quote for %q: %w", symbol, err)
	}
	return q, nil
}
