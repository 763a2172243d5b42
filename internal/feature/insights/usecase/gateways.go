package usecase

import (
	"context"

	"arthasutra_backend/internal/feature/insights/domain/entity"
	marketentity "arthasutra_backend/internal/feature/market/domain/entity"
)

// AdviceInput は推奨生成に渡す市場データです。
type AdviceInput struct {
	Gainers []marketentity.Quote
	Losers  []marketentity.Quote
	Sectors []marketentity.SectorAggregate
}

// AdviceGateway は値動き上位とセクター動向から銘柄推奨を生成します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type AdviceGateway interface {
	Advise(ctx context.Context, in AdviceInput) entity.Result[entity.Advice]
}

// SentimentGateway は1銘柄の市場センチメントを要約します。
type SentimentGateway interface {
	Sentiment(ctx context.Context, q marketentity.Quote) entity.Result[entity.Sentiment]
}

// NewsGateway は1銘柄の最新ニュースを取得します。
type NewsGateway interface {
	News(ctx context.Context, q marketentity.Quote) entity.Result[[]entity.Article]
}

// MarketSource はinsightsが必要とする市場データの供給元です。
type MarketSource interface {
	GenerateQuote(symbol string) (marketentity.Quote, error)
	GenerateUniverse() []marketentity.Quote
	GenerateSectors() []marketentity.SectorAggregate
}
