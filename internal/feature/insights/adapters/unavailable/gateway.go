// Package unavailable はAPIキー未設定時に使うゲートウェイを提供します。
// 外部呼び出しは一切行わず、常に固定の「利用不可」メッセージを返します。
package unavailable

import (
	"context"

	"arthasutra_backend/internal/feature/insights/domain/entity"
	"arthasutra_backend/internal/feature/insights/usecase"
	marketentity "arthasutra_backend/internal/feature/market/domain/entity"
)

// Gateway は全ゲートウェイを「利用不可」として実装します。
type Gateway struct{}

var (
	_ usecase.AdviceGateway    = Gateway{}
	_ usecase.SentimentGateway = Gateway{}
	_ usecase.NewsGateway      = Gateway{}
)

// Advise は常にAdviceUnavailableを返します。
func (Gateway) Advise(context.Context, usecase.AdviceInput) entity.Result[entity.Advice] {
	return entity.Err[entity.Advice](entity.AdviceUnavailable)
}

// Sentiment は常にSentimentUnavailableを返します。
func (Gateway) Sentiment(context.Context, marketentity.Quote) entity.Result[entity.Sentiment] {
	return entity.Err[entity.Sentiment](entity.SentimentUnavailable)
}

// News は常にNewsUnavailableを返します。
func (Gateway) News(context.Context, marketentity.Quote) entity.Result[[]entity.Article] {
	return entity.Err[[]entity.Article](entity.NewsUnavailable)
}
