// Package usecase はローソク足データ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"arthasutra_backend/internal/feature/candles/domain/entity"
	marketentity "arthasutra_backend/internal/feature/market/domain/entity"
)

// DefaultInterval はローソク足クエリのデフォルト時間間隔です。
const DefaultInterval = entity.Interval5Min

// QuoteSource は系列の終点となる現在値を供給します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type QuoteSource interface {
	GenerateQuote(symbol string) (marketentity.Quote, error)
}

// SeriesGenerator はQuoteに整合する当日の分足系列を生成します。
type SeriesGenerator interface {
	Intraday(q marketentity.Quote, iv entity.Interval, day time.Time) []entity.Candle
}

// candlesUsecase はローソク足データ操作のユースケースを定義します。
type candlesUsecase struct {
	quotes QuoteSource
	series SeriesGenerator
	now    func() time.Time
}

// NewCandlesUsecase はcandlesUsecaseの新しいインスタンスを生成します。
func NewCandlesUsecase(quotes QuoteSource, series SeriesGenerator) *candlesUsecase {
	return &candlesUsecase{quotes: quotes, series: series, now: time.Now}
}

// GetIntraday は銘柄の当日分足を返します。intervalが空の場合はDefaultIntervalです。
// 不正なintervalはentity.ErrInvalidInterval、カタログ外の銘柄はmarketentity.ErrUnknownSymbolです。
func (cu *candlesUsecase) GetIntraday(ctx context.Context, symbol, interval string) ([]entity.Candle, error) {
	if interval == "" {
		interval = string(DefaultInterval)
	}
	iv, err := entity.ParseInterval(interval)
	if err != nil {
		return nil, err
	}

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	q, err := cu.quotes.GenerateQuote(symbol)
	if err != nil {
		return nil, fmt.Errorf("quote for %q: %w", symbol, err)
	}

	return cu.series.Intraday(q, iv, cu.now()), nil
}
