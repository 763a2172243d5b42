package usecase

import "arthasutra_backend/internal/feature/market/domain/entity"

// Generator は市場スナップショットの供給元を抽象化します。
// 合成データ実装と実フィードのコネクタを差し替えられるよう、利用者側で定義します。
type Generator interface {
	// GenerateQuote は1銘柄分のQuoteを返します。カタログ外の銘柄は entity.ErrUnknownSymbol です。
	GenerateQuote(symbol string) (entity.Quote, error)
	// GenerateUniverse はカタログ全銘柄のQuoteをカタログ順で返します。
	GenerateUniverse() []entity.Quote
	// GenerateSectors はセクター別騰落率を返します。
	GenerateSectors() []entity.SectorAggregate
	// GenerateFlow は機関投資家の売買フローを返します。
	GenerateFlow() entity.FlowSnapshot
	// GenerateForecasts は寄り付き前予想を返します。
	GenerateForecasts() []entity.Forecast
}
