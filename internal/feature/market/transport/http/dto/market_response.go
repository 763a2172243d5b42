// Package dto はmarketフィーチャーのHTTPレスポンスDTOを定義します。
package dto

import "arthasutra_backend/internal/feature/market/domain/entity"

// QuoteResponse は銘柄スナップショットのレスポンスDTOです。
type QuoteResponse struct {
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	LastPrice       float64 `json:"ltp"`
	Change          float64 `json:"change"`
	ChangePercent   float64 `json:"pChange"`
	Volume          int64   `json:"volume"`
	MarketCap       int64   `json:"marketCap"`
	PERatio         float64 `json:"peRatio"`
	IndustryPERatio float64 `json:"industryPe"`
	Sector          string  `json:"sector"`
}

// MoversResponse は値上がり・値下がり上位のレスポンスDTOです。
type MoversResponse struct {
	Gainers []QuoteResponse `json:"gainers"`
	Losers  []QuoteResponse `json:"losers"`
}

// SectorResponse はセクター騰落率のレスポンスDTOです。
type SectorResponse struct {
	Name          string  `json:"name"`
	ChangePercent float64 `json:"change"`
}

// FlowSide はFIIまたはDIIの片側の売買金額です（単位: クロール）。
type FlowSide struct {
	Buy       int64   `json:"buy"`
	Sell      int64   `json:"sell"`
	Net       int64   `json:"net"`
	Direction string  `json:"direction"`
	BuyRatio  float64 `json:"buyRatio"`
}

// FlowResponse は機関投資家フローのレスポンスDTOです。
type FlowResponse struct {
	Date string   `json:"date"`
	FII  FlowSide `json:"fii"`
	DII  FlowSide `json:"dii"`
}

// ForecastResponse は寄り付き前予想のレスポンスDTOです。
type ForecastResponse struct {
	Index      string   `json:"index"`
	Prediction string   `json:"prediction"`
	Sentiment  string   `json:"sentiment"`
	Factors    []string `json:"factors"`
}

// FromQuote はQuoteをレスポンスDTOに変換します。
func FromQuote(q entity.Quote) QuoteResponse {
	return QuoteResponse{
		Symbol:          q.Symbol,
		Name:            q.Name,
		LastPrice:       q.LastPrice,
		Change:          q.Change,
		ChangePercent:   q.ChangePercent,
		Volume:          q.Volume,
		MarketCap:       q.MarketCap,
		PERatio:         q.PERatio,
		IndustryPERatio: q.IndustryPERatio,
		Sector:          string(q.Sector),
	}
}

// FromQuotes はQuoteのスライスを変換します。nilでも空配列を返します。
func FromQuotes(qs []entity.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

// FromSectors はセクター騰落率を変換します。
func FromSectors(ss []entity.SectorAggregate) []SectorResponse {
	out := make([]SectorResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, SectorResponse{Name: string(s.Name), ChangePercent: s.ChangePercent})
	}
	return out
}

// FromFlow は売買フローを差額・方向・買い比率付きで変換します。
func FromFlow(f entity.FlowSnapshot) FlowResponse {
	return FlowResponse{
		Date: f.Date,
		FII: FlowSide{
			Buy:       f.FIIBuy,
			Sell:      f.FIISell,
			Net:       f.FIINet(),
			Direction: string(f.FIIDirection()),
			BuyRatio:  f.FIIBuyRatio(),
		},
		DII: FlowSide{
			Buy:       f.DIIBuy,
			Sell:      f.DIISell,
			Net:       f.DIINet(),
			Direction: string(f.DIIDirection()),
			BuyRatio:  f.DIIBuyRatio(),
		},
	}
}

// FromForecasts は寄り付き前予想を変換します。
func FromForecasts(fs []entity.Forecast) []ForecastResponse {
	out := make([]ForecastResponse, 0, len(fs))
	for _, f := range fs {
		factors := make([]string, len(f.Factors))
		copy(factors, f.Factors)
		out = append(out, ForecastResponse{
			Index:      f.Index,
			Prediction: f.Prediction,
			Sentiment:  string(f.Sentiment),
			Factors:    factors,
		})
	}
	return out
}
