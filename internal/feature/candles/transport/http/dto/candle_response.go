// Package dto はcandlesフィーチャーのHTTPレスポンス型を定義します。
package dto

import (
	"time"

	"arthasutra_backend/internal/feature/candles/domain/entity"
)

// CandleResponse はロウソク足データのレスポンスDTOです。
type CandleResponse struct {
	Time   string  `json:"time"`   // 足の開始時刻（RFC3339, IST）
	Open   float64 `json:"open"`   // 始値
	High   float64 `json:"high"`   // 高値
	Low    float64 `json:"low"`    // 安値
	Close  float64 `json:"close"`  // 終値
	Volume int64   `json:"volume"` // 出来高
}

// FromCandles は足の一覧をレスポンスに変換します。nilは空配列になります。
func FromCandles(cs []entity.Candle) []CandleResponse {
	out := make([]CandleResponse, 0, len(cs))
	for _, x := range cs {
		out = append(out, CandleResponse{
			Time:   x.Time.Format(time.RFC3339),
			Open:   x.Open,
			High:   x.High,
			Low:    x.Low,
			Close:  x.Close,
			Volume: x.Volume,
		})
	}
	return out
}
