// Package dto はpulsemapフィーチャーのレスポンスDTOを定義します。
package dto

// TileResponse はツリーマップ1矩形分のレスポンスDTOです。
type TileResponse struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	LastPrice     float64 `json:"ltp"`
	ChangePercent float64 `json:"pChange"`
	MarketCap     int64   `json:"marketCap"`
	X0            float64 `json:"x0"`
	Y0            float64 `json:"y0"`
	X1            float64 `json:"x1"`
	Y1            float64 `json:"y1"`
	Color         string  `json:"color"`
}

// PulseMapResponse はキャンバスサイズと矩形一覧です。
type PulseMapResponse struct {
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
	Tiles  []TileResponse `json:"tiles"`
}
