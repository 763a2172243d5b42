package entity

import "errors"

// ErrUnknownSymbol はカタログに存在しない銘柄コードが指定された場合のエラーです。
var ErrUnknownSymbol = errors.New("unknown symbol")

// Quote は1銘柄分の合成スナップショットです。
// 生成のたびに新しく作られ、変更されることはありません。
type Quote struct {
	Symbol          string     // カタログのキー（例: "RELIANCE"）
	Name            string     // 表示名
	LastPrice       float64    // 最終取引価格
	Change          float64    // 前日比（絶対値）
	ChangePercent   float64    // 前日比（%）
	Volume          int64      // 出来高
	MarketCap       int64      // 時価総額（兆ルピー単位の粗い重み）
	PERatio         float64    // 株価収益率
	IndustryPERatio float64    // 業種平均PER
	Sector          SectorName // セクター
}
