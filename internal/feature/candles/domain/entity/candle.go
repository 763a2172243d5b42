// Package entity はcandlesフィーチャーのドメインモデルを定義します。
package entity

import (
	"errors"
	"time"
)

// ErrInvalidInterval は対応外の足種が指定された場合に返されます。
var ErrInvalidInterval = errors.New("invalid interval")

// Interval は分足系列の足の幅です。
type Interval string

const (
	Interval1Min  Interval = "1min"
	Interval5Min  Interval = "5min"
	Interval15Min Interval = "15min"
	Interval30Min Interval = "30min"
)

// ParseInterval は s が対応する足種かを検証します。
func ParseInterval(s string) (Interval, error) {
	switch iv := Interval(s); iv {
	case Interval1Min, Interval5Min, Interval15Min, Interval30Min:
		return iv, nil
	}
	return "", ErrInvalidInterval
}

// Duration は足の幅を返します。
func (i Interval) Duration() time.Duration {
	switch i {
	case Interval1Min:
		return time.Minute
	case Interval5Min:
		return 5 * time.Minute
	case Interval15Min:
		return 15 * time.Minute
	case Interval30Min:
		return 30 * time.Minute
	}
	return 0
}

// Candle は銘柄の特定の足種におけるOHLCV（始値・高値・安値・終値・出来高）のローソク足データです。
type Candle struct {
	Symbol   string    // カタログの銘柄コード（例: "RELIANCE"）
	Interval Interval  // 足の幅
	Time     time.Time // この足の開始時刻（IST）
	Open     float64   // 始値
	High     float64   // 期間中の高値
	Low      float64   // 期間中の安値
	Close    float64   // 終値
	Volume   int64     // 出来高
}
