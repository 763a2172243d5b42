package entity

// MarketSentiment は寄り付き予想のセンチメントタグです。
type MarketSentiment string

const (
	Bullish MarketSentiment = "Bullish"
	Bearish MarketSentiment = "Bearish"
	Neutral MarketSentiment = "Neutral"
)

// Forecast は指数ごとの寄り付き前予想です。
type Forecast struct {
	Index      string // "NIFTY 50" または "SENSEX"
	Prediction string
	Sentiment  MarketSentiment
	Factors    []string
}
