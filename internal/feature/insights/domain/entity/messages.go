package entity

// パネルに表示する固定メッセージです。
const (
	AdviceUnavailable    = "API Key not configured. Cannot generate advice."
	AdviceFailed         = "Data Latency: Neutral Stance. Could not generate AI advice."
	SentimentUnavailable = "Sentiment analysis unavailable."
	SentimentFailed      = "Could not analyze sentiment at this time."
	NewsUnavailable      = "News feed unavailable."
	NewsFailed           = "Could not fetch news at this time."
	NewsEmpty            = "No recent news found."
)
