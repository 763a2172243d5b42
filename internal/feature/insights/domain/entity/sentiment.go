package entity

// Mood はセンチメントスコアの3段階ラベルです。
type Mood string

const (
	Bearish Mood = "Bearish"
	Neutral Mood = "Neutral"
	Bullish Mood = "Bullish"
)

// moodThreshold を超えるとBullish、下回るとBearishになります。
const moodThreshold = 0.33

// Source はセンチメントの根拠となったWebページです。
type Source struct {
	URI   string
	Title string
}

// Sentiment は1銘柄に対する市場の見方の要約です。
type Sentiment struct {
	Summary string   // 1文の要約
	Score   float64  // -1（弱気）〜 1（強気）
	Sources []Source // 検索グラウンディングの出典
}

// Mood はスコアからラベルを導出します。
func (s Sentiment) Mood() Mood {
	switch {
	case s.Score < -moodThreshold:
		return Bearish
	case s.Score > moodThreshold:
		return Bullish
	default:
		return Neutral
	}
}

// ClampScore はスコアを[-1, 1]に収めます。
func ClampScore(v float64) float64 {
	return max(-1, min(1, v))
}
