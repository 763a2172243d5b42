package entity

import "errors"

// ErrIncompleteAdvice は生成された推奨に欠けている項目がある場合のエラーです。
var ErrIncompleteAdvice = errors.New("advice is missing a stock or reason")

// IntradayPick は当日売買向けの推奨です。
type IntradayPick struct {
	Stock      string `json:"stock"`
	Reason     string `json:"reason"`
	RiskReward string `json:"riskReward"`
}

// HorizonPick は中長期の推奨です。
type HorizonPick struct {
	Stock     string `json:"stock"`
	Reason    string `json:"reason"`
	Timeframe string `json:"timeframe"`
}

// Advice は3つの投資期間ごとの推奨銘柄です。
// JSONタグはモデルの応答スキーマと一致させています。
type Advice struct {
	Intraday IntradayPick `json:"intraday"`
	MidTerm  HorizonPick  `json:"midTerm"`
	LongTerm HorizonPick  `json:"longTerm"`
}

// Validate は全期間に銘柄と理由があることを確認します。
func (a Advice) Validate() error {
	for _, p := range [][2]string{
		{a.Intraday.Stock, a.Intraday.Reason},
		{a.MidTerm.Stock, a.MidTerm.Reason},
		{a.LongTerm.Stock, a.LongTerm.Reason},
	} {
		if p[0] == "" || p[1] == "" {
			return ErrIncompleteAdvice
		}
	}
	return nil
}
