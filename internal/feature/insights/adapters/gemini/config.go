// Package gemini はGoogle Gemini APIを使用した推奨・センチメント・ニュースのゲートウェイを提供します。
package gemini

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultAdviceModel は推奨生成に使うモデルです。
	DefaultAdviceModel = "gemini-2.5-pro"
	// DefaultFastModel はセンチメント・ニュースに使うモデルです。
	DefaultFastModel = "gemini-2.5-flash"
	// DefaultThinkingBudget は推奨生成時の思考トークン上限です。
	DefaultThinkingBudget int32 = 32768
	// DefaultTimeout は1リクエストあたりのHTTPタイムアウトです。
	DefaultTimeout = 60 * time.Second
	// DefaultRequestsPerMinute は1分あたりのAPI呼び出し上限です。
	DefaultRequestsPerMinute = 30
)

// Config はGeminiゲートウェイの設定を保持します。
type Config struct {
	APIKey         string        // 空の場合はゲートウェイを無効化する
	AdviceModel    string        // 推奨生成モデル
	FastModel      string        // 検索グラウンディング付きの軽量モデル
	ThinkingBudget int32         // 推奨生成の思考トークン上限
	Timeout        time.Duration // HTTPリクエストタイムアウト

	// RequestsPerMinute はAPI呼び出しの上限です。0以下で無制限
	RequestsPerMinute int
}

// Enabled はAPIキーが設定されているかを返します。
func (c Config) Enabled() bool { return c.APIKey != "" }

// LoadConfig は環境変数からGeminiの設定を読み込みます。
// GEMINI_API_KEYが未設定の場合はAPI_KEYを参照します。
func LoadConfig() Config {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		key = os.Getenv("API_KEY")
	}
	cfg := Config{
		APIKey:         key,
		AdviceModel:    getEnv("GEMINI_ADVICE_MODEL", DefaultAdviceModel),
		FastModel:      getEnv("GEMINI_FAST_MODEL", DefaultFastModel),
		ThinkingBudget: DefaultThinkingBudget,
		Timeout:        DefaultTimeout,

		RequestsPerMinute: DefaultRequestsPerMinute,
	}
	if v, err := strconv.ParseInt(os.Getenv("GEMINI_THINKING_BUDGET"), 10, 32); err == nil && v >= 0 {
		cfg.ThinkingBudget = int32(v)
	}
	if d, err := time.ParseDuration(os.Getenv("GEMINI_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	if v, err := strconv.Atoi(os.Getenv("GEMINI_RPM")); err == nil {
		cfg.RequestsPerMinute = v
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
