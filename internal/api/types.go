// Package api はHTTPハンドラー間で共有するリクエスト・レスポンスの型を定義します。
package api

// ErrorResponse は2xx以外の全レスポンスのボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は単純な完了通知のボディです。
type MessageResponse struct {
	Message string `json:"message"`
}

// PanelStatus はインサイトパネルの表示状態です。
type PanelStatus string

const (
	PanelLoading PanelStatus = "loading"
	PanelReady   PanelStatus = "ready"
	PanelEmpty   PanelStatus = "empty"
	PanelError   PanelStatus = "error"
)

// PanelResponse はダッシュボード向けにゲートウェイの出力を包みます。
// Message は空・エラー状態の利用者向け文言で、Data はready・emptyの場合のみ設定されます。
type PanelResponse[T any] struct {
	Status  PanelStatus `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    *T          `json:"data,omitempty"`
}
