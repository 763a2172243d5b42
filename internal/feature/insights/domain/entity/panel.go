package entity

// PanelState は詳細画面の各パネルの表示状態です。
type PanelState string

const (
	PanelLoading PanelState = "loading"
	PanelReady   PanelState = "ready"
	PanelEmpty   PanelState = "empty"
	PanelError   PanelState = "error"
)

// Panel はゲートウェイ結果を表示用に変換したものです。
// DataはReadyのときだけ意味を持ち、Messageは空・エラー状態の表示文言です。
type Panel[T any] struct {
	State   PanelState
	Message string
	Data    T
}

// SentimentPanel はResultをセンチメントパネルに変換します。
func SentimentPanel(r Result[Sentiment]) Panel[Sentiment] {
	v, ok := r.Value()
	if !ok {
		return Panel[Sentiment]{State: PanelError, Message: r.Reason()}
	}
	return Panel[Sentiment]{State: PanelReady, Data: v}
}

// NewsPanel はResultをニュースパネルに変換します。0件はEmptyです。
func NewsPanel(r Result[[]Article]) Panel[[]Article] {
	v, ok := r.Value()
	switch {
	case !ok:
		return Panel[[]Article]{State: PanelError, Message: r.Reason()}
	case len(v) == 0:
		return Panel[[]Article]{State: PanelEmpty, Message: NewsEmpty, Data: []Article{}}
	default:
		return Panel[[]Article]{State: PanelReady, Data: v}
	}
}

// AdvicePanel はResultを推奨パネルに変換します。
func AdvicePanel(r Result[Advice]) Panel[Advice] {
	v, ok := r.Value()
	if !ok {
		return Panel[Advice]{State: PanelError, Message: r.Reason()}
	}
	return Panel[Advice]{State: PanelReady, Data: v}
}
