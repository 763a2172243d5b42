package usecase

import (
	"sync"

	"arthasutra_backend/internal/feature/insights/domain/entity"
)

// Ticket は詳細表示の選択ごとに発行される識別子です。
type Ticket struct {
	seq    uint64
	symbol string
}

// Symbol は選択された銘柄コードを返します。
func (t Ticket) Symbol() string { return t.symbol }

// DetailSnapshot はある時点の詳細表示の状態です。
type DetailSnapshot struct {
	Symbol    string
	Sentiment entity.Panel[entity.Sentiment]
	News      entity.Panel[[]entity.Article]
}

// DetailView は銘柄詳細のセンチメント・ニュースパネルを保持するビューモデルです。
// 別の銘柄が選択された後に届いた古い結果は破棄します。
type DetailView struct {
	mu        sync.Mutex
	seq       uint64
	symbol    string
	sentiment entity.Panel[entity.Sentiment]
	news      entity.Panel[[]entity.Article]
}

// NewDetailView は未選択状態のDetailViewを生成します。
func NewDetailView() *DetailView {
	return &DetailView{}
}

// Select は銘柄を選択し、両パネルをLoadingに戻します。
// 返したTicketでのみ結果を反映できます。
func (v *DetailView) Select(symbol string) Ticket {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.seq++
	v.symbol = symbol
	v.sentiment = entity.Panel[entity.Sentiment]{State: entity.PanelLoading}
	v.news = entity.Panel[[]entity.Article]{State: entity.PanelLoading}
	return Ticket{seq: v.seq, symbol: symbol}
}

// ApplySentiment はセンチメント結果を反映します。古いTicketの場合はfalseを返し何もしません。
func (v *DetailView) ApplySentiment(t Ticket, r entity.Result[entity.Sentiment]) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if t.seq != v.seq {
		return false
	}
	v.sentiment = entity.SentimentPanel(r)
	return true
}

// ApplyNews はニュース結果を反映します。古いTicketの場合はfalseを返し何もしません。
func (v *DetailView) ApplyNews(t Ticket, r entity.Result[[]entity.Article]) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if t.seq != v.seq {
		return false
	}
	v.news = entity.NewsPanel(r)
	return true
}

// Snapshot は現在の状態のコピーを返します。
func (v *DetailView) Snapshot() DetailSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	return DetailSnapshot{Symbol: v.symbol, Sentiment: v.sentiment, News: v.news}
}
