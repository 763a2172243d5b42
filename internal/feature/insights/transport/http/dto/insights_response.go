// Package dto はinsightsフィーチャーのHTTPレスポンス型を定義します。
package dto

import (
	"arthasutra_backend/internal/api"
	"arthasutra_backend/internal/feature/insights/domain/entity"
	"arthasutra_backend/internal/feature/insights/usecase"
	marketdto "arthasutra_backend/internal/feature/market/transport/http/dto"
)

// SourceResponse はセンチメントの出典です。
type SourceResponse struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// SentimentResponse はセンチメントの要約とスコアです。
type SentimentResponse struct {
	Summary string           `json:"summary"`
	Score   float64          `json:"score"`
	Mood    string           `json:"mood"`
	Sources []SourceResponse `json:"sources"`
}

// ArticleResponse はニュース記事です。
type ArticleResponse struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

// IntradayResponse は当日売買向けの推奨です。
type IntradayResponse struct {
	Stock      string `json:"stock"`
	Reason     string `json:"reason"`
	RiskReward string `json:"riskReward"`
}

// HorizonResponse は中長期の推奨です。
type HorizonResponse struct {
	Stock     string `json:"stock"`
	Reason    string `json:"reason"`
	Timeframe string `json:"timeframe"`
}

// AdviceResponse は3期間の推奨です。
type AdviceResponse struct {
	Intraday IntradayResponse `json:"intraday"`
	MidTerm  HorizonResponse  `json:"midTerm"`
	LongTerm HorizonResponse  `json:"longTerm"`
}

// DetailResponse は銘柄詳細画面のレスポンスです。
type DetailResponse struct {
	Quote     marketdto.QuoteResponse              `json:"quote"`
	Sentiment api.PanelResponse[SentimentResponse] `json:"sentiment"`
	News      api.PanelResponse[[]ArticleResponse] `json:"news"`
}

// FromSentiment はentity.SentimentをSentimentResponseに変換します。
func FromSentiment(s entity.Sentiment) SentimentResponse {
	sources := make([]SourceResponse, 0, len(s.Sources))
	for _, src := range s.Sources {
		sources = append(sources, SourceResponse{URI: src.URI, Title: src.Title})
	}
	return SentimentResponse{
		Summary: s.Summary,
		Score:   s.Score,
		Mood:    string(s.Mood()),
		Sources: sources,
	}
}

// FromArticles は記事一覧を変換します。nilは空配列になります。
func FromArticles(articles []entity.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, ArticleResponse{Title: a.Title, URL: a.URL, Source: a.Source})
	}
	return out
}

// FromAdvice はentity.AdviceをAdviceResponseに変換します。
func FromAdvice(a entity.Advice) AdviceResponse {
	return AdviceResponse{
		Intraday: IntradayResponse{Stock: a.Intraday.Stock, Reason: a.Intraday.Reason, RiskReward: a.Intraday.RiskReward},
		MidTerm:  HorizonResponse{Stock: a.MidTerm.Stock, Reason: a.MidTerm.Reason, Timeframe: a.MidTerm.Timeframe},
		LongTerm: HorizonResponse{Stock: a.LongTerm.Stock, Reason: a.LongTerm.Reason, Timeframe: a.LongTerm.Timeframe},
	}
}

// FromPanel はパネルをレスポンスに変換します。DataはReady・Emptyのときだけ設定します。
func FromPanel[T, R any](p entity.Panel[T], convert func(T) R) api.PanelResponse[R] {
	resp := api.PanelResponse[R]{Status: api.PanelStatus(p.State), Message: p.Message}
	if p.State == entity.PanelReady || p.State == entity.PanelEmpty {
		data := convert(p.Data)
		resp.Data = &data
	}
	return resp
}

// FromDetail はusecase.DetailをDetailResponseに変換します。
func FromDetail(d usecase.Detail) DetailResponse {
	return DetailResponse{
		Quote:     marketdto.FromQuote(d.Quote),
		Sentiment: FromPanel(d.Sentiment, FromSentiment),
		News:      FromPanel(d.News, FromArticles),
	}
}
