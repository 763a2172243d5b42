package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/genai"

	"arthasutra_backend/internal/feature/insights/domain/entity"
	"arthasutra_backend/internal/feature/insights/usecase"
	marketentity "arthasutra_backend/internal/feature/market/domain/entity"
	"arthasutra_backend/internal/shared/ratelimiter"
)

// contentGenerator はgenai.Modelsのうち本パッケージが使うメソッドです。
// テストでは偽のモデルに差し替えます。
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gateway はGemini APIで推奨・センチメント・ニュースを生成します。
// 失敗はすべてログに記録したうえで固定メッセージのResultに変換します。
type Gateway struct {
	models  contentGenerator
	cfg     Config
	limiter ratelimiter.Limiter // nilの場合は無制限
}

// Gatewayが各ゲートウェイインターフェースを実装していることをコンパイル時に検証します。
var (
	_ usecase.AdviceGateway    = (*Gateway)(nil)
	_ usecase.SentimentGateway = (*Gateway)(nil)
	_ usecase.NewsGateway      = (*Gateway)(nil)
)

// NewGateway はAPIキー認証のGemini APIクライアントでGatewayを生成します。
// httpClientにはタイムアウト設定済みのクライアントを渡します。
func NewGateway(ctx context.Context, cfg Config, httpClient *http.Client) (*Gateway, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	g := newGateway(client.Models, cfg)
	if cfg.RequestsPerMinute > 0 {
		g.limiter = ratelimiter.NewRateLimiter(cfg.RequestsPerMinute, time.Minute)
	}
	return g, nil
}

func newGateway(m contentGenerator, cfg Config) *Gateway {
	return &Gateway{models: m, cfg: cfg}
}

// Advise は値動き上位とセクター動向から3期間の推奨銘柄を生成します。
// JSONモードと応答スキーマで出力形式を固定し、思考トークンを割り当てます。
func (g *Gateway) Advise(ctx context.Context, in usecase.AdviceInput) entity.Result[entity.Advice] {
	if err := g.wait(ctx); err != nil {
		slog.Warn("gemini advice request throttled", "error", err)
		return entity.Err[entity.Advice](entity.AdviceFailed)
	}
	resp, err := g.models.GenerateContent(ctx, g.cfg.AdviceModel, genai.Text(advicePrompt(in)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   adviceSchema(),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(g.cfg.ThinkingBudget),
		},
	})
	if err != nil {
		slog.Warn("gemini advice request failed", "model", g.cfg.AdviceModel, "error", err)
		return entity.Err[entity.Advice](entity.AdviceFailed)
	}

	advice, err := parseAdvice(textOf(resp))
	if err != nil {
		slog.Warn("gemini advice reply rejected", "model", g.cfg.AdviceModel, "error", err)
		return entity.Err[entity.Advice](entity.AdviceFailed)
	}
	return entity.Ok(advice)
}

// Sentiment はGoogle検索でグラウンディングした1文の要約とスコアを返します。
// 検索ツールはJSONモードと併用できないため、2行のテキスト形式で受け取ります。
func (g *Gateway) Sentiment(ctx context.Context, q marketentity.Quote) entity.Result[entity.Sentiment] {
	if err := g.wait(ctx); err != nil {
		slog.Warn("gemini sentiment request throttled", "symbol", q.Symbol, "error", err)
		return entity.Err[entity.Sentiment](entity.SentimentFailed)
	}
	resp, err := g.models.GenerateContent(ctx, g.cfg.FastModel, genai.Text(sentimentPrompt(q)), searchConfig())
	if err != nil {
		slog.Warn("gemini sentiment request failed", "symbol", q.Symbol, "error", err)
		return entity.Err[entity.Sentiment](entity.SentimentFailed)
	}

	s, err := parseSentiment(textOf(resp))
	if err != nil {
		slog.Warn("gemini sentiment reply rejected", "symbol", q.Symbol, "error", err)
		return entity.Err[entity.Sentiment](entity.SentimentFailed)
	}
	s.Sources = groundingSources(resp)
	return entity.Ok(s)
}

// News はGoogle検索で最新ニュースを最大5件取得します。
// 整形済みの空配列は成功（0件）として扱います。
func (g *Gateway) News(ctx context.Context, q marketentity.Quote) entity.Result[[]entity.Article] {
	if err := g.wait(ctx); err != nil {
		slog.Warn("gemini news request throttled", "symbol", q.Symbol, "error", err)
		return entity.Err[[]entity.Article](entity.NewsFailed)
	}
	resp, err := g.models.GenerateContent(ctx, g.cfg.FastModel, genai.Text(newsPrompt(q)), searchConfig())
	if err != nil {
		slog.Warn("gemini news request failed", "symbol", q.Symbol, "error", err)
		return entity.Err[[]entity.Article](entity.NewsFailed)
	}

	articles, err := parseNews(textOf(resp))
	if err != nil {
		slog.Warn("gemini news reply rejected", "symbol", q.Symbol, "error", err)
		return entity.Err[[]entity.Article](entity.NewsFailed)
	}
	return entity.Ok(articles)
}

func (g *Gateway) wait(ctx context.Context) error {
	if g.limiter == nil {
		return nil
	}
	return g.limiter.Wait(ctx)
}

func searchConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
}

func textOf(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	return resp.Text()
}
