package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"arthasutra_backend/internal/feature/insights/domain/entity"
	"arthasutra_backend/internal/feature/insights/transport/handler"
	"arthasutra_backend/internal/feature/insights/usecase"
	marketentity "arthasutra_backend/internal/feature/market/domain/entity"
)

// mockInsightsUsecase はInsightsUsecaseインターフェースのモック実装です。
type mockInsightsUsecase struct {
	AdviceFunc    func(ctx context.Context) entity.Panel[entity.Advice]
	DetailFunc    func(ctx context.Context, symbol string) (usecase.Detail, error)
	SentimentFunc func(ctx context.Context, symbol string) (entity.Panel[entity.Sentiment], error)
	NewsFunc      func(ctx context.Context, symbol string) (entity.Panel[[]entity.Article], error)
	QuoteFunc     func(ctx context.Context, symbol string) (marketentity.Quote, error)
}

func (m *mockInsightsUsecase) Advice(ctx context.Context) entity.Panel[entity.Advice] {
	return m.AdviceFunc(ctx)
}

func (m *mockInsightsUsecase) Detail(ctx context.Context, symbol string) (usecase.Detail, error) {
	return m.DetailFunc(ctx, symbol)
}

func (m *mockInsightsUsecase) Sentiment(ctx context.Context, symbol string) (entity.Panel[entity.Sentiment], error) {
	return m.SentimentFunc(ctx, symbol)
}

func (m *mockInsightsUsecase) News(ctx context.Context, symbol string) (entity.Panel[[]entity.Article], error) {
	return m.NewsFunc(ctx, symbol)
}

func (m *mockInsightsUsecase) Quote(ctx context.Context, symbol string) (marketentity.Quote, error) {
	return m.QuoteFunc(ctx, symbol)
}

// catalogQuote はTCSとINFYだけをカタログ銘柄として扱うQuoteFuncです。
func catalogQuote(ctx context.Context, symbol string) (marketentity.Quote, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s != "TCS" && s != "INFY" {
		return marketentity.Quote{}, fmt.Errorf("quote for %q: %w", s, marketentity.ErrUnknownSymbol)
	}
	return marketentity.Quote{Symbol: s}, nil
}

// mockInvalidator はCacheInvalidatorインターフェースのモック実装です。
type mockInvalidator struct {
	InvalidateFunc func(ctx context.Context, symbol string) error
}

func (m *mockInvalidator) Invalidate(ctx context.Context, symbol string) error {
	return m.InvalidateFunc(ctx, symbol)
}

func newRouter(uc handler.InsightsUsecase) *gin.Engine {
	return newRouterWithCache(uc, nil)
}

func newRouterWithCache(uc handler.InsightsUsecase, cache handler.CacheInvalidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewInsightsHandler(uc, cache)
	r := gin.New()
	r.POST("/v1/insights/advice", h.Advice)
	r.GET("/v1/insights/stocks/:symbol", h.Detail)
	r.GET("/v1/insights/stocks/:symbol/sentiment", h.Sentiment)
	r.GET("/v1/insights/stocks/:symbol/news", h.News)
	r.DELETE("/v1/insights/stocks/:symbol/cache", h.Refresh)
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

// TestInsightsHandler_Advice は推奨パネルの各状態のレスポンスを検証します。
func TestInsightsHandler_Advice(t *testing.T) {
	t.Parallel()

	advice := entity.Advice{
		Intraday: entity.IntradayPick{Stock: "TCS", Reason: "r1", RiskReward: "1:2"},
		MidTerm:  entity.HorizonPick{Stock: "LT", Reason: "r2", Timeframe: "6m"},
		LongTerm: entity.HorizonPick{Stock: "ITC", Reason: "r3", Timeframe: "3y"},
	}

	tests := []struct {
		name     string
		panel    entity.Panel[entity.Advice]
		wantBody string
	}{
		{
			name:  "ready",
			panel: entity.AdvicePanel(entity.Ok(advice)),
			wantBody: `{"status":"ready","data":{` +
				`"intraday":{"stock":"TCS","reason":"r1","riskReward":"1:2"},` +
				`"midTerm":{"stock":"LT","reason":"r2","timeframe":"6m"},` +
				`"longTerm":{"stock":"ITC","reason":"r3","timeframe":"3y"}}}`,
		},
		{
			name:     "unavailable",
			panel:    entity.AdvicePanel(entity.Err[entity.Advice](entity.AdviceUnavailable)),
			wantBody: `{"status":"error","message":"API Key not configured. Cannot generate advice."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := &mockInsightsUsecase{AdviceFunc: func(ctx context.Context) entity.Panel[entity.Advice] {
				return tt.panel
			}}
			w := serve(newRouter(uc), http.MethodPost, "/v1/insights/advice")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

// TestInsightsHandler_Detail は詳細レスポンスと銘柄エラーの扱いを検証します。
func TestInsightsHandler_Detail(t *testing.T) {
	t.Parallel()

	detail := usecase.Detail{
		Quote: marketentity.Quote{
			Symbol: "TCS", Name: "Tata Consultancy Services", LastPrice: 100, Change: 1,
			ChangePercent: 1.01, Volume: 10, MarketCap: 14, PERatio: 30, IndustryPERatio: 40,
			Sector: marketentity.SectorTech,
		},
		DetailSnapshot: usecase.DetailSnapshot{
			Symbol: "TCS",
			Sentiment: entity.SentimentPanel(entity.Ok(entity.Sentiment{
				Summary: "Upbeat.", Score: 0.5,
				Sources: []entity.Source{{URI: "https://a.in/x", Title: "A"}},
			})),
			News: entity.NewsPanel(entity.Ok([]entity.Article{})),
		},
	}

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "success",
			wantCode: http.StatusOK,
			wantBody: `{"quote":{"symbol":"TCS","name":"Tata Consultancy Services","ltp":100,"change":1,` +
				`"pChange":1.01,"volume":10,"marketCap":14,"peRatio":30,"industryPe":40,"sector":"Tech"},` +
				`"sentiment":{"status":"ready","data":{"summary":"Upbeat.","score":0.5,"mood":"Bullish",` +
				`"sources":[{"uri":"https://a.in/x","title":"A"}]}},` +
				`"news":{"status":"empty","message":"No recent news found.","data":[]}}`,
		},
		{
			name:     "unknown symbol",
			err:      fmt.Errorf("quote for %q: %w", "TCS", marketentity.ErrUnknownSymbol),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"unknown symbol: TCS"}`,
		},
		{
			name:     "unexpected error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"failed to load stock insights"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotSymbol string
			uc := &mockInsightsUsecase{DetailFunc: func(ctx context.Context, symbol string) (usecase.Detail, error) {
				gotSymbol = symbol
				if tt.err != nil {
					return usecase.Detail{}, tt.err
				}
				return detail, nil
			}}
			w := serve(newRouter(uc), http.MethodGet, "/v1/insights/stocks/TCS")

			assert.Equal(t, "TCS", gotSymbol)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

// TestInsightsHandler_Panels はセンチメント・ニュース単体のエンドポイントを検証します。
func TestInsightsHandler_Panels(t *testing.T) {
	t.Parallel()

	uc := &mockInsightsUsecase{
		SentimentFunc: func(ctx context.Context, symbol string) (entity.Panel[entity.Sentiment], error) {
			return entity.SentimentPanel(entity.Err[entity.Sentiment](entity.SentimentFailed)), nil
		},
		NewsFunc: func(ctx context.Context, symbol string) (entity.Panel[[]entity.Article], error) {
			if symbol == "NOPE" {
				return entity.Panel[[]entity.Article]{}, marketentity.ErrUnknownSymbol
			}
			return entity.NewsPanel(entity.Ok([]entity.Article{
				{Title: "Deal", URL: "https://a.in/deal", Source: "a.in"},
			})), nil
		},
	}
	r := newRouter(uc)

	w := serve(r, http.MethodGet, "/v1/insights/stocks/TCS/sentiment")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Could not analyze sentiment at this time."}`, w.Body.String())

	w = serve(r, http.MethodGet, "/v1/insights/stocks/TCS/news")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready","data":[{"title":"Deal","url":"https://a.in/deal","source":"a.in"}]}`, w.Body.String())

	w = serve(r, http.MethodGet, "/v1/insights/stocks/NOPE/news")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestInsightsHandler_Refresh はキャッシュ破棄エンドポイントを検証します。
// カタログ外の銘柄（グロブ文字を含むものを含む）はキャッシュに触れず404になります。
func TestInsightsHandler_Refresh(t *testing.T) {
	t.Parallel()

	generatorDown := func(ctx context.Context, symbol string) (marketentity.Quote, error) {
		return marketentity.Quote{}, errors.New("generator down")
	}

	tests := []struct {
		name          string
		path          string
		quoteFunc     func(ctx context.Context, symbol string) (marketentity.Quote, error)
		invalidateErr error
		noCache       bool
		wantCalls     []string
		wantCode      int
		wantBody      string
	}{
		{
			name:     "no cache configured",
			path:     "/v1/insights/stocks/tcs/cache",
			noCache:  true,
			wantCode: http.StatusOK,
			wantBody: `{"message":"cache cleared for TCS"}`,
		},
		{
			name:      "invalidated",
			path:      "/v1/insights/stocks/tcs/cache",
			wantCalls: []string{"TCS"},
			wantCode:  http.StatusOK,
			wantBody:  `{"message":"cache cleared for TCS"}`,
		},
		{
			name:          "redis error",
			path:          "/v1/insights/stocks/tcs/cache",
			invalidateErr: errors.New("connection refused"),
			wantCalls:     []string{"TCS"},
			wantCode:      http.StatusInternalServerError,
			wantBody:      `{"error":"failed to invalidate cache"}`,
		},
		{
			name:     "unknown symbol",
			path:     "/v1/insights/stocks/NOPE/cache",
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"unknown symbol: NOPE"}`,
		},
		{
			name:     "glob symbol",
			path:     "/v1/insights/stocks/*/cache",
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"unknown symbol: *"}`,
		},
		{
			name:      "quote failure",
			path:      "/v1/insights/stocks/tcs/cache",
			quoteFunc: generatorDown,
			wantCode:  http.StatusInternalServerError,
			wantBody:  `{"error":"failed to load stock insights"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := &mockInsightsUsecase{QuoteFunc: catalogQuote}
			if tt.quoteFunc != nil {
				uc.QuoteFunc = tt.quoteFunc
			}

			var calls []string
			var cache handler.CacheInvalidator
			if !tt.noCache {
				cache = &mockInvalidator{InvalidateFunc: func(ctx context.Context, symbol string) error {
					calls = append(calls, symbol)
					return tt.invalidateErr
				}}
			}

			r := newRouterWithCache(uc, cache)
			w := serve(r, http.MethodDelete, tt.path)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}
