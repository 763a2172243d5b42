// Package synthetic は疑似乱数で市場データを合成するGenerator実装を提供します。
// 実データフィードのコネクタに差し替えられるよう、usecase.Generatorとして注入されます。
package synthetic

import (
	"math"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"arthasutra_backend/internal/feature/market/domain/catalog"
	"arthasutra_backend/internal/feature/market/domain/entity"
	"arthasutra_backend/internal/feature/market/usecase"
)

// 各値のサンプリング範囲です。
const (
	priceMin   = 500.0
	priceSpan  = 3000.0
	changeSpan = 5.0 // 騰落率は [-2.5, 2.5)

	volumeMin  = 100_000
	volumeSpan = 5_000_000

	marketCapMin  = 1
	marketCapSpan = 20

	peMin          = 15.0
	peSpan         = 50.0
	industryPEMin  = 20.0
	industryPESpan = 40.0

	sectorBias = 0.4 // セクター騰落率は (U-0.4)*3 で、やや上方に偏る
	sectorSpan = 3.0

	fiiMin  = 4000
	fiiSpan = 5000
	diiMin  = 3000
	diiSpan = 4000
)

// Generator は乱数で市場スナップショットを生成します。
// 呼び出しごとに独立したサンプルを返し、呼び出し間で状態を持ちません。
type Generator struct {
	catalog *catalog.Catalog
	now     func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// Generatorがusecase.Generatorを実装していることをコンパイル時に検証します。
var _ usecase.Generator = (*Generator)(nil)

// Option はGeneratorの設定を変更します。
type Option func(*Generator)

// WithSeed は乱数のシードを固定します。デモデータの再現に使います。
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithClock はフロー日付に使う時計を差し替えます。
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator は指定したカタログを元にGeneratorを生成します。
func NewGenerator(c *catalog.Catalog, opts ...Option) *Generator {
	g := &Generator{
		catalog: c,
		now:     time.Now,
		rnd:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateQuote は1銘柄分のQuoteを生成します。
func (g *Generator) GenerateQuote(symbol string) (entity.Quote, error) {
	e, ok := g.catalog.Lookup(symbol)
	if !ok {
		return entity.Quote{}, entity.ErrUnknownSymbol
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.quote(e), nil
}

// GenerateUniverse はカタログ全銘柄のQuoteをカタログ順で生成します。
func (g *Generator) GenerateUniverse() []entity.Quote {
	entries := g.catalog.Entries()
	out := make([]entity.Quote, 0, len(entries))

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, e := range entries {
		out = append(out, g.quote(e))
	}
	return out
}

// GenerateSectors はセクター別騰落率を降順で生成します。
// 構成銘柄のQuoteからは集計しません。
func (g *Generator) GenerateSectors() []entity.SectorAggregate {
	sectors := entity.Sectors()
	out := make([]entity.SectorAggregate, 0, len(sectors))

	g.mu.Lock()
	for _, s := range sectors {
		out = append(out, entity.SectorAggregate{
			Name:          s,
			ChangePercent: round2((g.rnd.Float64() - sectorBias) * sectorSpan),
		})
	}
	g.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ChangePercent > out[j].ChangePercent
	})
	return out
}

// GenerateFlow は当日のFII/DII売買金額を生成します。
func (g *Generator) GenerateFlow() entity.FlowSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return entity.FlowSnapshot{
		Date:    g.now().UTC().Format(time.DateOnly),
		FIIBuy:  g.intn(fiiSpan) + fiiMin,
		FIISell: g.intn(fiiSpan) + fiiMin,
		DIIBuy:  g.intn(diiSpan) + diiMin,
		DIISell: g.intn(diiSpan) + diiMin,
	}
}

// GenerateForecasts は寄り付き前予想を返します。現状は固定値です。
func (g *Generator) GenerateForecasts() []entity.Forecast {
	return []entity.Forecast{
		{
			Index:      "NIFTY 50",
			Prediction: "Gap up opening expected (150-200 pts).",
			Sentiment:  entity.Bullish,
			Factors:    []string{"Positive global cues", "Strong FII inflows"},
		},
		{
			Index:      "SENSEX",
			Prediction: "Likely to open in green, tracking global markets.",
			Sentiment:  entity.Bullish,
			Factors:    []string{"US market rally", "IT sector outlook"},
		},
	}
}

// quote は呼び出し元がmuを保持している前提で1件生成します。
func (g *Generator) quote(e catalog.Entry) entity.Quote {
	price := g.rnd.Float64()*priceSpan + priceMin
	pct := (g.rnd.Float64() - 0.5) * changeSpan
	change := price * pct / 100

	// 価格・変化額・騰落率はそれぞれ独立に丸めるため、change == price*pct/100 は厳密には成り立たない
	return entity.Quote{
		Symbol:          e.Symbol,
		Name:            e.Name,
		LastPrice:       round2(price),
		Change:          round2(change),
		ChangePercent:   round2(pct),
		Volume:          g.intn(volumeSpan) + volumeMin,
		MarketCap:       g.intn(marketCapSpan) + marketCapMin,
		PERatio:         round2(g.rnd.Float64()*peSpan + peMin),
		IndustryPERatio: round2(g.rnd.Float64()*industryPESpan + industryPEMin),
		Sector:          e.Sector,
	}
}

// intn は floor(U*n) を返します。
func (g *Generator) intn(n int64) int64 {
	return int64(math.Floor(g.rnd.Float64() * float64(n)))
}

// round2 は小数第2位で四捨五入します。
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
