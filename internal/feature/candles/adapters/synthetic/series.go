// Package synthetic は当日の分足系列を合成するSeriesGenerator実装を提供します。
package synthetic

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"arthasutra_backend/internal/feature/candles/domain/entity"
	"arthasutra_backend/internal/feature/candles/usecase"
	marketentity "arthasutra_backend/internal/feature/market/domain/entity"
	"arthasutra_backend/internal/platform/markettime"
)

const (
	// volPerMinute は1分あたりの価格変動（始値比）の標準偏差です。
	volPerMinute = 0.0015
	// minPrice は合成価格の下限です。
	minPrice = 0.05
)

// SeriesGenerator は前日終値（価格−前日比）から現在値までをブラウン橋でつないだ分足を生成します。
type SeriesGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

var _ usecase.SeriesGenerator = (*SeriesGenerator)(nil)

// NewSeriesGenerator はSeriesGeneratorを生成します。seedが0の場合はランダムなシードを使います。
func NewSeriesGenerator(seed uint64) *SeriesGenerator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &SeriesGenerator{rnd: rand.New(rand.NewPCG(seed, seed^0x2545f4914f6cdd1d))}
}

// Intraday はdayのIST立会時間（09:15〜15:30）をintervalごとに区切った足を返します。
// 最初の足の始値は q.LastPrice-q.Change、最後の足の終値は q.LastPrice に一致します。
// 出来高の合計は q.Volume です。
func (g *SeriesGenerator) Intraday(q marketentity.Quote, iv entity.Interval, day time.Time) []entity.Candle {
	start, end := markettime.Session(day)
	step := iv.Duration()
	if step <= 0 {
		return []entity.Candle{}
	}
	n := int((end.Sub(start) + step - 1) / step)

	from := math.Max(q.LastPrice-q.Change, minPrice)
	to := q.LastPrice
	sigma := from * volPerMinute * math.Sqrt(step.Minutes())

	g.mu.Lock()
	defer g.mu.Unlock()

	walk := make([]float64, n+1)
	for k := 1; k <= n; k++ {
		walk[k] = walk[k-1] + g.rnd.NormFloat64()*sigma
	}
	volumes := g.splitVolume(q.Volume, n)

	out := make([]entity.Candle, 0, n)
	prev := round2(from)
	for k := 1; k <= n; k++ {
		frac := float64(k) / float64(n)
		c := to
		if k < n {
			// ブラウン橋: 端点を固定したランダムウォーク
			c = round2(math.Max(from+(to-from)*frac+walk[k]-frac*walk[n], minPrice))
		}
		o := prev
		hi := round2(math.Max(o, c) + math.Abs(g.rnd.NormFloat64())*sigma/2)
		lo := round2(math.Max(math.Min(o, c)-math.Abs(g.rnd.NormFloat64())*sigma/2, minPrice))
		lo = math.Min(lo, math.Min(o, c))

		out = append(out, entity.Candle{
			Symbol:   q.Symbol,
			Interval: iv,
			Time:     start.Add(time.Duration(k-1) * step),
			Open:     o,
			High:     hi,
			Low:      lo,
			Close:    c,
			Volume:   volumes[k-1],
		})
		prev = c
	}
	return out
}

// splitVolume はtotalをn本の足にランダムな比率で配分します。端数は最後の足に加えます。
func (g *SeriesGenerator) splitVolume(total int64, n int) []int64 {
	weights := make([]float64, n)
	sum := 0.0
	for i := range weights {
		weights[i] = 0.5 + g.rnd.Float64()
		sum += weights[i]
	}
	out := make([]int64, n)
	var assigned int64
	for i, w := range weights {
		out[i] = int64(float64(total) * w / sum)
		assigned += out[i]
	}
	out[n-1] += total - assigned
	return out
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
