// Package treemap は重み付き要素のフラットなリストからsquarified treemapのレイアウトを計算します。
//
// 要素は入力順を保ちます。外側の余白はルートを囲み、内側の余白は隣接セル間で均等に分けます。
package treemap

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidWeight は要素の重みが正の有限値でない場合に返されます。
	ErrInvalidWeight = errors.New("treemap: weight must be positive and finite")
	// ErrInvalidSize は描画領域の面積が0の場合に返されます。
	ErrInvalidSize = errors.New("treemap: width and height must be positive")
)

// Phi は黄金比で、各行の目標アスペクト比です。
var Phi = (1 + math.Sqrt(5)) / 2

// Options は描画領域と余白の設定です。
type Options struct {
	Width        float64
	Height       float64
	PaddingInner float64
	PaddingOuter float64
}

// Node はレイアウト済みの矩形1つです。
type Node[T any] struct {
	Item   T
	Value  float64
	X0, Y0 float64
	X1, Y1 float64
}

// Width はノードの幅を返します。
func (n Node[T]) Width() float64 { return n.X1 - n.X0 }

// Height はノードの高さを返します。
func (n Node[T]) Height() float64 { return n.Y1 - n.Y0 }

type cell struct {
	value          float64
	x0, y0, x1, y1 float64
}

// Layout は各要素に weight(item) に比例した面積の矩形を割り当てます。
// 結果は items と同じ長さ・順序です。
func Layout[T any](items []T, weight func(T) float64, opts Options) ([]Node[T], error) {
	if !(opts.Width > 0) || !(opts.Height > 0) || math.IsInf(opts.Width, 0) || math.IsInf(opts.Height, 0) {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidSize, opts.Width, opts.Height)
	}
	if len(items) == 0 {
		return []Node[T]{}, nil
	}

	cells := make([]cell, len(items))
	var total float64
	for i, it := range items {
		w := weight(it)
		if !(w > 0) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: item %d has weight %v", ErrInvalidWeight, i, w)
		}
		cells[i].value = w
		total += w
	}

	// ルートは描画領域全体。子は外側の余白の内側に敷き詰め、
	// 内側の余白の半分だけ広げておき、各葉で後から差し引く
	half := opts.PaddingInner / 2
	x0, x1 := collapse(opts.PaddingOuter-half, opts.Width-opts.PaddingOuter+half)
	y0, y1 := collapse(opts.PaddingOuter-half, opts.Height-opts.PaddingOuter+half)
	squarify(cells, total, Phi, x0, y0, x1, y1)

	out := make([]Node[T], len(items))
	for i, c := range cells {
		nx0, nx1 := collapse(c.x0+half, c.x1-half)
		ny0, ny1 := collapse(c.y0+half, c.y1-half)
		out[i] = Node[T]{Item: items[i], Value: c.value, X0: nx0, Y0: ny0, X1: nx1, Y1: ny1}
	}
	return out, nil
}

// collapse は区間をそのまま返します。反転している場合は中点を2つ返します。
func collapse(lo, hi float64) (float64, float64) {
	if hi < lo {
		mid := (lo + hi) / 2
		return mid, mid
	}
	return lo, hi
}

// squarify は最悪アスペクト比が ratio に最も近くなるように、セルを行に詰めます。
func squarify(cells []cell, value, ratio, x0, y0, x1, y1 float64) {
	n := len(cells)
	i0, i1 := 0, 0
	for i0 < n {
		dx, dy := x1-x0, y1-y0

		sum := cells[i1].value
		i1++
		minV, maxV := sum, sum
		alpha := math.Max(dy/dx, dx/dy) / (value * ratio)
		beta := sum * sum * alpha
		minRatio := math.Max(maxV/beta, beta/minV)

		for ; i1 < n; i1++ {
			v := cells[i1].value
			sum += v
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
			beta = sum * sum * alpha
			r := math.Max(maxV/beta, beta/minV)
			if r > minRatio {
				sum -= v
				break
			}
			minRatio = r
		}

		// 行は残りの矩形から帯を取り、残りは次の反復で敷き詰める
		row := cells[i0:i1]
		if dx < dy {
			top, bottom := y0, y1
			if dy != 0 {
				y0 += dy * sum / value
				bottom = y0
			}
			dice(row, sum, x0, top, x1, bottom)
		} else {
			left, right := x0, x1
			if dx != 0 {
				x0 += dx * sum / value
				right = x0
			}
			slice(row, sum, left, y0, right, y1)
		}
		value -= sum
		i0 = i1
	}
}

// dice は行を [x0, x1] に左から右へ並べます。
func dice(row []cell, value, x0, y0, x1, y1 float64) {
	var k float64
	if value != 0 {
		k = (x1 - x0) / value
	}
	for i := range row {
		row[i].y0, row[i].y1 = y0, y1
		row[i].x0 = x0
		x0 += row[i].value * k
		row[i].x1 = x0
	}
}

// slice は行を [y0, y1] に上から下へ並べます。
func slice(row []cell, value, x0, y0, x1, y1 float64) {
	var k float64
	if value != 0 {
		k = (y1 - y0) / value
	}
	for i := range row {
		row[i].x0, row[i].x1 = x0, x1
		row[i].y0 = y0
		y0 += row[i].value * k
		row[i].y1 = y0
	}
}
