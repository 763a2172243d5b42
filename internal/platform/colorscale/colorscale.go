// Package colorscale は数値を、順序付きアンカー間の区分線形補間で色に変換します。
package colorscale

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidAnchors はアンカーが2つ未満、または値が狭義単調増加でない場合に返されます。
var ErrInvalidAnchors = errors.New("colorscale: need at least two strictly increasing anchors")

// Color は各チャンネルを [0, 255] の浮動小数で持つRGB色です。
type Color struct {
	R, G, B float64
}

// Hex は各チャンネルを最も近い整数に丸め、#rrggbb 形式で返します。
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(255, v))))
}

// ParseHex は #rgb または #rrggbb を解析します。
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("colorscale: invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colorscale: invalid hex colour %q: %w", s, err)
	}
	return Color{R: float64(v >> 16 & 0xff), G: float64(v >> 8 & 0xff), B: float64(v & 0xff)}, nil
}

// MustParseHex は定数用のParseHexです。不正な値ではpanicします。
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Anchor は値に対応付けた色です。
type Anchor struct {
	Value float64
	Color Color
}

// Scale は不変の区分線形カラースケールです。
type Scale struct {
	anchors []Anchor
}

// New はアンカーを検証してScaleを返します。
func New(anchors ...Anchor) (*Scale, error) {
	if len(anchors) < 2 {
		return nil, ErrInvalidAnchors
	}
	for i := 1; i < len(anchors); i++ {
		if !(anchors[i].Value > anchors[i-1].Value) {
			return nil, fmt.Errorf("%w: anchor %d (%v) follows %v", ErrInvalidAnchors, i, anchors[i].Value, anchors[i-1].Value)
		}
	}
	own := make([]Anchor, len(anchors))
	copy(own, anchors)
	return &Scale{anchors: own}, nil
}

// Performance は騰落率用の赤・灰・緑のスケールです（-3で赤、0で灰、+3で緑）。
func Performance() *Scale {
	s, err := New(
		Anchor{Value: -3, Color: MustParseHex("#ef4444")},
		Anchor{Value: 0, Color: MustParseHex("#4b5563")},
		Anchor{Value: 3, Color: MustParseHex("#22c55e")},
	)
	if err != nil {
		panic(err)
	}
	return s
}

// At は v に対する補間色を返します。範囲外の値は端の色に丸め、NaNは最初のアンカーの色です。
func (s *Scale) At(v float64) Color {
	first, last := s.anchors[0], s.anchors[len(s.anchors)-1]
	if math.IsNaN(v) || v <= first.Value {
		return first.Color
	}
	if v >= last.Value {
		return last.Color
	}
	// Value > v となる最初のアンカー。(0, len-1] に収まる
	i := sort.Search(len(s.anchors), func(i int) bool { return s.anchors[i].Value > v })
	lo, hi := s.anchors[i-1], s.anchors[i]
	t := (v - lo.Value) / (hi.Value - lo.Value)
	return Color{
		R: lerp(lo.Color.R, hi.Color.R, t),
		G: lerp(lo.Color.G, hi.Color.G, t),
		B: lerp(lo.Color.B, hi.Color.B, t),
	}
}

// Hex は At(v).Hex() の短縮形です。
func (s *Scale) Hex(v float64) string {
	return s.At(v).Hex()
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
