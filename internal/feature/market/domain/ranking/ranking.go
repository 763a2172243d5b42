// Package ranking はQuoteの一覧から値上がり・値下がり上位や検索結果を導出します。
// どの関数も入力スライスを変更しません。
package ranking

import (
	"sort"
	"strings"

	"arthasutra_backend/internal/feature/market/domain/entity"
)

// ByChangeDesc は騰落率の降順に安定ソートしたコピーを返します。
func ByChangeDesc(quotes []entity.Quote) []entity.Quote {
	out := make([]entity.Quote, len(quotes))
	copy(out, quotes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ChangePercent > out[j].ChangePercent
	})
	return out
}

// TopGainers は騰落率の高い順にn件を返します。
func TopGainers(quotes []entity.Quote, n int) []entity.Quote {
	if n <= 0 || len(quotes) == 0 {
		return []entity.Quote{}
	}
	sorted := ByChangeDesc(quotes)
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// TopLosers は降順ソートの末尾n件を反転して返します（最大の下落が先頭）。
func TopLosers(quotes []entity.Quote, n int) []entity.Quote {
	if n <= 0 || len(quotes) == 0 {
		return []entity.Quote{}
	}
	sorted := ByChangeDesc(quotes)
	if n > len(sorted) {
		n = len(sorted)
	}
	tail := sorted[len(sorted)-n:]
	out := make([]entity.Quote, 0, n)
	for i := len(tail) - 1; i >= 0; i-- {
		out = append(out, tail[i])
	}
	return out
}

// Search は銘柄コードまたは表示名に大文字小文字を区別せず部分一致するQuoteを、
// 入力順で最大limit件返します。空のクエリは空の結果になります。
func Search(quotes []entity.Quote, query string, limit int) []entity.Quote {
	if query == "" || limit <= 0 {
		return []entity.Quote{}
	}
	out := make([]entity.Quote, 0, limit)
	for _, q := range quotes {
		if len(out) == limit {
			break
		}
		if Matches(q.Symbol, q.Name, query) {
			out = append(out, q)
		}
	}
	return out
}

// Matches は銘柄コードまたは表示名がqueryを含むかを大文字小文字を区別せず判定します。
func Matches(symbol, name, query string) bool {
	if query == "" {
		return false
	}
	uq := strings.ToUpper(query)
	return strings.Contains(strings.ToUpper(symbol), uq) ||
		strings.Contains(strings.ToUpper(name), uq)
}
