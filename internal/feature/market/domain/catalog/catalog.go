// Package catalog は取引可能な銘柄の固定参照テーブルを提供します。
// Catalogは一度だけ構築され、以降は読み取り専用として各コンポーネントに注入されます。
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"arthasutra_backend/internal/feature/market/domain/entity"
)

// ErrInvalidCatalog はカタログの内容が不正な場合のエラーです。
var ErrInvalidCatalog = errors.New("invalid catalog")

// Entry はカタログの1行（銘柄コード・表示名・セクター）です。
type Entry struct {
	Symbol string
	Name   string
	Sector entity.SectorName
}

// Catalog は不変の銘柄参照テーブルです。
type Catalog struct {
	entries  []Entry
	bySymbol map[string]int
}

// New はエントリを検証してCatalogを構築します。
// エントリの順序がカタログの反復順序になります。
func New(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrInvalidCatalog)
	}
	c := &Catalog{
		entries:  make([]Entry, 0, len(entries)),
		bySymbol: make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		e.Symbol = strings.TrimSpace(e.Symbol)
		e.Name = strings.TrimSpace(e.Name)
		if e.Symbol == "" || e.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has empty symbol or name", ErrInvalidCatalog, i)
		}
		if !e.Sector.Valid() {
			return nil, fmt.Errorf("%w: %s has unknown sector %q", ErrInvalidCatalog, e.Symbol, e.Sector)
		}
		if _, dup := c.bySymbol[e.Symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %s", ErrInvalidCatalog, e.Symbol)
		}
		c.bySymbol[e.Symbol] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Len はエントリ数を返します。
func (c *Catalog) Len() int { return len(c.entries) }

// Entries はエントリのコピーをカタログ順で返します。
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup は銘柄コードでエントリを検索します。
func (c *Catalog) Lookup(symbol string) (Entry, bool) {
	i, ok := c.bySymbol[symbol]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Position は銘柄のカタログ内の位置を返します。存在しない場合は-1です。
func (c *Catalog) Position(symbol string) int {
	if i, ok := c.bySymbol[symbol]; ok {
		return i
	}
	return -1
}
