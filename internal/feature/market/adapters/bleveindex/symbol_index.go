// Package bleveindex はカタログ銘柄のインメモリ全文検索インデックスを提供します。
package bleveindex

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"

	"arthasutra_backend/internal/feature/market/domain/catalog"
	"arthasutra_backend/internal/feature/market/domain/ranking"
	"arthasutra_backend/internal/feature/market/usecase"
)

const (
	fieldSymbol = "symbol"
	fieldName   = "name"
)

// SymbolIndex はカタログの銘柄コードと表示名を部分一致で検索します。
// ドキュメントIDは銘柄コードです。
type SymbolIndex struct {
	index   bleve.Index
	entries []catalog.Entry
}

// SymbolIndexがSymbolMatcherを実装していることをコンパイル時に検証します。
var _ usecase.SymbolMatcher = (*SymbolIndex)(nil)

// NewSymbolIndex はカタログ全件をメモリ上のインデックスに登録します。
func NewSymbolIndex(c *catalog.Catalog) (*SymbolIndex, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	entries := c.Entries()
	batch := index.NewBatch()
	for _, e := range entries {
		doc := map[string]interface{}{
			fieldSymbol: strings.ToLower(e.Symbol),
			fieldName:   strings.ToLower(e.Name),
		}
		if err := batch.Index(e.Symbol, doc); err != nil {
			_ = index.Close()
			return nil, fmt.Errorf("failed to add %s to batch: %w", e.Symbol, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		_ = index.Close()
		return nil, fmt.Errorf("failed to execute batch: %w", err)
	}
	slog.Debug("symbol index built", "documents", len(entries))

	return &SymbolIndex{index: index, entries: entries}, nil
}

// buildIndexMapping は小文字化済みの値を1トークンとして扱うマッピングを構築します。
// キーワードアナライザにより、ワイルドカードが値全体に対する部分一致になります。
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()

	field := bleve.NewTextFieldMapping()
	field.Analyzer = keyword.Name
	field.Store = false
	field.IncludeTermVectors = false

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt(fieldSymbol, field)
	doc.AddFieldMappingsAt(fieldName, field)
	indexMapping.DefaultMapping = doc

	return indexMapping
}

// Match はクエリを銘柄コードまたは表示名に部分一致で含む銘柄コードを返します。
// 順序は保証しません。
func (s *SymbolIndex) Match(ctx context.Context, query string) ([]string, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []string{}, nil
	}
	// ワイルドカード文字は利用者の入力ではリテラルとして扱う
	if strings.ContainsAny(q, "*?") {
		return s.scan(query), nil
	}

	bySymbol := bleve.NewWildcardQuery("*" + q + "*")
	bySymbol.SetField(fieldSymbol)
	byName := bleve.NewWildcardQuery("*" + q + "*")
	byName.SetField(fieldName)

	req := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(bySymbol, byName))
	req.Size = len(s.entries)

	res, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("symbol search failed: %w", err)
	}

	out := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		out = append(out, hit.ID)
	}
	return out, nil
}

func (s *SymbolIndex) scan(query string) []string {
	var out []string
	for _, e := range s.entries {
		if ranking.Matches(e.Symbol, e.Name, query) {
			out = append(out, e.Symbol)
		}
	}
	return out
}

// Close はインデックスを閉じます。
func (s *SymbolIndex) Close() error {
	return s.index.Close()
}
