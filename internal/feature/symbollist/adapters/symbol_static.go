package adapters

import (
	"context"
	"errors"

	"arthasutra_backend/internal/feature/market/domain/catalog"
	"arthasutra_backend/internal/feature/symbollist/domain/entity"
	"arthasutra_backend/internal/feature/symbollist/usecase"
)

// ErrReadOnly は組み込みテーブルへの書き込み要求に対するエラーです。
var ErrReadOnly = errors.New("static symbol table is read-only")

// symbolStatic はDBを使わずに組み込みの銘柄一覧を返すSymbolRepository実装です。
type symbolStatic struct {
	symbols []entity.Symbol
}

var _ usecase.SymbolRepository = (*symbolStatic)(nil)

// NewStaticRepository はカタログエントリをそのままの順序で返すリポジトリを生成します。
func NewStaticRepository(entries []catalog.Entry) *symbolStatic {
	return &symbolStatic{symbols: usecase.SymbolsFromEntries(entries)}
}

// ListActive は組み込み一覧のコピーを返します。
func (r *symbolStatic) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]entity.Symbol, len(r.symbols))
	copy(out, r.symbols)
	return out, nil
}

// Count は組み込み一覧の件数を返します。
func (r *symbolStatic) Count(ctx context.Context) (int64, error) {
	return int64(len(r.symbols)), nil
}

// CreateBatch は常にErrReadOnlyを返します。
func (r *symbolStatic) CreateBatch(ctx context.Context, symbols []entity.Symbol) error {
	return ErrReadOnly
}
