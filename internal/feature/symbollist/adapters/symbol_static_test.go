package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arthasutra_backend/internal/feature/market/domain/catalog"
)

// TestSymbolStatic は組み込みリポジトリの読み取りと書き込み拒否を検証します。
func TestSymbolStatic(t *testing.T) {
	t.Parallel()

	repo := NewStaticRepository(catalog.DefaultEntries())
	ctx := context.Background()

	symbols, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, symbols, 50)
	assert.Equal(t, "RELIANCE", symbols[0].Code)
	assert.Equal(t, 1, symbols[0].SortKey)

	// 返り値の変更が内部状態に影響しないこと
	symbols[0].Code = "CHANGED"
	again, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RELIANCE", again[0].Code)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(50), n)

	assert.ErrorIs(t, repo.CreateBatch(ctx, symbols), ErrReadOnly)
}

// TestSymbolStatic_ContextCancellation はキャンセル済みコンテキストでエラーを返すことを検証します。
func TestSymbolStatic_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStaticRepository(catalog.DefaultEntries()).ListActive(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
