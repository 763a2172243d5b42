package unavailable_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"arthasutra_backend/internal/feature/insights/adapters/unavailable"
	"arthasutra_backend/internal/feature/insights/domain/entity"
	"arthasutra_backend/internal/feature/insights/usecase"
	marketentity "arthasutra_backend/internal/feature/market/domain/entity"
)

func TestGateway_AlwaysUnavailable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	g := unavailable.Gateway{}
	q := marketentity.Quote{Symbol: "TCS"}

	a := g.Advise(ctx, usecase.AdviceInput{})
	assert.False(t, a.IsOk())
	assert.Equal(t, entity.AdviceUnavailable, a.Reason())

	s := g.Sentiment(ctx, q)
	assert.False(t, s.IsOk())
	assert.Equal(t, entity.SentimentUnavailable, s.Reason())

	n := g.News(ctx, q)
	assert.False(t, n.IsOk())
	assert.Equal(t, entity.NewsUnavailable, n.Reason())
}
