package usecase_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"arthasutra_backend/internal/feature/insights/domain/entity"
	"arthasutra_backend/internal/feature/insights/usecase"
)

// TestDetailView_Select は選択直後に両パネルがLoadingになることを検証します。
func TestDetailView_Select(t *testing.T) {
	t.Parallel()

	v := usecase.NewDetailView()
	ticket := v.Select("TCS")

	s := v.Snapshot()
	assert.Equal(t, "TCS", ticket.Symbol())
	assert.Equal(t, "TCS", s.Symbol)
	assert.Equal(t, entity.PanelLoading, s.Sentiment.State)
	assert.Equal(t, entity.PanelLoading, s.News.State)
}

// TestDetailView_StaleResultsAreDropped は別銘柄選択後の古い結果が反映されないことを検証します。
func TestDetailView_StaleResultsAreDropped(t *testing.T) {
	t.Parallel()

	v := usecase.NewDetailView()
	old := v.Select("TCS")
	current := v.Select("INFY")

	applied := v.ApplySentiment(old, entity.Ok(entity.Sentiment{Summary: "TCS is strong", Score: 0.9}))
	assert.False(t, applied)
	applied = v.ApplyNews(old, entity.Ok([]entity.Article{{Title: "TCS news"}}))
	assert.False(t, applied)

	s := v.Snapshot()
	assert.Equal(t, "INFY", s.Symbol)
	assert.Equal(t, entity.PanelLoading, s.Sentiment.State)
	assert.Equal(t, entity.PanelLoading, s.News.State)

	assert.True(t, v.ApplySentiment(current, entity.Err[entity.Sentiment](entity.SentimentFailed)))
	s = v.Snapshot()
	assert.Equal(t, entity.PanelError, s.Sentiment.State)
	assert.Equal(t, entity.SentimentFailed, s.Sentiment.Message)
	assert.Empty(t, s.Sentiment.Data.Summary)
}

// TestDetailView_FailureReplacesPreviousData は失敗時に以前の成功データを表示しないことを検証します。
func TestDetailView_FailureReplacesPreviousData(t *testing.T) {
	t.Parallel()

	v := usecase.NewDetailView()
	first := v.Select("TCS")
	v.ApplySentiment(first, entity.Ok(entity.Sentiment{Summary: "TCS is strong", Score: 0.9}))
	v.ApplyNews(first, entity.Ok([]entity.Article{{Title: "TCS news", URL: "https://example.com"}}))

	second := v.Select("INFY")
	v.ApplySentiment(second, entity.Err[entity.Sentiment](entity.SentimentFailed))
	v.ApplyNews(second, entity.Err[[]entity.Article](entity.NewsFailed))

	s := v.Snapshot()
	assert.Equal(t, entity.SentimentFailed, s.Sentiment.Message)
	assert.NotContains(t, s.Sentiment.Data.Summary, "TCS")
	assert.Equal(t, entity.NewsFailed, s.News.Message)
	assert.Empty(t, s.News.Data)
}

// TestDetailView_ConcurrentApply は並行反映で競合しないことを検証します（-race で実行）。
func TestDetailView_ConcurrentApply(t *testing.T) {
	t.Parallel()

	v := usecase.NewDetailView()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ticket := v.Select([]string{"TCS", "INFY"}[i%2])
			v.ApplySentiment(ticket, entity.Ok(entity.Sentiment{Summary: ticket.Symbol()}))
			v.ApplyNews(ticket, entity.Ok([]entity.Article{}))
			_ = v.Snapshot()
		}(i)
	}
	wg.Wait()

	s := v.Snapshot()
	if s.Sentiment.State == entity.PanelReady {
		assert.Equal(t, s.Symbol, s.Sentiment.Data.Summary, "a ready panel always belongs to the selected symbol")
	}
}
