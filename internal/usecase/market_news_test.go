package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/londonlets/api/internal/infra/integration/llm"
)

func TestMarketNews_StaticFallbackWhenGenerationFails(t *testing.T) {
	svc := NewMarketNewsService(NewContentRewriter(completionFailing(errors.New("offline"))))

	items := svc.Get(context.Background())
	require.Len(t, items, 5)
	assert.Contains(t, items[0].Title, "£2,252")
	assert.Equal(t, "Kensington & Chelsea", items[1].Borough)
}

func TestMarketNews_UsesGeneratedHeadlines(t *testing.T) {
	svc := NewMarketNewsService(NewContentRewriter(completionReturning(`["Rents up 5%","Camden demand climbs","Supply tightens"]`)))

	items := svc.Get(context.Background())
	require.Len(t, items, 3)
	assert.Equal(t, "news-1", items[0].ID)
	assert.Equal(t, "Rents up 5%", items[0].Title)
	assert.Equal(t, "AI Market Desk", items[0].Source)
}

func TestMarketNews_CachesWithinTTL(t *testing.T) {
	var calls atomic.Int32
	client := &fakeCompletionClient{fn: func([]llm.Message) (string, error) {
		calls.Add(1)
		return `["one headline"]`, nil
	}}
	svc := NewMarketNewsService(NewContentRewriter(client))

	svc.Get(context.Background())
	svc.Get(context.Background())
	assert.Equal(t, int32(1), calls.Load(), "second Get within the TTL must hit the cache")

	svc.Refresh(context.Background())
	assert.Equal(t, int32(2), calls.Load(), "Refresh always regenerates")
}

func TestMarketNews_GetReturnsACopy(t *testing.T) {
	svc := NewMarketNewsService(NewContentRewriter(completionFailing(errors.New("offline"))))

	first := svc.Get(context.Background())
	first[0].Title = "mutated"

	second := svc.Get(context.Background())
	assert.NotEqual(t, "mutated", second[0].Title)
}
