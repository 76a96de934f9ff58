package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/londonlets/api/internal/entity"
)

const newsCacheTTL = time.Hour

// MarketNewsService keeps a small in-memory cache of ticker headlines.
// Generation goes through the completion collaborator; when that yields
// nothing the static market figures below are served instead, so the
// ticker is never empty.
type MarketNewsService struct {
	Rewriter *ContentRewriter

	mu          sync.Mutex
	cache       []entity.MarketNews
	lastUpdated time.Time
}

func NewMarketNewsService(rewriter *ContentRewriter) *MarketNewsService {
	return &MarketNewsService{Rewriter: rewriter}
}

// Get returns the cached headlines, refreshing when they are older than
// one hour.
func (s *MarketNewsService) Get(ctx context.Context) []entity.MarketNews {
	s.mu.Lock()
	fresh := len(s.cache) > 0 && time.Since(s.lastUpdated) < newsCacheTTL
	if fresh {
		out := make([]entity.MarketNews, len(s.cache))
		copy(out, s.cache)
		s.mu.Unlock()
		return out
	}
	s.mu.Unlock()

	s.Refresh(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.MarketNews, len(s.cache))
	copy(out, s.cache)
	return out
}

// Refresh regenerates the cache. Generation failure falls back to the
// static entries; it never returns an error.
func (s *MarketNewsService) Refresh(ctx context.Context) {
	now := time.Now()

	var items []entity.MarketNews
	if s.Rewriter != nil {
		for i, headline := range s.Rewriter.GenerateMarketNews(ctx) {
			items = append(items, entity.MarketNews{
				ID:        fmt.Sprintf("news-%d", i+1),
				Title:     headline,
				Category:  "news",
				Timestamp: now,
				Source:    "AI Market Desk",
			})
		}
	}
	if len(items) == 0 {
		items = staticMarketNews(now)
	}

	s.mu.Lock()
	s.cache = items
	s.lastUpdated = now
	s.mu.Unlock()
}

func staticMarketNews(now time.Time) []entity.MarketNews {
	return []entity.MarketNews{
		{
			ID:        "news-1",
			Title:     "Average London rent: £2,252/month (up 7.3% year on year)",
			Category:  "price",
			Timestamp: now,
			Source:    "London Rental Market Report 2025",
		},
		{
			ID:        "news-2",
			Title:     "Most expensive borough: Kensington & Chelsea at £3,616/month",
			Category:  "market",
			Borough:   "Kensington & Chelsea",
			Timestamp: now,
			Source:    "Borough Analysis",
		},
		{
			ID:        "news-3",
			Title:     "Cheapest borough: Bexley at £1,485/month",
			Category:  "market",
			Borough:   "Bexley",
			Timestamp: now,
			Source:    "Borough Analysis",
		},
		{
			ID:        "news-4",
			Title:     "Most in-demand boroughs: Westminster and Camden",
			Category:  "trend",
			Timestamp: now,
			Source:    "Demand Analysis",
		},
		{
			ID:        "news-5",
			Title:     "Rental demand up 15% this year",
			Category:  "trend",
			Timestamp: now,
			Source:    "Market Analysis",
		},
	}
}
