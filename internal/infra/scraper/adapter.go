package scraper

import (
	"context"

	"github.com/londonlets/api/internal/entity"
)

// StaticAdapter serves a canned batch for one upstream source. Real
// scraping (network fetch, pagination) sits behind the same contract;
// swapping in a network-backed implementation does not touch the pipeline.
type StaticAdapter struct {
	source string
	batch  []entity.ScrapedProperty
}

func (a *StaticAdapter) Source() string {
	return a.source
}

func (a *StaticAdapter) FetchProperties(_ context.Context) ([]entity.ScrapedProperty, error) {
	out := make([]entity.ScrapedProperty, len(a.batch))
	copy(out, a.batch)
	return out, nil
}

func intPtr(n int) *int {
	return &n
}
