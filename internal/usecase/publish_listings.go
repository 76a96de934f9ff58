package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/londonlets/api/internal/entity"
)

// PublishResult is the outcome of one publishing run. Published may be
// lower than the number of collected candidates: item failures are skipped,
// not fatal.
type PublishResult struct {
	Success   bool   `json:"success"`
	Published int    `json:"published"`
	Error     string `json:"error,omitempty"`
}

// PublishListingsUseCase runs the collect -> rewrite -> persist pipeline
// over all registered source adapters.
type PublishListingsUseCase struct {
	Adapters   []SourceAdapter
	Rewriter   *ContentRewriter
	Properties entity.PropertyRepositoryInterface
	News       *MarketNewsService
}

func NewPublishListingsUseCase(
	adapters []SourceAdapter,
	rewriter *ContentRewriter,
	properties entity.PropertyRepositoryInterface,
	news *MarketNewsService,
) *PublishListingsUseCase {
	return &PublishListingsUseCase{
		Adapters:   adapters,
		Rewriter:   rewriter,
		Properties: properties,
		News:       news,
	}
}

func (uc *PublishListingsUseCase) Execute(ctx context.Context) PublishResult {
	log.Println("[Publisher] Starting publishing job...")

	var scraped []entity.ScrapedProperty
	for _, adapter := range uc.Adapters {
		batch, err := adapter.FetchProperties(ctx)
		if err != nil {
			// One broken source never aborts the run.
			log.Printf("[Publisher] %s fetch failed: %v", adapter.Source(), err)
			continue
		}
		scraped = append(scraped, batch...)
	}
	log.Printf("[Publisher] Found %d properties", len(scraped))

	if len(scraped) == 0 {
		return PublishResult{Success: false, Published: 0, Error: "no properties found"}
	}

	published := 0
	for _, candidate := range scraped {
		if err := uc.publishOne(ctx, candidate); err != nil {
			log.Printf("[Publisher] skipping %q from %s: %v", candidate.Title, candidate.Source, err)
			continue
		}
		published++
	}

	// Best effort: a failed news refresh does not touch the run's outcome
	// and is not counted in Published.
	if uc.News != nil {
		log.Println("[Publisher] Refreshing market news...")
		uc.News.Refresh(ctx)
	}

	log.Printf("[Publisher] Publishing job completed, published %d properties", published)
	return PublishResult{Success: true, Published: published}
}

func (uc *PublishListingsUseCase) publishOne(ctx context.Context, candidate entity.ScrapedProperty) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while publishing: %v", r)
		}
	}()

	title := uc.Rewriter.GenerateSEOTitle(ctx, candidate.Borough, candidate.Bedrooms, candidate.Bathrooms, candidate.RentPrice)
	description := uc.Rewriter.RewriteDescription(ctx, candidate.Description, candidate.Title, candidate.Borough, candidate.Bedrooms, candidate.Bathrooms)

	property := entity.NewPropertyFromScrape(candidate, title, description)
	if err := uc.Properties.Create(ctx, property); err != nil {
		return err
	}

	log.Printf("[Publisher] Published: %s", property.Title)
	return nil
}
