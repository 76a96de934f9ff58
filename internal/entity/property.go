package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicateListing is returned when a listing with the same source URL
// already exists. The publishing pipeline treats it as a skip, not a failure
// of the run.
var ErrDuplicateListing = errors.New("listing already exists")

// Property is a published rental listing. Created by the publishing
// pipeline and never mutated by it afterwards.
type Property struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Borough          string    `json:"borough"`
	Address          string    `json:"address"`
	PropertyType     string    `json:"property_type"`
	RentPrice        int       `json:"rent_price"` // monthly, GBP
	Bedrooms         int       `json:"bedrooms"`   // 0 = studio
	Bathrooms        *int      `json:"bathrooms,omitempty"`
	Description      string    `json:"description"`
	ImageURL         string    `json:"image_url,omitempty"`
	Source           string    `json:"source"`
	SourceURL        string    `json:"source_url,omitempty"`
	IsPremiumListing bool      `json:"is_premium_listing"`
	CreatedAt        time.Time `json:"created_at"`
}

// ScrapedProperty is raw source-adapter output. It lives only for the
// duration of one publishing run: it is either mapped into a Property and
// persisted, or dropped.
type ScrapedProperty struct {
	Title       string
	Borough     string
	RentPrice   int
	Bedrooms    *int
	Bathrooms   *int
	Description string
	Source      string
	SourceURL   string
	ImageURL    string
}

// PropertyTypeFor maps a bedroom count onto the site's listing categories.
func PropertyTypeFor(bedrooms int) string {
	switch {
	case bedrooms <= 0:
		return "studio"
	case bedrooms == 1:
		return "1bed"
	case bedrooms == 2:
		return "2bed"
	case bedrooms == 3:
		return "3bed"
	case bedrooms == 4:
		return "4bed"
	default:
		return "5bed+"
	}
}

// NewPropertyFromScrape maps a candidate into a persistable listing with a
// fresh identity. Title and description come from the content rewriter, not
// from the scraped original.
func NewPropertyFromScrape(s ScrapedProperty, title, description string) *Property {
	bedrooms := 0
	if s.Bedrooms != nil {
		bedrooms = *s.Bedrooms
	}
	return &Property{
		ID:               uuid.New().String(),
		Title:            title,
		Borough:          s.Borough,
		Address:          s.Borough, // no street-level data from the sources yet
		PropertyType:     PropertyTypeFor(bedrooms),
		RentPrice:        s.RentPrice,
		Bedrooms:         bedrooms,
		Bathrooms:        s.Bathrooms,
		Description:      description,
		ImageURL:         s.ImageURL,
		Source:           s.Source,
		SourceURL:        s.SourceURL,
		IsPremiumListing: false,
		CreatedAt:        time.Now(),
	}
}

type PropertyRepositoryInterface interface {
	Create(ctx context.Context, p *Property) error
	FindAll(ctx context.Context) ([]*Property, error)
	FindByID(ctx context.Context, id string) (*Property, error)
}
