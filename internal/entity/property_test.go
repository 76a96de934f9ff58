package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyTypeFor(t *testing.T) {
	tests := []struct {
		bedrooms int
		want     string
	}{
		{0, "studio"},
		{-1, "studio"},
		{1, "1bed"},
		{2, "2bed"},
		{3, "3bed"},
		{4, "4bed"},
		{5, "5bed+"},
		{10, "5bed+"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PropertyTypeFor(tt.bedrooms), "bedrooms=%d", tt.bedrooms)
	}
}

func TestNewPropertyFromScrape(t *testing.T) {
	bathrooms := 1
	scraped := ScrapedProperty{
		Title:       "Original title",
		Borough:     "Camden",
		RentPrice:   2500,
		Bedrooms:    nil, // sources sometimes omit the count
		Bathrooms:   &bathrooms,
		Description: "Original description",
		Source:      "zoopla",
		SourceURL:   "https://zoopla.example/1",
		ImageURL:    "https://img.example/1.jpg",
	}

	p := NewPropertyFromScrape(scraped, "Rewritten title", "Rewritten description")

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Rewritten title", p.Title)
	assert.Equal(t, "Rewritten description", p.Description)
	assert.Equal(t, 0, p.Bedrooms)
	assert.Equal(t, "studio", p.PropertyType)
	assert.Equal(t, "Camden", p.Borough)
	assert.Equal(t, "Camden", p.Address)
	assert.Equal(t, "zoopla", p.Source)
	assert.False(t, p.IsPremiumListing)
	assert.False(t, p.CreatedAt.IsZero())

	other := NewPropertyFromScrape(scraped, "Rewritten title", "Rewritten description")
	assert.NotEqual(t, p.ID, other.ID)
}
