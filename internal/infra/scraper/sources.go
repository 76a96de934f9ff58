package scraper

import (
	"github.com/londonlets/api/internal/entity"
	"github.com/londonlets/api/internal/usecase"
)

// One adapter per upstream portal. Each currently returns a fixed batch;
// the per-source split matters because the pipeline isolates failures per
// adapter.

func NewZoopla() *StaticAdapter {
	return &StaticAdapter{
		source: "zoopla",
		batch: []entity.ScrapedProperty{
			{
				Title:       "Modern 2-bed apartment in Westminster",
				Borough:     "Westminster",
				RentPrice:   2500,
				Bedrooms:    intPtr(2),
				Bathrooms:   intPtr(1),
				Description: "Beautiful modern apartment with stunning views of the city",
				Source:      "zoopla",
				SourceURL:   "https://zoopla.co.uk/to-rent/details/westminster-2bed",
			},
		},
	}
}

func NewRightmove() *StaticAdapter {
	return &StaticAdapter{
		source: "rightmove",
		batch: []entity.ScrapedProperty{
			{
				Title:       "Spacious 3-bed flat in Camden",
				Borough:     "Camden",
				RentPrice:   2800,
				Bedrooms:    intPtr(3),
				Bathrooms:   intPtr(2),
				Description: "Bright and spacious apartment in the heart of Camden",
				Source:      "rightmove",
				SourceURL:   "https://rightmove.co.uk/properties/camden-3bed",
			},
		},
	}
}

func NewNestoria() *StaticAdapter {
	return &StaticAdapter{
		source: "nestoria",
		batch: []entity.ScrapedProperty{
			{
				Title:       "Cozy studio in Islington",
				Borough:     "Islington",
				RentPrice:   1200,
				Bedrooms:    intPtr(0),
				Bathrooms:   intPtr(1),
				Description: "Compact studio apartment perfect for professionals",
				Source:      "nestoria",
				SourceURL:   "https://nestoria.co.uk/islington-studio",
			},
		},
	}
}

func NewBeauchamp() *StaticAdapter {
	return &StaticAdapter{
		source: "beauchamp",
		batch: []entity.ScrapedProperty{
			{
				Title:       "Luxury penthouse in Kensington",
				Borough:     "Kensington & Chelsea",
				RentPrice:   5000,
				Bedrooms:    intPtr(4),
				Bathrooms:   intPtr(3),
				Description: "Exclusive luxury penthouse with premium amenities",
				Source:      "beauchamp",
				SourceURL:   "https://beauchamp.co.uk/kensington-penthouse",
			},
		},
	}
}

func NewSavills() *StaticAdapter {
	return &StaticAdapter{
		source: "savills",
		batch: []entity.ScrapedProperty{
			{
				Title:       "Victorian townhouse in Notting Hill",
				Borough:     "Kensington & Chelsea",
				RentPrice:   3500,
				Bedrooms:    intPtr(3),
				Bathrooms:   intPtr(2),
				Description: "Charming Victorian townhouse with period features",
				Source:      "savills",
				SourceURL:   "https://savills.co.uk/notting-hill-townhouse",
			},
		},
	}
}

func NewGoogle() *StaticAdapter {
	return &StaticAdapter{
		source: "google",
		batch: []entity.ScrapedProperty{
			{
				Title:       "Contemporary flat in Shoreditch",
				Borough:     "Hackney",
				RentPrice:   1800,
				Bedrooms:    intPtr(1),
				Bathrooms:   intPtr(1),
				Description: "Modern apartment in trendy Shoreditch area",
				Source:      "google",
				SourceURL:   "https://google.com/shoreditch-flat",
			},
		},
	}
}

// All returns every registered source adapter in collection order.
func All() []usecase.SourceAdapter {
	return []usecase.SourceAdapter{
		NewZoopla(),
		NewRightmove(),
		NewNestoria(),
		NewBeauchamp(),
		NewSavills(),
		NewGoogle(),
	}
}
