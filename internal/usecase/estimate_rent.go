package usecase

import (
	"context"

	"github.com/londonlets/api/internal/entity"
)

type EstimateRentInput struct {
	Borough  string `json:"borough"`
	Bedrooms int    `json:"bedrooms"`
}

type EstimateRentOutput struct {
	Borough      string `json:"borough"`
	PropertyType string `json:"property_type"`
	Average      int    `json:"average"` // monthly, GBP
	Low          int    `json:"low"`
	High         int    `json:"high"`
}

// Monthly averages for a one-bedroom flat, 2025 figures from the market
// ticker data set. Unlisted boroughs use the London-wide average.
var boroughAverages = map[string]int{
	"Westminster":          2900,
	"Camden":               2650,
	"Kensington & Chelsea": 3616,
	"Islington":            2400,
	"Hackney":              2150,
	"Tower Hamlets":        2300,
	"Greenwich":            1850,
	"Barnet":               1900,
	"Croydon":              1550,
	"Bexley":               1485,
}

const londonAverageRent = 2252

// EstimateRentUseCase computes a rent band from borough averages and a
// bedroom multiplier. Fully deterministic; no store or collaborator calls.
type EstimateRentUseCase struct{}

func NewEstimateRentUseCase() *EstimateRentUseCase {
	return &EstimateRentUseCase{}
}

func (uc *EstimateRentUseCase) Execute(_ context.Context, input EstimateRentInput) EstimateRentOutput {
	base, ok := boroughAverages[input.Borough]
	if !ok {
		base = londonAverageRent
	}

	bedrooms := input.Bedrooms
	if bedrooms < 0 {
		bedrooms = 0
	}

	average := base * bedroomMultiplierPct(bedrooms) / 100

	return EstimateRentOutput{
		Borough:      input.Borough,
		PropertyType: entity.PropertyTypeFor(bedrooms),
		Average:      average,
		Low:          average * 85 / 100,
		High:         average * 115 / 100,
	}
}

// bedroomMultiplierPct scales the one-bedroom average, in percent.
func bedroomMultiplierPct(bedrooms int) int {
	switch {
	case bedrooms <= 0:
		return 72 // studio
	case bedrooms == 1:
		return 100
	case bedrooms == 2:
		return 128
	case bedrooms == 3:
		return 160
	case bedrooms == 4:
		return 195
	default:
		return 240
	}
}
