package simulator

import (
	"math/rand"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
)

const (
	baseWasteRate    = 0.15
	maxWasteFraction = 0.45
)

// scenarioContext carries the contextual attributes a single (restaurant,
// item, date) observation is conditioned on.
type scenarioContext struct {
	DayOfWeek    string
	Weather      string
	Season       string
	Category     string
	SpecialEvent bool
	Holiday      bool
}

var seasonWasteFactors = map[string]float64{
	models.SeasonWinter: 1.1,
	models.SeasonSpring: 1.0,
	models.SeasonSummer: 0.9,
	models.SeasonAutumn: 1.0,
}

var categoryWasteFactors = map[string]float64{
	models.CategoryMeal:      1.0,
	models.CategorySnack:     0.8,
	models.CategoryBakery:    1.3,
	models.CategoryBeverages: 0.7,
	models.CategoryDesserts:  1.2,
	models.CategorySides:     0.9,
}

// wasteProduct is the deterministic part of the waste-fraction model: the
// base rate scaled by the day, weather, event, season and category factors.
func wasteProduct(ctx scenarioContext) float64 {
	waste := baseWasteRate

	switch ctx.DayOfWeek {
	case "Saturday", "Sunday":
		waste *= 0.8
	case "Monday":
		waste *= 1.3
	}

	switch ctx.Weather {
	case models.WeatherRainy:
		waste *= 1.2
	case models.WeatherSunny:
		waste *= 0.9
	case models.WeatherSnowy:
		waste *= 1.4
	}

	if ctx.SpecialEvent || ctx.Holiday {
		waste *= 1.4
	}

	waste *= seasonWasteFactors[ctx.Season]

	if factor, ok := categoryWasteFactors[ctx.Category]; ok {
		waste *= factor
	}

	return waste
}

// WasteFraction applies a single uniform jitter in [0.8, 1.2) to the factor
// product and clamps the result at the 0.45 ceiling. The clamp truncates the
// final value; the jitter is never resampled.
func WasteFraction(rng *rand.Rand, ctx scenarioContext) float64 {
	waste := wasteProduct(ctx) * (0.8 + rng.Float64()*0.4)
	if waste > maxWasteFraction {
		waste = maxWasteFraction
	}
	return waste
}
