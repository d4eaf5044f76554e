package simulator

import (
	"math/rand"
	"testing"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWasteProductFactors(t *testing.T) {
	// Monday x1.3, snowy x1.4, holiday x1.4, winter x1.1, bakery x1.3.
	ctx := scenarioContext{
		DayOfWeek: "Monday",
		Weather:   models.WeatherSnowy,
		Season:    models.SeasonWinter,
		Category:  models.CategoryBakery,
		Holiday:   true,
	}
	assert.InDelta(t, 0.15*1.3*1.4*1.4*1.1*1.3, wasteProduct(ctx), 1e-9)

	// Weekends shed waste, Mondays pile it up.
	weekend := scenarioContext{DayOfWeek: "Saturday", Weather: models.WeatherCloudy,
		Season: models.SeasonSpring, Category: models.CategoryMeal}
	monday := weekend
	monday.DayOfWeek = "Monday"
	assert.Less(t, wasteProduct(weekend), wasteProduct(monday))
}

func TestWasteFractionClamp(t *testing.T) {
	ctx := scenarioContext{
		DayOfWeek: "Monday",
		Weather:   models.WeatherSnowy,
		Season:    models.SeasonWinter,
		Category:  models.CategoryBakery,
		Holiday:   true,
	}
	require.Greater(t, wasteProduct(ctx), maxWasteFraction,
		"scenario must exceed the ceiling before jitter for the clamp to matter")

	rng := rand.New(rand.NewSource(7))
	clamped := false
	for i := 0; i < 1000; i++ {
		fraction := WasteFraction(rng, ctx)
		assert.LessOrEqual(t, fraction, maxWasteFraction)
		if fraction == maxWasteFraction {
			clamped = true
		}
	}
	assert.True(t, clamped, "clamp should trigger for high-jitter draws")
}

func TestWasteFractionJitterBounds(t *testing.T) {
	ctx := scenarioContext{
		DayOfWeek: "Saturday",
		Weather:   models.WeatherSunny,
		Season:    models.SeasonSummer,
		Category:  models.CategoryBeverages,
	}
	product := wasteProduct(ctx)
	require.Less(t, product*1.2, maxWasteFraction, "low-factor scenario must never clamp")

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		fraction := WasteFraction(rng, ctx)
		assert.GreaterOrEqual(t, fraction, product*0.8)
		assert.Less(t, fraction, product*1.2)
	}
}

func TestUnknownCategoryKeepsBaseFactor(t *testing.T) {
	known := scenarioContext{DayOfWeek: "Tuesday", Weather: models.WeatherCloudy,
		Season: models.SeasonSpring, Category: models.CategoryMeal}
	unknown := known
	unknown.Category = "drinks"
	assert.InDelta(t, wasteProduct(known), wasteProduct(unknown), 1e-9)
}
