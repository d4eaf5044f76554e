package simulator

import (
	"math/rand"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
)

type quantityRange struct {
	Min int
	Max int
}

var baseQuantities = map[string]quantityRange{
	models.CategoryMeal:      {40, 60},
	models.CategorySnack:     {30, 50},
	models.CategoryBakery:    {50, 80},
	models.CategoryBeverages: {30, 50},
	models.CategoryDesserts:  {20, 40},
	models.CategorySides:     {30, 50},
}

var seasonQuantityMultipliers = map[string]float64{
	models.SeasonWinter: 0.9,
	models.SeasonSpring: 1.0,
	models.SeasonSummer: 1.2,
	models.SeasonAutumn: 1.0,
}

// scale truncates both bounds to int after the multiplication. The
// truncation happens per adjustment step, not once at the end; collapsing
// the steps into one multiplier would change the generated quantities.
func (q quantityRange) scale(multiplier float64) quantityRange {
	return quantityRange{
		Min: int(float64(q.Min) * multiplier),
		Max: int(float64(q.Max) * multiplier),
	}
}

// preparedRange derives the adjusted quantity bounds for a scenario:
// category base range, then season, then day-of-week, then holiday.
func preparedRange(ctx scenarioContext) quantityRange {
	qty, ok := baseQuantities[ctx.Category]
	if !ok {
		qty = quantityRange{30, 50}
	}

	qty = qty.scale(seasonQuantityMultipliers[ctx.Season])

	switch ctx.DayOfWeek {
	case "Friday", "Saturday":
		qty = qty.scale(1.3)
	case "Sunday":
		qty = qty.scale(1.1)
	case "Monday":
		qty = qty.scale(0.7)
	}

	if ctx.Holiday {
		qty = qty.scale(1.4)
	}

	return qty
}

// PreparedQuantity draws a uniform integer inclusive between the adjusted
// bounds, consuming exactly one value from rng.
func PreparedQuantity(rng *rand.Rand, ctx scenarioContext) int {
	r := preparedRange(ctx)
	return r.Min + rng.Intn(r.Max-r.Min+1)
}
