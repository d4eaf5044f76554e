package simulator

import (
	"math/rand"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
)

// weatherLabels fixes the draw order so a given seed always consumes the
// random sequence the same way.
var weatherLabels = []string{
	models.WeatherSunny,
	models.WeatherRainy,
	models.WeatherCloudy,
	models.WeatherSnowy,
}

// weatherBySeason holds the per-season weights in weatherLabels order.
// Weights sum to 1 per season; snow only occurs in winter.
var weatherBySeason = map[string][]float64{
	models.SeasonWinter: {0.15, 0.50, 0.30, 0.05},
	models.SeasonSpring: {0.35, 0.40, 0.25, 0.00},
	models.SeasonSummer: {0.50, 0.25, 0.25, 0.00},
	models.SeasonAutumn: {0.30, 0.45, 0.25, 0.00},
}

// SampleWeather draws one weather label from the season's distribution,
// consuming exactly one value from rng.
func SampleWeather(rng *rand.Rand, season string) string {
	weights := weatherBySeason[season]
	u := rng.Float64()

	cumulative := 0.0
	last := 0
	for i, w := range weights {
		if w == 0 {
			continue
		}
		last = i
		cumulative += w
		if u < cumulative {
			return weatherLabels[i]
		}
	}
	// Guard against accumulated float error at u ~= 1; a zero-weight label is
	// never returned.
	return weatherLabels[last]
}
