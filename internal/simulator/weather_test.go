package simulator

import (
	"math/rand"
	"testing"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestWeatherWeightsSumToOne(t *testing.T) {
	for season, weights := range weatherBySeason {
		total := 0.0
		for _, w := range weights {
			total += w
		}
		assert.InDelta(t, 1.0, total, 1e-9, "season %s", season)
	}
}

func TestSnowOnlyInWinter(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, season := range []string{models.SeasonSpring, models.SeasonSummer, models.SeasonAutumn} {
		for i := 0; i < 2000; i++ {
			assert.NotEqual(t, models.WeatherSnowy, SampleWeather(rng, season),
				"season %s must never produce snow", season)
		}
	}
}

func TestWinterProducesAllLabels(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := make(map[string]int)
	for i := 0; i < 5000; i++ {
		seen[SampleWeather(rng, models.SeasonWinter)]++
	}

	for _, label := range weatherLabels {
		assert.Greater(t, seen[label], 0, "label %s never drawn", label)
	}
	// Rain dominates British winters.
	assert.Greater(t, seen[models.WeatherRainy], seen[models.WeatherSnowy])
}

func TestSampleWeatherDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		assert.Equal(t, SampleWeather(a, models.SeasonAutumn), SampleWeather(b, models.SeasonAutumn))
	}
}
