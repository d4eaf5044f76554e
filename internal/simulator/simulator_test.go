package simulator

import (
	"testing"
	"time"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		Seed:            42,
		StartDate:       time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		NumRestaurants:  2,
		SkipProbability: 0.15,
	}
}

func TestGenerateRecordInvariants(t *testing.T) {
	sim := NewSimulator(testConfig())
	records, err := sim.Generate()
	require.NoError(t, err)
	require.NotEmpty(t, records)

	for _, rec := range records {
		assert.Equal(t, rec.PreparedQuantity, rec.SoldQuantity+rec.WastedQuantity,
			"sold + wasted must equal prepared")
		assert.GreaterOrEqual(t, rec.PreparedQuantity, int32(0))
		assert.GreaterOrEqual(t, rec.WastePercentage, 0.0)
		assert.LessOrEqual(t, rec.WastePercentage, 45.0)
		assert.NoError(t, rec.Validate())
	}
}

func TestGenerateDeterministicWithSameSeed(t *testing.T) {
	first, err := NewSimulator(testConfig()).Generate()
	require.NoError(t, err)
	second, err := NewSimulator(testConfig()).Generate()
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, *first[i], *second[i], "record %d differs between runs", i)
	}
}

func TestGenerateDiffersAcrossSeeds(t *testing.T) {
	cfg := testConfig()
	first, err := NewSimulator(cfg).Generate()
	require.NoError(t, err)

	other := testConfig()
	other.Seed = 43
	second, err := NewSimulator(other).Generate()
	require.NoError(t, err)

	if len(first) == len(second) {
		same := true
		for i := range first {
			if *first[i] != *second[i] {
				same = false
				break
			}
		}
		assert.False(t, same, "different seeds should not reproduce the dataset")
	}
}

func TestGenerateCoversConfiguredScope(t *testing.T) {
	cfg := testConfig()
	sim := NewSimulator(cfg)
	records, err := sim.Generate()
	require.NoError(t, err)

	restaurants := make(map[string]bool)
	categories := make(map[string]bool)
	for _, rec := range records {
		restaurants[rec.RestaurantID] = true
		categories[rec.Category] = true

		date, err := time.Parse("2006-01-02", rec.Date)
		require.NoError(t, err)
		assert.False(t, date.Before(cfg.StartDate))
		assert.False(t, date.After(cfg.EndDate))
		assert.Equal(t, date.Weekday().String(), rec.DayOfWeek)
	}

	assert.Len(t, restaurants, cfg.NumRestaurants)
	assert.Len(t, categories, len(sim.Catalog.Categories()))
}

func TestHolidayRecordsFlagSpecialEvent(t *testing.T) {
	sim := NewSimulator(testConfig())
	records, err := sim.Generate()
	require.NoError(t, err)

	christmas := 0
	for _, rec := range records {
		if rec.Date == "2024-12-25" {
			christmas++
			assert.True(t, rec.SpecialEvent, "bank holiday records carry the event flag")
			assert.Contains(t, rec.Notes, "(Bank Holiday)")
		}
	}
	assert.Greater(t, christmas, 0, "december run should include Christmas records")
}

func TestMealPeriodFollowsCategoryRules(t *testing.T) {
	sim := NewSimulator(testConfig())
	records, err := sim.Generate()
	require.NoError(t, err)

	allowed := map[string]map[string]bool{
		models.CategoryBakery:   {models.MealPeriodBreakfast: true, models.MealPeriodAllDay: true},
		models.CategoryMeal:     {models.MealPeriodLunch: true, models.MealPeriodDinner: true},
		models.CategoryDesserts: {models.MealPeriodLunch: true, models.MealPeriodDinner: true, models.MealPeriodAllDay: true},
	}

	for _, rec := range records {
		if periods, ok := allowed[rec.Category]; ok {
			assert.True(t, periods[rec.MealPeriod],
				"category %s got meal period %s", rec.Category, rec.MealPeriod)
		} else {
			assert.Equal(t, models.MealPeriodAllDay, rec.MealPeriod)
		}
	}
}

func TestMenuSubsetSize(t *testing.T) {
	sim := NewSimulator(testConfig())
	for _, category := range sim.Catalog.Categories() {
		items := sim.Catalog.Items(category)
		subset := sim.sampleMenuSubset(category)

		want := len(items) - 2
		if want < 3 {
			want = 3
		}
		assert.Len(t, subset, want, "category %s", category)

		seen := make(map[string]bool)
		for _, item := range subset {
			assert.Contains(t, items, item)
			assert.False(t, seen[item], "subset must not repeat items")
			seen[item] = true
		}
	}
}
