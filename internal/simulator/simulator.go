package simulator

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/calendar"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
	"github.com/jaswdr/faker"
	"github.com/schollz/progressbar/v3"
)

// Simulator generates one labeled observation per eligible (restaurant, item,
// date) scenario. All randomness flows through the single seeded Rng so a
// given seed and config reproduce the dataset bit for bit.
type Simulator struct {
	Config  *models.Config
	Catalog *models.MenuCatalog
	Rng     *rand.Rand
	fake    faker.Faker
}

func NewSimulator(config *models.Config) *Simulator {
	seed := int64(config.Seed)
	return &Simulator{
		Config:  config,
		Catalog: models.DefaultCatalog(),
		Rng:     rand.New(rand.NewSource(seed)),
		fake:    faker.NewWithSeed(rand.NewSource(seed)),
	}
}

// Run generates the full dataset and streams it to the configured output
// destination, uploading the finished file to cloud storage if enabled.
func (s *Simulator) Run() error {
	output, err := s.determineOutputDestination()
	if err != nil {
		return fmt.Errorf("creating output destination: %w", err)
	}

	log.Printf("Simulation covers %s to %s for %d restaurants (seed %d)",
		s.Config.StartDate.Format("2006-01-02"), s.Config.EndDate.Format("2006-01-02"),
		s.Config.NumRestaurants, s.Config.Seed)

	bar := progressbar.Default(int64(s.Config.NumRestaurants), "simulating restaurants")

	var count int
	err = s.simulate(func(rec *models.ObservationRecord) error {
		count++
		return output.Write(rec)
	}, bar)
	if err != nil {
		_ = output.Close()
		return err
	}
	if err := output.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	if err := s.uploadOutput(); err != nil {
		return err
	}

	log.Printf("Simulation completed at %s, %d records written",
		time.Now().UTC().Format(time.RFC3339), count)
	return nil
}

// Generate runs the simulation and collects all records in memory. Used by
// the training path and by tests; Run streams instead.
func (s *Simulator) Generate() ([]*models.ObservationRecord, error) {
	var records []*models.ObservationRecord
	err := s.simulate(func(rec *models.ObservationRecord) error {
		records = append(records, rec)
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Simulator) simulate(emit func(*models.ObservationRecord) error, bar *progressbar.ProgressBar) error {
	for i := 1; i <= s.Config.NumRestaurants; i++ {
		restaurantID := fmt.Sprintf("RESTAURANT_%d", i)
		displayName := s.fake.Company().Name()

		for _, category := range s.Catalog.Categories() {
			for _, item := range s.sampleMenuSubset(category) {
				for date := s.Config.StartDate; !date.After(s.Config.EndDate); date = date.AddDate(0, 0, 1) {
					// A restaurant does not offer every item every day.
					if s.Rng.Float64() < s.Config.SkipProbability {
						continue
					}

					rec, err := s.simulateScenario(restaurantID, displayName, item, category, date)
					if err != nil {
						return err
					}
					if err := emit(rec); err != nil {
						return fmt.Errorf("writing record: %w", err)
					}
				}
			}
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return nil
}

// sampleMenuSubset picks the restaurant's fixed item subset for a category:
// all but two of the catalog items, never fewer than three.
func (s *Simulator) sampleMenuSubset(category string) []string {
	items := s.Catalog.Items(category)
	n := len(items) - 2
	if n < 3 {
		n = 3
	}
	if n > len(items) {
		n = len(items)
	}

	perm := s.Rng.Perm(len(items))
	subset := make([]string, n)
	for i := 0; i < n; i++ {
		subset[i] = items[perm[i]]
	}
	return subset
}

func (s *Simulator) simulateScenario(restaurantID, displayName, item, category string, date time.Time) (*models.ObservationRecord, error) {
	day := calendar.Resolve(date)

	ctx := scenarioContext{
		DayOfWeek: day.DayOfWeek,
		Season:    day.Season,
		Category:  category,
		Holiday:   day.Holiday,
	}

	eventProb := 0.05
	if day.Holiday {
		eventProb = 0.15
	}
	ctx.SpecialEvent = s.Rng.Float64() < eventProb
	ctx.Weather = SampleWeather(s.Rng, day.Season)

	mealPeriod := s.sampleMealPeriod(category)

	prepared := PreparedQuantity(s.Rng, ctx)
	wasteFraction := WasteFraction(s.Rng, ctx)

	wasted := int(float64(prepared) * wasteFraction)
	sold := prepared - wasted

	band := models.PriceBands[category]
	unitPrice := roundTwo(band.Min + s.Rng.Float64()*(band.Max-band.Min))

	notes := fmt.Sprintf("Generated for %s at %s on %s", item, displayName, day.DayOfWeek)
	if day.Holiday {
		notes += " (Bank Holiday)"
	}

	rec := &models.ObservationRecord{
		RestaurantID:         restaurantID,
		ItemName:             item,
		Category:             category,
		Date:                 date.Format("2006-01-02"),
		DayOfWeek:            day.DayOfWeek,
		PreparedQuantity:     int32(prepared),
		SoldQuantity:         int32(sold),
		WastedQuantity:       int32(wasted),
		WastePercentage:      roundTwo(wasteFraction * 100),
		MealPeriod:           mealPeriod,
		Weather:              ctx.Weather,
		SpecialEvent:         ctx.SpecialEvent || day.Holiday,
		Revenue:              roundTwo(float64(sold) * unitPrice),
		PotentialRevenueLoss: roundTwo(float64(wasted) * unitPrice),
		Notes:                notes,
	}

	// A violation here is a factor-model bug; abort the run rather than
	// clamp downstream.
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("generation invariant violated: %w", err)
	}
	return rec, nil
}

// sampleMealPeriod assigns the category's meal period, drawing uniformly
// where a category allows more than one.
func (s *Simulator) sampleMealPeriod(category string) string {
	var allowed []string
	switch category {
	case models.CategoryBakery:
		allowed = []string{models.MealPeriodBreakfast, models.MealPeriodAllDay}
	case models.CategoryMeal:
		allowed = []string{models.MealPeriodLunch, models.MealPeriodDinner}
	case models.CategoryDesserts:
		allowed = []string{models.MealPeriodLunch, models.MealPeriodDinner, models.MealPeriodAllDay}
	default:
		return models.MealPeriodAllDay
	}
	return allowed[s.Rng.Intn(len(allowed))]
}

func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}
