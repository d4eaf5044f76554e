package predictor

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/calendar"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/features"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
)

type accumulator struct {
	sum   float64
	count int
}

func (a *accumulator) add(v float64) {
	a.sum += v
	a.count++
}

func (a *accumulator) mean() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

// Train fits the baseline model: the global mean waste percentage plus, per
// feature value, the mean deviation from it. The vocabularies must be the
// ones built from the same records so the effect tables key on the codes the
// serving encoder will produce.
func Train(records []*models.ObservationRecord, vocabs *features.VocabularySet) (*BaselineModel, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("cannot train on an empty dataset")
	}

	var global accumulator
	groups := make(map[string]map[string]*accumulator)
	observe := func(field, key string, target float64) {
		byKey, ok := groups[field]
		if !ok {
			byKey = make(map[string]*accumulator)
			groups[field] = byKey
		}
		acc, ok := byKey[key]
		if !ok {
			acc = &accumulator{}
			byKey[key] = acc
		}
		acc.add(target)
	}

	for i, rec := range records {
		date, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d has malformed date %q: %w", i, rec.Date, err)
		}

		codes := map[string]string{
			features.FieldItemName:   rec.ItemName,
			features.FieldCategory:   rec.Category,
			features.FieldDayOfWeek:  rec.DayOfWeek,
			features.FieldMealPeriod: rec.MealPeriod,
			features.FieldWeather:    rec.Weather,
			features.FieldSeason:     calendar.Season(date),
		}

		target := rec.WastePercentage
		global.add(target)

		for field, value := range codes {
			vocab, _ := vocabs.Field(field)
			code, ok := vocab.Encode(value)
			if !ok {
				return nil, fmt.Errorf("record %d: %s %q not in vocabulary", i, field, value)
			}
			observe(field, strconv.Itoa(code), target)
		}
		observe(fieldSpecialEvent, strconv.FormatBool(rec.SpecialEvent), target)
		observe(fieldMonth, strconv.Itoa(int(date.Month())), target)
	}

	baseline := global.mean()
	effects := make(map[string]map[string]float64, len(groups))
	for field, byKey := range groups {
		table := make(map[string]float64, len(byKey))
		for key, acc := range byKey {
			table[key] = acc.mean() - baseline
		}
		effects[field] = table
	}

	return &BaselineModel{Baseline: baseline, Effects: effects}, nil
}
