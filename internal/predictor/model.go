// Package predictor defines the predictor contract the serving layer depends
// on, together with a transparent additive-effects baseline implementation.
// The serialized artifact is the interface between trainer and server; any
// model that honors it can replace the baseline.
package predictor

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/features"
)

// Predictor turns an encoded feature vector into a waste percentage.
type Predictor interface {
	Predict(fv features.FeatureVector) float64
}

// Effect-table field names beyond the categorical vocabularies.
const (
	fieldSpecialEvent = "specialEvent"
	fieldMonth        = "month"
)

// BaselineModel predicts the global mean waste percentage adjusted by the
// mean residual of each feature value observed at training time.
type BaselineModel struct {
	Baseline float64                       `json:"baseline"`
	Effects  map[string]map[string]float64 `json:"effects"`
}

func (m *BaselineModel) Predict(fv features.FeatureVector) float64 {
	pred := m.Baseline
	pred += m.effect(features.FieldItemName, strconv.Itoa(fv.ItemCode))
	pred += m.effect(features.FieldCategory, strconv.Itoa(fv.CategoryCode))
	pred += m.effect(features.FieldDayOfWeek, strconv.Itoa(fv.DayOfWeekCode))
	pred += m.effect(features.FieldMealPeriod, strconv.Itoa(fv.MealPeriodCode))
	pred += m.effect(features.FieldWeather, strconv.Itoa(fv.WeatherCode))
	pred += m.effect(features.FieldSeason, strconv.Itoa(fv.SeasonCode))
	pred += m.effect(fieldSpecialEvent, strconv.FormatBool(fv.SpecialEvent))
	pred += m.effect(fieldMonth, strconv.Itoa(fv.Month))

	// Predictions stay inside the range the generative model can produce.
	if pred < 0 {
		pred = 0
	}
	if pred > 45 {
		pred = 45
	}
	return pred
}

func (m *BaselineModel) effect(field, key string) float64 {
	return m.Effects[field][key]
}

// Save persists the model artifact as JSON with byte-stable output.
func (m *BaselineModel) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// LoadModel reads a persisted model artifact.
func LoadModel(path string) (*BaselineModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var model BaselineModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("parsing model artifact %s: %w", path, err)
	}
	if model.Effects == nil {
		return nil, fmt.Errorf("model artifact %s has no effect tables", path)
	}
	return &model, nil
}
