package predictor

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/features"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecord(item, category, day, mealPeriod, weather, date string, event bool, pct float64) *models.ObservationRecord {
	return &models.ObservationRecord{
		RestaurantID:     "RESTAURANT_1",
		ItemName:         item,
		Category:         category,
		Date:             date,
		DayOfWeek:        day,
		PreparedQuantity: 50,
		SoldQuantity:     40,
		WastedQuantity:   10,
		WastePercentage:  pct,
		MealPeriod:       mealPeriod,
		Weather:          weather,
		SpecialEvent:     event,
	}
}

func trainingRecords() []*models.ObservationRecord {
	return []*models.ObservationRecord{
		makeRecord("Fish and Chips", "meal", "Monday", "lunch", "rainy", "2025-01-06", false, 20),
		makeRecord("Cheeseburger", "meal", "Monday", "dinner", "cloudy", "2025-01-06", false, 18),
		makeRecord("Cheeseburger", "meal", "Tuesday", "lunch", "sunny", "2025-01-07", true, 26),
		makeRecord("Croissant", "bakery", "Monday", "breakfast", "cloudy", "2025-01-06", false, 24),
		makeRecord("Coffee", "beverages", "Tuesday", "all-day", "cloudy", "2025-01-07", false, 8),
	}
}

func fitModel(t *testing.T) (*BaselineModel, *features.VocabularySet) {
	t.Helper()
	records := trainingRecords()
	vocabs, err := features.BuildFromRecords(records)
	require.NoError(t, err)
	model, err := Train(records, vocabs)
	require.NoError(t, err)
	return model, vocabs
}

func TestTrainBaselineIsGlobalMean(t *testing.T) {
	model, _ := fitModel(t)
	assert.InDelta(t, (20+18+26+24+8)/5.0, model.Baseline, 1e-9)
}

func TestTrainEffectsCenterOnBaseline(t *testing.T) {
	model, vocabs := fitModel(t)

	// Coffee appears once with waste 8, so its effect is 8 - mean.
	items, _ := vocabs.Field(features.FieldItemName)
	code, ok := items.Encode("Coffee")
	require.True(t, ok)
	assert.InDelta(t, 8-model.Baseline, model.Effects[features.FieldItemName][strconv.Itoa(code)], 1e-9)

	// Special events push waste up in this training set.
	assert.Greater(t, model.Effects[fieldSpecialEvent]["true"], model.Effects[fieldSpecialEvent]["false"])
}

func TestPredictReconstructsSingletonRecord(t *testing.T) {
	model, vocabs := fitModel(t)

	// Every feature of the Croissant record is either unique to it or shared;
	// the prediction must stay within the generative range regardless.
	req := &models.PredictionRequest{
		ItemName:   "Croissant",
		Category:   "bakery",
		DayOfWeek:  "Monday",
		MealPeriod: "breakfast",
		Weather:    "cloudy",
	}
	prepared := 50
	req.PreparedQuantity = &prepared

	enc, err := vocabs.EncodeRequest(req, "Winter", 1)
	require.NoError(t, err)

	pred := model.Predict(enc.Vector)
	assert.GreaterOrEqual(t, pred, 0.0)
	assert.LessOrEqual(t, pred, 45.0)
}

func TestPredictClampsToGenerativeRange(t *testing.T) {
	model := &BaselineModel{
		Baseline: 44,
		Effects: map[string]map[string]float64{
			features.FieldItemName: {"0": 10},
		},
	}
	assert.Equal(t, 45.0, model.Predict(features.FeatureVector{}))

	model.Baseline = -5
	model.Effects[features.FieldItemName]["0"] = 0
	assert.Equal(t, 0.0, model.Predict(features.FeatureVector{ItemCode: 0}))
}

func TestTrainRejectsEmptyDataset(t *testing.T) {
	vocabs, err := features.BuildFromRecords(nil)
	require.NoError(t, err)
	_, err = Train(nil, vocabs)
	assert.Error(t, err)
}

func TestModelArtifactRoundTrip(t *testing.T) {
	model, _ := fitModel(t)

	path := filepath.Join(t.TempDir(), "waste_model.json")
	require.NoError(t, model.Save(path))

	loaded, err := LoadModel(path)
	require.NoError(t, err)
	assert.Equal(t, model.Baseline, loaded.Baseline)
	assert.Equal(t, model.Effects, loaded.Effects)
}
