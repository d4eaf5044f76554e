package features

import (
	"testing"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func encoderRequest() *models.PredictionRequest {
	return &models.PredictionRequest{
		ItemName:         "Fish and Chips",
		Category:         "meal",
		DayOfWeek:        "Monday",
		MealPeriod:       "lunch",
		Weather:          "rainy",
		PreparedQuantity: intPtr(50),
	}
}

func TestEncodeRequestKnownItem(t *testing.T) {
	set, err := BuildFromRecords(trainingRecords())
	require.NoError(t, err)

	enc, err := set.EncodeRequest(encoderRequest(), "Winter", 1)
	require.NoError(t, err)

	assert.Equal(t, models.ConfidenceHigh, enc.Confidence)
	assert.Equal(t, models.PredictionItemBased, enc.Basis)
	assert.Equal(t, "Fish and Chips", enc.ResolvedItem)
	assert.Equal(t, 50, enc.Vector.PreparedQuantity)
	assert.Equal(t, 1, enc.Vector.Month)

	items, _ := set.Field(FieldItemName)
	wantCode, _ := items.Encode("Fish and Chips")
	assert.Equal(t, wantCode, enc.Vector.ItemCode)
}

func TestEncodeRequestUnseenItemFallsBackToRepresentative(t *testing.T) {
	set, err := BuildFromRecords(trainingRecords())
	require.NoError(t, err)

	req := encoderRequest()
	req.ItemName = "Wagyu Slider"

	enc, err := set.EncodeRequest(req, "Winter", 1)
	require.NoError(t, err)

	assert.Equal(t, models.ConfidenceMedium, enc.Confidence)
	assert.Equal(t, models.PredictionCategoryBased, enc.Basis)
	assert.Equal(t, "Cheeseburger", enc.ResolvedItem,
		"most frequent meal item stands in for the unseen one")

	items, _ := set.Field(FieldItemName)
	wantCode, _ := items.Encode("Cheeseburger")
	assert.Equal(t, wantCode, enc.Vector.ItemCode)
}

func TestEncodeRequestUnseenItemUnknownCategoryRepresentatives(t *testing.T) {
	set, err := BuildFromRecords(trainingRecords())
	require.NoError(t, err)

	// bakery stays a known category, but with its representatives stripped
	// the encoder has to reach for the overall fallback.
	req := encoderRequest()
	req.ItemName = "Mystery Dish"
	req.Category = "bakery"
	delete(set.representatives, "bakery")

	enc, err := set.EncodeRequest(req, "Winter", 1)
	require.NoError(t, err)
	assert.Equal(t, "Fish and Chips", enc.ResolvedItem,
		"first known item overall is the last-resort fallback")
	assert.Equal(t, models.PredictionCategoryBased, enc.Basis)
}

func TestEncodeRequestUnknownCategoricalsFail(t *testing.T) {
	set, err := BuildFromRecords(trainingRecords())
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(*models.PredictionRequest)
		field  string
	}{
		{"category", func(r *models.PredictionRequest) { r.Category = "drinks" }, FieldCategory},
		{"dayOfWeek", func(r *models.PredictionRequest) { r.DayOfWeek = "Funday" }, FieldDayOfWeek},
		{"mealPeriod", func(r *models.PredictionRequest) { r.MealPeriod = "brunch" }, FieldMealPeriod},
		{"weather", func(r *models.PredictionRequest) { r.Weather = "foggy" }, FieldWeather},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := encoderRequest()
			tc.mutate(req)

			_, err := set.EncodeRequest(req, "Winter", 1)
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestEncodeRequestUnknownSeasonFails(t *testing.T) {
	set, err := BuildFromRecords(trainingRecords())
	require.NoError(t, err)

	// trainingRecords never cover autumn.
	_, err = set.EncodeRequest(encoderRequest(), "Autumn", 10)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, FieldSeason, vErr.Field)
}
