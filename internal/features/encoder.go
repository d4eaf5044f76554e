package features

import (
	"fmt"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
)

// FeatureVector is the numeric input handed to the predictor. The codes come
// from the training-time vocabularies, never recomputed at serving time.
type FeatureVector struct {
	ItemCode         int
	CategoryCode     int
	DayOfWeekCode    int
	MealPeriodCode   int
	WeatherCode      int
	SeasonCode       int
	SpecialEvent     bool
	Month            int
	PreparedQuantity int
}

// Encoding is a feature vector plus how the item lookup was resolved.
type Encoding struct {
	Vector       FeatureVector
	ResolvedItem string
	Confidence   string
	Basis        string
}

// ValidationError reports a request field that failed lookup or was missing.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("missing required field %q", e.Field)
	}
	return fmt.Sprintf("unknown %s %q", e.Field, e.Value)
}

// EncodeRequest builds the feature vector for a prediction request.
//
// An item name absent from the vocabulary is not an error: the encoder falls
// back to the persisted representatives of the requested category (first
// known item overall as a last resort) and downgrades the confidence tier.
// Any other categorical value absent from its vocabulary is a hard
// validation failure.
func (s *VocabularySet) EncodeRequest(req *models.PredictionRequest, season string, month int) (*Encoding, error) {
	itemVocab := s.vocabs[FieldItemName]
	if itemVocab == nil || itemVocab.Len() == 0 {
		return nil, fmt.Errorf("item vocabulary is empty")
	}

	categoryCode, err := s.encodeField(FieldCategory, req.Category)
	if err != nil {
		return nil, err
	}
	dayCode, err := s.encodeField(FieldDayOfWeek, req.DayOfWeek)
	if err != nil {
		return nil, err
	}
	mealPeriodCode, err := s.encodeField(FieldMealPeriod, req.MealPeriod)
	if err != nil {
		return nil, err
	}
	weatherCode, err := s.encodeField(FieldWeather, req.Weather)
	if err != nil {
		return nil, err
	}
	seasonCode, err := s.encodeField(FieldSeason, season)
	if err != nil {
		return nil, err
	}

	enc := &Encoding{
		ResolvedItem: req.ItemName,
		Confidence:   models.ConfidenceHigh,
		Basis:        models.PredictionItemBased,
	}

	itemCode, ok := itemVocab.Encode(req.ItemName)
	if !ok {
		resolved := s.resolveRepresentative(req.Category)
		itemCode, _ = itemVocab.Encode(resolved)
		enc.ResolvedItem = resolved
		enc.Confidence = models.ConfidenceMedium
		enc.Basis = models.PredictionCategoryBased
	}

	enc.Vector = FeatureVector{
		ItemCode:       itemCode,
		CategoryCode:   categoryCode,
		DayOfWeekCode:  dayCode,
		MealPeriodCode: mealPeriodCode,
		WeatherCode:    weatherCode,
		SeasonCode:     seasonCode,
		SpecialEvent:   req.SpecialEvent,
		Month:          month,
	}
	if req.PreparedQuantity != nil {
		enc.Vector.PreparedQuantity = *req.PreparedQuantity
	}
	return enc, nil
}

func (s *VocabularySet) encodeField(field, value string) (int, error) {
	vocab, ok := s.vocabs[field]
	if !ok {
		return 0, fmt.Errorf("no vocabulary for field %q", field)
	}
	code, ok := vocab.Encode(value)
	if !ok {
		return 0, &ValidationError{Field: field, Value: value}
	}
	return code, nil
}

// resolveRepresentative picks the stand-in item for an unseen item name: the
// first persisted representative of the category still present in the item
// vocabulary, otherwise the first known item overall.
func (s *VocabularySet) resolveRepresentative(category string) string {
	itemVocab := s.vocabs[FieldItemName]
	for _, rep := range s.representatives[category] {
		if _, ok := itemVocab.Encode(rep); ok {
			return rep
		}
	}
	return itemVocab.values[0]
}
