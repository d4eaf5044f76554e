// Package features owns the encoding contract between training and serving:
// per-field vocabularies mapping category strings to dense integer codes,
// plus the per-category representative items used to degrade gracefully when
// a request names an item never seen during training.
package features

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/calendar"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
)

const (
	FieldItemName   = "itemName"
	FieldCategory   = "category"
	FieldDayOfWeek  = "dayOfWeek"
	FieldMealPeriod = "mealPeriod"
	FieldWeather    = "weather"
	FieldSeason     = "season"
)

// CategoricalFields lists every field carrying a vocabulary.
var CategoricalFields = []string{
	FieldItemName, FieldCategory, FieldDayOfWeek,
	FieldMealPeriod, FieldWeather, FieldSeason,
}

// Vocabulary is a bijection between a field's string values and dense
// integer codes. The code of a value is its position in the persisted value
// list, so the mapping survives serialization unchanged.
type Vocabulary struct {
	values []string
	index  map[string]int
}

func NewVocabulary(values []string) *Vocabulary {
	v := &Vocabulary{index: make(map[string]int, len(values))}
	for _, value := range values {
		if _, seen := v.index[value]; seen {
			continue
		}
		v.index[value] = len(v.values)
		v.values = append(v.values, value)
	}
	return v
}

func (v *Vocabulary) Encode(value string) (int, bool) {
	code, ok := v.index[value]
	return code, ok
}

func (v *Vocabulary) Decode(code int) (string, bool) {
	if code < 0 || code >= len(v.values) {
		return "", false
	}
	return v.values[code], true
}

func (v *Vocabulary) Len() int {
	return len(v.values)
}

// Values returns the value list in code order.
func (v *Vocabulary) Values() []string {
	out := make([]string, len(v.values))
	copy(out, v.values)
	return out
}

// VocabularySet bundles the vocabularies of all categorical fields with the
// category representative mapping. Built once at training time, read-only
// afterwards.
type VocabularySet struct {
	vocabs          map[string]*Vocabulary
	representatives map[string][]string
}

// maxRepresentatives caps how many fallback items are persisted per category.
const maxRepresentatives = 3

// BuildFromRecords enumerates the distinct values of every categorical field
// in encounter order and, per category, ranks items by training frequency to
// pick the fallback representatives.
func BuildFromRecords(records []*models.ObservationRecord) (*VocabularySet, error) {
	fieldValues := make(map[string][]string, len(CategoricalFields))

	type itemStat struct {
		name  string
		count int
		first int
	}
	itemsByCategory := make(map[string]map[string]*itemStat)

	for i, rec := range records {
		date, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d has malformed date %q: %w", i, rec.Date, err)
		}

		fieldValues[FieldItemName] = append(fieldValues[FieldItemName], rec.ItemName)
		fieldValues[FieldCategory] = append(fieldValues[FieldCategory], rec.Category)
		fieldValues[FieldDayOfWeek] = append(fieldValues[FieldDayOfWeek], rec.DayOfWeek)
		fieldValues[FieldMealPeriod] = append(fieldValues[FieldMealPeriod], rec.MealPeriod)
		fieldValues[FieldWeather] = append(fieldValues[FieldWeather], rec.Weather)
		fieldValues[FieldSeason] = append(fieldValues[FieldSeason], calendar.Season(date))

		stats, ok := itemsByCategory[rec.Category]
		if !ok {
			stats = make(map[string]*itemStat)
			itemsByCategory[rec.Category] = stats
		}
		stat, ok := stats[rec.ItemName]
		if !ok {
			stat = &itemStat{name: rec.ItemName, first: i}
			stats[rec.ItemName] = stat
		}
		stat.count++
	}

	set := &VocabularySet{
		vocabs:          make(map[string]*Vocabulary, len(CategoricalFields)),
		representatives: make(map[string][]string, len(itemsByCategory)),
	}
	for _, field := range CategoricalFields {
		set.vocabs[field] = NewVocabulary(fieldValues[field])
	}

	for category, stats := range itemsByCategory {
		ranked := make([]*itemStat, 0, len(stats))
		for _, stat := range stats {
			ranked = append(ranked, stat)
		}
		sort.Slice(ranked, func(i, j int) bool {
			if ranked[i].count != ranked[j].count {
				return ranked[i].count > ranked[j].count
			}
			return ranked[i].first < ranked[j].first
		})

		n := len(ranked)
		if n > maxRepresentatives {
			n = maxRepresentatives
		}
		reps := make([]string, n)
		for i := 0; i < n; i++ {
			reps[i] = ranked[i].name
		}
		set.representatives[category] = reps
	}

	return set, nil
}

// Field returns the vocabulary for a categorical field.
func (s *VocabularySet) Field(name string) (*Vocabulary, bool) {
	vocab, ok := s.vocabs[name]
	return vocab, ok
}

// Representatives returns the fallback items for a category, most frequent
// first.
func (s *VocabularySet) Representatives(category string) []string {
	return s.representatives[category]
}

// vocabularyArtifact is the serialized form. Value order is the code order,
// so round-tripping preserves every code assignment.
type vocabularyArtifact struct {
	Fields          map[string][]string `json:"fields"`
	Representatives map[string][]string `json:"representatives"`
}

// Save persists the vocabulary set as JSON. Map keys are sorted by the
// encoder, so identical sets serialize to identical bytes.
func (s *VocabularySet) Save(path string) error {
	artifact := vocabularyArtifact{
		Fields:          make(map[string][]string, len(s.vocabs)),
		Representatives: s.representatives,
	}
	for field, vocab := range s.vocabs {
		artifact.Fields[field] = vocab.Values()
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// LoadVocabularySet reads a persisted vocabulary artifact.
func LoadVocabularySet(path string) (*VocabularySet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var artifact vocabularyArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("parsing vocabulary artifact %s: %w", path, err)
	}

	set := &VocabularySet{
		vocabs:          make(map[string]*Vocabulary, len(artifact.Fields)),
		representatives: artifact.Representatives,
	}
	if set.representatives == nil {
		set.representatives = make(map[string][]string)
	}
	for field, values := range artifact.Fields {
		set.vocabs[field] = NewVocabulary(values)
	}

	for _, field := range CategoricalFields {
		if _, ok := set.vocabs[field]; !ok {
			return nil, fmt.Errorf("vocabulary artifact %s is missing field %q", path, field)
		}
	}
	return set, nil
}
