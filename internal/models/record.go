package models

import (
	"fmt"
	"strconv"
)

// ObservationRecord is one generated sales/waste row. Date is kept as a
// YYYY-MM-DD string so file output round-trips byte for byte.
type ObservationRecord struct {
	RestaurantID         string  `json:"restaurant_id" parquet:"name=restaurant_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	ItemName             string  `json:"itemName" parquet:"name=item_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Category             string  `json:"category" parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8"`
	Date                 string  `json:"date" parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8"`
	DayOfWeek            string  `json:"dayOfWeek" parquet:"name=day_of_week, type=BYTE_ARRAY, convertedtype=UTF8"`
	PreparedQuantity     int32   `json:"preparedQuantity" parquet:"name=prepared_quantity, type=INT32"`
	SoldQuantity         int32   `json:"soldQuantity" parquet:"name=sold_quantity, type=INT32"`
	WastedQuantity       int32   `json:"wastedQuantity" parquet:"name=wasted_quantity, type=INT32"`
	WastePercentage      float64 `json:"wastePercentage" parquet:"name=waste_percentage, type=DOUBLE"`
	MealPeriod           string  `json:"mealPeriod" parquet:"name=meal_period, type=BYTE_ARRAY, convertedtype=UTF8"`
	Weather              string  `json:"weather" parquet:"name=weather, type=BYTE_ARRAY, convertedtype=UTF8"`
	SpecialEvent         bool    `json:"specialEvent" parquet:"name=special_event, type=BOOLEAN"`
	Revenue              float64 `json:"revenue" parquet:"name=revenue, type=DOUBLE"`
	PotentialRevenueLoss float64 `json:"potentialRevenueLoss" parquet:"name=potential_revenue_loss, type=DOUBLE"`
	Notes                string  `json:"notes" parquet:"name=notes, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// Validate checks the generation-time invariants. A violation means a bug in
// the factor model, so callers are expected to abort the run.
func (r *ObservationRecord) Validate() error {
	if r.PreparedQuantity < 0 {
		return fmt.Errorf("record %s/%s on %s: negative prepared quantity %d",
			r.RestaurantID, r.ItemName, r.Date, r.PreparedQuantity)
	}
	if r.WastedQuantity < 0 || r.WastedQuantity > r.PreparedQuantity {
		return fmt.Errorf("record %s/%s on %s: wasted quantity %d outside [0, %d]",
			r.RestaurantID, r.ItemName, r.Date, r.WastedQuantity, r.PreparedQuantity)
	}
	if r.SoldQuantity+r.WastedQuantity != r.PreparedQuantity {
		return fmt.Errorf("record %s/%s on %s: sold %d + wasted %d != prepared %d",
			r.RestaurantID, r.ItemName, r.Date, r.SoldQuantity, r.WastedQuantity, r.PreparedQuantity)
	}
	if r.WastePercentage < 0 || r.WastePercentage > 45 {
		return fmt.Errorf("record %s/%s on %s: waste percentage %.2f outside [0, 45]",
			r.RestaurantID, r.ItemName, r.Date, r.WastePercentage)
	}
	return nil
}

// DatasetColumns is the fixed column order of the tabular dataset file.
var DatasetColumns = []string{
	"restaurant_id", "itemName", "category", "date", "dayOfWeek",
	"preparedQuantity", "soldQuantity", "wastedQuantity", "wastePercentage",
	"mealPeriod", "weather", "specialEvent", "revenue", "potentialRevenueLoss",
	"notes",
}

// CSVRow renders the record in DatasetColumns order.
func (r *ObservationRecord) CSVRow() []string {
	return []string{
		r.RestaurantID,
		r.ItemName,
		r.Category,
		r.Date,
		r.DayOfWeek,
		strconv.Itoa(int(r.PreparedQuantity)),
		strconv.Itoa(int(r.SoldQuantity)),
		strconv.Itoa(int(r.WastedQuantity)),
		strconv.FormatFloat(r.WastePercentage, 'f', 2, 64),
		r.MealPeriod,
		r.Weather,
		strconv.FormatBool(r.SpecialEvent),
		strconv.FormatFloat(r.Revenue, 'f', 2, 64),
		strconv.FormatFloat(r.PotentialRevenueLoss, 'f', 2, 64),
		r.Notes,
	}
}
