package models

// PredictionRequest is the inbound payload for a waste prediction.
// PreparedQuantity is a pointer so a missing field can be told apart from an
// explicit zero.
type PredictionRequest struct {
	ItemName         string `json:"itemName"`
	Category         string `json:"category"`
	DayOfWeek        string `json:"dayOfWeek"`
	MealPeriod       string `json:"mealPeriod,omitempty"`
	Weather          string `json:"weather,omitempty"`
	SpecialEvent     bool   `json:"specialEvent,omitempty"`
	PreparedQuantity *int   `json:"preparedQuantity"`
	Date             string `json:"date,omitempty"`
}

// PredictionResponse is returned on a successful prediction.
type PredictionResponse struct {
	Success           bool    `json:"success"`
	WastePercentage   float64 `json:"wastePercentage"`
	Confidence        string  `json:"confidence"`
	PredictionType    string  `json:"predictionType"`
	SuggestedQuantity int     `json:"suggestedQuantity"`
	Message           string  `json:"message"`
}

// ErrorResponse is returned with a non-success status code when a request
// fails validation or lookup.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
