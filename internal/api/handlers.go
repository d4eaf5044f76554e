package api

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/calendar"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/features"
	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
	"go.uber.org/zap"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status":       "healthy",
		"service":      "waste-prediction-service",
		"model_loaded": s.model != nil,
		"uptime":       time.Since(s.startTime).Seconds(),
	}

	writeJSON(w, http.StatusOK, health)
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req models.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := validateRequired(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// Optional fields with documented defaults.
	if req.MealPeriod == "" {
		req.MealPeriod = models.MealPeriodAllDay
	}
	if req.Weather == "" {
		req.Weather = models.WeatherCloudy
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, fmt.Sprintf("malformed date %q, expected YYYY-MM-DD", req.Date))
			return
		}
		date = parsed
	}
	month := int(date.Month())
	season := calendar.Season(date)

	enc, err := s.vocabs.EncodeRequest(&req, season, month)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	prediction := math.Round(s.model.Predict(enc.Vector)*100) / 100
	suggested := int(float64(*req.PreparedQuantity) * (1 - prediction/100))

	s.logger.Debug("prediction served",
		zap.String("item", req.ItemName),
		zap.String("resolved_item", enc.ResolvedItem),
		zap.String("basis", enc.Basis),
		zap.Float64("waste_percentage", prediction))

	writeJSON(w, http.StatusOK, models.PredictionResponse{
		Success:           true,
		WastePercentage:   prediction,
		Confidence:        enc.Confidence,
		PredictionType:    enc.Basis,
		SuggestedQuantity: suggested,
		Message:           fmt.Sprintf("Prediction based on %s patterns", enc.Basis),
	})
}

func validateRequired(req *models.PredictionRequest) error {
	if req.ItemName == "" {
		return &features.ValidationError{Field: "itemName"}
	}
	if req.Category == "" {
		return &features.ValidationError{Field: "category"}
	}
	if req.DayOfWeek == "" {
		return &features.ValidationError{Field: "dayOfWeek"}
	}
	if req.PreparedQuantity == nil {
		return &features.ValidationError{Field: "preparedQuantity"}
	}
	if *req.PreparedQuantity < 0 {
		return fmt.Errorf("preparedQuantity must be >= 0, got %d", *req.PreparedQuantity)
	}
	return nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.logger.Warn("request rejected",
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.String("error", message))

	writeJSON(w, status, models.ErrorResponse{Success: false, Error: message})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
