// Package calendar resolves calendar dates to the contextual attributes the
// waste model conditions on: day-of-week name, season, and bank-holiday flag.
// All functions are pure.
package calendar

import (
	"time"

	"github.com/Tejaraju0/MealMate-Fullstack-ML/internal/models"
)

// DayContext is the resolved calendar context for one date.
type DayContext struct {
	DayOfWeek string
	Season    string
	Holiday   bool
}

// UK bank holidays known to the simulator, matched on the YYYY-MM-DD string.
var bankHolidays = map[string]struct{}{
	"2024-12-25": {},
	"2024-12-26": {},
	"2025-01-01": {},
	"2025-04-18": {},
	"2025-04-21": {},
	"2025-05-05": {},
	"2025-05-26": {},
	"2025-08-25": {},
}

// Season returns the meteorological season for a date.
func Season(date time.Time) string {
	switch date.Month() {
	case time.December, time.January, time.February:
		return models.SeasonWinter
	case time.March, time.April, time.May:
		return models.SeasonSpring
	case time.June, time.July, time.August:
		return models.SeasonSummer
	default:
		return models.SeasonAutumn
	}
}

// SeasonOfMonth is Season for callers that only carry a month number.
func SeasonOfMonth(month time.Month) string {
	return Season(time.Date(2000, month, 1, 0, 0, 0, 0, time.UTC))
}

// IsBankHoliday reports whether the date is in the known holiday list.
func IsBankHoliday(date time.Time) bool {
	_, ok := bankHolidays[date.Format("2006-01-02")]
	return ok
}

// Resolve maps a date to its full day context.
func Resolve(date time.Time) DayContext {
	return DayContext{
		DayOfWeek: date.Weekday().String(),
		Season:    Season(date),
		Holiday:   IsBankHoliday(date),
	}
}
