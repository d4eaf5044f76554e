package models

const (
	SeasonWinter = "Winter"
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonAutumn = "Autumn"

	WeatherSunny  = "sunny"
	WeatherRainy  = "rainy"
	WeatherCloudy = "cloudy"
	WeatherSnowy  = "snowy"

	MealPeriodBreakfast = "breakfast"
	MealPeriodLunch     = "lunch"
	MealPeriodDinner    = "dinner"
	MealPeriodAllDay    = "all-day"

	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"

	PredictionItemBased     = "item-based"
	PredictionCategoryBased = "category-based"
)

const (
	CategoryMeal      = "meal"
	CategorySnack     = "snack"
	CategoryBakery    = "bakery"
	CategoryBeverages = "beverages"
	CategoryDesserts  = "desserts"
	CategorySides     = "sides"
)
