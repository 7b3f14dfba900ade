package domain

import "time"

// MealTime is a day segment derived from the wall clock, never from user input.
type MealTime string

const (
	Breakfast MealTime = "breakfast"
	Lunch     MealTime = "lunch"
	Snacks    MealTime = "snacks"
	Dinner    MealTime = "dinner"
	LateNight MealTime = "late-night"
	Dessert   MealTime = "dessert"
)

// MealTimeAt maps an hour (0-23) onto the authoritative hour-range table.
func MealTimeAt(hour int) MealTime {
	switch {
	case hour >= 6 && hour < 11:
		return Breakfast
	case hour >= 11 && hour < 16:
		return Lunch
	case hour >= 16 && hour < 19:
		return Snacks
	case hour >= 19 && hour < 23:
		return Dinner
	default:
		return LateNight
	}
}

// CurrentMealTime derives the meal time for the given instant.
func CurrentMealTime(now time.Time) MealTime { return MealTimeAt(now.Hour()) }

var mealTimeDisplays = map[MealTime]string{
	Breakfast: "🌅 Breakfast",
	Lunch:     "☀️ Lunch",
	Snacks:    "☕ Snacks",
	Dinner:    "🌙 Dinner",
	LateNight: "🌃 Late Night",
	Dessert:   "🍰 Dessert",
}

func (m MealTime) Display() string {
	if d, ok := mealTimeDisplays[m]; ok {
		return d
	}
	return string(m)
}

var mealTimeEmojis = map[MealTime]string{
	Breakfast: "🌅",
	Lunch:     "☀️",
	Snacks:    "☕",
	Dinner:    "🌙",
	LateNight: "🌃",
	Dessert:   "🍰",
}

func (m MealTime) Emoji() string {
	if e, ok := mealTimeEmojis[m]; ok {
		return e
	}
	return "🍽️"
}

// Greeting returns the time-of-day salutation used by the fallback narrative.
// Its hour windows differ from the meal-time table on purpose.
func Greeting(now time.Time) string {
	hour := now.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return "Good morning! Looking for breakfast?"
	case hour >= 12 && hour < 17:
		return "Good afternoon! Time for lunch?"
	case hour >= 17 && hour < 21:
		return "Good evening! Dinner plans?"
	default:
		return "Late night cravings?"
	}
}
