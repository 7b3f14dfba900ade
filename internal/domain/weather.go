package domain

import "strings"

// WeatherCategory buckets a snapshot for food suggestions.
type WeatherCategory string

const (
	WeatherRainy    WeatherCategory = "rainy"
	WeatherHot      WeatherCategory = "hot"
	WeatherCold     WeatherCategory = "cold"
	WeatherPleasant WeatherCategory = "pleasant"
)

// WeatherSnapshot is derived once per request and never persisted.
type WeatherSnapshot struct {
	Temperature float64         `json:"temperature"`
	Condition   string          `json:"condition"`
	Description string          `json:"description"`
	Category    WeatherCategory `json:"category"`
	City        string          `json:"city"`
	IsMockData  bool            `json:"isMockData"`
}

// CategorizeWeather applies the condition/temperature bucket table.
// Condition text wins over temperature for precipitation.
func CategorizeWeather(temp float64, condition string) WeatherCategory {
	c := strings.ToLower(condition)
	if strings.Contains(c, "rain") || strings.Contains(c, "drizzle") || strings.Contains(c, "thunderstorm") {
		return WeatherRainy
	}
	switch {
	case temp >= 30:
		return WeatherHot
	case temp <= 15:
		return WeatherCold
	default:
		return WeatherPleasant
	}
}

// FoodSuggestion pairs the weather-tag set a category favors with a blurb
// used by the fallback narrative and the response payload.
type FoodSuggestion struct {
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

var foodSuggestions = map[WeatherCategory]FoodSuggestion{
	WeatherRainy: {
		Tags:        []string{"hot-soup", "chai", "pakoras", "hot-beverages", "comfort-food"},
		Description: "Perfect weather for hot soups, chai, and crispy pakoras!",
	},
	WeatherHot: {
		Tags:        []string{"cold-desserts", "ice-cream", "juices", "refreshing", "chilled"},
		Description: "Beat the heat with cold desserts, ice cream, and refreshing drinks!",
	},
	WeatherCold: {
		Tags:        []string{"hot-meals", "soups", "warm-food", "comfort-food", "hot-beverages"},
		Description: "Warm up with hot meals, soups, and comforting dishes!",
	},
	WeatherPleasant: {
		Tags:        []string{},
		Description: "Great weather for any cuisine!",
	},
}

// SuggestionsFor never fails; unknown categories get the pleasant defaults.
func SuggestionsFor(cat WeatherCategory) FoodSuggestion {
	if s, ok := foodSuggestions[cat]; ok {
		return s
	}
	return foodSuggestions[WeatherPleasant]
}

var weatherEmojis = map[WeatherCategory]string{
	WeatherRainy:    "🌧️",
	WeatherHot:      "☀️",
	WeatherCold:     "❄️",
	WeatherPleasant: "⛅",
}

func (c WeatherCategory) Emoji() string {
	if e, ok := weatherEmojis[c]; ok {
		return e
	}
	return "🌤️"
}
