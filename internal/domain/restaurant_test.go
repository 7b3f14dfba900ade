package domain_test

import (
	"strings"
	"testing"

	"bitespot/internal/domain"
)

func TestRestaurantSearchText(t *testing.T) {
	r := domain.Restaurant{
		Name:        "Chai Point",
		Cuisine:     []string{"Cafe"},
		Description: "Cutting chai and snacks",
		TasteTags:   []string{"sweet"},
		PriceRange:  domain.PriceBudget,
	}
	text := r.SearchText()
	for _, want := range []string{"Chai Point", "Cafe", "Cutting chai and snacks", "sweet", "₹"} {
		if !strings.Contains(text, want) {
			t.Fatalf("search text missing %q: %q", want, text)
		}
	}
}

func TestRestaurantHasWeatherTag(t *testing.T) {
	r := domain.Restaurant{WeatherTags: []string{"chai", "pakoras"}}
	if !r.HasWeatherTag([]string{"hot-soup", "chai"}) {
		t.Fatal("expected overlap on chai")
	}
	if r.HasWeatherTag([]string{"ice-cream"}) {
		t.Fatal("no overlap expected")
	}
}

func TestRestaurantServesAt(t *testing.T) {
	r := domain.Restaurant{MealTimes: []domain.MealTime{domain.Lunch, domain.Dinner}}
	if !r.ServesAt(domain.Lunch) {
		t.Fatal("expected lunch")
	}
	if r.ServesAt(domain.Breakfast) {
		t.Fatal("breakfast not served")
	}
}
