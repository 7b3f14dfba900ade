package domain_test

import (
	"testing"

	"bitespot/internal/domain"
)

func TestCategorizeWeather(t *testing.T) {
	cases := []struct {
		temp      float64
		condition string
		want      domain.WeatherCategory
	}{
		{35, "Rain", domain.WeatherRainy}, // condition beats temperature
		{10, "drizzle", domain.WeatherRainy},
		{28, "Thunderstorm", domain.WeatherRainy},
		{30, "clear", domain.WeatherHot},
		{42, "clear", domain.WeatherHot},
		{15, "clear", domain.WeatherCold},
		{-2, "snow", domain.WeatherCold},
		{16, "clear", domain.WeatherPleasant},
		{29, "clouds", domain.WeatherPleasant},
	}
	for _, c := range cases {
		if got := domain.CategorizeWeather(c.temp, c.condition); got != c.want {
			t.Errorf("(%v, %q): got %q, want %q", c.temp, c.condition, got, c.want)
		}
	}
}

func TestSuggestionsFor(t *testing.T) {
	rainy := domain.SuggestionsFor(domain.WeatherRainy)
	if len(rainy.Tags) == 0 || rainy.Tags[0] != "hot-soup" {
		t.Fatalf("unexpected rainy tags %v", rainy.Tags)
	}

	pleasant := domain.SuggestionsFor(domain.WeatherPleasant)
	if len(pleasant.Tags) != 0 {
		t.Fatalf("pleasant weather suggests everything, got tags %v", pleasant.Tags)
	}

	unknown := domain.SuggestionsFor(domain.WeatherCategory("monsoon"))
	if unknown.Description != pleasant.Description {
		t.Fatal("unknown categories should get the pleasant defaults")
	}
}
