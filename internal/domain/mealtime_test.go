package domain_test

import (
	"testing"
	"time"

	"bitespot/internal/domain"
)

func TestMealTimeAt(t *testing.T) {
	cases := []struct {
		hour int
		want domain.MealTime
	}{
		{5, domain.LateNight},
		{6, domain.Breakfast},
		{10, domain.Breakfast},
		{11, domain.Lunch},
		{13, domain.Lunch},
		{15, domain.Lunch},
		{16, domain.Snacks},
		{18, domain.Snacks},
		{19, domain.Dinner},
		{22, domain.Dinner},
		{23, domain.LateNight},
		{0, domain.LateNight},
		{3, domain.LateNight},
	}
	for _, c := range cases {
		if got := domain.MealTimeAt(c.hour); got != c.want {
			t.Errorf("hour %d: got %q, want %q", c.hour, got, c.want)
		}
	}
}

func TestCurrentMealTime(t *testing.T) {
	at := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
	if got := domain.CurrentMealTime(at); got != domain.Lunch {
		t.Fatalf("13:00 should be lunch, got %q", got)
	}
}

func TestGreeting_WindowsDifferFromMealTimes(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{5, "Good morning! Looking for breakfast?"},
		{11, "Good morning! Looking for breakfast?"},
		{12, "Good afternoon! Time for lunch?"},
		{16, "Good afternoon! Time for lunch?"},
		{17, "Good evening! Dinner plans?"},
		{20, "Good evening! Dinner plans?"},
		{21, "Late night cravings?"},
		{2, "Late night cravings?"},
	}
	for _, c := range cases {
		at := time.Date(2025, 3, 10, c.hour, 30, 0, 0, time.UTC)
		if got := domain.Greeting(at); got != c.want {
			t.Errorf("hour %d: got %q, want %q", c.hour, got, c.want)
		}
	}
}

func TestMealTimeDisplay(t *testing.T) {
	if got := domain.Lunch.Display(); got != "☀️ Lunch" {
		t.Fatalf("got %q", got)
	}
	if got := domain.MealTime("brunch").Display(); got != "brunch" {
		t.Fatalf("unknown meal time should echo itself, got %q", got)
	}
}
