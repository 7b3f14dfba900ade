package app_test

import (
	"testing"

	"bitespot/internal/app"
	"bitespot/internal/domain"
)

func TestAnnotate_Flags(t *testing.T) {
	weather := rainySnapshot()
	restaurants := []domain.Restaurant{
		{ID: 1, MealTimes: []domain.MealTime{domain.Lunch}, WeatherTags: []string{"pakoras"}},
		{ID: 2, MealTimes: []domain.MealTime{domain.Dinner}},
	}

	out := app.Annotate(restaurants, domain.Lunch, &weather)
	if !out[0].MatchesCurrentTime || !out[0].MatchesWeather {
		t.Fatalf("first candidate flags wrong: %+v", out[0])
	}
	if out[1].MatchesCurrentTime || out[1].MatchesWeather {
		t.Fatalf("second candidate flags wrong: %+v", out[1])
	}
}

func TestAnnotate_NilWeatherSkipsWeatherFlag(t *testing.T) {
	restaurants := []domain.Restaurant{
		{ID: 1, WeatherTags: []string{"pakoras", "chai"}},
	}
	out := app.Annotate(restaurants, domain.Lunch, nil)
	if out[0].MatchesWeather {
		t.Fatal("weather flag must stay false without a snapshot")
	}
}

func TestRerank_CompositeScoreOrdering(t *testing.T) {
	// scores: id 1 -> 0, id 2 -> 1, id 3 -> 2, id 4 -> 3
	cands := []domain.RankedCandidate{
		{Restaurant: domain.Restaurant{ID: 1, Rating: 4.9}},
		{Restaurant: domain.Restaurant{ID: 2, Rating: 4.0}, MatchesWeather: true},
		{Restaurant: domain.Restaurant{ID: 3, Rating: 3.5}, MatchesCurrentTime: true},
		{Restaurant: domain.Restaurant{ID: 4, Rating: 3.0}, MatchesCurrentTime: true, MatchesWeather: true},
	}

	app.Rerank(cands)

	wantOrder := []int64{4, 3, 2, 1}
	for i, want := range wantOrder {
		if cands[i].ID != want {
			t.Fatalf("position %d: got id %d, want %d", i, cands[i].ID, want)
		}
	}
}

func TestRerank_RatingBreaksTies(t *testing.T) {
	cands := []domain.RankedCandidate{
		{Restaurant: domain.Restaurant{ID: 1, Rating: 4.0}, MatchesCurrentTime: true},
		{Restaurant: domain.Restaurant{ID: 2, Rating: 4.7}, MatchesCurrentTime: true},
	}
	app.Rerank(cands)
	if cands[0].ID != 2 {
		t.Fatalf("expected higher-rated restaurant first, got id %d", cands[0].ID)
	}
}

func TestRerank_StableOnFullTies(t *testing.T) {
	cands := []domain.RankedCandidate{
		{Restaurant: domain.Restaurant{ID: 1, Rating: 4.2}},
		{Restaurant: domain.Restaurant{ID: 2, Rating: 4.2}},
		{Restaurant: domain.Restaurant{ID: 3, Rating: 4.2}},
	}
	app.Rerank(cands)
	for i, want := range []int64{1, 2, 3} {
		if cands[i].ID != want {
			t.Fatalf("tied candidates reordered: got %d at %d", cands[i].ID, i)
		}
	}
}
