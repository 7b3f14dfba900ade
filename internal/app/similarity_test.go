package app_test

import (
	"context"
	"fmt"
	"testing"

	"bitespot/internal/app"
	"bitespot/internal/domain"
)

func TestSimilaritySearch_OrdersByRelevance(t *testing.T) {
	repo := &fakeRepo{restaurants: []domain.Restaurant{
		{ID: 1, Name: "Grill House", Description: "smoky grilled kebabs"},
		{ID: 2, Name: "Sweet Tooth", Description: "dessert cake ice cream sweet"},
		{ID: 3, Name: "Daily Dosa", Description: "south indian dosa idli"},
	}}
	ranker := app.NewSimilarityRanker(repo, app.NewDeterministicVectorizer(), 2)

	out, err := ranker.Search(context.Background(), "something sweet like cake or dessert", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d restaurants, want 3", len(out))
	}
	if out[0].ID != 2 {
		t.Fatalf("expected dessert place first, got %q", out[0].Name)
	}
}

func TestSimilaritySearch_CapsAtFive(t *testing.T) {
	var restaurants []domain.Restaurant
	for i := 1; i <= 8; i++ {
		restaurants = append(restaurants, domain.Restaurant{
			ID:          int64(i),
			Name:        fmt.Sprintf("Biryani House %d", i),
			Description: "fragrant biryani",
		})
	}
	ranker := app.NewSimilarityRanker(&fakeRepo{restaurants: restaurants}, app.NewDeterministicVectorizer(), 4)

	out, err := ranker.Search(context.Background(), "biryani", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 5 {
		t.Fatalf("got %d restaurants, want 5", len(out))
	}
}

func TestSimilaritySearch_WeatherBoostBreaksTie(t *testing.T) {
	// Identical text, so identical base similarity. The weather tag match
	// must pull the second restaurant ahead.
	repo := &fakeRepo{restaurants: []domain.Restaurant{
		{ID: 1, Name: "Cafe One", Description: "hot soup specials", WeatherTags: []string{"chilled"}},
		{ID: 2, Name: "Cafe Two", Description: "hot soup specials", WeatherTags: []string{"hot-beverages"}},
	}}
	ranker := app.NewSimilarityRanker(repo, app.NewDeterministicVectorizer(), 2)

	weather := rainySnapshot()
	out, err := ranker.Search(context.Background(), "soup", &weather)
	if err != nil {
		t.Fatal(err)
	}
	if out[0].ID != 2 {
		t.Fatalf("expected weather-boosted restaurant first, got id %d", out[0].ID)
	}
}

func TestSimilaritySearch_EmptyCatalog(t *testing.T) {
	ranker := app.NewSimilarityRanker(&fakeRepo{}, app.NewDeterministicVectorizer(), 2)
	out, err := ranker.Search(context.Background(), "anything", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no results, got %d", len(out))
	}
}
