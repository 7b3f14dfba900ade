package app_test

import (
	"context"
	"errors"
	"time"

	"bitespot/internal/domain"
)

// ---- fakes ----

// fakeRepo applies CatalogFilter semantics in memory: AND of predicates,
// any-overlap on set fields.
type fakeRepo struct {
	restaurants []domain.Restaurant
	err         error
}

func (f *fakeRepo) UpsertRestaurant(ctx context.Context, r domain.Restaurant) error { return nil }

func (f *fakeRepo) FindAll(ctx context.Context, q domain.CatalogFilter) ([]domain.Restaurant, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Restaurant
	for _, r := range f.restaurants {
		if !matches(r, q) {
			continue
		}
		out = append(out, r)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

func matches(r domain.Restaurant, q domain.CatalogFilter) bool {
	if q.PriceRange != nil && r.PriceRange != *q.PriceRange {
		return false
	}
	if len(q.Cuisines) > 0 && !overlaps(r.Cuisine, q.Cuisines) {
		return false
	}
	if len(q.Tags) > 0 && !overlaps(r.Tags, q.Tags) {
		return false
	}
	if len(q.TasteTags) > 0 && !overlaps(r.TasteTags, q.TasteTags) {
		return false
	}
	if len(q.FeatureTags) > 0 && !overlaps(r.FeatureTags, q.FeatureTags) {
		return false
	}
	if len(q.DietaryTags) > 0 && !overlaps(r.DietaryTags, q.DietaryTags) {
		return false
	}
	if len(q.WeatherTags) > 0 && !overlaps(r.WeatherTags, q.WeatherTags) {
		return false
	}
	if len(q.MealTimes) > 0 {
		found := false
		for _, mt := range q.MealTimes {
			if r.ServesAt(mt) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if q.MinRating != nil && r.Rating < *q.MinRating {
		return false
	}
	return true
}

func overlaps(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

// failGen always errors; the narrative step must fall back.
type failGen struct{}

func (failGen) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "", errors.New("model unavailable")
}

// okGen records the prompt and returns canned text.
type okGen struct{ prompt string }

func (g *okGen) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return "Here are my picks!", nil
}

// fixedWeather serves one snapshot verbatim.
type fixedWeather struct{ snap domain.WeatherSnapshot }

func (f fixedWeather) CurrentWeather(ctx context.Context, city string) (domain.WeatherSnapshot, error) {
	return f.snap, nil
}

// downWeather always errors.
type downWeather struct{}

func (downWeather) CurrentWeather(ctx context.Context, city string) (domain.WeatherSnapshot, error) {
	return domain.WeatherSnapshot{}, errors.New("weather api down")
}

// lunchtime is a fixed clock inside the lunch window.
func lunchtime() time.Time {
	return time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
}

func rainySnapshot() domain.WeatherSnapshot {
	return domain.WeatherSnapshot{
		Temperature: 22,
		Condition:   "rain",
		Description: "Light rain",
		Category:    domain.WeatherRainy,
		City:        "Coimbatore",
	}
}
