package domain

import "context"

// CatalogFilter is a conjunction of field predicates. Nil/empty fields are
// skipped; slice fields mean "any of these values is present".
type CatalogFilter struct {
	PriceRange  *PriceRange
	Cuisines    []string
	Tags        []string
	TasteTags   []string
	FeatureTags []string
	DietaryTags []string
	WeatherTags []string
	MealTimes   []MealTime
	MinRating   *float64
	Limit       int
}

type RestaurantRepository interface {
	// Read path; ordering is imposed later by the rankers.
	FindAll(ctx context.Context, f CatalogFilter) ([]Restaurant, error)

	// Write path, used only by the seeder.
	UpsertRestaurant(ctx context.Context, r Restaurant) error
}

// TextGenerator is the narrow capability the narrative step depends on, so
// the fallback path can be exercised with a failing implementation.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// WeatherProvider fetches a live snapshot for a city.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) (WeatherSnapshot, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
