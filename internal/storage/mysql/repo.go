package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"bitespot/internal/domain"
)

func jsonVal(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertRestaurant(ctx context.Context, rest domain.Restaurant) error {
	var lat, lon any
	if rest.Coords != nil {
		lat, lon = rest.Coords.Lat, rest.Coords.Lon
	}
	_, err := r.db.ExecContext(ctx, upsertRestaurantSQL,
		rest.ID,
		rest.Name,
		rest.Description,
		rest.Ambiance,
		rest.Location,
		rest.Area,
		lat,
		lon,
		string(rest.PriceRange),
		rest.Rating,
		rest.ReviewCount,
		rest.OpeningHours,
		jsonVal(rest.Cuisine),
		jsonVal(rest.SpecialtyDishes),
		jsonVal(rest.Tags),
		jsonVal(rest.MealTimes),
		jsonVal(rest.Vibes),
		jsonVal(rest.TasteTags),
		jsonVal(rest.FeatureTags),
		jsonVal(rest.DietaryTags),
		jsonVal(rest.WeatherTags),
		jsonVal(rest.Ingredients),
		jsonVal(rest.Allergens),
		jsonVal(rest.AllergenFriendly),
	)
	return err
}

// FindAll applies the filter as an AND of predicates. Membership predicates
// on JSON set columns use JSON_OVERLAPS, so any shared value matches.
func (r *Repo) FindAll(ctx context.Context, f domain.CatalogFilter) ([]domain.Restaurant, error) {
	var where []string
	var args []any

	if f.PriceRange != nil {
		where = append(where, "price_range = ?")
		args = append(args, string(*f.PriceRange))
	}
	addOverlap := func(col string, vals []string) {
		if len(vals) == 0 {
			return
		}
		where = append(where, "JSON_OVERLAPS("+col+", CAST(? AS JSON))")
		args = append(args, jsonVal(vals))
	}
	addOverlap("cuisine", f.Cuisines)
	addOverlap("tags", f.Tags)
	addOverlap("taste_tags", f.TasteTags)
	addOverlap("feature_tags", f.FeatureTags)
	addOverlap("dietary_tags", f.DietaryTags)
	addOverlap("weather_tags", f.WeatherTags)
	if len(f.MealTimes) > 0 {
		mts := make([]string, 0, len(f.MealTimes))
		for _, mt := range f.MealTimes {
			mts = append(mts, string(mt))
		}
		addOverlap("meal_times", mts)
	}
	if f.MinRating != nil {
		where = append(where, "rating >= ?")
		args = append(args, *f.MinRating)
	}

	q := selectRestaurantsSQL
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	if f.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRestaurant(rows *sql.Rows) (domain.Restaurant, error) {
	var rest domain.Restaurant
	var (
		ambiance, location, area, priceRange, openingHours sql.NullString
		lat, lon                                           sql.NullFloat64
		reviewCount                                        sql.NullInt64
		cuisine, dishes, tags, mealTimes, vibes            []byte
		tasteTags, featureTags, dietaryTags, weatherTags   []byte
		ingredients, allergens, allergenFriendly           []byte
	)
	if err := rows.Scan(
		&rest.ID, &rest.Name, &rest.Description, &ambiance, &location, &area,
		&lat, &lon, &priceRange, &rest.Rating, &reviewCount, &openingHours,
		&cuisine, &dishes, &tags, &mealTimes, &vibes, &tasteTags, &featureTags,
		&dietaryTags, &weatherTags, &ingredients, &allergens, &allergenFriendly,
	); err != nil {
		return domain.Restaurant{}, err
	}

	rest.Ambiance = ambiance.String
	rest.Location = location.String
	rest.Area = area.String
	rest.PriceRange = domain.PriceRange(priceRange.String)
	rest.OpeningHours = openingHours.String
	if reviewCount.Valid {
		rest.ReviewCount = int(reviewCount.Int64)
	}
	if lat.Valid && lon.Valid {
		rest.Coords = &domain.Coords{Lat: lat.Float64, Lon: lon.Float64}
	}

	_ = json.Unmarshal(cuisine, &rest.Cuisine)
	_ = json.Unmarshal(dishes, &rest.SpecialtyDishes)
	_ = json.Unmarshal(tags, &rest.Tags)
	_ = json.Unmarshal(mealTimes, &rest.MealTimes)
	_ = json.Unmarshal(vibes, &rest.Vibes)
	_ = json.Unmarshal(tasteTags, &rest.TasteTags)
	_ = json.Unmarshal(featureTags, &rest.FeatureTags)
	_ = json.Unmarshal(dietaryTags, &rest.DietaryTags)
	_ = json.Unmarshal(weatherTags, &rest.WeatherTags)
	_ = json.Unmarshal(ingredients, &rest.Ingredients)
	_ = json.Unmarshal(allergens, &rest.Allergens)
	_ = json.Unmarshal(allergenFriendly, &rest.AllergenFriendly)
	return rest, nil
}
