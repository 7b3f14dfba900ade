package domain

import "strings"

// PriceRange is the currency-symbol price tier stored in the catalog.
type PriceRange string

const (
	PriceBudget   PriceRange = "₹"
	PriceModerate PriceRange = "₹₹"
	PricePremium  PriceRange = "₹₹₹"
)

type Coords struct{ Lat, Lon float64 }

// Restaurant is the catalog record. The pipeline treats it as read-only;
// rating is owned by the review subsystem.
type Restaurant struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Cuisine          []string   `json:"cuisine"`
	PriceRange       PriceRange `json:"priceRange"`
	Location         string     `json:"location,omitempty"`
	Area             string     `json:"area,omitempty"`
	Coords           *Coords    `json:"coordinates,omitempty"`
	SpecialtyDishes  []string   `json:"specialtyDishes"`
	Ambiance         string     `json:"ambiance,omitempty"`
	Description      string     `json:"description"`
	Rating           float64    `json:"rating"`
	ReviewCount      int        `json:"reviewCount,omitempty"`
	OpeningHours     string     `json:"openingHours,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
	MealTimes        []MealTime `json:"mealTimes"`
	Vibes            []string   `json:"vibes,omitempty"`
	TasteTags        []string   `json:"tasteTags,omitempty"`
	FeatureTags      []string   `json:"featureTags,omitempty"`
	DietaryTags      []string   `json:"dietaryTags,omitempty"`
	WeatherTags      []string   `json:"weatherTags,omitempty"`
	Ingredients      []string   `json:"ingredients,omitempty"`
	Allergens        []string   `json:"allergens,omitempty"`
	AllergenFriendly []string   `json:"allergenFriendly,omitempty"`
}

// SearchText concatenates the fields the similarity ranker vectorizes.
func (r Restaurant) SearchText() string {
	parts := make([]string, 0, 16)
	parts = append(parts, r.Name)
	parts = append(parts, r.Cuisine...)
	parts = append(parts, r.Description, r.Ambiance)
	parts = append(parts, r.Tags...)
	parts = append(parts, r.TasteTags...)
	parts = append(parts, r.FeatureTags...)
	parts = append(parts, r.DietaryTags...)
	parts = append(parts, r.WeatherTags...)
	parts = append(parts, string(r.PriceRange))
	nonEmpty := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// HasWeatherTag reports whether any of the restaurant's weather tags is in want.
func (r Restaurant) HasWeatherTag(want []string) bool {
	for _, t := range r.WeatherTags {
		for _, w := range want {
			if t == w {
				return true
			}
		}
	}
	return false
}

// ServesAt reports meal-time membership.
func (r Restaurant) ServesAt(mt MealTime) bool {
	for _, m := range r.MealTimes {
		if m == mt {
			return true
		}
	}
	return false
}
