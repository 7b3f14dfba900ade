package app

import (
	"context"
	"strings"

	"bitespot/internal/domain"
)

/********** rule registry (single source of truth) **********/

// categoryRule maps any-of substring keywords to a filter fragment. Rules in
// a category are tried top to bottom; the first hit wins and later rules in
// the same category are skipped.
type categoryRule struct {
	keywords []string
	apply    func(*domain.CatalogFilter)
}

func priceRule(p domain.PriceRange) func(*domain.CatalogFilter) {
	return func(f *domain.CatalogFilter) { f.PriceRange = &p }
}

var ruleCategories = [][]categoryRule{
	// price
	{
		{[]string{"cheap", "budget", "affordable"}, priceRule(domain.PriceBudget)},
		{[]string{"expensive", "premium", "fine dining"}, priceRule(domain.PricePremium)},
	},
	// cuisine
	{
		{[]string{"pizza", "italian"}, func(f *domain.CatalogFilter) { f.Cuisines = []string{"Italian"} }},
		{[]string{"biryani", "indian"}, func(f *domain.CatalogFilter) {
			f.Cuisines = []string{"North Indian", "South Indian", "Hyderabadi"}
		}},
		{[]string{"chinese"}, func(f *domain.CatalogFilter) { f.Cuisines = []string{"Chinese", "Asian"} }},
		{[]string{"burger"}, func(f *domain.CatalogFilter) { f.Cuisines = []string{"American", "Fast Food"} }},
	},
	// occasion tags
	{
		{[]string{"romantic", "date"}, func(f *domain.CatalogFilter) { f.Tags = []string{"romantic"} }},
		{[]string{"comfort"}, func(f *domain.CatalogFilter) { f.Tags = []string{"comfort-food"} }},
	},
	// taste
	{
		{[]string{"spicy", "hot"}, func(f *domain.CatalogFilter) { f.TasteTags = []string{"spicy"} }},
		{[]string{"sweet"}, func(f *domain.CatalogFilter) { f.TasteTags = []string{"sweet"} }},
		{[]string{"tangy", "sour"}, func(f *domain.CatalogFilter) { f.TasteTags = []string{"tangy"} }},
		{[]string{"creamy", "rich"}, func(f *domain.CatalogFilter) { f.TasteTags = []string{"creamy", "rich"} }},
		{[]string{"crispy", "crunchy"}, func(f *domain.CatalogFilter) { f.TasteTags = []string{"crispy"} }},
		{[]string{"smoky", "grilled"}, func(f *domain.CatalogFilter) { f.TasteTags = []string{"smoky"} }},
	},
	// features
	{
		{[]string{"outdoor", "terrace", "garden"}, func(f *domain.CatalogFilter) { f.FeatureTags = []string{"outdoor-seating"} }},
		{[]string{"wifi", "internet"}, func(f *domain.CatalogFilter) { f.FeatureTags = []string{"wifi"} }},
		{[]string{"parking"}, func(f *domain.CatalogFilter) { f.FeatureTags = []string{"parking"} }},
		{[]string{"live music", "music"}, func(f *domain.CatalogFilter) { f.FeatureTags = []string{"live-music"} }},
		{[]string{"buffet", "unlimited"}, func(f *domain.CatalogFilter) { f.FeatureTags = []string{"buffet"} }},
		{[]string{"bar", "drinks", "alcohol"}, func(f *domain.CatalogFilter) { f.FeatureTags = []string{"bar"} }},
		{[]string{"pet", "dog"}, func(f *domain.CatalogFilter) { f.FeatureTags = []string{"pet-friendly"} }},
	},
	// dietary
	{
		{[]string{"vegetarian", "veg only", "pure veg"}, func(f *domain.CatalogFilter) { f.DietaryTags = []string{"vegetarian"} }},
		{[]string{"vegan"}, func(f *domain.CatalogFilter) { f.DietaryTags = []string{"vegan"} }},
		{[]string{"non-veg", "meat", "chicken", "fish"}, func(f *domain.CatalogFilter) { f.DietaryTags = []string{"non-veg"} }},
		{[]string{"healthy", "fitness", "diet"}, func(f *domain.CatalogFilter) { f.DietaryTags = []string{"healthy"} }},
		{[]string{"gluten-free", "gluten free"}, func(f *domain.CatalogFilter) { f.DietaryTags = []string{"gluten-free"} }},
		{[]string{"jain"}, func(f *domain.CatalogFilter) { f.DietaryTags = []string{"jain"} }},
	},
	// weather cravings
	{
		{[]string{"rainy", "rain"}, func(f *domain.CatalogFilter) {
			f.WeatherTags = []string{"hot-soup", "chai", "pakoras", "hot-beverages", "comfort-food"}
		}},
		{[]string{"hot weather", "summer", "sunny"}, func(f *domain.CatalogFilter) {
			f.WeatherTags = []string{"cold-desserts", "ice-cream", "juices", "refreshing", "chilled"}
		}},
		{[]string{"cold weather", "winter", "chilly"}, func(f *domain.CatalogFilter) {
			f.WeatherTags = []string{"hot-meals", "soups", "warm-food", "hot-beverages"}
		}},
		{[]string{"soup"}, func(f *domain.CatalogFilter) { f.WeatherTags = []string{"hot-soup", "soups"} }},
		{[]string{"ice cream", "ice-cream"}, func(f *domain.CatalogFilter) { f.WeatherTags = []string{"ice-cream", "cold-desserts"} }},
		{[]string{"chai", "tea"}, func(f *domain.CatalogFilter) { f.WeatherTags = []string{"chai", "hot-beverages"} }},
		{[]string{"pakora", "pakoras", "fritters"}, func(f *domain.CatalogFilter) { f.WeatherTags = []string{"pakoras", "comfort-food"} }},
	},
}

const ruleResultLimit = 5

// BuildRuleFilter evaluates the rule registry against the lower-cased query.
// The returned bool reports whether any category matched.
func BuildRuleFilter(query string) (domain.CatalogFilter, bool) {
	lower := strings.ToLower(query)
	var f domain.CatalogFilter
	matched := false
	for _, rules := range ruleCategories {
		for _, r := range rules {
			if containsAny(lower, r.keywords) {
				r.apply(&f)
				matched = true
				break
			}
		}
	}
	f.Limit = ruleResultLimit
	return f, matched
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// RuleBasedFilter queries the catalog with the merged filter. A nil slice
// with nil error means no rule matched; a matched filter that finds zero
// rows also returns an empty slice, and the caller falls through to
// similarity search in both cases.
func RuleBasedFilter(ctx context.Context, repo domain.RestaurantRepository, query string) ([]domain.Restaurant, error) {
	f, matched := BuildRuleFilter(query)
	if !matched {
		return nil, nil
	}
	return repo.FindAll(ctx, f)
}
