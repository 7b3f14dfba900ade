package app

import (
	"sort"

	"bitespot/internal/domain"
)

// Annotate builds request-scoped candidates: meal-time membership and
// weather-tag intersection flags, computed once per restaurant.
func Annotate(restaurants []domain.Restaurant, mealTime domain.MealTime, weather *domain.WeatherSnapshot) []domain.RankedCandidate {
	var suggested []string
	if weather != nil {
		suggested = domain.SuggestionsFor(weather.Category).Tags
	}
	out := make([]domain.RankedCandidate, 0, len(restaurants))
	for _, r := range restaurants {
		c := domain.RankedCandidate{Restaurant: r}
		c.MatchesCurrentTime = r.ServesAt(mealTime)
		if weather != nil && len(r.WeatherTags) > 0 {
			c.MatchesWeather = r.HasWeatherTag(suggested)
		}
		out = append(out, c)
	}
	return out
}

func compositeScore(c domain.RankedCandidate) int {
	score := 0
	if c.MatchesCurrentTime {
		score += 2
	}
	if c.MatchesWeather {
		score++
	}
	return score
}

// Rerank sorts candidates in place: composite context score descending,
// rating descending on ties, original order otherwise.
func Rerank(candidates []domain.RankedCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := compositeScore(candidates[i]), compositeScore(candidates[j])
		if a != b {
			return a > b
		}
		return candidates[i].Rating > candidates[j].Rating
	})
}
