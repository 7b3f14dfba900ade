package app

import (
	"fmt"
	"math"
	"strings"
	"time"

	"bitespot/internal/domain"
)

const fallbackTopN = 3

// FallbackNarrative renders the deterministic recommendation text: greeting,
// optional weather blurb, then a paragraph per top candidate.
func FallbackNarrative(query string, candidates []domain.RankedCandidate, mealTime domain.MealTime, weather *domain.WeatherSnapshot, now time.Time) string {
	var b strings.Builder
	b.WriteString(domain.Greeting(now))
	b.WriteString("\n\n")

	if weather != nil {
		sugg := domain.SuggestionsFor(weather.Category)
		fmt.Fprintf(&b, "%s Weather: %s (%d°C)\n", weather.Category.Emoji(), weather.Description, int(math.Round(weather.Temperature)))
		fmt.Fprintf(&b, "💡 %s\n\n", sugg.Description)
	}

	fmt.Fprintf(&b, "Based on your search for %q, here are my top recommendations:\n\n", query)

	for _, c := range topCandidates(candidates) {
		timing := ""
		if c.MatchesCurrentTime {
			timing = fmt.Sprintf(" ⏰ Perfect for %s!", mealTime)
		}
		weatherLine := ""
		if c.MatchesWeather && weather != nil {
			weatherLine = fmt.Sprintf(" %s Great for this weather!", weather.Category.Emoji())
		}
		fmt.Fprintf(&b, "**%s**%s%s\n", c.Name, timing, weatherLine)
		fmt.Fprintf(&b, "🎯 Why it's perfect: %s...\n", truncate(c.Description, 150))
		fmt.Fprintf(&b, "💰 Price: %s | 🍽️ Must-try: %s\n", c.PriceRange, firstDish(c.Restaurant))
		fmt.Fprintf(&b, "⭐ Rating: %.1f/5\n\n", c.Rating)
	}
	return b.String()
}

// FallbackExclusionNarrative is the templated text for allergy-filtered
// searches: it leads with the safe count and per-restaurant safety notes.
func FallbackExclusionNarrative(exclusions []string, candidates []domain.RankedCandidate, now time.Time) string {
	var b strings.Builder
	b.WriteString(domain.Greeting(now))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "✅ Great news! I found %d restaurants that avoid %s.\n\n", len(candidates), strings.Join(exclusions, ", "))
	b.WriteString("Here are your top allergy-safe options:\n\n")

	for _, c := range topCandidates(candidates) {
		fmt.Fprintf(&b, "**%s** ✓ %s\n", c.Name, c.SafeForMessage)
		fmt.Fprintf(&b, "%s...\n", truncate(c.Description, 120))
		if len(c.AllergenFriendly) > 0 {
			fmt.Fprintf(&b, "💚 %s\n", strings.Join(c.AllergenFriendly, ", "))
		}
		fmt.Fprintf(&b, "⭐ %.1f/5 | 💰 %s\n\n", c.Rating, c.PriceRange)
	}
	return b.String()
}

// FallbackSurprisePitch is the templated surprise line.
func FallbackSurprisePitch(r domain.Restaurant) string {
	return fmt.Sprintf("🎉 Surprise! Try %s! %s... Don't miss their %s!",
		r.Name, truncate(r.Description, 120), firstDish(r))
}

func topCandidates(candidates []domain.RankedCandidate) []domain.RankedCandidate {
	if len(candidates) > fallbackTopN {
		return candidates[:fallbackTopN]
	}
	return candidates
}

func firstDish(r domain.Restaurant) string {
	if len(r.SpecialtyDishes) > 0 {
		return r.SpecialtyDishes[0]
	}
	return "the house special"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
