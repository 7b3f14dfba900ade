package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"bitespot/internal/adapters/observability"
	"bitespot/internal/domain"
)

// Narrator produces the prose recommendation. The external generator can
// never fail a request outright: any error (timeout included) switches to
// the deterministic template built from the same ranked candidates.
type Narrator struct {
	gen     domain.TextGenerator
	timeout time.Duration
}

func NewNarrator(gen domain.TextGenerator, timeout time.Duration) *Narrator {
	if timeout <= 0 {
		timeout = 6 * time.Second
	}
	return &Narrator{gen: gen, timeout: timeout}
}

type promptRestaurant struct {
	Name      string  `json:"name"`
	Cuisine   string  `json:"cuisine"`
	Price     string  `json:"price"`
	Specialty string  `json:"specialty"`
	Ambiance  string  `json:"ambiance"`
	Rating    float64 `json:"rating"`
}

func recommendationPrompt(query string, candidates []domain.RankedCandidate) string {
	data := make([]promptRestaurant, 0, len(candidates))
	for _, c := range candidates {
		data = append(data, promptRestaurant{
			Name:      c.Name,
			Cuisine:   strings.Join(c.Cuisine, ", "),
			Price:     string(c.PriceRange),
			Specialty: strings.Join(c.SpecialtyDishes, ", "),
			Ambiance:  c.Ambiance,
			Rating:    c.Rating,
		})
	}
	blob, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("marshal prompt restaurants failed")
	}
	return fmt.Sprintf(`You are a friendly food recommendation assistant.
User Query: %q
Available Restaurants:
%s
Recommend the TOP 3 restaurants that match the user's needs. For each, explain why it's perfect, mention price and a must-try dish.
Format:
**[Restaurant Name]**
Why it's perfect: [explanation]
Price: [price] | Must-try: [dish]
Rating: [rating]/5
Be conversational and enthusiastic!`, query, blob)
}

func surprisePrompt(r domain.Restaurant) string {
	return fmt.Sprintf(`Generate an exciting 2-3 sentence pitch for this restaurant that makes someone want to visit NOW:
Restaurant: %s
Cuisine: %s
Specialty: %s
Be playful and use craving-inducing food words!`,
		r.Name, strings.Join(r.Cuisine, ", "), strings.Join(r.SpecialtyDishes, ", "))
}

func (n *Narrator) generate(ctx context.Context, prompt string) (string, error) {
	if n.gen == nil {
		return "", fmt.Errorf("no text generator configured")
	}
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()
	return n.gen.GenerateText(ctx, prompt)
}

// Recommend returns the narrative text and whether the fallback template was
// used. exclusions, when present, are folded into the prompt query.
func (n *Narrator) Recommend(ctx context.Context, query string, exclusions []string, candidates []domain.RankedCandidate, mealTime domain.MealTime, weather *domain.WeatherSnapshot, now time.Time) (string, bool) {
	promptQuery := query
	if len(exclusions) > 0 {
		if promptQuery == "" {
			promptQuery = "Restaurants safe for people avoiding " + strings.Join(exclusions, ", ")
		} else {
			promptQuery = fmt.Sprintf("%s (avoiding %s)", query, strings.Join(exclusions, ", "))
		}
	}

	text, err := n.generate(ctx, recommendationPrompt(promptQuery, candidates))
	if err == nil {
		observability.ObserveNarrative("ai")
		return text, false
	}
	log.Warn().Err(err).Msg("narrative generator failed, using fallback")
	observability.ObserveNarrative("fallback")
	if len(exclusions) > 0 {
		return FallbackExclusionNarrative(exclusions, candidates, now), true
	}
	return FallbackNarrative(query, candidates, mealTime, weather, now), true
}

// SurprisePitch returns a short pitch for one restaurant, falling back to a
// templated line on generator failure.
func (n *Narrator) SurprisePitch(ctx context.Context, r domain.Restaurant) (string, bool) {
	text, err := n.generate(ctx, surprisePrompt(r))
	if err == nil {
		observability.ObserveNarrative("ai")
		return text, false
	}
	log.Warn().Err(err).Msg("surprise generator failed, using fallback")
	observability.ObserveNarrative("fallback")
	return FallbackSurprisePitch(r), true
}
