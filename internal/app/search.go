package app

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"bitespot/internal/adapters/observability"
	"bitespot/internal/domain"
)

const surpriseMinRating = 4.3

// SearchService orchestrates one request through the pipeline:
// rule filter -> similarity fallback -> re-rank -> optional allergy filter
// -> narrative (AI or template).
type SearchService struct {
	repo     domain.RestaurantRepository
	weather  *WeatherService
	narrator *Narrator
	ranker   *SimilarityRanker
	now      func() time.Time
	pick     func(n int) int
}

func NewSearchService(repo domain.RestaurantRepository, weather *WeatherService, narrator *Narrator, ranker *SimilarityRanker) *SearchService {
	return &SearchService{
		repo:     repo,
		weather:  weather,
		narrator: narrator,
		ranker:   ranker,
		now:      time.Now,
		pick:     rand.Intn,
	}
}

// WithClock overrides the wall clock. Meal times and greetings derive from it.
func (s *SearchService) WithClock(now func() time.Time) *SearchService {
	s.now = now
	return s
}

type SearchRequest struct {
	Query              string   `json:"query"`
	ExcludeIngredients []string `json:"excludeIngredients,omitempty"`
}

// WeatherPayload is the response-shaped snapshot: rounded temperature plus
// the emoji and suggestion blurb clients render.
type WeatherPayload struct {
	Temperature int                    `json:"temperature"`
	Condition   string                 `json:"condition"`
	Description string                 `json:"description"`
	Category    domain.WeatherCategory `json:"category"`
	Emoji       string                 `json:"emoji"`
	Suggestions domain.FoodSuggestion  `json:"suggestions"`
	IsMockData  bool                   `json:"isMockData"`
}

type SearchResult struct {
	Query               string                   `json:"query"`
	CurrentMealTime     domain.MealTime          `json:"currentMealTime"`
	Weather             *WeatherPayload          `json:"weather"`
	Greeting            string                   `json:"greeting"`
	AIRecommendation    string                   `json:"aiRecommendation,omitempty"`
	Restaurants         []domain.RankedCandidate `json:"restaurants"`
	Count               int                      `json:"count"`
	UsingFallback       bool                     `json:"usingFallback"`
	Message             string                   `json:"message,omitempty"`
	ExcludedIngredients []string                 `json:"excludedIngredients,omitempty"`
	TotalFiltered       int                      `json:"totalFiltered,omitempty"`
}

func weatherPayload(w *domain.WeatherSnapshot) *WeatherPayload {
	if w == nil {
		return nil
	}
	return &WeatherPayload{
		Temperature: int(math.Round(w.Temperature)),
		Condition:   w.Condition,
		Description: w.Description,
		Category:    w.Category,
		Emoji:       w.Category.Emoji(),
		Suggestions: domain.SuggestionsFor(w.Category),
		IsMockData:  w.IsMockData,
	}
}

// Search runs the full pipeline. An empty query is only valid when the
// caller supplies ingredients to exclude (then the whole catalog is the
// candidate pool).
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	query := strings.TrimSpace(req.Query)
	exclusions := NormalizeExclusions(req.ExcludeIngredients)
	if query == "" && len(exclusions) == 0 {
		return SearchResult{}, domain.ErrEmptyQuery
	}

	now := s.now()
	mealTime := domain.CurrentMealTime(now)

	var weather *domain.WeatherSnapshot
	if s.weather != nil {
		w := s.weather.Current(ctx)
		weather = &w
	}

	restaurants, err := s.pool(ctx, query, weather)
	if err != nil {
		return SearchResult{}, err
	}

	result := SearchResult{
		Query:           query,
		CurrentMealTime: mealTime,
		Weather:         weatherPayload(weather),
		Greeting:        domain.Greeting(now),
	}
	if query == "" {
		result.Query = "All restaurants"
	}

	candidates := Annotate(restaurants, mealTime, weather)
	Rerank(candidates)

	if len(exclusions) > 0 {
		result.ExcludedIngredients = exclusions
		result.TotalFiltered = len(candidates)
		candidates = FilterAllergySafe(candidates, exclusions)
		Rerank(candidates)
		if len(candidates) == 0 {
			result.Restaurants = []domain.RankedCandidate{}
			result.Message = "No restaurants found that avoid " + strings.Join(exclusions, ", ") +
				". Try excluding fewer ingredients or contact restaurants directly for custom options."
			return result, nil
		}
	}

	if len(candidates) == 0 {
		result.Restaurants = []domain.RankedCandidate{}
		result.Message = "No restaurants found matching your query"
		return result, nil
	}

	text, usedFallback := s.narrator.Recommend(ctx, query, exclusions, candidates, mealTime, weather, now)
	result.AIRecommendation = text
	result.UsingFallback = usedFallback
	result.Restaurants = candidates
	result.Count = len(candidates)
	return result, nil
}

// pool selects the candidate restaurants: rules first, similarity fallback,
// or the whole catalog for exclusion-only requests.
func (s *SearchService) pool(ctx context.Context, query string, weather *domain.WeatherSnapshot) ([]domain.Restaurant, error) {
	if query == "" {
		observability.ObserveSearchPath("catalog")
		return s.repo.FindAll(ctx, domain.CatalogFilter{})
	}

	restaurants, err := RuleBasedFilter(ctx, s.repo, query)
	if err != nil {
		return nil, err
	}
	if len(restaurants) > 0 {
		observability.ObserveSearchPath("rules")
		return restaurants, nil
	}

	// No rule matched, or a matched filter found nothing. Both fall through.
	observability.ObserveSearchPath("similarity")
	return s.ranker.Search(ctx, query, weather)
}

type SurpriseResult struct {
	CurrentMealTime domain.MealTime   `json:"currentMealTime"`
	Restaurant      domain.Restaurant `json:"restaurant"`
	Pitch           string            `json:"pitch"`
	UsingFallback   bool              `json:"usingFallback"`
}

// Surprise picks one highly rated restaurant at random, preferring those
// open for the current meal time.
func (s *SearchService) Surprise(ctx context.Context) (SurpriseResult, error) {
	now := s.now()
	mealTime := domain.CurrentMealTime(now)
	minRating := surpriseMinRating

	pool, err := s.repo.FindAll(ctx, domain.CatalogFilter{
		MinRating: &minRating,
		MealTimes: []domain.MealTime{mealTime},
	})
	if err != nil {
		return SurpriseResult{}, err
	}
	if len(pool) == 0 {
		pool, err = s.repo.FindAll(ctx, domain.CatalogFilter{MinRating: &minRating})
		if err != nil {
			return SurpriseResult{}, err
		}
	}
	if len(pool) == 0 {
		return SurpriseResult{}, domain.ErrNotFound
	}

	chosen := pool[s.pick(len(pool))]
	log.Debug().Int64("id", chosen.ID).Str("mealTime", string(mealTime)).Msg("surprise pick")

	pitch, usedFallback := s.narrator.SurprisePitch(ctx, chosen)
	return SurpriseResult{
		CurrentMealTime: mealTime,
		Restaurant:      chosen,
		Pitch:           pitch,
		UsingFallback:   usedFallback,
	}, nil
}
