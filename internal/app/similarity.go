package app

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/semaphore"

	"bitespot/internal/domain"
)

const (
	similarityTopK = 5
	// weatherBoost favors restaurants whose weather tags fit the current
	// category without letting them swamp textual relevance.
	weatherBoost = 1.15
)

// SimilarityRanker is the fallback path when no rule matches: lightweight
// keyword embeddings plus cosine scoring over the whole catalog. Scoring is
// pure per restaurant, so it fans out under a bounded semaphore.
type SimilarityRanker struct {
	repo    domain.RestaurantRepository
	vec     *Vectorizer
	workers int64
}

func NewSimilarityRanker(repo domain.RestaurantRepository, vec *Vectorizer, workers int) *SimilarityRanker {
	if workers <= 0 {
		workers = 4
	}
	return &SimilarityRanker{repo: repo, vec: vec, workers: int64(workers)}
}

type scored struct {
	restaurant domain.Restaurant
	score      float64
}

// Search returns up to similarityTopK restaurants sorted by descending
// (possibly weather-boosted) cosine similarity to the query.
func (s *SimilarityRanker) Search(ctx context.Context, query string, weather *domain.WeatherSnapshot) ([]domain.Restaurant, error) {
	all, err := s.repo.FindAll(ctx, domain.CatalogFilter{})
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}

	queryVec := s.vec.Embed(query)

	var suggested []string
	if weather != nil {
		suggested = domain.SuggestionsFor(weather.Category).Tags
	}

	results := make([]scored, len(all))
	sem := semaphore.NewWeighted(s.workers)
	var wg sync.WaitGroup
	for i, r := range all {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(i int, r domain.Restaurant) {
			defer wg.Done()
			defer sem.Release(1)
			sim := CosineSimilarity(queryVec, s.vec.Embed(r.SearchText()))
			if len(suggested) > 0 && r.HasWeatherTag(suggested) {
				sim *= weatherBoost
			}
			results[i] = scored{restaurant: r, score: sim}
		}(i, r)
	}
	wg.Wait()

	sort.SliceStable(results, func(a, b int) bool { return results[a].score > results[b].score })

	n := similarityTopK
	if len(results) < n {
		n = len(results)
	}
	top := make([]domain.Restaurant, 0, n)
	for _, sc := range results[:n] {
		top = append(top, sc.restaurant)
	}
	return top, nil
}
