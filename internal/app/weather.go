package app

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"bitespot/internal/domain"
)

// WeatherService hands the pipeline a snapshot per request. With no provider
// configured it fabricates a mock; on provider failure it degrades to a
// canned pleasant snapshot. Downstream stages therefore only see nil weather
// when a caller deliberately passes none.
type WeatherService struct {
	provider domain.WeatherProvider
	cache    domain.Cache
	city     string
	ttl      time.Duration
}

func NewWeatherService(provider domain.WeatherProvider, cache domain.Cache, city string, ttl time.Duration) *WeatherService {
	if city == "" {
		city = "Coimbatore"
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &WeatherService{provider: provider, cache: cache, city: city, ttl: ttl}
}

var mockConditions = []struct {
	temp        float64
	condition   string
	description string
}{
	{35, "clear", "Hot sunny day"},
	{28, "rain", "Light rain"},
	{12, "clear", "Cold and clear"},
	{22, "clear", "Pleasant weather"},
}

func (s *WeatherService) mock() domain.WeatherSnapshot {
	m := mockConditions[rand.Intn(len(mockConditions))]
	return domain.WeatherSnapshot{
		Temperature: m.temp,
		Condition:   m.condition,
		Description: m.description,
		Category:    domain.CategorizeWeather(m.temp, m.condition),
		City:        s.city,
		IsMockData:  true,
	}
}

// Current returns the snapshot for the configured city. Live lookups are
// cached briefly; mocks are rolled fresh each request.
func (s *WeatherService) Current(ctx context.Context) domain.WeatherSnapshot {
	if s.provider == nil {
		return s.mock()
	}

	key := "weather:" + s.city
	var snap domain.WeatherSnapshot
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &snap); ok {
			return snap
		}
	}

	snap, err := s.provider.CurrentWeather(ctx, s.city)
	if err != nil {
		log.Warn().Err(err).Str("city", s.city).Msg("weather lookup failed, using fallback data")
		return domain.WeatherSnapshot{
			Temperature: 25,
			Condition:   "clear",
			Description: "Pleasant weather",
			Category:    domain.CategorizeWeather(25, "clear"),
			City:        s.city,
			IsMockData:  true,
		}
	}
	snap.Category = domain.CategorizeWeather(snap.Temperature, snap.Condition)
	snap.City = s.city
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, snap, int(s.ttl.Seconds()))
	}
	return snap
}
