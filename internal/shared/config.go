package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv           string
	HTTPAddr         string
	MetricsAddr      string
	MySQLDSN         string
	RedisAddr        string
	RedisDB          int
	RedisPass        string
	GroqBase         string
	GroqKey          string
	GroqModel        string
	WeatherKey       string
	WeatherBase      string
	WeatherCity      string
	WeatherTTL       time.Duration
	NarrativeTimeout time.Duration
	RankWorkers      int
	SeedWorkers      int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:           env("APP_ENV", "prod"),
		HTTPAddr:         env("HTTP_ADDR", ":8080"),
		MetricsAddr:      env("METRICS_ADDR", ":9100"),
		MySQLDSN:         env("MYSQL_DSN", "root:root@tcp(localhost:3306)/bitespot?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:        env("REDIS_ADDR", "localhost:6379"),
		RedisPass:        env("REDIS_PASSWORD", ""),
		RedisDB:          atoi("REDIS_DB", 0),
		GroqBase:         env("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqKey:          env("GROQ_API_KEY", ""),
		GroqModel:        env("GROQ_MODEL", "llama-3.3-70b-versatile"),
		WeatherKey:       env("OPENWEATHER_API_KEY", ""),
		WeatherBase:      env("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		WeatherCity:      env("WEATHER_CITY", "Coimbatore"),
		WeatherTTL:       time.Duration(atoi("WEATHER_TTL_SECONDS", 600)) * time.Second,
		NarrativeTimeout: time.Duration(atoi("NARRATIVE_TIMEOUT_SECONDS", 6)) * time.Second,
		RankWorkers:      atoi("RANK_WORKERS", 4),
		SeedWorkers:      atoi("SEED_WORKERS", 8),
	}
	if c.GroqKey == "" {
		log.Warn().Msg("GROQ_API_KEY is empty; narrative falls back to templates")
	}
	if c.WeatherKey == "" {
		log.Warn().Msg("OPENWEATHER_API_KEY is empty; using mock weather data")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
