package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"bitespot/internal/adapters/groq"
	server "bitespot/internal/adapters/http_server"
	"bitespot/internal/adapters/observability"
	"bitespot/internal/adapters/openweather"
	redisad "bitespot/internal/adapters/redis"
	"bitespot/internal/app"
	"bitespot/internal/domain"
	"bitespot/internal/shared"
	mysqlrepo "bitespot/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// optional collaborators; both have mandatory fallback paths
	var gen domain.TextGenerator
	if cfg.GroqKey != "" {
		cl, err := groq.New(cfg.GroqBase, cfg.GroqKey, cfg.GroqModel, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Groq client")
		}
		gen = cl
	}
	var weatherProvider domain.WeatherProvider
	if cfg.WeatherKey != "" {
		cl, err := openweather.New(cfg.WeatherBase, cfg.WeatherKey)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize OpenWeather client")
		}
		weatherProvider = cl
	}

	weather := app.NewWeatherService(weatherProvider, cache, cfg.WeatherCity, cfg.WeatherTTL)
	narrator := app.NewNarrator(gen, cfg.NarrativeTimeout)
	ranker := app.NewSimilarityRanker(repo, app.NewVectorizer(), cfg.RankWorkers)
	svc := app.NewSearchService(repo, weather, narrator, ranker)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{S: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
