package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sabeel-labs/catchaprayer/internal/db"
	"github.com/sabeel-labs/catchaprayer/internal/places"
	"github.com/sabeel-labs/catchaprayer/internal/prayerapi"
	"github.com/sabeel-labs/catchaprayer/internal/prayers"
	"github.com/sabeel-labs/catchaprayer/internal/redis"
	"github.com/sabeel-labs/catchaprayer/internal/scraper"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()
	env := LoadEnvironment()

	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// settings persistence (optional)
	dbReady := false
	if env.DatabaseURL != "" {
		if err := db.Init(env.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("db init")
		}
		if err := db.RunMigrations(env.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("db migrate")
		}
		dbReady = true
	} else {
		log.Warn().Msg("DATABASE_URL not set, settings will not persist")
	}

	// catalog cache (optional)
	if env.RedisAddress != "" {
		redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	} else {
		log.Warn().Msg("REDIS_ADDRESS not set, prayer catalogs will not be cached")
	}

	// mosque discovery (optional; endpoints answer 503 without it)
	var placesClient *places.Client
	if env.GoogleMapsAPIKey != "" {
		var err error
		placesClient, err = places.New(env.GoogleMapsAPIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("places client")
		}
	} else {
		log.Warn().Msg("GOOGLE_MAPS_API_KEY not set, mosque discovery disabled")
	}

	prayerSvc := prayers.NewService(scraper.New(), prayerapi.New(""))

	r := gin.Default()
	RegisterRoutes(r, placesClient, prayerSvc, dbReady)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
