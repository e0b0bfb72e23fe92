package main

import (
	"os"
)

type Environment struct {
	Environment      string
	ServerAddress    string
	GoogleMapsAPIKey string
	DatabaseURL      string
	MigrationsPath   string
	RedisAddress     string
	RedisUsername    string
	RedisPassword    string
}

// LoadEnvironment reads env vars. Nothing is strictly required: subsystems
// whose configuration is missing are disabled rather than fatal, and the
// relevant endpoints answer 503.
func LoadEnvironment() Environment {
	env := Environment{
		Environment:      os.Getenv("APP_ENV"),
		ServerAddress:    os.Getenv("SERVER_ADDRESS"),
		GoogleMapsAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),

		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if env.ServerAddress == "" {
		env.ServerAddress = ":8080"
	}
	if env.MigrationsPath == "" {
		env.MigrationsPath = "./migrations"
	}

	return env
}
