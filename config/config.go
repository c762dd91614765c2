package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultWeddingDate is used when WEDDING_DATE is unset or unparsable.
const DefaultWeddingDate = "2026-05-02"

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBHost string `env:"DB_HOST" envDefault:"localhost"`
	DBUser string `env:"DB_USER" envDefault:"postgres"`
	DBPass string `env:"DB_PASS" envDefault:"postgres"`
	DBName string `env:"DB_NAME" envDefault:"wedding"`
	DBPort string `env:"DB_PORT" envDefault:"5432"`

	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin"`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"your-secret-key"`

	// WeddingDate is the event date in 2006-01-02 form. Kept as a string so a
	// bad value degrades to the default at send time instead of failing boot.
	WeddingDate string `env:"WEDDING_DATE" envDefault:"2026-05-02"`

	ResendAPIKey    string `env:"RESEND_API_KEY"`
	ResendFromEmail string `env:"RESEND_FROM_EMAIL"`
}

// C holds the parsed process configuration.
var C Config

// Load reads an optional .env file and parses the environment into C.
func Load() error {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using system environment variables")
	}
	return env.Parse(&C)
}
