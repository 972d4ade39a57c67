package config

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	DatabaseURL string        `env:"DATABASE_URL"`
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL, default=24h"`

	// Optional integrations: both are skipped when unset.
	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	ESURL        string   `env:"ES_URL"`
	ESUser       string   `env:"ES_USER"`
	ESPassword   string   `env:"ES_PASSWORD"`
}

// Load reads a .env file when present, then resolves the configuration from
// the environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env file not found: %v, using system environment", err)
	}

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
