package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/weather"
)

// Config holds runtime configuration for the forecaster CLI.
type Config struct {
	Environment     string        `envconfig:"APP_ENV" default:"development"`
	WeatherBaseURL  string        `envconfig:"WEATHER_BASE_URL"`
	WeatherTimeout  time.Duration `envconfig:"WEATHER_TIMEOUT" default:"30s"`
	RedisURL        string        `envconfig:"REDIS_URL"`
	WeatherCacheTTL time.Duration `envconfig:"WEATHER_CACHE_TTL" default:"1h"`
	PredictionsDir  string        `envconfig:"PREDICTIONS_DIR" default:"predictions"`
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("process env: %w", err)
	}

	cfg.WeatherBaseURL = strings.TrimSpace(cfg.WeatherBaseURL)
	if cfg.WeatherBaseURL == "" {
		cfg.WeatherBaseURL = weather.DefaultBaseURL
	}

	if cfg.WeatherTimeout <= 0 {
		return cfg, errors.New("WEATHER_TIMEOUT must be positive")
	}

	cfg.PredictionsDir = strings.TrimSpace(cfg.PredictionsDir)
	if cfg.PredictionsDir == "" {
		return cfg, errors.New("PREDICTIONS_DIR must not be blank")
	}

	return cfg, nil
}
