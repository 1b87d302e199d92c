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

// Config holds environment-driven settings for the REST API.
type Config struct {
	Environment     string        `envconfig:"APP_ENV" default:"development"`
	Port            int           `envconfig:"PORT" default:"8080"`
	WeatherBaseURL  string        `envconfig:"WEATHER_BASE_URL"`
	WeatherTimeout  time.Duration `envconfig:"WEATHER_TIMEOUT" default:"30s"`
	RedisURL        string        `envconfig:"REDIS_URL"`
	WeatherCacheTTL time.Duration `envconfig:"WEATHER_CACHE_TTL" default:"1h"`
	DatabaseURL     string        `envconfig:"DATABASE_URL"`
	DefaultDays     int           `envconfig:"API_DEFAULT_DAYS" default:"14"`
	RequestTimeout  time.Duration `envconfig:"API_REQUEST_TIMEOUT" default:"20s"`
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("process env: %w", err)
	}

	if cfg.Port <= 0 {
		return cfg, fmt.Errorf("invalid PORT: %d", cfg.Port)
	}

	cfg.WeatherBaseURL = strings.TrimSpace(cfg.WeatherBaseURL)
	if cfg.WeatherBaseURL == "" {
		cfg.WeatherBaseURL = weather.DefaultBaseURL
	}

	if cfg.WeatherTimeout <= 0 {
		return cfg, errors.New("WEATHER_TIMEOUT must be positive")
	}

	if cfg.DefaultDays <= 0 || cfg.DefaultDays > weather.MaxForecastDays {
		return cfg, fmt.Errorf("invalid API_DEFAULT_DAYS: %d (1-%d)", cfg.DefaultDays, weather.MaxForecastDays)
	}

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
