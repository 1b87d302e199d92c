package config

import (
	"os"
	"testing"
	"time"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/weather"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "PORT", "WEATHER_BASE_URL", "WEATHER_TIMEOUT", "WEATHER_CACHE_TTL", "API_DEFAULT_DAYS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.ListenAddr() != ":8080" {
		t.Errorf("unexpected port %d", cfg.Port)
	}
	if cfg.WeatherBaseURL != weather.DefaultBaseURL {
		t.Errorf("unexpected weather url %q", cfg.WeatherBaseURL)
	}
	if cfg.WeatherCacheTTL != time.Hour || cfg.DefaultDays != 14 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverridesAndErrors(t *testing.T) {
	unsetenv(t, "WEATHER_BASE_URL", "WEATHER_CACHE_TTL")
	t.Setenv("PORT", "9090")
	t.Setenv("WEATHER_TIMEOUT", "5s")
	t.Setenv("API_DEFAULT_DAYS", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 || cfg.WeatherTimeout != 5*time.Second || cfg.DefaultDays != 7 {
		t.Errorf("overrides not applied: %+v", cfg)
	}

	tests := []struct {
		key, value string
	}{
		{"PORT", "not-a-port"},
		{"PORT", "-1"},
		{"API_DEFAULT_DAYS", "30"},
		{"WEATHER_TIMEOUT", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected an error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
