package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/cache"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/logx"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/weather"
	"github.com/02loveslollipop/harvest-price-forecaster/services/api/config"
	"github.com/02loveslollipop/harvest-price-forecaster/services/api/db"
	httpserver "github.com/02loveslollipop/harvest-price-forecaster/services/api/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("config error")
	}
	logx.Init(logx.ParseEnvironment(cfg.Environment))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var source weather.Source = weather.NewClient(cfg.WeatherBaseURL, cfg.WeatherTimeout)
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logx.Fatal().Err(err).Msg("redis connection error")
		}
		defer redisClient.Close()
		source = weather.NewCachedSource(source, redisClient, cfg.WeatherCacheTTL)
		logx.Info().Dur("ttl", cfg.WeatherCacheTTL).Msg("weather cache enabled")
	}

	// A typed nil *db.Store would make the history routes think an archive exists.
	var runs httpserver.RunStore
	if cfg.DatabaseURL != "" {
		store, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logx.Fatal().Err(err).Msg("db connection error")
		}
		defer store.Close()

		if err := store.EnsureSchema(ctx); err != nil {
			logx.Fatal().Err(err).Msg("db schema error")
		}
		runs = store
		logx.Info().Msg("prediction archive enabled")
	}

	srv, err := httpserver.New(cfg, source, runs)
	if err != nil {
		logx.Fatal().Err(err).Msg("server setup error")
	}
	logx.Info().Str("addr", cfg.ListenAddr()).Msg("REST API listening")

	if err := srv.Run(ctx); err != nil {
		logx.Fatal().Err(err).Msg("server error")
	}
}
