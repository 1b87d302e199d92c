package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/cache"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/logx"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/weather"
	"github.com/02loveslollipop/harvest-price-forecaster/services/forecaster/internal/config"
)

func main() {
	if err := run(); err != nil {
		logx.Fatal().Err(err).Msg("forecaster failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logx.Init(logx.ParseEnvironment(cfg.Environment))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var source weather.Source = weather.NewClient(cfg.WeatherBaseURL, cfg.WeatherTimeout)
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			// The cache is an optimisation; fall back to direct requests.
			logx.Warn().Err(err).Msg("redis unavailable, weather cache disabled")
		} else {
			defer redisClient.Close()
			source = weather.NewCachedSource(source, redisClient, cfg.WeatherCacheTTL)
		}
	}

	a := &app{
		source:         source,
		predictionsDir: cfg.PredictionsDir,
		out:            os.Stdout,
	}
	return a.run(ctx, os.Args[1:])
}
