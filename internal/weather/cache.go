package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/logx"
)

// Cache stores JSON-serialisable values with an expiry.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// CachedSource serves feature rows from a cache before asking the wrapped
// source. Cache failures are treated as misses.
type CachedSource struct {
	source Source
	cache  Cache
	ttl    time.Duration
	now    func() time.Time
}

// NewCachedSource wraps source with cache.
func NewCachedSource(source Source, cache Cache, ttl time.Duration) *CachedSource {
	return &CachedSource{source: source, cache: cache, ttl: ttl, now: time.Now}
}

// CacheKey builds the cache key for a request issued on day.
func CacheKey(latitude, longitude float64, days int, day time.Time) string {
	return fmt.Sprintf("weather:features:%.4f:%.4f:%d:%s", latitude, longitude, ClampDays(days), day.UTC().Format(time.DateOnly))
}

// Features implements Source.
func (s *CachedSource) Features(ctx context.Context, latitude, longitude float64, days int) ([]FeatureRow, error) {
	key := CacheKey(latitude, longitude, days, s.now())

	var rows []FeatureRow
	if err := s.cache.Get(ctx, key, &rows); err == nil && len(rows) > 0 {
		logx.Debug().Str("key", key).Msg("weather cache hit")
		return rows, nil
	} else if err != nil {
		logx.Debug().Err(err).Str("key", key).Msg("weather cache miss")
	}

	rows, err := s.source.Features(ctx, latitude, longitude, days)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, rows, s.ttl); err != nil {
		logx.Warn().Err(err).Str("key", key).Msg("failed to cache weather features")
	}
	return rows, nil
}
