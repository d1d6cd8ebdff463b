package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hooplab/scoring-api/internal/logic"
	"github.com/hooplab/scoring-api/internal/models"
)

// RedisCache is the narrow slice of the Redis client the cache needs.
type RedisCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedSource wraps a GameLogSource with a Redis cache keyed by
// season. Cache failures are logged and fall through to the wrapped
// source; a broken cache must never fail a report.
type CachedSource struct {
	source logic.GameLogSource
	cache  RedisCache
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewCachedSource(source logic.GameLogSource, cache RedisCache, ttl time.Duration, logger *zap.Logger) *CachedSource {
	return &CachedSource{
		source: source,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Sugar(),
	}
}

func cacheKey(season int) string {
	return fmt.Sprintf("gamelogs:season:%d", season)
}

func (c *CachedSource) SeasonGameLogs(ctx context.Context, season int) ([]models.GameLogRow, error) {
	key := cacheKey(season)

	if data, err := c.cache.Get(ctx, key).Bytes(); err == nil {
		var rows []models.GameLogRow
		if err := json.Unmarshal(data, &rows); err == nil {
			c.logger.Debugw("Game log cache hit", "season", season, "rows", len(rows))
			return rows, nil
		}
		c.logger.Warnw("Discarding corrupt cache entry", "key", key)
	} else if err != redis.Nil {
		c.logger.Warnw("Game log cache read failed", "key", key, "error", err)
	}

	rows, err := c.source.SeasonGameLogs(ctx, season)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(rows); err == nil {
		if err := c.cache.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warnw("Game log cache write failed", "key", key, "error", err)
		}
	}

	return rows, nil
}
