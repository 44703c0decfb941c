// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/go-redis/redis/v8"
)

// RedisStatsCache stores stats as JSON strings with a TTL.
type RedisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisStatsCache connects to Redis and pings it.
func NewRedisStatsCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (*RedisStatsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisStatsCache").Msg("error connecting redis")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisStatsCache").Msg("connected to redis successfully")

	return newRedisStatsCache(client, cfg.StatsTTL, log), nil
}

func newRedisStatsCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *RedisStatsCache {
	return &RedisStatsCache{client: client, ttl: ttl, logger: log}
}

func (c *RedisStatsCache) Get(ctx context.Context, userID string) (models.DashboardStats, error) {
	raw, err := c.client.Get(ctx, statsKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.DashboardStats{}, ErrCacheMiss
	}
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("error reading stats cache: %w", err)
	}

	var stats models.DashboardStats
	if err = json.Unmarshal(raw, &stats); err != nil {
		// a corrupt entry behaves like a miss
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*RedisStatsCache.Get").Msg("dropping undecodable cache entry")
		return models.DashboardStats{}, ErrCacheMiss
	}

	return stats, nil
}

func (c *RedisStatsCache) Set(ctx context.Context, userID string, stats models.DashboardStats) error {
	if c.ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("error encoding stats: %w", err)
	}

	if err = c.client.Set(ctx, statsKey(userID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("error writing stats cache: %w", err)
	}
	return nil
}

func (c *RedisStatsCache) Invalidate(ctx context.Context, userIDs ...string) error {
	if len(userIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, statsKey(id))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("error invalidating stats cache: %w", err)
	}
	return nil
}

// Close closes the Redis connection pool.
func (c *RedisStatsCache) Close() error {
	return c.client.Close()
}
