// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache holds the dashboard stats cache used for cache-aside reads.
// Redis is used when an address is configured, an in-process map otherwise.
package cache

import (
	"context"
	"errors"

	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/models"
)

//go:generate mockgen -source=cache.go -destination=../mock/cache_mock.go -package=mock

// ErrCacheMiss is returned by Get when no fresh entry exists.
var ErrCacheMiss = errors.New("cache miss")

// StatsCache caches dashboard counters per user.
type StatsCache interface {
	Get(ctx context.Context, userID string) (models.DashboardStats, error)
	Set(ctx context.Context, userID string, stats models.DashboardStats) error
	Invalidate(ctx context.Context, userIDs ...string) error
}

// NewStatsCache picks the backend from cfg.
func NewStatsCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (StatsCache, error) {
	if cfg.RedisAddress == "" {
		log.Debug().Msg("using in-memory stats cache")
		return NewMemoryStatsCache(cfg.StatsTTL), nil
	}

	return NewRedisStatsCache(ctx, cfg, log)
}

func statsKey(userID string) string {
	return "parse-guard:stats:" + userID
}
