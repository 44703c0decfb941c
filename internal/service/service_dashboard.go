// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/parse-guard/internal/cache"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/store"
	"github.com/MKhiriev/parse-guard/models"
)

type dashboardService struct {
	dashboard store.DashboardRepository
	activity  store.ActivityRepository
	cache     cache.StatsCache
	logger    *logger.Logger
}

func NewDashboardService(dashboard store.DashboardRepository, activity store.ActivityRepository, statsCache cache.StatsCache, logger *logger.Logger) DashboardService {
	return &dashboardService{
		dashboard: dashboard,
		activity:  activity,
		cache:     statsCache,
		logger:    logger,
	}
}

// Stats reads through the cache. A failing cache is bypassed.
func (s *dashboardService) Stats(ctx context.Context, userID string) (models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	stats, err := s.cache.Get(ctx, userID)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Err(err).Str("func", "*dashboardService.Stats").Msg("stats cache unavailable")
	}

	stats, err = s.dashboard.Stats(ctx, userID)
	if err != nil {
		return models.DashboardStats{}, err
	}

	if err = s.cache.Set(ctx, userID, stats); err != nil {
		log.Err(err).Str("func", "*dashboardService.Stats").Msg("error caching stats")
	}

	return stats, nil
}

// Activity returns the newest entries. limit is clamped to
// 1..models.MaxActivityLimit; zero or less means the default.
func (s *dashboardService) Activity(ctx context.Context, userID string, limit int) ([]models.ActivityItem, error) {
	return s.activity.ListRecent(ctx, userID, ClampActivityLimit(limit))
}

// ClampActivityLimit normalises a requested feed length.
func ClampActivityLimit(limit int) int {
	switch {
	case limit <= 0:
		return models.DefaultActivityLimit
	case limit > models.MaxActivityLimit:
		return models.MaxActivityLimit
	default:
		return limit
	}
}
