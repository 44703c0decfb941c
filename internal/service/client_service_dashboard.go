// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/parse-guard/internal/adapter"
	"github.com/MKhiriev/parse-guard/internal/app"
	"github.com/MKhiriev/parse-guard/models"
	"golang.org/x/sync/errgroup"
)

type clientDashboardService struct {
	adapter adapter.ServerAdapter
}

func NewClientDashboardService(serverAdapter adapter.ServerAdapter) ClientDashboardService {
	return &clientDashboardService{adapter: serverAdapter}
}

func (s *clientDashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	stats, err := s.adapter.DashboardStats(ctx)
	if err != nil {
		return models.DashboardStats{}, clientError(app.MsgLoadStatsFailed, err)
	}
	return stats, nil
}

func (s *clientDashboardService) Activity(ctx context.Context, limit int) ([]models.ActivityItem, error) {
	if limit <= 0 {
		limit = models.DefaultActivityLimit
	}

	items, err := s.adapter.Activity(ctx, limit)
	if err != nil {
		return nil, clientError(app.MsgLoadActivityFailed, err)
	}
	return items, nil
}

func (s *clientDashboardService) Load(ctx context.Context) (models.Dashboard, error) {
	var dashboard models.Dashboard

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.Stats(gCtx)
		dashboard.Stats = stats
		return err
	})
	g.Go(func() error {
		items, err := s.Activity(gCtx, models.DefaultActivityLimit)
		dashboard.Activity = items
		return err
	})

	if err := g.Wait(); err != nil {
		return models.Dashboard{}, err
	}
	return dashboard, nil
}
