// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/models"
)

type dashboardRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDashboardRepository constructs a [DashboardRepository].
func NewDashboardRepository(db *DB, logger *logger.Logger) DashboardRepository {
	logger.Debug().Msg("creating dashboard repository")
	return &dashboardRepository{
		db:     db,
		logger: logger,
	}
}

// Stats counts the user's items in a single round trip.
func (r *dashboardRepository) Stats(ctx context.Context, userID string) (models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	var stats models.DashboardStats
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, dashboardStats, userID).
			Scan(&stats.TotalCompliance, &stats.TotalDocuments, &stats.PendingItems, &stats.HighRiskItems)
	})
	if err != nil {
		log.Err(err).Str("func", "*dashboardRepository.Stats").Msg("error counting stats")
		return models.DashboardStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stats, nil
}
