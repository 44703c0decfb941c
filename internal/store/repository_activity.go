// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/models"
)

type activityRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewActivityRepository constructs an [ActivityRepository] over the
// "activity" table.
func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity repository")
	return &activityRepository{
		db:     db,
		logger: logger,
	}
}

// Add inserts all items in one transaction.
func (r *activityRepository) Add(ctx context.Context, items ...models.ActivityItem) error {
	log := logger.FromContext(ctx)

	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.Add").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, item := range items {
		_, err = tx.ExecContext(ctx, addActivity, item.ID, item.UserID, item.Type, item.Title, item.Description, item.Timestamp)
		if err != nil {
			log.Err(err).Str("func", "*activityRepository.Add").Msg("error inserting activity")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*activityRepository.Add").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *activityRepository) ListRecent(ctx context.Context, userID string, limit int) ([]models.ActivityItem, error) {
	log := logger.FromContext(ctx)

	var items []models.ActivityItem
	err := r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, listRecentActivity, userID, limit)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		items = make([]models.ActivityItem, 0, limit)
		for rows.Next() {
			var item models.ActivityItem
			if err = rows.Scan(&item.ID, &item.UserID, &item.Type, &item.Title, &item.Description, &item.Timestamp); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			items = append(items, item)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.ListRecent").Msg("error listing activity")
		return nil, err
	}

	return items, nil
}
