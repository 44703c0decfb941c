// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/models"
	sq "github.com/Masterminds/squirrel"
)

type complianceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewComplianceRepository constructs a [ComplianceRepository] over the
// "compliance_items" table.
func NewComplianceRepository(db *DB, logger *logger.Logger) ComplianceRepository {
	logger.Debug().Msg("creating compliance repository")
	return &complianceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *complianceRepository) Create(ctx context.Context, item models.ComplianceItem) (models.ComplianceItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(complianceTable).
		Columns("id", "user_id", "title", "description", "status", "priority", "risk_level", "due_date").
		Values(item.ID, item.UserID, item.Title, item.Description, item.Status, item.Priority, nullRiskLevel(item.RiskLevel), nullTime(item.DueDate)).
		Suffix("RETURNING " + complianceCols).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*complianceRepository.Create").Msg("error building query")
		return models.ComplianceItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanComplianceItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*complianceRepository.Create").Msg("error inserting compliance item")
		return models.ComplianceItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// List returns the user's items newest first, narrowed by the non-empty
// fields of filter.
func (r *complianceRepository) List(ctx context.Context, userID string, filter models.ComplianceFilter) ([]models.ComplianceItem, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select(complianceCols).
		From(complianceTable).
		Where(sq.Eq{"user_id": userID})
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Priority != "" {
		builder = builder.Where(sq.Eq{"priority": filter.Priority})
	}

	query, args, err := builder.OrderBy("created_at DESC").ToSql()
	if err != nil {
		log.Err(err).Str("func", "*complianceRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var items []models.ComplianceItem
	err = r.db.withRetry(ctx, func() error {
		items, err = r.queryItems(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*complianceRepository.List").Msg("error listing compliance items")
		return nil, err
	}

	return items, nil
}

func (r *complianceRepository) Get(ctx context.Context, userID, id string) (models.ComplianceItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(complianceCols).
		From(complianceTable).
		Where("id = ? AND user_id = ?", id, userID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*complianceRepository.Get").Msg("error building query")
		return models.ComplianceItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.ComplianceItem
	err = r.db.withRetry(ctx, func() error {
		item, err = scanComplianceItem(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	return item, r.singleRowError(log, "*complianceRepository.Get", err)
}

// Update applies the non-nil fields of update, nulls the cleared optional
// columns and returns the stored item.
func (r *complianceRepository) Update(ctx context.Context, userID, id string, update models.UpdateComplianceDto) (models.ComplianceItem, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return models.ComplianceItem{}, ErrNothingToUpdate
	}

	builder := psql.Update(complianceTable)
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.Priority != nil {
		builder = builder.Set("priority", *update.Priority)
	}
	if update.RiskLevel != nil {
		builder = builder.Set("risk_level", nullRiskLevel(*update.RiskLevel))
	}
	if update.DueDate != nil {
		builder = builder.Set("due_date", *update.DueDate)
	}
	if update.ClearRiskLevel {
		builder = builder.Set("risk_level", nil)
	}
	if update.ClearDueDate {
		builder = builder.Set("due_date", nil)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("now()")).
		Where("id = ? AND user_id = ?", id, userID).
		Suffix("RETURNING " + complianceCols).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*complianceRepository.Update").Msg("error building query")
		return models.ComplianceItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanComplianceItem(r.db.QueryRowContext(ctx, query, args...))
	return item, r.singleRowError(log, "*complianceRepository.Update", err)
}

// Delete removes the item and returns it as it was before deletion.
func (r *complianceRepository) Delete(ctx context.Context, userID, id string) (models.ComplianceItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(complianceTable).
		Where("id = ? AND user_id = ?", id, userID).
		Suffix("RETURNING " + complianceCols).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*complianceRepository.Delete").Msg("error building query")
		return models.ComplianceItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanComplianceItem(r.db.QueryRowContext(ctx, query, args...))
	return item, r.singleRowError(log, "*complianceRepository.Delete", err)
}

// EscalateOverdue raises open overdue items that are not high priority yet,
// so each item is reported once.
func (r *complianceRepository) EscalateOverdue(ctx context.Context, now time.Time) ([]models.ComplianceItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update(complianceTable).
		Set("priority", models.PriorityHigh).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.NotEq{"status": models.StatusCompleted}).
		Where(sq.NotEq{"priority": models.PriorityHigh}).
		Where(sq.Lt{"due_date": now}).
		Suffix("RETURNING " + complianceCols).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*complianceRepository.EscalateOverdue").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, err := r.queryItems(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*complianceRepository.EscalateOverdue").Msg("error escalating overdue items")
		return nil, err
	}

	return items, nil
}

func (r *complianceRepository) queryItems(ctx context.Context, query string, args ...any) ([]models.ComplianceItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.ComplianceItem, 0)
	for rows.Next() {
		item, err := scanComplianceItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *complianceRepository) singleRowError(log *logger.Logger, funcName string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrComplianceItemNotFound
	default:
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanComplianceItem(row rowScanner) (models.ComplianceItem, error) {
	var (
		item      models.ComplianceItem
		riskLevel sql.NullString
		dueDate   sql.NullTime
	)

	err := row.Scan(&item.ID, &item.UserID, &item.Title, &item.Description, &item.Status, &item.Priority,
		&riskLevel, &dueDate, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return models.ComplianceItem{}, err
	}

	item.RiskLevel = models.RiskLevel(riskLevel.String)
	if dueDate.Valid {
		due := dueDate.Time
		item.DueDate = &due
	}

	return item, nil
}

func nullRiskLevel(level models.RiskLevel) sql.NullString {
	return sql.NullString{String: string(level), Valid: level != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
