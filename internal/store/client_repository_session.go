// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/models"
)

// sessionRepository stores the client's single session row in SQLite.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] over the local
// session database.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// Save replaces the stored session.
func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	user, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("error encoding user: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, saveSession, session.Token, string(user), session.ExpiresAt.UTC(), session.UpdatedAt.UTC()); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Save").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Load returns the stored session or [ErrSessionNotFound].
func (r *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var (
		session models.Session
		user    string
	)
	err := r.db.QueryRowContext(ctx, loadSession).Scan(&session.Token, &user, &session.ExpiresAt, &session.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Load").Msg("error loading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(user), &session.User); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Load").Msg("error decoding stored user")
		return models.Session{}, fmt.Errorf("error decoding user: %w", err)
	}

	return session, nil
}

// Clear removes the stored session. Clearing an empty store is not an
// error.
func (r *sessionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearSession); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.Clear").Msg("error clearing session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
