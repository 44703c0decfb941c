// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/logger"
)

// Storages groups the server's persistence layer.
type Storages struct {
	DB *DB

	UserRepository       UserRepository
	ComplianceRepository ComplianceRepository
	DocumentRepository   DocumentRepository
	ActivityRepository   ActivityRepository
	DashboardRepository  DashboardRepository
	ContentStorage       ContentStorage
}

// NewStorages connects to PostgreSQL, applies migrations and picks the
// content storage: object storage when an endpoint is configured, the local
// directory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	var content ContentStorage
	if cfg.Objects.Endpoint != "" {
		content, err = NewMinioContentStorage(ctx, cfg.Objects, log)
	} else {
		content, err = NewFileContentStorage(cfg.Files.DocumentsDir, log)
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating content storage: %w", err)
	}

	return &Storages{
		DB:                   db,
		UserRepository:       NewUserRepository(db, log),
		ComplianceRepository: NewComplianceRepository(db, log),
		DocumentRepository:   NewDocumentRepository(db, log),
		ActivityRepository:   NewActivityRepository(db, log),
		DashboardRepository:  NewDashboardRepository(db, log),
		ContentStorage:       content,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}

// NewClientSessionRepository opens the local SQLite database, migrates it
// and returns the session store with a closer.
func NewClientSessionRepository(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (SessionRepository, func() error, error) {
	db, err := NewConnectSQLite(ctx, cfg.SessionDSN, log)
	if err != nil {
		return nil, nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return NewSessionRepository(db, log), db.Close, nil
}
