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

type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] over the
// "documents" table.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *documentRepository) Create(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	var analysis any
	if len(doc.AIAnalysis) > 0 {
		analysis = []byte(doc.AIAnalysis)
	}

	created, err := scanDocument(r.db.QueryRowContext(ctx, createDocument,
		doc.ID, doc.UserID, doc.Title, doc.FilePath, doc.FileSize, doc.MimeType, analysis))
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Create").Msg("error inserting document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *documentRepository) List(ctx context.Context, userID string) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	var docs []models.Document
	err := r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, listDocuments, userID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		docs = make([]models.Document, 0)
		for rows.Next() {
			doc, err := scanDocument(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			docs = append(docs, doc)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.List").Msg("error listing documents")
		return nil, err
	}

	return docs, nil
}

func (r *documentRepository) Get(ctx context.Context, userID, id string) (models.Document, error) {
	log := logger.FromContext(ctx)

	var doc models.Document
	err := r.db.withRetry(ctx, func() error {
		var err error
		doc, err = scanDocument(r.db.QueryRowContext(ctx, getDocument, id, userID))
		return err
	})

	switch {
	case err == nil:
		return doc, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Document{}, ErrDocumentNotFound
	default:
		log.Err(err).Str("func", "*documentRepository.Get").Msg("error getting document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// Delete removes the metadata row. It is used to undo a document whose
// content could not be stored.
func (r *documentRepository) Delete(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteDocument, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Delete").Msg("error deleting document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

func scanDocument(row rowScanner) (models.Document, error) {
	var (
		doc      models.Document
		analysis []byte
	)

	err := row.Scan(&doc.ID, &doc.UserID, &doc.Title, &doc.FilePath, &doc.FileSize, &doc.MimeType,
		&analysis, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return models.Document{}, err
	}

	if len(analysis) > 0 {
		doc.AIAnalysis = json.RawMessage(analysis)
	}

	return doc, nil
}
