// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var documentColumns = []string{"id", "user_id", "title", "file_path", "file_size", "mime_type", "ai_analysis", "created_at", "updated_at"}

func newTestDocumentRepo(t *testing.T) (*documentRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &documentRepository{db: db, logger: db.logger}, mock
}

func TestDocumentCreate(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)
	now := time.Now()

	doc := models.Document{ID: "d1", UserID: "u1", Title: "Policy", FilePath: "u1/d1.txt", FileSize: 5, MimeType: models.MimeTypeText}

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs("d1", "u1", "Policy", "u1/d1.txt", int64(5), models.MimeTypeText, nil).
		WillReturnRows(sqlmock.NewRows(documentColumns).
			AddRow("d1", "u1", "Policy", "u1/d1.txt", 5, models.MimeTypeText, nil, now, now))

	created, err := repo.Create(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, "u1/d1.txt", created.FilePath)
	assert.Nil(t, created.AIAnalysis)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentList(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)
	now := time.Now()

	mock.ExpectQuery("FROM documents").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(documentColumns).
			AddRow("d2", "u1", "Newer", "u1/d2.txt", 3, models.MimeTypeText, []byte(`{"summary":"s"}`), now, now).
			AddRow("d1", "u1", "Older", "u1/d1.txt", 3, models.MimeTypeText, nil, now.Add(-time.Hour), now))

	docs, err := repo.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.JSONEq(t, `{"summary":"s"}`, string(docs[0].AIAnalysis))
}

func TestDocumentGet_NotFound(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectQuery("FROM documents").
		WithArgs("d1", "u2").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "u2", "d1")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDocumentGet_DBError(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectQuery("FROM documents").
		WillReturnError(errors.New("boom"))

	_, err := repo.Get(context.Background(), "u1", "d1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestDocumentDelete(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectExec("DELETE FROM documents").
		WithArgs("d1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM documents").
		WithArgs("d1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "u1", "d1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "u1", "d1"), ErrDocumentNotFound)
}
