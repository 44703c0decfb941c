// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &dashboardRepository{db: db, logger: db.logger}

	mock.ExpectQuery("SELECT").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"a", "b", "c", "d"}).AddRow(7, 2, 3, 1))

	stats, err := repo.Stats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{TotalCompliance: 7, TotalDocuments: 2, PendingItems: 3, HighRiskItems: 1}, stats)
}

func TestDashboardStats_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &dashboardRepository{db: db, logger: db.logger}

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

	_, err := repo.Stats(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
