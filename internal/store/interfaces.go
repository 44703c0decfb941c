// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/parse-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// ComplianceRepository persists compliance items. Every method is scoped to
// the owner passed as userID.
type ComplianceRepository interface {
	Create(ctx context.Context, item models.ComplianceItem) (models.ComplianceItem, error)
	List(ctx context.Context, userID string, filter models.ComplianceFilter) ([]models.ComplianceItem, error)
	Get(ctx context.Context, userID, id string) (models.ComplianceItem, error)
	Update(ctx context.Context, userID, id string, update models.UpdateComplianceDto) (models.ComplianceItem, error)
	Delete(ctx context.Context, userID, id string) (models.ComplianceItem, error)

	// EscalateOverdue raises the priority of open items whose due date is
	// before now to high and returns the items that changed.
	EscalateOverdue(ctx context.Context, now time.Time) ([]models.ComplianceItem, error)
}

// DocumentRepository persists document metadata.
type DocumentRepository interface {
	Create(ctx context.Context, doc models.Document) (models.Document, error)
	List(ctx context.Context, userID string) ([]models.Document, error)
	Get(ctx context.Context, userID, id string) (models.Document, error)
	Delete(ctx context.Context, userID, id string) error
}

// ActivityRepository persists the activity feed.
type ActivityRepository interface {
	Add(ctx context.Context, items ...models.ActivityItem) error
	ListRecent(ctx context.Context, userID string, limit int) ([]models.ActivityItem, error)
}

// DashboardRepository computes the dashboard counters.
type DashboardRepository interface {
	Stats(ctx context.Context, userID string) (models.DashboardStats, error)
}

// ContentStorage stores document bodies outside the database.
type ContentStorage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// SessionRepository is the client-side persisted auth state.
type SessionRepository interface {
	Save(ctx context.Context, session models.Session) error
	Load(ctx context.Context) (models.Session, error)
	Clear(ctx context.Context) error
}
