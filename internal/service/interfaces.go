// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/parse-guard/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, data models.RegisterData) (models.User, error)
	Login(ctx context.Context, creds models.LoginCredentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
}

// ComplianceService manages a user's compliance items. Every mutation is
// recorded in the activity feed.
type ComplianceService interface {
	List(ctx context.Context, userID string, filter models.ComplianceFilter) ([]models.ComplianceItem, error)
	Get(ctx context.Context, userID, id string) (models.ComplianceItem, error)
	Create(ctx context.Context, userID string, dto models.CreateComplianceDto) (models.ComplianceItem, error)
	Update(ctx context.Context, userID, id string, dto models.UpdateComplianceDto) (models.ComplianceItem, error)
	Delete(ctx context.Context, userID, id string) error
}

type DashboardService interface {
	Stats(ctx context.Context, userID string) (models.DashboardStats, error)
	Activity(ctx context.Context, userID string, limit int) ([]models.ActivityItem, error)
}

type DocumentService interface {
	CreateFromText(ctx context.Context, userID string, doc models.CreateDocumentFromText) (models.Document, error)
	List(ctx context.Context, userID string) ([]models.Document, error)
	Get(ctx context.Context, userID, id string) (models.Document, error)

	// Content opens the document body. The caller closes the reader.
	Content(ctx context.Context, userID, id string) (models.Document, io.ReadCloser, error)
}

type AIService interface {
	Analyze(ctx context.Context, userID string, req models.AnalyzeRequest) (models.DocumentAnalysis, error)
	AssessRisk(ctx context.Context, userID string, req models.RiskAssessmentRequest) (models.RiskAssessment, error)
}

// OverdueService escalates overdue compliance items. It is driven by the
// scheduler in internal/workers.
type OverdueService interface {
	EscalateOverdue(ctx context.Context, now time.Time) (int, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
