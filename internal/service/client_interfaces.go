// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/parse-guard/models"
)

// Every client service method returns a [*ClientError] on failure. Its text
// is the fixed message shown to the user; the transport error stays
// reachable through errors.Is / errors.As.

// ClientAuthService manages the signed-in state of the terminal client.
// It is the only client service that touches the session store.
type ClientAuthService interface {
	// Login authenticates with the server, stores the token in the adapter and
	// persists the session. A response without a token is a failure.
	Login(ctx context.Context, creds models.LoginCredentials) (models.Session, error)

	// Register creates an account and signs in with the returned token.
	Register(ctx context.Context, data models.RegisterData) (models.Session, error)

	// Refresh exchanges the current token for a fresh one. On failure the
	// client is logged out.
	Refresh(ctx context.Context) (models.Session, error)

	// Logout drops the token and the persisted session. It never fails.
	Logout(ctx context.Context)

	// Restore loads a persisted, unexpired session and re-arms the adapter
	// with its token. It returns ErrNotAuthenticated otherwise.
	Restore(ctx context.Context) (models.Session, error)
}

// ClientDashboardService reads the dashboard.
type ClientDashboardService interface {
	Stats(ctx context.Context) (models.DashboardStats, error)

	// Activity returns the newest entries. limit <= 0 means the default.
	Activity(ctx context.Context, limit int) ([]models.ActivityItem, error)

	// Load fetches stats and the default activity feed concurrently and
	// fails if either call fails.
	Load(ctx context.Context) (models.Dashboard, error)
}

// ClientComplianceService is the CRUD surface for compliance items.
type ClientComplianceService interface {
	List(ctx context.Context, filter models.ComplianceFilter) ([]models.ComplianceItem, error)
	Get(ctx context.Context, id string) (models.ComplianceItem, error)
	Create(ctx context.Context, dto models.CreateComplianceDto) (models.ComplianceItem, error)
	Update(ctx context.Context, id string, dto models.UpdateComplianceDto) (models.ComplianceItem, error)
	Delete(ctx context.Context, id string) error
}

// ClientAnalyzerService drives the document analyzer screen.
type ClientAnalyzerService interface {
	Analyze(ctx context.Context, text string) (models.DocumentAnalysis, error)
	AssessRisk(ctx context.Context, title, description string) (models.RiskAssessment, error)

	// SaveAsDocument stores text together with the analysis as a new
	// document titled after now.
	SaveAsDocument(ctx context.Context, text string, analysis models.DocumentAnalysis, now time.Time) (models.Document, error)

	// SaveSuggestedItem turns a suggestion into a pending compliance item due
	// one week after now.
	SaveSuggestedItem(ctx context.Context, item models.SuggestedItem, now time.Time) (models.ComplianceItem, error)
}

// ClientDocumentService reads and writes stored documents.
type ClientDocumentService interface {
	CreateFromText(ctx context.Context, doc models.CreateDocumentFromText) (models.Document, error)
	List(ctx context.Context) ([]models.Document, error)
	Content(ctx context.Context, id string) (string, error)
}

// SessionRefreshJob keeps the token fresh in the background.
type SessionRefreshJob interface {
	// Start launches the background goroutine that refreshes the session
	// every interval, defaulting to 30 minutes if interval is zero or
	// negative. Any previously running job is stopped first. The job ends by
	// itself after a failed refresh.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}
