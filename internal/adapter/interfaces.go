// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the client uses to talk to
// the ParseGuard server.
//
// [ServerAdapter] decouples the client services from HTTP. Non-2xx responses
// are mapped to the sentinel errors in errors.go so callers can match them
// with [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/parse-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the REST API of the server as seen from the client.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated calls.
	SetToken(token string)

	// Token returns the current bearer token or an empty string.
	Token() string

	// OnUnauthorized registers fn to run after an authenticated call got 401.
	// The token is already cleared when fn runs.
	OnUnauthorized(fn func())

	// Register creates an account. The token is requested in the body and is
	// not stored by the adapter.
	Register(ctx context.Context, data models.RegisterData) (models.AuthResponse, error)

	// Login exchanges credentials for a token. The token is not stored by the
	// adapter.
	Login(ctx context.Context, creds models.LoginCredentials) (models.AuthResponse, error)

	// Refresh asks for a fresh token for the current session.
	Refresh(ctx context.Context) (models.AuthResponse, error)

	// Me returns the authenticated user.
	Me(ctx context.Context) (models.User, error)

	DashboardStats(ctx context.Context) (models.DashboardStats, error)
	Activity(ctx context.Context, limit int) ([]models.ActivityItem, error)

	ListCompliance(ctx context.Context, filter models.ComplianceFilter) ([]models.ComplianceItem, error)
	GetCompliance(ctx context.Context, id string) (models.ComplianceItem, error)
	CreateCompliance(ctx context.Context, dto models.CreateComplianceDto) (models.ComplianceItem, error)
	UpdateCompliance(ctx context.Context, id string, dto models.UpdateComplianceDto) (models.ComplianceItem, error)
	DeleteCompliance(ctx context.Context, id string) error

	Analyze(ctx context.Context, text string) (models.DocumentAnalysis, error)
	AssessRisk(ctx context.Context, req models.RiskAssessmentRequest) (models.RiskAssessment, error)

	CreateDocumentFromText(ctx context.Context, doc models.CreateDocumentFromText) (models.Document, error)
	ListDocuments(ctx context.Context) ([]models.Document, error)
	GetDocument(ctx context.Context, id string) (models.Document, error)
	DocumentContent(ctx context.Context, id string) (string, error)

	// Version returns the plain-text server version.
	Version(ctx context.Context) (string, error)
}
