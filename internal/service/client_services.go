// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/parse-guard/internal/adapter"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/store"
)

type ClientServices struct {
	AuthService       ClientAuthService
	DashboardService  ClientDashboardService
	ComplianceService ClientComplianceService
	DocumentService   ClientDocumentService
	AnalyzerService   ClientAnalyzerService
	SessionJob        SessionRefreshJob
}

func NewClientServices(serverAdapter adapter.ServerAdapter, sessions store.SessionRepository, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(serverAdapter, sessions, logger)
	complianceSvc := NewClientComplianceService(serverAdapter)
	documentSvc := NewClientDocumentService(serverAdapter)

	return &ClientServices{
		AuthService:       authSvc,
		DashboardService:  NewClientDashboardService(serverAdapter),
		ComplianceService: complianceSvc,
		DocumentService:   documentSvc,
		AnalyzerService:   NewClientAnalyzerService(serverAdapter, documentSvc, complianceSvc),
		SessionJob:        NewSessionRefreshJob(authSvc),
	}
}
