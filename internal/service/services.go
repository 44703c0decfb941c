// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/parse-guard/internal/analyzer"
	"github.com/MKhiriev/parse-guard/internal/cache"
	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/store"
	"github.com/MKhiriev/parse-guard/internal/utils"
	"github.com/MKhiriev/parse-guard/internal/validators"
)

type Services struct {
	AuthService       AuthService
	ComplianceService ComplianceService
	DashboardService  DashboardService
	DocumentService   DocumentService
	AIService         AIService
	OverdueService    OverdueService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, statsCache cache.StatsCache, a analyzer.Analyzer, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()
	validator := validators.NewRequestValidator()
	recorder := NewActivityRecorder(storages.ActivityRepository, statsCache, ids)

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, validator, ids, cfg.App, logger),
		ComplianceService: NewComplianceService(storages.ComplianceRepository, validator, ids, recorder, logger),
		DashboardService:  NewDashboardService(storages.DashboardRepository, storages.ActivityRepository, statsCache, logger),
		DocumentService:   NewDocumentService(storages.DocumentRepository, storages.ContentStorage, validator, ids, recorder, logger),
		AIService:         NewAIService(a, validator, recorder, logger),
		OverdueService:    NewOverdueService(storages.ComplianceRepository, recorder, logger),
		AppInfoService:    appInfo,
	}, nil
}
