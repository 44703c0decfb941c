// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/store"
	"github.com/MKhiriev/parse-guard/models"
)

type overdueService struct {
	repository store.ComplianceRepository
	recorder   *ActivityRecorder
	logger     *logger.Logger
}

func NewOverdueService(repository store.ComplianceRepository, recorder *ActivityRecorder, logger *logger.Logger) OverdueService {
	return &overdueService{
		repository: repository,
		recorder:   recorder,
		logger:     logger,
	}
}

// EscalateOverdue raises overdue items to high priority and records one
// activity entry per item. It returns the number of escalated items.
func (s *overdueService) EscalateOverdue(ctx context.Context, now time.Time) (int, error) {
	items, err := s.repository.EscalateOverdue(ctx, now)
	if err != nil {
		return 0, err
	}

	activity := make([]models.ActivityItem, 0, len(items))
	for _, it := range items {
		desc := "Priority raised to high"
		if it.DueDate != nil {
			desc += ", due " + it.DueDate.Format(time.DateOnly)
		}
		activity = append(activity, s.recorder.item(it.UserID, models.ActivityComplianceOverdue, it.Title, desc))
	}
	s.recorder.record(ctx, activity...)

	if len(items) > 0 {
		logger.FromContext(ctx).Info().Int("count", len(items)).Msg("escalated overdue compliance items")
	}

	return len(items), nil
}
