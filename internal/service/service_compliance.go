// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/store"
	"github.com/MKhiriev/parse-guard/internal/utils"
	"github.com/MKhiriev/parse-guard/internal/validators"
	"github.com/MKhiriev/parse-guard/models"
)

type complianceService struct {
	repository store.ComplianceRepository
	validator  validators.Validator
	ids        utils.IDGenerator
	recorder   *ActivityRecorder
	logger     *logger.Logger
}

func NewComplianceService(repository store.ComplianceRepository, validator validators.Validator, ids utils.IDGenerator, recorder *ActivityRecorder, logger *logger.Logger) ComplianceService {
	return &complianceService{
		repository: repository,
		validator:  validator,
		ids:        ids,
		recorder:   recorder,
		logger:     logger,
	}
}

func (s *complianceService) List(ctx context.Context, userID string, filter models.ComplianceFilter) ([]models.ComplianceItem, error) {
	if err := s.validator.Validate(ctx, filter); err != nil {
		return nil, err
	}

	return s.repository.List(ctx, userID, filter)
}

func (s *complianceService) Get(ctx context.Context, userID, id string) (models.ComplianceItem, error) {
	return s.repository.Get(ctx, userID, id)
}

// Create stores a new item. Status defaults to pending and priority to
// medium.
func (s *complianceService) Create(ctx context.Context, userID string, dto models.CreateComplianceDto) (models.ComplianceItem, error) {
	log := logger.FromContext(ctx)

	dto.Title = strings.TrimSpace(dto.Title)
	if err := s.validator.Validate(ctx, dto); err != nil {
		log.Err(err).Msg("invalid compliance item provided")
		return models.ComplianceItem{}, err
	}

	item := models.ComplianceItem{
		ID:          s.ids.Generate(),
		UserID:      userID,
		Title:       dto.Title,
		Description: dto.Description,
		Status:      dto.Status,
		Priority:    dto.Priority,
		RiskLevel:   dto.RiskLevel,
		DueDate:     dto.DueDate,
	}
	if item.Status == "" {
		item.Status = models.StatusPending
	}
	if item.Priority == "" {
		item.Priority = models.PriorityMedium
	}

	created, err := s.repository.Create(ctx, item)
	if err != nil {
		return models.ComplianceItem{}, fmt.Errorf("error creating compliance item: %w", err)
	}

	s.recorder.record(ctx, s.recorder.item(userID, models.ActivityComplianceCreated, created.Title, ""))

	return created, nil
}

func (s *complianceService) Update(ctx context.Context, userID, id string, dto models.UpdateComplianceDto) (models.ComplianceItem, error) {
	log := logger.FromContext(ctx)

	if dto.Title != nil {
		title := strings.TrimSpace(*dto.Title)
		dto.Title = &title
	}
	if err := s.validator.Validate(ctx, dto); err != nil {
		log.Err(err).Msg("invalid compliance update provided")
		return models.ComplianceItem{}, err
	}

	updated, err := s.repository.Update(ctx, userID, id, dto)
	if err != nil {
		return models.ComplianceItem{}, err
	}

	s.recorder.record(ctx, s.recorder.item(userID, models.ActivityComplianceUpdated, updated.Title, describeUpdate(dto)))

	return updated, nil
}

func (s *complianceService) Delete(ctx context.Context, userID, id string) error {
	deleted, err := s.repository.Delete(ctx, userID, id)
	if err != nil {
		return err
	}

	s.recorder.record(ctx, s.recorder.item(userID, models.ActivityComplianceDeleted, deleted.Title, ""))

	return nil
}

// describeUpdate lists the changed fields for the activity feed.
func describeUpdate(dto models.UpdateComplianceDto) string {
	changes := make([]string, 0, 8)
	if dto.Title != nil {
		changes = append(changes, "title")
	}
	if dto.Description != nil {
		changes = append(changes, "description")
	}
	if dto.Status != nil {
		changes = append(changes, "status → "+string(*dto.Status))
	}
	if dto.Priority != nil {
		changes = append(changes, "priority → "+string(*dto.Priority))
	}
	if dto.RiskLevel != nil {
		changes = append(changes, "risk level → "+string(*dto.RiskLevel))
	}
	if dto.DueDate != nil {
		changes = append(changes, "due date")
	}
	if dto.ClearRiskLevel {
		changes = append(changes, "risk level cleared")
	}
	if dto.ClearDueDate {
		changes = append(changes, "due date cleared")
	}

	return "Changed " + strings.Join(changes, ", ")
}
