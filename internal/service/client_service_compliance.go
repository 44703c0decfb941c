// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/parse-guard/internal/adapter"
	"github.com/MKhiriev/parse-guard/internal/app"
	"github.com/MKhiriev/parse-guard/models"
)

type clientComplianceService struct {
	adapter adapter.ServerAdapter
}

func NewClientComplianceService(serverAdapter adapter.ServerAdapter) ClientComplianceService {
	return &clientComplianceService{adapter: serverAdapter}
}

func (s *clientComplianceService) List(ctx context.Context, filter models.ComplianceFilter) ([]models.ComplianceItem, error) {
	items, err := s.adapter.ListCompliance(ctx, filter)
	if err != nil {
		return nil, clientError(app.MsgLoadComplianceFailed, err)
	}
	return items, nil
}

func (s *clientComplianceService) Get(ctx context.Context, id string) (models.ComplianceItem, error) {
	item, err := s.adapter.GetCompliance(ctx, id)
	if err != nil {
		return models.ComplianceItem{}, clientError(app.MsgLoadItemFailed, err)
	}
	return item, nil
}

func (s *clientComplianceService) Create(ctx context.Context, dto models.CreateComplianceDto) (models.ComplianceItem, error) {
	item, err := s.adapter.CreateCompliance(ctx, dto)
	if err != nil {
		return models.ComplianceItem{}, clientError(app.MsgCreateItemFailed, err)
	}
	return item, nil
}

func (s *clientComplianceService) Update(ctx context.Context, id string, dto models.UpdateComplianceDto) (models.ComplianceItem, error) {
	item, err := s.adapter.UpdateCompliance(ctx, id, dto)
	if err != nil {
		return models.ComplianceItem{}, clientError(app.MsgUpdateItemFailed, err)
	}
	return item, nil
}

func (s *clientComplianceService) Delete(ctx context.Context, id string) error {
	if err := s.adapter.DeleteCompliance(ctx, id); err != nil {
		return clientError(app.MsgDeleteItemFailed, err)
	}
	return nil
}
