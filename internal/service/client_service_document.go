// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/parse-guard/internal/adapter"
	"github.com/MKhiriev/parse-guard/internal/app"
	"github.com/MKhiriev/parse-guard/models"
)

type clientDocumentService struct {
	adapter adapter.ServerAdapter
}

func NewClientDocumentService(serverAdapter adapter.ServerAdapter) ClientDocumentService {
	return &clientDocumentService{adapter: serverAdapter}
}

func (s *clientDocumentService) CreateFromText(ctx context.Context, doc models.CreateDocumentFromText) (models.Document, error) {
	created, err := s.adapter.CreateDocumentFromText(ctx, doc)
	if err != nil {
		return models.Document{}, clientError(app.MsgSaveDocumentFailed, err)
	}
	return created, nil
}

func (s *clientDocumentService) List(ctx context.Context) ([]models.Document, error) {
	docs, err := s.adapter.ListDocuments(ctx)
	if err != nil {
		return nil, clientError(app.MsgLoadDocumentsFailed, err)
	}
	return docs, nil
}

func (s *clientDocumentService) Content(ctx context.Context, id string) (string, error) {
	body, err := s.adapter.DocumentContent(ctx, id)
	if err != nil {
		return "", clientError(app.MsgLoadDocumentsFailed, err)
	}
	return body, nil
}
