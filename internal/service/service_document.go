// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/store"
	"github.com/MKhiriev/parse-guard/internal/utils"
	"github.com/MKhiriev/parse-guard/internal/validators"
	"github.com/MKhiriev/parse-guard/models"
)

type documentService struct {
	repository store.DocumentRepository
	content    store.ContentStorage
	validator  validators.Validator
	ids        utils.IDGenerator
	recorder   *ActivityRecorder
	logger     *logger.Logger
}

func NewDocumentService(repository store.DocumentRepository, content store.ContentStorage, validator validators.Validator, ids utils.IDGenerator, recorder *ActivityRecorder, logger *logger.Logger) DocumentService {
	return &documentService{
		repository: repository,
		content:    content,
		validator:  validator,
		ids:        ids,
		recorder:   recorder,
		logger:     logger,
	}
}

// CreateFromText uploads the body first and then inserts the metadata row,
// removing the object again when the insert fails.
func (s *documentService) CreateFromText(ctx context.Context, userID string, doc models.CreateDocumentFromText) (models.Document, error) {
	log := logger.FromContext(ctx)

	doc.Title = strings.TrimSpace(doc.Title)
	if err := s.validator.Validate(ctx, doc); err != nil {
		log.Err(err).Msg("invalid document provided")
		return models.Document{}, err
	}

	id := s.ids.Generate()
	key := objectKey(userID, id)
	size := int64(len(doc.Content))

	if err := s.content.Put(ctx, key, strings.NewReader(doc.Content), size, models.MimeTypeText); err != nil {
		return models.Document{}, fmt.Errorf("error storing document content: %w", err)
	}

	created, err := s.repository.Create(ctx, models.Document{
		ID:       id,
		UserID:   userID,
		Title:    doc.Title,
		FilePath: key,
		FileSize: size,
		MimeType: models.MimeTypeText,
	})
	if err != nil {
		if delErr := s.content.Delete(ctx, key); delErr != nil {
			log.Err(delErr).Str("key", key).Msg("error removing orphaned document content")
		}
		return models.Document{}, fmt.Errorf("error saving document: %w", err)
	}

	s.recorder.record(ctx, s.recorder.item(userID, models.ActivityDocumentCreated, created.Title, ""))

	return created, nil
}

func (s *documentService) List(ctx context.Context, userID string) ([]models.Document, error) {
	return s.repository.List(ctx, userID)
}

func (s *documentService) Get(ctx context.Context, userID, id string) (models.Document, error) {
	return s.repository.Get(ctx, userID, id)
}

func (s *documentService) Content(ctx context.Context, userID, id string) (models.Document, io.ReadCloser, error) {
	doc, err := s.repository.Get(ctx, userID, id)
	if err != nil {
		return models.Document{}, nil, err
	}

	body, err := s.content.Get(ctx, doc.FilePath)
	if err != nil {
		return models.Document{}, nil, err
	}

	return doc, body, nil
}

func objectKey(userID, documentID string) string {
	return userID + "/" + documentID + ".txt"
}
