// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/parse-guard/internal/analyzer"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/validators"
	"github.com/MKhiriev/parse-guard/models"
)

type aiService struct {
	analyzer  analyzer.Analyzer
	validator validators.Validator
	recorder  *ActivityRecorder
	logger    *logger.Logger
}

func NewAIService(a analyzer.Analyzer, validator validators.Validator, recorder *ActivityRecorder, logger *logger.Logger) AIService {
	return &aiService{
		analyzer:  a,
		validator: validator,
		recorder:  recorder,
		logger:    logger,
	}
}

func (s *aiService) Analyze(ctx context.Context, userID string, req models.AnalyzeRequest) (models.DocumentAnalysis, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.DocumentAnalysis{}, err
	}

	text := analyzer.Truncate(req.Text)
	if len(text) != len(req.Text) {
		log.Info().Int("runes", utf8.RuneCountInString(req.Text)).Msg("analysis input truncated")
	}

	analysis, err := s.analyzer.Analyze(ctx, text)
	if err != nil {
		log.Err(err).Str("func", "*aiService.Analyze").Msg("analysis failed")
		return models.DocumentAnalysis{}, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	s.recorder.record(ctx, s.recorder.item(userID, models.ActivityDocumentAnalyzed, "Document analyzed",
		fmt.Sprintf("%d topics, %d risk indicators", len(analysis.ComplianceTopics), len(analysis.RiskIndicators))))

	return analysis, nil
}

func (s *aiService) AssessRisk(ctx context.Context, userID string, req models.RiskAssessmentRequest) (models.RiskAssessment, error) {
	log := logger.FromContext(ctx)

	req.Title = strings.TrimSpace(req.Title)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.RiskAssessment{}, err
	}

	assessment, err := s.analyzer.AssessRisk(ctx, req.Title, req.Description)
	if err != nil {
		log.Err(err).Str("func", "*aiService.AssessRisk").Msg("risk assessment failed")
		return models.RiskAssessment{}, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	s.recorder.record(ctx, s.recorder.item(userID, models.ActivityRiskAssessed, req.Title,
		fmt.Sprintf("Risk level %s (%.2f)", assessment.RiskLevel, assessment.RiskScore)))

	return assessment, nil
}
