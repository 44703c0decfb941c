// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/parse-guard/internal/adapter"
	"github.com/MKhiriev/parse-guard/internal/app"
	"github.com/MKhiriev/parse-guard/models"
)

// SuggestedItemDueIn is how far ahead a saved suggestion is due.
const SuggestedItemDueIn = 7 * 24 * time.Hour

// AnalysisTitleLayout formats the time in saved analysis titles.
const AnalysisTitleLayout = "2006-01-02 15:04:05"

type clientAnalyzerService struct {
	adapter    adapter.ServerAdapter
	documents  ClientDocumentService
	compliance ClientComplianceService
}

func NewClientAnalyzerService(serverAdapter adapter.ServerAdapter, documents ClientDocumentService, compliance ClientComplianceService) ClientAnalyzerService {
	return &clientAnalyzerService{
		adapter:    serverAdapter,
		documents:  documents,
		compliance: compliance,
	}
}

func (s *clientAnalyzerService) Analyze(ctx context.Context, text string) (models.DocumentAnalysis, error) {
	analysis, err := s.adapter.Analyze(ctx, text)
	if err != nil {
		return models.DocumentAnalysis{}, clientError(app.MsgAnalyzeFailed, err)
	}
	return analysis, nil
}

func (s *clientAnalyzerService) AssessRisk(ctx context.Context, title, description string) (models.RiskAssessment, error) {
	assessment, err := s.adapter.AssessRisk(ctx, models.RiskAssessmentRequest{Title: title, Description: description})
	if err != nil {
		return models.RiskAssessment{}, clientError(app.MsgAssessRiskFailed, err)
	}
	return assessment, nil
}

func (s *clientAnalyzerService) SaveAsDocument(ctx context.Context, text string, analysis models.DocumentAnalysis, now time.Time) (models.Document, error) {
	return s.documents.CreateFromText(ctx, models.CreateDocumentFromText{
		Title:   "AI Analysis - " + now.Format(AnalysisTitleLayout),
		Content: AnalysisDocumentContent(text, analysis),
	})
}

func (s *clientAnalyzerService) SaveSuggestedItem(ctx context.Context, item models.SuggestedItem, now time.Time) (models.ComplianceItem, error) {
	due := now.Add(SuggestedItemDueIn)

	return s.compliance.Create(ctx, models.CreateComplianceDto{
		Title:       item.Title,
		Description: item.Description,
		Status:      models.StatusPending,
		RiskLevel:   item.RiskLevel,
		DueDate:     &due,
	})
}

// AnalysisDocumentContent is the body of a document saved from an analysis.
func AnalysisDocumentContent(text string, analysis models.DocumentAnalysis) string {
	return "Original Text:\n" + text +
		"\n\nSummary:\n" + analysis.Summary +
		"\n\nRisks:\n" + strings.Join(analysis.RiskIndicators, "\n")
}

// FormatConfidence renders a 0..1 confidence as a percentage with one
// decimal.
func FormatConfidence(c float64) string {
	return fmt.Sprintf("%.1f%%", c*100)
}
