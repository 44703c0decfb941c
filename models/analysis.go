// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DocumentAnalysis is the result of POST /api/ai/analyze.
type DocumentAnalysis struct {
	Summary          string          `json:"summary"`
	ComplianceTopics []string        `json:"compliance_topics"`
	RiskIndicators   []string        `json:"risk_indicators"`
	SuggestedItems   []SuggestedItem `json:"suggested_items"`
	Confidence       float64         `json:"confidence"`
}

// SuggestedItem is an action item proposed by the analyzer.
type SuggestedItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	RiskLevel   RiskLevel `json:"risk_level"`
}

// AnalyzeRequest is the body of POST /api/ai/analyze.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// RiskAssessmentRequest is the body of POST /api/ai/assess-risk.
type RiskAssessmentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// RiskAssessment is the result of POST /api/ai/assess-risk.
type RiskAssessment struct {
	RiskLevel       RiskLevel `json:"risk_level"`
	RiskScore       float64   `json:"risk_score"`
	Factors         []string  `json:"factors"`
	Recommendations []string  `json:"recommendations"`
}
