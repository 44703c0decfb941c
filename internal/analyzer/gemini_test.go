// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	out    string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, _, prompt string) (string, error) {
	f.prompt = prompt
	return f.out, f.err
}

func TestGeminiAnalyze_ParsesFencedJSON(t *testing.T) {
	gen := &fakeGenerator{out: "```json\n" + `{
		"summary": " Vendor risk found. ",
		"compliance_topics": ["GDPR", ""],
		"risk_indicators": ["Unencrypted backups"],
		"suggested_items": [
			{"title": "Encrypt backups", "description": "Use AES", "risk_level": "HIGH"},
			{"title": "", "description": "dropped"},
			{"title": "Review vendor", "risk_level": "severe"}
		],
		"confidence": 1.7
	}` + "\n```"}
	g := &GeminiAnalyzer{gen: gen}

	got, err := g.Analyze(context.Background(), "the document")
	require.NoError(t, err)

	assert.Contains(t, gen.prompt, "the document")
	assert.Equal(t, "Vendor risk found.", got.Summary)
	assert.Equal(t, []string{"GDPR"}, got.ComplianceTopics)
	assert.Equal(t, []string{"Unencrypted backups"}, got.RiskIndicators)
	assert.Equal(t, []models.SuggestedItem{
		{Title: "Encrypt backups", Description: "Use AES", RiskLevel: models.RiskHigh},
		{Title: "Review vendor", RiskLevel: models.RiskMedium},
	}, got.SuggestedItems)
	assert.Equal(t, 1.0, got.Confidence)
}

func TestGeminiAnalyze_Errors(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{name: "transport", gen: &fakeGenerator{err: errors.New("quota")}},
		{name: "no json", gen: &fakeGenerator{out: "I cannot help with that."}},
		{name: "broken json", gen: &fakeGenerator{out: `{"summary": "x"`}},
		{name: "empty object", gen: &fakeGenerator{out: `{}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&GeminiAnalyzer{gen: tt.gen}).Analyze(context.Background(), "text")
			assert.Error(t, err)
		})
	}
}

func TestGeminiAssessRisk(t *testing.T) {
	gen := &fakeGenerator{out: `{"risk_score": 0.7, "factors": ["Breach"]}`}

	got, err := (&GeminiAnalyzer{gen: gen}).AssessRisk(context.Background(), "Backups", "unencrypted")
	require.NoError(t, err)

	assert.Equal(t, models.RiskHigh, got.RiskLevel)
	assert.Equal(t, 0.7, got.RiskScore)
	assert.Equal(t, []string{"Breach"}, got.Factors)
	assert.Equal(t, Recommendations(models.RiskHigh), got.Recommendations)
	assert.True(t, strings.Contains(gen.prompt, "Title: Backups"))
}

func TestGeminiAssessRisk_Empty(t *testing.T) {
	_, err := (&GeminiAnalyzer{gen: &fakeGenerator{out: `{"factors": []}`}}).AssessRisk(context.Background(), "a", "b")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestFallbackAnalyzer(t *testing.T) {
	primary := &GeminiAnalyzer{gen: &fakeGenerator{err: errors.New("unavailable")}}
	a := NewFallbackAnalyzer(primary, NewKeywordAnalyzer(), logger.Nop())

	got, err := a.Analyze(context.Background(), "GDPR breach.")
	require.NoError(t, err)
	assert.Equal(t, []string{"GDPR"}, got.ComplianceTopics)

	risk, err := a.AssessRisk(context.Background(), "Breach", "")
	require.NoError(t, err)
	assert.Equal(t, models.RiskMedium, risk.RiskLevel)
}

func TestFallbackAnalyzer_CanceledContext(t *testing.T) {
	primary := &GeminiAnalyzer{gen: &fakeGenerator{err: context.Canceled}}
	a := NewFallbackAnalyzer(primary, NewKeywordAnalyzer(), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Analyze(ctx, "text")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_WithoutKeyUsesKeywords(t *testing.T) {
	a, err := New(context.Background(), config.AI{}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &KeywordAnalyzer{}, a)
}
