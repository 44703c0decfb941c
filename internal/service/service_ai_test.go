package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/MKhiriev/parse-guard/internal/analyzer"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/mock"
	"github.com/MKhiriev/parse-guard/internal/validators"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAIService(t *testing.T, ctrl *gomock.Controller) (AIService, *mock.MockAnalyzer, *mock.MockActivityRepository, *mock.MockStatsCache) {
	t.Helper()
	rec, activity, statsCache := newTestRecorder(t, ctrl)
	a := mock.NewMockAnalyzer(ctrl)
	return NewAIService(a, validators.NewRequestValidator(), rec, logger.Nop()), a, activity, statsCache
}

func TestAIService_Analyze_RecordsActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, a, activity, statsCache := newTestAIService(t, ctrl)
	ctx := context.Background()

	analysis := models.DocumentAnalysis{
		Summary:          "Data retention policy.",
		ComplianceTopics: []string{"GDPR", "Retention"},
		RiskIndicators:   []string{"Personal data"},
		Confidence:       0.55,
	}
	a.EXPECT().Analyze(ctx, "retention text").Return(analysis, nil)
	activity.EXPECT().Add(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, items ...models.ActivityItem) error {
			assert.Equal(t, models.ActivityDocumentAnalyzed, items[0].Type)
			assert.Equal(t, "2 topics, 1 risk indicators", items[0].Description)
			return nil
		},
	)
	statsCache.EXPECT().Invalidate(ctx, "u1").Return(nil)

	got, err := svc.Analyze(ctx, "u1", models.AnalyzeRequest{Text: "retention text"})
	require.NoError(t, err)
	assert.Equal(t, analysis, got)
}

func TestAIService_Analyze_TruncatesLongInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, a, activity, statsCache := newTestAIService(t, ctrl)

	long := strings.Repeat("é", analyzer.MaxTextRunes+10)
	a.EXPECT().Analyze(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, text string) (models.DocumentAnalysis, error) {
			assert.Equal(t, analyzer.MaxTextRunes, utf8.RuneCountInString(text))
			return models.DocumentAnalysis{}, nil
		},
	)
	activity.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
	statsCache.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Analyze(context.Background(), "u1", models.AnalyzeRequest{Text: long})
	require.NoError(t, err)
}

func TestAIService_Analyze_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, a, _, _ := newTestAIService(t, ctrl)

	_, err := svc.Analyze(context.Background(), "u1", models.AnalyzeRequest{Text: " \n "})
	assert.ErrorIs(t, err, validators.ErrEmptyText)

	a.EXPECT().Analyze(gomock.Any(), "text").Return(models.DocumentAnalysis{}, errors.New("quota exceeded"))
	_, err = svc.Analyze(context.Background(), "u1", models.AnalyzeRequest{Text: "text"})
	assert.ErrorIs(t, err, ErrAnalysisFailed)
}

func TestAIService_AssessRisk(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, a, activity, statsCache := newTestAIService(t, ctrl)
	ctx := context.Background()

	assessment := models.RiskAssessment{RiskLevel: models.RiskHigh, RiskScore: 0.8}
	a.EXPECT().AssessRisk(ctx, "Cross-border transfer", "EU to US").Return(assessment, nil)
	activity.EXPECT().Add(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, items ...models.ActivityItem) error {
			assert.Equal(t, models.ActivityRiskAssessed, items[0].Type)
			assert.Equal(t, "Cross-border transfer", items[0].Title)
			assert.Equal(t, "Risk level high (0.80)", items[0].Description)
			return nil
		},
	)
	statsCache.EXPECT().Invalidate(ctx, "u1").Return(nil)

	got, err := svc.AssessRisk(ctx, "u1", models.RiskAssessmentRequest{Title: " Cross-border transfer ", Description: "EU to US"})
	require.NoError(t, err)
	assert.Equal(t, assessment, got)
}

func TestAIService_AssessRisk_EmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAIService(t, ctrl)

	_, err := svc.AssessRisk(context.Background(), "u1", models.RiskAssessmentRequest{Title: "  "})
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
}
