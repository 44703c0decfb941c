package tui

import (
	"errors"
	"testing"

	"github.com/MKhiriev/parse-guard/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testAnalysis() models.DocumentAnalysis {
	return models.DocumentAnalysis{
		Summary:          "The policy covers retention of personal data.",
		ComplianceTopics: []string{"GDPR"},
		RiskIndicators:   []string{"No retention period defined"},
		SuggestedItems: []models.SuggestedItem{
			{Title: "Define retention period", Description: "Set a maximum age for stored records", RiskLevel: models.RiskHigh},
		},
		Confidence: 0.857,
	}
}

func TestAnalysisMarkdown(t *testing.T) {
	md := AnalysisMarkdown(testAnalysis())

	assert.Contains(t, md, "## Summary\n\nThe policy covers retention of personal data.")
	assert.Contains(t, md, "**Confidence:** 85.7%")
	assert.Contains(t, md, "## Compliance topics\n\n- GDPR")
	assert.Contains(t, md, "## Risk indicators\n\n- No retention period defined")
	assert.Contains(t, md, "1. **Define retention period** (high risk): Set a maximum age for stored records")
}

func TestAnalysisMarkdown_Empty(t *testing.T) {
	md := AnalysisMarkdown(models.DocumentAnalysis{})

	assert.Contains(t, md, "## Summary\n\n-")
	assert.NotContains(t, md, "Suggested items")
}

func analyzedModel(t *testing.T, d testDeps) *AnalyzerModel {
	t.Helper()
	m := newAnalyzerModel(d.env)
	m.Init()

	d.adapter.EXPECT().Analyze(gomock.Any(), "Retention policy text").Return(testAnalysis(), nil)

	m.input.SetValue("  Retention policy text\n")
	_, cmd := m.Update(keyCtrlS)
	require.NotNil(t, cmd)
	m.Update(cmd())
	require.NotNil(t, m.analysis)

	return m
}

func TestAnalyzerModel_EmptyText(t *testing.T) {
	d := newTestDeps(t)
	m := newAnalyzerModel(d.env)
	m.Init()

	_, cmd := m.Update(keyCtrlS)

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Please enter text to analyze.")
}

func TestAnalyzerModel_AnalyzeFailure(t *testing.T) {
	d := newTestDeps(t)
	m := newAnalyzerModel(d.env)
	m.Init()

	d.adapter.EXPECT().Analyze(gomock.Any(), "text").Return(models.DocumentAnalysis{}, errors.New("502"))

	m.input.SetValue("text")
	_, cmd := m.Update(keyCtrlS)
	m.Update(cmd())

	assert.Nil(t, m.analysis)
	assert.Contains(t, m.View(), "Failed to analyze document.")
}

func TestAnalyzerModel_SaveAsDocument(t *testing.T) {
	d := newTestDeps(t)
	m := analyzedModel(t, d)

	d.adapter.EXPECT().CreateDocumentFromText(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, doc models.CreateDocumentFromText) (models.Document, error) {
			assert.Contains(t, doc.Content, "Original Text:\nRetention policy text")
			return models.Document{ID: "d-1", Title: doc.Title}, nil
		})

	_, cmd := m.Update(keyRunes("s"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Contains(t, m.View(), `Saved document "AI Analysis - `)
}

func TestAnalyzerModel_SaveSuggestedItem(t *testing.T) {
	d := newTestDeps(t)
	m := analyzedModel(t, d)

	_, cmd := m.Update(keyRunes("2"))
	assert.Nil(t, cmd, "there is only one suggestion")

	d.adapter.EXPECT().CreateCompliance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, dto models.CreateComplianceDto) (models.ComplianceItem, error) {
			assert.Equal(t, "Define retention period", dto.Title)
			assert.Equal(t, models.StatusPending, dto.Status)
			return models.ComplianceItem{ID: "c-1", Title: dto.Title}, nil
		})

	_, cmd = m.Update(keyRunes("1"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Contains(t, m.View(), `Created compliance item "Define retention period"`)
}

func TestAnalyzerModel_CopySummary(t *testing.T) {
	d := newTestDeps(t)
	m := analyzedModel(t, d)

	var copied string
	orig := clipboardWrite
	clipboardWrite = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWrite = orig })

	_, cmd := m.Update(keyRunes("c"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, testAnalysis().Summary, copied)
	assert.Contains(t, m.View(), "Summary copied to clipboard")
}

func TestAnalyzerModel_NewAnalysis(t *testing.T) {
	d := newTestDeps(t)
	m := analyzedModel(t, d)

	m.Update(keyRunes("n"))

	assert.Nil(t, m.analysis)
	assert.Contains(t, m.View(), "ctrl+s: analyze")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageHome}, cmd())
}
