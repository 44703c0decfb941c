// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// AnalyzerModel takes a document text, runs the analysis and offers to save
// the result.
type AnalyzerModel struct {
	env *env

	input    textarea.Model
	result   viewport.Model
	text     string
	analysis *models.DocumentAnalysis

	busy   bool
	status string
	errMsg string
}

func newAnalyzerModel(e *env) *AnalyzerModel {
	input := textarea.New()
	input.Placeholder = "Paste a policy, contract or report..."
	input.CharLimit = 0
	input.SetWidth(markdownWrap)
	input.SetHeight(12)

	return &AnalyzerModel{
		env:    e,
		input:  input,
		result: viewport.New(markdownWrap, 18),
	}
}

func (m *AnalyzerModel) Init() tea.Cmd {
	return m.input.Focus()
}

func (m *AnalyzerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := max(msg.Width-6, 20)
		m.input.SetWidth(width)
		m.result.Width = width
		m.result.Height = max(msg.Height-12, 5)
		return m, nil
	case analysisDoneMsg:
		m.busy = false
		m.errMsg = humanizeError(msg.err)
		if msg.err == nil {
			m.analysis = &msg.analysis
			m.input.Blur()
			m.result.SetContent(RenderMarkdown(AnalysisMarkdown(msg.analysis), m.result.Width))
			m.result.GotoTop()
		}
		return m, nil
	case documentSavedMsg:
		m.busy = false
		m.errMsg = humanizeError(msg.err)
		if msg.err == nil {
			m.status = fmt.Sprintf("Saved document %q", msg.document.Title)
		}
		return m, nil
	case suggestionSavedMsg:
		m.busy = false
		m.errMsg = humanizeError(msg.err)
		if msg.err == nil {
			m.status = fmt.Sprintf("Created compliance item %q", msg.item.Title)
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Could not copy to clipboard: " + msg.err.Error()
		} else {
			m.status = "Summary copied to clipboard"
		}
		return m, nil
	case tea.KeyMsg:
		if m.analysis == nil {
			return m, m.updateInput(msg)
		}
		return m, m.updateResult(msg)
	}

	return m, nil
}

func (m *AnalyzerModel) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		return navigate(pageHome, nil)
	case key.Matches(msg, keys.save):
		return m.analyze()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *AnalyzerModel) updateResult(msg tea.KeyMsg) tea.Cmd {
	if m.busy {
		return nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return navigate(pageHome, nil)
	case key.Matches(msg, keys.newItem):
		m.analysis = nil
		m.status, m.errMsg = "", ""
		return m.input.Focus()
	case key.Matches(msg, keys.copy):
		summary := m.analysis.Summary
		return func() tea.Msg { return copiedMsg{err: clipboardWrite(summary)} }
	case msg.String() == "s":
		return m.saveDocument()
	case len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9':
		return m.saveSuggestion(int(msg.Runes[0] - '1'))
	}

	var cmd tea.Cmd
	m.result, cmd = m.result.Update(msg)
	return cmd
}

func (m *AnalyzerModel) analyze() tea.Cmd {
	if m.busy {
		return nil
	}

	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.errMsg = "Please enter text to analyze."
		return nil
	}

	m.text = text
	m.busy = true
	m.status, m.errMsg = "", ""

	ctx, svc := m.env.ctx, m.env.services.AnalyzerService
	return func() tea.Msg {
		analysis, err := svc.Analyze(ctx, text)
		return analysisDoneMsg{analysis: analysis, err: err}
	}
}

func (m *AnalyzerModel) saveDocument() tea.Cmd {
	m.busy = true
	ctx, svc, text, analysis, now := m.env.ctx, m.env.services.AnalyzerService, m.text, *m.analysis, m.env.now()
	return func() tea.Msg {
		doc, err := svc.SaveAsDocument(ctx, text, analysis, now)
		return documentSavedMsg{document: doc, err: err}
	}
}

func (m *AnalyzerModel) saveSuggestion(idx int) tea.Cmd {
	if idx >= len(m.analysis.SuggestedItems) {
		return nil
	}

	m.busy = true
	ctx, svc, item, now := m.env.ctx, m.env.services.AnalyzerService, m.analysis.SuggestedItems[idx], m.env.now()
	return func() tea.Msg {
		saved, err := svc.SaveSuggestedItem(ctx, item, now)
		return suggestionSavedMsg{item: saved, err: err}
	}
}

func (m *AnalyzerModel) View() string {
	var b strings.Builder

	if m.analysis == nil {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.busy {
			b.WriteString("\nAnalyzing...\n")
		}
		renderStatus(&b, m.status, m.errMsg)
		return renderPage("DOCUMENT ANALYZER", strings.TrimRight(b.String(), "\n"), "ctrl+s: analyze │ esc: back")
	}

	b.WriteString(m.result.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "Confidence: %s\n", service.FormatConfidence(m.analysis.Confidence))
	if m.busy {
		b.WriteString("\nSaving...\n")
	}
	renderStatus(&b, m.status, m.errMsg)

	hotKeys := "s: save as document │ c: copy summary │ n: new analysis │ ↑/↓: scroll │ esc: back"
	if n := len(m.analysis.SuggestedItems); n > 0 {
		hotKeys = fmt.Sprintf("1-%d: save suggested item │ %s", min(n, 9), hotKeys)
	}
	return renderPage("ANALYSIS RESULT", strings.TrimRight(b.String(), "\n"), hotKeys)
}
