// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ComplianceDetailModel shows one item and its risk assessment.
type ComplianceDetailModel struct {
	env *env

	item       *models.ComplianceItem
	assessment *models.RiskAssessment
	assessing  bool
	confirming bool
	status     string
	errMsg     string
}

func newComplianceDetailModel(e *env) *ComplianceDetailModel {
	return &ComplianceDetailModel{env: e}
}

func (m *ComplianceDetailModel) Init() tea.Cmd {
	return nil
}

func (m *ComplianceDetailModel) assess() tea.Cmd {
	if m.item == nil || m.assessing {
		return nil
	}
	m.assessing = true
	m.errMsg = ""

	ctx, svc, item := m.env.ctx, m.env.services.AnalyzerService, *m.item
	return func() tea.Msg {
		assessment, err := svc.AssessRisk(ctx, item.Title, item.Description)
		return riskAssessedMsg{assessment: assessment, err: err}
	}
}

func (m *ComplianceDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openComplianceMsg:
		m.item = msg.item
		if msg.assess {
			return m, m.assess()
		}
		return m, nil
	case noticeMsg:
		m.status = msg.text
		return m, nil
	case riskAssessedMsg:
		m.assessing = false
		m.errMsg = humanizeError(msg.err)
		if msg.err == nil {
			m.assessment = &msg.assessment
		}
		return m, nil
	case complianceDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(pageCompliance, noticeMsg{text: fmt.Sprintf("Deleted %q", msg.title)})
	case tea.KeyMsg:
		if m.item == nil {
			if key.Matches(msg, keys.esc) {
				return m, navigate(pageCompliance, nil)
			}
			return m, nil
		}
		if m.confirming {
			switch {
			case key.Matches(msg, keys.yes):
				m.confirming = false
				return m, deleteCompliance(m.env, *m.item)
			case key.Matches(msg, keys.no):
				m.confirming = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageCompliance, nil)
		case key.Matches(msg, keys.assess):
			return m, m.assess()
		case key.Matches(msg, keys.edit):
			return m, navigate(pageComplianceForm, openComplianceMsg{item: m.item})
		case key.Matches(msg, keys.delete):
			m.confirming = true
		}
	}
	return m, nil
}

func (m *ComplianceDetailModel) View() string {
	if m.item == nil {
		return renderPage("COMPLIANCE ITEM", "", "esc: back")
	}

	item := m.item
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render(item.Title))
	fmt.Fprintf(&b, "Status      │ %s\n", statusBadge(item.Status))
	fmt.Fprintf(&b, "Priority    │ %s\n", priorityBadge(item.Priority))
	fmt.Fprintf(&b, "Risk level  │ %s\n", riskBadge(item.RiskLevel))
	fmt.Fprintf(&b, "Due date    │ %s\n", formatDue(item.DueDate))
	fmt.Fprintf(&b, "Created     │ %s\n", item.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Updated     │ %s\n", item.UpdatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "\n%s\n", valueOrDash(item.Description))

	switch {
	case m.assessing:
		b.WriteString("\nAssessing risk...\n")
	case m.assessment != nil:
		a := m.assessment
		fmt.Fprintf(&b, "\n%s %s  score %s\n", titleStyle.Render("Risk assessment"), riskBadge(a.RiskLevel), service.FormatConfidence(a.RiskScore))
		writeBullets(&b, "Factors", a.Factors)
		writeBullets(&b, "Recommendations", a.Recommendations)
	}

	if m.confirming {
		fmt.Fprintf(&b, "\n%s\n", warnStyle.Render(fmt.Sprintf("Delete %q? y/n", item.Title)))
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("COMPLIANCE ITEM", strings.TrimRight(b.String(), "\n"), "a: assess risk │ e: edit │ d: delete │ esc: back")
}

func writeBullets(b *strings.Builder, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for _, line := range lines {
		fmt.Fprintf(b, "  • %s\n", line)
	}
}
