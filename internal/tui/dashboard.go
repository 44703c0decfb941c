// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/parse-guard/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardModel shows the four stat cards and the recent activity feed.
type DashboardModel struct {
	env *env

	dashboard models.Dashboard
	loading   bool
	spinner   spinner.Model
	errMsg    string
}

func newDashboardModel(e *env) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &DashboardModel{env: e, spinner: s, loading: true}
}

func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m *DashboardModel) load() tea.Cmd {
	ctx, svc := m.env.ctx, m.env.services.DashboardService
	return func() tea.Msg {
		dashboard, err := svc.Load(ctx)
		return dashboardLoadedMsg{dashboard: dashboard, err: err}
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.errMsg = humanizeError(msg.err)
		if msg.err == nil {
			m.dashboard = msg.dashboard
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageHome, nil)
		case key.Matches(msg, keys.reload):
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.load())
		}
	}
	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
		return renderPage("DASHBOARD", b.String(), "esc: back")
	}

	stats := m.dashboard.Stats
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Compliance items", stats.TotalCompliance),
		statCard("Documents", stats.TotalDocuments),
		statCard("Pending", stats.PendingItems),
		statCard("High risk", stats.HighRiskItems),
	))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Recent activity"))
	b.WriteString("\n")
	if len(m.dashboard.Activity) == 0 {
		b.WriteString(helpStyle.Render("No activity yet"))
		b.WriteString("\n")
	}
	for _, item := range m.dashboard.Activity {
		fmt.Fprintf(&b, "%s  %-40s %s\n",
			item.Timestamp.Local().Format("2006-01-02 15:04"),
			fitText(item.Title, 40),
			helpStyle.Render(fitText(item.Description, 40)),
		)
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), "r: reload │ esc: back")
}

func statCard(label string, value int64) string {
	return cardStyle.Render(helpStyle.Render(label) + "\n" + cardValueStyle.Render(strconv.FormatInt(value, 10)))
}
