// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// HomeModel is the main menu of a signed-in user.
type HomeModel struct {
	env    *env
	list   menuList
	status string
}

func newHomeModel(e *env) *HomeModel {
	return &HomeModel{
		env: e,
		list: menuList{entries: []menuEntry{
			{label: "Dashboard", cmd: navigate(pageDashboard, nil)},
			{label: "Compliance items", cmd: navigate(pageCompliance, nil)},
			{label: "Document analyzer", cmd: navigate(pageAnalyzer, nil)},
			{label: "Sign out", cmd: func() tea.Msg { return logoutMsg{} }},
		}},
	}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.status = msg.text
	case tea.KeyMsg:
		return m, m.list.update(msg)
	}
	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder
	if m.env.session != nil {
		b.WriteString("Signed in as ")
		b.WriteString(titleStyle.Render(m.env.session.User.DisplayName()))
		b.WriteString("\n\n")
	}
	m.list.view(&b)
	renderStatus(&b, m.status, "")

	return renderPage("HOME", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate")
}
