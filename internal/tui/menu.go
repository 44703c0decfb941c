// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// menuEntry is a selectable line of a menu page.
type menuEntry struct {
	label string
	cmd   tea.Cmd
}

// menuList is the cursor logic shared by the menu and home pages.
type menuList struct {
	entries []menuEntry
	idx     int
}

func (l *menuList) update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.up):
		if l.idx > 0 {
			l.idx--
		}
	case key.Matches(msg, keys.down):
		if l.idx < len(l.entries)-1 {
			l.idx++
		}
	case key.Matches(msg, keys.enter):
		return l.entries[l.idx].cmd
	}
	return nil
}

func (l *menuList) view(b *strings.Builder) {
	for i, entry := range l.entries {
		cursor := " "
		if i == l.idx {
			cursor = ">"
		}
		fmt.Fprintf(b, "%s %d  %s\n", cursor, i+1, entry.label)
	}
}

// MenuModel is the start page of a signed-out user.
type MenuModel struct {
	list   menuList
	status string
}

func newMenuModel() *MenuModel {
	return &MenuModel{
		list: menuList{entries: []menuEntry{
			{label: "Sign in", cmd: navigate(pageLogin, nil)},
			{label: "Create account", cmd: navigate(pageRegister, nil)},
			{label: "Quit", cmd: tea.Quit},
		}},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.status = msg.text
	case tea.KeyMsg:
		return m, m.list.update(msg)
	}
	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	b.WriteString("Compliance tracking and document analysis\n\n")
	m.list.view(&b)
	renderStatus(&b, m.status, "")

	return renderPage("PARSEGUARD", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
