// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/parse-guard/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	statusFilters   = []models.ComplianceStatus{"", models.StatusPending, models.StatusInProgress, models.StatusCompleted}
	priorityFilters = []models.Priority{"", models.PriorityLow, models.PriorityMedium, models.PriorityHigh}
)

// ComplianceListModel lists the user's compliance items.
type ComplianceListModel struct {
	env *env

	items       []models.ComplianceItem
	idx         int
	statusIdx   int
	priorityIdx int

	loading    bool
	confirming bool
	status     string
	errMsg     string
}

func newComplianceListModel(e *env) *ComplianceListModel {
	return &ComplianceListModel{env: e, loading: true}
}

func (m *ComplianceListModel) Init() tea.Cmd {
	return m.load()
}

func (m *ComplianceListModel) filter() models.ComplianceFilter {
	return models.ComplianceFilter{
		Status:   statusFilters[m.statusIdx],
		Priority: priorityFilters[m.priorityIdx],
	}
}

func (m *ComplianceListModel) load() tea.Cmd {
	ctx, svc, filter := m.env.ctx, m.env.services.ComplianceService, m.filter()
	return func() tea.Msg {
		items, err := svc.List(ctx, filter)
		return complianceLoadedMsg{items: items, err: err}
	}
}

func (m *ComplianceListModel) current() (models.ComplianceItem, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.ComplianceItem{}, false
	}
	return m.items[m.idx], true
}

func (m *ComplianceListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.status = msg.text
		return m, nil
	case complianceLoadedMsg:
		m.loading = false
		m.errMsg = humanizeError(msg.err)
		if msg.err == nil {
			m.items = msg.items
			m.idx = min(m.idx, max(len(m.items)-1, 0))
		}
		return m, nil
	case complianceDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Deleted %q", msg.title)
		m.loading = true
		return m, m.load()
	case tea.KeyMsg:
		if m.confirming {
			return m, m.updateConfirm(msg)
		}
		return m, m.updateKeys(msg)
	}
	return m, nil
}

func (m *ComplianceListModel) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirming = false
		item, ok := m.current()
		if !ok {
			return nil
		}
		return deleteCompliance(m.env, item)
	case key.Matches(msg, keys.no):
		m.confirming = false
	}
	return nil
}

func (m *ComplianceListModel) updateKeys(msg tea.KeyMsg) tea.Cmd {
	item, selected := m.current()

	switch {
	case key.Matches(msg, keys.esc):
		return navigate(pageHome, nil)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m.load()
	case key.Matches(msg, keys.filter):
		m.statusIdx = (m.statusIdx + 1) % len(statusFilters)
		m.loading = true
		return m.load()
	case key.Matches(msg, keys.prio):
		m.priorityIdx = (m.priorityIdx + 1) % len(priorityFilters)
		m.loading = true
		return m.load()
	case key.Matches(msg, keys.newItem):
		return navigate(pageComplianceForm, openComplianceMsg{})
	case !selected:
		return nil
	case key.Matches(msg, keys.enter):
		return navigate(pageComplianceDetail, openComplianceMsg{item: &item})
	case key.Matches(msg, keys.assess):
		return navigate(pageComplianceDetail, openComplianceMsg{item: &item, assess: true})
	case key.Matches(msg, keys.edit):
		return navigate(pageComplianceForm, openComplianceMsg{item: &item})
	case key.Matches(msg, keys.delete):
		m.confirming = true
		m.status = ""
	}
	return nil
}

func (m *ComplianceListModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Filter: status %s │ priority %s\n\n",
		badge(valueOrAll(string(statusFilters[m.statusIdx]))),
		badge(valueOrAll(string(priorityFilters[m.priorityIdx]))),
	)

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No compliance items\n")
	default:
		fmt.Fprintf(&b, "  %-36s %-13s %-10s %s\n", "Title", "Status", "Priority", "Due")
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			due := formatDue(item.DueDate)
			if item.IsOverdue(m.env.now()) {
				due = errorStyle.Render(due + " overdue")
			}
			fmt.Fprintf(&b, "%s %-36s %-13s %-10s %s\n",
				cursor,
				fitText(item.Title, 36),
				statusBadge(item.Status),
				priorityBadge(item.Priority),
				due,
			)
		}
	}

	if m.confirming {
		if item, ok := m.current(); ok {
			fmt.Fprintf(&b, "\n%s\n", warnStyle.Render(fmt.Sprintf("Delete %q? y/n", item.Title)))
		}
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("COMPLIANCE", strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ e: edit │ d: delete │ a: assess risk │ f/p: filter │ r: reload │ esc: back")
}

func valueOrAll(v string) string {
	if v == "" {
		return "all"
	}
	return v
}

func deleteCompliance(e *env, item models.ComplianceItem) tea.Cmd {
	ctx, svc := e.ctx, e.services.ComplianceService
	return func() tea.Msg {
		return complianceDeletedMsg{title: item.Title, err: svc.Delete(ctx, item.ID)}
	}
}
