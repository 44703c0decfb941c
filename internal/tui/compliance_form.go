// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/parse-guard/internal/validators"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldStatus      = "status"
	fieldPriority    = "priority"
	fieldRiskLevel   = "risk_level"
	fieldDueDate     = "dueDate"
)

// ComplianceFormModel creates a new item or edits an existing one.
type ComplianceFormModel struct {
	env *env

	original *models.ComplianceItem
	form     form
	saving   bool
	errMsg   string
}

func newComplianceFormModel(e *env) *ComplianceFormModel {
	m := &ComplianceFormModel{env: e}
	m.reset(nil)
	return m
}

// reset fills the fields from item, or with defaults when item is nil.
func (m *ComplianceFormModel) reset(item *models.ComplianceItem) {
	m.original = item

	values := models.ComplianceItem{
		Status:    models.StatusPending,
		Priority:  models.PriorityMedium,
		RiskLevel: models.RiskLow,
	}
	if item != nil {
		values = *item
	}

	title := newTextField(fieldTitle, "Title", "Annual SOC 2 audit", 200)
	title.input.SetValue(values.Title)
	description := newTextField(fieldDescription, "Description", "optional", 2000)
	description.input.SetValue(values.Description)
	due := newTextField(fieldDueDate, "Due date", dateLayout, len(dateLayout))
	if values.DueDate != nil {
		due.input.SetValue(values.DueDate.Format(dateLayout))
	}

	m.form = form{fields: []formField{
		title,
		description,
		newChoiceField(fieldStatus, "Status", []string{string(models.StatusPending), string(models.StatusInProgress), string(models.StatusCompleted)}, string(values.Status)),
		newChoiceField(fieldPriority, "Priority", []string{string(models.PriorityLow), string(models.PriorityMedium), string(models.PriorityHigh)}, string(values.Priority)),
		newChoiceField(fieldRiskLevel, "Risk level", []string{"", string(models.RiskLow), string(models.RiskMedium), string(models.RiskHigh)}, string(values.RiskLevel)),
		due,
	}}
}

func (m *ComplianceFormModel) Init() tea.Cmd {
	return m.form.init()
}

func (m *ComplianceFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openComplianceMsg:
		m.reset(msg.item)
		return m, m.form.init()
	case complianceSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		verb := "Updated"
		if msg.created {
			verb = "Created"
		}
		return m, navigate(pageCompliance, noticeMsg{text: fmt.Sprintf("%s %q", verb, msg.item.Title)})
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageCompliance, nil)
		case key.Matches(msg, keys.save):
			return m, m.submit()
		case key.Matches(msg, keys.enter):
			if m.form.focus == len(m.form.fields)-1 {
				return m, m.submit()
			}
			return m, m.form.move(1)
		case key.Matches(msg, keys.tab):
			return m, m.form.move(1)
		case key.Matches(msg, keys.backtab):
			return m, m.form.move(-1)
		}
	}

	return m, m.form.update(msg)
}

// fields reads and validates the form.
func (m *ComplianceFormModel) fields() (title, description string, due *time.Time, ok bool) {
	m.form.errs = validators.FormErrors{}

	title = strings.TrimSpace(m.form.value(fieldTitle))
	if res := validators.ValidateRequired(title, "Title"); !res.Valid {
		m.form.errs[fieldTitle] = res.Message
	}
	description = strings.TrimSpace(m.form.value(fieldDescription))

	if raw := strings.TrimSpace(m.form.value(fieldDueDate)); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			m.form.errs[fieldDueDate] = "Due date must look like " + dateLayout
		} else {
			due = &parsed
		}
	}

	return title, description, due, !m.form.errs.HasErrors()
}

func (m *ComplianceFormModel) submit() tea.Cmd {
	if m.saving {
		return nil
	}

	title, description, due, ok := m.fields()
	if !ok {
		return nil
	}

	status := models.ComplianceStatus(m.form.value(fieldStatus))
	priority := models.Priority(m.form.value(fieldPriority))
	risk := models.RiskLevel(m.form.value(fieldRiskLevel))

	ctx, svc := m.env.ctx, m.env.services.ComplianceService

	if m.original == nil {
		dto := models.CreateComplianceDto{
			Title:       title,
			Description: description,
			Status:      status,
			Priority:    priority,
			RiskLevel:   risk,
			DueDate:     due,
		}
		m.saving = true
		return func() tea.Msg {
			item, err := svc.Create(ctx, dto)
			return complianceSavedMsg{item: item, created: true, err: err}
		}
	}

	dto := updateDto(*m.original, title, description, status, priority, risk, due)
	if dto.IsEmpty() {
		return navigate(pageCompliance, noticeMsg{text: "Nothing to update"})
	}

	m.saving = true
	id := m.original.ID
	return func() tea.Msg {
		item, err := svc.Update(ctx, id, dto)
		return complianceSavedMsg{item: item, err: err}
	}
}

// updateDto carries only the fields that differ from orig. An emptied risk
// level or due date is sent as a clear.
func updateDto(orig models.ComplianceItem, title, description string, status models.ComplianceStatus,
	priority models.Priority, risk models.RiskLevel, due *time.Time) models.UpdateComplianceDto {
	var dto models.UpdateComplianceDto

	if title != orig.Title {
		dto.Title = &title
	}
	if description != orig.Description {
		dto.Description = &description
	}
	if status != orig.Status {
		dto.Status = &status
	}
	if priority != orig.Priority {
		dto.Priority = &priority
	}
	switch {
	case risk == orig.RiskLevel:
	case risk == "":
		dto.ClearRiskLevel = true
	default:
		dto.RiskLevel = &risk
	}
	switch {
	case due == nil:
		dto.ClearDueDate = orig.DueDate != nil
	case orig.DueDate == nil || !sameDay(*due, *orig.DueDate):
		dto.DueDate = due
	}

	return dto
}

func sameDay(a, b time.Time) bool {
	return a.Format(dateLayout) == b.Format(dateLayout)
}

func (m *ComplianceFormModel) View() string {
	title := "NEW COMPLIANCE ITEM"
	if m.original != nil {
		title = "EDIT COMPLIANCE ITEM"
	}

	var b strings.Builder
	m.form.view(&b)
	if m.saving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: next field │ ←/→: change choice │ ctrl+s: save │ esc: cancel")
}
