package tui

import (
	"testing"
	"time"

	"github.com/MKhiriev/parse-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func complianceItems() []models.ComplianceItem {
	due := testNow.Add(-24 * time.Hour)
	return []models.ComplianceItem{
		{ID: "c-1", Title: "Renew ISO 27001", Status: models.StatusPending, Priority: models.PriorityHigh, DueDate: &due},
		{ID: "c-2", Title: "Vendor review", Status: models.StatusCompleted, Priority: models.PriorityLow},
	}
}

func TestComplianceListModel_View(t *testing.T) {
	d := newTestDeps(t)
	m := newComplianceListModel(d.env)

	m.Update(complianceLoadedMsg{items: complianceItems()})

	view := m.View()
	assert.Contains(t, view, "Renew ISO 27001")
	assert.Contains(t, view, "overdue")
	assert.Contains(t, view, "ALL")
}

func TestComplianceListModel_Filters(t *testing.T) {
	d := newTestDeps(t)
	m := newComplianceListModel(d.env)

	d.adapter.EXPECT().
		ListCompliance(gomock.Any(), models.ComplianceFilter{Status: models.StatusPending}).
		Return(nil, nil)

	_, cmd := m.Update(keyRunes("f"))
	require.NotNil(t, cmd)
	cmd()
}

func TestComplianceListModel_DeleteWithConfirmation(t *testing.T) {
	d := newTestDeps(t)
	m := newComplianceListModel(d.env)
	m.Update(complianceLoadedMsg{items: complianceItems()})

	_, cmd := m.Update(keyRunes("d"))
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), `Delete "Renew ISO 27001"? y/n`)

	_, cmd = m.Update(keyRunes("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.confirming)

	m.Update(keyRunes("d"))
	_, cmd = m.Update(keyRunes("y"))
	require.NotNil(t, cmd)

	d.adapter.EXPECT().DeleteCompliance(gomock.Any(), "c-1").Return(nil)
	msg, ok := cmd().(complianceDeletedMsg)
	require.True(t, ok)
	assert.NoError(t, msg.err)

	d.adapter.EXPECT().ListCompliance(gomock.Any(), models.ComplianceFilter{}).Return(nil, nil)
	_, reload := m.Update(msg)
	require.NotNil(t, reload)
	reload()
	assert.Contains(t, m.View(), `Deleted "Renew ISO 27001"`)
}

func TestComplianceListModel_OpenSelected(t *testing.T) {
	d := newTestDeps(t)
	m := newComplianceListModel(d.env)
	m.Update(complianceLoadedMsg{items: complianceItems()})
	m.Update(keyRunes("j"))

	_, cmd := m.Update(keyRunes("a"))
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageComplianceDetail, nav.Page)
	open := nav.Payload.(openComplianceMsg)
	assert.Equal(t, "c-2", open.item.ID)
	assert.True(t, open.assess)
}

func TestComplianceDetailModel_AssessRisk(t *testing.T) {
	d := newTestDeps(t)
	m := newComplianceDetailModel(d.env)
	item := complianceItems()[0]

	d.adapter.EXPECT().
		AssessRisk(gomock.Any(), models.RiskAssessmentRequest{Title: item.Title}).
		Return(models.RiskAssessment{RiskLevel: models.RiskHigh, RiskScore: 0.82, Factors: []string{"Overdue certification"}}, nil)

	_, cmd := m.Update(openComplianceMsg{item: &item, assess: true})
	require.NotNil(t, cmd)
	m.Update(cmd())

	view := m.View()
	assert.Contains(t, view, "82.0%")
	assert.Contains(t, view, "Overdue certification")
}

func TestComplianceFormModel_Create(t *testing.T) {
	d := newTestDeps(t)
	m := newComplianceFormModel(d.env)
	m.Update(openComplianceMsg{})

	m.form.field(fieldTitle).input.SetValue("  Privacy notice ")
	m.form.field(fieldDueDate).input.SetValue("2026-04-01")
	m.form.field(fieldPriority).cycle(1)

	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	d.adapter.EXPECT().CreateCompliance(gomock.Any(), models.CreateComplianceDto{
		Title:     "Privacy notice",
		Status:    models.StatusPending,
		Priority:  models.PriorityHigh,
		RiskLevel: models.RiskLow,
		DueDate:   &due,
	}).Return(models.ComplianceItem{ID: "c-9", Title: "Privacy notice"}, nil)

	_, cmd := m.Update(keyCtrlS)
	require.NotNil(t, cmd)

	_, next := m.Update(cmd())
	require.NotNil(t, next)
	nav := next().(NavigateTo)
	assert.Equal(t, pageCompliance, nav.Page)
	assert.Equal(t, noticeMsg{text: `Created "Privacy notice"`}, nav.Payload)
}

func TestComplianceFormModel_Validation(t *testing.T) {
	d := newTestDeps(t)
	m := newComplianceFormModel(d.env)
	m.Init()

	m.form.field(fieldDueDate).input.SetValue("01/04/2026")
	_, cmd := m.Update(keyCtrlS)

	assert.Nil(t, cmd)
	view := m.View()
	assert.Contains(t, view, "Title is required")
	assert.Contains(t, view, "Due date must look like 2006-01-02")
}

func TestUpdateDto(t *testing.T) {
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	orig := models.ComplianceItem{
		Title:     "Vendor review",
		Status:    models.StatusPending,
		Priority:  models.PriorityLow,
		RiskLevel: models.RiskLow,
		DueDate:   &due,
	}

	t.Run("unchanged", func(t *testing.T) {
		sameDue := due.Add(3 * time.Hour)
		dto := updateDto(orig, orig.Title, "", orig.Status, orig.Priority, orig.RiskLevel, &sameDue)
		assert.True(t, dto.IsEmpty())
	})

	t.Run("only changed fields", func(t *testing.T) {
		dto := updateDto(orig, orig.Title, "", models.StatusCompleted, orig.Priority, models.RiskHigh, nil)

		assert.Nil(t, dto.Title)
		assert.Nil(t, dto.Priority)
		assert.Nil(t, dto.DueDate)
		require.NotNil(t, dto.Status)
		assert.Equal(t, models.StatusCompleted, *dto.Status)
		require.NotNil(t, dto.RiskLevel)
		assert.Equal(t, models.RiskHigh, *dto.RiskLevel)
	})

	t.Run("emptied optional fields are cleared", func(t *testing.T) {
		dto := updateDto(orig, orig.Title, "", orig.Status, orig.Priority, "", nil)

		assert.False(t, dto.IsEmpty())
		assert.Nil(t, dto.RiskLevel)
		assert.Nil(t, dto.DueDate)
		assert.True(t, dto.ClearRiskLevel)
		assert.True(t, dto.ClearDueDate)
	})

	t.Run("nothing to clear", func(t *testing.T) {
		bare := models.ComplianceItem{Title: "Vendor review", Status: models.StatusPending, Priority: models.PriorityLow}
		dto := updateDto(bare, bare.Title, "", bare.Status, bare.Priority, "", nil)

		assert.True(t, dto.IsEmpty())
	})
}
