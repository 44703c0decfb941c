// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/parse-guard/models"

// NavigateTo switches the active page. Payload, if set, is passed to the
// new page's Update right after its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// noticeMsg is a one-line status shown on the receiving page.
type noticeMsg struct {
	text string
}

type authResultMsg struct {
	session models.Session
	err     error
}

type sessionExpiredMsg struct{}

type logoutMsg struct{}

type dashboardLoadedMsg struct {
	dashboard models.Dashboard
	err       error
}

type complianceLoadedMsg struct {
	items []models.ComplianceItem
	err   error
}

// openComplianceMsg carries the selected item to the detail and form
// pages. A nil item on the form page means "create".
type openComplianceMsg struct {
	item   *models.ComplianceItem
	assess bool
}

type complianceSavedMsg struct {
	item    models.ComplianceItem
	created bool
	err     error
}

type complianceDeletedMsg struct {
	title string
	err   error
}

type riskAssessedMsg struct {
	assessment models.RiskAssessment
	err        error
}

type analysisDoneMsg struct {
	analysis models.DocumentAnalysis
	err      error
}

type documentSavedMsg struct {
	document models.Document
	err      error
}

type suggestionSavedMsg struct {
	item models.ComplianceItem
	err  error
}

type copiedMsg struct {
	err error
}
