// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ComplianceStatus is the workflow state of a compliance item.
type ComplianceStatus string

const (
	StatusPending    ComplianceStatus = "pending"
	StatusInProgress ComplianceStatus = "in_progress"
	StatusCompleted  ComplianceStatus = "completed"
)

// Valid reports whether s is a known status.
func (s ComplianceStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority is the user-assigned urgency of a compliance item.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// RiskLevel is the assessed risk of an item or a suggestion.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Valid reports whether r is a known risk level.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// ComplianceItem is a single tracked compliance obligation.
type ComplianceItem struct {
	ID          string           `json:"id"`
	UserID      string           `json:"userId"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Status      ComplianceStatus `json:"status"`
	Priority    Priority         `json:"priority"`
	RiskLevel   RiskLevel        `json:"risk_level,omitempty"`
	DueDate     *time.Time       `json:"dueDate,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// IsOverdue reports whether the item is still open after its due date.
func (c ComplianceItem) IsOverdue(now time.Time) bool {
	return c.DueDate != nil && c.Status != StatusCompleted && c.DueDate.Before(now)
}

// CreateComplianceDto is the body of POST /api/compliance.
type CreateComplianceDto struct {
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Status      ComplianceStatus `json:"status,omitempty"`
	Priority    Priority         `json:"priority,omitempty"`
	RiskLevel   RiskLevel        `json:"risk_level,omitempty"`
	DueDate     *time.Time       `json:"dueDate,omitempty"`
}

// UpdateComplianceDto is the body of PUT /api/compliance/{id}.
// Only non-nil fields are updated. The optional risk level and due date
// are unset with ClearRiskLevel and ClearDueDate, since a missing field
// means "keep".
type UpdateComplianceDto struct {
	Title          *string           `json:"title,omitempty"`
	Description    *string           `json:"description,omitempty"`
	Status         *ComplianceStatus `json:"status,omitempty"`
	Priority       *Priority         `json:"priority,omitempty"`
	RiskLevel      *RiskLevel        `json:"risk_level,omitempty"`
	DueDate        *time.Time        `json:"dueDate,omitempty"`
	ClearRiskLevel bool              `json:"clearRiskLevel,omitempty"`
	ClearDueDate   bool              `json:"clearDueDate,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (d UpdateComplianceDto) IsEmpty() bool {
	return d.Title == nil && d.Description == nil && d.Status == nil &&
		d.Priority == nil && d.RiskLevel == nil && d.DueDate == nil &&
		!d.ClearRiskLevel && !d.ClearDueDate
}

// ComplianceFilter narrows the compliance list.
type ComplianceFilter struct {
	Status   ComplianceStatus `json:"status,omitempty"`
	Priority Priority         `json:"priority,omitempty"`
}
