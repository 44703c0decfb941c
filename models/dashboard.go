// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DashboardStats holds the per-user counters shown on the dashboard.
type DashboardStats struct {
	TotalCompliance int64 `json:"totalCompliance"`
	TotalDocuments  int64 `json:"totalDocuments"`
	PendingItems    int64 `json:"pendingItems"`
	HighRiskItems   int64 `json:"highRiskItems"`
}

// ActivityType names an event recorded in the activity feed.
type ActivityType string

const (
	ActivityComplianceCreated ActivityType = "compliance_created"
	ActivityComplianceUpdated ActivityType = "compliance_updated"
	ActivityComplianceDeleted ActivityType = "compliance_deleted"
	ActivityComplianceOverdue ActivityType = "compliance_overdue"
	ActivityDocumentCreated   ActivityType = "document_created"
	ActivityDocumentAnalyzed  ActivityType = "document_analyzed"
	ActivityRiskAssessed      ActivityType = "risk_assessed"
)

// ActivityItem is an entry of the recent activity feed.
type ActivityItem struct {
	ID          string       `json:"id"`
	UserID      string       `json:"-"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Timestamp   time.Time    `json:"timestamp"`
}

// Activity feed limits.
const (
	DefaultActivityLimit = 10
	MaxActivityLimit     = 100
)

// Dashboard is everything the dashboard screen shows at once.
type Dashboard struct {
	Stats    DashboardStats
	Activity []ActivityItem
}
