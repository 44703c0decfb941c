// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/parse-guard/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Width(20)
	cardValueStyle = lipgloss.NewStyle().Bold(true)

	badgeStyle = lipgloss.NewStyle().Padding(0, 1)
)

var levelColors = map[string]lipgloss.Color{
	"low":         lipgloss.Color("2"),
	"medium":      lipgloss.Color("3"),
	"high":        lipgloss.Color("1"),
	"pending":     lipgloss.Color("3"),
	"in_progress": lipgloss.Color("4"),
	"completed":   lipgloss.Color("2"),
}

// badge renders value as a colored tag, e.g. "IN PROGRESS".
func badge(value string) string {
	if value == "" {
		return "-"
	}
	return colored(value, strings.ToUpper(strings.ReplaceAll(value, "_", " ")))
}

// colored renders label in the color of level.
func colored(level, label string) string {
	color, ok := levelColors[level]
	if !ok {
		return badgeStyle.Render(label)
	}
	return badgeStyle.Foreground(color).Render(label)
}

func statusBadge(s models.ComplianceStatus) string { return badge(string(s)) }
func priorityBadge(p models.Priority) string       { return badge(string(p)) }
func riskBadge(r models.RiskLevel) string          { return badge(string(r)) }
