// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/charmbracelet/glamour"
)

const markdownWrap = 80

// AnalysisMarkdown formats an analysis result as Markdown. Suggested items
// are numbered so they can be picked by key.
func AnalysisMarkdown(a models.DocumentAnalysis) string {
	var b strings.Builder

	b.WriteString("## Summary\n\n")
	b.WriteString(valueOrDash(a.Summary))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "**Confidence:** %s\n\n", service.FormatConfidence(a.Confidence))

	writeMarkdownList(&b, "Compliance topics", a.ComplianceTopics)
	writeMarkdownList(&b, "Risk indicators", a.RiskIndicators)

	if len(a.SuggestedItems) > 0 {
		b.WriteString("## Suggested items\n\n")
		for i, item := range a.SuggestedItems {
			fmt.Fprintf(&b, "%d. **%s** (%s risk)", i+1, item.Title, item.RiskLevel)
			if item.Description != "" {
				fmt.Fprintf(&b, ": %s", item.Description)
			}
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeMarkdownList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

// RenderMarkdown renders md for the terminal. The raw text is returned if
// rendering fails.
func RenderMarkdown(md string, width int) string {
	if width <= 0 {
		width = markdownWrap
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
