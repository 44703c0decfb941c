// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/parse-guard/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := fmt.Sprintf("%s %s\n%s %s\n%s %s",
		cardValueStyle.Render("Version"), info.BuildVersion(),
		cardValueStyle.Render("Built  "), info.BuildDate(),
		cardValueStyle.Render("Commit "), info.BuildCommit(),
	)
	return renderPage("ABOUT PARSEGUARD", body, "esc: back")
}
