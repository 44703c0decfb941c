// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"

	"github.com/MKhiriev/parse-guard/cmd/client/commands"
	"github.com/MKhiriev/parse-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := commands.Execute(buildInfo); err != nil {
		os.Exit(1)
	}
}
