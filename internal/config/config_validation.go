// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"
)

// validate checks the values that are set regardless of the binary that
// uses them.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Telemetry.Exporter {
	case "", ExporterNone, ExporterOTLPGRPC, ExporterOTLPHTTP:
	default:
		return fmt.Errorf("%w: unknown exporter %q", ErrInvalidTelemetryConfigs, cfg.Telemetry.Exporter)
	}

	if cfg.Server.RateLimit.RPS < 0 || cfg.Server.RateLimit.Burst < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidServerConfigs)
	}

	if cfg.Workers.OverdueSchedule != "" {
		if _, err := cron.ParseStandard(cfg.Workers.OverdueSchedule); err != nil {
			return fmt.Errorf("%w: overdue schedule: %w", ErrInvalidWorkerConfigs, err)
		}
	}

	return nil
}

// validateServer checks that everything the server needs at startup is
// present.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Objects.Endpoint != "" && cfg.Storage.Objects.Bucket == "" {
		return fmt.Errorf("%w: object storage bucket is empty", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Objects.Endpoint == "" && cfg.Storage.Files.DocumentsDir == "" {
		return fmt.Errorf("%w: no document storage configured", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.OverdueSchedule == "" {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.SessionDSN == "" || strings.Contains(cfg.Storage.SessionDSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.APIURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	u, err := url.Parse(cfg.Adapter.APIURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: invalid API URL %q", ErrInvalidAdapterConfigs, cfg.Adapter.APIURL)
	}

	if cfg.Workers.SessionRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
