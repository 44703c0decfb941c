// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values applied when no source sets a field.
const (
	DefaultHTTPAddress            = "localhost:8000"
	DefaultAPIURL                 = "http://localhost:8000"
	DefaultAPITimeout             = 30 * time.Second
	DefaultRequestTimeout         = 30 * time.Second
	DefaultTokenIssuer            = "parse-guard"
	DefaultTokenDuration          = 7 * 24 * time.Hour
	DefaultStatsTTL               = 30 * time.Second
	DefaultRateLimitRPS           = 2.0
	DefaultRateLimitBurst         = 5
	DefaultAIModel                = "gemini-2.5-flash"
	DefaultAITimeout              = 60 * time.Second
	DefaultOverdueSchedule        = "@every 1h"
	DefaultSessionRefreshInterval = 30 * time.Minute
	DefaultServiceName            = "parse-guard"
	DefaultExporter               = ExporterNone
	DefaultDocumentsDir           = "documents"
	DefaultBucket                 = "documents"
)

// Supported trace exporters.
const (
	ExporterNone     = "none"
	ExporterOTLPGRPC = "otlp-grpc"
	ExporterOTLPHTTP = "otlp-http"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       "dev",
		},
		Storage: Storage{
			Session: Session{DSN: defaultSessionDSN()},
			Files:   Files{DocumentsDir: DefaultDocumentsDir},
			Objects: Objects{Bucket: DefaultBucket},
			Cache:   Cache{StatsTTL: DefaultStatsTTL},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			RateLimit: RateLimit{
				RPS:   DefaultRateLimitRPS,
				Burst: DefaultRateLimitBurst,
			},
		},
		AI: AI{
			Model:   DefaultAIModel,
			Timeout: DefaultAITimeout,
		},
		Adapter: Adapter{
			APIURL:         DefaultAPIURL,
			RequestTimeout: DefaultAPITimeout,
		},
		Workers: Workers{
			OverdueSchedule:        DefaultOverdueSchedule,
			SessionRefreshInterval: DefaultSessionRefreshInterval,
		},
		Telemetry: Telemetry{
			ServiceName: DefaultServiceName,
			Exporter:    DefaultExporter,
		},
	}
}

// defaultSessionDSN places the session database in the user config
// directory, next to the binary when that is unavailable.
func defaultSessionDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "parse-guard-session.db"
	}
	return filepath.Join(dir, "parse-guard", "session.db")
}
