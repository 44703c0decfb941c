// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the client.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// AI holds the document analyzer settings.
	AI AI `envPrefix:"AI_"`

	// Adapter holds the client's view of the REST API. Its variables are
	// not prefixed so that API_URL works as in other deployments.
	Adapter Adapter

	// Workers holds schedules of background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Telemetry holds tracing settings. Exporter endpoints are read by the
	// OpenTelemetry SDK from the standard OTEL_* variables.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Env: CONFIG
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the PostgreSQL connection settings (server).
	DB DB `envPrefix:"DB_"`

	// Session holds the local SQLite session store settings (client).
	Session Session `envPrefix:"SESSION_"`

	// Files holds the local directory used for document content when no
	// object storage is configured.
	Files Files `envPrefix:"FILES_"`

	// Objects holds the S3 compatible object storage settings.
	Objects Objects `envPrefix:"OBJECTS_"`

	// Cache holds the dashboard stats cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Session holds the client session database settings.
type Session struct {
	// DSN is the SQLite database path.
	// Env: STORAGE_SESSION_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system settings for document contents.
type Files struct {
	// DocumentsDir is the directory where document contents are stored.
	// Env: STORAGE_FILES_DOCUMENTS_DIR
	DocumentsDir string `env:"DOCUMENTS_DIR"`
}

// Objects holds MinIO / S3 settings. Object storage is used when Endpoint
// is set.
type Objects struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET"`
	UseSSL    bool   `env:"USE_SSL"`
}

// Cache holds the stats cache settings. Redis is used when RedisAddress is
// set, an in-process cache otherwise.
type Cache struct {
	RedisAddress  string        `env:"REDIS_ADDRESS"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"`
	StatsTTL      time.Duration `env:"STATS_TTL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health server
	// listens. Empty disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit limits /api/ai requests per user.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

// RateLimit configures a token bucket.
type RateLimit struct {
	RPS   float64 `env:"RPS"`
	Burst int     `env:"BURST"`
}

// AI holds the analyzer settings. The Gemini analyzer is used when APIKey is
// set, the keyword analyzer otherwise.
type AI struct {
	// Env: AI_GEMINI_API_KEY
	APIKey string `env:"GEMINI_API_KEY"`
	// Env: AI_MODEL
	Model string `env:"MODEL"`
	// Env: AI_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Adapter holds the client's REST API settings.
type Adapter struct {
	// APIURL is the server origin; requests go to APIURL + "/api".
	// Env: API_URL
	APIURL string `env:"API_URL"`

	// RequestTimeout is the timeout of every outbound request.
	// Env: API_TIMEOUT
	RequestTimeout time.Duration `env:"API_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// OverdueSchedule is the cron spec of the overdue sweep (server).
	// Env: WORKERS_OVERDUE_SCHEDULE
	OverdueSchedule string `env:"OVERDUE_SCHEDULE"`

	// SessionRefreshInterval is how often the client refreshes its token.
	// Env: WORKERS_SESSION_REFRESH_INTERVAL
	SessionRefreshInterval time.Duration `env:"SESSION_REFRESH_INTERVAL"`
}

// Telemetry holds tracing settings.
type Telemetry struct {
	// ServiceName is reported as service.name.
	ServiceName string `env:"SERVICE_NAME"`
	// Exporter is one of "otlp-grpc", "otlp-http" or "none".
	Exporter string `env:"EXPORTER"`
}

// GetServerConfig loads, merges, and validates the server configuration.
// args are the command-line arguments without the program name.
func GetServerConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withFile().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}
