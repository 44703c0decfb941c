// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package telemetry wires OpenTelemetry tracing and Prometheus metrics for
// the server. Tracing is configured from the standard OTEL_* environment
// variables plus [config.Telemetry]; metrics live on a private registry that
// the HTTP layer exposes at /metrics.
package telemetry
