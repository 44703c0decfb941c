// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/internal/telemetry"
)

// Handler serves the REST API under /api and the Prometheus endpoint.
type Handler struct {
	services *service.Services
	metrics  *telemetry.Metrics
	limiter  *userRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *telemetry.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	rps, burst := cfg.RateLimit.RPS, cfg.RateLimit.Burst
	if rps <= 0 {
		rps = config.DefaultRateLimitRPS
	}
	if burst <= 0 {
		burst = config.DefaultRateLimitBurst
	}

	logger.Info().Float64("ai_rps", rps).Int("ai_burst", burst).Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		limiter:  newUserRateLimiter(rps, burst),
		logger:   logger,
	}
}
