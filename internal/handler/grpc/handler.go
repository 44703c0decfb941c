// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard grpc.health.v1 service so that
// orchestrators can probe the server without going through the REST API.
package grpc

import (
	"context"
	"sync"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the named health entry reported next to the overall ("")
// server status.
const ServiceName = "parseguard.API"

// Pinger is satisfied by the store's database handle.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It owns the health server and flips its status according to the result
// of the last storage ping. A handler instance is created once at startup
// and shared by the gRPC server and the storage health job.
type Handler struct {
	health *health.Server
	pinger Pinger

	mu      sync.Mutex
	serving bool

	logger *logger.Logger
}

// NewHandler returns a handler reporting NOT_SERVING until the first
// successful [Handler.CheckStorage].
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		pinger: pinger,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// CheckStorage pings the database and updates the health status. It
// returns the ping error, if any.
func (h *Handler) CheckStorage(ctx context.Context) error {
	err := h.pinger.PingContext(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()

	switch {
	case err != nil && h.serving:
		h.logger.Err(err).Msg("storage unreachable, reporting NOT_SERVING")
		h.serving = false
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	case err == nil && !h.serving:
		h.logger.Info().Msg("storage reachable, reporting SERVING")
		h.serving = true
		h.setStatus(healthpb.HealthCheckResponse_SERVING)
	}

	return err
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
