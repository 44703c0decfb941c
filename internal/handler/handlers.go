// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"errors"

	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/handler/grpc"
	"github.com/MKhiriev/parse-guard/internal/handler/http"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/internal/telemetry"
)

// ErrNoTransport means the server config enables neither HTTP nor gRPC.
var ErrNoTransport = errors.New("no transport configured: set an HTTP or gRPC address")

// Handlers holds the transport handlers enabled by the server config. A
// handler is nil when its address is empty.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, pinger grpc.Pinger, metrics *telemetry.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, metrics, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, ErrNoTransport
	}

	return handlers, nil
}
