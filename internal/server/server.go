// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/handler"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/workers"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    *workers.Workers

	logger *logger.Logger
}

// NewServer creates a server for every transport present in handlers. The
// workers may be nil.
func NewServer(handlers *handler.Handlers, workers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		workers: workers,
		logger:  logger,
	}

	if handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if handlers.GRPC != nil && cfg.GRPCAddress != "" {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, handler.ErrNoTransport
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	// bind every listener before serving so an occupied port fails fast
	var httpListener, grpcListener net.Listener
	var err error
	if s.httpServer != nil {
		if httpListener, err = s.httpServer.listen(); err != nil {
			return err
		}
	}
	if s.gRPCServer != nil {
		if grpcListener, err = s.gRPCServer.listen(); err != nil {
			if httpListener != nil {
				_ = httpListener.Close()
			}
			return err
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		group.Go(func() error { return s.httpServer.serve(httpListener) })
	}
	if s.gRPCServer != nil {
		group.Go(func() error { return s.gRPCServer.serve(grpcListener) })
	}
	if s.workers != nil {
		s.workers.RunNow()
		s.workers.Start()
	}

	group.Go(func() error {
		<-groupCtx.Done()
		s.logger.Info().Msg("stopping server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.httpServer != nil {
		errs = append(errs, s.httpServer.shutdown(ctx))
	}
	if s.gRPCServer != nil {
		errs = append(errs, s.gRPCServer.shutdown(ctx))
	}
	if s.workers != nil {
		errs = append(errs, s.workers.Stop(ctx))
	}

	return errors.Join(errs...)
}
