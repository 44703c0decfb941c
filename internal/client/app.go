// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/parse-guard/internal/adapter"
	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/internal/store"
)

type App struct {
	services *service.ClientServices
	adapter  adapter.ServerAdapter

	expired chan struct{}
	close   func() error

	logger *logger.Logger
}

// Open builds the client from cfg: the HTTP adapter and the SQLite session
// store.
func Open(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating server adapter: %w", err)
	}

	sessions, closeSessions, err := store.NewClientSessionRepository(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating session store: %w", err)
	}

	app := New(serverAdapter, sessions, logger)
	app.close = closeSessions

	return app, nil
}

// New wires the client services around an existing adapter and session
// store. A 401 on an authenticated call logs the client out.
func New(serverAdapter adapter.ServerAdapter, sessions store.SessionRepository, logger *logger.Logger) *App {
	app := &App{
		services: service.NewClientServices(serverAdapter, sessions, logger),
		adapter:  serverAdapter,
		expired:  make(chan struct{}, 1),
		close:    func() error { return nil },
		logger:   logger,
	}

	serverAdapter.OnUnauthorized(app.unauthorized)

	return app
}

func (a *App) Services() *service.ClientServices {
	return a.services
}

func (a *App) ServerVersion(ctx context.Context) (string, error) {
	return a.adapter.Version(ctx)
}

func (a *App) SessionExpired() <-chan struct{} {
	return a.expired
}

func (a *App) Close() error {
	a.services.SessionJob.Stop()
	return a.close()
}

func (a *App) unauthorized() {
	a.logger.Info().Msg("server rejected the session, logging out")
	a.services.AuthService.Logout(context.Background())

	// one pending signal is enough
	select {
	case a.expired <- struct{}{}:
	default:
	}
}
