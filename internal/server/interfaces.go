// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer starts every enabled transport and blocks until a stop
	// signal arrives or a transport fails.
	RunServer() error

	// Run is RunServer driven by ctx instead of OS signals.
	Run(ctx context.Context) error

	// Shutdown gracefully stops all transports and workers.
	Shutdown(ctx context.Context) error
}
