// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/parse-guard/internal/service"
)

// Client is what the command-line layer needs from the client runtime.
type Client interface {
	// Services returns the client services.
	Services() *service.ClientServices

	// ServerVersion asks the server for its version string.
	ServerVersion(ctx context.Context) (string, error)

	// SessionExpired is signalled every time an authenticated call is
	// rejected with 401. The session is already cleared by then.
	SessionExpired() <-chan struct{}

	// Close releases the session store.
	Close() error
}
