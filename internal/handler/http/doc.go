// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging,
// Prometheus metrics, response compression and per-user rate limiting are
// handled in this package before requests are delegated to the service
// layer. Errors leave the package as ApiError JSON bodies.
package http
