// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's transport servers.
//
// It owns the lifecycle of the HTTP and gRPC servers and of the background
// workers: startup, signal handling and graceful shutdown of everything
// that was enabled by the configuration.
package server
