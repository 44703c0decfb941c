// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the ParseGuard server and client.
//
// Configuration is assembled from multiple sources. A source only fills the
// fields that are still zero after the previous ones, so the priority is:
//  1. Explicit overrides (client command-line flags)
//  2. Environment variables (a .env file in the working directory is
//     loaded first when present)
//  3. Command-line flags (server)
//  4. JSON or YAML config file
//  5. Built-in defaults
//
// The main entry points are [GetServerConfig] for the backend and
// [GetClientConfig] for the terminal client.
package config
