// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the terminal client: the REST adapter, the
// local session store and the client services shared by the TUI and the
// command-line interface.
package client
