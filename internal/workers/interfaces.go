// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the server's scheduled background jobs on a cron
// scheduler. Jobs start together with the transport servers and stop on
// shutdown.
package workers

import "context"

// Worker is a scheduled unit of background work.
//
// Schedule returns a standard cron spec or a descriptor such as
// "@every 1h". Run is called on every tick with a context that is
// cancelled when the scheduler stops.
type Worker interface {
	Name() string
	Schedule() string
	Run(ctx context.Context) error
}
