// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"
)

// DefaultStorageHealthSchedule is how often the gRPC health status is
// refreshed.
const DefaultStorageHealthSchedule = "@every 15s"

const storageCheckTimeout = 5 * time.Second

// StorageChecker updates a health status from a storage ping.
type StorageChecker interface {
	CheckStorage(ctx context.Context) error
}

// StorageHealthWorker keeps the gRPC health status in line with the
// database.
type StorageHealthWorker struct {
	checker  StorageChecker
	schedule string
}

func NewStorageHealthWorker(checker StorageChecker, schedule string) *StorageHealthWorker {
	if schedule == "" {
		schedule = DefaultStorageHealthSchedule
	}
	return &StorageHealthWorker{checker: checker, schedule: schedule}
}

func (w *StorageHealthWorker) Name() string     { return "storage-health" }
func (w *StorageHealthWorker) Schedule() string { return w.schedule }

func (w *StorageHealthWorker) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, storageCheckTimeout)
	defer cancel()

	return w.checker.CheckStorage(ctx)
}
