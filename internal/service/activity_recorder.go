// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/parse-guard/internal/cache"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/store"
	"github.com/MKhiriev/parse-guard/internal/utils"
	"github.com/MKhiriev/parse-guard/models"
)

// ActivityRecorder appends to the activity feed and drops cached dashboard
// stats of the affected users. Failures are logged and never fail the
// mutation that triggered them.
type ActivityRecorder struct {
	activity store.ActivityRepository
	cache    cache.StatsCache
	ids      utils.IDGenerator
	now      func() time.Time
}

func NewActivityRecorder(activity store.ActivityRepository, statsCache cache.StatsCache, ids utils.IDGenerator) *ActivityRecorder {
	return &ActivityRecorder{
		activity: activity,
		cache:    statsCache,
		ids:      ids,
		now:      time.Now,
	}
}

func (r *ActivityRecorder) item(userID string, activityType models.ActivityType, title, description string) models.ActivityItem {
	return models.ActivityItem{
		ID:          r.ids.Generate(),
		UserID:      userID,
		Type:        activityType,
		Title:       title,
		Description: description,
		Timestamp:   r.now().UTC(),
	}
}

// record stores items and invalidates the stats of their owners.
func (r *ActivityRecorder) record(ctx context.Context, items ...models.ActivityItem) {
	if len(items) == 0 {
		return
	}
	log := logger.FromContext(ctx)

	if err := r.activity.Add(ctx, items...); err != nil {
		log.Err(err).Str("func", "*ActivityRecorder.record").Msg("error recording activity")
	}

	r.invalidate(ctx, items...)
}

func (r *ActivityRecorder) invalidate(ctx context.Context, items ...models.ActivityItem) {
	seen := make(map[string]struct{}, len(items))
	users := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.UserID]; ok {
			continue
		}
		seen[it.UserID] = struct{}{}
		users = append(users, it.UserID)
	}

	if err := r.cache.Invalidate(ctx, users...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ActivityRecorder.invalidate").Msg("error invalidating stats cache")
	}
}
