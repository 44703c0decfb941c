// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/parse-guard/models"
)

type memoryEntry struct {
	stats     models.DashboardStats
	expiresAt time.Time
}

// MemoryStatsCache is a mutex guarded map with per-entry expiry.
type MemoryStatsCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStatsCache returns an in-process cache. A non-positive ttl
// disables caching.
func NewMemoryStatsCache(ttl time.Duration) *MemoryStatsCache {
	return &MemoryStatsCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryStatsCache) Get(_ context.Context, userID string) (models.DashboardStats, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[userID]
	if !ok || !c.now().Before(entry.expiresAt) {
		return models.DashboardStats{}, ErrCacheMiss
	}
	return entry.stats, nil
}

func (c *MemoryStatsCache) Set(_ context.Context, userID string, stats models.DashboardStats) error {
	if c.ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	// expired entries are dropped on write so the map stays bounded by the
	// number of active users
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[userID] = memoryEntry{stats: stats, expiresAt: now.Add(c.ttl)}
	return nil
}

func (c *MemoryStatsCache) Invalidate(_ context.Context, userIDs ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range userIDs {
		delete(c.entries, id)
	}
	return nil
}
