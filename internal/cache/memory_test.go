// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/parse-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStatsCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	c := NewMemoryStatsCache(30 * time.Second)
	c.now = func() time.Time { return now }

	_, err := c.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrCacheMiss)

	want := models.DashboardStats{TotalCompliance: 3, PendingItems: 1}
	require.NoError(t, c.Set(ctx, "u1", want))

	got, err := c.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	now = now.Add(30 * time.Second)
	_, err = c.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryStatsCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryStatsCache(time.Minute)

	require.NoError(t, c.Set(ctx, "u1", models.DashboardStats{TotalDocuments: 1}))
	require.NoError(t, c.Set(ctx, "u2", models.DashboardStats{TotalDocuments: 2}))

	require.NoError(t, c.Invalidate(ctx, "u1", "missing"))

	_, err := c.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrCacheMiss)
	got, err := c.Get(ctx, "u2")
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.TotalDocuments)
}

func TestMemoryStatsCache_ZeroTTLDisables(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryStatsCache(0)

	require.NoError(t, c.Set(ctx, "u1", models.DashboardStats{TotalDocuments: 1}))
	_, err := c.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryStatsCache_SetDropsExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryStatsCache(time.Second)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "old", models.DashboardStats{}))
	now = now.Add(2 * time.Second)
	require.NoError(t, c.Set(ctx, "new", models.DashboardStats{}))

	assert.Len(t, c.entries, 1)
}
