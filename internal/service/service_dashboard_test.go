package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/parse-guard/internal/cache"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/mock"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDashboardService(ctrl *gomock.Controller) (DashboardService, *mock.MockDashboardRepository, *mock.MockActivityRepository, *mock.MockStatsCache) {
	dash := mock.NewMockDashboardRepository(ctrl)
	activity := mock.NewMockActivityRepository(ctrl)
	statsCache := mock.NewMockStatsCache(ctrl)
	return NewDashboardService(dash, activity, statsCache, logger.Nop()), dash, activity, statsCache
}

var sampleStats = models.DashboardStats{TotalCompliance: 5, TotalDocuments: 2, PendingItems: 3, HighRiskItems: 1}

func TestDashboardService_Stats_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, statsCache := newTestDashboardService(ctrl)

	statsCache.EXPECT().Get(gomock.Any(), "u1").Return(sampleStats, nil)

	stats, err := svc.Stats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, sampleStats, stats)
}

func TestDashboardService_Stats_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, dash, _, statsCache := newTestDashboardService(ctrl)

	gomock.InOrder(
		statsCache.EXPECT().Get(gomock.Any(), "u1").Return(models.DashboardStats{}, cache.ErrCacheMiss),
		dash.EXPECT().Stats(gomock.Any(), "u1").Return(sampleStats, nil),
		statsCache.EXPECT().Set(gomock.Any(), "u1", sampleStats).Return(nil),
	)

	stats, err := svc.Stats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, sampleStats, stats)
}

func TestDashboardService_Stats_BrokenCacheIsBypassed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, dash, _, statsCache := newTestDashboardService(ctrl)

	statsCache.EXPECT().Get(gomock.Any(), "u1").Return(models.DashboardStats{}, errors.New("connection refused"))
	dash.EXPECT().Stats(gomock.Any(), "u1").Return(sampleStats, nil)
	statsCache.EXPECT().Set(gomock.Any(), "u1", sampleStats).Return(errors.New("connection refused"))

	stats, err := svc.Stats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, sampleStats, stats)
}

func TestDashboardService_Stats_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, dash, _, statsCache := newTestDashboardService(ctrl)
	boom := errors.New("boom")

	statsCache.EXPECT().Get(gomock.Any(), "u1").Return(models.DashboardStats{}, cache.ErrCacheMiss)
	dash.EXPECT().Stats(gomock.Any(), "u1").Return(models.DashboardStats{}, boom)

	_, err := svc.Stats(context.Background(), "u1")
	assert.ErrorIs(t, err, boom)
}

func TestDashboardService_Activity_ClampsLimit(t *testing.T) {
	tests := []struct {
		requested int
		want      int
	}{
		{requested: 0, want: models.DefaultActivityLimit},
		{requested: -5, want: models.DefaultActivityLimit},
		{requested: 25, want: 25},
		{requested: 1000, want: models.MaxActivityLimit},
	}

	for _, tt := range tests {
		ctrl := gomock.NewController(t)
		svc, _, activity, _ := newTestDashboardService(ctrl)

		activity.EXPECT().ListRecent(gomock.Any(), "u1", tt.want).Return(nil, nil)

		_, err := svc.Activity(context.Background(), "u1", tt.requested)
		require.NoError(t, err)
	}
}
