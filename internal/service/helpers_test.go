package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/parse-guard/internal/mock"
	"go.uber.org/mock/gomock"
)

// sequentialIDs hands out "id-1", "id-2", ... in call order.
type sequentialIDs struct {
	n int
}

func (g *sequentialIDs) Generate() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestRecorder(t *testing.T, ctrl *gomock.Controller) (*ActivityRecorder, *mock.MockActivityRepository, *mock.MockStatsCache) {
	t.Helper()
	activity := mock.NewMockActivityRepository(ctrl)
	statsCache := mock.NewMockStatsCache(ctrl)

	rec := NewActivityRecorder(activity, statsCache, &sequentialIDs{})
	rec.now = func() time.Time { return fixedNow }

	return rec, activity, statsCache
}
