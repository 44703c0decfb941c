package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/parse-guard/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestActivityRecorder_Record_InvalidatesEachUserOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec, activity, statsCache := newTestRecorder(t, ctrl)
	ctx := context.Background()

	a := rec.item("u1", models.ActivityComplianceOverdue, "A", "")
	b := rec.item("u2", models.ActivityComplianceOverdue, "B", "")
	c := rec.item("u1", models.ActivityComplianceOverdue, "C", "")

	activity.EXPECT().Add(ctx, a, b, c).Return(nil)
	statsCache.EXPECT().Invalidate(ctx, "u1", "u2").Return(nil)

	rec.record(ctx, a, b, c)
}

func TestActivityRecorder_Record_FailuresAreSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec, activity, statsCache := newTestRecorder(t, ctrl)
	ctx := context.Background()

	it := rec.item("u1", models.ActivityRiskAssessed, "Vendor review", "")

	activity.EXPECT().Add(ctx, it).Return(errors.New("db down"))
	statsCache.EXPECT().Invalidate(ctx, "u1").Return(errors.New("redis down"))

	assert.NotPanics(t, func() { rec.record(ctx, it) })
}

func TestActivityRecorder_Record_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec, _, _ := newTestRecorder(t, ctrl)

	// no calls expected on either mock
	rec.record(context.Background())
}

func TestActivityRecorder_Item(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec, _, _ := newTestRecorder(t, ctrl)

	it := rec.item("u1", models.ActivityDocumentCreated, "Policy", "desc")

	assert.Equal(t, models.ActivityItem{
		ID:          "id-1",
		UserID:      "u1",
		Type:        models.ActivityDocumentCreated,
		Title:       "Policy",
		Description: "desc",
		Timestamp:   fixedNow,
	}, it)
}
