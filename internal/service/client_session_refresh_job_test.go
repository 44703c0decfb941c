// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/parse-guard/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

// The opencensus view worker is started by an init function of the AI
// client dependency and lives for the whole test binary.
var ignoreOpenCensusWorker = goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start")

// spyAuthService counts Refresh calls.
type spyAuthService struct {
	ClientAuthService
	calls atomic.Int64
	err   error
}

func (s *spyAuthService) Refresh(_ context.Context) (models.Session, error) {
	s.calls.Add(1)
	return models.Session{}, s.err
}

func TestSessionRefreshJob_RefreshesPeriodically(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreOpenCensusWorker)

	spy := &spyAuthService{}
	job := NewSessionRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestSessionRefreshJob_StopsAfterFailedRefresh(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreOpenCensusWorker)

	spy := &spyAuthService{err: errors.New("Session expired. Please login again.")}
	job := NewSessionRefreshJob(spy)

	job.Start(context.Background(), 5*time.Millisecond)
	time.Sleep(40 * time.Millisecond)

	assert.Equal(t, int64(1), spy.calls.Load())
	job.Stop()
}

func TestSessionRefreshJob_NoCallsAfterStop(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreOpenCensusWorker)

	spy := &spyAuthService{}
	job := NewSessionRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, spy.calls.Load())
}

func TestSessionRefreshJob_ContextCancelEndsJob(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreOpenCensusWorker)

	job := NewSessionRefreshJob(&spyAuthService{})
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, time.Hour)
	cancel()
	job.Stop()
}

func TestSessionRefreshJob_StopWithoutStart(t *testing.T) {
	job := NewSessionRefreshJob(&spyAuthService{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestSessionRefreshJob_RestartReplacesRunningJob(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreOpenCensusWorker)

	spy := &spyAuthService{}
	job := NewSessionRefreshJob(spy)

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), time.Hour)
	job.Stop()

	assert.Zero(t, spy.calls.Load())
}
