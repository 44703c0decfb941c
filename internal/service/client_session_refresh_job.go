// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"
)

// DefaultSessionRefreshInterval is used when Start gets no interval.
const DefaultSessionRefreshInterval = 30 * time.Minute

type sessionRefreshJob struct {
	authService ClientAuthService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionRefreshJob creates a job that calls authService.Refresh on a
// ticker. The job is idle until Start is called.
func NewSessionRefreshJob(authService ClientAuthService) SessionRefreshJob {
	return &sessionRefreshJob{authService: authService}
}

func (j *sessionRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSessionRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				// a failed refresh has already logged the client out
				if _, err := j.authService.Refresh(jobCtx); err != nil {
					return
				}
			}
		}
	}()
}

// Stop is a no-op when the job is not running.
func (j *sessionRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
