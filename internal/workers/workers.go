// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/robfig/cron/v3"
)

// Workers schedules a set of [Worker]s. A run that is still in progress
// when the next tick fires is skipped.
type Workers struct {
	cron    *cron.Cron
	workers []Worker

	ctx    context.Context
	cancel context.CancelFunc

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) (*Workers, error) {
	cronLog := cronLogger{logger}
	c := cron.New(cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)), cron.WithLogger(cronLog))

	ctx, cancel := context.WithCancel(context.Background())
	w := &Workers{
		cron:    c,
		workers: workers,
		ctx:     ctx,
		cancel:  cancel,
		logger:  logger,
	}

	for _, worker := range workers {
		if _, err := c.AddFunc(worker.Schedule(), w.job(worker)); err != nil {
			cancel()
			return nil, fmt.Errorf("error scheduling worker %q: %w", worker.Name(), err)
		}
		logger.Info().Str("worker", worker.Name()).Str("schedule", worker.Schedule()).Msg("worker scheduled")
	}

	return w, nil
}

func (w *Workers) job(worker Worker) func() {
	return func() {
		log := w.logger.With().Str("worker", worker.Name()).Logger()
		ctx := log.WithContext(w.ctx)

		start := time.Now()
		if err := worker.Run(ctx); err != nil {
			log.Err(err).Dur("duration", time.Since(start)).Msg("worker run failed")
			return
		}
		log.Debug().Dur("duration", time.Since(start)).Msg("worker run finished")
	}
}

// Start runs the scheduler in its own goroutine.
func (w *Workers) Start() {
	w.cron.Start()
}

// RunNow runs every worker once, synchronously, outside the schedule.
func (w *Workers) RunNow() {
	for _, worker := range w.workers {
		w.job(worker)()
	}
}

// Stop cancels running jobs and waits for them to return or for ctx to
// expire.
func (w *Workers) Stop(ctx context.Context) error {
	w.cancel()
	done := w.cron.Stop()

	select {
	case <-done.Done():
		w.logger.Info().Msg("workers stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("error stopping workers: %w", ctx.Err())
	}
}

// cronLogger adapts the application logger to [cron.Logger].
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Err(err).Fields(keysAndValues).Msg(msg)
}
