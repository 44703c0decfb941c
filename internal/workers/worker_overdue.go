// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/service"
)

// OverdueCounter receives the number of escalated items per sweep.
type OverdueCounter interface {
	OverdueEscalated(n int)
}

// OverdueWorker escalates compliance items whose due date has passed.
type OverdueWorker struct {
	service  service.OverdueService
	counter  OverdueCounter
	schedule string
	now      func() time.Time
}

func NewOverdueWorker(svc service.OverdueService, counter OverdueCounter, schedule string) *OverdueWorker {
	return &OverdueWorker{
		service:  svc,
		counter:  counter,
		schedule: schedule,
		now:      time.Now,
	}
}

func (w *OverdueWorker) Name() string     { return "overdue-sweep" }
func (w *OverdueWorker) Schedule() string { return w.schedule }

func (w *OverdueWorker) Run(ctx context.Context) error {
	escalated, err := w.service.EscalateOverdue(ctx, w.now().UTC())
	if err != nil {
		return err
	}

	w.counter.OverdueEscalated(escalated)
	if escalated > 0 {
		logger.FromContext(ctx).Info().Int("escalated", escalated).Msg("overdue compliance items escalated")
	}
	return nil
}
