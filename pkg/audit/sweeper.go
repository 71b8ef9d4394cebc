// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/canonical/authorization-service/internal/logging"
	"github.com/canonical/authorization-service/internal/monitoring"
	"github.com/canonical/authorization-service/internal/tracing"
)

// Sweeper periodically nulls the userId of audit entries whose user has been
// deleted. Rows are never deleted; only the dangling reference is cleared.
type Sweeper struct {
	storage StorageInterface
	period  time.Duration
	running atomic.Bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewSweeper(
	storage StorageInterface,
	period time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Sweeper {
	return &Sweeper{
		storage: storage,
		period:  period,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Start runs the sweep loop until ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one orphan pass. A sweep already in flight makes it a no-op, so
// overlapping timers cannot run the update concurrently with itself.
func (s *Sweeper) Sweep(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	defer s.running.Store(false)

	ctx, span := s.tracer.Start(ctx, "audit.Sweeper.Sweep")
	defer span.End()

	nulled, err := s.storage.NullOrphanedAuditUsers(ctx)
	if err != nil {
		s.logger.Errorf("audit orphan sweep failed: %v", err)
		return
	}

	if nulled > 0 {
		s.logger.Infof("audit orphan sweep nulled %d user references", nulled)
	}
}
