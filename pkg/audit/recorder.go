// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package audit appends immutable security events. Recording is
// fire-and-forget: a full queue or a failed insert is reported to the local
// security log and never fails the originating request.
package audit

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/authorization-service/internal/logging"
	"github.com/canonical/authorization-service/internal/monitoring"
	"github.com/canonical/authorization-service/internal/tracing"
	"github.com/canonical/authorization-service/internal/types"
)

// ErrQueueFull is reported to the security log when an event is dropped.
var ErrQueueFull = errors.New("audit queue full, event dropped")

// ErrRecorderClosed is reported when an event arrives after Shutdown.
var ErrRecorderClosed = errors.New("audit recorder closed, event dropped")

const appendTimeout = 5 * time.Second

var _ RecorderInterface = (*Recorder)(nil)

type Recorder struct {
	storage StorageInterface
	queue   chan *types.AuditLogEntry
	done    chan struct{}
	drained chan struct{}
	closing sync.Once

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewRecorder(
	storage StorageInterface,
	queueSize int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Recorder {
	r := &Recorder{
		storage: storage,
		queue:   make(chan *types.AuditLogEntry, queueSize),
		done:    make(chan struct{}),
		drained: make(chan struct{}),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}

	go r.worker()

	return r
}

// Record enqueues an event without blocking. The request context is used for
// tracing only; persistence happens on the worker with its own deadline so a
// cancelled request cannot lose an already-recorded event.
func (r *Recorder) Record(ctx context.Context, event string, userID *string, metadata map[string]interface{}) {
	_, span := r.tracer.Start(ctx, "audit.Recorder.Record")
	defer span.End()

	entry := &types.AuditLogEntry{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Timestamp: time.Now().UTC(),
		Event:     event,
		Metadata:  metadata,
	}
	if userID != nil {
		id := *userID
		entry.UserID = &id
	}

	select {
	case <-r.done:
		r.logger.Security().AuditFailure(event, ErrRecorderClosed)
		return
	default:
	}

	select {
	case r.queue <- entry:
	default:
		r.logger.Security().AuditFailure(event, ErrQueueFull)
	}
}

// Shutdown stops accepting events and drains the queue, bounded by ctx.
// Record calls arriving afterwards are dropped to the security log; the
// queue channel itself is never closed, so a late caller cannot panic.
func (r *Recorder) Shutdown(ctx context.Context) error {
	r.closing.Do(func() { close(r.done) })

	select {
	case <-r.drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Recorder) worker() {
	defer close(r.drained)

	for {
		select {
		case entry := <-r.queue:
			r.persist(entry)
		case <-r.done:
			for {
				select {
				case entry := <-r.queue:
					r.persist(entry)
				default:
					return
				}
			}
		}
	}
}

func (r *Recorder) persist(entry *types.AuditLogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
	defer cancel()

	if _, err := r.storage.AppendAuditEntry(ctx, entry); err != nil {
		r.logger.Security().AuditFailure(entry.Event, err)
	}
}
