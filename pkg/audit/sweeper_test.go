// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/authorization-service/internal/logging"
	"github.com/canonical/authorization-service/internal/monitoring"
	"github.com/canonical/authorization-service/internal/tracing"
)

func TestSweeper_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().NullOrphanedAuditUsers(gomock.Any()).Return(int64(3), nil)

	s := NewSweeper(mockStorage, time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	s.Sweep(context.Background())

	if s.running.Load() {
		t.Error("expected the running flag to be cleared after the sweep")
	}
}

func TestSweeper_SweepSkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No storage expectation: a concurrent sweep must be a no-op.
	mockStorage := NewMockStorageInterface(ctrl)

	s := NewSweeper(mockStorage, time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	s.running.Store(true)
	s.Sweep(context.Background())
}

func TestSweeper_SweepErrorClearsRunningFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockStorage.EXPECT().NullOrphanedAuditUsers(gomock.Any()).Return(int64(0), errors.New("db down"))
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())

	s := NewSweeper(mockStorage, time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), mockLogger)

	s.Sweep(context.Background())

	if s.running.Load() {
		t.Error("expected the running flag to be cleared after a failed sweep")
	}
}

func TestSweeper_StartStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().NullOrphanedAuditUsers(gomock.Any()).Return(int64(0), nil).AnyTimes()

	s := NewSweeper(mockStorage, 10*time.Millisecond, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop on cancellation")
	}
}
