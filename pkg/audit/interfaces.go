// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"

	"github.com/canonical/authorization-service/internal/types"
)

type RecorderInterface interface {
	Record(ctx context.Context, event string, userID *string, metadata map[string]interface{})
	Shutdown(ctx context.Context) error
}

// StorageInterface is the slice of persistence the recorder and sweeper
// touch. Append and null-orphans only; the audit log exposes no update or
// delete to callers.
type StorageInterface interface {
	AppendAuditEntry(ctx context.Context, e *types.AuditLogEntry) (string, error)
	NullOrphanedAuditUsers(ctx context.Context) (int64, error)
}
