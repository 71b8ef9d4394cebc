// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"

	"github.com/canonical/authorization-service/internal/types"
)

type StoreInterface interface {
	// Create mints a fresh opaque token bound to the user, tenant and role.
	// One session per device: each login creates its own token.
	Create(ctx context.Context, userID, tenantID, role string) (*types.Session, error)
	Get(ctx context.Context, token string) (*types.Session, error)
	// Refresh extends the session's expiry by the configured lifetime
	// (sliding expiry, opt-in for callers).
	Refresh(ctx context.Context, token string) error
	Destroy(ctx context.Context, token string) error
}
