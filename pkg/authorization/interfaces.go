// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/authorization-service/internal/types"
)

type EvaluatorInterface interface {
	Check(ctx context.Context, caller *types.CallerContext, permission string) (bool, error)
	FeatureEnabled(ctx context.Context, tenantID, featureKey string) (bool, error)
	EffectivePermissions(ctx context.Context, tenantID string, role types.RoleRef) ([]string, error)
}

// ConfigProviderInterface serves the per-tenant override tables, typically
// from a short-TTL cache in front of storage.
type ConfigProviderInterface interface {
	RBACMatrix(ctx context.Context, tenantID string) (types.RBACMatrix, error)
	FeatureEntitlements(ctx context.Context, tenantID string) (map[string]bool, error)
}

type RoleProviderInterface interface {
	GetCustomRole(ctx context.Context, tenantID, roleID string) (*types.CustomRole, error)
}

// AuditRecorderInterface is the fire-and-forget audit sink. Record never
// blocks and never returns an error to the caller.
type AuditRecorderInterface interface {
	Record(ctx context.Context, event string, userID *string, metadata map[string]interface{})
}
