// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/authorization-service/internal/types"
)

type ResolverInterface interface {
	ResolveCaller(ctx context.Context, sessionToken, declaredTenantSlug string) (*types.CallerContext, error)
	ResolvePlatformCaller(ctx context.Context, sessionToken string) (*types.CallerContext, error)
}

type ServiceInterface interface {
	Login(ctx context.Context, tenantSlug, email, password string) (*types.Session, error)
	Logout(ctx context.Context, token string) error
}

type SessionStoreInterface interface {
	Create(ctx context.Context, userID, tenantID, role string) (*types.Session, error)
	Get(ctx context.Context, token string) (*types.Session, error)
	Refresh(ctx context.Context, token string) error
	Destroy(ctx context.Context, token string) error
}

type StorageInterface interface {
	GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, tenantID, email string) (*types.User, error)
	GetPlatformUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetCustomRole(ctx context.Context, tenantID, id string) (*types.CustomRole, error)
}

// DBClientInterface is the slice of the database client the resolver needs:
// user and custom-role rows sit behind a row policy, so their lookups must
// run in a transaction bound to the session's tenant.
type DBClientInterface interface {
	WithTenantTx(ctx context.Context, tenantID string, fn func(context.Context) error) error
}

// PermissionSnapshotInterface computes the effective permission set recorded
// on the caller context at resolution time.
type PermissionSnapshotInterface interface {
	EffectivePermissions(ctx context.Context, tenantID string, role types.RoleRef) ([]string, error)
}

type AuditRecorderInterface interface {
	Record(ctx context.Context, event string, userID *string, metadata map[string]interface{})
}
