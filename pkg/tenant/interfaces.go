// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/canonical/authorization-service/internal/types"
)

// ServiceInterface is the tenant directory and user provisioning surface.
// The directory operations are platform-global; user operations are scoped
// to the caller's resolved tenant.
type ServiceInterface interface {
	CreateTenant(ctx context.Context, name, slug, plan string) (*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	SetTenantEnabled(ctx context.Context, id string, enabled bool) error
	DeleteTenant(ctx context.Context, id string) error

	CreateUser(ctx context.Context, caller *types.CallerContext, email, username, password, role string, customRoleID *string) (*types.User, error)
	DeleteUser(ctx context.Context, caller *types.CallerContext, userID string) error
}

// StorageInterface is the slice of persistence the directory touches.
type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	DeleteTenant(ctx context.Context, id string) error

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	DeleteUser(ctx context.Context, tenantID, id string) error
	GetCustomRole(ctx context.Context, tenantID, id string) (*types.CustomRole, error)
}

type DBClientInterface interface {
	WithTenantTx(ctx context.Context, tenantID string, fn func(context.Context) error) error
}

type AuditRecorderInterface interface {
	Record(ctx context.Context, event string, userID *string, metadata map[string]interface{})
}
