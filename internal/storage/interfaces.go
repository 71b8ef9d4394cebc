// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/authorization-service/internal/types"
)

// StorageInterface is the full persistence surface. Every tenant-scoped
// operation takes an explicit tenantID; the few platform-global operations
// (tenant directory, audit log, sentinel users) say so in their names or
// signatures.
type StorageInterface interface {
	// Tenant directory (platform-global, keyed by immutable slug).
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	DeleteTenant(ctx context.Context, id string) error

	// Tenant configuration overrides; writes serialize on the tenant key.
	// Read-modify-write callers take LockTenant before their first read.
	LockTenant(ctx context.Context, tenantID string) error
	GetTenantOverrides(ctx context.Context, tenantID string) (*types.TenantOverrides, error)
	UpdateRBACMatrix(ctx context.Context, tenantID string, matrix types.RBACMatrix) error
	UpdateSecretsBlob(ctx context.Context, tenantID string, blob []byte) error
	UpdateBranding(ctx context.Context, tenantID string, branding types.BrandingConfig) error

	// Users.
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, tenantID, email string) (*types.User, error)
	GetPlatformUserByEmail(ctx context.Context, email string) (*types.User, error)
	DeleteUser(ctx context.Context, tenantID, id string) error

	// Custom roles.
	CreateCustomRole(ctx context.Context, r *types.CustomRole) (*types.CustomRole, error)
	GetCustomRole(ctx context.Context, tenantID, id string) (*types.CustomRole, error)
	ListCustomRoles(ctx context.Context, tenantID string) ([]*types.CustomRole, error)
	DeleteCustomRole(ctx context.Context, tenantID, id string) error

	// Audit log: append and null-orphans only, never update or delete.
	AppendAuditEntry(ctx context.Context, e *types.AuditLogEntry) (string, error)
	ListAuditEntries(ctx context.Context, event string, limit uint64) ([]*types.AuditLogEntry, error)
	NullOrphanedAuditUsers(ctx context.Context) (int64, error)
}
