// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantconfig

import (
	"context"

	"github.com/canonical/authorization-service/internal/types"
)

// ServiceInterface resolves and mutates per-tenant configuration. Reads merge
// stored overrides with platform defaults at call time; the merged result is
// never written back. The RBACMatrix and FeatureEntitlements methods serve
// the policy evaluator from the same cache the view reads go through.
type ServiceInterface interface {
	GetConfig(ctx context.Context, caller *types.CallerContext) (*types.TenantConfigView, error)
	UpdateSecrets(ctx context.Context, caller *types.CallerContext, incoming map[string]string) error
	UpdateRBACMatrix(ctx context.Context, caller *types.CallerContext, matrix types.RBACMatrix) error
	UpdateBranding(ctx context.Context, caller *types.CallerContext, branding types.BrandingConfig) error

	RBACMatrix(ctx context.Context, tenantID string) (types.RBACMatrix, error)
	FeatureEntitlements(ctx context.Context, tenantID string) (map[string]bool, error)

	ListRoles(ctx context.Context, caller *types.CallerContext) ([]*types.CustomRole, error)
	CreateRole(ctx context.Context, caller *types.CallerContext, name string, permissions []string) (*types.CustomRole, error)
	DeleteRole(ctx context.Context, caller *types.CallerContext, roleID string) error
}

// StorageInterface is the slice of persistence the config resolver touches.
type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	LockTenant(ctx context.Context, tenantID string) error
	GetTenantOverrides(ctx context.Context, tenantID string) (*types.TenantOverrides, error)
	UpdateRBACMatrix(ctx context.Context, tenantID string, matrix types.RBACMatrix) error
	UpdateSecretsBlob(ctx context.Context, tenantID string, blob []byte) error
	UpdateBranding(ctx context.Context, tenantID string, branding types.BrandingConfig) error

	CreateCustomRole(ctx context.Context, r *types.CustomRole) (*types.CustomRole, error)
	ListCustomRoles(ctx context.Context, tenantID string) ([]*types.CustomRole, error)
	DeleteCustomRole(ctx context.Context, tenantID, id string) error
}

// DBClientInterface is the slice of the database client the service needs to
// bind row-policy-protected reads and writes to a tenant.
type DBClientInterface interface {
	WithTenantTx(ctx context.Context, tenantID string, fn func(context.Context) error) error
}

// BoxInterface seals and opens the tenant secrets blob.
type BoxInterface interface {
	Seal(values map[string]string) ([]byte, error)
	Open(blob []byte) (map[string]string, error)
}

type AuditRecorderInterface interface {
	Record(ctx context.Context, event string, userID *string, metadata map[string]interface{})
}
