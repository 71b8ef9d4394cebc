// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "github.com/canonical/authorization-service/internal/types"

// Permission keys are opaque resource:action tokens. These are the ones the
// built-in roles reference; tenants may grant arbitrary further keys through
// custom roles or matrix overrides.
const (
	PermWorkOrderRead  = "work_order:read"
	PermWorkOrderWrite = "work_order:write"
	PermAssetRead      = "asset:read"
	PermAssetWrite     = "asset:write"
	PermInventoryRead  = "inventory:read"
	PermInventoryWrite = "inventory:write"
	PermReportRead     = "report:read"
	PermUserManage     = "user:manage"
	PermSettingsManage = "settings:manage"
	PermAuditRead      = "audit:read"
)

// Plan-gated feature keys.
const (
	FeatureFactoryLayout = "factoryLayout"
	FeatureCostAnalytics = "costAnalytics"
)

// defaults is the static built-in permission set per role. The super-admin
// sentinel is absent on purpose; it bypasses the catalog entirely.
var defaults = map[string]map[string]bool{
	types.RoleAdmin: {
		PermWorkOrderRead:  true,
		PermWorkOrderWrite: true,
		PermAssetRead:      true,
		PermAssetWrite:     true,
		PermInventoryRead:  true,
		PermInventoryWrite: true,
		PermReportRead:     true,
		PermUserManage:     true,
		PermSettingsManage: true,
		PermAuditRead:      true,
	},
	types.RoleManager: {
		PermWorkOrderRead:  true,
		PermWorkOrderWrite: true,
		PermAssetRead:      true,
		PermAssetWrite:     true,
		PermInventoryRead:  true,
		PermInventoryWrite: true,
		PermReportRead:     true,
	},
	types.RoleTechnician: {
		PermWorkOrderRead:  true,
		PermWorkOrderWrite: true,
		PermAssetRead:      true,
		PermInventoryRead:  true,
	},
	types.RoleViewer: {
		PermWorkOrderRead: true,
		PermAssetRead:     true,
		PermInventoryRead: true,
		PermReportRead:    true,
	},
}

// nonRevocable lists the (role, permission) pairs a tenant matrix cannot turn
// off. Revoking an admin's own user or settings management would lock the
// tenant out of its own configuration with nobody left able to undo it.
var nonRevocable = map[string]map[string]bool{
	types.RoleAdmin: {
		PermUserManage:     true,
		PermSettingsManage: true,
	},
}

// HasDefault reports whether the built-in default set for role includes
// permission. Unknown roles have no defaults.
func HasDefault(role, permission string) bool {
	return defaults[role][permission]
}

// DefaultPermissions returns the built-in default permission keys for role,
// or nil for roles the catalog does not know.
func DefaultPermissions(role string) []string {
	set, ok := defaults[role]
	if !ok {
		return nil
	}

	perms := make([]string, 0, len(set))
	for p := range set {
		perms = append(perms, p)
	}
	return perms
}

// IsNonRevocable reports whether a matrix entry of false for (role,
// permission) must be ignored.
func IsNonRevocable(role, permission string) bool {
	return nonRevocable[role][permission]
}

// IsBuiltInRole reports whether name is one of the catalog's tenant roles.
func IsBuiltInRole(name string) bool {
	_, ok := defaults[name]
	return ok
}
