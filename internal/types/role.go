// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// Built-in role names. RoleSuperAdmin is the platform-wide sentinel; it is
// not a tenant role and never appears in a tenant RBAC matrix.
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleTechnician = "technician"
	RoleViewer     = "viewer"
)

// PermissionWildcard short-circuits all permission checks. Only the
// super-admin sentinel may carry it.
const PermissionWildcard = "*"

// RoleRef is a tagged variant over built-in and custom roles, so which one is
// authoritative is unambiguous at the type level instead of two nullable
// fields.
type RoleRef struct {
	builtin    string
	customID   string
	customName string
}

func BuiltInRole(name string) RoleRef {
	return RoleRef{builtin: name}
}

func CustomRoleRef(id, name string) RoleRef {
	return RoleRef{customID: id, customName: name}
}

func (r RoleRef) IsBuiltIn() bool {
	return r.customID == ""
}

// CustomID returns the custom role id and whether the ref is a custom role.
func (r RoleRef) CustomID() (string, bool) {
	return r.customID, r.customID != ""
}

// Name returns the role name as it appears as an RBAC matrix key: the
// built-in name, or the custom role's tenant-scoped name.
func (r RoleRef) Name() string {
	if r.customID != "" {
		return r.customName
	}
	return r.builtin
}

func (r RoleRef) IsSuperAdmin() bool {
	return r.customID == "" && r.builtin == RoleSuperAdmin
}
