// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

// The minimum event set every deployment records.
const (
	EventSessionEstablished = "session.established"
	EventSessionDestroyed   = "session.destroyed"
	EventTenantDrillDown    = "superadmin.tenant_drill_down"
	EventPermissionDenied   = "authz.permission_denied"
	EventSecretWritten      = "config.secret_written"
	EventRBACMatrixChanged  = "config.rbac_matrix_changed"
)

// Directory lifecycle events.
const (
	EventTenantCreated  = "tenant.created"
	EventTenantDisabled = "tenant.disabled"
	EventTenantDeleted  = "tenant.deleted"
	EventUserCreated    = "user.created"
	EventUserDeleted    = "user.deleted"
)
