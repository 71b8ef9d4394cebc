// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// RBACMatrix is the tenant override table: role name -> permission -> bool.
// Absence of a key at any level means "use default", never "deny".
type RBACMatrix map[string]map[string]bool

type Tenant struct {
	ID                  string          `db:"id"`
	Slug                string          `db:"slug"`
	Name                string          `db:"name"`
	Plan                string          `db:"plan"`
	RBACMatrix          RBACMatrix      `db:"rbac_matrix"`
	FeatureEntitlements map[string]bool `db:"feature_entitlements"`
	SecretsBlob         []byte          `db:"secrets_blob"`
	Branding            BrandingConfig  `db:"branding"`
	CreatedAt           time.Time       `db:"created_at"`
	Enabled             bool            `db:"enabled"`
}

type User struct {
	ID           string    `db:"id"`
	TenantID     *string   `db:"tenant_id"` // nil only for the platform super-admin sentinel
	Email        string    `db:"email"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CustomRoleID *string   `db:"custom_role_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type CustomRole struct {
	ID          string    `db:"id"`
	TenantID    string    `db:"tenant_id"`
	Name        string    `db:"name"`
	Permissions []string  `db:"permissions"`
	IsSystem    bool      `db:"is_system"`
	CreatedAt   time.Time `db:"created_at"`
}

type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	TenantID  string    `json:"tenant_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

type AuditLogEntry struct {
	ID        string                 `db:"id"`
	Timestamp time.Time              `db:"timestamp"`
	Event     string                 `db:"event"`
	UserID    *string                `db:"user_id"` // nulled when the user is later removed, row stays
	Metadata  map[string]interface{} `db:"metadata"`
}

// CallerContext is the resolved, request-scoped identity authorizing one
// request. It is never persisted and always threaded explicitly; there is no
// ambient "current tenant" state anywhere in the service.
type CallerContext struct {
	TenantID             string
	UserID               string
	Role                 RoleRef
	EffectivePermissions []string
}

// HasPermission consults the permission snapshot taken at resolution time.
// Route-level enforcement goes through the policy evaluator; this is for
// shaping responses, such as whether a config read may include secrets.
func (c *CallerContext) HasPermission(permission string) bool {
	for _, p := range c.EffectivePermissions {
		if p == permission || p == PermissionWildcard {
			return true
		}
	}
	return false
}

// BrandingConfig holds only the explicit stored overrides. Merging with
// defaults happens at read time; the merged result is never written back.
type BrandingConfig struct {
	CompanyName    *string `json:"company_name,omitempty"`
	LogoURL        *string `json:"logo_url,omitempty"`
	PrimaryColor   *string `json:"primary_color,omitempty"`
	SecondaryColor *string `json:"secondary_color,omitempty"`
}

type NotificationConfig struct {
	EmailEnabled bool   `json:"email_enabled"`
	WebhookURL   string `json:"webhook_url,omitempty"`
}

// TenantOverrides is the raw per-tenant configuration as stored.
type TenantOverrides struct {
	RBACMatrix          RBACMatrix
	FeatureEntitlements map[string]bool
	SecretsBlob         []byte
	Branding            BrandingConfig
}

// TenantConfigView is the externally exposed, merged and masked configuration.
// Secrets is nil (omitted entirely) unless the caller holds a management
// permission; when present, values are masked for display.
type TenantConfigView struct {
	TenantID      string             `json:"tenant_id"`
	Branding      BrandingConfig     `json:"branding"`
	Notifications NotificationConfig `json:"notifications"`
	Features      map[string]bool    `json:"features"`
	RBACMatrix    RBACMatrix         `json:"rbac_matrix,omitempty"`
	Secrets       map[string]string  `json:"secrets,omitempty"`
}
