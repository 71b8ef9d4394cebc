// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantconfig

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/canonical/authorization-service/internal/logging"
	"github.com/canonical/authorization-service/internal/monitoring"
	"github.com/canonical/authorization-service/internal/secrets"
	"github.com/canonical/authorization-service/internal/tracing"
	"github.com/canonical/authorization-service/internal/types"
	"github.com/canonical/authorization-service/pkg/audit"
	"github.com/canonical/authorization-service/pkg/authorization"
)

const cacheSize = 512

// Branding defaults applied at read time when a tenant stores no override.
const (
	defaultLogoURL        = "/static/logo.png"
	defaultPrimaryColor   = "#2c3e50"
	defaultSecondaryColor = "#e74c3c"
)

// Secrets blob keys the notification view derives from. The values stay
// inside the blob; the view only reports whether they are configured.
const (
	secretKeySMTPPassword = "smtp_password"
	secretKeyWebhookURL   = "webhook_url"
)

// Service resolves per-tenant configuration. Overrides are cached with a TTL
// so permission checks on the hot path do not hit the database per request;
// every successful write evicts the tenant's entry before returning, so a
// subsequent read through the same instance sees the new state.
type Service struct {
	storage StorageInterface
	db      DBClientInterface
	box     BoxInterface
	auditor AuditRecorderInterface

	cache *lru.LRU[string, *types.TenantOverrides]

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) overrides(ctx context.Context, tenantID string) (*types.TenantOverrides, error) {
	if o, ok := s.cache.Get(tenantID); ok {
		return o, nil
	}

	o, err := s.storage.GetTenantOverrides(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	s.cache.Add(tenantID, o)
	return o, nil
}

// RBACMatrix returns the tenant's stored matrix overrides, possibly empty.
func (s *Service) RBACMatrix(ctx context.Context, tenantID string) (types.RBACMatrix, error) {
	ctx, span := s.tracer.Start(ctx, "tenantconfig.Service.RBACMatrix")
	defer span.End()

	o, err := s.overrides(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return o.RBACMatrix, nil
}

// FeatureEntitlements returns the tenant's feature flags. A key absent from
// the returned map is not entitled, whoever asks.
func (s *Service) FeatureEntitlements(ctx context.Context, tenantID string) (map[string]bool, error) {
	ctx, span := s.tracer.Start(ctx, "tenantconfig.Service.FeatureEntitlements")
	defer span.End()

	o, err := s.overrides(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return o.FeatureEntitlements, nil
}

// GetConfig returns the merged configuration view for the caller's tenant.
// Branding overrides win over defaults. The RBAC matrix and the masked
// secrets map are included only for callers holding settings:manage; for
// everyone else the secrets key is absent from the response entirely.
func (s *Service) GetConfig(ctx context.Context, caller *types.CallerContext) (*types.TenantConfigView, error) {
	ctx, span := s.tracer.Start(ctx, "tenantconfig.Service.GetConfig")
	defer span.End()

	tenant, err := s.storage.GetTenantByID(ctx, caller.TenantID)
	if err != nil {
		return nil, err
	}

	o, err := s.overrides(ctx, caller.TenantID)
	if err != nil {
		return nil, err
	}

	stored, err := s.box.Open(o.SecretsBlob)
	if err != nil {
		return nil, fmt.Errorf("failed to open secrets blob: %w", err)
	}

	view := &types.TenantConfigView{
		TenantID: caller.TenantID,
		Branding: mergeBranding(tenant, o.Branding),
		Notifications: types.NotificationConfig{
			EmailEnabled: stored[secretKeySMTPPassword] != "",
		},
		Features: o.FeatureEntitlements,
	}

	if caller.HasPermission(authorization.PermSettingsManage) {
		view.RBACMatrix = o.RBACMatrix
		view.Secrets = secrets.MaskAll(stored)
		if url := stored[secretKeyWebhookURL]; url != "" {
			view.Notifications.WebhookURL = secrets.Mask(url)
		}
	}

	return view, nil
}

// UpdateSecrets merges incoming values into the stored blob. A value that is
// just the masked rendering of what is already stored is skipped, so clients
// round-tripping a config form cannot overwrite secrets with asterisks. An
// empty value deletes the key. Values never reach the audit log or the logs;
// only key names do.
func (s *Service) UpdateSecrets(ctx context.Context, caller *types.CallerContext, incoming map[string]string) error {
	ctx, span := s.tracer.Start(ctx, "tenantconfig.Service.UpdateSecrets")
	defer span.End()

	// The lock must precede the read: the merge below starts from whatever
	// blob the previous writer committed, not from a stale snapshot.
	if err := s.storage.LockTenant(ctx, caller.TenantID); err != nil {
		return err
	}

	o, err := s.storage.GetTenantOverrides(ctx, caller.TenantID)
	if err != nil {
		return err
	}

	stored, err := s.box.Open(o.SecretsBlob)
	if err != nil {
		return fmt.Errorf("failed to open secrets blob: %w", err)
	}

	var changed []string
	for key, value := range incoming {
		switch {
		case value == "":
			if _, ok := stored[key]; ok {
				delete(stored, key)
				changed = append(changed, key)
			}
		case secrets.IsMaskedEcho(value, stored[key]):
			continue
		default:
			stored[key] = value
			changed = append(changed, key)
		}
	}

	if len(changed) == 0 {
		return nil
	}

	blob, err := s.box.Seal(stored)
	if err != nil {
		return fmt.Errorf("failed to seal secrets blob: %w", err)
	}

	if err := s.storage.UpdateSecretsBlob(ctx, caller.TenantID, blob); err != nil {
		return err
	}

	s.cache.Remove(caller.TenantID)

	sort.Strings(changed)
	s.auditor.Record(ctx, audit.EventSecretWritten, &caller.UserID, map[string]interface{}{
		"tenant_id": caller.TenantID,
		"keys":      changed,
	})

	return nil
}

// UpdateRBACMatrix replaces the tenant's matrix overrides after validating
// them. Matrix entries may reference built-in roles or the tenant's custom
// roles; the super-admin sentinel is never a matrix key, and an entry that
// would revoke a lockout-protected admin permission is rejected outright
// rather than stored and ignored at resolve time.
func (s *Service) UpdateRBACMatrix(ctx context.Context, caller *types.CallerContext, matrix types.RBACMatrix) error {
	ctx, span := s.tracer.Start(ctx, "tenantconfig.Service.UpdateRBACMatrix")
	defer span.End()

	if err := s.validateMatrix(ctx, caller.TenantID, matrix); err != nil {
		return err
	}

	if err := s.storage.UpdateRBACMatrix(ctx, caller.TenantID, matrix); err != nil {
		return err
	}

	s.cache.Remove(caller.TenantID)

	s.auditor.Record(ctx, audit.EventRBACMatrixChanged, &caller.UserID, map[string]interface{}{
		"tenant_id": caller.TenantID,
		"roles":     matrixRoles(matrix),
	})

	return nil
}

func (s *Service) validateMatrix(ctx context.Context, tenantID string, matrix types.RBACMatrix) error {
	customNames, err := s.customRoleNames(ctx, tenantID)
	if err != nil {
		return err
	}

	for role, entries := range matrix {
		if role == types.RoleSuperAdmin {
			return fmt.Errorf("%w: %q", ErrInvalidRole, role)
		}
		if !authorization.IsBuiltInRole(role) && !customNames[role] {
			return fmt.Errorf("%w: %q", ErrInvalidRole, role)
		}
		for permission, allowed := range entries {
			if !validPermissionKey(permission) {
				return fmt.Errorf("%w: %q", ErrInvalidPermission, permission)
			}
			if !allowed && authorization.IsNonRevocable(role, permission) {
				return fmt.Errorf("%w: %s/%s", ErrNonRevocable, role, permission)
			}
		}
	}

	return nil
}

func (s *Service) customRoleNames(ctx context.Context, tenantID string) (map[string]bool, error) {
	names := make(map[string]bool)
	err := s.db.WithTenantTx(ctx, tenantID, func(ctx context.Context) error {
		roles, err := s.storage.ListCustomRoles(ctx, tenantID)
		if err != nil {
			return err
		}
		for _, r := range roles {
			names[r.Name] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func validPermissionKey(permission string) bool {
	resource, action, ok := strings.Cut(permission, ":")
	return ok && resource != "" && action != "" && !strings.Contains(action, ":")
}

func matrixRoles(matrix types.RBACMatrix) []string {
	roles := make([]string, 0, len(matrix))
	for role := range matrix {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// UpdateBranding stores the explicit branding overrides as given. Defaults
// are merged at read time, never persisted.
func (s *Service) UpdateBranding(ctx context.Context, caller *types.CallerContext, branding types.BrandingConfig) error {
	ctx, span := s.tracer.Start(ctx, "tenantconfig.Service.UpdateBranding")
	defer span.End()

	if err := s.storage.UpdateBranding(ctx, caller.TenantID, branding); err != nil {
		return err
	}

	s.cache.Remove(caller.TenantID)
	return nil
}

// ListRoles returns the tenant's custom roles.
func (s *Service) ListRoles(ctx context.Context, caller *types.CallerContext) ([]*types.CustomRole, error) {
	ctx, span := s.tracer.Start(ctx, "tenantconfig.Service.ListRoles")
	defer span.End()

	var roles []*types.CustomRole
	err := s.db.WithTenantTx(ctx, caller.TenantID, func(ctx context.Context) error {
		var err error
		roles, err = s.storage.ListCustomRoles(ctx, caller.TenantID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// CreateRole creates a custom role with an explicit permission list. The
// list is authoritative for members of the role; there is no fallback to a
// built-in default set.
func (s *Service) CreateRole(ctx context.Context, caller *types.CallerContext, name string, permissions []string) (*types.CustomRole, error) {
	ctx, span := s.tracer.Start(ctx, "tenantconfig.Service.CreateRole")
	defer span.End()

	if authorization.IsBuiltInRole(name) || name == types.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: %q shadows a built-in role", ErrInvalidRole, name)
	}
	for _, p := range permissions {
		if !validPermissionKey(p) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPermission, p)
		}
	}

	var created *types.CustomRole
	err := s.db.WithTenantTx(ctx, caller.TenantID, func(ctx context.Context) error {
		var err error
		created, err = s.storage.CreateCustomRole(ctx, &types.CustomRole{
			TenantID:    caller.TenantID,
			Name:        name,
			Permissions: permissions,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteRole removes a custom role. System roles are refused by the storage
// layer; users still pointing at the deleted role fall back to their
// built-in role column at next resolution.
func (s *Service) DeleteRole(ctx context.Context, caller *types.CallerContext, roleID string) error {
	ctx, span := s.tracer.Start(ctx, "tenantconfig.Service.DeleteRole")
	defer span.End()

	return s.db.WithTenantTx(ctx, caller.TenantID, func(ctx context.Context) error {
		return s.storage.DeleteCustomRole(ctx, caller.TenantID, roleID)
	})
}

func mergeBranding(tenant *types.Tenant, o types.BrandingConfig) types.BrandingConfig {
	merged := types.BrandingConfig{
		CompanyName:    stringPtr(tenant.Name),
		LogoURL:        stringPtr(defaultLogoURL),
		PrimaryColor:   stringPtr(defaultPrimaryColor),
		SecondaryColor: stringPtr(defaultSecondaryColor),
	}
	if o.CompanyName != nil {
		merged.CompanyName = o.CompanyName
	}
	if o.LogoURL != nil {
		merged.LogoURL = o.LogoURL
	}
	if o.PrimaryColor != nil {
		merged.PrimaryColor = o.PrimaryColor
	}
	if o.SecondaryColor != nil {
		merged.SecondaryColor = o.SecondaryColor
	}
	return merged
}

func stringPtr(s string) *string {
	return &s
}

func NewService(storage StorageInterface, db DBClientInterface, box BoxInterface, auditor AuditRecorderInterface, cacheTTL time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.db = db
	s.box = box
	s.auditor = auditor
	s.cache = lru.NewLRU[string, *types.TenantOverrides](cacheSize, nil, cacheTTL)

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
