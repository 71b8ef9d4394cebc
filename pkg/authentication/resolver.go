// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authentication resolves an opaque session token and a declared
// tenant slug into a caller context, or a typed failure. Resolution is the
// first thing every domain request goes through; a failure short-circuits
// before any data access.
package authentication

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/authorization-service/internal/logging"
	"github.com/canonical/authorization-service/internal/monitoring"
	"github.com/canonical/authorization-service/internal/session"
	"github.com/canonical/authorization-service/internal/storage"
	"github.com/canonical/authorization-service/internal/tracing"
	"github.com/canonical/authorization-service/internal/types"
	"github.com/canonical/authorization-service/pkg/audit"
)

var _ ResolverInterface = (*Resolver)(nil)

type Resolver struct {
	sessions    SessionStoreInterface
	storage     StorageInterface
	db          DBClientInterface
	permissions PermissionSnapshotInterface
	audit       AuditRecorderInterface

	// slidingRefresh extends the session on every successful resolution.
	slidingRefresh bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewResolver(
	sessions SessionStoreInterface,
	storage StorageInterface,
	db DBClientInterface,
	permissions PermissionSnapshotInterface,
	auditRecorder AuditRecorderInterface,
	slidingRefresh bool,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Resolver {
	return &Resolver{
		sessions:       sessions,
		storage:        storage,
		db:             db,
		permissions:    permissions,
		audit:          auditRecorder,
		slidingRefresh: slidingRefresh,
		tracer:         tracer,
		monitor:        monitor,
		logger:         logger,
	}
}

// ResolveCaller validates the session, loads its user, resolves the declared
// slug and cross-checks the two tenants. On success the caller context is
// pinned to the resolved tenant, not the session's stored tenant; that is
// what lets a super-admin drill down into another tenant, and every such
// drill-down emits an audit event.
func (r *Resolver) ResolveCaller(ctx context.Context, sessionToken, declaredTenantSlug string) (*types.CallerContext, error) {
	ctx, span := r.tracer.Start(ctx, "authentication.Resolver.ResolveCaller")
	defer span.End()

	sess, err := r.sessions.Get(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var user *types.User
	err = r.db.WithTenantTx(ctx, sess.TenantID, func(ctx context.Context) error {
		user, err = r.storage.GetUserByID(ctx, sess.UserID)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// The session outlived its user; discard it.
			if derr := r.sessions.Destroy(ctx, sessionToken); derr != nil {
				r.logger.Errorf("failed to discard orphaned session: %v", derr)
			}
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	tenant, err := r.storage.GetTenantBySlug(ctx, declaredTenantSlug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to resolve tenant: %w", err)
	}
	if !tenant.Enabled {
		return nil, ErrTenantNotFound
	}

	isSuperAdmin := user.TenantID == nil && user.Role == types.RoleSuperAdmin
	if !isSuperAdmin && (user.TenantID == nil || *user.TenantID != tenant.ID) {
		// A valid tenant-A session replayed against tenant B's slug.
		r.logger.Security().AccessDenied(user.ID, tenant.ID, "tenant mismatch")
		return nil, ErrTenantMismatch
	}

	role, err := r.roleRef(ctx, user, tenant.ID)
	if err != nil {
		return nil, err
	}

	if isSuperAdmin {
		r.audit.Record(ctx, audit.EventTenantDrillDown, &user.ID, map[string]interface{}{
			"tenant_id":   tenant.ID,
			"tenant_slug": tenant.Slug,
		})
	}

	perms, err := r.permissions.EffectivePermissions(ctx, tenant.ID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot permissions: %w", err)
	}

	if r.slidingRefresh {
		if err := r.sessions.Refresh(ctx, sessionToken); err != nil {
			r.logger.Errorf("failed to refresh session expiry: %v", err)
		}
	}

	return &types.CallerContext{
		TenantID:             tenant.ID,
		UserID:               user.ID,
		Role:                 role,
		EffectivePermissions: perms,
	}, nil
}

// ResolvePlatformCaller validates the session for a platform route, where no
// tenant slug is declared. Only the platform super-admin sentinel may pass;
// any tenant-bound session gets the same generic denial as a tenant mismatch.
func (r *Resolver) ResolvePlatformCaller(ctx context.Context, sessionToken string) (*types.CallerContext, error) {
	ctx, span := r.tracer.Start(ctx, "authentication.Resolver.ResolvePlatformCaller")
	defer span.End()

	sess, err := r.sessions.Get(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var user *types.User
	err = r.db.WithTenantTx(ctx, sess.TenantID, func(ctx context.Context) error {
		user, err = r.storage.GetUserByID(ctx, sess.UserID)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			if derr := r.sessions.Destroy(ctx, sessionToken); derr != nil {
				r.logger.Errorf("failed to discard orphaned session: %v", derr)
			}
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	if user.TenantID != nil || user.Role != types.RoleSuperAdmin {
		r.logger.Security().AccessDenied(user.ID, "", "platform surface")
		return nil, ErrTenantMismatch
	}

	if r.slidingRefresh {
		if err := r.sessions.Refresh(ctx, sessionToken); err != nil {
			r.logger.Errorf("failed to refresh session expiry: %v", err)
		}
	}

	return &types.CallerContext{
		UserID:               user.ID,
		Role:                 types.BuiltInRole(types.RoleSuperAdmin),
		EffectivePermissions: []string{types.PermissionWildcard},
	}, nil
}

func (r *Resolver) roleRef(ctx context.Context, user *types.User, tenantID string) (types.RoleRef, error) {
	if user.CustomRoleID == nil {
		return types.BuiltInRole(user.Role), nil
	}

	var customRole *types.CustomRole
	err := r.db.WithTenantTx(ctx, tenantID, func(ctx context.Context) error {
		var err error
		customRole, err = r.storage.GetCustomRole(ctx, tenantID, *user.CustomRoleID)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// The custom role vanished under the user; fall back to the
			// built-in enum so the caller does not lock out entirely.
			return types.BuiltInRole(user.Role), nil
		}
		return types.RoleRef{}, fmt.Errorf("failed to load custom role: %w", err)
	}

	return types.CustomRoleRef(customRole.ID, customRole.Name), nil
}
