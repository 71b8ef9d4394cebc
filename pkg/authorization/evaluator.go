// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authorization decides, per request, whether a resolved caller may
// exercise a capability. Permission checks and feature-entitlement checks are
// independent gates; an operation requiring both passes only if both allow.
package authorization

import (
	"context"
	"fmt"
	"sort"

	"github.com/canonical/authorization-service/internal/logging"
	"github.com/canonical/authorization-service/internal/monitoring"
	"github.com/canonical/authorization-service/internal/tracing"
	"github.com/canonical/authorization-service/internal/types"
)

var _ EvaluatorInterface = (*Evaluator)(nil)

type Evaluator struct {
	config ConfigProviderInterface
	roles  RoleProviderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewEvaluator(
	config ConfigProviderInterface,
	roles RoleProviderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Evaluator {
	return &Evaluator{
		config:  config,
		roles:   roles,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Check resolves (caller, permission) to allow or deny. Resolution order,
// first match wins:
//
//  1. super-admin sentinel allows unconditionally
//  2. an explicit tenant matrix entry for (role, permission) is used
//     verbatim, unless it is false for a non-revocable pair
//  3. a custom role consults its own persisted permission list
//  4. a built-in role consults the catalog defaults
//  5. deny
func (e *Evaluator) Check(ctx context.Context, caller *types.CallerContext, permission string) (bool, error) {
	ctx, span := e.tracer.Start(ctx, "authorization.Evaluator.Check")
	defer span.End()

	if caller.Role.IsSuperAdmin() {
		return true, nil
	}

	roleName := caller.Role.Name()

	matrix, err := e.config.RBACMatrix(ctx, caller.TenantID)
	if err != nil {
		return false, fmt.Errorf("failed to load rbac matrix: %w", err)
	}

	if allowed, ok := matrix[roleName][permission]; ok {
		if !allowed && IsNonRevocable(roleName, permission) {
			return true, nil
		}
		return allowed, nil
	}

	if customID, ok := caller.Role.CustomID(); ok {
		role, err := e.roles.GetCustomRole(ctx, caller.TenantID, customID)
		if err != nil {
			return false, fmt.Errorf("failed to load custom role: %w", err)
		}
		for _, p := range role.Permissions {
			if p == permission {
				return true, nil
			}
		}
		return false, nil
	}

	return HasDefault(roleName, permission), nil
}

// FeatureEnabled checks the tenant's plan entitlements. A missing key denies
// for every role; drilling down as super-admin does not grant a tenant a
// feature its plan lacks.
func (e *Evaluator) FeatureEnabled(ctx context.Context, tenantID, featureKey string) (bool, error) {
	ctx, span := e.tracer.Start(ctx, "authorization.Evaluator.FeatureEnabled")
	defer span.End()

	entitlements, err := e.config.FeatureEntitlements(ctx, tenantID)
	if err != nil {
		return false, fmt.Errorf("failed to load feature entitlements: %w", err)
	}

	return entitlements[featureKey], nil
}

// EffectivePermissions computes the full allow set for a role within a
// tenant, for the caller-context snapshot taken at identity resolution. The
// snapshot is informational; enforcement always goes through Check.
func (e *Evaluator) EffectivePermissions(ctx context.Context, tenantID string, role types.RoleRef) ([]string, error) {
	ctx, span := e.tracer.Start(ctx, "authorization.Evaluator.EffectivePermissions")
	defer span.End()

	if role.IsSuperAdmin() {
		return []string{types.PermissionWildcard}, nil
	}

	matrix, err := e.config.RBACMatrix(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rbac matrix: %w", err)
	}

	roleName := role.Name()
	allowed := make(map[string]bool)

	if customID, ok := role.CustomID(); ok {
		customRole, err := e.roles.GetCustomRole(ctx, tenantID, customID)
		if err != nil {
			return nil, fmt.Errorf("failed to load custom role: %w", err)
		}
		for _, p := range customRole.Permissions {
			allowed[p] = true
		}
	} else {
		for _, p := range DefaultPermissions(roleName) {
			allowed[p] = true
		}
	}

	for permission, granted := range matrix[roleName] {
		if !granted && IsNonRevocable(roleName, permission) {
			continue
		}
		if granted {
			allowed[permission] = true
		} else {
			delete(allowed, permission)
		}
	}

	perms := make([]string, 0, len(allowed))
	for p := range allowed {
		perms = append(perms, p)
	}
	sort.Strings(perms)

	return perms, nil
}
