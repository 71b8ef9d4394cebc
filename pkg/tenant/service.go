// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"fmt"
	"regexp"

	"github.com/canonical/authorization-service/internal/logging"
	"github.com/canonical/authorization-service/internal/monitoring"
	"github.com/canonical/authorization-service/internal/tracing"
	"github.com/canonical/authorization-service/internal/types"
	"github.com/canonical/authorization-service/pkg/audit"
	"github.com/canonical/authorization-service/pkg/authentication"
	"github.com/canonical/authorization-service/pkg/authorization"
)

// Slugs end up in URLs and in retired-slug bookkeeping, so the format is
// locked down to DNS-label-like tokens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

const maxSlugLength = 63

const defaultPlan = "standard"

type Service struct {
	storage StorageInterface
	db      DBClientInterface
	auditor AuditRecorderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateTenant registers a tenant under an immutable slug. A slug that ever
// belonged to a deleted tenant is refused by the storage layer, so audit
// entries and cached references can never silently point at a new tenant.
func (s *Service) CreateTenant(ctx context.Context, name, slug, plan string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	if len(slug) > maxSlugLength || !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	if plan == "" {
		plan = defaultPlan
	}

	created, err := s.storage.CreateTenant(ctx, &types.Tenant{
		Name:    name,
		Slug:    slug,
		Plan:    plan,
		Enabled: true,
	})
	if err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, audit.EventTenantCreated, nil, map[string]interface{}{
		"tenant_id":   created.ID,
		"tenant_slug": created.Slug,
		"plan":        created.Plan,
	})

	return created, nil
}

func (s *Service) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	return s.storage.GetTenantByID(ctx, id)
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenants(ctx)
}

// SetTenantEnabled flips the directory kill switch. A disabled tenant fails
// identity resolution for every one of its users on their next request; no
// per-user cleanup is involved.
func (s *Service) SetTenantEnabled(ctx context.Context, id string, enabled bool) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetTenantEnabled")
	defer span.End()

	err := s.storage.UpdateTenant(ctx, &types.Tenant{ID: id, Enabled: enabled}, []string{"enabled"})
	if err != nil {
		return err
	}

	if !enabled {
		s.auditor.Record(ctx, audit.EventTenantDisabled, nil, map[string]interface{}{
			"tenant_id": id,
		})
	}

	return nil
}

// DeleteTenant removes the tenant and its users and roles, retires the slug,
// and leaves audit entries in place.
func (s *Service) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteTenant")
	defer span.End()

	tenant, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteTenant(ctx, id); err != nil {
		return err
	}

	s.auditor.Record(ctx, audit.EventTenantDeleted, nil, map[string]interface{}{
		"tenant_id":   tenant.ID,
		"tenant_slug": tenant.Slug,
	})

	return nil
}

// CreateUser provisions a user into the caller's resolved tenant. The role
// must be a built-in tenant role, or a custom role belonging to the tenant
// given by ID; the super-admin sentinel cannot be provisioned here.
func (s *Service) CreateUser(ctx context.Context, caller *types.CallerContext, email, username, password, role string, customRoleID *string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateUser")
	defer span.End()

	if !authorization.IsBuiltInRole(role) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	if err := authentication.ValidatePasswordStrength(password); err != nil {
		return nil, err
	}

	hash, err := authentication.HashPassword(password)
	if err != nil {
		return nil, err
	}

	tenantID := caller.TenantID
	var created *types.User
	err = s.db.WithTenantTx(ctx, tenantID, func(ctx context.Context) error {
		if customRoleID != nil {
			if _, err := s.storage.GetCustomRole(ctx, tenantID, *customRoleID); err != nil {
				return fmt.Errorf("custom role lookup failed: %w", err)
			}
		}

		var err error
		created, err = s.storage.CreateUser(ctx, &types.User{
			TenantID:     &tenantID,
			Email:        email,
			Username:     username,
			PasswordHash: hash,
			Role:         role,
			CustomRoleID: customRoleID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	callerID := caller.UserID
	s.auditor.Record(ctx, audit.EventUserCreated, &callerID, map[string]interface{}{
		"tenant_id": tenantID,
		"user_id":   created.ID,
		"role":      role,
	})

	return created, nil
}

// DeleteUser removes a user from the caller's tenant. The user's audit
// entries survive with their user reference nulled by the sweeper.
func (s *Service) DeleteUser(ctx context.Context, caller *types.CallerContext, userID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteUser")
	defer span.End()

	err := s.db.WithTenantTx(ctx, caller.TenantID, func(ctx context.Context) error {
		return s.storage.DeleteUser(ctx, caller.TenantID, userID)
	})
	if err != nil {
		return err
	}

	callerID := caller.UserID
	s.auditor.Record(ctx, audit.EventUserDeleted, &callerID, map[string]interface{}{
		"tenant_id": caller.TenantID,
		"user_id":   userID,
	})

	return nil
}

func NewService(storage StorageInterface, db DBClientInterface, auditor AuditRecorderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.db = db
	s.auditor = auditor

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
