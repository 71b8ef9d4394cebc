// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

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

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	sessions SessionStoreInterface
	storage  StorageInterface
	db       DBClientInterface
	audit    AuditRecorderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	sessions SessionStoreInterface,
	storage StorageInterface,
	db DBClientInterface,
	auditRecorder AuditRecorderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		sessions: sessions,
		storage:  storage,
		db:       db,
		audit:    auditRecorder,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Login verifies the password of a user within the declared tenant and
// establishes a session. A super-admin sentinel may log in through any
// enabled tenant's login endpoint; its session carries no tenant.
func (s *Service) Login(ctx context.Context, tenantSlug, email, password string) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.Login")
	defer span.End()

	tenant, err := s.storage.GetTenantBySlug(ctx, tenantSlug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to resolve tenant: %w", err)
	}
	if !tenant.Enabled {
		return nil, ErrTenantNotFound
	}

	user, err := s.lookupUser(ctx, tenant.ID, email)
	if err != nil {
		return nil, err
	}

	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		s.logger.Security().AccessDenied(user.ID, tenant.ID, "invalid credentials")
		return nil, ErrUnauthenticated
	}

	sessionTenantID := ""
	if user.TenantID != nil {
		sessionTenantID = *user.TenantID
	}

	sess, err := s.sessions.Create(ctx, user.ID, sessionTenantID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.audit.Record(ctx, audit.EventSessionEstablished, &user.ID, map[string]interface{}{
		"tenant_id":   tenant.ID,
		"tenant_slug": tenant.Slug,
	})

	return sess, nil
}

// Logout destroys the session. An unknown or already-expired token is not an
// error; logout is idempotent.
func (s *Service) Logout(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.Logout")
	defer span.End()

	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	if err := s.sessions.Destroy(ctx, token); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	s.audit.Record(ctx, audit.EventSessionDestroyed, &sess.UserID, map[string]interface{}{
		"tenant_id": sess.TenantID,
	})

	return nil
}

// lookupUser finds the tenant user for email, falling back to a platform
// super-admin sentinel. Both lookups failing reads as ErrUnauthenticated so a
// login response never reveals whether an address exists.
func (s *Service) lookupUser(ctx context.Context, tenantID, email string) (*types.User, error) {
	var user *types.User
	err := s.db.WithTenantTx(ctx, tenantID, func(ctx context.Context) error {
		var err error
		user, err = s.storage.GetUserByEmail(ctx, tenantID, email)
		return err
	})
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user, err = s.storage.GetPlatformUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to look up platform user: %w", err)
	}

	return user, nil
}
