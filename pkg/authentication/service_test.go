// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/authorization-service/internal/session"
	"github.com/canonical/authorization-service/internal/storage"
	"github.com/canonical/authorization-service/internal/types"
	"github.com/canonical/authorization-service/pkg/audit"
)

type serviceMocks struct {
	sessions *MockSessionStoreInterface
	storage  *MockStorageInterface
	db       *MockDBClientInterface
	audit    *MockAuditRecorderInterface
	logger   *MockLoggerInterface
}

func servicePassthroughTx(m *serviceMocks, tenantID string) {
	m.db.EXPECT().WithTenantTx(gomock.Any(), tenantID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestService_Login(t *testing.T) {
	password := "CorrectHorse9Battery"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	tenant := &types.Tenant{ID: "tenant-a", Slug: "acme", Enabled: true}
	tenantID := tenant.ID
	user := &types.User{ID: "user-1", TenantID: &tenantID, Email: "a@acme.test", PasswordHash: hash, Role: types.RoleAdmin}
	superUser := &types.User{ID: "root-1", TenantID: nil, Email: "root@platform.test", PasswordHash: hash, Role: types.RoleSuperAdmin}
	sess := &types.Session{Token: "token-1", UserID: user.ID, TenantID: tenant.ID, Role: user.Role, ExpiresAt: time.Now().Add(time.Hour)}

	testCases := []struct {
		name        string
		slug        string
		email       string
		password    string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:     "success establishes a session and audits it",
			slug:     "acme",
			email:    user.Email,
			password: password,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "acme").Return(tenant, nil)
				servicePassthroughTx(m, tenant.ID)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), tenant.ID, user.Email).Return(user, nil)
				m.sessions.EXPECT().Create(gomock.Any(), user.ID, tenant.ID, user.Role).Return(sess, nil)
				m.audit.EXPECT().Record(gomock.Any(), audit.EventSessionEstablished, gomock.Any(), gomock.Any())
			},
		},
		{
			name:     "unknown tenant",
			slug:     "nope",
			email:    user.Email,
			password: password,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "nope").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrTenantNotFound,
		},
		{
			name:     "disabled tenant",
			slug:     "acme",
			email:    user.Email,
			password: password,
			setupMocks: func(m *serviceMocks) {
				disabled := *tenant
				disabled.Enabled = false
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "acme").Return(&disabled, nil)
			},
			expectedErr: ErrTenantNotFound,
		},
		{
			name:     "unknown email stays undifferentiated",
			slug:     "acme",
			email:    "ghost@acme.test",
			password: password,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "acme").Return(tenant, nil)
				servicePassthroughTx(m, tenant.ID)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), tenant.ID, "ghost@acme.test").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetPlatformUserByEmail(gomock.Any(), "ghost@acme.test").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrUnauthenticated,
		},
		{
			name:     "wrong password",
			slug:     "acme",
			email:    user.Email,
			password: "not-the-password",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "acme").Return(tenant, nil)
				servicePassthroughTx(m, tenant.ID)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), tenant.ID, user.Email).Return(user, nil)
				security := NewMockSecurityLoggerInterface(m.logger.ctrl)
				m.logger.EXPECT().Security().Return(security)
				security.EXPECT().AccessDenied(user.ID, tenant.ID, "invalid credentials")
			},
			expectedErr: ErrUnauthenticated,
		},
		{
			name:     "super-admin logs in through a tenant endpoint with an unbound session",
			slug:     "acme",
			email:    superUser.Email,
			password: password,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "acme").Return(tenant, nil)
				servicePassthroughTx(m, tenant.ID)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), tenant.ID, superUser.Email).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetPlatformUserByEmail(gomock.Any(), superUser.Email).Return(superUser, nil)
				m.sessions.EXPECT().Create(gomock.Any(), superUser.ID, "", types.RoleSuperAdmin).Return(&types.Session{
					Token: "token-2", UserID: superUser.ID, TenantID: "", Role: types.RoleSuperAdmin, ExpiresAt: time.Now().Add(time.Hour),
				}, nil)
				m.audit.EXPECT().Record(gomock.Any(), audit.EventSessionEstablished, gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := &serviceMocks{
				sessions: NewMockSessionStoreInterface(ctrl),
				storage:  NewMockStorageInterface(ctrl),
				db:       NewMockDBClientInterface(ctrl),
				audit:    NewMockAuditRecorderInterface(ctrl),
				logger:   NewMockLoggerInterface(ctrl),
			}
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Service.Login").DoAndReturn(
				func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			tc.setupMocks(m)

			s := NewService(m.sessions, m.storage, m.db, m.audit, mockTracer, mockMonitor, m.logger)

			sess, err := s.Login(context.Background(), tc.slug, tc.email, tc.password)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sess == nil || sess.Token == "" {
				t.Fatal("expected a session with a token")
			}
		})
	}
}

func TestService_Logout(t *testing.T) {
	token := "token-1"
	sess := &types.Session{Token: token, UserID: "user-1", TenantID: "tenant-a", Role: types.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success destroys the session and audits it",
			setupMocks: func(m *serviceMocks) {
				m.sessions.EXPECT().Get(gomock.Any(), token).Return(sess, nil)
				m.sessions.EXPECT().Destroy(gomock.Any(), token).Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), audit.EventSessionDestroyed, gomock.Any(), map[string]interface{}{
					"tenant_id": sess.TenantID,
				})
			},
		},
		{
			name: "unknown token is a no-op",
			setupMocks: func(m *serviceMocks) {
				m.sessions.EXPECT().Get(gomock.Any(), token).Return(nil, session.ErrNotFound)
			},
		},
		{
			name: "store failure propagates",
			setupMocks: func(m *serviceMocks) {
				m.sessions.EXPECT().Get(gomock.Any(), token).Return(sess, nil)
				m.sessions.EXPECT().Destroy(gomock.Any(), token).Return(errors.New("redis down"))
			},
			expectedErr: errors.New("redis down"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := &serviceMocks{
				sessions: NewMockSessionStoreInterface(ctrl),
				storage:  NewMockStorageInterface(ctrl),
				db:       NewMockDBClientInterface(ctrl),
				audit:    NewMockAuditRecorderInterface(ctrl),
				logger:   NewMockLoggerInterface(ctrl),
			}
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Service.Logout").DoAndReturn(
				func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			tc.setupMocks(m)

			s := NewService(m.sessions, m.storage, m.db, m.audit, mockTracer, mockMonitor, m.logger)

			err := s.Logout(context.Background(), token)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
