// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/authorization-service/internal/session"
	"github.com/canonical/authorization-service/internal/storage"
	"github.com/canonical/authorization-service/internal/types"
	"github.com/canonical/authorization-service/pkg/audit"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type resolverMocks struct {
	sessions    *MockSessionStoreInterface
	storage     *MockStorageInterface
	db          *MockDBClientInterface
	permissions *MockPermissionSnapshotInterface
	audit       *MockAuditRecorderInterface
	logger      *MockLoggerInterface
}

func passthroughTx(m *resolverMocks, tenantID string) {
	m.db.EXPECT().WithTenantTx(gomock.Any(), tenantID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestResolver_ResolveCaller(t *testing.T) {
	token := "token-1"
	tenantA := &types.Tenant{ID: "tenant-a", Slug: "acme", Name: "Acme", Enabled: true}
	tenantB := &types.Tenant{ID: "tenant-b", Slug: "globex", Name: "Globex", Enabled: true}
	tenantAID := tenantA.ID
	adminUser := &types.User{ID: "user-1", TenantID: &tenantAID, Email: "a@acme.test", Role: types.RoleAdmin}
	superUser := &types.User{ID: "root-1", TenantID: nil, Email: "root@platform.test", Role: types.RoleSuperAdmin}

	validSession := &types.Session{Token: token, UserID: adminUser.ID, TenantID: tenantA.ID, Role: types.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}
	superSession := &types.Session{Token: token, UserID: superUser.ID, TenantID: "", Role: types.RoleSuperAdmin, ExpiresAt: time.Now().Add(time.Hour)}

	adminPerms := []string{"settings:manage", "user:manage", "work_order:read"}

	testCases := []struct {
		name           string
		slug           string
		setupMocks     func(*resolverMocks)
		expectedErr    error
		expectedCaller *types.CallerContext
	}{
		{
			name: "missing session",
			slug: "acme",
			setupMocks: func(m *resolverMocks) {
				m.sessions.EXPECT().Get(gomock.Any(), token).Return(nil, session.ErrNotFound)
			},
			expectedErr: ErrUnauthenticated,
		},
		{
			name: "session user no longer exists discards the session",
			slug: "acme",
			setupMocks: func(m *resolverMocks) {
				m.sessions.EXPECT().Get(gomock.Any(), token).Return(validSession, nil)
				passthroughTx(m, tenantA.ID)
				m.storage.EXPECT().GetUserByID(gomock.Any(), adminUser.ID).Return(nil, storage.ErrNotFound)
				m.sessions.EXPECT().Destroy(gomock.Any(), token).Return(nil)
			},
			expectedErr: ErrUnauthenticated,
		},
		{
			name: "declared tenant slug not found",
			slug: "no-such-tenant",
			setupMocks: func(m *resolverMocks) {
				m.sessions.EXPECT().Get(gomock.Any(), token).Return(validSession, nil)
				passthroughTx(m, tenantA.ID)
				m.storage.EXPECT().GetUserByID(gomock.Any(), adminUser.ID).Return(adminUser, nil)
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "no-such-tenant").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrTenantNotFound,
		},
		{
			name: "disabled tenant resolves as not found",
			slug: "acme",
			setupMocks: func(m *resolverMocks) {
				disabled := *tenantA
				disabled.Enabled = false
				m.sessions.EXPECT().Get(gomock.Any(), token).Return(validSession, nil)
				passthroughTx(m, tenantA.ID)
				m.storage.EXPECT().GetUserByID(gomock.Any(), adminUser.ID).Return(adminUser, nil)
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "acme").Return(&disabled, nil)
			},
			expectedErr: ErrTenantNotFound,
		},
		{
			name: "tenant-a session replayed against tenant-b slug",
			slug: "globex",
			setupMocks: func(m *resolverMocks) {
				m.sessions.EXPECT().Get(gomock.Any(), token).Return(validSession, nil)
				passthroughTx(m, tenantA.ID)
				m.storage.EXPECT().GetUserByID(gomock.Any(), adminUser.ID).Return(adminUser, nil)
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "globex").Return(tenantB, nil)
				security := NewMockSecurityLoggerInterface(m.logger.ctrl)
				m.logger.EXPECT().Security().Return(security)
				security.EXPECT().AccessDenied(adminUser.ID, tenantB.ID, "tenant mismatch")
			},
			expectedErr: ErrTenantMismatch,
		},
		{
			name: "success pins the resolved tenant and snapshots permissions",
			slug: "acme",
			setupMocks: func(m *resolverMocks) {
				m.sessions.EXPECT().Get(gomock.Any(), token).Return(validSession, nil)
				passthroughTx(m, tenantA.ID)
				m.storage.EXPECT().GetUserByID(gomock.Any(), adminUser.ID).Return(adminUser, nil)
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "acme").Return(tenantA, nil)
				m.permissions.EXPECT().EffectivePermissions(gomock.Any(), tenantA.ID, types.BuiltInRole(types.RoleAdmin)).Return(adminPerms, nil)
			},
			expectedCaller: &types.CallerContext{
				TenantID:             tenantA.ID,
				UserID:               adminUser.ID,
				Role:                 types.BuiltInRole(types.RoleAdmin),
				EffectivePermissions: adminPerms,
			},
		},
		{
			name: "super-admin drill-down crosses tenants and is audited",
			slug: "globex",
			setupMocks: func(m *resolverMocks) {
				m.sessions.EXPECT().Get(gomock.Any(), token).Return(superSession, nil)
				passthroughTx(m, "")
				m.storage.EXPECT().GetUserByID(gomock.Any(), superUser.ID).Return(superUser, nil)
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "globex").Return(tenantB, nil)
				m.audit.EXPECT().Record(gomock.Any(), audit.EventTenantDrillDown, gomock.Any(), map[string]interface{}{
					"tenant_id":   tenantB.ID,
					"tenant_slug": tenantB.Slug,
				})
				m.permissions.EXPECT().EffectivePermissions(gomock.Any(), tenantB.ID, types.BuiltInRole(types.RoleSuperAdmin)).Return([]string{types.PermissionWildcard}, nil)
			},
			expectedCaller: &types.CallerContext{
				TenantID:             tenantB.ID,
				UserID:               superUser.ID,
				Role:                 types.BuiltInRole(types.RoleSuperAdmin),
				EffectivePermissions: []string{types.PermissionWildcard},
			},
		},
		{
			name: "custom role user resolves a custom role ref",
			slug: "acme",
			setupMocks: func(m *resolverMocks) {
				customRoleID := "role-9"
				customUser := &types.User{ID: "user-2", TenantID: &tenantAID, Email: "c@acme.test", Role: types.RoleViewer, CustomRoleID: &customRoleID}
				customSession := &types.Session{Token: token, UserID: customUser.ID, TenantID: tenantA.ID, Role: types.RoleViewer, ExpiresAt: time.Now().Add(time.Hour)}
				m.sessions.EXPECT().Get(gomock.Any(), token).Return(customSession, nil)
				passthroughTx(m, tenantA.ID)
				m.storage.EXPECT().GetUserByID(gomock.Any(), customUser.ID).Return(customUser, nil)
				m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "acme").Return(tenantA, nil)
				passthroughTx(m, tenantA.ID)
				m.storage.EXPECT().GetCustomRole(gomock.Any(), tenantA.ID, customRoleID).Return(&types.CustomRole{
					ID: customRoleID, TenantID: tenantA.ID, Name: "auditor", Permissions: []string{"audit:read"},
				}, nil)
				m.permissions.EXPECT().EffectivePermissions(gomock.Any(), tenantA.ID, types.CustomRoleRef(customRoleID, "auditor")).Return([]string{"audit:read"}, nil)
			},
			expectedCaller: &types.CallerContext{
				TenantID:             tenantA.ID,
				UserID:               "user-2",
				Role:                 types.CustomRoleRef("role-9", "auditor"),
				EffectivePermissions: []string{"audit:read"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := &resolverMocks{
				sessions:    NewMockSessionStoreInterface(ctrl),
				storage:     NewMockStorageInterface(ctrl),
				db:          NewMockDBClientInterface(ctrl),
				permissions: NewMockPermissionSnapshotInterface(ctrl),
				audit:       NewMockAuditRecorderInterface(ctrl),
				logger:      NewMockLoggerInterface(ctrl),
			}
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Resolver.ResolveCaller").DoAndReturn(
				func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			tc.setupMocks(m)

			r := NewResolver(m.sessions, m.storage, m.db, m.permissions, m.audit, false, mockTracer, mockMonitor, m.logger)

			caller, err := r.ResolveCaller(context.Background(), token, tc.slug)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(caller, tc.expectedCaller) {
				t.Errorf("expected caller %+v, got %+v", tc.expectedCaller, caller)
			}
		})
	}
}

func TestResolver_SlidingRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	token := "token-1"
	tenantID := "tenant-a"
	user := &types.User{ID: "user-1", TenantID: &tenantID, Role: types.RoleViewer}
	tenant := &types.Tenant{ID: tenantID, Slug: "acme", Enabled: true}
	sess := &types.Session{Token: token, UserID: user.ID, TenantID: tenantID, Role: types.RoleViewer, ExpiresAt: time.Now().Add(time.Hour)}

	m := &resolverMocks{
		sessions:    NewMockSessionStoreInterface(ctrl),
		storage:     NewMockStorageInterface(ctrl),
		db:          NewMockDBClientInterface(ctrl),
		permissions: NewMockPermissionSnapshotInterface(ctrl),
		audit:       NewMockAuditRecorderInterface(ctrl),
		logger:      NewMockLoggerInterface(ctrl),
	}
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "authentication.Resolver.ResolveCaller").DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)
	m.sessions.EXPECT().Get(gomock.Any(), token).Return(sess, nil)
	passthroughTx(m, tenantID)
	m.storage.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)
	m.storage.EXPECT().GetTenantBySlug(gomock.Any(), "acme").Return(tenant, nil)
	m.permissions.EXPECT().EffectivePermissions(gomock.Any(), tenantID, types.BuiltInRole(types.RoleViewer)).Return([]string{"work_order:read"}, nil)
	m.sessions.EXPECT().Refresh(gomock.Any(), token).Return(nil)

	r := NewResolver(m.sessions, m.storage, m.db, m.permissions, m.audit, true, mockTracer, mockMonitor, m.logger)

	if _, err := r.ResolveCaller(context.Background(), token, "acme"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResolver_ResolvePlatformCaller(t *testing.T) {
	token := "token-1"
	tenantID := "tenant-a"
	superUser := &types.User{ID: "root-1", TenantID: nil, Email: "root@platform.test", Role: types.RoleSuperAdmin}
	tenantAdmin := &types.User{ID: "user-1", TenantID: &tenantID, Email: "a@acme.test", Role: types.RoleAdmin}

	superSession := &types.Session{Token: token, UserID: superUser.ID, TenantID: "", Role: types.RoleSuperAdmin, ExpiresAt: time.Now().Add(time.Hour)}
	adminSession := &types.Session{Token: token, UserID: tenantAdmin.ID, TenantID: tenantID, Role: types.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}

	testCases := []struct {
		name           string
		setupMocks     func(*resolverMocks)
		expectedErr    error
		expectedCaller *types.CallerContext
	}{
		{
			name: "missing session",
			setupMocks: func(m *resolverMocks) {
				m.sessions.EXPECT().Get(gomock.Any(), token).Return(nil, session.ErrNotFound)
			},
			expectedErr: ErrUnauthenticated,
		},
		{
			name: "tenant-bound session is denied",
			setupMocks: func(m *resolverMocks) {
				m.sessions.EXPECT().Get(gomock.Any(), token).Return(adminSession, nil)
				passthroughTx(m, tenantID)
				m.storage.EXPECT().GetUserByID(gomock.Any(), tenantAdmin.ID).Return(tenantAdmin, nil)
				security := NewMockSecurityLoggerInterface(m.logger.ctrl)
				m.logger.EXPECT().Security().Return(security)
				security.EXPECT().AccessDenied(tenantAdmin.ID, "", "platform surface")
			},
			expectedErr: ErrTenantMismatch,
		},
		{
			name: "platform super-admin resolves with no tenant pin",
			setupMocks: func(m *resolverMocks) {
				m.sessions.EXPECT().Get(gomock.Any(), token).Return(superSession, nil)
				passthroughTx(m, "")
				m.storage.EXPECT().GetUserByID(gomock.Any(), superUser.ID).Return(superUser, nil)
			},
			expectedCaller: &types.CallerContext{
				UserID:               superUser.ID,
				Role:                 types.BuiltInRole(types.RoleSuperAdmin),
				EffectivePermissions: []string{types.PermissionWildcard},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := &resolverMocks{
				sessions:    NewMockSessionStoreInterface(ctrl),
				storage:     NewMockStorageInterface(ctrl),
				db:          NewMockDBClientInterface(ctrl),
				permissions: NewMockPermissionSnapshotInterface(ctrl),
				audit:       NewMockAuditRecorderInterface(ctrl),
				logger:      NewMockLoggerInterface(ctrl),
			}
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Resolver.ResolvePlatformCaller").DoAndReturn(
				func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			tc.setupMocks(m)

			r := NewResolver(m.sessions, m.storage, m.db, m.permissions, m.audit, false, mockTracer, mockMonitor, m.logger)

			caller, err := r.ResolvePlatformCaller(context.Background(), token)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(caller, tc.expectedCaller) {
				t.Errorf("expected caller %+v, got %+v", tc.expectedCaller, caller)
			}
		})
	}
}
