// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/authorization-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_authorization.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func caller(tenantID string, role types.RoleRef) *types.CallerContext {
	return &types.CallerContext{
		TenantID: tenantID,
		UserID:   "user-1",
		Role:     role,
	}
}

func TestEvaluator_Check(t *testing.T) {
	tenantID := "tenant-1"
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		caller      *types.CallerContext
		permission  string
		setupMocks  func(*MockConfigProviderInterface, *MockRoleProviderInterface)
		expected    bool
		expectedErr error
	}{
		{
			name:       "super admin bypasses everything",
			caller:     caller(tenantID, types.BuiltInRole(types.RoleSuperAdmin)),
			permission: "anything:at_all",
			setupMocks: func(config *MockConfigProviderInterface, roles *MockRoleProviderInterface) {},
			expected:   true,
		},
		{
			name:       "matrix grant wins for viewer",
			caller:     caller(tenantID, types.BuiltInRole(types.RoleViewer)),
			permission: PermWorkOrderRead,
			setupMocks: func(config *MockConfigProviderInterface, roles *MockRoleProviderInterface) {
				config.EXPECT().RBACMatrix(gomock.Any(), tenantID).Return(types.RBACMatrix{
					types.RoleViewer: {PermWorkOrderRead: true},
				}, nil)
			},
			expected: true,
		},
		{
			name:       "no matrix entry falls back to viewer default deny",
			caller:     caller(tenantID, types.BuiltInRole(types.RoleViewer)),
			permission: PermWorkOrderWrite,
			setupMocks: func(config *MockConfigProviderInterface, roles *MockRoleProviderInterface) {
				config.EXPECT().RBACMatrix(gomock.Any(), tenantID).Return(types.RBACMatrix{
					types.RoleViewer: {PermWorkOrderRead: true},
				}, nil)
			},
			expected: false,
		},
		{
			name:       "explicit false overrides an admin default",
			caller:     caller(tenantID, types.BuiltInRole(types.RoleAdmin)),
			permission: PermWorkOrderWrite,
			setupMocks: func(config *MockConfigProviderInterface, roles *MockRoleProviderInterface) {
				config.EXPECT().RBACMatrix(gomock.Any(), tenantID).Return(types.RBACMatrix{
					types.RoleAdmin: {PermWorkOrderWrite: false},
				}, nil)
			},
			expected: false,
		},
		{
			name:       "explicit false cannot revoke admin user management",
			caller:     caller(tenantID, types.BuiltInRole(types.RoleAdmin)),
			permission: PermUserManage,
			setupMocks: func(config *MockConfigProviderInterface, roles *MockRoleProviderInterface) {
				config.EXPECT().RBACMatrix(gomock.Any(), tenantID).Return(types.RBACMatrix{
					types.RoleAdmin: {PermUserManage: false},
				}, nil)
			},
			expected: true,
		},
		{
			name:       "unrelated matrix entry does not change the default",
			caller:     caller(tenantID, types.BuiltInRole(types.RoleManager)),
			permission: PermWorkOrderWrite,
			setupMocks: func(config *MockConfigProviderInterface, roles *MockRoleProviderInterface) {
				config.EXPECT().RBACMatrix(gomock.Any(), tenantID).Return(types.RBACMatrix{
					types.RoleViewer: {PermWorkOrderWrite: true},
				}, nil)
			},
			expected: true,
		},
		{
			name:       "custom role resolves from its own list",
			caller:     caller(tenantID, types.CustomRoleRef("role-9", "auditor")),
			permission: PermAuditRead,
			setupMocks: func(config *MockConfigProviderInterface, roles *MockRoleProviderInterface) {
				config.EXPECT().RBACMatrix(gomock.Any(), tenantID).Return(types.RBACMatrix{}, nil)
				roles.EXPECT().GetCustomRole(gomock.Any(), tenantID, "role-9").Return(&types.CustomRole{
					ID:          "role-9",
					TenantID:    tenantID,
					Name:        "auditor",
					Permissions: []string{PermAuditRead, PermReportRead},
				}, nil)
			},
			expected: true,
		},
		{
			name:       "custom role does not fall back to built-in defaults",
			caller:     caller(tenantID, types.CustomRoleRef("role-9", "auditor")),
			permission: PermWorkOrderRead,
			setupMocks: func(config *MockConfigProviderInterface, roles *MockRoleProviderInterface) {
				config.EXPECT().RBACMatrix(gomock.Any(), tenantID).Return(types.RBACMatrix{}, nil)
				roles.EXPECT().GetCustomRole(gomock.Any(), tenantID, "role-9").Return(&types.CustomRole{
					ID:          "role-9",
					TenantID:    tenantID,
					Name:        "auditor",
					Permissions: []string{PermAuditRead},
				}, nil)
			},
			expected: false,
		},
		{
			name:       "matrix override takes precedence over a custom role list",
			caller:     caller(tenantID, types.CustomRoleRef("role-9", "auditor")),
			permission: PermAuditRead,
			setupMocks: func(config *MockConfigProviderInterface, roles *MockRoleProviderInterface) {
				config.EXPECT().RBACMatrix(gomock.Any(), tenantID).Return(types.RBACMatrix{
					"auditor": {PermAuditRead: false},
				}, nil)
			},
			expected: false,
		},
		{
			name:       "matrix load failure",
			caller:     caller(tenantID, types.BuiltInRole(types.RoleAdmin)),
			permission: PermWorkOrderRead,
			setupMocks: func(config *MockConfigProviderInterface, roles *MockRoleProviderInterface) {
				config.EXPECT().RBACMatrix(gomock.Any(), tenantID).Return(nil, dbErr)
			},
			expected:    false,
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockConfig := NewMockConfigProviderInterface(ctrl)
			mockRoles := NewMockRoleProviderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Evaluator.Check").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockConfig, mockRoles)

			e := NewEvaluator(mockConfig, mockRoles, mockTracer, mockMonitor, mockLogger)

			allowed, err := e.Check(context.Background(), tc.caller, tc.permission)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if allowed != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, allowed)
			}
		})
	}
}

func TestEvaluator_FeatureEnabled(t *testing.T) {
	tenantID := "tenant-1"

	testCases := []struct {
		name         string
		entitlements map[string]bool
		featureKey   string
		expected     bool
	}{
		{"entitled", map[string]bool{FeatureFactoryLayout: true}, FeatureFactoryLayout, true},
		{"explicitly disabled", map[string]bool{FeatureFactoryLayout: false}, FeatureFactoryLayout, false},
		{"missing key denies", map[string]bool{FeatureCostAnalytics: true}, FeatureFactoryLayout, false},
		{"empty entitlements deny", map[string]bool{}, FeatureCostAnalytics, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockConfig := NewMockConfigProviderInterface(ctrl)
			mockRoles := NewMockRoleProviderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Evaluator.FeatureEnabled").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockConfig.EXPECT().FeatureEntitlements(gomock.Any(), tenantID).Return(tc.entitlements, nil)

			e := NewEvaluator(mockConfig, mockRoles, mockTracer, mockMonitor, mockLogger)

			enabled, err := e.FeatureEnabled(context.Background(), tenantID, tc.featureKey)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if enabled != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, enabled)
			}
		})
	}
}

func TestEvaluator_EffectivePermissions(t *testing.T) {
	tenantID := "tenant-1"

	testCases := []struct {
		name       string
		role       types.RoleRef
		setupMocks func(*MockConfigProviderInterface, *MockRoleProviderInterface, *MockTracingInterface)
		expected   []string
	}{
		{
			name: "super admin gets the wildcard",
			role: types.BuiltInRole(types.RoleSuperAdmin),
			setupMocks: func(config *MockConfigProviderInterface, roles *MockRoleProviderInterface, tracer *MockTracingInterface) {
				tracer.EXPECT().Start(gomock.Any(), "authorization.Evaluator.EffectivePermissions").Return(context.Background(), trace.SpanFromContext(context.Background()))
			},
			expected: []string{types.PermissionWildcard},
		},
		{
			name: "viewer defaults plus a grant minus a revocation",
			role: types.BuiltInRole(types.RoleViewer),
			setupMocks: func(config *MockConfigProviderInterface, roles *MockRoleProviderInterface, tracer *MockTracingInterface) {
				tracer.EXPECT().Start(gomock.Any(), "authorization.Evaluator.EffectivePermissions").Return(context.Background(), trace.SpanFromContext(context.Background()))
				config.EXPECT().RBACMatrix(gomock.Any(), tenantID).Return(types.RBACMatrix{
					types.RoleViewer: {
						PermWorkOrderWrite: true,
						PermReportRead:     false,
					},
				}, nil)
			},
			expected: []string{PermAssetRead, PermInventoryRead, PermWorkOrderRead, PermWorkOrderWrite},
		},
		{
			name: "admin keeps the non-revocable floor",
			role: types.BuiltInRole(types.RoleAdmin),
			setupMocks: func(config *MockConfigProviderInterface, roles *MockRoleProviderInterface, tracer *MockTracingInterface) {
				tracer.EXPECT().Start(gomock.Any(), "authorization.Evaluator.EffectivePermissions").Return(context.Background(), trace.SpanFromContext(context.Background()))
				config.EXPECT().RBACMatrix(gomock.Any(), tenantID).Return(types.RBACMatrix{
					types.RoleAdmin: {
						PermUserManage:     false,
						PermWorkOrderRead:  false,
						PermWorkOrderWrite: false,
					},
				}, nil)
			},
			expected: []string{PermAssetRead, PermAssetWrite, PermAuditRead, PermInventoryRead, PermInventoryWrite, PermReportRead, PermSettingsManage, PermUserManage},
		},
		{
			name: "custom role list plus matrix grant",
			role: types.CustomRoleRef("role-9", "auditor"),
			setupMocks: func(config *MockConfigProviderInterface, roles *MockRoleProviderInterface, tracer *MockTracingInterface) {
				tracer.EXPECT().Start(gomock.Any(), "authorization.Evaluator.EffectivePermissions").Return(context.Background(), trace.SpanFromContext(context.Background()))
				config.EXPECT().RBACMatrix(gomock.Any(), tenantID).Return(types.RBACMatrix{
					"auditor": {PermReportRead: true},
				}, nil)
				roles.EXPECT().GetCustomRole(gomock.Any(), tenantID, "role-9").Return(&types.CustomRole{
					ID:          "role-9",
					TenantID:    tenantID,
					Name:        "auditor",
					Permissions: []string{PermAuditRead},
				}, nil)
			},
			expected: []string{PermAuditRead, PermReportRead},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockConfig := NewMockConfigProviderInterface(ctrl)
			mockRoles := NewMockRoleProviderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			tc.setupMocks(mockConfig, mockRoles, mockTracer)

			e := NewEvaluator(mockConfig, mockRoles, mockTracer, mockMonitor, mockLogger)

			perms, err := e.EffectivePermissions(context.Background(), tenantID, tc.role)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(perms, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, perms)
			}
		})
	}
}
