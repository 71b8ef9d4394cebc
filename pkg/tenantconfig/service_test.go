// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantconfig

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/authorization-service/internal/secrets"
	"github.com/canonical/authorization-service/internal/types"
	"github.com/canonical/authorization-service/pkg/audit"
	"github.com/canonical/authorization-service/pkg/authorization"
)

//go:generate mockgen -build_flags=--mod=mod -package tenantconfig -destination ./mock_tenantconfig.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenantconfig -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenantconfig -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenantconfig -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const testTenantID = "tenant-1"

type serviceMocks struct {
	storage *MockStorageInterface
	db      *MockDBClientInterface
	box     *MockBoxInterface
	auditor *MockAuditRecorderInterface
	tracer  *MockTracingInterface
	monitor *MockMonitorInterface
	logger  *MockLoggerInterface
}

func newServiceMocks(ctrl *gomock.Controller) *serviceMocks {
	m := &serviceMocks{
		storage: NewMockStorageInterface(ctrl),
		db:      NewMockDBClientInterface(ctrl),
		box:     NewMockBoxInterface(ctrl),
		auditor: NewMockAuditRecorderInterface(ctrl),
		tracer:  NewMockTracingInterface(ctrl),
		monitor: NewMockMonitorInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()
	return m
}

func (m *serviceMocks) service(box BoxInterface) *Service {
	return NewService(m.storage, m.db, box, m.auditor, time.Minute, m.tracer, m.monitor, m.logger)
}

func (m *serviceMocks) passthroughTx(tenantID string) {
	m.db.EXPECT().WithTenantTx(gomock.Any(), tenantID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func testBox(t *testing.T) *secrets.Box {
	t.Helper()
	box, err := secrets.NewBox(strings.Repeat("ab", 32))
	if err != nil {
		t.Fatalf("failed to create box: %v", err)
	}
	return box
}

func sealValues(t *testing.T, box *secrets.Box, values map[string]string) []byte {
	t.Helper()
	blob, err := box.Seal(values)
	if err != nil {
		t.Fatalf("failed to seal: %v", err)
	}
	return blob
}

func managementCaller() *types.CallerContext {
	return &types.CallerContext{
		TenantID:             testTenantID,
		UserID:               "user-1",
		Role:                 types.BuiltInRole(types.RoleAdmin),
		EffectivePermissions: []string{authorization.PermSettingsManage, authorization.PermUserManage},
	}
}

func viewerCaller() *types.CallerContext {
	return &types.CallerContext{
		TenantID:             testTenantID,
		UserID:               "user-2",
		Role:                 types.BuiltInRole(types.RoleViewer),
		EffectivePermissions: []string{authorization.PermWorkOrderRead},
	}
}

func TestService_GetConfig_ManagementCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	box := testBox(t)
	blob := sealValues(t, box, map[string]string{
		"api_key":       "sk-abcdefghijkl",
		"smtp_password": "hunter2hunter2",
	})

	primary := "#111111"
	m.storage.EXPECT().GetTenantByID(gomock.Any(), testTenantID).Return(&types.Tenant{
		ID:   testTenantID,
		Name: "Acme Manufacturing",
	}, nil)
	m.storage.EXPECT().GetTenantOverrides(gomock.Any(), testTenantID).Return(&types.TenantOverrides{
		RBACMatrix:          types.RBACMatrix{types.RoleViewer: {authorization.PermWorkOrderWrite: true}},
		FeatureEntitlements: map[string]bool{authorization.FeatureFactoryLayout: true},
		SecretsBlob:         blob,
		Branding:            types.BrandingConfig{PrimaryColor: &primary},
	}, nil)

	view, err := m.service(box).GetConfig(context.Background(), managementCaller())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if view.Secrets["api_key"] != "sk-a****ijkl" {
		t.Errorf("expected masked api_key, got %q", view.Secrets["api_key"])
	}
	if view.Secrets["smtp_password"] == "hunter2hunter2" {
		t.Error("plaintext secret leaked into the view")
	}
	if view.RBACMatrix == nil {
		t.Error("expected rbac matrix for management caller")
	}
	if !view.Notifications.EmailEnabled {
		t.Error("expected email notifications reported enabled")
	}
	if !view.Features[authorization.FeatureFactoryLayout] {
		t.Error("expected feature entitlements in the view")
	}
	if view.Branding.CompanyName == nil || *view.Branding.CompanyName != "Acme Manufacturing" {
		t.Errorf("expected company name from tenant directory, got %v", view.Branding.CompanyName)
	}
	if view.Branding.PrimaryColor == nil || *view.Branding.PrimaryColor != primary {
		t.Errorf("expected stored primary color override, got %v", view.Branding.PrimaryColor)
	}
	if view.Branding.LogoURL == nil || *view.Branding.LogoURL != defaultLogoURL {
		t.Errorf("expected default logo url, got %v", view.Branding.LogoURL)
	}
}

func TestService_GetConfig_ViewerOmitsSecrets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	box := testBox(t)
	blob := sealValues(t, box, map[string]string{"smtp_password": "hunter2hunter2"})

	m.storage.EXPECT().GetTenantByID(gomock.Any(), testTenantID).Return(&types.Tenant{ID: testTenantID, Name: "Acme"}, nil)
	m.storage.EXPECT().GetTenantOverrides(gomock.Any(), testTenantID).Return(&types.TenantOverrides{SecretsBlob: blob}, nil)

	view, err := m.service(box).GetConfig(context.Background(), viewerCaller())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if view.Secrets != nil {
		t.Errorf("expected secrets omitted entirely, got %v", view.Secrets)
	}
	if view.RBACMatrix != nil {
		t.Error("expected rbac matrix omitted for non-management caller")
	}
	if !view.Notifications.EmailEnabled {
		t.Error("derived notification flag should not require management permission")
	}
}

func TestService_UpdateSecrets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	box := testBox(t)
	blob := sealValues(t, box, map[string]string{
		"api_key": "sk-abcdefghijkl",
		"old_key": "retired-value",
	})

	gomock.InOrder(
		m.storage.EXPECT().LockTenant(gomock.Any(), testTenantID).Return(nil),
		m.storage.EXPECT().GetTenantOverrides(gomock.Any(), testTenantID).Return(&types.TenantOverrides{SecretsBlob: blob}, nil),
	)

	var written []byte
	m.storage.EXPECT().UpdateSecretsBlob(gomock.Any(), testTenantID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, b []byte) error {
			written = b
			return nil
		},
	)
	m.auditor.EXPECT().Record(gomock.Any(), audit.EventSecretWritten, gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, _ string, userID *string, metadata map[string]interface{}) {
			keys, ok := metadata["keys"].([]string)
			if !ok {
				t.Fatalf("expected key names in audit metadata, got %v", metadata["keys"])
			}
			for _, k := range keys {
				if strings.Contains(k, "hooks.example.com") {
					t.Error("secret value leaked into audit metadata")
				}
			}
			if len(keys) != 2 {
				t.Errorf("expected 2 changed keys, got %v", keys)
			}
		},
	)

	err := m.service(box).UpdateSecrets(context.Background(), managementCaller(), map[string]string{
		"api_key":     secrets.Mask("sk-abcdefghijkl"),
		"webhook_url": "https://hooks.example.com/x",
		"old_key":     "",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	stored, err := box.Open(written)
	if err != nil {
		t.Fatalf("failed to open written blob: %v", err)
	}
	if stored["api_key"] != "sk-abcdefghijkl" {
		t.Errorf("masked echo overwrote the stored secret: %q", stored["api_key"])
	}
	if stored["webhook_url"] != "https://hooks.example.com/x" {
		t.Errorf("new secret not stored, got %q", stored["webhook_url"])
	}
	if _, ok := stored["old_key"]; ok {
		t.Error("empty value should have deleted the key")
	}
}

func TestService_UpdateSecrets_AllEchoesSkipWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	box := testBox(t)
	blob := sealValues(t, box, map[string]string{
		"api_key": "sk-abcdefghijkl",
		"short":   "tiny",
	})

	m.storage.EXPECT().LockTenant(gomock.Any(), testTenantID).Return(nil)
	m.storage.EXPECT().GetTenantOverrides(gomock.Any(), testTenantID).Return(&types.TenantOverrides{SecretsBlob: blob}, nil)

	err := m.service(box).UpdateSecrets(context.Background(), managementCaller(), map[string]string{
		"api_key": secrets.Mask("sk-abcdefghijkl"),
		"short":   secrets.FixedMask,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

// tenantBlobStore keeps one secrets blob behind a lock with the same shape as
// the advisory transaction lock: LockTenant blocks until the previous writer
// commits, and the commit (UpdateSecretsBlob) releases it.
type tenantBlobStore struct {
	StorageInterface

	mu   sync.Mutex
	blob []byte
}

func (s *tenantBlobStore) LockTenant(ctx context.Context, tenantID string) error {
	s.mu.Lock()
	return nil
}

func (s *tenantBlobStore) GetTenantOverrides(ctx context.Context, tenantID string) (*types.TenantOverrides, error) {
	// Widen the window between read and write so unserialized callers overlap.
	time.Sleep(10 * time.Millisecond)
	return &types.TenantOverrides{SecretsBlob: s.blob}, nil
}

func (s *tenantBlobStore) UpdateSecretsBlob(ctx context.Context, tenantID string, blob []byte) error {
	s.blob = blob
	s.mu.Unlock()
	return nil
}

func TestService_UpdateSecrets_ConcurrentWritersKeepBothKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	box := testBox(t)
	store := &tenantBlobStore{blob: sealValues(t, box, map[string]string{})}
	m.auditor.EXPECT().Record(gomock.Any(), audit.EventSecretWritten, gomock.Any(), gomock.Any()).Times(2)

	s := NewService(store, m.db, box, m.auditor, time.Minute, m.tracer, m.monitor, m.logger)

	var wg sync.WaitGroup
	for _, kv := range []map[string]string{
		{"api_key": "value-a"},
		{"smtp_password": "value-b"},
	} {
		wg.Add(1)
		go func(incoming map[string]string) {
			defer wg.Done()
			if err := s.UpdateSecrets(context.Background(), managementCaller(), incoming); err != nil {
				t.Errorf("update failed: %v", err)
			}
		}(kv)
	}
	wg.Wait()

	stored, err := box.Open(store.blob)
	if err != nil {
		t.Fatalf("failed to open final blob: %v", err)
	}
	if stored["api_key"] != "value-a" || stored["smtp_password"] != "value-b" {
		t.Errorf("a concurrent write was lost, final blob keys: %v", stored)
	}
}

func TestService_UpdateRBACMatrix(t *testing.T) {
	customRoles := []*types.CustomRole{{ID: "role-1", TenantID: testTenantID, Name: "auditor"}}

	testCases := []struct {
		name        string
		matrix      types.RBACMatrix
		expectedErr error
	}{
		{
			name:   "viewer grant accepted",
			matrix: types.RBACMatrix{types.RoleViewer: {authorization.PermWorkOrderWrite: true}},
		},
		{
			name:   "custom role entry accepted",
			matrix: types.RBACMatrix{"auditor": {authorization.PermAuditRead: true}},
		},
		{
			name:        "super admin is never a matrix key",
			matrix:      types.RBACMatrix{types.RoleSuperAdmin: {authorization.PermAuditRead: true}},
			expectedErr: ErrInvalidRole,
		},
		{
			name:        "unknown role rejected",
			matrix:      types.RBACMatrix{"ghost": {authorization.PermAuditRead: true}},
			expectedErr: ErrInvalidRole,
		},
		{
			name:        "malformed permission key rejected",
			matrix:      types.RBACMatrix{types.RoleViewer: {"readstuff": true}},
			expectedErr: ErrInvalidPermission,
		},
		{
			name:        "revoking admin user management rejected",
			matrix:      types.RBACMatrix{types.RoleAdmin: {authorization.PermUserManage: false}},
			expectedErr: ErrNonRevocable,
		},
		{
			name:        "revoking admin settings management rejected",
			matrix:      types.RBACMatrix{types.RoleAdmin: {authorization.PermSettingsManage: false}},
			expectedErr: ErrNonRevocable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.passthroughTx(testTenantID)
			m.storage.EXPECT().ListCustomRoles(gomock.Any(), testTenantID).Return(customRoles, nil)

			if tc.expectedErr == nil {
				m.storage.EXPECT().UpdateRBACMatrix(gomock.Any(), testTenantID, tc.matrix).Return(nil)
				m.auditor.EXPECT().Record(gomock.Any(), audit.EventRBACMatrixChanged, gomock.Any(), gomock.Any())
			}

			err := m.service(m.box).UpdateRBACMatrix(context.Background(), managementCaller(), tc.matrix)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestService_CacheServesRepeatReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.storage.EXPECT().GetTenantOverrides(gomock.Any(), testTenantID).Return(&types.TenantOverrides{
		RBACMatrix: types.RBACMatrix{types.RoleViewer: {authorization.PermWorkOrderWrite: true}},
	}, nil).Times(1)

	s := m.service(m.box)
	for i := 0; i < 3; i++ {
		if _, err := s.RBACMatrix(context.Background(), testTenantID); err != nil {
			t.Fatalf("read %d failed: %v", i, err)
		}
	}
}

func TestService_WriteEvictsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.storage.EXPECT().GetTenantOverrides(gomock.Any(), testTenantID).Return(&types.TenantOverrides{}, nil).Times(2)
	m.storage.EXPECT().UpdateBranding(gomock.Any(), testTenantID, gomock.Any()).Return(nil)

	s := m.service(m.box)

	if _, err := s.FeatureEntitlements(context.Background(), testTenantID); err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	if err := s.UpdateBranding(context.Background(), managementCaller(), types.BrandingConfig{}); err != nil {
		t.Fatalf("branding update failed: %v", err)
	}
	if _, err := s.FeatureEntitlements(context.Background(), testTenantID); err != nil {
		t.Fatalf("read after write failed: %v", err)
	}
}

func TestService_CreateRole(t *testing.T) {
	testCases := []struct {
		name        string
		roleName    string
		permissions []string
		expectedErr error
	}{
		{
			name:        "valid custom role",
			roleName:    "auditor",
			permissions: []string{authorization.PermAuditRead, authorization.PermReportRead},
		},
		{
			name:        "shadowing a built-in role rejected",
			roleName:    types.RoleViewer,
			permissions: []string{authorization.PermAuditRead},
			expectedErr: ErrInvalidRole,
		},
		{
			name:        "shadowing the super admin sentinel rejected",
			roleName:    types.RoleSuperAdmin,
			permissions: []string{authorization.PermAuditRead},
			expectedErr: ErrInvalidRole,
		},
		{
			name:        "malformed permission rejected",
			roleName:    "auditor",
			permissions: []string{"not-a-permission"},
			expectedErr: ErrInvalidPermission,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)

			if tc.expectedErr == nil {
				m.passthroughTx(testTenantID)
				m.storage.EXPECT().CreateCustomRole(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *types.CustomRole) (*types.CustomRole, error) {
						if r.TenantID != testTenantID {
							t.Errorf("role pinned to wrong tenant: %q", r.TenantID)
						}
						if r.IsSystem {
							t.Error("caller-created roles must not be system roles")
						}
						created := *r
						created.ID = "role-1"
						return &created, nil
					},
				)
			}

			role, err := m.service(m.box).CreateRole(context.Background(), managementCaller(), tc.roleName, tc.permissions)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if role.ID == "" {
				t.Error("expected created role to carry an ID")
			}
		})
	}
}

func TestService_DeleteRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.passthroughTx(testTenantID)

	roleErr := errors.New("system roles cannot be deleted")
	m.storage.EXPECT().DeleteCustomRole(gomock.Any(), testTenantID, "role-1").Return(roleErr)

	err := m.service(m.box).DeleteRole(context.Background(), managementCaller(), "role-1")
	if !errors.Is(err, roleErr) {
		t.Errorf("expected storage error to propagate, got %v", err)
	}
}
