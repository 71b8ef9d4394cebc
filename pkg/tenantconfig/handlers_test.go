// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantconfig

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httpTypes "github.com/canonical/authorization-service/internal/http/types"
	"github.com/canonical/authorization-service/internal/storage"
	"github.com/canonical/authorization-service/internal/types"
	"github.com/canonical/authorization-service/pkg/authentication"
	"github.com/canonical/authorization-service/pkg/authorization"
)

// fakeAuthz records which permission each route was gated on and either
// passes requests through or denies them all.
type fakeAuthz struct {
	required map[string]bool
	deny     bool
}

func (f *fakeAuthz) RequirePermission(permission string) func(http.Handler) http.Handler {
	f.required[permission] = true
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if f.deny {
				httpTypes.WriteError(w, http.StatusForbidden, httpTypes.CodePermissionDenied, "permission denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type apiMocks struct {
	service *MockServiceInterface
	authz   *fakeAuthz
	router  *chi.Mux
}

func newAPIMocks(t *testing.T, ctrl *gomock.Controller, caller *types.CallerContext) *apiMocks {
	t.Helper()

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	authz := &fakeAuthz{required: make(map[string]bool)}
	api := NewAPI(mockService, authz, mockTracer, mockMonitor, mockLogger)

	router := chi.NewMux()
	router.Route("/api/v0/tenants/{slug}", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(authentication.ContextWithCaller(req.Context(), caller)))
			})
		})
		api.RegisterEndpoints(r)
	})

	return &apiMocks{service: mockService, authz: authz, router: router}
}

func TestAPI_RouteGates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newAPIMocks(t, ctrl, managementCaller())

	if !m.authz.required[authorization.PermSettingsManage] {
		t.Error("config writes are not gated on settings management")
	}
	if !m.authz.required[authorization.PermUserManage] {
		t.Error("role management is not gated on user management")
	}

	m.authz.deny = true
	rec := httptest.NewRecorder()
	m.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v0/tenants/acme/config/secrets", strings.NewReader("{}")))
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 from the gate, got %d", rec.Code)
	}
}

func TestAPI_GetConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := viewerCaller()
	m := newAPIMocks(t, ctrl, caller)

	m.service.EXPECT().GetConfig(gomock.Any(), caller).Return(&types.TenantConfigView{
		TenantID: testTenantID,
		Features: map[string]bool{authorization.FeatureFactoryLayout: true},
	}, nil)

	rec := httptest.NewRecorder()
	m.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v0/tenants/acme/config", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "factoryLayout") {
		t.Errorf("expected features in response, got %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "secrets") {
		t.Errorf("secrets key should be absent for a viewer, got %s", rec.Body.String())
	}
}

func TestAPI_UpdateSecrets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := managementCaller()
	m := newAPIMocks(t, ctrl, caller)

	m.service.EXPECT().UpdateSecrets(gomock.Any(), caller, map[string]string{"api_key": "fresh-value"}).Return(nil)

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"api_key":"fresh-value"}`)
	m.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v0/tenants/acme/config/secrets", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAPI_UpdateRBACMatrix(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "accepted",
			body:           `{"viewer":{"work_order:write":true}}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "lockout rejected as bad request",
			body:           `{"admin":{"user:manage":false}}`,
			serviceErr:     ErrNonRevocable,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httpTypes.CodeBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{"viewer":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httpTypes.CodeBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			caller := managementCaller()
			m := newAPIMocks(t, ctrl, caller)

			var matrix types.RBACMatrix
			if err := json.Unmarshal([]byte(tc.body), &matrix); err == nil {
				m.service.EXPECT().UpdateRBACMatrix(gomock.Any(), caller, matrix).Return(tc.serviceErr)
			}

			rec := httptest.NewRecorder()
			m.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v0/tenants/acme/config/rbac", strings.NewReader(tc.body)))

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}
			if tc.expectedCode != "" {
				var resp httpTypes.Response
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Code != tc.expectedCode {
					t.Errorf("expected code %q, got %q", tc.expectedCode, resp.Code)
				}
			}
		})
	}
}

func TestAPI_CreateRole(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		serviceErr     error
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "created",
			body:           `{"name":"auditor","permissions":["audit:read"]}`,
			expectService:  true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           `{"permissions":["audit:read"]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate name",
			body:           `{"name":"auditor","permissions":["audit:read"]}`,
			serviceErr:     storage.ErrDuplicateKey,
			expectService:  true,
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			caller := managementCaller()
			m := newAPIMocks(t, ctrl, caller)

			if tc.expectService {
				call := m.service.EXPECT().CreateRole(gomock.Any(), caller, "auditor", []string{"audit:read"})
				if tc.serviceErr != nil {
					call.Return(nil, tc.serviceErr)
				} else {
					call.Return(&types.CustomRole{ID: "role-1", TenantID: testTenantID, Name: "auditor"}, nil)
				}
			}

			rec := httptest.NewRecorder()
			m.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v0/tenants/acme/roles", strings.NewReader(tc.body)))

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAPI_DeleteRole(t *testing.T) {
	testCases := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "deleted", expectedStatus: http.StatusOK},
		{name: "not found", serviceErr: storage.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "system role", serviceErr: storage.ErrSystemRole, expectedStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			caller := managementCaller()
			m := newAPIMocks(t, ctrl, caller)

			m.service.EXPECT().DeleteRole(gomock.Any(), caller, "role-1").Return(tc.serviceErr)

			rec := httptest.NewRecorder()
			m.router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v0/tenants/acme/roles/role-1", nil))

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}
