// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httpTypes "github.com/canonical/authorization-service/internal/http/types"
	"github.com/canonical/authorization-service/internal/types"
	"github.com/canonical/authorization-service/pkg/audit"
	"github.com/canonical/authorization-service/pkg/authentication"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpTypes.Response {
	t.Helper()
	var resp httpTypes.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestMiddleware_RequirePermission(t *testing.T) {
	tenantID := "tenant-1"
	userID := "user-1"

	testCases := []struct {
		name           string
		caller         *types.CallerContext
		setupMocks     func(*MockEvaluatorInterface, *MockAuditRecorderInterface, *MockLoggerInterface)
		expectedStatus int
		expectedCode   string
		expectNext     bool
	}{
		{
			name:           "no caller in context",
			caller:         nil,
			setupMocks:     func(e *MockEvaluatorInterface, a *MockAuditRecorderInterface, l *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   httpTypes.CodeUnauthenticated,
		},
		{
			name:   "allowed",
			caller: &types.CallerContext{TenantID: tenantID, UserID: userID, Role: types.BuiltInRole(types.RoleAdmin)},
			setupMocks: func(e *MockEvaluatorInterface, a *MockAuditRecorderInterface, l *MockLoggerInterface) {
				e.EXPECT().Check(gomock.Any(), gomock.Any(), PermSettingsManage).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:   "denied is audited and returns permission_denied",
			caller: &types.CallerContext{TenantID: tenantID, UserID: userID, Role: types.BuiltInRole(types.RoleViewer)},
			setupMocks: func(e *MockEvaluatorInterface, a *MockAuditRecorderInterface, l *MockLoggerInterface) {
				e.EXPECT().Check(gomock.Any(), gomock.Any(), PermSettingsManage).Return(false, nil)
				security := NewMockSecurityLoggerInterface(l.ctrl)
				l.EXPECT().Security().Return(security)
				security.EXPECT().AccessDenied(userID, tenantID, PermSettingsManage)
				a.EXPECT().Record(gomock.Any(), audit.EventPermissionDenied, gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httpTypes.CodePermissionDenied,
		},
		{
			name:   "evaluator failure",
			caller: &types.CallerContext{TenantID: tenantID, UserID: userID, Role: types.BuiltInRole(types.RoleViewer)},
			setupMocks: func(e *MockEvaluatorInterface, a *MockAuditRecorderInterface, l *MockLoggerInterface) {
				e.EXPECT().Check(gomock.Any(), gomock.Any(), PermSettingsManage).Return(false, errors.New("boom"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   httpTypes.CodeInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockEvaluator := NewMockEvaluatorInterface(ctrl)
			mockAudit := NewMockAuditRecorderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Middleware.RequirePermission").DoAndReturn(
				func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			tc.setupMocks(mockEvaluator, mockAudit, mockLogger)

			m := NewMiddleware(mockEvaluator, mockAudit, mockTracer, mockMonitor, mockLogger)

			called := false
			handler := m.RequirePermission(PermSettingsManage)(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.caller != nil {
				req = req.WithContext(authentication.ContextWithCaller(req.Context(), tc.caller))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
			if called != tc.expectNext {
				t.Errorf("expected next called=%v, got %v", tc.expectNext, called)
			}
			if tc.expectedCode != "" {
				if resp := decodeError(t, rec); resp.Code != tc.expectedCode {
					t.Errorf("expected code %q, got %q", tc.expectedCode, resp.Code)
				}
			}
		})
	}
}

func TestMiddleware_RequireFeature(t *testing.T) {
	tenantID := "tenant-1"

	testCases := []struct {
		name           string
		caller         *types.CallerContext
		setupMocks     func(*MockEvaluatorInterface)
		expectedStatus int
		expectedCode   string
		expectNext     bool
	}{
		{
			name:           "no caller in context",
			caller:         nil,
			setupMocks:     func(e *MockEvaluatorInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   httpTypes.CodeUnauthenticated,
		},
		{
			name:   "entitled",
			caller: &types.CallerContext{TenantID: tenantID, UserID: "user-1", Role: types.BuiltInRole(types.RoleViewer)},
			setupMocks: func(e *MockEvaluatorInterface) {
				e.EXPECT().FeatureEnabled(gomock.Any(), tenantID, FeatureFactoryLayout).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:   "not entitled denies even admin with a distinct code",
			caller: &types.CallerContext{TenantID: tenantID, UserID: "user-1", Role: types.BuiltInRole(types.RoleAdmin)},
			setupMocks: func(e *MockEvaluatorInterface) {
				e.EXPECT().FeatureEnabled(gomock.Any(), tenantID, FeatureFactoryLayout).Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httpTypes.CodeFeatureNotEntitled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockEvaluator := NewMockEvaluatorInterface(ctrl)
			mockAudit := NewMockAuditRecorderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Middleware.RequireFeature").DoAndReturn(
				func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			tc.setupMocks(mockEvaluator)

			m := NewMiddleware(mockEvaluator, mockAudit, mockTracer, mockMonitor, mockLogger)

			called := false
			handler := m.RequireFeature(FeatureFactoryLayout)(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.caller != nil {
				req = req.WithContext(authentication.ContextWithCaller(req.Context(), tc.caller))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
			if called != tc.expectNext {
				t.Errorf("expected next called=%v, got %v", tc.expectNext, called)
			}
			if tc.expectedCode != "" {
				if resp := decodeError(t, rec); resp.Code != tc.expectedCode {
					t.Errorf("expected code %q, got %q", tc.expectedCode, resp.Code)
				}
			}
		})
	}
}

func TestMiddleware_RequireSuperAdmin(t *testing.T) {
	testCases := []struct {
		name           string
		caller         *types.CallerContext
		setupMocks     func(*MockAuditRecorderInterface, *MockLoggerInterface)
		expectedStatus int
		expectedCode   string
		expectNext     bool
	}{
		{
			name:           "no caller in context",
			caller:         nil,
			setupMocks:     func(a *MockAuditRecorderInterface, l *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   httpTypes.CodeUnauthenticated,
		},
		{
			name:           "super admin passes",
			caller:         &types.CallerContext{UserID: "root-1", Role: types.BuiltInRole(types.RoleSuperAdmin)},
			setupMocks:     func(a *MockAuditRecorderInterface, l *MockLoggerInterface) {},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:   "tenant admin gets the generic denial",
			caller: &types.CallerContext{TenantID: "tenant-1", UserID: "user-1", Role: types.BuiltInRole(types.RoleAdmin)},
			setupMocks: func(a *MockAuditRecorderInterface, l *MockLoggerInterface) {
				security := NewMockSecurityLoggerInterface(l.ctrl)
				l.EXPECT().Security().Return(security)
				security.EXPECT().AccessDenied("user-1", "tenant-1", "platform:admin")
				a.EXPECT().Record(gomock.Any(), audit.EventPermissionDenied, gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httpTypes.CodeAccessDenied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockEvaluator := NewMockEvaluatorInterface(ctrl)
			mockAudit := NewMockAuditRecorderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Middleware.RequireSuperAdmin").DoAndReturn(
				func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			tc.setupMocks(mockAudit, mockLogger)

			m := NewMiddleware(mockEvaluator, mockAudit, mockTracer, mockMonitor, mockLogger)

			called := false
			handler := m.RequireSuperAdmin()(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.caller != nil {
				req = req.WithContext(authentication.ContextWithCaller(req.Context(), tc.caller))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
			if called != tc.expectNext {
				t.Errorf("expected next called=%v, got %v", tc.expectNext, called)
			}
			if tc.expectedCode != "" {
				if resp := decodeError(t, rec); resp.Code != tc.expectedCode {
					t.Errorf("expected code %q, got %q", tc.expectedCode, resp.Code)
				}
			}
		})
	}
}
