// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httpTypes "github.com/canonical/authorization-service/internal/http/types"
	"github.com/canonical/authorization-service/internal/types"
)

func newHandlerAPI(t *testing.T) (*API, *MockServiceInterface, *MockLoggerInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()

	return NewAPI(mockService, mockTracer, mockMonitor, mockLogger), mockService, mockLogger
}

func TestHandleLogin(t *testing.T) {
	expiry := time.Now().Add(time.Hour).UTC()

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "malformed body",
			body:           "{not json",
			setupMocks:     func(s *MockServiceInterface, l *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httpTypes.CodeBadRequest,
		},
		{
			name:           "missing password",
			body:           `{"email":"a@acme.test"}`,
			setupMocks:     func(s *MockServiceInterface, l *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httpTypes.CodeBadRequest,
		},
		{
			name: "bad credentials stay undifferentiated",
			body: `{"email":"a@acme.test","password":"wrong"}`,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().Login(gomock.Any(), "acme", "a@acme.test", "wrong").Return(nil, ErrUnauthenticated)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   httpTypes.CodeUnauthenticated,
		},
		{
			name: "unknown tenant is a generic denial",
			body: `{"email":"a@acme.test","password":"pw"}`,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().Login(gomock.Any(), "acme", "a@acme.test", "pw").Return(nil, ErrTenantNotFound)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httpTypes.CodeAccessDenied,
		},
		{
			name: "service failure",
			body: `{"email":"a@acme.test","password":"pw"}`,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().Login(gomock.Any(), "acme", "a@acme.test", "pw").Return(nil, errors.New("boom"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   httpTypes.CodeInternal,
		},
		{
			name: "success returns the token and expiry",
			body: `{"email":"a@acme.test","password":"pw"}`,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().Login(gomock.Any(), "acme", "a@acme.test", "pw").Return(&types.Session{
					Token:     "token-1",
					ExpiresAt: expiry,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api, mockService, mockLogger := newHandlerAPI(t)
			tc.setupMocks(mockService, mockLogger)

			router := chi.NewMux()
			api.RegisterEndpoints(router)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/auth/acme/login", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}

			var resp httpTypes.Response
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if tc.expectedCode != "" {
				if resp.Code != tc.expectedCode {
					t.Errorf("expected code %q, got %q", tc.expectedCode, resp.Code)
				}
				return
			}

			data, ok := resp.Data.(map[string]interface{})
			if !ok {
				t.Fatalf("expected object data, got %T", resp.Data)
			}
			if data["token"] != "token-1" {
				t.Errorf("expected token in response, got %v", data["token"])
			}
		})
	}
}

func TestHandleLogout(t *testing.T) {
	testCases := []struct {
		name           string
		authorization  string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name:           "missing token",
			authorization:  "",
			setupMocks:     func(s *MockServiceInterface, l *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "service failure",
			authorization: "Bearer token-1",
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().Logout(gomock.Any(), "token-1").Return(errors.New("boom"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:          "success",
			authorization: "Bearer token-1",
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().Logout(gomock.Any(), "token-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api, mockService, mockLogger := newHandlerAPI(t)
			tc.setupMocks(mockService, mockLogger)

			router := chi.NewMux()
			api.RegisterEndpoints(router)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/auth/acme/logout", nil)
			if tc.authorization != "" {
				req.Header.Set("Authorization", tc.authorization)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
		})
	}
}
