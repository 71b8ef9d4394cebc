// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"net/http"

	httpTypes "github.com/canonical/authorization-service/internal/http/types"
	"github.com/canonical/authorization-service/internal/logging"
	"github.com/canonical/authorization-service/internal/monitoring"
	"github.com/canonical/authorization-service/internal/tracing"
	"github.com/canonical/authorization-service/pkg/audit"
	"github.com/canonical/authorization-service/pkg/authentication"
)

type Middleware struct {
	evaluator EvaluatorInterface
	audit     AuditRecorderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(
	evaluator EvaluatorInterface,
	auditRecorder AuditRecorderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		evaluator: evaluator,
		audit:     auditRecorder,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// RequirePermission gates a route on a permission key. A deny always surfaces
// as a 403 with code permission_denied, never as a silent no-op, and every
// deny is audited.
func (m *Middleware) RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequirePermission")
			defer span.End()

			caller, ok := authentication.CallerFromContext(ctx)
			if !ok {
				httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
				return
			}

			allowed, err := m.evaluator.Check(ctx, caller, permission)
			if err != nil {
				m.logger.Errorf("permission check failed: %v", err)
				httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
				return
			}

			if !allowed {
				m.logger.Security().AccessDenied(caller.UserID, caller.TenantID, permission)
				userID := caller.UserID
				m.audit.Record(ctx, audit.EventPermissionDenied, &userID, map[string]interface{}{
					"tenant_id":  caller.TenantID,
					"permission": permission,
				})
				httpTypes.WriteError(w, http.StatusForbidden, httpTypes.CodePermissionDenied, "permission denied, contact your administrator")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSuperAdmin gates the platform surface. The deny is the same generic
// access_denied a caller gets for a tenant they cannot see, so probing the
// platform routes reveals nothing.
func (m *Middleware) RequireSuperAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequireSuperAdmin")
			defer span.End()

			caller, ok := authentication.CallerFromContext(ctx)
			if !ok {
				httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
				return
			}

			if !caller.Role.IsSuperAdmin() {
				m.logger.Security().AccessDenied(caller.UserID, caller.TenantID, "platform:admin")
				userID := caller.UserID
				m.audit.Record(ctx, audit.EventPermissionDenied, &userID, map[string]interface{}{
					"tenant_id":  caller.TenantID,
					"permission": "platform:admin",
				})
				httpTypes.WriteError(w, http.StatusForbidden, httpTypes.CodeAccessDenied, "access denied")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireFeature gates a route on a plan entitlement. The deny signal is
// distinguishable from a permission denial so callers can render an upgrade
// prompt instead of an access error.
func (m *Middleware) RequireFeature(featureKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequireFeature")
			defer span.End()

			caller, ok := authentication.CallerFromContext(ctx)
			if !ok {
				httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
				return
			}

			enabled, err := m.evaluator.FeatureEnabled(ctx, caller.TenantID, featureKey)
			if err != nil {
				m.logger.Errorf("feature check failed: %v", err)
				httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
				return
			}

			if !enabled {
				httpTypes.WriteError(w, http.StatusForbidden, httpTypes.CodeFeatureNotEntitled, "feature not included in the tenant plan")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
