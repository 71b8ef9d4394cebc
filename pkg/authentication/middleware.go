// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/authorization-service/internal/db"
	httpTypes "github.com/canonical/authorization-service/internal/http/types"
	"github.com/canonical/authorization-service/internal/logging"
	"github.com/canonical/authorization-service/internal/monitoring"
	"github.com/canonical/authorization-service/internal/tracing"
)

type Middleware struct {
	resolver ResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(
	resolver ResolverInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		resolver: resolver,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// BearerToken pulls the session token out of the Authorization header.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	return ""
}

// ResolveCaller authenticates every request on a tenant-scoped route. The
// declared tenant comes from the slug URL parameter; the resolved tenant is
// attached both as the caller context and as the database tenant binding for
// the row policy downstream.
func (m *Middleware) ResolveCaller() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.ResolveCaller")
			defer span.End()

			token := BearerToken(r)
			if token == "" {
				httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
				return
			}

			slug := chi.URLParamFromCtx(ctx, "slug")

			caller, err := m.resolver.ResolveCaller(ctx, token, slug)
			if err != nil {
				switch {
				case errors.Is(err, ErrUnauthenticated):
					httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
				case errors.Is(err, ErrTenantNotFound), errors.Is(err, ErrTenantMismatch):
					// One generic denial for both, so the response does not
					// reveal whether the slug exists.
					httpTypes.WriteError(w, http.StatusForbidden, httpTypes.CodeAccessDenied, "access denied")
				default:
					m.logger.Errorf("caller resolution failed: %v", err)
					httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
				}
				return
			}

			ctx = ContextWithCaller(ctx, caller)
			ctx = db.ContextWithTenant(ctx, caller.TenantID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ResolvePlatform authenticates requests on the platform admin surface, which
// carries no tenant slug. Only the platform super-admin resolves; the caller
// context is left unpinned from any tenant and the database transaction keeps
// the empty binding, so row policies expose only tenant-less rows.
func (m *Middleware) ResolvePlatform() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.ResolvePlatform")
			defer span.End()

			token := BearerToken(r)
			if token == "" {
				httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
				return
			}

			caller, err := m.resolver.ResolvePlatformCaller(ctx, token)
			if err != nil {
				switch {
				case errors.Is(err, ErrUnauthenticated):
					httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
				case errors.Is(err, ErrTenantNotFound), errors.Is(err, ErrTenantMismatch):
					httpTypes.WriteError(w, http.StatusForbidden, httpTypes.CodeAccessDenied, "access denied")
				default:
					m.logger.Errorf("platform caller resolution failed: %v", err)
					httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
				}
				return
			}

			// Platform transactions bind the cross-tenant scope so the
			// directory row policies admit them; an unbound transaction
			// would see zero tenant rows.
			ctx = ContextWithCaller(ctx, caller)
			ctx = db.ContextWithTenant(ctx, db.PlatformScope)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
