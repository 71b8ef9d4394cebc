// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/authorization-service/internal/db"
	"github.com/canonical/authorization-service/internal/logging"
	"github.com/canonical/authorization-service/internal/monitoring"
	"github.com/canonical/authorization-service/internal/tracing"
	"github.com/canonical/authorization-service/pkg/authentication"
	"github.com/canonical/authorization-service/pkg/authorization"
	"github.com/canonical/authorization-service/pkg/metrics"
	"github.com/canonical/authorization-service/pkg/status"
	"github.com/canonical/authorization-service/pkg/tenant"
	"github.com/canonical/authorization-service/pkg/tenantconfig"
)

func NewRouter(
	dbClient db.DBClientInterface,
	authenticationAPI *authentication.API,
	authnMiddleware *authentication.Middleware,
	authzMiddleware *authorization.Middleware,
	tenantAPI *tenant.API,
	configAPI *tenantconfig.API,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	authenticationAPI.RegisterEndpoints(router)

	// The platform surface carries no tenant slug; its transactions keep the
	// empty tenant binding so row policies expose only tenant-less rows.
	router.Route("/api/v0/admin/tenants", func(r chi.Router) {
		r.Use(authnMiddleware.ResolvePlatform())
		r.Use(db.TransactionMiddleware(dbClient, logger))
		tenantAPI.RegisterPlatformEndpoints(r)
	})

	router.Route("/api/v0/tenants/{slug}", func(r chi.Router) {
		r.Use(authnMiddleware.ResolveCaller())
		r.Use(db.TransactionMiddleware(dbClient, logger))
		tenantAPI.RegisterTenantEndpoints(r)
		configAPI.RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		},
	)
}
