// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/canonical/authorization-service/internal/http/types"
	"github.com/canonical/authorization-service/internal/logging"
	"github.com/canonical/authorization-service/internal/monitoring"
	"github.com/canonical/authorization-service/internal/tracing"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/auth/{slug}/login", a.login)
	mux.Post("/api/v0/auth/{slug}/logout", a.logout)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.login")
	defer span.End()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, "email and password are required")
		return
	}

	sess, err := a.service.Login(ctx, chi.URLParamFromCtx(ctx, "slug"), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "invalid credentials")
		case errors.Is(err, ErrTenantNotFound):
			httpTypes.WriteError(w, http.StatusForbidden, httpTypes.CodeAccessDenied, "access denied")
		default:
			a.logger.Errorf("login failed: %v", err)
			httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
		}
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, LoginResponse{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
	})
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.logout")
	defer span.End()

	token := BearerToken(r)
	if token == "" {
		httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
		return
	}

	if err := a.service.Logout(ctx, token); err != nil {
		a.logger.Errorf("logout failed: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, map[string]string{"status": "logged_out"})
}
