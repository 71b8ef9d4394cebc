// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantconfig

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/canonical/authorization-service/internal/http/types"
	"github.com/canonical/authorization-service/internal/logging"
	"github.com/canonical/authorization-service/internal/monitoring"
	"github.com/canonical/authorization-service/internal/storage"
	"github.com/canonical/authorization-service/internal/tracing"
	"github.com/canonical/authorization-service/internal/types"
	"github.com/canonical/authorization-service/pkg/authentication"
	"github.com/canonical/authorization-service/pkg/authorization"
)

type CreateRoleRequest struct {
	Name        string   `json:"name" validate:"required,max=64"`
	Permissions []string `json:"permissions" validate:"required"`
}

// AuthzInterface is the route-gating slice of the authorization middleware.
type AuthzInterface interface {
	RequirePermission(permission string) func(http.Handler) http.Handler
}

type API struct {
	service  ServiceInterface
	authz    AuthzInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	authz AuthzInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		authz:    authz,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// RegisterEndpoints mounts the configuration surface on an already
// authenticated tenant-scoped router.
func (a *API) RegisterEndpoints(router chi.Router) {
	router.Get("/config", a.getConfig)

	manage := a.authz.RequirePermission(authorization.PermSettingsManage)
	router.With(manage).Put("/config/secrets", a.updateSecrets)
	router.With(manage).Put("/config/rbac", a.updateRBACMatrix)
	router.With(manage).Put("/config/branding", a.updateBranding)

	roles := a.authz.RequirePermission(authorization.PermUserManage)
	router.With(roles).Get("/roles", a.listRoles)
	router.With(roles).Post("/roles", a.createRole)
	router.With(roles).Delete("/roles/{id}", a.deleteRole)
}

func (a *API) getConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenantconfig.API.getConfig")
	defer span.End()

	caller, ok := authentication.CallerFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
		return
	}

	view, err := a.service.GetConfig(ctx, caller)
	if err != nil {
		a.logger.Errorf("failed to resolve tenant config: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, view)
}

func (a *API) updateSecrets(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenantconfig.API.updateSecrets")
	defer span.End()

	var incoming map[string]string
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, "invalid request body")
		return
	}

	caller, ok := authentication.CallerFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
		return
	}

	if err := a.service.UpdateSecrets(ctx, caller, incoming); err != nil {
		a.logger.Errorf("failed to update secrets: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (a *API) updateRBACMatrix(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenantconfig.API.updateRBACMatrix")
	defer span.End()

	var matrix types.RBACMatrix
	if err := json.NewDecoder(r.Body).Decode(&matrix); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, "invalid request body")
		return
	}

	caller, ok := authentication.CallerFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
		return
	}

	if err := a.service.UpdateRBACMatrix(ctx, caller, matrix); err != nil {
		switch {
		case errors.Is(err, ErrInvalidRole), errors.Is(err, ErrInvalidPermission), errors.Is(err, ErrNonRevocable):
			httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, err.Error())
		default:
			a.logger.Errorf("failed to update rbac matrix: %v", err)
			httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
		}
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (a *API) updateBranding(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenantconfig.API.updateBranding")
	defer span.End()

	var branding types.BrandingConfig
	if err := json.NewDecoder(r.Body).Decode(&branding); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, "invalid request body")
		return
	}

	caller, ok := authentication.CallerFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
		return
	}

	if err := a.service.UpdateBranding(ctx, caller, branding); err != nil {
		a.logger.Errorf("failed to update branding: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (a *API) listRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenantconfig.API.listRoles")
	defer span.End()

	caller, ok := authentication.CallerFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
		return
	}

	roles, err := a.service.ListRoles(ctx, caller)
	if err != nil {
		a.logger.Errorf("failed to list custom roles: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, roles)
}

func (a *API) createRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenantconfig.API.createRole")
	defer span.End()

	var req CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, "name and permissions are required")
		return
	}

	caller, ok := authentication.CallerFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
		return
	}

	role, err := a.service.CreateRole(ctx, caller, req.Name, req.Permissions)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRole), errors.Is(err, ErrInvalidPermission):
			httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, err.Error())
		case errors.Is(err, storage.ErrDuplicateKey):
			httpTypes.WriteError(w, http.StatusConflict, httpTypes.CodeConflict, "a role with that name already exists")
		default:
			a.logger.Errorf("failed to create custom role: %v", err)
			httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
		}
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, role)
}

func (a *API) deleteRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenantconfig.API.deleteRole")
	defer span.End()

	caller, ok := authentication.CallerFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
		return
	}

	if err := a.service.DeleteRole(ctx, caller, chi.URLParamFromCtx(ctx, "id")); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			httpTypes.WriteError(w, http.StatusNotFound, httpTypes.CodeNotFound, "role not found")
		case errors.Is(err, storage.ErrSystemRole):
			httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, "system roles cannot be deleted")
		default:
			a.logger.Errorf("failed to delete custom role: %v", err)
			httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
		}
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
