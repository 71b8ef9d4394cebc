// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

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
	"github.com/canonical/authorization-service/internal/storage"
	"github.com/canonical/authorization-service/internal/tracing"
	"github.com/canonical/authorization-service/internal/types"
	"github.com/canonical/authorization-service/pkg/authentication"
	"github.com/canonical/authorization-service/pkg/authorization"
)

type CreateTenantRequest struct {
	Name string `json:"name" validate:"required,max=128"`
	Slug string `json:"slug" validate:"required,max=63"`
	Plan string `json:"plan" validate:"omitempty,max=64"`
}

type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type CreateUserRequest struct {
	Email        string  `json:"email" validate:"required,email"`
	Username     string  `json:"username" validate:"required,max=64"`
	Password     string  `json:"password" validate:"required"`
	Role         string  `json:"role" validate:"required"`
	CustomRoleID *string `json:"custom_role_id,omitempty"`
}

// TenantResponse never carries the secrets blob or override details; the
// directory surface is about existence, plan and lifecycle only.
type TenantResponse struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Plan      string    `json:"plan"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

type UserResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Role     string  `json:"role"`
	TenantID *string `json:"tenant_id,omitempty"`
}

type MeResponse struct {
	TenantID             string   `json:"tenant_id,omitempty"`
	UserID               string   `json:"user_id"`
	Role                 string   `json:"role"`
	IsBuiltInRole        bool     `json:"is_builtin_role"`
	EffectivePermissions []string `json:"effective_permissions"`
}

func tenantResponse(t *types.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Slug:      t.Slug,
		Name:      t.Name,
		Plan:      t.Plan,
		Enabled:   t.Enabled,
		CreatedAt: t.CreatedAt,
	}
}

// AuthzInterface is the route-gating slice of the authorization middleware.
type AuthzInterface interface {
	RequirePermission(permission string) func(http.Handler) http.Handler
	RequireSuperAdmin() func(http.Handler) http.Handler
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

// RegisterPlatformEndpoints mounts the tenant directory. Every route is
// super-admin only; tenant users get the same generic denial as for any
// tenant they cannot see.
func (a *API) RegisterPlatformEndpoints(router chi.Router) {
	router.Use(a.authz.RequireSuperAdmin())
	router.Get("/", a.listTenants)
	router.Post("/", a.createTenant)
	router.Get("/{id}", a.getTenant)
	router.Put("/{id}/enabled", a.setTenantEnabled)
	router.Delete("/{id}", a.deleteTenant)
}

// RegisterTenantEndpoints mounts the tenant-scoped identity and user
// provisioning routes on an already authenticated router.
func (a *API) RegisterTenantEndpoints(router chi.Router) {
	router.Get("/me", a.me)

	manage := a.authz.RequirePermission(authorization.PermUserManage)
	router.With(manage).Post("/users", a.createUser)
	router.With(manage).Delete("/users/{id}", a.deleteUser)
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listTenants")
	defer span.End()

	tenants, err := a.service.ListTenants(ctx)
	if err != nil {
		a.logger.Errorf("failed to list tenants: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
		return
	}

	resp := make([]TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		resp = append(resp, tenantResponse(t))
	}

	httpTypes.WriteResponse(w, http.StatusOK, resp)
}

func (a *API) createTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.createTenant")
	defer span.End()

	var req CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, "name and slug are required")
		return
	}

	created, err := a.service.CreateTenant(ctx, req.Name, req.Slug, req.Plan)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSlug):
			httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, err.Error())
		case errors.Is(err, storage.ErrSlugRetired):
			httpTypes.WriteError(w, http.StatusConflict, httpTypes.CodeConflict, "slug was retired and cannot be reused")
		case errors.Is(err, storage.ErrDuplicateKey):
			httpTypes.WriteError(w, http.StatusConflict, httpTypes.CodeConflict, "a tenant with that slug already exists")
		default:
			a.logger.Errorf("failed to create tenant: %v", err)
			httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
		}
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, tenantResponse(created))
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.getTenant")
	defer span.End()

	t, err := a.service.GetTenant(ctx, chi.URLParamFromCtx(ctx, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, httpTypes.CodeNotFound, "tenant not found")
			return
		}
		a.logger.Errorf("failed to get tenant: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, tenantResponse(t))
}

func (a *API) setTenantEnabled(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.setTenantEnabled")
	defer span.End()

	var req SetEnabledRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, "enabled is required")
		return
	}

	if err := a.service.SetTenantEnabled(ctx, chi.URLParamFromCtx(ctx, "id"), *req.Enabled); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, httpTypes.CodeNotFound, "tenant not found")
			return
		}
		a.logger.Errorf("failed to update tenant: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (a *API) deleteTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.deleteTenant")
	defer span.End()

	if err := a.service.DeleteTenant(ctx, chi.URLParamFromCtx(ctx, "id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, httpTypes.CodeNotFound, "tenant not found")
			return
		}
		a.logger.Errorf("failed to delete tenant: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.me")
	defer span.End()

	caller, ok := authentication.CallerFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, MeResponse{
		TenantID:             caller.TenantID,
		UserID:               caller.UserID,
		Role:                 caller.Role.Name(),
		IsBuiltInRole:        caller.Role.IsBuiltIn(),
		EffectivePermissions: caller.EffectivePermissions,
	})
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.createUser")
	defer span.End()

	caller, ok := authentication.CallerFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
		return
	}

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, "email, username, password and role are required")
		return
	}

	created, err := a.service.CreateUser(ctx, caller, req.Email, req.Username, req.Password, req.Role, req.CustomRoleID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRole), authentication.IsPasswordPolicyError(err):
			httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, err.Error())
		case errors.Is(err, storage.ErrDuplicateKey):
			httpTypes.WriteError(w, http.StatusConflict, httpTypes.CodeConflict, "a user with that email already exists")
		case errors.Is(err, storage.ErrNotFound):
			httpTypes.WriteError(w, http.StatusBadRequest, httpTypes.CodeBadRequest, "custom role not found")
		default:
			a.logger.Errorf("failed to create user: %v", err)
			httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
		}
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, UserResponse{
		ID:       created.ID,
		Email:    created.Email,
		Username: created.Username,
		Role:     created.Role,
		TenantID: created.TenantID,
	})
}

func (a *API) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.deleteUser")
	defer span.End()

	caller, ok := authentication.CallerFromContext(ctx)
	if !ok {
		httpTypes.WriteError(w, http.StatusUnauthorized, httpTypes.CodeUnauthenticated, "please log in")
		return
	}

	if err := a.service.DeleteUser(ctx, caller, chi.URLParamFromCtx(ctx, "id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpTypes.WriteError(w, http.StatusNotFound, httpTypes.CodeNotFound, "user not found")
			return
		}
		a.logger.Errorf("failed to delete user: %v", err)
		httpTypes.WriteError(w, http.StatusInternalServerError, httpTypes.CodeInternal, "internal server error")
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
