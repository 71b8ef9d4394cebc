// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/authorization-service/internal/db"
	"github.com/canonical/authorization-service/internal/logging"
	"github.com/canonical/authorization-service/internal/monitoring"
	"github.com/canonical/authorization-service/internal/tracing"
	"github.com/canonical/authorization-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// LockTenant serializes writers on the tenant key for the duration of the
// surrounding transaction. Outside a transaction the lock is released
// immediately, so write paths must run transactional. Read-modify-write
// callers acquire it before their first read so the merge starts from the
// committed state of the previous writer.
func (s *Storage) LockTenant(ctx context.Context, tenantID string) error {
	var dummy interface{}
	err := s.db.Statement(ctx).
		Select().
		Column(sq.Expr("pg_advisory_xact_lock(hashtext(?))", tenantID)).
		QueryRowContext(ctx).
		Scan(&dummy)
	if err != nil {
		return fmt.Errorf("failed to acquire tenant lock: %w", err)
	}
	return nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	var retired int
	err = s.db.Statement(ctx).
		Select("COUNT(*)").
		From("retired_slugs").
		Where(sq.Eq{"slug": t.Slug}).
		QueryRowContext(ctx).
		Scan(&retired)
	if err != nil {
		return nil, fmt.Errorf("failed to check retired slugs: %w", err)
	}
	if retired > 0 {
		return nil, ErrSlugRetired
	}

	matrix, features, branding, err := marshalTenantConfig(t)
	if err != nil {
		return nil, err
	}

	var newTenant types.Tenant
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "slug", "name", "plan", "rbac_matrix", "feature_entitlements", "branding", "enabled").
		Values(id.String(), t.Slug, t.Name, t.Plan, matrix, features, branding, t.Enabled).
		Suffix("RETURNING id, slug, name, plan, created_at, enabled").
		QueryRowContext(ctx).
		Scan(&newTenant.ID, &newTenant.Slug, &newTenant.Name, &newTenant.Plan, &newTenant.CreatedAt, &newTenant.Enabled)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	newTenant.RBACMatrix = t.RBACMatrix
	newTenant.FeatureEntitlements = t.FeatureEntitlements
	newTenant.Branding = t.Branding

	return &newTenant, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantBySlug")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"slug": slug})
}

func (s *Storage) getTenant(ctx context.Context, pred sq.Eq) (*types.Tenant, error) {
	var (
		t        types.Tenant
		matrix   []byte
		features []byte
		branding []byte
	)

	err := s.db.Statement(ctx).
		Select("id", "slug", "name", "plan", "rbac_matrix", "feature_entitlements", "secrets_blob", "branding", "created_at", "enabled").
		From("tenants").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Slug, &t.Name, &t.Plan, &matrix, &features, &t.SecretsBlob, &branding, &t.CreatedAt, &t.Enabled)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	if err := unmarshalTenantConfig(&t, matrix, features, branding); err != nil {
		return nil, err
	}

	return &t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "slug", "name", "plan", "created_at", "enabled").
		From("tenants").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Slug, &t.Name, &t.Plan, &t.CreatedAt, &t.Enabled); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

// UpdateTenant updates fields specified in paths, following PATCH semantics.
// The slug is immutable and never part of an update.
func (s *Storage) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = tenant.Name
		case "plan":
			updateMap["plan"] = tenant.Plan
		case "enabled":
			updateMap["enabled"] = tenant.Enabled
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	_, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": tenant.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	return nil
}

// DeleteTenant removes the tenant row and parks its slug so it can never be
// reused. Users of the tenant are recorded in the deleted-users ledger first,
// so the audit orphan sweep can null their references later.
func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("deleted_users").
		Columns("user_id").
		Select(sq.Select("id").From("users").Where(sq.Eq{"tenant_id": id})).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to record deleted users: %w", err)
	}

	var slug string
	err = s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING slug").
		QueryRowContext(ctx).
		Scan(&slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("retired_slugs").
		Columns("slug").
		Values(slug).
		Suffix("ON CONFLICT (slug) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to retire slug: %w", err)
	}

	return nil
}

func (s *Storage) GetTenantOverrides(ctx context.Context, tenantID string) (*types.TenantOverrides, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantOverrides")
	defer span.End()

	t, err := s.GetTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &types.TenantOverrides{
		RBACMatrix:          t.RBACMatrix,
		FeatureEntitlements: t.FeatureEntitlements,
		SecretsBlob:         t.SecretsBlob,
		Branding:            t.Branding,
	}, nil
}

func (s *Storage) UpdateRBACMatrix(ctx context.Context, tenantID string, matrix types.RBACMatrix) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateRBACMatrix")
	defer span.End()

	if err := s.LockTenant(ctx, tenantID); err != nil {
		return err
	}

	raw, err := json.Marshal(matrix)
	if err != nil {
		return fmt.Errorf("failed to marshal rbac matrix: %w", err)
	}

	return s.updateTenantColumn(ctx, tenantID, "rbac_matrix", raw)
}

func (s *Storage) UpdateSecretsBlob(ctx context.Context, tenantID string, blob []byte) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateSecretsBlob")
	defer span.End()

	if err := s.LockTenant(ctx, tenantID); err != nil {
		return err
	}

	return s.updateTenantColumn(ctx, tenantID, "secrets_blob", blob)
}

func (s *Storage) UpdateBranding(ctx context.Context, tenantID string, branding types.BrandingConfig) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateBranding")
	defer span.End()

	raw, err := json.Marshal(branding)
	if err != nil {
		return fmt.Errorf("failed to marshal branding: %w", err)
	}

	return s.updateTenantColumn(ctx, tenantID, "branding", raw)
}

func (s *Storage) updateTenantColumn(ctx context.Context, tenantID, column string, value interface{}) error {
	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set(column, value).
		Where(sq.Eq{"id": tenantID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant %s: %w", column, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func marshalTenantConfig(t *types.Tenant) (matrix, features, branding []byte, err error) {
	if t.RBACMatrix == nil {
		t.RBACMatrix = types.RBACMatrix{}
	}
	if t.FeatureEntitlements == nil {
		t.FeatureEntitlements = map[string]bool{}
	}

	if matrix, err = json.Marshal(t.RBACMatrix); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal rbac matrix: %w", err)
	}
	if features, err = json.Marshal(t.FeatureEntitlements); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal feature entitlements: %w", err)
	}
	if branding, err = json.Marshal(t.Branding); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal branding: %w", err)
	}
	return matrix, features, branding, nil
}

func unmarshalTenantConfig(t *types.Tenant, matrix, features, branding []byte) error {
	if len(matrix) > 0 {
		if err := json.Unmarshal(matrix, &t.RBACMatrix); err != nil {
			return fmt.Errorf("failed to unmarshal rbac matrix: %w", err)
		}
	}
	if len(features) > 0 {
		if err := json.Unmarshal(features, &t.FeatureEntitlements); err != nil {
			return fmt.Errorf("failed to unmarshal feature entitlements: %w", err)
		}
	}
	if len(branding) > 0 {
		if err := json.Unmarshal(branding, &t.Branding); err != nil {
			return fmt.Errorf("failed to unmarshal branding: %w", err)
		}
	}
	return nil
}
