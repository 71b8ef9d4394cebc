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

	"github.com/canonical/authorization-service/internal/types"
)

func (s *Storage) CreateCustomRole(ctx context.Context, r *types.CustomRole) (*types.CustomRole, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCustomRole")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate role ID: %w", err)
	}

	perms, err := json.Marshal(r.Permissions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal permissions: %w", err)
	}

	var created types.CustomRole
	var rawPerms []byte
	err = s.db.Statement(ctx).
		Insert("custom_roles").
		Columns("id", "tenant_id", "name", "permissions", "is_system").
		Values(id.String(), r.TenantID, r.Name, perms, r.IsSystem).
		Suffix("RETURNING id, tenant_id, name, permissions, is_system, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.Name, &rawPerms, &created.IsSystem, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert custom role: %w", err)
	}

	if err := json.Unmarshal(rawPerms, &created.Permissions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal permissions: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetCustomRole(ctx context.Context, tenantID, id string) (*types.CustomRole, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCustomRole")
	defer span.End()

	var r types.CustomRole
	var rawPerms []byte
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "name", "permissions", "is_system", "created_at").
		From("custom_roles").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&r.ID, &r.TenantID, &r.Name, &rawPerms, &r.IsSystem, &r.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get custom role: %w", err)
	}

	if err := json.Unmarshal(rawPerms, &r.Permissions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal permissions: %w", err)
	}

	return &r, nil
}

func (s *Storage) ListCustomRoles(ctx context.Context, tenantID string) ([]*types.CustomRole, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCustomRoles")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "name", "permissions", "is_system", "created_at").
		From("custom_roles").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom roles: %w", err)
	}
	defer rows.Close()

	var roles []*types.CustomRole
	for rows.Next() {
		var r types.CustomRole
		var rawPerms []byte
		if err := rows.Scan(&r.ID, &r.TenantID, &r.Name, &rawPerms, &r.IsSystem, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan custom role: %w", err)
		}
		if err := json.Unmarshal(rawPerms, &r.Permissions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal permissions: %w", err)
		}
		roles = append(roles, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

// DeleteCustomRole deletes a non-system role. Seeded system roles are
// protected.
func (s *Storage) DeleteCustomRole(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCustomRole")
	defer span.End()

	role, err := s.GetCustomRole(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if role.IsSystem {
		return ErrSystemRole
	}

	_, err = s.db.Statement(ctx).
		Delete("custom_roles").
		Where(sq.Eq{"id": id, "tenant_id": tenantID, "is_system": false}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete custom role: %w", err)
	}

	return nil
}
