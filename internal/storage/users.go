// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/authorization-service/internal/types"
)

const userColumns = "id, tenant_id, email, username, password_hash, role, custom_role_id, created_at"

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	var created types.User
	err = s.db.Statement(ctx).
		Insert("users").
		Columns("id", "tenant_id", "email", "username", "password_hash", "role", "custom_role_id").
		Values(id.String(), u.TenantID, u.Email, u.Username, u.PasswordHash, u.Role, u.CustomRoleID).
		Suffix("RETURNING " + userColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.Email, &created.Username, &created.PasswordHash, &created.Role, &created.CustomRoleID, &created.CreatedAt)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &created, nil
}

// GetUserByID looks up a user by id. The users table sits behind a row
// policy: callers must run inside a transaction bound to the user's tenant,
// or the lookup only sees platform-global sentinel rows.
func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetUserByEmail(ctx context.Context, tenantID, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"tenant_id": tenantID, "email": email})
}

// GetPlatformUserByEmail looks up a super-admin sentinel row, the only rows
// with no tenant.
func (s *Storage) GetPlatformUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPlatformUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"tenant_id": nil, "email": email})
}

func (s *Storage) getUser(ctx context.Context, pred sq.Eq) (*types.User, error) {
	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "email", "username", "password_hash", "role", "custom_role_id", "created_at").
		From("users").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.TenantID, &u.Email, &u.Username, &u.PasswordHash, &u.Role, &u.CustomRoleID, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// DeleteUser removes the user and records the id in the deleted-users ledger
// within the same transaction, for the audit orphan sweep.
func (s *Storage) DeleteUser(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUser")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("users").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	_, err = s.db.Statement(ctx).
		Insert("deleted_users").
		Columns("user_id").
		Values(id).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to record deleted user: %w", err)
	}

	return nil
}
