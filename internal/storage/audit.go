// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/authorization-service/internal/types"
)

// AppendAuditEntry inserts an audit row. The entry's ID and timestamp are
// stamped when the event is recorded, not when the queue drains, so both are
// persisted as given. There is deliberately no update or delete counterpart
// on this surface.
func (s *Storage) AppendAuditEntry(ctx context.Context, e *types.AuditLogEntry) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AppendAuditEntry")
	defer span.End()

	id := e.ID
	if id == "" {
		generated, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("failed to generate audit ID: %w", err)
		}
		id = generated.String()
	}

	timestamp := e.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	metadata := e.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("failed to marshal audit metadata: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("audit_log").
		Columns("id", "timestamp", "event", "user_id", "metadata").
		Values(id, timestamp, e.Event, e.UserID, raw).
		ExecContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to append audit entry: %w", err)
	}

	return id, nil
}

func (s *Storage) ListAuditEntries(ctx context.Context, event string, limit uint64) ([]*types.AuditLogEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAuditEntries")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "timestamp", "event", "user_id", "metadata").
		From("audit_log").
		OrderBy("timestamp DESC").
		Limit(limit)

	if event != "" {
		query = query.Where(sq.Eq{"event": event})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*types.AuditLogEntry
	for rows.Next() {
		var e types.AuditLogEntry
		var raw []byte
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Event, &e.UserID, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &e.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal audit metadata: %w", err)
			}
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

// NullOrphanedAuditUsers nulls user_id on entries whose user has been
// removed, consuming the deleted-users ledger. Rows are never deleted.
func (s *Storage) NullOrphanedAuditUsers(ctx context.Context) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.NullOrphanedAuditUsers")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("audit_log").
		Set("user_id", nil).
		Where("user_id IN (SELECT user_id FROM deleted_users)").
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to null orphaned audit users: %w", err)
	}

	nulled, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	// The ledger entry has served its purpose once no audit rows point at it.
	_, err = s.db.Statement(ctx).
		Delete("deleted_users").
		Where("user_id NOT IN (SELECT user_id FROM audit_log WHERE user_id IS NOT NULL)").
		ExecContext(ctx)
	if err != nil {
		return nulled, fmt.Errorf("failed to prune deleted-users ledger: %w", err)
	}

	return nulled, nil
}
