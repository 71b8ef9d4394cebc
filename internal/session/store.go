// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package session is the durable, TTL-expiring session store backed by redis.
// Expiry is enforced twice: redis evicts the key, and Get re-checks the
// recorded deadline so a lagging eviction can never resurrect a session.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/authorization-service/internal/logging"
	"github.com/canonical/authorization-service/internal/monitoring"
	"github.com/canonical/authorization-service/internal/tracing"
	"github.com/canonical/authorization-service/internal/types"
)

const keyPrefix = "session:"

var ErrNotFound = errors.New("session not found or expired")

var _ StoreInterface = (*Store)(nil)

type Store struct {
	client   redis.UniversalClient
	lifetime time.Duration

	// mu serializes session create/destroy per tenant.
	mu          sync.Mutex
	tenantLocks map[string]*sync.Mutex

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewStore(client redis.UniversalClient, lifetime time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Store {
	s := new(Store)

	s.client = client
	s.lifetime = lifetime
	s.tenantLocks = make(map[string]*sync.Mutex)

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

func (s *Store) tenantLock(tenantID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.tenantLocks[tenantID]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.tenantLocks[tenantID] = l
	return l
}

func (s *Store) Create(ctx context.Context, userID, tenantID, role string) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "session.Store.Create")
	defer span.End()

	lock := s.tenantLock(tenantID)
	lock.Lock()
	defer lock.Unlock()

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	sess := &types.Session{
		Token:     token,
		UserID:    userID,
		TenantID:  tenantID,
		Role:      role,
		ExpiresAt: time.Now().Add(s.lifetime),
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+token, raw, s.lifetime).Err(); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return sess, nil
}

func (s *Store) Get(ctx context.Context, token string) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "session.Store.Get")
	defer span.End()

	raw, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess types.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(sess.ExpiresAt) {
		if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
			s.logger.Errorf("failed to delete expired session: %v", err)
		}
		return nil, ErrNotFound
	}

	return &sess, nil
}

func (s *Store) Refresh(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "session.Store.Refresh")
	defer span.End()

	sess, err := s.Get(ctx, token)
	if err != nil {
		return err
	}

	sess.ExpiresAt = time.Now().Add(s.lifetime)
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+token, raw, s.lifetime).Err(); err != nil {
		return fmt.Errorf("failed to refresh session: %w", err)
	}

	return nil
}

func (s *Store) Destroy(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "session.Store.Destroy")
	defer span.End()

	sess, err := s.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Destroying an already-gone session is a no-op.
			return nil
		}
		return err
	}

	lock := s.tenantLock(sess.TenantID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
