// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "errors"

// ErrUnauthenticated covers missing, expired and malformed sessions alike,
// undifferentiated so callers cannot enumerate which one they hit.
// ErrTenantNotFound and ErrTenantMismatch both surface externally as a
// generic access denial, never revealing whether the slug exists.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrTenantNotFound  = errors.New("tenant not found")
	ErrTenantMismatch  = errors.New("session tenant does not match the declared tenant")
)
