// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantconfig

import "errors"

var (
	// ErrNonRevocable rejects an RBAC matrix that would revoke an admin
	// capability protected against tenant lockout.
	ErrNonRevocable = errors.New("matrix revokes a non-revocable admin permission")

	// ErrInvalidRole rejects matrix entries for the super-admin sentinel or
	// for role names that are neither built-in nor a custom role.
	ErrInvalidRole = errors.New("matrix references an unknown role")

	// ErrInvalidPermission rejects permission keys that are not
	// resource:action tokens.
	ErrInvalidPermission = errors.New("invalid permission key")
)
