// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import "errors"

var (
	// ErrInvalidSlug rejects slugs that are not lowercase DNS-label-like
	// tokens. Slugs are immutable once assigned, so they are checked hard at
	// creation time.
	ErrInvalidSlug = errors.New("slug must be a lowercase alphanumeric token with single hyphens")

	// ErrInvalidRole rejects user provisioning with a role outside the
	// built-in tenant roles.
	ErrInvalidRole = errors.New("unknown role")
)
