// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "errors"

// ErrPermissionDenied and ErrFeatureNotEntitled are distinct on purpose. The
// first means the caller's role lacks a capability, the second that the
// tenant's plan does not include a functional area regardless of role.
var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrFeatureNotEntitled = errors.New("feature not entitled")
)
