// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/authorization-service/internal/types"
)

type contextKey int

const callerContextKey contextKey = iota

// ContextWithCaller attaches the resolved caller to the request context. This
// is the only place identity travels; there is no ambient tenant state.
func ContextWithCaller(ctx context.Context, caller *types.CallerContext) context.Context {
	return context.WithValue(ctx, callerContextKey, caller)
}

// CallerFromContext returns the caller resolved for this request, if any.
func CallerFromContext(ctx context.Context) (*types.CallerContext, bool) {
	caller, ok := ctx.Value(callerContextKey).(*types.CallerContext)
	return caller, ok
}
