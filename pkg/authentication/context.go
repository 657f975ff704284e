// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/oleamind/farm-service/internal/types"
)

// Define private custom types to avoid collisions
type principalContextKey struct{}
type credentialContextKey struct{}

var principalKey principalContextKey
var credentialKey credentialContextKey

// WithPrincipal returns a new context with the given principal derived from the parent context.
func WithPrincipal(ctx context.Context, p *types.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext retrieves the authenticated principal from the context.
// Returns nil and false if no principal is present (anonymous request).
func PrincipalFromContext(ctx context.Context) (*types.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*types.Principal)
	return p, ok
}

// PrincipalIDFromContext retrieves the authenticated principal's ID from the context.
func PrincipalIDFromContext(ctx context.Context) (int64, bool) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return 0, false
	}
	return p.ID, true
}

// WithCredential stores the raw presented credential so revocation handlers
// can reference it without re-extracting from the request.
func WithCredential(ctx context.Context, raw string) context.Context {
	return context.WithValue(ctx, credentialKey, raw)
}

// CredentialFromContext retrieves the raw credential from the context.
func CredentialFromContext(ctx context.Context) (string, bool) {
	raw, ok := ctx.Value(credentialKey).(string)
	return raw, ok
}
