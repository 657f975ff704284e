// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/oleamind/farm-service/internal/types"
)

// Define private custom types to avoid collisions
type farmIDContextKey struct{}
type farmContextKey struct{}
type roleContextKey struct{}
type tierContextKey struct{}

var farmIDKey farmIDContextKey
var farmKey farmContextKey
var roleKey roleContextKey
var tierKey tierContextKey

// WithFarmID returns a new context with the resolved farm ID. Downstream
// stages and handlers treat it as an established fact and never re-parse
// the request.
func WithFarmID(ctx context.Context, farmID int64) context.Context {
	return context.WithValue(ctx, farmIDKey, farmID)
}

func FarmIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(farmIDKey).(int64)
	return id, ok
}

func WithFarm(ctx context.Context, farm *types.Farm) context.Context {
	return context.WithValue(ctx, farmKey, farm)
}

func FarmFromContext(ctx context.Context) (*types.Farm, bool) {
	farm, ok := ctx.Value(farmKey).(*types.Farm)
	return farm, ok
}

// WithRole attaches the effective role resolved for the (principal, farm) pair.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok
}

func WithTier(ctx context.Context, tier string) context.Context {
	return context.WithValue(ctx, tierKey, tier)
}

func TierFromContext(ctx context.Context) (string, bool) {
	tier, ok := ctx.Value(tierKey).(string)
	return tier, ok
}
