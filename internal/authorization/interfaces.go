// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/oleamind/farm-service/internal/types"
)

type AuthorizerInterface interface {
	ResolveAccess(ctx context.Context, principalID, farmID int64) (*Access, error)
	ResolveTier(ctx context.Context, farm *types.Farm, requiredTiers []string) (string, error)
	OwnsAnyFarm(ctx context.Context, principalID int64) (bool, error)
}

// StorageInterface defines the storage operations required by the
// authorization package. It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetFarmByID(ctx context.Context, id int64) (*types.Farm, error)
	GetFarmByIDAndOwner(ctx context.Context, id, ownerID int64) (*types.Farm, error)
	GetMembership(ctx context.Context, principalID, farmID int64) (*types.Membership, error)
	CountFarmsByOwnerID(ctx context.Context, ownerID int64) (int64, error)
}
