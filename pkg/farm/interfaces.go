// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package farm

import (
	"context"

	"github.com/oleamind/farm-service/internal/types"
)

type ServiceInterface interface {
	ListFarmsByPrincipalID(ctx context.Context, principalID int64) ([]*types.Farm, error)
	ListMembers(ctx context.Context, farmID int64) ([]*types.FarmMember, error)
	AddMember(ctx context.Context, farmID int64, email, role string) (*types.FarmMember, error)
	RemoveMember(ctx context.Context, farmID, principalID int64) error
}

// StorageInterface defines the storage operations required by the farm
// package. It is a subset of the internal/storage interface.
type StorageInterface interface {
	ListFarmsByPrincipalID(ctx context.Context, principalID int64) ([]*types.Farm, error)
	ListMembersByFarmID(ctx context.Context, farmID int64) ([]*types.FarmMember, error)
	GetPrincipalByEmail(ctx context.Context, email string) (*types.Principal, error)
	GetFarmByID(ctx context.Context, id int64) (*types.Farm, error)
	UpsertMembership(ctx context.Context, principalID, farmID int64, role string) error
	DeleteMembership(ctx context.Context, principalID, farmID int64) error
}
