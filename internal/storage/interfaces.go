// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/oleamind/farm-service/internal/types"
)

type StorageInterface interface {
	GetPrincipalByID(ctx context.Context, id int64) (*types.Principal, error)
	GetPrincipalByEmail(ctx context.Context, email string) (*types.Principal, error)
	SetPrincipalActive(ctx context.Context, id int64, active bool) error
	ListPrincipalsVisibleToOwner(ctx context.Context, ownerID int64) ([]*types.Principal, error)

	GetFarmByID(ctx context.Context, id int64) (*types.Farm, error)
	GetFarmByIDAndOwner(ctx context.Context, id, ownerID int64) (*types.Farm, error)
	ListFarmsByPrincipalID(ctx context.Context, principalID int64) ([]*types.Farm, error)
	CountFarmsByOwnerID(ctx context.Context, ownerID int64) (int64, error)

	GetMembership(ctx context.Context, principalID, farmID int64) (*types.Membership, error)
	UpsertMembership(ctx context.Context, principalID, farmID int64, role string) error
	DeleteMembership(ctx context.Context, principalID, farmID int64) error
	ListMembersByFarmID(ctx context.Context, farmID int64) ([]*types.FarmMember, error)

	CreateSession(ctx context.Context, s *types.Session) (*types.Session, error)
	DeleteSessionByToken(ctx context.Context, token string) error
}
