// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package principal

import (
	"context"

	"github.com/oleamind/farm-service/internal/types"
)

type ServiceInterface interface {
	LegacyProfile(ctx context.Context, principal *types.Principal) (*types.LegacyProfile, error)
	ListPrincipalsVisibleToOwner(ctx context.Context, ownerID int64) ([]*types.Principal, error)
	SetActive(ctx context.Context, principalID int64, active bool) error
	RevokeSession(ctx context.Context, token string) error
}

// StorageInterface defines the storage operations required by the principal
// package. It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetFarmByID(ctx context.Context, id int64) (*types.Farm, error)
	ListPrincipalsVisibleToOwner(ctx context.Context, ownerID int64) ([]*types.Principal, error)
	SetPrincipalActive(ctx context.Context, id int64, active bool) error
	DeleteSessionByToken(ctx context.Context, token string) error
}
