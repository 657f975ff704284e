// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package principal

import (
	"context"
	"errors"
	"fmt"

	"github.com/oleamind/farm-service/internal/authorization"
	"github.com/oleamind/farm-service/internal/logging"
	"github.com/oleamind/farm-service/internal/monitoring"
	"github.com/oleamind/farm-service/internal/storage"
	"github.com/oleamind/farm-service/internal/tracing"
	"github.com/oleamind/farm-service/internal/types"
)

var ErrPrincipalNotFound = errors.New("no principal with this id")

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

// LegacyProfile computes the deprecated singular role/farm/tier projection
// from the principal's associations. The first owned farm wins over any
// membership, matching the ownership precedence of the access resolver.
func (s *Service) LegacyProfile(ctx context.Context, principal *types.Principal) (*types.LegacyProfile, error) {
	ctx, span := s.tracer.Start(ctx, "principal.Service.LegacyProfile")
	defer span.End()

	if len(principal.OwnedFarmIDs) > 0 {
		farmID := principal.OwnedFarmIDs[0]
		farm, err := s.storage.GetFarmByID(ctx, farmID)
		if err != nil {
			return nil, fmt.Errorf("failed to load owned farm %d: %w", farmID, err)
		}
		return &types.LegacyProfile{
			Role:   authorization.RoleOwner,
			FarmID: &farmID,
			Tier:   farm.Tier,
		}, nil
	}

	if len(principal.Memberships) > 0 {
		membership := principal.Memberships[0]
		farm, err := s.storage.GetFarmByID(ctx, membership.FarmID)
		if err != nil {
			return nil, fmt.Errorf("failed to load member farm %d: %w", membership.FarmID, err)
		}
		farmID := membership.FarmID
		return &types.LegacyProfile{
			Role:   membership.Role,
			FarmID: &farmID,
			Tier:   farm.Tier,
		}, nil
	}

	return &types.LegacyProfile{}, nil
}

func (s *Service) ListPrincipalsVisibleToOwner(ctx context.Context, ownerID int64) ([]*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "principal.Service.ListPrincipalsVisibleToOwner")
	defer span.End()

	principals, err := s.storage.ListPrincipalsVisibleToOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list principals: %w", err)
	}

	return principals, nil
}

// SetActive flips the active flag. The change is observed by the strict
// authentication pipeline on the principal's next request, outstanding
// credentials are not revoked.
func (s *Service) SetActive(ctx context.Context, principalID int64, active bool) error {
	ctx, span := s.tracer.Start(ctx, "principal.Service.SetActive")
	defer span.End()

	if err := s.storage.SetPrincipalActive(ctx, principalID, active); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPrincipalNotFound
		}
		return fmt.Errorf("failed to update principal %d: %w", principalID, err)
	}

	return nil
}

// RevokeSession deletes the session row for a presented credential. A token
// without a session row is not an error, logout is idempotent.
func (s *Service) RevokeSession(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "principal.Service.RevokeSession")
	defer span.End()

	if err := s.storage.DeleteSessionByToken(ctx, token); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
