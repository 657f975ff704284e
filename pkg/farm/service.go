// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package farm

import (
	"context"
	"errors"
	"fmt"

	"github.com/oleamind/farm-service/internal/logging"
	"github.com/oleamind/farm-service/internal/monitoring"
	"github.com/oleamind/farm-service/internal/storage"
	"github.com/oleamind/farm-service/internal/tracing"
	"github.com/oleamind/farm-service/internal/types"
)

var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrPrincipalNotFound = errors.New("no principal with this email")
	ErrOwnerMembership   = errors.New("the farm owner cannot be added as a member")
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) ListFarmsByPrincipalID(ctx context.Context, principalID int64) ([]*types.Farm, error) {
	ctx, span := s.tracer.Start(ctx, "farm.Service.ListFarmsByPrincipalID")
	defer span.End()

	return s.storage.ListFarmsByPrincipalID(ctx, principalID)
}

func (s *Service) ListMembers(ctx context.Context, farmID int64) ([]*types.FarmMember, error) {
	ctx, span := s.tracer.Start(ctx, "farm.Service.ListMembers")
	defer span.End()

	return s.storage.ListMembersByFarmID(ctx, farmID)
}

// AddMember grants an existing principal a role on the farm, updating the
// role if a membership already exists. The owner is excluded, ownership
// already implies every role.
func (s *Service) AddMember(ctx context.Context, farmID int64, email, role string) (*types.FarmMember, error) {
	ctx, span := s.tracer.Start(ctx, "farm.Service.AddMember")
	defer span.End()

	principal, err := s.storage.GetPrincipalByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrPrincipalNotFound
		}
		s.logger.Errorf("failed to look up principal by email: %v", err)
		return nil, fmt.Errorf("failed to look up principal")
	}

	farm, err := s.storage.GetFarmByID(ctx, farmID)
	if err != nil {
		s.logger.Errorf("failed to load farm %d: %v", farmID, err)
		return nil, fmt.Errorf("failed to load farm")
	}

	if farm.OwnerID == principal.ID {
		return nil, ErrOwnerMembership
	}

	if err := s.storage.UpsertMembership(ctx, principal.ID, farmID, role); err != nil {
		s.logger.Errorf("failed to upsert membership: %v", err)
		return nil, fmt.Errorf("failed to add member")
	}

	return &types.FarmMember{
		PrincipalID: principal.ID,
		Email:       principal.Email,
		Role:        role,
	}, nil
}

func (s *Service) RemoveMember(ctx context.Context, farmID, principalID int64) error {
	ctx, span := s.tracer.Start(ctx, "farm.Service.RemoveMember")
	defer span.End()

	if err := s.storage.DeleteMembership(ctx, principalID, farmID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMemberNotFound
		}
		s.logger.Errorf("failed to delete membership: %v", err)
		return fmt.Errorf("failed to remove member")
	}

	return nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
