// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/oleamind/farm-service/internal/logging"
	"github.com/oleamind/farm-service/internal/monitoring"
	"github.com/oleamind/farm-service/internal/storage"
	"github.com/oleamind/farm-service/internal/tracing"
	"github.com/oleamind/farm-service/internal/types"
)

type AccessKind int

const (
	AccessNone AccessKind = iota
	AccessOwner
	AccessMember
)

// Access is the resolved relation between a principal and a farm. Keeping it
// a single tagged value enforces the ownership-before-membership precedence
// in one place instead of two independent boolean checks.
type Access struct {
	Kind AccessKind
	Role string
	Farm *types.Farm
}

// Allows reports whether this access satisfies a required-role check.
// An owner passes any check with a non-empty allowed set.
func (a *Access) Allows(allowedRoles []string) bool {
	switch a.Kind {
	case AccessOwner:
		return len(allowedRoles) > 0
	case AccessMember:
		return slices.Contains(allowedRoles, a.Role)
	default:
		return false
	}
}

type Authorizer struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ AuthorizerInterface = (*Authorizer)(nil)

// ResolveAccess determines the effective relation between a principal and a
// farm. Ownership is checked first and wins unconditionally, a membership row
// for the same pair is never consulted once ownership is established.
func (a *Authorizer) ResolveAccess(ctx context.Context, principalID, farmID int64) (*Access, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ResolveAccess")
	defer span.End()

	farm, err := a.storage.GetFarmByIDAndOwner(ctx, farmID, principalID)
	if err == nil {
		return &Access{Kind: AccessOwner, Role: RoleOwner, Farm: farm}, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve farm ownership: %w", err)
	}

	membership, err := a.storage.GetMembership(ctx, principalID, farmID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &Access{Kind: AccessNone}, nil
		}
		return nil, fmt.Errorf("failed to resolve membership: %w", err)
	}

	farm, err = a.storage.GetFarmByID(ctx, farmID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Membership exists but the farm does not, treat as no farm
			return nil, ErrFarmNotFound
		}
		return nil, fmt.Errorf("failed to load farm: %w", err)
	}

	return &Access{Kind: AccessMember, Role: membership.Role, Farm: farm}, nil
}

// ResolveTier gates an operation on the farm's subscription. It consults only
// the farm, never the principal, a blocked subscription blocks even the owner.
func (a *Authorizer) ResolveTier(ctx context.Context, farm *types.Farm, requiredTiers []string) (string, error) {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.ResolveTier")
	defer span.End()

	if farm.SubscriptionStatus != SubscriptionActive {
		return "", ErrSubscriptionRequired
	}

	if !slices.Contains(requiredTiers, farm.Tier) {
		return "", ErrTierInsufficient
	}

	return farm.Tier, nil
}

// OwnsAnyFarm backs the legacy account-wide owner check. It never consults
// memberships and must not gate farm-scoped mutations.
func (a *Authorizer) OwnsAnyFarm(ctx context.Context, principalID int64) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.OwnsAnyFarm")
	defer span.End()

	count, err := a.storage.CountFarmsByOwnerID(ctx, principalID)
	if err != nil {
		return false, fmt.Errorf("failed to count owned farms: %w", err)
	}

	return count > 0, nil
}

func NewAuthorizer(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)

	a.storage = storage

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
