// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oleamind/farm-service/internal/db"
	"github.com/oleamind/farm-service/internal/logging"
	"github.com/oleamind/farm-service/internal/monitoring"
	"github.com/oleamind/farm-service/internal/tracing"
	"github.com/oleamind/farm-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetPrincipalByID(ctx context.Context, id int64) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPrincipalByID")
	defer span.End()

	return s.getPrincipal(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetPrincipalByEmail(ctx context.Context, email string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPrincipalByEmail")
	defer span.End()

	return s.getPrincipal(ctx, sq.Eq{"email": email})
}

func (s *Storage) getPrincipal(ctx context.Context, pred sq.Eq) (*types.Principal, error) {
	var p types.Principal
	err := s.db.Statement(ctx).
		Select("id", "email", "first_name", "last_name", "active", "created_at", "updated_at").
		From("principals").
		Where(pred).
		Where(sq.Eq{"deleted_at": nil}).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.Email, &p.FirstName, &p.LastName, &p.Active, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}

	memberships, err := s.listMembershipsByPrincipalID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Memberships = memberships

	ownedIDs, err := s.listOwnedFarmIDs(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.OwnedFarmIDs = ownedIDs

	return &p, nil
}

func (s *Storage) listMembershipsByPrincipalID(ctx context.Context, principalID int64) ([]*types.Membership, error) {
	rows, err := s.db.Statement(ctx).
		Select("principal_id", "farm_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"principal_id": principalID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.PrincipalID, &m.FarmID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating membership rows: %w", err)
	}

	return memberships, nil
}

func (s *Storage) listOwnedFarmIDs(ctx context.Context, ownerID int64) ([]int64, error) {
	rows, err := s.db.Statement(ctx).
		Select("id").
		From("farms").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned farms: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan farm id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating farm id rows: %w", err)
	}

	return ids, nil
}

func (s *Storage) SetPrincipalActive(ctx context.Context, id int64, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetPrincipalActive")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Update("principals").
		Set("active", active).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"deleted_at": nil}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update principal: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListPrincipalsVisibleToOwner(ctx context.Context, ownerID int64) ([]*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPrincipalsVisibleToOwner")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("DISTINCT p.id", "p.email", "p.first_name", "p.last_name", "p.active", "p.created_at", "p.updated_at").
		From("principals p").
		Join("memberships m ON p.id = m.principal_id").
		Join("farms f ON m.farm_id = f.id").
		Where(sq.Eq{"f.owner_id": ownerID}).
		Where(sq.Eq{"p.deleted_at": nil}).
		OrderBy("p.id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list principals: %w", err)
	}
	defer rows.Close()

	var principals []*types.Principal
	for rows.Next() {
		var p types.Principal
		if err := rows.Scan(&p.ID, &p.Email, &p.FirstName, &p.LastName, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan principal: %w", err)
		}
		principals = append(principals, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating principal rows: %w", err)
	}

	return principals, nil
}

func (s *Storage) GetFarmByID(ctx context.Context, id int64) (*types.Farm, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetFarmByID")
	defer span.End()

	return s.getFarm(ctx, sq.Eq{"id": id})
}

// GetFarmByIDAndOwner resolves a farm scoped to the claim that the given
// principal owns it, so ownership checks are a single indexed lookup.
func (s *Storage) GetFarmByIDAndOwner(ctx context.Context, id, ownerID int64) (*types.Farm, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetFarmByIDAndOwner")
	defer span.End()

	return s.getFarm(ctx, sq.Eq{"id": id, "owner_id": ownerID})
}

func (s *Storage) getFarm(ctx context.Context, pred sq.Eq) (*types.Farm, error) {
	var f types.Farm
	err := s.db.Statement(ctx).
		Select("id", "name", "address", "owner_id", "tier", "subscription_status", "created_at", "updated_at").
		From("farms").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&f.ID, &f.Name, &f.Address, &f.OwnerID, &f.Tier, &f.SubscriptionStatus, &f.CreatedAt, &f.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get farm: %w", err)
	}

	return &f, nil
}

// ListFarmsByPrincipalID returns farms the principal owns or is a member of.
func (s *Storage) ListFarmsByPrincipalID(ctx context.Context, principalID int64) ([]*types.Farm, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListFarmsByPrincipalID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("DISTINCT f.id", "f.name", "f.address", "f.owner_id", "f.tier", "f.subscription_status", "f.created_at", "f.updated_at").
		From("farms f").
		LeftJoin("memberships m ON f.id = m.farm_id").
		Where(sq.Or{
			sq.Eq{"f.owner_id": principalID},
			sq.Eq{"m.principal_id": principalID},
		}).
		OrderBy("f.id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	defer rows.Close()

	var farms []*types.Farm
	for rows.Next() {
		var f types.Farm
		if err := rows.Scan(&f.ID, &f.Name, &f.Address, &f.OwnerID, &f.Tier, &f.SubscriptionStatus, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan farm: %w", err)
		}
		farms = append(farms, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating farm rows: %w", err)
	}

	return farms, nil
}

func (s *Storage) CountFarmsByOwnerID(ctx context.Context, ownerID int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountFarmsByOwnerID")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("farms").
		Where(sq.Eq{"owner_id": ownerID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count farms: %w", err)
	}

	return count, nil
}

func (s *Storage) GetMembership(ctx context.Context, principalID, farmID int64) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("principal_id", "farm_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"principal_id": principalID, "farm_id": farmID}).
		QueryRowContext(ctx).
		Scan(&m.PrincipalID, &m.FarmID, &m.Role, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) UpsertMembership(ctx context.Context, principalID, farmID int64, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertMembership")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("memberships").
		Columns("principal_id", "farm_id", "role").
		Values(principalID, farmID, role).
		Suffix("ON CONFLICT (principal_id, farm_id) DO UPDATE SET role = EXCLUDED.role").
		ExecContext(ctx)
	if err != nil {
		return WrapForeignKeyError(err, "failed to upsert membership")
	}

	return nil
}

func (s *Storage) DeleteMembership(ctx context.Context, principalID, farmID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMembership")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{"principal_id": principalID, "farm_id": farmID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListMembersByFarmID(ctx context.Context, farmID int64) ([]*types.FarmMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByFarmID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("m.principal_id", "p.email", "m.role").
		From("memberships m").
		Join("principals p ON m.principal_id = p.id").
		Where(sq.Eq{"m.farm_id": farmID}).
		Where(sq.Eq{"p.deleted_at": nil}).
		OrderBy("m.created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.FarmMember
	for rows.Next() {
		var m types.FarmMember
		if err := rows.Scan(&m.PrincipalID, &m.Email, &m.Role); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return members, nil
}

func (s *Storage) CreateSession(ctx context.Context, sess *types.Session) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSession")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	var created types.Session
	err = s.db.Statement(ctx).
		Insert("sessions").
		Columns("id", "principal_id", "token", "expires_at", "ip_address", "user_agent").
		Values(id.String(), sess.PrincipalID, sess.Token, sess.ExpiresAt, sess.IPAddress, sess.UserAgent).
		Suffix("RETURNING id, principal_id, token, expires_at, ip_address, user_agent, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.PrincipalID, &created.Token, &created.ExpiresAt, &created.IPAddress, &created.UserAgent, &created.CreatedAt)

	if err != nil {
		return nil, WrapDuplicateKeyError(err, "failed to insert session")
	}

	return &created, nil
}

func (s *Storage) DeleteSessionByToken(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteSessionByToken")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("sessions").
		Where(sq.Eq{"token": token}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
