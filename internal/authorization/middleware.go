// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/oleamind/farm-service/internal/logging"
	"github.com/oleamind/farm-service/internal/monitoring"
	"github.com/oleamind/farm-service/internal/storage"
	"github.com/oleamind/farm-service/internal/tracing"
	"github.com/oleamind/farm-service/internal/types"
	"github.com/oleamind/farm-service/pkg/authentication"
)

type Middleware struct {
	authorizer AuthorizerInterface
	storage    StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RequireFarmAccess admits owners and any member of the target farm, no
// specific role required. Attaches farm id, farm record and effective role.
func (m *Middleware) RequireFarmAccess() func(http.Handler) http.Handler {
	return m.requireAccess("authorization.Middleware.RequireFarmAccess", nil)
}

// RequireFarmRole admits owners unconditionally and members whose farm-scoped
// role is in the allowed set.
func (m *Middleware) RequireFarmRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return m.requireAccess("authorization.Middleware.RequireFarmRole", allowedRoles)
}

func (m *Middleware) requireAccess(spanName string, allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), spanName)
			defer span.End()
			r = r.WithContext(ctx)

			principal, ok := authentication.PrincipalFromContext(ctx)
			if !ok {
				m.reject(w, http.StatusUnauthorized, authentication.ErrMissingCredential, nil)
				return
			}

			farmID, err := FarmIDFromRequest(r)
			if err != nil {
				m.reject(w, http.StatusBadRequest, err, nil)
				return
			}

			access, err := m.authorizer.ResolveAccess(ctx, principal.ID, farmID)
			if err != nil {
				m.rejectResolveFailure(w, principal.ID, err)
				return
			}

			if access.Kind == AccessNone {
				m.logger.Security().AuthzFailure(strconv.FormatInt(principal.ID, 10), "farm_access")
				m.reject(w, http.StatusForbidden, ErrNoFarmAccess, nil)
				return
			}

			if allowedRoles != nil && !access.Allows(allowedRoles) {
				m.logger.Security().AuthzFailure(strconv.FormatInt(principal.ID, 10), "farm_role")
				m.reject(w, http.StatusForbidden, ErrInsufficientRole, nil)
				return
			}

			ctx = WithFarmID(ctx, farmID)
			ctx = WithFarm(ctx, access.Farm)
			ctx = WithRole(ctx, access.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireTier gates the request on the target farm's subscription. It runs
// independently of role resolution and never consults the principal.
func (m *Middleware) RequireTier(requiredTiers ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequireTier")
			defer span.End()
			r = r.WithContext(ctx)

			farm, ok := FarmFromContext(ctx)
			if !ok {
				farmID, err := FarmIDFromRequest(r)
				if err != nil {
					m.reject(w, http.StatusBadRequest, err, nil)
					return
				}

				farm, err = m.fetchFarm(ctx, farmID)
				if err != nil {
					m.rejectResolveFailure(w, 0, err)
					return
				}
				ctx = WithFarmID(ctx, farmID)
				ctx = WithFarm(ctx, farm)
			}

			tier, err := m.authorizer.ResolveTier(ctx, farm, requiredTiers)
			if err != nil {
				extra := map[string]interface{}{
					"tier":           farm.Tier,
					"required_tiers": requiredTiers,
				}
				if errors.Is(err, ErrSubscriptionRequired) {
					m.reject(w, http.StatusPaymentRequired, err, extra)
					return
				}
				if errors.Is(err, ErrTierInsufficient) {
					m.reject(w, http.StatusForbidden, err, extra)
					return
				}
				m.rejectResolveFailure(w, 0, err)
				return
			}

			ctx = WithTier(ctx, tier)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireGlobalOwner is the legacy compatibility check for account-wide
// administration, it passes when the principal owns at least one farm and the
// allowed set contains the owner role. Weaker than RequireFarmRole, never
// mount it on farm-scoped mutations.
func (m *Middleware) RequireGlobalOwner(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequireGlobalOwner")
			defer span.End()

			principal, ok := authentication.PrincipalFromContext(ctx)
			if !ok {
				m.reject(w, http.StatusUnauthorized, authentication.ErrMissingCredential, nil)
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if role == RoleOwner {
					allowed = true
					break
				}
			}

			if allowed {
				owns, err := m.authorizer.OwnsAnyFarm(ctx, principal.ID)
				if err != nil {
					m.rejectResolveFailure(w, principal.ID, err)
					return
				}
				allowed = owns
			}

			if !allowed {
				m.logger.Security().AuthzFailure(strconv.FormatInt(principal.ID, 10), "global_owner")
				m.reject(w, http.StatusForbidden, ErrInsufficientRole, nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) fetchFarm(ctx context.Context, farmID int64) (*types.Farm, error) {
	farm, err := m.storage.GetFarmByID(ctx, farmID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrFarmNotFound
		}
		return nil, err
	}
	return farm, nil
}

func (m *Middleware) reject(w http.ResponseWriter, status int, err error, extra map[string]interface{}) {
	reason := "forbidden"
	message := err.Error()

	var rejection *authentication.Rejection
	if errors.As(err, &rejection) {
		reason = rejection.Reason
		message = rejection.Message
	}

	authentication.WriteRejection(w, m.logger, status, reason, message, extra)
}

// rejectResolveFailure distinguishes expected rejections raised inside the
// resolvers from unexpected storage failures, only the latter are logged as
// operational errors.
func (m *Middleware) rejectResolveFailure(w http.ResponseWriter, principalID int64, err error) {
	var rejection *authentication.Rejection
	if errors.As(err, &rejection) {
		status := http.StatusForbidden
		if errors.Is(err, ErrFarmNotFound) {
			status = http.StatusNotFound
		}
		m.reject(w, status, rejection, nil)
		return
	}

	m.logger.Errorf("authorization resolution failed for principal %d: %v", principalID, err)
	authentication.WriteRejection(w, m.logger, http.StatusInternalServerError, "storage_failure", "unexpected storage failure", nil)
}

func NewMiddleware(authorizer AuthorizerInterface, storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		authorizer: authorizer,
		storage:    storage,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
