// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/oleamind/farm-service/internal/authorization"
	"github.com/oleamind/farm-service/internal/db"
	"github.com/oleamind/farm-service/internal/logging"
	"github.com/oleamind/farm-service/internal/monitoring"
	"github.com/oleamind/farm-service/internal/tracing"
	"github.com/oleamind/farm-service/pkg/authentication"
	"github.com/oleamind/farm-service/pkg/farm"
	"github.com/oleamind/farm-service/pkg/metrics"
	"github.com/oleamind/farm-service/pkg/principal"
	"github.com/oleamind/farm-service/pkg/status"
)

func NewRouter(
	farmAPI *farm.API,
	principalAPI *principal.API,
	authn *authentication.Middleware,
	authz *authorization.Middleware,
	dbClient db.DBClientInterface,
	corsAllowedOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsAllowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	router.Route("/api/v0", func(r chi.Router) {
		// Anonymous-tolerant surface, a failing credential degrades
		// instead of rejecting
		r.Group(func(r chi.Router) {
			r.Use(authn.AuthenticateOptional())
			r.Get("/auth/me", principalAPI.Me)
		})

		// Authenticated surface, mutations run under the lazy
		// transaction middleware
		r.Group(func(r chi.Router) {
			r.Use(authn.Authenticate())
			r.Use(db.TransactionMiddleware(dbClient, logger))

			r.Post("/auth/logout", principalAPI.Logout)
			r.Get("/farms", farmAPI.ListFarms)

			r.Route("/farms/{farmId}", func(r chi.Router) {
				r.With(authz.RequireFarmAccess()).Get("/", farmAPI.GetFarm)

				r.Route("/members", func(r chi.Router) {
					r.With(authz.RequireFarmRole(authorization.RoleOwner)).
						Get("/", farmAPI.ListMembers)
					r.With(
						authz.RequireFarmRole(authorization.RoleOwner),
						authz.RequireTier(authorization.TierPremium, authorization.TierEnterprise),
					).Post("/", farmAPI.AddMember)
					r.With(authz.RequireFarmRole(authorization.RoleOwner)).
						Delete("/{principalId}", farmAPI.RemoveMember)
				})
			})

			r.Route("/principals", func(r chi.Router) {
				r.Use(authz.RequireGlobalOwner(authorization.RoleOwner))
				r.Get("/", principalAPI.ListPrincipals)
				r.Post("/{id}/activate", principalAPI.Activate)
				r.Post("/{id}/deactivate", principalAPI.Deactivate)
			})
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
