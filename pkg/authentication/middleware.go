// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/oleamind/farm-service/internal/logging"
	"github.com/oleamind/farm-service/internal/monitoring"
	"github.com/oleamind/farm-service/internal/storage"
	"github.com/oleamind/farm-service/internal/tracing"
)

type Middleware struct {
	validator CredentialValidatorInterface
	storage   StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate is the strict pipeline entry: a request without a valid
// credential bound to an active principal never reaches the handler.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			rawCredential := extractCredential(r)

			principalID, _, err := m.validator.ValidateCredential(ctx, rawCredential)
			if err != nil {
				m.logger.Debugf("credential validation failed: %v", err)
				m.rejectResponse(w, http.StatusUnauthorized, err)
				return
			}

			principal, err := m.storage.GetPrincipalByID(ctx, principalID)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					m.rejectResponse(w, http.StatusUnauthorized, ErrPrincipalNotFound)
					return
				}
				m.logger.Errorf("failed to load principal %d: %v", principalID, err)
				m.storageFailureResponse(w)
				return
			}

			if !principal.Active {
				m.logger.Security().AuthnFailure(strconv.FormatInt(principalID, 10), "principal inactive")
				m.rejectResponse(w, http.StatusForbidden, ErrPrincipalInactive)
				return
			}

			ctx = WithPrincipal(ctx, principal)
			ctx = WithCredential(ctx, rawCredential)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthenticateOptional is the weak pipeline entry for endpoints that render
// differently for known and unknown callers. A missing or failing credential
// degrades the request to anonymous instead of rejecting it. Never mount this
// on farm-scoped or mutating routes.
func (m *Middleware) AuthenticateOptional() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.AuthenticateOptional")
			defer span.End()

			rawCredential := extractCredential(r)
			if rawCredential == "" {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			principalID, _, err := m.validator.ValidateCredential(ctx, rawCredential)
			if err != nil {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			principal, err := m.storage.GetPrincipalByID(ctx, principalID)
			if err != nil || !principal.Active {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			ctx = WithPrincipal(ctx, principal)
			ctx = WithCredential(ctx, rawCredential)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractCredential pulls the raw credential from the request, first match
// wins: two-part bearer header, raw header value, then Authorization cookie.
func extractCredential(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return header
	}

	if cookie, err := r.Cookie("Authorization"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}

func (m *Middleware) rejectResponse(w http.ResponseWriter, status int, err error) {
	reason := "unauthenticated"
	message := err.Error()

	var rejection *Rejection
	if errors.As(err, &rejection) {
		reason = rejection.Reason
		message = rejection.Message
	}

	WriteRejection(w, m.logger, status, reason, message, nil)
}

func (m *Middleware) storageFailureResponse(w http.ResponseWriter) {
	WriteRejection(w, m.logger, http.StatusInternalServerError, "storage_failure", "unexpected storage failure", nil)
}

// WriteRejection encodes a reason-coded rejection body. The extra map is
// merged into the body for rejections that must surface additional facts,
// like the current tier on a tier rejection.
func WriteRejection(w http.ResponseWriter, logger logging.LoggerInterface, status int, reason, message string, extra map[string]interface{}) {
	body := map[string]interface{}{
		"status":  status,
		"reason":  reason,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Errorf("failed to encode rejection response: %v", err)
	}
}

func NewMiddleware(validator CredentialValidatorInterface, storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		validator: validator,
		storage:   storage,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
