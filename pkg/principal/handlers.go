// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package principal

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/oleamind/farm-service/internal/logging"
	"github.com/oleamind/farm-service/internal/types"
	"github.com/oleamind/farm-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

type principalResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type meResponse struct {
	principalResponse
	// Deprecated singular fields, kept for clients predating
	// farm-scoped roles
	Role   string `json:"role,omitempty"`
	FarmID *int64 `json:"farmId,omitempty"`
	Tier   string `json:"tier,omitempty"`
}

// Me renders the caller's own profile. The route is mounted behind the
// optional authentication variant, an anonymous caller gets a marker body
// instead of a rejection.
func (a *API) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		a.writeJSON(w, http.StatusOK, map[string]interface{}{"anonymous": true})
		return
	}

	profile, err := a.service.LegacyProfile(r.Context(), principal)
	if err != nil {
		a.logger.Errorf("failed to compute profile for principal %d: %v", principal.ID, err)
		http.Error(w, "failed to load profile", http.StatusInternalServerError)
		return
	}

	a.writeJSON(w, http.StatusOK, meResponse{
		principalResponse: toPrincipalResponse(principal),
		Role:              profile.Role,
		FarmID:            profile.FarmID,
		Tier:              profile.Tier,
	})
}

// Logout deletes the session row for the presented credential. The credential
// itself stays valid until expiry, this is bookkeeping for revocation audits.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := authentication.CredentialFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := a.service.RevokeSession(r.Context(), token); err != nil {
		a.logger.Errorf("failed to revoke session: %v", err)
		http.Error(w, "failed to log out", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPrincipals returns the principals visible across the caller's owned
// farms. Mounted behind the account-wide owner check.
func (a *API) ListPrincipals(w http.ResponseWriter, r *http.Request) {
	principalID, ok := authentication.PrincipalIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	principals, err := a.service.ListPrincipalsVisibleToOwner(r.Context(), principalID)
	if err != nil {
		a.logger.Errorf("failed to list principals: %v", err)
		http.Error(w, "failed to list principals", http.StatusInternalServerError)
		return
	}

	out := make([]principalResponse, 0, len(principals))
	for _, p := range principals {
		out = append(out, toPrincipalResponse(p))
	}

	a.writeJSON(w, http.StatusOK, out)
}

func (a *API) Activate(w http.ResponseWriter, r *http.Request) {
	a.setActive(w, r, true)
}

func (a *API) Deactivate(w http.ResponseWriter, r *http.Request) {
	a.setActive(w, r, false)
}

func (a *API) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	principalID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || principalID <= 0 {
		http.Error(w, "invalid principal id", http.StatusBadRequest)
		return
	}

	if err := a.service.SetActive(r.Context(), principalID, active); err != nil {
		if errors.Is(err, ErrPrincipalNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		a.logger.Errorf("failed to update principal %d: %v", principalID, err)
		http.Error(w, "failed to update principal", http.StatusInternalServerError)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]interface{}{"id": principalID, "active": active})
}

func toPrincipalResponse(p *types.Principal) principalResponse {
	return principalResponse{
		ID:        p.ID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}
