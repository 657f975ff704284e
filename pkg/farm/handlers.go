// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package farm

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/oleamind/farm-service/internal/authorization"
	"github.com/oleamind/farm-service/internal/logging"
	"github.com/oleamind/farm-service/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	logger logging.LoggerInterface
}

type farmResponse struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Address            string `json:"address"`
	OwnerID            int64  `json:"ownerId"`
	Tier               string `json:"tier"`
	SubscriptionStatus string `json:"subscriptionStatus"`
}

type memberResponse struct {
	PrincipalID int64  `json:"principalId"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

type addMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=owner agronomist mill_operator viewer"`
}

// ListFarms returns the farms the caller owns or belongs to.
func (a *API) ListFarms(w http.ResponseWriter, r *http.Request) {
	principalID, ok := authentication.PrincipalIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	farms, err := a.service.ListFarmsByPrincipalID(r.Context(), principalID)
	if err != nil {
		a.logger.Errorf("failed to list farms: %v", err)
		http.Error(w, "failed to list farms", http.StatusInternalServerError)
		return
	}

	out := make([]farmResponse, 0, len(farms))
	for _, f := range farms {
		out = append(out, farmResponse{
			ID:                 f.ID,
			Name:               f.Name,
			Address:            f.Address,
			OwnerID:            f.OwnerID,
			Tier:               f.Tier,
			SubscriptionStatus: f.SubscriptionStatus,
		})
	}

	a.writeJSON(w, http.StatusOK, out)
}

// GetFarm serves the farm record already resolved by the authorization
// pipeline, no re-resolution from raw request fields.
func (a *API) GetFarm(w http.ResponseWriter, r *http.Request) {
	farm, ok := authorization.FarmFromContext(r.Context())
	if !ok {
		http.Error(w, "farm not resolved", http.StatusInternalServerError)
		return
	}

	a.writeJSON(w, http.StatusOK, farmResponse{
		ID:                 farm.ID,
		Name:               farm.Name,
		Address:            farm.Address,
		OwnerID:            farm.OwnerID,
		Tier:               farm.Tier,
		SubscriptionStatus: farm.SubscriptionStatus,
	})
}

func (a *API) ListMembers(w http.ResponseWriter, r *http.Request) {
	farmID, ok := authorization.FarmIDFromContext(r.Context())
	if !ok {
		http.Error(w, "farm not resolved", http.StatusInternalServerError)
		return
	}

	members, err := a.service.ListMembers(r.Context(), farmID)
	if err != nil {
		a.logger.Errorf("failed to list members: %v", err)
		http.Error(w, "failed to list members", http.StatusInternalServerError)
		return
	}

	out := make([]memberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, memberResponse{PrincipalID: m.PrincipalID, Email: m.Email, Role: m.Role})
	}

	a.writeJSON(w, http.StatusOK, out)
}

func (a *API) AddMember(w http.ResponseWriter, r *http.Request) {
	farmID, ok := authorization.FarmIDFromContext(r.Context())
	if !ok {
		http.Error(w, "farm not resolved", http.StatusInternalServerError)
		return
	}

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	member, err := a.service.AddMember(r.Context(), farmID, req.Email, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, ErrPrincipalNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrOwnerMembership):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "failed to add member", http.StatusInternalServerError)
		}
		return
	}

	a.writeJSON(w, http.StatusCreated, memberResponse{
		PrincipalID: member.PrincipalID,
		Email:       member.Email,
		Role:        member.Role,
	})
}

func (a *API) RemoveMember(w http.ResponseWriter, r *http.Request) {
	farmID, ok := authorization.FarmIDFromContext(r.Context())
	if !ok {
		http.Error(w, "farm not resolved", http.StatusInternalServerError)
		return
	}

	principalID, err := strconv.ParseInt(chi.URLParam(r, "principalId"), 10, 64)
	if err != nil || principalID <= 0 {
		http.Error(w, "invalid principal id", http.StatusBadRequest)
		return
	}

	if err := a.service.RemoveMember(r.Context(), farmID, principalID); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed to remove member", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}
