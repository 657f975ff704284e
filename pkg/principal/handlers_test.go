// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package principal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/oleamind/farm-service/internal/types"
	"github.com/oleamind/farm-service/pkg/authentication"
)

func requestWithIDParam(t *testing.T, id string) *http.Request {
	t.Helper()

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/principals/"+id+"/deactivate", nil)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestAPI_Me(t *testing.T) {
	t.Run("anonymous caller gets a marker body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockServiceInterface(ctrl)
		mockLogger := NewMockLoggerInterface(ctrl)

		api := NewAPI(mockService, mockLogger)

		req := httptest.NewRequest(http.MethodGet, "/api/v0/auth/me", nil)
		rr := httptest.NewRecorder()

		api.Me(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
		}

		var body map[string]interface{}
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["anonymous"] != true {
			t.Errorf("expected anonymous marker, got %v", body)
		}
	})

	t.Run("known caller gets the legacy projection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockServiceInterface(ctrl)
		mockLogger := NewMockLoggerInterface(ctrl)

		principal := &types.Principal{ID: 42, Email: "grower@example.com", Active: true}
		farmID := int64(3)
		mockService.EXPECT().LegacyProfile(gomock.Any(), principal).Return(&types.LegacyProfile{
			Role:   "owner",
			FarmID: &farmID,
			Tier:   "premium",
		}, nil)

		api := NewAPI(mockService, mockLogger)

		req := httptest.NewRequest(http.MethodGet, "/api/v0/auth/me", nil)
		req = req.WithContext(authentication.WithPrincipal(req.Context(), principal))
		rr := httptest.NewRecorder()

		api.Me(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
		}

		var body map[string]interface{}
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["email"] != "grower@example.com" {
			t.Errorf("expected email in body, got %v", body)
		}
		if body["role"] != "owner" || body["tier"] != "premium" {
			t.Errorf("expected legacy fields in body, got %v", body)
		}
		if body["farmId"] != float64(3) {
			t.Errorf("expected farmId 3 in body, got %v", body["farmId"])
		}
	})
}

func TestAPI_Logout(t *testing.T) {
	t.Run("deletes the session for the presented credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockServiceInterface(ctrl)
		mockLogger := NewMockLoggerInterface(ctrl)

		mockService.EXPECT().RevokeSession(gomock.Any(), "the-token").Return(nil)

		api := NewAPI(mockService, mockLogger)

		req := httptest.NewRequest(http.MethodPost, "/api/v0/auth/logout", nil)
		req = req.WithContext(authentication.WithCredential(req.Context(), "the-token"))
		rr := httptest.NewRecorder()

		api.Logout(rr, req)

		if rr.Code != http.StatusNoContent {
			t.Errorf("expected status %d, got %d", http.StatusNoContent, rr.Code)
		}
	})

	t.Run("rejects a request without a credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockServiceInterface(ctrl)
		mockLogger := NewMockLoggerInterface(ctrl)

		api := NewAPI(mockService, mockLogger)

		rr := httptest.NewRecorder()
		api.Logout(rr, httptest.NewRequest(http.MethodPost, "/api/v0/auth/logout", nil))

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
		}
	})
}

func TestAPI_SetActive(t *testing.T) {
	testCases := []struct {
		name               string
		principalID        string
		activate           bool
		setupMocks         func(*MockServiceInterface)
		expectedStatusCode int
	}{
		{
			name:        "deactivate success",
			principalID: "7",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().SetActive(gomock.Any(), int64(7), false).Return(nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:        "activate success",
			principalID: "7",
			activate:    true,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().SetActive(gomock.Any(), int64(7), true).Return(nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "invalid id",
			principalID:        "abc",
			setupMocks:         func(mockService *MockServiceInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "unknown principal",
			principalID: "7",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().SetActive(gomock.Any(), int64(7), false).Return(ErrPrincipalNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

			tc.setupMocks(mockService)

			api := NewAPI(mockService, mockLogger)

			req := requestWithIDParam(t, tc.principalID)
			rr := httptest.NewRecorder()

			if tc.activate {
				api.Activate(rr, req)
			} else {
				api.Deactivate(rr, req)
			}

			if rr.Code != tc.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tc.expectedStatusCode, rr.Code)
			}
		})
	}
}
