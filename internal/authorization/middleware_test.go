// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/oleamind/farm-service/internal/logging"
	"github.com/oleamind/farm-service/internal/types"
	"github.com/oleamind/farm-service/pkg/authentication"
)

func authenticatedRequest(r *http.Request, principalID int64) *http.Request {
	p := &types.Principal{ID: principalID, Active: true}
	return r.WithContext(authentication.WithPrincipal(r.Context(), p))
}

func decodeRejection(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode rejection body: %v", err)
	}
	return body
}

func TestMiddleware_RequireFarmRole(t *testing.T) {
	farm := &types.Farm{ID: 1, OwnerID: 42, Tier: TierPremium, SubscriptionStatus: SubscriptionActive}

	tests := []struct {
		name               string
		setupRequest       func(*http.Request) *http.Request
		allowedRoles       []string
		setupMocks         func(*MockAuthorizerInterface)
		expectedStatusCode int
		expectedReason     string
		expectedRole       string
	}{
		{
			name:               "Unauthenticated request is rejected",
			setupRequest:       func(r *http.Request) *http.Request { return r },
			allowedRoles:       []string{RoleOwner},
			setupMocks:         func(a *MockAuthorizerInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
			expectedReason:     "missing_credential",
		},
		{
			name: "Missing farm id is rejected",
			setupRequest: func(r *http.Request) *http.Request {
				return authenticatedRequest(r, 42)
			},
			allowedRoles:       []string{RoleOwner},
			setupMocks:         func(a *MockAuthorizerInterface) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedReason:     "farm_id_required",
		},
		{
			name: "Owner passes a role check for any role",
			setupRequest: func(r *http.Request) *http.Request {
				r = httptest.NewRequest(http.MethodGet, "/test?farmId=1", nil)
				return authenticatedRequest(r, 42)
			},
			allowedRoles: []string{RoleAgronomist},
			setupMocks: func(a *MockAuthorizerInterface) {
				a.EXPECT().ResolveAccess(gomock.Any(), int64(42), int64(1)).Return(&Access{Kind: AccessOwner, Role: RoleOwner, Farm: farm}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedRole:       RoleOwner,
		},
		{
			name: "Member with insufficient role is rejected",
			setupRequest: func(r *http.Request) *http.Request {
				r = httptest.NewRequest(http.MethodGet, "/test?farmId=1", nil)
				return authenticatedRequest(r, 42)
			},
			allowedRoles: []string{RoleOwner},
			setupMocks: func(a *MockAuthorizerInterface) {
				a.EXPECT().ResolveAccess(gomock.Any(), int64(42), int64(1)).Return(&Access{Kind: AccessMember, Role: RoleViewer, Farm: farm}, nil)
			},
			expectedStatusCode: http.StatusForbidden,
			expectedReason:     "insufficient_role",
		},
		{
			name: "Member with matching role passes",
			setupRequest: func(r *http.Request) *http.Request {
				r = httptest.NewRequest(http.MethodGet, "/test?farmId=1", nil)
				return authenticatedRequest(r, 42)
			},
			allowedRoles: []string{RoleViewer},
			setupMocks: func(a *MockAuthorizerInterface) {
				a.EXPECT().ResolveAccess(gomock.Any(), int64(42), int64(1)).Return(&Access{Kind: AccessMember, Role: RoleViewer, Farm: farm}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedRole:       RoleViewer,
		},
		{
			name: "No relation is rejected",
			setupRequest: func(r *http.Request) *http.Request {
				r = httptest.NewRequest(http.MethodGet, "/test?farmId=1", nil)
				return authenticatedRequest(r, 42)
			},
			allowedRoles: []string{RoleOwner},
			setupMocks: func(a *MockAuthorizerInterface) {
				a.EXPECT().ResolveAccess(gomock.Any(), int64(42), int64(1)).Return(&Access{Kind: AccessNone}, nil)
			},
			expectedStatusCode: http.StatusForbidden,
			expectedReason:     "no_farm_access",
		},
		{
			name: "Unknown farm is rejected as not found",
			setupRequest: func(r *http.Request) *http.Request {
				r = httptest.NewRequest(http.MethodGet, "/test?farmId=1", nil)
				return authenticatedRequest(r, 42)
			},
			allowedRoles: []string{RoleOwner},
			setupMocks: func(a *MockAuthorizerInterface) {
				a.EXPECT().ResolveAccess(gomock.Any(), int64(42), int64(1)).Return(nil, ErrFarmNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedReason:     "farm_not_found",
		},
		{
			name: "Wrapped unknown farm is still rejected as not found",
			setupRequest: func(r *http.Request) *http.Request {
				r = httptest.NewRequest(http.MethodGet, "/test?farmId=1", nil)
				return authenticatedRequest(r, 42)
			},
			allowedRoles: []string{RoleOwner},
			setupMocks: func(a *MockAuthorizerInterface) {
				a.EXPECT().ResolveAccess(gomock.Any(), int64(42), int64(1)).Return(nil, fmt.Errorf("resolving farm 1: %w", ErrFarmNotFound))
			},
			expectedStatusCode: http.StatusNotFound,
			expectedReason:     "farm_not_found",
		},
		{
			name: "Storage failure is rejected as internal",
			setupRequest: func(r *http.Request) *http.Request {
				r = httptest.NewRequest(http.MethodGet, "/test?farmId=1", nil)
				return authenticatedRequest(r, 42)
			},
			allowedRoles: []string{RoleOwner},
			setupMocks: func(a *MockAuthorizerInterface) {
				a.EXPECT().ResolveAccess(gomock.Any(), int64(42), int64(1)).Return(nil, fmt.Errorf("connection refused"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedReason:     "storage_failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockAuthorizer := NewMockAuthorizerInterface(ctrl)
			mockStorage := NewMockStorageInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Middleware.RequireFarmRole").DoAndReturn(
				func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				})
			mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
			mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security()).AnyTimes()

			tt.setupMocks(mockAuthorizer)

			middleware := NewMiddleware(mockAuthorizer, mockStorage, mockTracer, mockMonitor, mockLogger)

			var gotRole string
			var gotFarm *types.Farm
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotRole, _ = RoleFromContext(r.Context())
				gotFarm, _ = FarmFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := tt.setupRequest(httptest.NewRequest(http.MethodGet, "/test", nil))
			rr := httptest.NewRecorder()

			middleware.RequireFarmRole(tt.allowedRoles...)(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectedReason != "" {
				body := decodeRejection(t, rr)
				if body["reason"] != tt.expectedReason {
					t.Errorf("expected reason %q, got %v", tt.expectedReason, body["reason"])
				}
				return
			}

			if gotRole != tt.expectedRole {
				t.Errorf("expected role %q in context, got %q", tt.expectedRole, gotRole)
			}
			if gotFarm == nil || gotFarm.ID != farm.ID {
				t.Errorf("expected farm %d in context, got %+v", farm.ID, gotFarm)
			}
		})
	}
}

func TestMiddleware_RequireTier(t *testing.T) {
	tests := []struct {
		name               string
		farm               *types.Farm
		requiredTiers      []string
		setupMocks         func(*MockAuthorizerInterface, *types.Farm)
		expectedStatusCode int
		expectedReason     string
		expectedTier       string
	}{
		{
			name:          "Active premium farm passes",
			farm:          &types.Farm{ID: 1, Tier: TierPremium, SubscriptionStatus: SubscriptionActive},
			requiredTiers: []string{TierPremium, TierEnterprise},
			setupMocks: func(a *MockAuthorizerInterface, farm *types.Farm) {
				a.EXPECT().ResolveTier(gomock.Any(), farm, []string{TierPremium, TierEnterprise}).Return(TierPremium, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedTier:       TierPremium,
		},
		{
			name:          "Blocked subscription yields payment required",
			farm:          &types.Farm{ID: 1, Tier: TierEnterprise, SubscriptionStatus: SubscriptionPastDue},
			requiredTiers: []string{TierPremium, TierEnterprise},
			setupMocks: func(a *MockAuthorizerInterface, farm *types.Farm) {
				a.EXPECT().ResolveTier(gomock.Any(), farm, []string{TierPremium, TierEnterprise}).Return("", ErrSubscriptionRequired)
			},
			expectedStatusCode: http.StatusPaymentRequired,
			expectedReason:     "subscription_required",
		},
		{
			name:          "Insufficient tier yields forbidden",
			farm:          &types.Farm{ID: 1, Tier: TierFree, SubscriptionStatus: SubscriptionActive},
			requiredTiers: []string{TierPremium},
			setupMocks: func(a *MockAuthorizerInterface, farm *types.Farm) {
				a.EXPECT().ResolveTier(gomock.Any(), farm, []string{TierPremium}).Return("", ErrTierInsufficient)
			},
			expectedStatusCode: http.StatusForbidden,
			expectedReason:     "tier_insufficient",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockAuthorizer := NewMockAuthorizerInterface(ctrl)
			mockStorage := NewMockStorageInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Middleware.RequireTier").DoAndReturn(
				func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				})
			mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

			tt.setupMocks(mockAuthorizer, tt.farm)

			middleware := NewMiddleware(mockAuthorizer, mockStorage, mockTracer, mockMonitor, mockLogger)

			var gotTier string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotTier, _ = TierFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/test", nil)
			ctx := WithFarmID(req.Context(), tt.farm.ID)
			ctx = WithFarm(ctx, tt.farm)
			req = req.WithContext(ctx)
			rr := httptest.NewRecorder()

			middleware.RequireTier(tt.requiredTiers...)(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectedReason != "" {
				body := decodeRejection(t, rr)
				if body["reason"] != tt.expectedReason {
					t.Errorf("expected reason %q, got %v", tt.expectedReason, body["reason"])
				}
				// Tier rejections carry the current tier and the required set
				if body["tier"] != tt.farm.Tier {
					t.Errorf("expected tier %q in body, got %v", tt.farm.Tier, body["tier"])
				}
				if _, ok := body["required_tiers"]; !ok {
					t.Error("expected required_tiers in body")
				}
				return
			}

			if gotTier != tt.expectedTier {
				t.Errorf("expected tier %q in context, got %q", tt.expectedTier, gotTier)
			}
		})
	}
}

func TestMiddleware_RequireTierFetchesFarm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	farm := &types.Farm{ID: 1, Tier: TierPremium, SubscriptionStatus: SubscriptionActive}

	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockAuthorizer := NewMockAuthorizerInterface(ctrl)
	mockStorage := NewMockStorageInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "authorization.Middleware.RequireTier").DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		})

	// No farm in context, the middleware loads it itself
	mockStorage.EXPECT().GetFarmByID(gomock.Any(), int64(1)).Return(farm, nil)
	mockAuthorizer.EXPECT().ResolveTier(gomock.Any(), farm, []string{TierPremium}).Return(TierPremium, nil)

	middleware := NewMiddleware(mockAuthorizer, mockStorage, mockTracer, mockMonitor, mockLogger)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/test?farmId=1", nil)
	rr := httptest.NewRecorder()

	middleware.RequireTier(TierPremium)(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestMiddleware_RequireGlobalOwner(t *testing.T) {
	tests := []struct {
		name               string
		allowedRoles       []string
		setupMocks         func(*MockAuthorizerInterface)
		expectedStatusCode int
		expectedReason     string
	}{
		{
			name:         "Owner of a farm with owner in the allowed set",
			allowedRoles: []string{RoleOwner},
			setupMocks: func(a *MockAuthorizerInterface) {
				a.EXPECT().OwnsAnyFarm(gomock.Any(), int64(42)).Return(true, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:         "Principal owning nothing is rejected",
			allowedRoles: []string{RoleOwner},
			setupMocks: func(a *MockAuthorizerInterface) {
				a.EXPECT().OwnsAnyFarm(gomock.Any(), int64(42)).Return(false, nil)
			},
			expectedStatusCode: http.StatusForbidden,
			expectedReason:     "insufficient_role",
		},
		{
			name:         "Allowed set without owner never consults ownership",
			allowedRoles: []string{RoleViewer},
			setupMocks: func(a *MockAuthorizerInterface) {
				// OwnsAnyFarm must not be called
			},
			expectedStatusCode: http.StatusForbidden,
			expectedReason:     "insufficient_role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockAuthorizer := NewMockAuthorizerInterface(ctrl)
			mockStorage := NewMockStorageInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Middleware.RequireGlobalOwner").DoAndReturn(
				func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				})
			mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security()).AnyTimes()

			tt.setupMocks(mockAuthorizer)

			middleware := NewMiddleware(mockAuthorizer, mockStorage, mockTracer, mockMonitor, mockLogger)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := authenticatedRequest(httptest.NewRequest(http.MethodGet, "/test", nil), 42)
			rr := httptest.NewRecorder()

			middleware.RequireGlobalOwner(tt.allowedRoles...)(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectedReason != "" {
				body := decodeRejection(t, rr)
				if body["reason"] != tt.expectedReason {
					t.Errorf("expected reason %q, got %v", tt.expectedReason, body["reason"])
				}
			}
		})
	}
}
