// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/oleamind/farm-service/internal/storage"
	"github.com/oleamind/farm-service/internal/types"
	"github.com/oleamind/farm-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracer.go -source=../tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go

func TestAuthorizer_ResolveAccess(t *testing.T) {
	farm := &types.Farm{ID: 1, Name: "Kalamata Grove", OwnerID: 42, Tier: TierPremium, SubscriptionStatus: SubscriptionActive}

	tests := []struct {
		name         string
		setupMocks   func(*MockStorageInterface)
		expectedKind AccessKind
		expectedRole string
		expectedErr  error
	}{
		{
			name: "Owner wins without membership lookup",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetFarmByIDAndOwner(gomock.Any(), int64(1), int64(42)).Return(farm, nil)
			},
			expectedKind: AccessOwner,
			expectedRole: RoleOwner,
		},
		{
			name: "Member role comes from the membership row",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetFarmByIDAndOwner(gomock.Any(), int64(1), int64(42)).Return(nil, storage.ErrNotFound)
				s.EXPECT().GetMembership(gomock.Any(), int64(42), int64(1)).Return(&types.Membership{PrincipalID: 42, FarmID: 1, Role: RoleViewer}, nil)
				s.EXPECT().GetFarmByID(gomock.Any(), int64(1)).Return(farm, nil)
			},
			expectedKind: AccessMember,
			expectedRole: RoleViewer,
		},
		{
			name: "No relation resolves to no access",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetFarmByIDAndOwner(gomock.Any(), int64(1), int64(42)).Return(nil, storage.ErrNotFound)
				s.EXPECT().GetMembership(gomock.Any(), int64(42), int64(1)).Return(nil, storage.ErrNotFound)
			},
			expectedKind: AccessNone,
		},
		{
			name: "Membership pointing at a missing farm",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetFarmByIDAndOwner(gomock.Any(), int64(1), int64(42)).Return(nil, storage.ErrNotFound)
				s.EXPECT().GetMembership(gomock.Any(), int64(42), int64(1)).Return(&types.Membership{PrincipalID: 42, FarmID: 1, Role: RoleViewer}, nil)
				s.EXPECT().GetFarmByID(gomock.Any(), int64(1)).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrFarmNotFound,
		},
		{
			name: "Storage failure surfaces as an error",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetFarmByIDAndOwner(gomock.Any(), int64(1), int64(42)).Return(nil, fmt.Errorf("connection refused"))
			},
			expectedErr: errors.New("failed to resolve farm ownership"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockStorage := NewMockStorageInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.ResolveAccess").Return(ctx, trace.SpanFromContext(ctx))

			tt.setupMocks(mockStorage)

			authorizer := NewAuthorizer(mockStorage, mockTracer, mockMonitor, mockLogger)

			access, err := authorizer.ResolveAccess(ctx, 42, 1)

			if tt.expectedErr != nil {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}

				var rejection *authentication.Rejection
				if errors.As(tt.expectedErr, &rejection) && !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if access.Kind != tt.expectedKind {
				t.Errorf("expected access kind %v, got %v", tt.expectedKind, access.Kind)
			}
			if access.Role != tt.expectedRole {
				t.Errorf("expected role %q, got %q", tt.expectedRole, access.Role)
			}
		})
	}
}

func TestAuthorizer_ResolveTier(t *testing.T) {
	tests := []struct {
		name          string
		farm          *types.Farm
		requiredTiers []string
		expectedTier  string
		expectedErr   error
	}{
		{
			name:          "Active subscription with matching tier",
			farm:          &types.Farm{ID: 1, Tier: TierPremium, SubscriptionStatus: SubscriptionActive},
			requiredTiers: []string{TierPremium, TierEnterprise},
			expectedTier:  TierPremium,
		},
		{
			name:          "Past due subscription blocks regardless of tier",
			farm:          &types.Farm{ID: 1, Tier: TierEnterprise, SubscriptionStatus: SubscriptionPastDue},
			requiredTiers: []string{TierPremium, TierEnterprise},
			expectedErr:   ErrSubscriptionRequired,
		},
		{
			name:          "Cancelled subscription blocks",
			farm:          &types.Farm{ID: 1, Tier: TierPremium, SubscriptionStatus: SubscriptionCancelled},
			requiredTiers: []string{TierPremium},
			expectedErr:   ErrSubscriptionRequired,
		},
		{
			name:          "Active subscription below required tier",
			farm:          &types.Farm{ID: 1, Tier: TierFree, SubscriptionStatus: SubscriptionActive},
			requiredTiers: []string{TierPremium, TierEnterprise},
			expectedErr:   ErrTierInsufficient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockStorage := NewMockStorageInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.ResolveTier").Return(ctx, trace.SpanFromContext(ctx))

			authorizer := NewAuthorizer(mockStorage, mockTracer, mockMonitor, mockLogger)

			tier, err := authorizer.ResolveTier(ctx, tt.farm, tt.requiredTiers)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tier != tt.expectedTier {
				t.Errorf("expected tier %q, got %q", tt.expectedTier, tier)
			}
		})
	}
}

func TestAuthorizer_OwnsAnyFarm(t *testing.T) {
	tests := []struct {
		name     string
		count    int64
		expected bool
	}{
		{name: "Owns farms", count: 2, expected: true},
		{name: "Owns nothing", count: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockStorage := NewMockStorageInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.OwnsAnyFarm").Return(ctx, trace.SpanFromContext(ctx))
			mockStorage.EXPECT().CountFarmsByOwnerID(gomock.Any(), int64(42)).Return(tt.count, nil)

			authorizer := NewAuthorizer(mockStorage, mockTracer, mockMonitor, mockLogger)

			owns, err := authorizer.OwnsAnyFarm(ctx, 42)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if owns != tt.expected {
				t.Errorf("expected owns %v, got %v", tt.expected, owns)
			}
		})
	}
}

func TestAccess_Allows(t *testing.T) {
	tests := []struct {
		name         string
		access       *Access
		allowedRoles []string
		expected     bool
	}{
		{
			name:         "Owner passes any non-empty set",
			access:       &Access{Kind: AccessOwner, Role: RoleOwner},
			allowedRoles: []string{RoleAgronomist},
			expected:     true,
		},
		{
			name:         "Owner fails an empty set",
			access:       &Access{Kind: AccessOwner, Role: RoleOwner},
			allowedRoles: []string{},
			expected:     false,
		},
		{
			name:         "Member needs a literal role match",
			access:       &Access{Kind: AccessMember, Role: RoleViewer},
			allowedRoles: []string{RoleOwner, RoleAgronomist},
			expected:     false,
		},
		{
			name:         "Member with matching role",
			access:       &Access{Kind: AccessMember, Role: RoleMillOperator},
			allowedRoles: []string{RoleMillOperator},
			expected:     true,
		},
		{
			name:         "No access never passes",
			access:       &Access{Kind: AccessNone},
			allowedRoles: []string{RoleOwner, RoleAgronomist, RoleMillOperator, RoleViewer},
			expected:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.access.Allows(tt.allowedRoles); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
