// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package principal

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/oleamind/farm-service/internal/authorization"
	"github.com/oleamind/farm-service/internal/storage"
	"github.com/oleamind/farm-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package principal -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package principal -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package principal -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package principal -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

func TestService_LegacyProfile(t *testing.T) {
	ownedFarm := &types.Farm{ID: 3, OwnerID: 42, Tier: authorization.TierPremium}
	memberFarm := &types.Farm{ID: 5, OwnerID: 7, Tier: authorization.TierFree}

	testCases := []struct {
		name           string
		principal      *types.Principal
		setupMocks     func(*MockStorageInterface)
		expectedRole   string
		expectedFarmID *int64
		expectedTier   string
	}{
		{
			name: "owned farm wins over memberships",
			principal: &types.Principal{
				ID:           42,
				OwnedFarmIDs: []int64{3},
				Memberships:  []*types.Membership{{PrincipalID: 42, FarmID: 5, Role: authorization.RoleViewer}},
			},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetFarmByID(gomock.Any(), int64(3)).Return(ownedFarm, nil)
			},
			expectedRole:   authorization.RoleOwner,
			expectedFarmID: &ownedFarm.ID,
			expectedTier:   authorization.TierPremium,
		},
		{
			name: "first membership when nothing owned",
			principal: &types.Principal{
				ID:          42,
				Memberships: []*types.Membership{{PrincipalID: 42, FarmID: 5, Role: authorization.RoleAgronomist}},
			},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetFarmByID(gomock.Any(), int64(5)).Return(memberFarm, nil)
			},
			expectedRole:   authorization.RoleAgronomist,
			expectedFarmID: &memberFarm.ID,
			expectedTier:   authorization.TierFree,
		},
		{
			name:       "no associations yields an empty projection",
			principal:  &types.Principal{ID: 42},
			setupMocks: func(mockStorage *MockStorageInterface) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "principal.Service.LegacyProfile").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			profile, err := s.LegacyProfile(context.Background(), tc.principal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if profile.Role != tc.expectedRole {
				t.Errorf("expected role %q, got %q", tc.expectedRole, profile.Role)
			}
			if profile.Tier != tc.expectedTier {
				t.Errorf("expected tier %q, got %q", tc.expectedTier, profile.Tier)
			}
			if tc.expectedFarmID == nil {
				if profile.FarmID != nil {
					t.Errorf("expected no farm id, got %d", *profile.FarmID)
				}
			} else if profile.FarmID == nil || *profile.FarmID != *tc.expectedFarmID {
				t.Errorf("expected farm id %d, got %v", *tc.expectedFarmID, profile.FarmID)
			}
		})
	}
}

func TestService_SetActive(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().SetPrincipalActive(gomock.Any(), int64(7), false).Return(nil)
			},
		},
		{
			name: "unknown principal",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().SetPrincipalActive(gomock.Any(), int64(7), false).Return(storage.ErrNotFound)
			},
			expectedErr: ErrPrincipalNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "principal.Service.SetActive").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			err := s.SetActive(context.Background(), 7, false)

			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_RevokeSession(t *testing.T) {
	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeleteSessionByToken(gomock.Any(), "token").Return(nil)
			},
		},
		{
			name: "missing session row is not an error",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeleteSessionByToken(gomock.Any(), "token").Return(storage.ErrNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "principal.Service.RevokeSession").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			if err := s.RevokeSession(context.Background(), "token"); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
