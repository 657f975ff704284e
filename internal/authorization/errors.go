// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/oleamind/farm-service/pkg/authentication"
)

var (
	ErrFarmIDRequired       = &authentication.Rejection{Reason: "farm_id_required", Message: "a valid farm id is required"}
	ErrFarmNotFound         = &authentication.Rejection{Reason: "farm_not_found", Message: "farm not found"}
	ErrNoFarmAccess         = &authentication.Rejection{Reason: "no_farm_access", Message: "no access to this farm"}
	ErrInsufficientRole     = &authentication.Rejection{Reason: "insufficient_role", Message: "insufficient role for this operation"}
	ErrSubscriptionRequired = &authentication.Rejection{Reason: "subscription_required", Message: "an active subscription is required"}
	ErrTierInsufficient     = &authentication.Rejection{Reason: "tier_insufficient", Message: "subscription tier does not allow this operation"}
)
