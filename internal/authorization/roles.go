// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "slices"

// Farm-scoped roles, closed set. Ownership is not a membership role, it is
// an implicit unconditional grant resolved before any membership lookup.
const (
	RoleOwner        = "owner"
	RoleAgronomist   = "agronomist"
	RoleMillOperator = "mill_operator"
	RoleViewer       = "viewer"
)

// Subscription plan tiers.
const (
	TierFree       = "free"
	TierPremium    = "premium"
	TierEnterprise = "enterprise"
)

// Subscription statuses. Only an active subscription passes the tier gate.
const (
	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
	SubscriptionPastDue   = "past_due"
)

var roles = []string{RoleOwner, RoleAgronomist, RoleMillOperator, RoleViewer}

func ValidRole(role string) bool {
	return slices.Contains(roles, role)
}
