// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Principal is an authenticated account. Memberships and OwnedFarmIDs are
// loaded alongside the record by the storage layer.
type Principal struct {
	ID        int64      `db:"id"`
	Email     string     `db:"email"`
	FirstName string     `db:"first_name"`
	LastName  string     `db:"last_name"`
	Active    bool       `db:"active"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`

	Memberships  []*Membership `db:"-"`
	OwnedFarmIDs []int64       `db:"-"`
}

// Farm is the unit of data isolation and subscription billing.
type Farm struct {
	ID                 int64     `db:"id"`
	Name               string    `db:"name"`
	Address            string    `db:"address"`
	OwnerID            int64     `db:"owner_id"`
	Tier               string    `db:"tier"`
	SubscriptionStatus string    `db:"subscription_status"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// Membership associates a principal with a farm under a farm-scoped role.
// Primary key is the (principal_id, farm_id) pair.
type Membership struct {
	PrincipalID int64     `db:"principal_id"`
	FarmID      int64     `db:"farm_id"`
	Role        string    `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
}

// Session is revocation bookkeeping for an issued credential. It is never
// consulted on the authorization hot path.
type Session struct {
	ID          string    `db:"id"`
	PrincipalID int64     `db:"principal_id"`
	Token       string    `db:"token"`
	ExpiresAt   time.Time `db:"expires_at"`
	IPAddress   string    `db:"ip_address"`
	UserAgent   string    `db:"user_agent"`
	CreatedAt   time.Time `db:"created_at"`
}

// FarmMember is a read-model row for member listings.
type FarmMember struct {
	PrincipalID int64
	Email       string
	Role        string
}

// LegacyProfile is the deprecated singular role/farm/tier projection kept for
// clients predating farm-scoped roles. Computed on read, never persisted:
// first owned farm wins, else first membership.
type LegacyProfile struct {
	Role   string `json:"role,omitempty"`
	FarmID *int64 `json:"farmId,omitempty"`
	Tier   string `json:"tier,omitempty"`
}
