// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"

	"github.com/oleamind/farm-service/internal/types"
)

type CredentialValidatorInterface interface {
	// ValidateCredential verifies a raw credential string and returns the
	// embedded principal ID and expiry if it is authentic and unexpired
	ValidateCredential(ctx context.Context, rawCredential string) (int64, time.Time, error)
}

// StorageInterface defines the storage operations required by the
// authentication package. It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetPrincipalByID(ctx context.Context, id int64) (*types.Principal, error)
}
