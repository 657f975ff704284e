// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"strconv"
	"time"
)

type NoopValidator struct{}

// NewNoopValidator returns a validator that treats the raw credential as the
// principal ID, for development only.
func NewNoopValidator() *NoopValidator {
	return &NoopValidator{}
}

func (n *NoopValidator) ValidateCredential(ctx context.Context, rawCredential string) (int64, time.Time, error) {
	if rawCredential == "" {
		return 0, time.Time{}, ErrMissingCredential
	}

	id, err := strconv.ParseInt(rawCredential, 10, 64)
	if err != nil || id <= 0 {
		return 0, time.Time{}, ErrMalformedCredential
	}

	return id, time.Now().Add(time.Hour), nil
}
