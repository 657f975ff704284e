// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oleamind/farm-service/internal/logging"
	"github.com/oleamind/farm-service/internal/monitoring"
	"github.com/oleamind/farm-service/internal/tracing"
)

// Config carries the process-wide credential verification settings, injected
// at startup so tests can run with distinct secrets per case.
type Config struct {
	Secret []byte
	// Now overrides the clock, nil means time.Now
	Now func() time.Time
}

type CredentialValidator struct {
	secret []byte
	now    func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ CredentialValidatorInterface = (*CredentialValidator)(nil)

// ValidateCredential verifies the signature and claims of a raw credential.
// Only HS256 is accepted, any other signing algorithm is rejected as
// malformed so an attacker cannot downgrade verification.
func (v *CredentialValidator) ValidateCredential(ctx context.Context, rawCredential string) (int64, time.Time, error) {
	_, span := v.tracer.Start(ctx, "authentication.CredentialValidator.ValidateCredential")
	defer span.End()

	if rawCredential == "" {
		return 0, time.Time{}, ErrMissingCredential
	}

	claims := new(jwt.RegisteredClaims)
	token, err := jwt.ParseWithClaims(
		rawCredential,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, errors.New("unexpected signing method")
			}
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, time.Time{}, ErrExpiredCredential
		}
		v.logger.Debugf("credential parse failed: %v", err)
		return 0, time.Time{}, ErrMalformedCredential
	}
	if !token.Valid {
		return 0, time.Time{}, ErrMalformedCredential
	}

	expiry := claims.ExpiresAt.Time
	// The library enforced expiry above, re-checked here explicitly
	if !expiry.After(v.now()) {
		return 0, time.Time{}, ErrExpiredCredential
	}

	principalID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || principalID <= 0 {
		return 0, time.Time{}, ErrMalformedCredential
	}

	return principalID, expiry, nil
}

// IssueCredential signs a credential for the given principal. Used by the
// login collaborator and the dev token command, never by the request pipeline.
func (v *CredentialValidator) IssueCredential(principalID int64, lifetime time.Duration) (string, time.Time, error) {
	now := v.now()
	expiry := now.Add(lifetime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(principalID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiry),
	})

	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiry, nil
}

func NewCredentialValidator(c Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *CredentialValidator {
	v := new(CredentialValidator)

	v.secret = c.Secret
	v.now = c.Now
	if v.now == nil {
		v.now = time.Now
	}

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
