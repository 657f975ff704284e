// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package authentication

// Rejection is an expected authorization pipeline outcome carrying a stable
// machine-distinguishable reason code. Rejections are routine results of
// untrusted input, not operational errors.
type Rejection struct {
	Reason  string
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

var (
	ErrMissingCredential   = &Rejection{Reason: "missing_credential", Message: "authorization credential required"}
	ErrMalformedCredential = &Rejection{Reason: "malformed_credential", Message: "invalid credential"}
	ErrExpiredCredential   = &Rejection{Reason: "expired_credential", Message: "credential expired"}
	ErrPrincipalNotFound   = &Rejection{Reason: "principal_not_found", Message: "principal not found"}
	ErrPrincipalInactive   = &Rejection{Reason: "principal_inactive", Message: "principal account is deactivated"}
)
