// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	// ErrUnauthenticated is returned by [Verifier.Verify] for a missing or
	// invalid credential. The cause is deliberately not exposed.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidIssuerParams is returned by [NewTokenIssuer] when the sign
	// key, issuer or duration is missing.
	ErrInvalidIssuerParams = errors.New("invalid params for issuing tokens")

	// errInvalidSubject is reported inside the JWT validation chain when the
	// id claim is missing, non-positive or disagrees with "sub".
	errInvalidSubject = errors.New("invalid subject in token claims")

	// errInvalidRole is reported inside the JWT validation chain when the
	// role claim is not a known role.
	errInvalidRole = errors.New("invalid role in token claims")
)
