// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth verifies bearer credentials and turns them into identity
// claims.
//
// A [Claim] can only be produced by a [Verifier]: its fields are unexported
// and the package offers no exported constructor, so no other component can
// forge an identity. Verification is stateless; the claim is self-contained
// and never re-fetched from the user store.
package auth

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/verifier_mock.go -package=mock

// Verifier validates an opaque token and yields the identity it asserts.
type Verifier interface {
	// Verify checks the token signature and expiry and decodes the embedded
	// claim. Every failure, including an empty token, is reported as
	// [ErrUnauthenticated] so callers cannot tell why verification failed.
	Verify(ctx context.Context, token string) (*Claim, error)
}
