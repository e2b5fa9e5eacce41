// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned by tokenFromRequest when no usable credential can
// be found in the request. Handlers only log them: a missing credential is
// reported to the caller by the service layer, after input validation.
var (
	// ErrNoCredential is returned when the request carries neither a
	// "token" cookie nor an "Authorization" header.
	ErrNoCredential = errors.New("no `token` cookie or `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not follow the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the cookie or the header is present but
	// the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token")
)
