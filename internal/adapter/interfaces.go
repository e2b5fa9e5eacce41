// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the go-user-keeper HTTP API.
//
// The primary abstraction is [UserAPI]. Responses other than 2xx are mapped
// to an [*APIError] that wraps one of the sentinel values in errors.go, so
// callers can use [errors.Is] (e.g. [ErrForbidden] for 403, [ErrNotFound] for
// 404) and still read the server's message and validation details.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

// UserAPI is the client side of the user endpoints.
type UserAPI interface {
	// SetToken stores the credential sent with every mutating request.
	SetToken(token string)

	// Token returns the stored credential, or "" if none has been set.
	Token() string

	ListUsers(ctx context.Context) ([]models.UserView, error)
	GetUser(ctx context.Context, id int64) (models.UserView, error)

	// UpdateUser sends only the non-nil fields of update.
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.UserView, error)

	// DeleteUser returns the projection of the user as it was before the
	// deletion.
	DeleteUser(ctx context.Context, id int64) (models.DeletedUserView, error)

	Health(ctx context.Context) (models.HealthResponse, error)
}
