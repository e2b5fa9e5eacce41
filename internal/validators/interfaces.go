// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators validates and normalizes raw request inputs before any
// business logic runs.
//
// Core concepts:
//   - UserValidator: checks the "id" path parameter and the update body of
//     the user resource against a closed schema.
//   - FieldErrors: the structured list of (field, message) pairs produced on
//     failure. Validators never panic and never return an untyped error past
//     this boundary.
//
// Validation is purely structural: types, shapes and lengths. Who may change
// which field is decided by the authz package.
package validators

import "github.com/MKhiriev/go-user-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// UserValidator validates the raw inputs of the user endpoints.
type UserValidator interface {
	// ValidateUserID parses the raw "id" path parameter into a positive
	// integer.
	ValidateUserID(raw string) (int64, FieldErrors)

	// ValidateUserUpdate decodes and validates a raw update body. On success
	// the returned update holds normalized values for the present keys only.
	ValidateUserUpdate(body []byte) (models.UserUpdate, FieldErrors)
}
