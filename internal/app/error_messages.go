// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-user-keeper HTTP handlers.
//
// All Msg* constants are human-readable strings written into the "message"
// or "error" field of HTTP response bodies. Keeping them in one place keeps
// the wording consistent throughout the API.
package app

// Messages of successful responses.
const (
	// MsgUsersRetrieved accompanies the user list.
	MsgUsersRetrieved = "Successfully retrieved users"

	// MsgUserRetrieved accompanies a single user.
	MsgUserRetrieved = "Successfully retrieved user"

	MsgUserUpdated = "User updated"
	MsgUserDeleted = "User deleted"

	// MsgHealthOK is the status reported by the health endpoint.
	MsgHealthOK = "OK"
)

// Messages of error responses.
const (
	// MsgValidationFailed is returned together with per-field details when
	// the id or the body of a request is malformed.
	MsgValidationFailed = "Validation failed"

	// MsgUnauthorized is returned for a missing, malformed or expired
	// credential. The cause is never disclosed.
	MsgUnauthorized = "Unauthorized"

	// MsgForbidden is returned when the caller may not act on the target
	// user at all.
	MsgForbidden = "Forbidden"

	// MsgRoleChangeForbidden is returned when the caller owns the target but
	// asked for a change only an admin may make.
	MsgRoleChangeForbidden = "Only admin can update role"

	MsgUserNotFound = "User not found"

	// MsgEmailAlreadyInUse is returned when another account already holds
	// the requested email address.
	MsgEmailAlreadyInUse = "Email already in use"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "Not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs. The details are only logged.
	MsgInternalServerError = "Internal server error"
)
