// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package authz decides whether an authenticated caller may mutate a user
// resource.
//
// The decision is a pure function of the caller's claim, the target id and
// the set of fields being changed. Rules are evaluated in a fixed order:
// authentication, then ownership, then field-level restrictions. A caller
// with no access to the resource is therefore never told anything about the
// field-level policy.
package authz

import (
	"github.com/MKhiriev/go-user-keeper/internal/auth"
	"github.com/MKhiriev/go-user-keeper/models"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Allow permits the mutation.
	Allow Decision = iota

	// DenyUnauthenticated is returned when no verified claim is available.
	DenyUnauthenticated

	// DenyForbidden is returned when the caller is neither the owner of the
	// resource nor an admin.
	DenyForbidden

	// DenyRoleChangeForbidden is returned when the caller may act on the
	// resource but attempts to change a field their role may not change.
	DenyRoleChangeForbidden
)

// String implements [fmt.Stringer].
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "deny_unauthenticated"
	case DenyForbidden:
		return "deny_forbidden"
	case DenyRoleChangeForbidden:
		return "deny_role_change_forbidden"
	default:
		return "unknown"
	}
}

// Err returns the sentinel error matching the decision, or nil for [Allow].
func (d Decision) Err() error {
	switch d {
	case Allow:
		return nil
	case DenyUnauthenticated:
		return auth.ErrUnauthenticated
	case DenyForbidden:
		return ErrForbidden
	case DenyRoleChangeForbidden:
		return ErrRoleChangeForbidden
	default:
		return ErrForbidden
	}
}

// Decide evaluates the authorization rules for a mutation of targetID.
// For deletes, update is the zero [models.UserUpdate], so the decision
// reduces to self-or-admin.
//
// Rules, in order:
//  1. no claim -> DenyUnauthenticated
//  2. neither self nor admin -> DenyForbidden
//  3. a present field outside models.MutableFields[role] -> DenyRoleChangeForbidden
//  4. otherwise -> Allow
func Decide(claim *auth.Claim, targetID int64, update models.UserUpdate) Decision {
	if claim == nil {
		return DenyUnauthenticated
	}

	isSelf := claim.SubjectID() == targetID
	isAdmin := claim.IsAdmin()

	if !isSelf && !isAdmin {
		return DenyForbidden
	}

	for _, field := range update.Fields() {
		if !claim.Role().CanMutate(field) {
			return DenyRoleChangeForbidden
		}
	}

	return Allow
}
