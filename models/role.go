// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the access role carried by a user account and by its credential.
type Role string

const (
	// RoleUser is the default role assigned to every new account.
	RoleUser Role = "user"

	// RoleAdmin is the privileged role. It is exempt from the ownership
	// restriction and may change any mutable field, including the role.
	RoleAdmin Role = "admin"
)

// Names of the user fields that can be changed through an update.
const (
	FieldName  = "name"
	FieldEmail = "email"
	FieldRole  = "role"
)

// UpdatableFields is the closed set of field names an update body may carry.
// Any other key is rejected during validation.
var UpdatableFields = []string{FieldName, FieldEmail, FieldRole}

// MutableFields lists, per role, which fields a caller holding that role may
// change. The validator relies on [UpdatableFields] (the union of all entries)
// for structural checks, the authorization engine relies on this table for
// policy.
var MutableFields = map[Role][]string{
	RoleUser:  {FieldName, FieldEmail},
	RoleAdmin: {FieldName, FieldEmail, FieldRole},
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	_, ok := MutableFields[r]
	return ok
}

// CanMutate reports whether a caller with role r may change field.
func (r Role) CanMutate(field string) bool {
	for _, f := range MutableFields[r] {
		if f == field {
			return true
		}
	}
	return false
}

// String implements [fmt.Stringer].
func (r Role) String() string {
	return string(r)
}
