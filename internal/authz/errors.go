package authz

import "errors"

var (
	// ErrForbidden is returned when the caller has no permission on the
	// target resource.
	ErrForbidden = errors.New("forbidden")

	// ErrRoleChangeForbidden is returned when the caller may act on the
	// target resource but only an admin may change the requested field.
	ErrRoleChangeForbidden = errors.New("only admin can update role")
)
