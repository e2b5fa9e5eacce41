package auth

import "github.com/MKhiriev/go-user-keeper/models"

// Claim is the verified identity asserted by a credential.
// It lives for the duration of a single request.
type Claim struct {
	subjectID int64
	email     string
	role      models.Role
}

// SubjectID returns the id of the user the credential was issued to.
func (c *Claim) SubjectID() int64 {
	return c.subjectID
}

// Email returns the email embedded in the credential, if any.
func (c *Claim) Email() string {
	return c.email
}

// Role returns the role embedded in the credential.
func (c *Claim) Role() models.Role {
	return c.role
}

// IsAdmin reports whether the claim carries the privileged role.
func (c *Claim) IsAdmin() bool {
	return c.role == models.RoleAdmin
}
