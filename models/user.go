package models

import "time"

// User represents an account stored in the "users" table.
//
// The repository never selects the password hash, so Password is populated
// only when a caller sets it explicitly. It is excluded from JSON in any case.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique, lower-cased email address of the user.
	Email string `json:"email"`

	// Password is the stored password hash. Internal-only.
	Password string `json:"-"`

	// Role is the access role of the user.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// View returns the public projection of the user.
func (u User) View() UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// DeletedView returns the projection returned after a deletion.
// Timestamps are not part of it.
func (u User) DeletedView() DeletedUserView {
	return DeletedUserView{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// UserView is the subset of user attributes returned to callers.
type UserView struct {
	ID        int64     `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Email     string    `json:"email" yaml:"email"`
	Role      Role      `json:"role" yaml:"role"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// DeletedUserView is the projection of a user that has just been deleted.
type DeletedUserView struct {
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Role  Role   `json:"role" yaml:"role"`
}

// UserUpdate is a partial update of a user's mutable fields.
// Only non-nil fields are written.
type UserUpdate struct {
	// Name is the new display name. If nil, the field will not be updated.
	Name *string `json:"name,omitempty" validate:"omitnil,min=2,max=255"`

	// Email is the new email address. If nil, the field will not be updated.
	Email *string `json:"email,omitempty" validate:"omitnil,email,max=255"`

	// Role is the new access role. If nil, the field will not be updated.
	Role *string `json:"role,omitempty" validate:"omitnil,oneof=user admin"`
}

// Fields returns the names of the fields present in the update,
// in the order they are declared in [UpdatableFields].
func (u UserUpdate) Fields() []string {
	fields := make([]string, 0, len(UpdatableFields))
	for _, f := range UpdatableFields {
		if u.Has(f) {
			fields = append(fields, f)
		}
	}
	return fields
}

// Has reports whether the named field is present in the update.
func (u UserUpdate) Has(field string) bool {
	switch field {
	case FieldName:
		return u.Name != nil
	case FieldEmail:
		return u.Email != nil
	case FieldRole:
		return u.Role != nil
	default:
		return false
	}
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Role == nil
}
