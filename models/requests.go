package models

// UpdateUserRequest carries the raw, not yet validated inputs of an update.
// The service validates every field before acting on it.
type UpdateUserRequest struct {
	// ID is the raw "id" path parameter.
	ID string

	// Body is the raw JSON request body.
	Body []byte

	// Token is the bearer credential. Empty when the caller sent none.
	Token string
}

// DeleteUserRequest carries the raw inputs of a delete.
type DeleteUserRequest struct {
	// ID is the raw "id" path parameter.
	ID string

	// Token is the bearer credential. Empty when the caller sent none.
	Token string
}
