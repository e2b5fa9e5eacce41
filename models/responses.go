package models

import "time"

// UsersResponse is the body returned by the list endpoint.
type UsersResponse struct {
	Message string     `json:"message"`
	Users   []UserView `json:"users"`

	// Count is the number of entries in Users.
	Count int `json:"count"`
}

// UserResponse is the body returned by the get and update endpoints.
type UserResponse struct {
	Message string   `json:"message"`
	User    UserView `json:"user"`
}

// DeletedUserResponse is the body returned by the delete endpoint.
type DeletedUserResponse struct {
	Message string          `json:"message"`
	User    DeletedUserView `json:"user"`
}

// ErrorResponse is the body of every non-2xx response.
// Details is filled only for validation failures.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldIssue `json:"details,omitempty"`
}

// FieldIssue describes a single invalid input field.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// Uptime is the number of seconds since the server started.
	Uptime float64 `json:"uptime" yaml:"uptime"`

	Version string `json:"version" yaml:"version"`
}
