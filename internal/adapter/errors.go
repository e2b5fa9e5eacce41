package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)

// APIError is a non-2xx response of the server.
type APIError struct {
	StatusCode int

	// Message is the "error" field of the response body, or the status text
	// when the body is not an error response.
	Message string
	Details []models.FieldIssue

	kind error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the sentinel matching the status code, or nil.
func (e *APIError) Unwrap() error {
	return e.kind
}
