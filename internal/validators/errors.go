package validators

import (
	"strings"

	"github.com/MKhiriev/go-user-keeper/models"
)

// Field name used for failures that concern the request body as a whole.
const FieldBody = "body"

// FieldID is the name of the path parameter holding the user identifier.
const FieldID = "id"

// Messages attached to field errors.
const (
	msgRequired          = "is required"
	msgNotANumber        = "must be a number"
	msgNotAnInteger      = "must be an integer"
	msgNotPositive       = "must be a positive integer"
	msgBodyRequired      = "request body is required"
	msgBodyNotObject     = "request body must be a JSON object"
	msgNoFieldsToUpdate  = "at least one field must be provided for update"
	msgUnknownField      = "unknown field"
	msgNotAString        = "must be a string"
	msgInvalidEmail      = "must be a valid email"
	msgInvalidFieldValue = "is invalid"
)

// FieldErrors is the list of problems found while validating an input.
// A nil or empty FieldErrors means the input is valid.
type FieldErrors []models.FieldIssue

// add appends a (field, message) pair.
func (f *FieldErrors) add(field, message string) {
	*f = append(*f, models.FieldIssue{Field: field, Message: message})
}

// Err returns nil when f is empty and a *ValidationError otherwise.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// ValidationError is returned when request inputs fail validation.
// Callers match it with [errors.As] and read Fields for the details.
type ValidationError struct {
	Fields FieldErrors
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
