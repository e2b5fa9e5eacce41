package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/app"
	"github.com/MKhiriev/go-user-keeper/internal/auth"
	"github.com/MKhiriev/go-user-keeper/internal/authz"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

// errorResponse is the status and public message of an expected error.
type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	auth.ErrUnauthenticated: {http.StatusUnauthorized, app.MsgUnauthorized},

	authz.ErrForbidden:           {http.StatusForbidden, app.MsgForbidden},
	authz.ErrRoleChangeForbidden: {http.StatusForbidden, app.MsgRoleChangeForbidden},

	store.ErrUserNotFound:       {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrEmailAlreadyExists: {http.StatusConflict, app.MsgEmailAlreadyInUse},
}

// responseFromError maps err to its HTTP status and response body.
// Validation errors carry per-field details. Anything not listed in
// errorStatusMap is an unexpected failure and gets a generic body.
func responseFromError(err error) (int, models.ErrorResponse) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, models.ErrorResponse{
			Error:   app.MsgValidationFailed,
			Details: validationErr.Fields,
		}
	}

	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, models.ErrorResponse{Error: resp.message}
		}
	}

	return http.StatusInternalServerError, models.ErrorResponse{Error: app.MsgInternalServerError}
}

// writeError logs err and writes the matching error response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, body := responseFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}
