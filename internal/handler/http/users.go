// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/flate"
	"compress/gzip"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-keeper/internal/app"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

// maxBodySize limits the update body after decompression. An update carries
// three short strings.
const maxBodySize = 1 << 20

// Messages of the "body" field errors raised while reading the request.
const (
	msgBodyTooLarge   = "request body is too large"
	msgBodyNotGzip    = "request body is not valid gzip"
	msgBodyUnreadable = "request body could not be read"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	views := make([]models.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, user.View())
	}

	utils.WriteJSON(w, models.UsersResponse{
		Message: app.MsgUsersRetrieved,
		Users:   views,
		Count:   len(views),
	}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Message: app.MsgUserRetrieved, User: user.View()}, http.StatusOK)
}

// updateUser passes the raw id, body and credential to the service, which
// validates them before checking the credential.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		log.Debug().Err(err).Msg("error reading request body")
		writeError(w, r, readBodyError(err))
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), models.UpdateUserRequest{
		ID:    chi.URLParam(r, "id"),
		Body:  body,
		Token: h.credential(r),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Message: app.MsgUserUpdated, User: user.View()}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.DeleteUser(r.Context(), models.DeleteUserRequest{
		ID:    chi.URLParam(r, "id"),
		Token: h.credential(r),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeletedUserResponse{Message: app.MsgUserDeleted, User: user.DeletedView()}, http.StatusOK)
}

// credential returns the raw token of r, or "" when there is none.
func (h *Handler) credential(r *http.Request) string {
	token, err := tokenFromRequest(r)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("no usable credential")
		return ""
	}
	return token
}

// bodyError is a validation failure of the request body as a whole.
func bodyError(message string) error {
	return &validators.ValidationError{Fields: validators.FieldErrors{
		{Field: validators.FieldBody, Message: message},
	}}
}

// readBodyError maps a failure while reading the request body to a "body"
// validation error.
func readBodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	var corruptErr flate.CorruptInputError

	switch {
	case errors.As(err, &maxBytesErr):
		return bodyError(msgBodyTooLarge)
	case errors.Is(err, gzip.ErrChecksum), errors.Is(err, gzip.ErrHeader), errors.As(err, &corruptErr):
		return bodyError(msgBodyNotGzip)
	default:
		return bodyError(msgBodyUnreadable)
	}
}
