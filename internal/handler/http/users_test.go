package http

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-keeper/internal/auth"
	"github.com/MKhiriev/go-user-keeper/internal/authz"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

var (
	createdAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	updatedAt = time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC)

	ann = models.User{ID: 5, Name: "Ann", Email: "ann@example.com", Password: "secret-hash", Role: models.RoleUser, CreatedAt: createdAt, UpdatedAt: updatedAt}
	bob = models.User{ID: 7, Name: "Bob", Email: "bob@example.com", Role: models.RoleAdmin, CreatedAt: createdAt, UpdatedAt: updatedAt}
)

// ─────────────────────────────────────────────
// GET /users
// ─────────────────────────────────────────────

func TestListUsers(t *testing.T) {
	h, users, _ := newMockedHandler(t)
	users.EXPECT().ListUsers(gomock.Any()).Return([]models.User{ann, bob}, nil)

	rec := serve(t, h.Init(), httptest.NewRequest(http.MethodGet, "/users", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body models.UsersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Successfully retrieved users", body.Message)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, []models.UserView{ann.View(), bob.View()}, body.Users)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestListUsers_Empty(t *testing.T) {
	h, users, _ := newMockedHandler(t)
	users.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)

	rec := serve(t, h.Init(), httptest.NewRequest(http.MethodGet, "/users", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Successfully retrieved users","users":[],"count":0}`, rec.Body.String())
}

func TestListUsers_StoreFailureIsHidden(t *testing.T) {
	h, users, _ := newMockedHandler(t)
	users.EXPECT().ListUsers(gomock.Any()).Return(nil, fmt.Errorf("error listing users: %w", store.ErrExecutingQuery))

	rec := serve(t, h.Init(), httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// GET /users/{id}
// ─────────────────────────────────────────────

func TestGetUser(t *testing.T) {
	h, users, _ := newMockedHandler(t)
	users.EXPECT().GetUser(gomock.Any(), "5").Return(ann, nil)

	rec := serve(t, h.Init(), httptest.NewRequest(http.MethodGet, "/users/5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message": "Successfully retrieved user",
		"user": {
			"id": 5,
			"name": "Ann",
			"email": "ann@example.com",
			"role": "user",
			"created_at": "2026-03-01T10:00:00Z",
			"updated_at": "2026-03-02T11:30:00Z"
		}
	}`, rec.Body.String())
}

func TestGetUser_Errors(t *testing.T) {
	tests := []struct {
		name       string
		rawID      string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found",
			rawID:      "99",
			err:        fmt.Errorf("error getting user: %w", store.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"User not found"}`,
		},
		{
			name:  "bad id",
			rawID: "abc",
			err: (validators.FieldErrors{
				{Field: "id", Message: "must be a number"},
			}).Err(),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Validation failed","details":[{"field":"id","message":"must be a number"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, users, _ := newMockedHandler(t)
			users.EXPECT().GetUser(gomock.Any(), tt.rawID).Return(models.User{}, tt.err)

			rec := serve(t, h.Init(), httptest.NewRequest(http.MethodGet, "/users/"+tt.rawID, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// PATCH /users/{id}
// ─────────────────────────────────────────────

func TestUpdateUser_PassesRawInputs(t *testing.T) {
	tests := []struct {
		name      string
		setCred   func(r *http.Request)
		wantToken string
	}{
		{
			name:      "cookie",
			setCred:   func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"}) },
			wantToken: "cookie-token",
		},
		{
			name:      "bearer header",
			setCred:   func(r *http.Request) { r.Header.Set("Authorization", "Bearer header-token") },
			wantToken: "header-token",
		},
		{
			name: "cookie wins over header",
			setCred: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})
				r.Header.Set("Authorization", "Bearer header-token")
			},
			wantToken: "cookie-token",
		},
		{
			name:      "no credential",
			setCred:   func(*http.Request) {},
			wantToken: "",
		},
		{
			name:      "malformed header",
			setCred:   func(r *http.Request) { r.Header.Set("Authorization", "Basic dXNlcjpwYXNz") },
			wantToken: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, users, _ := newMockedHandler(t)

			users.EXPECT().
				UpdateUser(gomock.Any(), models.UpdateUserRequest{ID: "5", Body: []byte(`{"name":"Ann"}`), Token: tt.wantToken}).
				Return(ann, nil)

			req := httptest.NewRequest(http.MethodPatch, "/users/5", strings.NewReader(`{"name":"Ann"}`))
			tt.setCred(req)

			rec := serve(t, h.Init(), req)

			require.Equal(t, http.StatusOK, rec.Code)

			var body models.UserResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "User updated", body.Message)
			assert.Equal(t, ann.View(), body.User)
		})
	}
}

func TestUpdateUser_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        (validators.FieldErrors{{Field: "email", Message: "must be a valid email"}}).Err(),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Validation failed","details":[{"field":"email","message":"must be a valid email"}]}`,
		},
		{
			name:       "unauthenticated",
			err:        auth.ErrUnauthenticated,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:       "forbidden",
			err:        authz.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Forbidden"}`,
		},
		{
			name:       "role change",
			err:        authz.ErrRoleChangeForbidden,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Only admin can update role"}`,
		},
		{
			name:       "not found",
			err:        fmt.Errorf("error updating user: %w", store.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"User not found"}`,
		},
		{
			name:       "email taken",
			err:        fmt.Errorf("error updating user: %w", store.ErrEmailAlreadyExists),
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":"Email already in use"}`,
		},
		{
			name:       "unexpected",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, users, _ := newMockedHandler(t)
			users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			req := httptest.NewRequest(http.MethodPatch, "/users/5", strings.NewReader(`{"name":"Ann"}`))
			rec := serve(t, h.Init(), req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestUpdateUser_UnreadableBody(t *testing.T) {
	oversized := `{"name":"` + strings.Repeat("a", maxBodySize) + `"}`

	badChecksum := gzipBytes(t, `{"name":"Ann"}`)
	badChecksum[len(badChecksum)-8] ^= 0xff // first byte of the CRC-32 trailer

	truncated := gzipBytes(t, `{"name":"`+strings.Repeat("Ann", 100)+`"}`)
	truncated = truncated[:len(truncated)/2]

	tests := []struct {
		name        string
		body        []byte
		gzipped     bool
		wantMessage string
	}{
		{name: "over the size limit", body: []byte(oversized), wantMessage: msgBodyTooLarge},
		{name: "over the size limit after decompression", body: gzipBytes(t, oversized), gzipped: true, wantMessage: msgBodyTooLarge},
		{name: "gzip checksum mismatch", body: badChecksum, gzipped: true, wantMessage: msgBodyNotGzip},
		{name: "gzip stream cut short", body: truncated, gzipped: true, wantMessage: msgBodyUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the service must not be reached: no expectations are set
			h, _, _ := newMockedHandler(t)

			req := httptest.NewRequest(http.MethodPatch, "/users/5", bytes.NewReader(tt.body))
			req.Header.Set("Authorization", "Bearer some-token")
			if tt.gzipped {
				req.Header.Set("Content-Encoding", "gzip")
			}

			rec := serve(t, h.Init(), req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, "Validation failed", body.Error)
			assert.Equal(t, []models.FieldIssue{{Field: validators.FieldBody, Message: tt.wantMessage}}, body.Details)
		})
	}
}

func TestReadBodyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "max bytes", err: &http.MaxBytesError{Limit: maxBodySize}, want: msgBodyTooLarge},
		{name: "wrapped max bytes", err: fmt.Errorf("read: %w", &http.MaxBytesError{Limit: 1}), want: msgBodyTooLarge},
		{name: "checksum", err: gzip.ErrChecksum, want: msgBodyNotGzip},
		{name: "corrupt deflate", err: flate.CorruptInputError(12), want: msgBodyNotGzip},
		{name: "other", err: errors.New("connection reset"), want: msgBodyUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var validationErr *validators.ValidationError
			require.ErrorAs(t, readBodyError(tt.err), &validationErr)
			assert.Equal(t, validators.FieldErrors{{Field: validators.FieldBody, Message: tt.want}}, validationErr.Fields)
		})
	}
}

// ─────────────────────────────────────────────
// DELETE /users/{id}
// ─────────────────────────────────────────────

func TestDeleteUser(t *testing.T) {
	h, users, _ := newMockedHandler(t)
	users.EXPECT().
		DeleteUser(gomock.Any(), models.DeleteUserRequest{ID: "7", Token: "tok"}).
		Return(bob, nil)

	req := httptest.NewRequest(http.MethodDelete, "/users/7", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "tok"})

	rec := serve(t, h.Init(), req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message": "User deleted",
		"user": {"id": 7, "name": "Bob", "email": "bob@example.com", "role": "admin"}
	}`, rec.Body.String())
}

func TestDeleteUser_NotFound(t *testing.T) {
	h, users, _ := newMockedHandler(t)
	users.EXPECT().DeleteUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

	rec := serve(t, h.Init(), httptest.NewRequest(http.MethodDelete, "/users/99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}
