// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-keeper/models"
)

func newTestAPI(t *testing.T, serverURL string) UserAPI {
	t.Helper()

	api, err := NewHTTPUserAPI(ClientConfig{Address: serverURL, Timeout: time.Second})
	require.NoError(t, err)
	return api
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func strPtr(s string) *string { return &s }

var annView = models.UserView{
	ID:        5,
	Name:      "Ann",
	Email:     "ann@example.com",
	Role:      models.RoleUser,
	CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	UpdatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
}

// ── NewHTTPUserAPI ──────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " http://localhost:8080/ ", want: "http://localhost:8080"},
		{raw: "https://users.example.com", want: "https://users.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPUserAPI_EmptyAddress(t *testing.T) {
	_, err := NewHTTPUserAPI(ClientConfig{})
	assert.Error(t, err)
}

func TestToken(t *testing.T) {
	api := newTestAPI(t, "localhost:1")
	assert.Empty(t, api.Token())

	api.SetToken("  abc \n")
	assert.Equal(t, "abc", api.Token())
}

// ── Reads ───────────────────────────────────────────────────────────────────

func TestListUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		writeJSON(w, http.StatusOK, models.UsersResponse{Message: "ok", Users: []models.UserView{annView}, Count: 1})
	}))
	defer srv.Close()

	got, err := newTestAPI(t, srv.URL).ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.UserView{annView}, got)
}

func TestGetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/5", r.URL.Path)
		_, err := r.Cookie(tokenCookieName)
		assert.ErrorIs(t, err, http.ErrNoCookie, "reads are sent without a credential")
		writeJSON(w, http.StatusOK, models.UserResponse{Message: "ok", User: annView})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	api.SetToken("tok")

	got, err := api.GetUser(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, annView, got)
}

func TestHealth(t *testing.T) {
	want := models.HealthResponse{Status: "OK", Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Uptime: 3, Version: "1.0.0"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		writeJSON(w, http.StatusOK, want)
	}))
	defer srv.Close()

	got, err := newTestAPI(t, srv.URL).Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── Mutations ───────────────────────────────────────────────────────────────

func TestUpdateUser_SendsCookieAndPresentFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/users/5", r.URL.Path)

		cookie, err := r.Cookie(tokenCookieName)
		if assert.NoError(t, err) {
			assert.Equal(t, "tok", cookie.Value)
		}

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Ann"}`, string(body))

		writeJSON(w, http.StatusOK, models.UserResponse{Message: "User updated", User: annView})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	api.SetToken("tok")

	got, err := api.UpdateUser(context.Background(), 5, models.UserUpdate{Name: strPtr("Ann")})

	require.NoError(t, err)
	assert.Equal(t, annView, got)
}

func TestDeleteUser(t *testing.T) {
	want := models.DeletedUserView{ID: 7, Name: "Bob", Email: "bob@example.com", Role: models.RoleUser}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/7", r.URL.Path)
		writeJSON(w, http.StatusOK, models.DeletedUserResponse{Message: "User deleted", User: want})
	}))
	defer srv.Close()

	got, err := newTestAPI(t, srv.URL).DeleteUser(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── Error mapping ───────────────────────────────────────────────────────────

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    error
		wantMessage string
		wantDetails []models.FieldIssue
	}{
		{
			name:        "validation",
			status:      http.StatusBadRequest,
			body:        `{"error":"Validation failed","details":[{"field":"id","message":"must be a number"}]}`,
			wantKind:    ErrBadRequest,
			wantMessage: "Validation failed",
			wantDetails: []models.FieldIssue{{Field: "id", Message: "must be a number"}},
		},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"Unauthorized"}`, wantKind: ErrUnauthorized, wantMessage: "Unauthorized"},
		{name: "forbidden", status: http.StatusForbidden, body: `{"error":"Only admin can update role"}`, wantKind: ErrForbidden, wantMessage: "Only admin can update role"},
		{name: "not found", status: http.StatusNotFound, body: `{"error":"User not found"}`, wantKind: ErrNotFound, wantMessage: "User not found"},
		{name: "conflict", status: http.StatusConflict, body: `{"error":"Email already in use"}`, wantKind: ErrConflict, wantMessage: "Email already in use"},
		{name: "internal", status: http.StatusInternalServerError, body: `{"error":"Internal server error"}`, wantKind: ErrInternalServerError, wantMessage: "Internal server error"},
		{name: "plain text body", status: http.StatusBadGateway, body: "upstream down", wantMessage: "upstream down"},
		{name: "empty body", status: http.StatusServiceUnavailable, wantMessage: "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAPI(t, srv.URL).UpdateUser(context.Background(), 5, models.UserUpdate{Name: strPtr("Ann")})

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr), "got %v", err)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantDetails, apiErr.Details)
			if tt.wantKind != nil {
				assert.ErrorIs(t, err, tt.wantKind)
			} else {
				assert.Nil(t, apiErr.Unwrap())
			}
		})
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := newTestAPI(t, srv.URL).ListUsers(context.Background())

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
