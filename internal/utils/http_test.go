package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		status     int
		wantStatus int
		wantBody   string
		wantErr    bool
	}{
		{
			name:       "object",
			data:       map[string]string{"message": "User deleted"},
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"User deleted"}`,
		},
		{
			name:       "error status",
			data:       map[string]string{"error": "User not found"},
			status:     http.StatusNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"User not found"}`,
		},
		{
			name:       "nil",
			data:       nil,
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   `null`,
		},
		{
			name:       "empty struct",
			data:       struct{}{},
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   `{}`,
		},
		{
			name:       "not serializable",
			data:       make(chan int),
			status:     http.StatusOK,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.status)

			if tt.wantErr {
				require.Error(t, err)
				assert.Zero(t, n)
			} else {
				require.NoError(t, err)
				assert.Equal(t, len(tt.wantBody), n)
			}
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
