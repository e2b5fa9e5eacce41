package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-keeper/models"
)

func TestHealth(t *testing.T) {
	h, _, appInfo := newMockedHandler(t)
	appInfo.EXPECT().Health(gomock.Any()).Return(models.HealthResponse{
		Status:    "OK",
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Uptime:    12.5,
		Version:   "1.4.0",
	})

	rec := serve(t, h.Init(), httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK","timestamp":"2026-03-01T12:00:00Z","uptime":12.5,"version":"1.4.0"}`, rec.Body.String())
}

func TestGetServerVersion(t *testing.T) {
	for _, version := range []string{"1.2.3", "v2.0.0-beta+build.42", ""} {
		t.Run(version, func(t *testing.T) {
			h, _, appInfo := newMockedHandler(t)
			appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(version)

			rec := serve(t, h.Init(), httptest.NewRequest(http.MethodGet, "/version", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, version, rec.Body.String())
			assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
		})
	}
}
