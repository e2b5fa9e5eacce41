package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/utils"
)

// health reports liveness, the server time, uptime and version.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
}
