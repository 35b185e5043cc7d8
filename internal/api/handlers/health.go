package handlers

import (
	"naiyuan-admin/internal/api/dto"
	"net/http"
)

// Health provides a minimal liveness check endpoint.
func (b *Base) Health(w http.ResponseWriter, r *http.Request) {
	b.writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: "ok"})
}
