package handlers

import (
	"naiyuan-admin/internal/domain"
	"net/http"
)

type DashboardHandler struct {
	*Base
}

func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	var alert string
	stats, err := h.client(r).Dashboard(r.Context())
	if err != nil {
		if toLogin(w, r, err) {
			return
		}
		alert = err.Error()
		stats = &domain.Dashboard{}
	}
	h.render(w, r, "dashboard", "Dashboard", alert, stats)
}
