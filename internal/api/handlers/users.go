package handlers

import (
	"naiyuan-admin/internal/domain"
	"net/http"
	"strings"
)

type UsersHandler struct {
	*Base
}

type usersData struct {
	Search string
	Users  []domain.User
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	data := usersData{Search: strings.TrimSpace(r.URL.Query().Get("search"))}

	var alert string
	users, err := h.client(r).Users(r.Context(), data.Search)
	if err != nil {
		if toLogin(w, r, err) {
			return
		}
		alert = err.Error()
	}
	data.Users = users
	h.render(w, r, "users", "Users", alert, data)
}
