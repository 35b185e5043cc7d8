package handlers

import (
	"errors"
	"naiyuan-admin/internal/api/session"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// AuthHandler runs the two-step email + OTP login.
type AuthHandler struct {
	*Base
	Sessions *session.Manager
}

type loginData struct {
	Email string
	Step  string
}

func (h *AuthHandler) Form(w http.ResponseWriter, r *http.Request) {
	st := session.FromContext(r.Context())
	if st.LoggedIn() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := loginData{Step: "email"}
	if email := st.PendingEmail(); email != "" {
		data = loginData{Email: email, Step: "otp"}
	}
	h.render(w, r, "login", "Sign in", "", data)
}

func (h *AuthHandler) RequestCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	email := strings.TrimSpace(r.FormValue("email"))
	if email == "" {
		h.fail(w, r, errors.New("Enter your email"), "/login")
		return
	}

	if err := h.client(r).Login(ctx, email); err != nil {
		h.fail(w, r, err, "/login")
		return
	}
	if err := session.FromContext(ctx).SetPendingEmail(ctx, email); err != nil {
		h.fail(w, r, err, "/login")
		return
	}
	done(w, r, "/login")
}

func (h *AuthHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st := session.FromContext(ctx)

	email := st.PendingEmail()
	if email == "" {
		done(w, r, "/login")
		return
	}

	code := strings.TrimSpace(r.FormValue("code"))
	if _, err := h.client(r).VerifyOTP(ctx, email, code); err != nil {
		h.fail(w, r, err, "/login")
		return
	}
	h.Audit.Record(ctx, "auth.login", "admin", email, "")
	done(w, r, "/")
}

// Restart drops the pending email so another address can be used.
func (h *AuthHandler) Restart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := session.FromContext(ctx).SetPendingEmail(ctx, ""); err != nil {
		h.fail(w, r, err, "/login")
		return
	}
	done(w, r, "/login")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Destroy(w, r); err != nil {
		h.Logger.Error("destroy session failed", zap.Error(err))
	}
	done(w, r, "/login")
}
