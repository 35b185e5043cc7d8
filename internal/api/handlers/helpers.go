package handlers

import (
	"encoding/json"
	"errors"
	"naiyuan-admin/internal/api/dto"
	"naiyuan-admin/internal/api/session"
	"naiyuan-admin/internal/ports"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

func (b *Base) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		b.Logger.Warn("encode failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func (b *Base) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	b.writeJSON(w, r, status, dto.ErrorResponse{Error: msg})
}

// toLogin handles ErrUnauthorized by sending the admin to /login. It reports
// whether it did.
func toLogin(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, ports.ErrUnauthorized) {
		return false
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return true
}

// fail shows err as an alert on the page at back.
func (b *Base) fail(w http.ResponseWriter, r *http.Request, err error, back string) {
	if toLogin(w, r, err) {
		return
	}
	ctx := r.Context()
	b.Logger.Info("admin action failed", zap.String("path", r.URL.Path), zap.Error(err))
	if ferr := session.FromContext(ctx).SetFlash(ctx, err.Error()); ferr != nil {
		b.Logger.Error("set flash failed", zap.Error(ferr))
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// done redirects after a successful mutation so the list is fetched again.
func done(w http.ResponseWriter, r *http.Request, back string) {
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// backTo returns the form's "back" field when it is a local path, else fallback.
func backTo(r *http.Request, fallback string) string {
	back := r.FormValue("back")
	if back == "" || !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") || strings.HasPrefix(back, "/\\") {
		return fallback
	}
	return back
}

// optionalFloat parses a form number; blank means nil.
func optionalFloat(r *http.Request, key string) (*float64, error) {
	s := strings.TrimSpace(r.FormValue(key))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.New("Invalid number for " + key)
	}
	return &v, nil
}

func floatValue(r *http.Request, key string) (float64, error) {
	v, err := optionalFloat(r, key)
	if err != nil || v == nil {
		return 0, err
	}
	return *v, nil
}

func optionalInt(r *http.Request, key string) (*int, error) {
	s := strings.TrimSpace(r.FormValue(key))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, errors.New("Invalid number for " + key)
	}
	return &v, nil
}

func intValue(r *http.Request, key string) int {
	v, err := optionalInt(r, key)
	if err != nil || v == nil {
		return 0
	}
	return *v
}

func formBool(r *http.Request, key string) bool {
	v, _ := strconv.ParseBool(r.FormValue(key))
	return v
}

// lines splits a textarea into trimmed lines.
func lines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
