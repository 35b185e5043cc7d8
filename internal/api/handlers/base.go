package handlers

import (
	"bytes"
	"context"
	"naiyuan-admin/internal/adapters/audit"
	"naiyuan-admin/internal/api/session"
	"naiyuan-admin/internal/ports"
	"naiyuan-admin/internal/view"
	"net/http"

	"go.uber.org/zap"
)

// APIFactory builds a backend client bound to one admin's token.
type APIFactory func(tokens ports.TokenStore) ports.AdminAPI

// Base holds what every page handler needs.
type Base struct {
	API    APIFactory
	Views  *Views
	Audit  *audit.Recorder
	Logger *zap.Logger
}

func (b *Base) client(r *http.Request) ports.AdminAPI {
	return b.API(session.FromContext(r.Context()))
}

// Page is the data every template receives.
type Page struct {
	Title   string
	Path    string
	Alert   string
	Pending int
	Nav     []view.NavItem
	Bare    bool
	Data    any
}

// render writes a full page. alert, when non-empty, is shown in addition to
// any pending flash message.
func (b *Base) render(w http.ResponseWriter, r *http.Request, name, title, alert string, data any) {
	ctx := r.Context()
	st := session.FromContext(ctx)

	flash, err := st.TakeFlash(ctx)
	if err != nil {
		b.Logger.Error("take flash failed", zap.Error(err))
	}
	if alert != "" && flash != "" {
		alert = flash + "\n" + alert
	} else if alert == "" {
		alert = flash
	}

	p := Page{
		Title: title,
		Path:  r.URL.Path,
		Alert: alert,
		Nav:   view.Nav,
		Data:  data,
	}
	if st.LoggedIn() {
		p.Pending = b.pendingCount(ctx, b.client(r))
	} else {
		p.Bare = true
	}

	b.writePage(w, r, name, p)
}

func (b *Base) writePage(w http.ResponseWriter, r *http.Request, name string, p Page) {
	var buf bytes.Buffer
	if err := b.Views.Render(&buf, name, p); err != nil {
		b.Logger.Error("render failed", zap.String("page", name), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// pendingCount is the sidebar's pending-payments badge. Failures count as 0.
func (b *Base) pendingCount(ctx context.Context, api ports.BillsAPI) int {
	payments, err := api.PendingPayments(ctx)
	if err != nil {
		b.Logger.Debug("pending payments poll failed", zap.Error(err))
		return 0
	}
	return len(payments)
}
