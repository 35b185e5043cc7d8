package api

import (
	"naiyuan-admin/internal/adapters/audit"
	"naiyuan-admin/internal/api/handlers"
	"naiyuan-admin/internal/api/session"
	"net/http"

	"go.uber.org/zap"
)

// Deps are the concrete collaborators the console is built from.
type Deps struct {
	API      handlers.APIFactory
	Views    *handlers.Views
	Sessions *session.Manager
	Audit    *audit.Recorder
	Logger   *zap.Logger
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	base := &handlers.Base{API: d.API, Views: d.Views, Audit: d.Audit, Logger: d.Logger}

	authH := &handlers.AuthHandler{Base: base, Sessions: d.Sessions}
	dashH := &handlers.DashboardHandler{Base: base}
	pkgH := &handlers.PackageHandler{Base: base}
	reqH := &handlers.ShipmentRequestsHandler{Base: base}
	shipH := &handlers.ShipmentsHandler{Base: base}
	masterH := &handlers.MasterShipmentsHandler{Base: base}
	billH := &handlers.BillsHandler{Base: base}
	pickupH := &handlers.PickupsHandler{Base: base}
	userH := &handlers.UsersHandler{Base: base}
	setH := &handlers.SettingsHandler{Base: base}
	rewardH := &handlers.RewardsHandler{Base: base}

	app := http.NewServeMux()
	app.HandleFunc("GET /{$}", dashH.Show)

	app.HandleFunc("GET /packages", pkgH.List)
	app.HandleFunc("POST /packages/bulk-status", pkgH.BulkStatus)
	app.HandleFunc("POST /packages/{id}", pkgH.Update)

	app.HandleFunc("GET /shipment-requests", reqH.List)
	app.HandleFunc("POST /shipment-requests/{id}/approve", reqH.Approve)
	app.HandleFunc("POST /shipment-requests/{id}/reject", reqH.Reject)

	app.HandleFunc("GET /shipments", shipH.List)
	app.HandleFunc("POST /shipments/{id}/status", shipH.UpdateStatus)
	app.HandleFunc("GET /shipments/{id}/bill", shipH.BillForm)
	app.HandleFunc("POST /shipments/{id}/bill", shipH.GenerateBill)

	app.HandleFunc("GET /master-shipments", masterH.List)
	app.HandleFunc("GET /master-shipments/new", masterH.New)
	app.HandleFunc("POST /master-shipments", masterH.Create)
	app.HandleFunc("GET /master-shipments/{id}", masterH.Show)
	app.HandleFunc("GET /master-shipments/{id}/status", masterH.StatusForm)
	app.HandleFunc("POST /master-shipments/{id}/status", masterH.UpdateStatus)

	app.HandleFunc("GET /bills", billH.List)
	app.HandleFunc("POST /bills", billH.Create)
	app.HandleFunc("POST /bills/payments/{id}/verify", billH.VerifyPayment)

	app.HandleFunc("GET /pickups", pickupH.List)
	app.HandleFunc("POST /pickups/requests/{id}/status", pickupH.UpdateStatus)
	app.HandleFunc("POST /pickups/slots", pickupH.CreateSlot)
	app.HandleFunc("POST /pickups/slots/bulk", pickupH.BulkCreateSlots)
	app.HandleFunc("POST /pickups/slots/{id}", pickupH.UpdateSlot)
	app.HandleFunc("POST /pickups/slots/{id}/toggle", pickupH.ToggleSlot)
	app.HandleFunc("POST /pickups/slots/{id}/delete", pickupH.DeleteSlot)

	app.HandleFunc("GET /users", userH.List)

	app.HandleFunc("GET /settings", setH.Show)
	app.HandleFunc("POST /settings/rates", setH.CreateRate)
	app.HandleFunc("POST /settings/rates/{id}", setH.UpdateRate)
	app.HandleFunc("POST /settings/rates/{id}/toggle", setH.ToggleRate)
	app.HandleFunc("POST /settings/rates/{id}/delete", setH.DeleteRate)
	app.HandleFunc("POST /settings/exchange-rates", setH.CreateExchangeRate)
	app.HandleFunc("POST /settings/tracking/statuses", setH.CreateTrackingStatus)
	app.HandleFunc("POST /settings/tracking/locations", setH.CreateTrackingLocation)
	app.HandleFunc("POST /settings/tracking/{kind}/{id}", setH.UpdateLookup)
	app.HandleFunc("POST /settings/tracking/{kind}/{id}/toggle", setH.ToggleLookup)
	app.HandleFunc("POST /settings/tracking/{kind}/{id}/delete", setH.DeleteLookup)

	app.HandleFunc("GET /rewards", rewardH.Show)
	app.HandleFunc("POST /rewards/tiers/{id}", rewardH.UpdateTier)
	app.HandleFunc("POST /rewards/wallets/{userID}/adjust", rewardH.AdjustWallet)
	app.HandleFunc("POST /rewards/config", rewardH.UpdateConfig)

	app.HandleFunc("GET /partials/pending-payments", base.PendingPayments)

	web := http.NewServeMux()
	web.HandleFunc("GET /login", authH.Form)
	web.HandleFunc("POST /login", authH.RequestCode)
	web.HandleFunc("POST /login/verify", authH.VerifyCode)
	web.HandleFunc("POST /login/restart", authH.Restart)
	web.HandleFunc("POST /logout", authH.Logout)
	web.Handle("/", session.RequireAuth(app))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", base.Health)
	mux.Handle("/", d.Sessions.Middleware(web))

	return requestLogger(d.Logger, mux)
}
