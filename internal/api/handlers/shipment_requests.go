package handlers

import (
	"naiyuan-admin/internal/domain"
	"net/http"
	"strings"
)

type ShipmentRequestsHandler struct {
	*Base
}

func (h *ShipmentRequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	var alert string
	reqs, err := h.client(r).ShipmentRequests(r.Context())
	if err != nil {
		if toLogin(w, r, err) {
			return
		}
		alert = err.Error()
	}
	h.render(w, r, "shipment_requests", "Shipment Requests", alert, struct {
		Requests []domain.Shipment
	}{reqs})
}

func (h *ShipmentRequestsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if err := h.client(r).ApproveShipmentRequest(ctx, id); err != nil {
		h.fail(w, r, err, "/shipment-requests")
		return
	}
	h.Audit.Record(ctx, "shipment_request.approve", "shipment", id, "")
	done(w, r, "/shipment-requests")
}

func (h *ShipmentRequestsHandler) Reject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")
	reason := strings.TrimSpace(r.FormValue("reason"))

	if err := h.client(r).RejectShipmentRequest(ctx, id, reason); err != nil {
		h.fail(w, r, err, "/shipment-requests")
		return
	}
	h.Audit.Record(ctx, "shipment_request.reject", "shipment", id, reason)
	done(w, r, "/shipment-requests")
}
