package handlers

import (
	"errors"
	"naiyuan-admin/internal/domain"
	"net/http"
	"strings"
)

type ShipmentsHandler struct {
	*Base
}

type shipmentsData struct {
	Status    string
	Search    string
	Back      string
	Statuses  []string
	Shipments []domain.Shipment
}

func (h *ShipmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := shipmentsData{
		Status:   q.Get("status"),
		Search:   strings.TrimSpace(q.Get("search")),
		Back:     r.URL.RequestURI(),
		Statuses: domain.ShipmentStatuses,
	}

	var alert string
	shipments, err := h.client(r).Shipments(r.Context(), data.Status, data.Search)
	if err != nil {
		if toLogin(w, r, err) {
			return
		}
		alert = err.Error()
	}
	data.Shipments = shipments
	h.render(w, r, "shipments", "Shipments", alert, data)
}

func (h *ShipmentsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/shipments")
	id := r.PathValue("id")

	upd := domain.ShipmentStatusUpdate{
		Status:   r.FormValue("status"),
		Notes:    strings.TrimSpace(r.FormValue("notes")),
		Location: strings.TrimSpace(r.FormValue("location")),
	}
	if !domain.Contains(domain.ShipmentStatuses, upd.Status) {
		h.fail(w, r, errors.New("Select a status"), back)
		return
	}

	if err := h.client(r).UpdateShipmentStatus(ctx, id, upd); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "shipment.status", "shipment", id, upd.Status)
	done(w, r, back)
}

type billFormData struct {
	Shipment *domain.Shipment
	Back     string
}

// BillForm shows the "add details & generate bill" form.
func (h *ShipmentsHandler) BillForm(w http.ResponseWriter, r *http.Request) {
	back := backTo(r, "/shipments")
	shipment, err := h.client(r).Shipment(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.render(w, r, "shipment_bill", "Add Details & Generate Bill", "", billFormData{Shipment: shipment, Back: back})
}

type billResultData struct {
	ShipmentID string
	Result     *domain.BillGeneration
	Back       string
}

// GenerateBill submits the details and renders the backend's breakdown.
func (h *ShipmentsHandler) GenerateBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")
	back := backTo(r, "/shipments")
	formURL := "/shipments/" + id + "/bill"

	d, err := parseShipmentDetails(r)
	if err == nil {
		err = d.Validate()
	}
	if err != nil {
		h.fail(w, r, err, formURL)
		return
	}

	res, err := h.client(r).AddShipmentDetailsAndGenerateBill(ctx, id, d)
	if err != nil {
		h.fail(w, r, err, formURL)
		return
	}
	h.Audit.Record(ctx, "shipment.bill", "shipment", id, res.Bill.BillNumber)
	h.render(w, r, "bill_result", "Bill Generated", "", billResultData{ShipmentID: id, Result: res, Back: back})
}

func parseShipmentDetails(r *http.Request) (domain.ShipmentDetails, error) {
	weight, err := optionalFloat(r, "weight_kg")
	if err != nil {
		return domain.ShipmentDetails{}, err
	}
	if weight == nil {
		return domain.ShipmentDetails{}, domain.ErrWeightRequired
	}

	d := domain.ShipmentDetails{
		WeightKg:      *weight,
		BillingMethod: r.FormValue("billing_method"),
		Notes:         strings.TrimSpace(r.FormValue("notes")),
	}
	if d.BillingMethod == "" {
		d.BillingMethod = domain.BillingByWeight
	}
	if d.VolumeCBM, err = optionalFloat(r, "volume_cbm"); err != nil {
		return d, err
	}
	if d.PackingFee, err = optionalFloat(r, "packing_fee"); err != nil {
		return d, err
	}
	if d.AdditionalFees, err = optionalFloat(r, "additional_fees"); err != nil {
		return d, err
	}
	return d, nil
}
