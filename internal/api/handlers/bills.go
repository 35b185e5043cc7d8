package handlers

import (
	"errors"
	"naiyuan-admin/internal/domain"
	"net/http"
	"strings"
)

// BillsHandler lists bills and verifies uploaded payments.
type BillsHandler struct {
	*Base
}

type billsData struct {
	Status   string
	Search   string
	Back     string
	Statuses []string
	Bills    []domain.Bill
	Awaiting int
}

func (h *BillsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := billsData{
		Status:   q.Get("status"),
		Search:   strings.TrimSpace(q.Get("search")),
		Back:     r.URL.RequestURI(),
		Statuses: domain.BillStatuses,
	}

	var alert string
	bills, err := h.client(r).Bills(r.Context(), data.Status, data.Search)
	if err != nil {
		if toLogin(w, r, err) {
			return
		}
		alert = err.Error()
	}
	data.Bills = bills
	data.Awaiting = domain.CountAwaitingVerification(bills)
	h.render(w, r, "bills", "Bills", alert, data)
}

func (h *BillsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/bills")

	in := domain.NewBill{ShipmentID: strings.TrimSpace(r.FormValue("shipment_id"))}
	if in.ShipmentID == "" {
		h.fail(w, r, errors.New("Enter a shipment ID"), back)
		return
	}
	var err error
	if in.ShippingFee, err = floatValue(r, "shipping_fee"); err != nil {
		h.fail(w, r, err, back)
		return
	}
	if in.ClearingFee, err = floatValue(r, "clearing_fee"); err != nil {
		h.fail(w, r, err, back)
		return
	}
	if in.AdditionalFees, err = optionalFloat(r, "additional_fees"); err != nil {
		h.fail(w, r, err, back)
		return
	}

	bill, err := h.client(r).CreateBill(ctx, in)
	if err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "bill.create", "bill", bill.ID, in.ShipmentID)
	done(w, r, back)
}

// VerifyPayment approves or rejects one uploaded payment, then sends the
// admin back to the list.
func (h *BillsHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/bills")
	id := r.PathValue("id")

	v := domain.PaymentVerification{
		Status: r.FormValue("status"),
		Notes:  strings.TrimSpace(r.FormValue("notes")),
	}
	if v.Status != domain.PaymentApproved && v.Status != domain.PaymentRejected {
		h.fail(w, r, errors.New("Choose approve or reject"), back)
		return
	}

	if err := h.client(r).VerifyPayment(ctx, id, v); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "payment.verify", "payment", id, v.Status)
	done(w, r, back)
}
