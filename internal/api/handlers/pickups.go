package handlers

import (
	"errors"
	"naiyuan-admin/internal/domain"
	"net/http"
	"strconv"
	"strings"
)

type PickupsHandler struct {
	*Base
}

type pickupsData struct {
	Tab      string
	Status   string
	Date     string
	Back     string
	Statuses []string
	Requests []domain.PickupRequest
	Slots    []domain.PickupSlot
}

// List shows either the pickup requests or the slot calendar; only the
// active tab is fetched.
func (h *PickupsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	data := pickupsData{
		Tab:      q.Get("tab"),
		Status:   q.Get("status"),
		Date:     q.Get("date"),
		Back:     r.URL.RequestURI(),
		Statuses: domain.PickupStatuses,
	}
	if data.Tab != "slots" {
		data.Tab = "requests"
	}

	var err error
	if data.Tab == "slots" {
		data.Slots, err = h.client(r).PickupSlots(ctx, data.Date)
	} else {
		data.Requests, err = h.client(r).PickupRequests(ctx, data.Status, data.Date)
	}

	var alert string
	if err != nil {
		if toLogin(w, r, err) {
			return
		}
		alert = err.Error()
	}
	h.render(w, r, "pickups", "Pickups", alert, data)
}

func (h *PickupsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/pickups")
	id := r.PathValue("id")

	upd := domain.PickupStatusUpdate{
		Status: r.FormValue("status"),
		Notes:  strings.TrimSpace(r.FormValue("notes")),
	}
	if !domain.Contains(domain.PickupStatuses, upd.Status) {
		h.fail(w, r, errors.New("Select a status"), back)
		return
	}

	if err := h.client(r).UpdatePickupStatus(ctx, id, upd); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "pickup.status", "pickup", id, upd.Status)
	done(w, r, back)
}

func (h *PickupsHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/pickups?tab=slots")

	in := domain.NewPickupSlot{
		Date:      r.FormValue("date"),
		StartTime: r.FormValue("start_time"),
		EndTime:   r.FormValue("end_time"),
	}
	if in.Date == "" || in.StartTime == "" || in.EndTime == "" {
		h.fail(w, r, errors.New("Date, start and end time are required"), back)
		return
	}
	var err error
	if in.MaxPickups, err = optionalInt(r, "max_pickups"); err != nil {
		h.fail(w, r, err, back)
		return
	}

	if err := h.client(r).CreatePickupSlot(ctx, in); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "pickup_slot.create", "pickup_slot", "", in.Date+" "+in.StartTime+"-"+in.EndTime)
	done(w, r, back)
}

// BulkCreateSlots reads parallel start_time/end_time fields; incomplete rows
// are skipped.
func (h *PickupsHandler) BulkCreateSlots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/pickups?tab=slots")
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, err, back)
		return
	}

	in := domain.BulkPickupSlots{Date: r.PostFormValue("date")}
	starts, ends := r.PostForm["start_time"], r.PostForm["end_time"]
	for i := range starts {
		if i < len(ends) {
			in.Slots = append(in.Slots, domain.SlotTime{StartTime: starts[i], EndTime: ends[i]})
		}
	}
	if in.Date == "" {
		h.fail(w, r, errors.New("Select a date"), back)
		return
	}
	if err := in.Validate(); err != nil {
		h.fail(w, r, err, back)
		return
	}
	var err error
	if in.MaxPickups, err = optionalInt(r, "max_pickups"); err != nil {
		h.fail(w, r, err, back)
		return
	}

	if err := h.client(r).BulkCreatePickupSlots(ctx, in); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "pickup_slot.bulk_create", "pickup_slot", "", in.Date+" x"+strconv.Itoa(len(in.Slots)))
	done(w, r, back)
}

// UpdateSlot changes a slot's capacity.
func (h *PickupsHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/pickups?tab=slots")
	id := r.PathValue("id")

	limit, err := optionalInt(r, "max_pickups")
	if err != nil || limit == nil {
		h.fail(w, r, errors.New("Enter the maximum number of pickups"), back)
		return
	}

	if err := h.client(r).UpdatePickupSlot(ctx, id, domain.PickupSlotUpdate{MaxPickups: limit}); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "pickup_slot.update", "pickup_slot", id, strconv.Itoa(*limit))
	done(w, r, back)
}

// ToggleSlot flips is_active; the form carries the slot's current value.
func (h *PickupsHandler) ToggleSlot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/pickups?tab=slots")
	id := r.PathValue("id")

	active := !formBool(r, "is_active")
	if err := h.client(r).UpdatePickupSlot(ctx, id, domain.PickupSlotUpdate{IsActive: &active}); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "pickup_slot.toggle", "pickup_slot", id, strconv.FormatBool(active))
	done(w, r, back)
}

func (h *PickupsHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/pickups?tab=slots")
	id := r.PathValue("id")

	if err := h.client(r).DeletePickupSlot(ctx, id); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "pickup_slot.delete", "pickup_slot", id, "")
	done(w, r, back)
}
