package handlers

import (
	"context"
	"errors"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/ports"
	"net/http"
	"strconv"
	"strings"
)

// SettingsHandler manages shipping rates, exchange rates and the tracking
// status/location lookups.
type SettingsHandler struct {
	*Base
}

type settingsData struct {
	Tab           string
	Back          string
	Categories    []domain.RateCategory
	Destinations  []domain.Option
	Rates         []domain.ShippingRate
	ExchangeRates []domain.ExchangeRate
	Statuses      []domain.TrackingStatus
	Locations     []domain.TrackingLocation
}

func (h *SettingsHandler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	api := h.client(r)
	data := settingsData{
		Tab:          r.URL.Query().Get("tab"),
		Back:         r.URL.RequestURI(),
		Categories:   domain.RateCategories,
		Destinations: domain.Destinations,
	}

	var err error
	switch data.Tab {
	case "exchange":
		data.ExchangeRates, err = api.ExchangeRates(ctx)
	case "tracking":
		data.Statuses, err = api.TrackingStatuses(ctx)
		if err == nil {
			data.Locations, err = api.TrackingLocations(ctx)
		}
	default:
		data.Tab = "rates"
		data.Rates, err = api.ShippingRates(ctx)
	}

	var alert string
	if err != nil {
		if toLogin(w, r, err) {
			return
		}
		alert = err.Error()
	}
	h.render(w, r, "settings", "Settings", alert, data)
}

// CreateRate fills the label, unit and clearing currency from the category.
func (h *SettingsHandler) CreateRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/settings")

	cat, ok := domain.LookupRateCategory(r.FormValue("category"))
	if !ok {
		h.fail(w, r, errors.New("Select a category"), back)
		return
	}
	in := domain.NewShippingRate{
		Category:         cat.Value,
		Label:            cat.Label,
		BillingUnit:      cat.Unit,
		ClearingCurrency: cat.Currency,
		Description:      strings.TrimSpace(r.FormValue("description")),
	}
	var err error
	if in.FreightCostUSD, err = floatValue(r, "freight_cost_usd"); err != nil {
		h.fail(w, r, err, back)
		return
	}
	if in.ClearingCost, err = floatValue(r, "clearing_cost"); err != nil {
		h.fail(w, r, err, back)
		return
	}
	if in.MinChargeUSD, err = optionalFloat(r, "min_charge_usd"); err != nil {
		h.fail(w, r, err, back)
		return
	}

	if err := h.client(r).CreateShippingRate(ctx, in); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "rate.create", "shipping_rate", "", in.Category)
	done(w, r, back)
}

// UpdateRate sends every editable field; a blank description is cleared.
func (h *SettingsHandler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/settings")
	id := r.PathValue("id")

	desc := domain.NullableString(strings.TrimSpace(r.FormValue("description")))
	upd := domain.ShippingRateUpdate{Description: &desc}
	var err error
	if upd.FreightCostUSD, err = optionalFloat(r, "freight_cost_usd"); err != nil {
		h.fail(w, r, err, back)
		return
	}
	if upd.ClearingCost, err = optionalFloat(r, "clearing_cost"); err != nil {
		h.fail(w, r, err, back)
		return
	}
	if upd.MinChargeUSD, err = optionalFloat(r, "min_charge_usd"); err != nil {
		h.fail(w, r, err, back)
		return
	}

	if err := h.client(r).UpdateShippingRate(ctx, id, upd); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "rate.update", "shipping_rate", id, "")
	done(w, r, back)
}

func (h *SettingsHandler) ToggleRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/settings")
	id := r.PathValue("id")

	active := !formBool(r, "is_active")
	if err := h.client(r).UpdateShippingRate(ctx, id, domain.ShippingRateUpdate{IsActive: &active}); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "rate.toggle", "shipping_rate", id, strconv.FormatBool(active))
	done(w, r, back)
}

func (h *SettingsHandler) DeleteRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/settings")
	id := r.PathValue("id")

	if err := h.client(r).DeleteShippingRate(ctx, id); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "rate.delete", "shipping_rate", id, "")
	done(w, r, back)
}

func (h *SettingsHandler) CreateExchangeRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/settings?tab=exchange")

	in := domain.NewExchangeRate{
		FromCurrency: strings.ToUpper(strings.TrimSpace(r.FormValue("from_currency"))),
		ToCurrency:   strings.ToUpper(strings.TrimSpace(r.FormValue("to_currency"))),
	}
	rate, err := optionalFloat(r, "rate")
	if err != nil || rate == nil || *rate <= 0 {
		h.fail(w, r, errors.New("Enter a valid rate"), back)
		return
	}
	in.Rate = *rate
	if in.FromCurrency == "" || in.ToCurrency == "" {
		h.fail(w, r, errors.New("Both currencies are required"), back)
		return
	}

	if err := h.client(r).CreateExchangeRate(ctx, in); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "exchange_rate.create", "exchange_rate", "", in.FromCurrency+"/"+in.ToCurrency)
	done(w, r, back)
}

func (h *SettingsHandler) CreateTrackingStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/settings?tab=tracking")

	in := domain.NewTrackingStatus{
		Code:        domain.LookupCode(r.FormValue("code")),
		Label:       strings.TrimSpace(r.FormValue("label")),
		Description: strings.TrimSpace(r.FormValue("description")),
		SortOrder:   intValue(r, "sort_order"),
		Destination: r.FormValue("destination"),
	}
	if in.Code == "" || in.Label == "" {
		h.fail(w, r, errors.New("Code and label are required"), back)
		return
	}

	if err := h.client(r).CreateTrackingStatus(ctx, in); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "tracking_status.create", "tracking_status", "", in.Code)
	done(w, r, back)
}

func (h *SettingsHandler) CreateTrackingLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/settings?tab=tracking")

	in := domain.NewTrackingLocation{
		Code:      domain.LookupCode(r.FormValue("code")),
		Label:     strings.TrimSpace(r.FormValue("label")),
		Country:   strings.TrimSpace(r.FormValue("country")),
		SortOrder: intValue(r, "sort_order"),
	}
	if in.Code == "" || in.Label == "" {
		h.fail(w, r, errors.New("Code and label are required"), back)
		return
	}

	if err := h.client(r).CreateTrackingLocation(ctx, in); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "tracking_location.create", "tracking_location", "", in.Code)
	done(w, r, back)
}

// lookupKind binds the shared update/toggle/delete actions to either
// tracking statuses or tracking locations.
type lookupKind struct {
	resource string
	update   func(api ports.TrackingAPI, ctx context.Context, id string, upd domain.LookupUpdate) error
	remove   func(api ports.TrackingAPI, ctx context.Context, id string) error
}

var lookupKinds = map[string]lookupKind{
	"statuses": {
		resource: "tracking_status",
		update:   ports.TrackingAPI.UpdateTrackingStatus,
		remove:   ports.TrackingAPI.DeleteTrackingStatus,
	},
	"locations": {
		resource: "tracking_location",
		update:   ports.TrackingAPI.UpdateTrackingLocation,
		remove:   ports.TrackingAPI.DeleteTrackingLocation,
	},
}

func lookupFor(w http.ResponseWriter, r *http.Request) (lookupKind, bool) {
	k, ok := lookupKinds[r.PathValue("kind")]
	if !ok {
		http.NotFound(w, r)
	}
	return k, ok
}

// UpdateLookup edits the label, sort order and description or country.
func (h *SettingsHandler) UpdateLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/settings?tab=tracking")
	id := r.PathValue("id")
	k, ok := lookupFor(w, r)
	if !ok {
		return
	}

	label := strings.TrimSpace(r.FormValue("label"))
	if label == "" {
		h.fail(w, r, errors.New("Label is required"), back)
		return
	}
	upd := domain.LookupUpdate{Label: &label}
	var err error
	if upd.SortOrder, err = optionalInt(r, "sort_order"); err != nil {
		h.fail(w, r, err, back)
		return
	}
	if k.resource == "tracking_status" {
		d := domain.NullableString(strings.TrimSpace(r.FormValue("description")))
		upd.Description = &d
	} else {
		c := domain.NullableString(strings.TrimSpace(r.FormValue("country")))
		upd.Country = &c
	}

	if err := k.update(h.client(r), ctx, id, upd); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, k.resource+".update", k.resource, id, label)
	done(w, r, back)
}

func (h *SettingsHandler) ToggleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/settings?tab=tracking")
	id := r.PathValue("id")
	k, ok := lookupFor(w, r)
	if !ok {
		return
	}

	active := !formBool(r, "is_active")
	if err := k.update(h.client(r), ctx, id, domain.LookupUpdate{IsActive: &active}); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, k.resource+".toggle", k.resource, id, strconv.FormatBool(active))
	done(w, r, back)
}

func (h *SettingsHandler) DeleteLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/settings?tab=tracking")
	id := r.PathValue("id")
	k, ok := lookupFor(w, r)
	if !ok {
		return
	}

	if err := k.remove(h.client(r), ctx, id); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, k.resource+".delete", k.resource, id, "")
	done(w, r, back)
}
