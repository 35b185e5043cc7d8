package handlers

import (
	"bytes"
	"errors"
	"naiyuan-admin/internal/domain"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func formRequest(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestBackTo(t *testing.T) {
	cases := map[string]string{
		"":                       "/bills",
		"/bills?status=PAID":     "/bills?status=PAID",
		"https://evil.example":   "/bills",
		"//evil.example/x":       "/bills",
		"/\\evil.example":        "/bills",
		"/pickups?tab=slots&x=1": "/pickups?tab=slots&x=1",
	}
	for in, want := range cases {
		r := formRequest(url.Values{"back": {in}})
		if got := backTo(r, "/bills"); got != want {
			t.Fatalf("backTo(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseShipmentDetails(t *testing.T) {
	d, err := parseShipmentDetails(formRequest(url.Values{
		"weight_kg":   {"12.5"},
		"volume_cbm":  {""},
		"packing_fee": {"3"},
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.WeightKg != 12.5 || d.BillingMethod != domain.BillingByWeight {
		t.Fatalf("got %+v", d)
	}
	if d.VolumeCBM != nil {
		t.Fatalf("blank volume should stay nil")
	}
	if d.PackingFee == nil || *d.PackingFee != 3 {
		t.Fatalf("packing fee = %v", d.PackingFee)
	}
}

func TestParseShipmentDetailsRequiresWeight(t *testing.T) {
	_, err := parseShipmentDetails(formRequest(url.Values{"weight_kg": {""}}))
	if !errors.Is(err, domain.ErrWeightRequired) {
		t.Fatalf("expected ErrWeightRequired, got %v", err)
	}

	d, err := parseShipmentDetails(formRequest(url.Values{"weight_kg": {"4"}, "billing_method": {"VOLUME"}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Validate(); !errors.Is(err, domain.ErrVolumeRequired) {
		t.Fatalf("expected ErrVolumeRequired, got %v", err)
	}
}

func TestOptionalFloatRejectsGarbage(t *testing.T) {
	_, err := optionalFloat(formRequest(url.Values{"amount": {"12abc"}}), "amount")
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestViewsRenderEveryPage(t *testing.T) {
	v, err := NewViews()
	if err != nil {
		t.Fatalf("NewViews: %v", err)
	}

	route := "GUANGZHOU"
	pages := map[string]any{
		"login":             loginData{Step: "otp", Email: "a@b.c"},
		"dashboard":         &domain.Dashboard{TotalRevenue: 1500},
		"users":             usersData{Users: []domain.User{{}}},
		"packages":          packagesData{Statuses: domain.PackageStatuses, Packages: []domain.Package{{Status: "ARRIVED"}}},
		"shipment_requests": struct{ Requests []domain.Shipment }{[]domain.Shipment{{Status: "REQUESTED"}}},
		"shipments":         shipmentsData{Statuses: domain.ShipmentStatuses, Shipments: []domain.Shipment{{Status: "PROCESSING"}}},
		"shipment_bill":     billFormData{Shipment: &domain.Shipment{}, Back: "/shipments"},
		"bill_result":       billResultData{Result: &domain.BillGeneration{}, Back: "/shipments"},
		"master_shipments":  masterListData{Masters: []domain.MasterShipment{{Route: &route}}},
		"master_new":        masterNewData{Shipments: []domain.Shipment{{}}, Routes: domain.Routes, Destinations: domain.Destinations},
		"master_detail":     &domain.MasterShipment{StatusHistory: []domain.StatusHistoryEntry{{Status: "SHIPPED"}}},
		"master_status":     masterStatusData{Master: &domain.MasterShipment{}},
		"bills":             billsData{Bills: []domain.Bill{{Status: "PENDING", Payments: []domain.Payment{{ID: "p1", Status: "PENDING"}}}}},
		"pickups":           pickupsData{Tab: "slots", Slots: []domain.PickupSlot{{StartTime: "14:30", EndTime: "15:00"}}},
		"settings":          settingsData{Tab: "tracking", Statuses: []domain.TrackingStatus{{Code: "X"}}},
		"rewards":           rewardsData{Tab: "config", Config: &domain.ReferralConfig{ExpiryDays: 30}},
	}
	for name, data := range pages {
		var buf bytes.Buffer
		if err := v.Render(&buf, name, Page{Title: name, Path: "/", Data: data}); err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
	}
}

func TestPaymentBadgeInBillsPage(t *testing.T) {
	v, err := NewViews()
	if err != nil {
		t.Fatalf("NewViews: %v", err)
	}

	var buf bytes.Buffer
	data := billsData{Back: "/bills", Bills: []domain.Bill{{
		Status:   "PENDING",
		Payments: []domain.Payment{{ID: "p9", Status: "PENDING"}},
	}}}
	if err := v.Render(&buf, "bills", Page{Path: "/bills", Data: data}); err != nil {
		t.Fatalf("render: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "Proof Uploaded") {
		t.Fatalf("missing payment badge")
	}
	if !strings.Contains(html, `action="/bills/payments/p9/verify"`) {
		t.Fatalf("missing verify form")
	}
}
