package domain

import (
	"errors"
	"testing"
)

func TestShipmentStatusForTrackingCode(t *testing.T) {
	cases := map[string]string{
		"RECEIVED_WAREHOUSE":     "PROCESSING",
		"PREPARED_SHIPPING":      "PROCESSING",
		"DEPARTED_CONSOLIDATION": "SHIPPED",
		"ARRIVED_AIRPORT":        "SHIPPED",
		"CUSTOMS_CLEARED_ORIGIN": "SHIPPED",
		"IN_TRANSIT":             "IN_TRANSIT",
		"TRANSIT_HUB":            "IN_TRANSIT",
		"ARRIVED_DESTINATION":    "ARRIVED",
		"CUSTOMS_CLEARED_DEST":   "ARRIVED",
		"OUT_FOR_DELIVERY":       "OUT_FOR_DELIVERY",
		"DELIVERED":              "DELIVERED",
		"SOMETHING_NEW":          "PROCESSING",
		"":                       "PROCESSING",
	}
	for code, want := range cases {
		if got := ShipmentStatusForTrackingCode(code); got != want {
			t.Fatalf("ShipmentStatusForTrackingCode(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestAvailableTrackingStatuses(t *testing.T) {
	lagos := "LAGOS_NIGERIA"
	used := "RECEIVED_WAREHOUSE"
	ms := &MasterShipment{
		Destination:   &lagos,
		StatusHistory: []StatusHistoryEntry{{TrackingCode: &used}, {TrackingCode: nil}},
	}
	statuses := []TrackingStatus{
		{Code: "RECEIVED_WAREHOUSE", Destination: "ALL"},
		{Code: "IN_TRANSIT", Destination: "ALL"},
		{Code: "CUSTOMS_CLEARED_DEST", Destination: "LAGOS_NIGERIA"},
		{Code: "GHANA_PORT", Destination: "GHANA"},
	}

	got := AvailableTrackingStatuses(statuses, ms)

	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].Code != "IN_TRANSIT" || got[1].Code != "CUSTOMS_CLEARED_DEST" {
		t.Fatalf("got codes %q, %q", got[0].Code, got[1].Code)
	}
}

func TestAvailableTrackingStatusesNoDestination(t *testing.T) {
	ms := &MasterShipment{}
	statuses := []TrackingStatus{
		{Code: "IN_TRANSIT", Destination: "ALL"},
		{Code: "GHANA_PORT", Destination: "GHANA"},
	}

	got := AvailableTrackingStatuses(statuses, ms)

	if len(got) != 1 || got[0].Code != "IN_TRANSIT" {
		t.Fatalf("got %+v, want only IN_TRANSIT", got)
	}
}

func TestBuildMasterStatusUpdate(t *testing.T) {
	statuses := []TrackingStatus{{Code: "ARRIVED_AIRPORT", Label: "Arrived at airport"}}
	locations := []TrackingLocation{{Code: "GZ_AIRPORT", Label: "Guangzhou Baiyun Airport"}}

	upd, err := BuildMasterStatusUpdate(statuses, locations, "ARRIVED_AIRPORT", "GZ_AIRPORT", " loaded on CZ3103 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upd.Status != "SHIPPED" {
		t.Fatalf("Status = %q, want SHIPPED", upd.Status)
	}
	if upd.TrackingCode != "ARRIVED_AIRPORT" {
		t.Fatalf("TrackingCode = %q", upd.TrackingCode)
	}
	if upd.Notes != "Arrived at airport — loaded on CZ3103" {
		t.Fatalf("Notes = %q", upd.Notes)
	}
	if upd.Location != "Guangzhou Baiyun Airport" {
		t.Fatalf("Location = %q", upd.Location)
	}
}

func TestBuildMasterStatusUpdateFallsBackToCodes(t *testing.T) {
	upd, err := BuildMasterStatusUpdate(nil, nil, "TRANSIT_HUB", "DXB", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upd.Notes != "TRANSIT_HUB" || upd.Location != "DXB" || upd.Status != "IN_TRANSIT" {
		t.Fatalf("got %+v", upd)
	}
}

func TestBuildMasterStatusUpdateValidation(t *testing.T) {
	if _, err := BuildMasterStatusUpdate(nil, nil, "", "DXB", ""); !errors.Is(err, ErrNoTrackingStatus) {
		t.Fatalf("err = %v, want %v", err, ErrNoTrackingStatus)
	}
	if _, err := BuildMasterStatusUpdate(nil, nil, "DELIVERED", "", ""); !errors.Is(err, ErrNoLocation) {
		t.Fatalf("err = %v, want %v", err, ErrNoLocation)
	}
}

func TestAssignableShipments(t *testing.T) {
	msID := "ms-1"
	empty := ""
	in := []Shipment{
		{ID: "a", Status: "PROCESSING"},
		{ID: "b", Status: "PROCESSING", MasterShipmentID: &msID},
		{ID: "c", Status: "REQUESTED"},
		{ID: "d", Status: "PROCESSING", MasterShipmentID: &empty},
	}

	got := AssignableShipments(in)

	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "d" {
		t.Fatalf("got %+v, want a and d", got)
	}
}

func TestActiveLookups(t *testing.T) {
	s := ActiveStatuses([]TrackingStatus{{Code: "A", IsActive: true}, {Code: "B"}})
	if len(s) != 1 || s[0].Code != "A" {
		t.Fatalf("ActiveStatuses = %+v", s)
	}
	l := ActiveLocations([]TrackingLocation{{Code: "X"}, {Code: "Y", IsActive: true}})
	if len(l) != 1 || l[0].Code != "Y" {
		t.Fatalf("ActiveLocations = %+v", l)
	}
}
