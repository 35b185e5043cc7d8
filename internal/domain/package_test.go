package domain

import (
	"encoding/json"
	"testing"
)

func TestPackageDiffOnlyChangedFields(t *testing.T) {
	desc := "Shoes"
	pkg := &Package{
		Status:      "EN_ROUTE",
		Description: &desc,
		PhotoURLs:   []string{"https://cdn/a.jpg"},
	}

	upd := pkg.Diff("ARRIVED", "Shoes", "", []string{"https://cdn/a.jpg", "  ", ""})

	if upd.Status == nil || *upd.Status != "ARRIVED" {
		t.Fatalf("Status = %v, want ARRIVED", upd.Status)
	}
	if upd.Description != nil || upd.WarehouseNotes != nil || upd.PhotoURLs != nil {
		t.Fatalf("unexpected fields in update: %+v", upd)
	}

	body, err := json.Marshal(upd)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(body) != `{"status":"ARRIVED"}` {
		t.Fatalf("body = %s", body)
	}
}

func TestPackageDiffNoChanges(t *testing.T) {
	pkg := &Package{Status: "ARRIVED"}

	if upd := pkg.Diff("ARRIVED", "", "", nil); !upd.Empty() {
		t.Fatalf("expected empty update, got %+v", upd)
	}
}

func TestPackageDiffPhotos(t *testing.T) {
	pkg := &Package{Status: "ARRIVED", PhotoURLs: []string{"a"}}

	upd := pkg.Diff("ARRIVED", "", "", []string{"a", " b "})

	if upd.PhotoURLs == nil || len(*upd.PhotoURLs) != 2 || (*upd.PhotoURLs)[1] != "b" {
		t.Fatalf("PhotoURLs = %v", upd.PhotoURLs)
	}
}

func TestLookupCode(t *testing.T) {
	if got := LookupCode("  arrived  at   hub "); got != "ARRIVED_AT_HUB" {
		t.Fatalf("LookupCode = %q", got)
	}
}

func TestLookupUpdateClearsWithNull(t *testing.T) {
	empty := NullableString("")
	body, err := json.Marshal(LookupUpdate{Description: &empty})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(body) != `{"description":null}` {
		t.Fatalf("body = %s", body)
	}
}

func TestValidation(t *testing.T) {
	vol := 0.0
	if err := (ShipmentDetails{}).Validate(); err != ErrWeightRequired {
		t.Fatalf("err = %v", err)
	}
	if err := (ShipmentDetails{WeightKg: 2, BillingMethod: BillingByVolume, VolumeCBM: &vol}).Validate(); err != ErrVolumeRequired {
		t.Fatalf("err = %v", err)
	}
	if err := (ShipmentDetails{WeightKg: 2, BillingMethod: BillingByWeight}).Validate(); err != nil {
		t.Fatalf("err = %v", err)
	}
	if err := (WalletAdjustment{Amount: 500}).Validate(); err != ErrNoDescription {
		t.Fatalf("err = %v", err)
	}
	if err := (NewMasterShipment{}).Validate(); err != ErrNoShipmentsSelected {
		t.Fatalf("err = %v", err)
	}

	bulk := BulkPickupSlots{Slots: []SlotTime{{StartTime: "09:00"}, {StartTime: "10:00", EndTime: "11:00"}}}
	if err := bulk.Validate(); err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(bulk.Slots) != 1 {
		t.Fatalf("len(Slots) = %d, want 1", len(bulk.Slots))
	}
	if err := (&BulkPickupSlots{}).Validate(); err != ErrNoSlots {
		t.Fatalf("err = %v", err)
	}
}
