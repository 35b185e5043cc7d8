package domain

// Coarse shipment status implied by each tracking step. The backend keeps
// its own copy of this table; keep the two in sync.
var trackingShipmentStatus = map[string]string{
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
}

// ShipmentStatusForTrackingCode maps a tracking code to the shipment status
// it implies. Unknown codes map to PROCESSING.
func ShipmentStatusForTrackingCode(code string) string {
	if s, ok := trackingShipmentStatus[code]; ok {
		return s
	}
	return "PROCESSING"
}

// ActiveStatuses keeps the active entries, in order.
func ActiveStatuses(in []TrackingStatus) []TrackingStatus {
	out := make([]TrackingStatus, 0, len(in))
	for _, s := range in {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out
}

func ActiveLocations(in []TrackingLocation) []TrackingLocation {
	out := make([]TrackingLocation, 0, len(in))
	for _, l := range in {
		if l.IsActive {
			out = append(out, l)
		}
	}
	return out
}

// AvailableTrackingStatuses returns the steps that may still be applied to ms:
// shared or matching-destination statuses whose code is not yet in its history.
func AvailableTrackingStatuses(statuses []TrackingStatus, ms *MasterShipment) []TrackingStatus {
	used := make(map[string]struct{}, len(ms.StatusHistory))
	for _, h := range ms.StatusHistory {
		if code := deref(h.TrackingCode); code != "" {
			used[code] = struct{}{}
		}
	}
	dest := deref(ms.Destination)

	out := make([]TrackingStatus, 0, len(statuses))
	for _, s := range statuses {
		if s.Destination != "ALL" && s.Destination != dest {
			continue
		}
		if _, ok := used[s.Code]; ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

// BuildMasterStatusUpdate turns the selected tracking step and location into
// the request body. Labels are resolved from the given lookups and fall back
// to the raw codes.
func BuildMasterStatusUpdate(statuses []TrackingStatus, locations []TrackingLocation, code, locationCode, notes string) (MasterStatusUpdate, error) {
	if code == "" {
		return MasterStatusUpdate{}, ErrNoTrackingStatus
	}
	if locationCode == "" {
		return MasterStatusUpdate{}, ErrNoLocation
	}

	label := code
	for _, s := range statuses {
		if s.Code == code {
			label = s.Label
			break
		}
	}
	location := locationCode
	for _, l := range locations {
		if l.Code == locationCode {
			location = l.Label
			break
		}
	}
	if notes = trimSpace(notes); notes != "" {
		label += " — " + notes
	}

	return MasterStatusUpdate{
		Status:       ShipmentStatusForTrackingCode(code),
		TrackingCode: code,
		Notes:        label,
		Location:     location,
	}, nil
}

// AssignableShipments are the PROCESSING shipments not yet in a master shipment.
func AssignableShipments(in []Shipment) []Shipment {
	out := make([]Shipment, 0, len(in))
	for i := range in {
		if in[i].Status == "PROCESSING" && in[i].Unassigned() {
			out = append(out, in[i])
		}
	}
	return out
}
