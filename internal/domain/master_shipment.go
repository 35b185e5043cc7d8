package domain

import "time"

// StatusHistoryEntry is one point on a master shipment's tracking timeline.
type StatusHistoryEntry struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	TrackingCode *string   `json:"trackingCode"`
	Notes        *string   `json:"notes"`
	Location     *string   `json:"location"`
	Timestamp    time.Time `json:"timestamp"`
}

// Represents a carrier-level consolidation of customer shipments sharing
// one master tracking number.
type MasterShipment struct {
	ID               string               `json:"id"`
	MasterTrackingNo string               `json:"masterTrackingNo"`
	Status           string               `json:"status"`
	Method           string               `json:"method"`
	Route            *string              `json:"route"`
	Destination      *string              `json:"destination"`
	TotalWeightKg    *float64             `json:"totalWeightKg"`
	TotalVolumeCBM   *float64             `json:"totalVolumeCBM"`
	EstimatedArrival *time.Time           `json:"estimatedArrival"`
	ShippedAt        *time.Time           `json:"shippedAt"`
	DeliveredAt      *time.Time           `json:"deliveredAt"`
	Notes            *string              `json:"notes"`
	CreatedAt        time.Time            `json:"createdAt"`
	Shipments        []Shipment           `json:"shipments"`
	StatusHistory    []StatusHistoryEntry `json:"statusHistory"`
}

// PackageCount is the number of packages across all linked shipments.
func (m MasterShipment) PackageCount() int {
	n := 0
	for _, s := range m.Shipments {
		n += len(s.Packages)
	}
	return n
}

// NewMasterShipment is the create request for a master shipment.
type NewMasterShipment struct {
	Method           string   `json:"method"`
	Route            string   `json:"route,omitempty"`
	Destination      string   `json:"destination,omitempty"`
	EstimatedArrival string   `json:"estimatedArrival,omitempty"`
	ShipmentIDs      []string `json:"shipmentIds"`
}

// MasterStatusUpdate moves a master shipment (and its shipments) along the timeline.
type MasterStatusUpdate struct {
	Status       string `json:"status"`
	TrackingCode string `json:"trackingCode,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Location     string `json:"location,omitempty"`
}
