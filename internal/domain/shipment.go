package domain

import "time"

// ShipmentPackage is the join row linking a package to a shipment.
type ShipmentPackage struct {
	ID        string         `json:"id"`
	PackageID string         `json:"packageId,omitempty"`
	Package   PackageSummary `json:"package"`
}

type PackageSummary struct {
	ID             string  `json:"id"`
	TrackingNumber string  `json:"trackingNumber"`
	Description    *string `json:"description"`
	Status         string  `json:"status"`
}

// Represents a customer's packages grouped for transport under one method.
// Shipment requests are shipments still in REQUESTED status.
type Shipment struct {
	ID               string            `json:"id"`
	ShipmentNumber   string            `json:"shipmentNumber"`
	Status           string            `json:"status"`
	Method           string            `json:"method"`
	Route            *string           `json:"route"`
	WeightKg         *float64          `json:"weightKg"`
	VolumeCBM        *float64          `json:"volumeCBM"`
	TotalCostNGN     *float64          `json:"totalCostNGN"`
	ShippingFeeNGN   *float64          `json:"shippingFeeNGN,omitempty"`
	DeliveryAddress  *string           `json:"deliveryAddress"`
	EstimatedArrival *time.Time        `json:"estimatedArrival"`
	MasterShipmentID *string           `json:"masterShipmentId,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	User             UserRef           `json:"user"`
	Packages         []ShipmentPackage `json:"packages"`
}

// Unassigned reports whether the shipment is not yet part of a master shipment.
func (s *Shipment) Unassigned() bool {
	return s.MasterShipmentID == nil || *s.MasterShipmentID == ""
}

// ShipmentStatusUpdate is the body of a single-shipment status change.
type ShipmentStatusUpdate struct {
	Status   string `json:"status"`
	Notes    string `json:"notes,omitempty"`
	Location string `json:"location,omitempty"`
}

// ShipmentDetails is the input of the "add details & generate bill" flow.
type ShipmentDetails struct {
	WeightKg       float64  `json:"weightKg"`
	VolumeCBM      *float64 `json:"volumeCBM,omitempty"`
	BillingMethod  string   `json:"billingMethod"`
	PackingFee     *float64 `json:"packingFee,omitempty"`
	AdditionalFees *float64 `json:"additionalFees,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}
