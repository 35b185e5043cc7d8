package domain

import (
	"encoding/json"
	"time"
)

// Payment is a customer's payment attempt against a bill. Proof-of-payment
// uploads arrive as PENDING and are verified by an admin.
type Payment struct {
	ID        string          `json:"id"`
	Amount    float64         `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
	PaidAt    *time.Time      `json:"paidAt"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type BillShipment struct {
	ID             string `json:"id"`
	ShipmentNumber string `json:"shipmentNumber"`
	Method         string `json:"method"`
}

// Represents the fee record generated for a shipment.
type Bill struct {
	ID             string        `json:"id"`
	BillNumber     string        `json:"billNumber"`
	Status         string        `json:"status"`
	ShippingFee    float64       `json:"shippingFee"`
	ClearingFee    float64       `json:"clearingFee"`
	AdditionalFees float64       `json:"additionalFees"`
	TotalAmount    float64       `json:"totalAmount"`
	DueDate        time.Time     `json:"dueDate"`
	PaidAt         *time.Time    `json:"paidAt"`
	CreatedAt      time.Time     `json:"createdAt"`
	User           UserRef       `json:"user"`
	Shipment       *BillShipment `json:"shipment"`
	Payments       []Payment     `json:"payments"`
}

// LatestPayment returns the newest payment; the backend sorts payments newest first.
func (b Bill) LatestPayment() (Payment, bool) {
	if len(b.Payments) == 0 {
		return Payment{}, false
	}
	return b.Payments[0], true
}

// AwaitingVerification reports whether the latest payment still needs an admin decision.
func (b Bill) AwaitingVerification() bool {
	p, ok := b.LatestPayment()
	return ok && p.Status == "PENDING"
}

// CountAwaitingVerification counts bills whose latest payment is PENDING.
func CountAwaitingVerification(bills []Bill) int {
	n := 0
	for i := range bills {
		if bills[i].AwaitingVerification() {
			n++
		}
	}
	return n
}

// NewBill is the manual bill create request.
type NewBill struct {
	ShipmentID     string   `json:"shipmentId"`
	ShippingFee    float64  `json:"shippingFee"`
	ClearingFee    float64  `json:"clearingFee"`
	AdditionalFees *float64 `json:"additionalFees,omitempty"`
}

// PaymentVerification approves or rejects an uploaded payment.
type PaymentVerification struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// BillGeneration is the backend's answer to "add details & generate bill".
// Every number is computed server-side; the console only displays them.
type BillGeneration struct {
	Bill struct {
		ID         string `json:"id"`
		BillNumber string `json:"billNumber"`
	} `json:"bill"`
	Shipment BilledShipment `json:"shipment"`
	Rate     struct {
		FreightCostUSD float64 `json:"freightCostUSD"`
		BillingUnit    string  `json:"billingUnit"`
	} `json:"rate"`
}

type BilledShipment struct {
	BillingMethod    string   `json:"billingMethod"`
	WeightKg         float64  `json:"weightKg"`
	VolumeCBM        *float64 `json:"volumeCBM"`
	FreightUSD       float64  `json:"freightUSD"`
	PackingFeeUSD    float64  `json:"packingFeeUSD"`
	ClearingFee      float64  `json:"clearingFee"`
	ClearingCurrency string   `json:"clearingCurrency"`
	LocalCurrency    string   `json:"localCurrency"`
	ExchangeRate     float64  `json:"exchangeRate"`
	TotalLocal       float64  `json:"totalLocal"`
}
