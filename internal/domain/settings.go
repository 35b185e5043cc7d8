package domain

import "time"

// ShippingRate is the per-category tariff the backend bills with.
type ShippingRate struct {
	ID               string    `json:"id"`
	Category         string    `json:"category"`
	Label            string    `json:"label"`
	BillingUnit      string    `json:"billingUnit"`
	FreightCostUSD   float64   `json:"freightCostUSD"`
	ClearingCost     float64   `json:"clearingCost"`
	ClearingCurrency string    `json:"clearingCurrency"`
	MinChargeUSD     float64   `json:"minChargeUSD"`
	Description      *string   `json:"description"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
}

type NewShippingRate struct {
	Category         string   `json:"category"`
	Label            string   `json:"label"`
	BillingUnit      string   `json:"billingUnit"`
	FreightCostUSD   float64  `json:"freightCostUSD"`
	ClearingCost     float64  `json:"clearingCost"`
	ClearingCurrency string   `json:"clearingCurrency"`
	MinChargeUSD     *float64 `json:"minChargeUSD,omitempty"`
	Description      string   `json:"description,omitempty"`
}

// ShippingRateUpdate is a partial rate update. A non-nil empty Description clears it.
type ShippingRateUpdate struct {
	FreightCostUSD *float64        `json:"freightCostUSD,omitempty"`
	ClearingCost   *float64        `json:"clearingCost,omitempty"`
	MinChargeUSD   *float64        `json:"minChargeUSD,omitempty"`
	Description    *NullableString `json:"description,omitempty"`
	IsActive       *bool           `json:"isActive,omitempty"`
}

// RateCategory describes one tariff category: its billing unit and clearing currency.
type RateCategory struct {
	Value    string
	Label    string
	Unit     string
	Currency string
}

var RateCategories = []RateCategory{
	{Value: "AIR_NORMAL", Label: "Air (Normal)", Unit: "kg", Currency: "NGN"},
	{Value: "AIR_SENSITIVE", Label: "Air (Sensitive)", Unit: "kg", Currency: "NGN"},
	{Value: "AIR_INTERNATIONAL", Label: "Air (International)", Unit: "kg", Currency: "USD"},
	{Value: "SEA_NIGERIA", Label: "Sea (Nigeria)", Unit: "cbm", Currency: "NGN"},
	{Value: "SEA_GHANA", Label: "Sea (Ghana)", Unit: "cbm", Currency: "GHS"},
	{Value: "SEA_INTERNATIONAL", Label: "Sea (International)", Unit: "kg", Currency: "USD"},
}

// LookupRateCategory finds a category by value.
func LookupRateCategory(value string) (RateCategory, bool) {
	for _, c := range RateCategories {
		if c.Value == value {
			return c, true
		}
	}
	return RateCategory{}, false
}

type ExchangeRate struct {
	ID            string     `json:"id"`
	FromCurrency  string     `json:"fromCurrency"`
	ToCurrency    string     `json:"toCurrency"`
	Rate          float64    `json:"rate"`
	EffectiveFrom time.Time  `json:"effectiveFrom"`
	EffectiveTo   *time.Time `json:"effectiveTo"`
}

type NewExchangeRate struct {
	FromCurrency string  `json:"fromCurrency"`
	ToCurrency   string  `json:"toCurrency"`
	Rate         float64 `json:"rate"`
}

// TrackingStatus is an admin-configurable step on a shipment's tracking timeline.
type TrackingStatus struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Label       string  `json:"label"`
	Description *string `json:"description"`
	Destination string  `json:"destination"`
	SortOrder   int     `json:"sortOrder"`
	IsActive    bool    `json:"isActive"`
}

// TrackingLocation is an admin-configurable place shown on the tracking timeline.
type TrackingLocation struct {
	ID        string  `json:"id"`
	Code      string  `json:"code"`
	Label     string  `json:"label"`
	Country   *string `json:"country"`
	SortOrder int     `json:"sortOrder"`
	IsActive  bool    `json:"isActive"`
}

type NewTrackingStatus struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sortOrder"`
	Destination string `json:"destination,omitempty"`
}

type NewTrackingLocation struct {
	Code      string `json:"code"`
	Label     string `json:"label"`
	Country   string `json:"country,omitempty"`
	SortOrder int    `json:"sortOrder"`
}

// LookupUpdate is a partial update of a tracking status or location.
// Description and Country are sent as null when set to an empty string.
type LookupUpdate struct {
	Label       *string         `json:"label,omitempty"`
	Description *NullableString `json:"description,omitempty"`
	Country     *NullableString `json:"country,omitempty"`
	SortOrder   *int            `json:"sortOrder,omitempty"`
	IsActive    *bool           `json:"isActive,omitempty"`
}

// NullableString marshals "" as JSON null.
type NullableString string

func (s NullableString) MarshalJSON() ([]byte, error) {
	if s == "" {
		return []byte("null"), nil
	}
	return marshalString(string(s))
}

// LookupCode normalizes an admin-typed code: upper case, whitespace runs become underscores.
func LookupCode(s string) string {
	return whitespaceRun.ReplaceAllString(upper(trimSpace(s)), "_")
}
