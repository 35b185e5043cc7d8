package domain

// ValidationError is an input problem caught before any backend call.
// Its text is shown to the admin as is.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrNoShipmentsSelected ValidationError = "Select at least one shipment"
	ErrWeightRequired      ValidationError = "Weight is required"
	ErrVolumeRequired      ValidationError = "Volume (CBM) is required for volume-based billing"
	ErrNoTrackingStatus    ValidationError = "Select a tracking status"
	ErrNoLocation          ValidationError = "Select a location"
	ErrInvalidAmount       ValidationError = "Enter a valid amount"
	ErrNoDescription       ValidationError = "Enter a description"
	ErrNoSlots             ValidationError = "Please add at least one valid slot"
	ErrNoToken             ValidationError = "Login failed — no token received"
)

// Validate checks the details-and-bill input.
func (d ShipmentDetails) Validate() error {
	if d.WeightKg <= 0 {
		return ErrWeightRequired
	}
	if d.BillingMethod == BillingByVolume && (d.VolumeCBM == nil || *d.VolumeCBM <= 0) {
		return ErrVolumeRequired
	}
	return nil
}

func (m NewMasterShipment) Validate() error {
	if len(m.ShipmentIDs) == 0 {
		return ErrNoShipmentsSelected
	}
	return nil
}

func (a WalletAdjustment) Validate() error {
	if a.Amount <= 0 {
		return ErrInvalidAmount
	}
	if trimSpace(a.Description) == "" {
		return ErrNoDescription
	}
	return nil
}

// Validate drops incomplete windows and fails when none remain.
func (b *BulkPickupSlots) Validate() error {
	b.Slots = ValidSlots(b.Slots)
	if len(b.Slots) == 0 {
		return ErrNoSlots
	}
	return nil
}
