package domain

import "time"

type SlotWindow struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// PickupRequest is a customer's booking to collect a shipment from a warehouse.
type PickupRequest struct {
	ID            string       `json:"id"`
	Status        string       `json:"status"`
	PickupType    string       `json:"pickupType"`
	DelegateName  *string      `json:"delegateName"`
	DelegatePhone *string      `json:"delegatePhone"`
	ScheduledDate string       `json:"scheduledDate"`
	ScheduledTime string       `json:"scheduledTime"`
	WarehouseName string       `json:"warehouseName"`
	Notes         *string      `json:"notes"`
	CompletedAt   *time.Time   `json:"completedAt"`
	CreatedAt     time.Time    `json:"createdAt"`
	User          UserRef      `json:"user"`
	Shipment      BillShipment `json:"shipment"`
	PickupSlot    *SlotWindow  `json:"pickupSlot"`
}

// PickupSlot is an admin-defined bookable time window for package collection.
type PickupSlot struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	MaxPickups  int    `json:"maxPickups"`
	BookedCount int    `json:"bookedCount"`
	IsActive    bool   `json:"isActive"`
}

// Full reports whether every place in the slot is booked.
func (s PickupSlot) Full() bool {
	return s.MaxPickups > 0 && s.BookedCount >= s.MaxPickups
}

type PickupStatusUpdate struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

type NewPickupSlot struct {
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	MaxPickups *int   `json:"maxPickups,omitempty"`
}

type SlotTime struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BulkPickupSlots creates several windows on one date.
type BulkPickupSlots struct {
	Date       string     `json:"date"`
	Slots      []SlotTime `json:"slots"`
	MaxPickups *int       `json:"maxPickups,omitempty"`
}

// ValidSlots keeps only windows with both ends set.
func ValidSlots(slots []SlotTime) []SlotTime {
	out := make([]SlotTime, 0, len(slots))
	for _, s := range slots {
		if s.StartTime != "" && s.EndTime != "" {
			out = append(out, s)
		}
	}
	return out
}

type PickupSlotUpdate struct {
	MaxPickups *int  `json:"maxPickups,omitempty"`
	IsActive   *bool `json:"isActive,omitempty"`
}
