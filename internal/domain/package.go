package domain

import "time"

// Represents a single inbound parcel received for a customer.
// A Package has a unique tracking number and moves through the
// PackageStatuses as it is consolidated into shipments.
type Package struct {
	ID             string    `json:"id"`
	TrackingNumber string    `json:"trackingNumber"`
	Description    *string   `json:"description"`
	Status         string    `json:"status"`
	PhotoURLs      []string  `json:"photoUrls"`
	WarehouseNotes *string   `json:"warehouseNotes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	User           UserRef   `json:"user"`
}

// PackageUpdate carries only the fields an admin changed. Nil fields are omitted.
type PackageUpdate struct {
	Status         *string   `json:"status,omitempty"`
	Description    *string   `json:"description,omitempty"`
	WarehouseNotes *string   `json:"warehouseNotes,omitempty"`
	PhotoURLs      *[]string `json:"photoUrls,omitempty"`
}

// Empty reports whether the update would not change anything.
func (u PackageUpdate) Empty() bool {
	return u.Status == nil && u.Description == nil && u.WarehouseNotes == nil && u.PhotoURLs == nil
}

// Diff builds the update that turns p into the submitted values.
// photoLines is one URL per line; blank lines are dropped.
func (p *Package) Diff(status, description, warehouseNotes string, photoLines []string) PackageUpdate {
	var u PackageUpdate
	if status != p.Status {
		u.Status = &status
	}
	if description != deref(p.Description) {
		u.Description = &description
	}
	if warehouseNotes != deref(p.WarehouseNotes) {
		u.WarehouseNotes = &warehouseNotes
	}

	urls := ValidPhotoURLs(photoLines)
	if !equalStrings(urls, p.PhotoURLs) {
		u.PhotoURLs = &urls
	}
	return u
}

// ValidPhotoURLs trims each line and drops the blank ones.
func ValidPhotoURLs(lines []string) []string {
	urls := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = trimSpace(l); l != "" {
			urls = append(urls, l)
		}
	}
	return urls
}
