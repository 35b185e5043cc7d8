package domain

import "time"

// UserRef is the owner summary embedded in most backend payloads.
type UserRef struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     *string `json:"phone,omitempty"`
}

func (u UserRef) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserCounts mirrors the backend's per-user relation counters.
type UserCounts struct {
	Packages  int `json:"packages"`
	Shipments int `json:"shipments"`
	Bills     int `json:"bills"`
}

// Represents a customer or staff account as listed on the users page.
type User struct {
	UserRef
	AccountType string     `json:"accountType"`
	Role        string     `json:"role"`
	IsVerified  bool       `json:"isVerified"`
	CreatedAt   time.Time  `json:"createdAt"`
	Count       UserCounts `json:"_count"`
}
