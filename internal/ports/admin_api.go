package ports

import (
	"context"
	"naiyuan-admin/internal/domain"
)

// Port: the backend admin API, split by page so handlers depend only on
// what they call.

type AuthAPI interface {
	// Login asks the backend to email a one-time code.
	Login(ctx context.Context, email string) error
	// VerifyOTP exchanges the code for a bearer token and stores it.
	VerifyOTP(ctx context.Context, email, code string) (string, error)
	Logout(ctx context.Context) error
}

type DashboardAPI interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}

type UsersAPI interface {
	Users(ctx context.Context, search string) ([]domain.User, error)
	User(ctx context.Context, id string) (*domain.User, error)
}

type PackagesAPI interface {
	Packages(ctx context.Context, status, search string) ([]domain.Package, error)
	Package(ctx context.Context, id string) (*domain.Package, error)
	UpdatePackage(ctx context.Context, id string, upd domain.PackageUpdate) error
	BulkUpdatePackageStatus(ctx context.Context, ids []string, status string) error
}

type ShipmentsAPI interface {
	Shipments(ctx context.Context, status, search string) ([]domain.Shipment, error)
	Shipment(ctx context.Context, id string) (*domain.Shipment, error)
	UpdateShipment(ctx context.Context, id string, fields map[string]any) error
	UpdateShipmentStatus(ctx context.Context, id string, upd domain.ShipmentStatusUpdate) error
	AddShipmentDetailsAndGenerateBill(ctx context.Context, id string, d domain.ShipmentDetails) (*domain.BillGeneration, error)
}

type MasterShipmentsAPI interface {
	MasterShipments(ctx context.Context, status string) ([]domain.MasterShipment, error)
	MasterShipment(ctx context.Context, id string) (*domain.MasterShipment, error)
	CreateMasterShipment(ctx context.Context, in domain.NewMasterShipment) (*domain.MasterShipment, error)
	UpdateMasterShipmentStatus(ctx context.Context, id string, upd domain.MasterStatusUpdate) error
}

type BillsAPI interface {
	Bills(ctx context.Context, status, search string) ([]domain.Bill, error)
	CreateBill(ctx context.Context, in domain.NewBill) (*domain.Bill, error)
	PendingPayments(ctx context.Context) ([]domain.Payment, error)
	VerifyPayment(ctx context.Context, paymentID string, v domain.PaymentVerification) error
}

type RatesAPI interface {
	ShippingRates(ctx context.Context) ([]domain.ShippingRate, error)
	CreateShippingRate(ctx context.Context, in domain.NewShippingRate) error
	UpdateShippingRate(ctx context.Context, id string, upd domain.ShippingRateUpdate) error
	DeleteShippingRate(ctx context.Context, id string) error
	ExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
	CreateExchangeRate(ctx context.Context, in domain.NewExchangeRate) error
}

type TrackingAPI interface {
	TrackingStatuses(ctx context.Context) ([]domain.TrackingStatus, error)
	CreateTrackingStatus(ctx context.Context, in domain.NewTrackingStatus) error
	UpdateTrackingStatus(ctx context.Context, id string, upd domain.LookupUpdate) error
	DeleteTrackingStatus(ctx context.Context, id string) error
	TrackingLocations(ctx context.Context) ([]domain.TrackingLocation, error)
	CreateTrackingLocation(ctx context.Context, in domain.NewTrackingLocation) error
	UpdateTrackingLocation(ctx context.Context, id string, upd domain.LookupUpdate) error
	DeleteTrackingLocation(ctx context.Context, id string) error
}

type ShipmentRequestsAPI interface {
	ShipmentRequests(ctx context.Context) ([]domain.Shipment, error)
	ApproveShipmentRequest(ctx context.Context, id string) error
	RejectShipmentRequest(ctx context.Context, id, reason string) error
}

type PickupsAPI interface {
	PickupRequests(ctx context.Context, status, date string) ([]domain.PickupRequest, error)
	UpdatePickupStatus(ctx context.Context, id string, upd domain.PickupStatusUpdate) error
	PickupSlots(ctx context.Context, date string) ([]domain.PickupSlot, error)
	CreatePickupSlot(ctx context.Context, in domain.NewPickupSlot) error
	BulkCreatePickupSlots(ctx context.Context, in domain.BulkPickupSlots) error
	UpdatePickupSlot(ctx context.Context, id string, upd domain.PickupSlotUpdate) error
	DeletePickupSlot(ctx context.Context, id string) error
}

type RewardsAPI interface {
	Referrals(ctx context.Context) ([]domain.Referral, error)
	LoyaltyTiers(ctx context.Context) ([]domain.LoyaltyTier, error)
	UpdateLoyaltyTier(ctx context.Context, id string, upd domain.LoyaltyTierUpdate) error
	Wallets(ctx context.Context, search string) ([]domain.Wallet, error)
	CreditWallet(ctx context.Context, userID string, adj domain.WalletAdjustment) error
	DebitWallet(ctx context.Context, userID string, adj domain.WalletAdjustment) error
	ReferralConfig(ctx context.Context) (*domain.ReferralConfig, error)
	UpdateReferralConfig(ctx context.Context, upd domain.ReferralConfigUpdate) error
}

// AdminAPI is everything the console can ask of the backend.
type AdminAPI interface {
	AuthAPI
	DashboardAPI
	UsersAPI
	PackagesAPI
	ShipmentsAPI
	MasterShipmentsAPI
	BillsAPI
	RatesAPI
	TrackingAPI
	ShipmentRequestsAPI
	PickupsAPI
	RewardsAPI
}
