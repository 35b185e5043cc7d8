package domain

// Status values the backend accepts for each entity. Lists are in workflow order.
var (
	PackageStatuses        = []string{"EN_ROUTE", "ARRIVED", "IN_SHIPMENT", "DELIVERED"}
	ShipmentStatuses       = []string{"REQUESTED", "PROCESSING", "SHIPPED", "IN_TRANSIT", "ARRIVED", "OUT_FOR_DELIVERY", "DELIVERED", "CANCELLED"}
	MasterShipmentStatuses = []string{"PROCESSING", "SHIPPED", "IN_TRANSIT", "ARRIVED", "OUT_FOR_DELIVERY", "DELIVERED", "CANCELLED"}
	BillStatuses           = []string{"PENDING", "PAID", "OVERDUE", "CANCELLED"}
	PickupStatuses         = []string{"PENDING", "CONFIRMED", "COMPLETED", "CANCELLED"}
)

const (
	MethodAir = "AIR"
	MethodSea = "SEA"

	BillingByWeight = "WEIGHT"
	BillingByVolume = "VOLUME"

	PaymentApproved = "APPROVED"
	PaymentRejected = "REJECTED"
)

// Origin warehouses shipments are consolidated from.
var Routes = []Route{
	{Name: "GUANGZHOU", Label: "Guangzhou", City: "Guangzhou, China", Description: "Main hub for general cargo and electronics"},
	{Name: "YIWU", Label: "Yiwu", City: "Yiwu, China", Description: "Small commodities and wholesale market goods"},
	{Name: "SHENZHEN", Label: "Shenzhen", City: "Shenzhen, China", Description: "Electronics, tech products, and accessories"},
}

type Route struct {
	Name        string
	Label       string
	City        string
	Description string
}

// Destination codes used by master shipments and tracking statuses.
// "ALL" marks a tracking status shared by every destination.
var Destinations = []Option{
	{Value: "ALL", Label: "Common (All Destinations)"},
	{Value: "LAGOS_NIGERIA", Label: "Lagos, Nigeria"},
	{Value: "ABUJA_NIGERIA", Label: "Abuja, Nigeria"},
	{Value: "GHANA", Label: "Ghana"},
	{Value: "UK", Label: "United Kingdom"},
	{Value: "USA", Label: "United States"},
	{Value: "ITALY", Label: "Italy"},
	{Value: "CANADA", Label: "Canada"},
	{Value: "UAE", Label: "UAE"},
}

// Option is a value/label pair for select inputs.
type Option struct {
	Value string
	Label string
}

// Contains reports whether v is one of values.
func Contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
