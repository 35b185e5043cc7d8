package domain

type StatusCount struct {
	Status string `json:"status"`
	Count  struct {
		Status int `json:"status"`
	} `json:"_count"`
}

// Dashboard is the overview returned by GET /admin/dashboard.
type Dashboard struct {
	TotalUsers       int           `json:"totalUsers"`
	TotalPackages    int           `json:"totalPackages"`
	PackagesByStatus []StatusCount `json:"packagesByStatus"`
	TotalShipments   int           `json:"totalShipments"`
	PendingShipments int           `json:"pendingShipments"`
	TotalRevenue     float64       `json:"totalRevenue"`
	PendingPayments  int           `json:"pendingPayments"`
}
