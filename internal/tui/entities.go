package tui

import (
	"context"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/ports"
	"naiyuan-admin/internal/view"
	"sort"
	"strings"
)

// Row is one rendered list line. Status, when set, is the last column and
// is colored.
type Row struct {
	ID     string
	Cells  []string
	Status string
}

// Entity is a list the browser can show.
type Entity struct {
	Name    string
	Title   string
	Columns []string
	Fetch   func(ctx context.Context, api ports.AdminAPI, query string) ([]Row, error)
}

var entities = map[string]Entity{
	"packages": {
		Name: "packages", Title: "Packages",
		Columns: []string{"Tracking", "Customer", "Description", "Status"},
		Fetch: func(ctx context.Context, api ports.AdminAPI, q string) ([]Row, error) {
			pkgs, err := api.Packages(ctx, "", q)
			rows := make([]Row, 0, len(pkgs))
			for _, p := range pkgs {
				rows = append(rows, Row{ID: p.ID, Cells: []string{p.TrackingNumber, p.User.FullName(), domain.Deref(p.Description)}, Status: p.Status})
			}
			return rows, err
		},
	},
	"shipments": {
		Name: "shipments", Title: "Shipments",
		Columns: []string{"Shipment", "Customer", "Method", "Status"},
		Fetch: func(ctx context.Context, api ports.AdminAPI, q string) ([]Row, error) {
			ships, err := api.Shipments(ctx, "", q)
			return shipmentRows(ships), err
		},
	},
	"requests": {
		Name: "requests", Title: "Shipment Requests",
		Columns: []string{"Shipment", "Customer", "Method", "Status"},
		Fetch: func(ctx context.Context, api ports.AdminAPI, q string) ([]Row, error) {
			ships, err := api.ShipmentRequests(ctx)
			return filterRows(shipmentRows(ships), q), err
		},
	},
	"master-shipments": {
		Name: "master-shipments", Title: "Master Shipments",
		Columns: []string{"Master tracking no.", "Method", "Shipments", "Status"},
		Fetch: func(ctx context.Context, api ports.AdminAPI, q string) ([]Row, error) {
			masters, err := api.MasterShipments(ctx, "")
			rows := make([]Row, 0, len(masters))
			for _, m := range masters {
				rows = append(rows, Row{ID: m.ID, Cells: []string{m.MasterTrackingNo, m.Method, itoa(len(m.Shipments))}, Status: m.Status})
			}
			return filterRows(rows, q), err
		},
	},
	"bills": {
		Name: "bills", Title: "Bills",
		Columns: []string{"Bill", "Customer", "Amount", "Payment", "Status"},
		Fetch: func(ctx context.Context, api ports.AdminAPI, q string) ([]Row, error) {
			bills, err := api.Bills(ctx, "", q)
			rows := make([]Row, 0, len(bills))
			for _, b := range bills {
				p, ok := b.LatestPayment()
				pay := view.PaymentBadgeFor(view.PaymentState(b.Status, p.Status, ok))
				rows = append(rows, Row{ID: b.ID, Cells: []string{b.BillNumber, b.User.FullName(), view.FormatCurrency(b.TotalAmount, "NGN"), pay.Label}, Status: b.Status})
			}
			return rows, err
		},
	},
	"pickups": {
		Name: "pickups", Title: "Pickup Requests",
		Columns: []string{"Customer", "Shipment", "Date", "Warehouse", "Status"},
		Fetch: func(ctx context.Context, api ports.AdminAPI, q string) ([]Row, error) {
			reqs, err := api.PickupRequests(ctx, "", "")
			rows := make([]Row, 0, len(reqs))
			for _, p := range reqs {
				rows = append(rows, Row{ID: p.ID, Cells: []string{p.User.FullName(), p.Shipment.ShipmentNumber, view.FormatDay(p.ScheduledDate), p.WarehouseName}, Status: p.Status})
			}
			return filterRows(rows, q), err
		},
	},
	"users": {
		Name: "users", Title: "Users",
		Columns: []string{"Name", "Email", "Account", "Shipments"},
		Fetch: func(ctx context.Context, api ports.AdminAPI, q string) ([]Row, error) {
			users, err := api.Users(ctx, q)
			rows := make([]Row, 0, len(users))
			for _, u := range users {
				rows = append(rows, Row{ID: u.ID, Cells: []string{u.FullName(), u.Email, view.Humanize(u.AccountType), itoa(u.Count.Shipments)}})
			}
			return rows, err
		},
	},
	"wallets": {
		Name: "wallets", Title: "Wallets",
		Columns: []string{"Customer", "Email", "Balance"},
		Fetch: func(ctx context.Context, api ports.AdminAPI, q string) ([]Row, error) {
			wallets, err := api.Wallets(ctx, q)
			rows := make([]Row, 0, len(wallets))
			for _, w := range wallets {
				rows = append(rows, Row{ID: w.UserID, Cells: []string{w.User.FullName(), w.User.Email, view.FormatCurrency(w.Balance, "NGN")}})
			}
			return rows, err
		},
	},
}

// Lookup returns the entity registered under name.
func Lookup(name string) (Entity, bool) {
	e, ok := entities[name]
	return e, ok
}

// Names lists the browsable entities in alphabetical order.
func Names() []string {
	out := make([]string, 0, len(entities))
	for n := range entities {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func shipmentRows(ships []domain.Shipment) []Row {
	rows := make([]Row, 0, len(ships))
	for _, s := range ships {
		rows = append(rows, Row{ID: s.ID, Cells: []string{s.ShipmentNumber, s.User.FullName(), s.Method}, Status: s.Status})
	}
	return rows
}

// filterRows does a case-insensitive substring match for endpoints that
// take no search parameter.
func filterRows(rows []Row, q string) []Row {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return rows
	}
	var out []Row
	for _, r := range rows {
		for _, c := range r.Cells {
			if strings.Contains(strings.ToLower(c), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func itoa(n int) string {
	return view.FormatNumber(float64(n))
}
