package view

import "strings"

// NavItem is one sidebar entry.
type NavItem struct {
	Label string
	Href  string
	Icon  string
	// Badge is true for the entry that shows the pending-payments count.
	Badge bool
}

var Nav = []NavItem{
	{Label: "Dashboard", Href: "/", Icon: "▦"},
	{Label: "Packages", Href: "/packages", Icon: "▣"},
	{Label: "Shipment Requests", Href: "/shipment-requests", Icon: "✉"},
	{Label: "Shipments", Href: "/shipments", Icon: "⇆"},
	{Label: "Master Shipments", Href: "/master-shipments", Icon: "⛴"},
	{Label: "Bills", Href: "/bills", Icon: "₦", Badge: true},
	{Label: "Pickups", Href: "/pickups", Icon: "⌂"},
	{Label: "Rewards", Href: "/rewards", Icon: "★"},
	{Label: "Users", Href: "/users", Icon: "☺"},
	{Label: "Settings", Href: "/settings", Icon: "⚙"},
}

// NavActive reports whether the entry at href is highlighted for path.
// "/" matches only the dashboard itself; others match by prefix.
func NavActive(href, path string) bool {
	if href == "/" {
		return path == "/"
	}
	return path == href || strings.HasPrefix(path, href+"/")
}
