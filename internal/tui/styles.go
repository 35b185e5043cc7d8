package tui

import (
	"naiyuan-admin/internal/view"

	"github.com/charmbracelet/lipgloss"
)

// Terminal equivalents of the web console's Tailwind palette (the -500 shades).
var paletteColors = map[string]lipgloss.Color{
	"amber":   lipgloss.Color("#f59e0b"),
	"emerald": lipgloss.Color("#10b981"),
	"blue":    lipgloss.Color("#3b82f6"),
	"violet":  lipgloss.Color("#8b5cf6"),
	"orange":  lipgloss.Color("#f97316"),
	"cyan":    lipgloss.Color("#06b6d4"),
	"indigo":  lipgloss.Color("#6366f1"),
	"sky":     lipgloss.Color("#0ea5e9"),
	"teal":    lipgloss.Color("#14b8a6"),
	"red":     lipgloss.Color("#ef4444"),
	"yellow":  lipgloss.Color("#eab308"),
	"gray":    lipgloss.Color("#6b7280"),
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1d4ed8"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#64748b"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("#dbeafe")).Foreground(lipgloss.Color("#0f172a"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626"))
	badgeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#f59e0b")).Padding(0, 1)
)

// statusStyle colors a status the same way the web badge does.
func statusStyle(status string) lipgloss.Style {
	c, ok := paletteColors[view.Palette(status)]
	if !ok {
		c = paletteColors["gray"]
	}
	return lipgloss.NewStyle().Foreground(c)
}

// RenderStatus is a humanized, colored status for plain CLI output.
func RenderStatus(status string) string {
	return statusStyle(status).Render(view.Humanize(status))
}
