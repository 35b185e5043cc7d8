package commands

import (
	"fmt"
	"io"
	"naiyuan-admin/internal/tui"
	"naiyuan-admin/internal/view"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#64748b")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#059669"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b")).Width(22)
)

// printTable writes rows under headers, or an empty-state line.
func printTable(w io.Writer, empty string, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, empty)
		return
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#cbd5e1"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

// printFields writes label/value pairs one per line.
func printFields(w io.Writer, pairs ...string) {
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintln(w, labelStyle.Render(pairs[i])+pairs[i+1])
	}
}

func printDone(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}

func status(s string) string { return tui.RenderStatus(s) }

func dateOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return view.FormatDate(*t)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func floatOrDash(f *float64, unit string) string {
	if f == nil {
		return "-"
	}
	return view.FormatNumber(*f) + unit
}

// changedFloat returns &v only when the flag was given.
func changedFloat(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func changedInt(cmd *cobra.Command, name string, v int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}
