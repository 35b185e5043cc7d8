package tui

import (
	"context"
	"errors"
	"fmt"
	"naiyuan-admin/internal/ports"
	"naiyuan-admin/internal/view"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxCellWidth = 32

// SearchMsg asks the model to fetch rows for Query. The debouncer sends it
// once typing has paused.
type SearchMsg struct {
	Query string
}

// PendingMsg carries a fresh pending-payments count.
type PendingMsg struct {
	Count int
}

type rowsMsg struct {
	query string
	rows  []Row
	err   error
}

// Model is the bubbletea model behind `adminctl browse`.
type Model struct {
	ctx    context.Context
	api    ports.AdminAPI
	entity Entity
	search func(string)

	input   textinput.Model
	spinner spinner.Model

	query   string
	rows    []Row
	cursor  int
	loading bool
	err     string
	pending int
	height  int
}

// NewModel builds a browser for one entity. search receives every change of
// the search box and is expected to answer with a SearchMsg later.
func NewModel(ctx context.Context, api ports.AdminAPI, e Entity, search func(string)) Model {
	in := textinput.New()
	in.Placeholder = "Search " + strings.ToLower(e.Title)
	in.Prompt = "/ "
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		api:     api,
		entity:  e,
		search:  search,
		input:   in,
		spinner: sp,
		loading: true,
		height:  20,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.fetch(""))
}

func (m Model) fetch(q string) tea.Cmd {
	return func() tea.Msg {
		rows, err := m.entity.Fetch(m.ctx, m.api, q)
		return rowsMsg{query: q, rows: rows, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != before && m.search != nil {
			m.search(v)
		}
		return m, cmd

	case SearchMsg:
		m.query = msg.Query
		m.loading = true
		return m, m.fetch(msg.Query)

	case rowsMsg:
		// A slower answer for an older query must not overwrite a newer one.
		if msg.query != m.query {
			return m, nil
		}
		m.loading = false
		m.err = ""
		m.rows = msg.rows
		if msg.err != nil {
			m.err = describe(msg.err)
		}
		if m.cursor >= len(m.rows) {
			m.cursor = max(len(m.rows)-1, 0)
		}
		return m, nil

	case PendingMsg:
		m.pending = msg.Count
		return m, nil

	case tea.WindowSizeMsg:
		m.height = max(msg.Height-8, 5)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func describe(err error) string {
	switch {
	case errors.Is(err, ports.ErrUnauthorized):
		return "Your session has expired. Run `adminctl login`."
	default:
		return err.Error()
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Naiyuan · " + m.entity.Title))
	if m.pending > 0 {
		b.WriteString("  " + badgeStyle.Render(view.BadgeCount(m.pending)+" pending payment"+view.Plural(m.pending)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != "":
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading…\n")
	case len(m.rows) == 0:
		b.WriteString(mutedStyle.Render("Nothing found"))
		b.WriteString("\n")
	default:
		b.WriteString(m.table())
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d row%s · ↑/↓ move · esc quit", len(m.rows), view.Plural(len(m.rows)))))
	return b.String()
}

func (m Model) table() string {
	widths := make([]int, len(m.entity.Columns))
	for i, c := range m.entity.Columns {
		widths[i] = lipgloss.Width(c)
	}
	for _, r := range m.rows {
		for i, c := range m.cells(r) {
			if i < len(widths) {
				widths[i] = min(max(widths[i], lipgloss.Width(c)), maxCellWidth)
			}
		}
	}

	var b strings.Builder
	header := make([]string, len(m.entity.Columns))
	for i, c := range m.entity.Columns {
		header[i] = pad(c, widths[i])
	}
	b.WriteString(headerStyle.Render(strings.Join(header, "  ")))
	b.WriteString("\n")

	start := 0
	if m.cursor >= m.height {
		start = m.cursor - m.height + 1
	}
	end := min(start+m.height, len(m.rows))
	for i := start; i < end; i++ {
		r := m.rows[i]
		cells := m.cells(r)
		parts := make([]string, len(cells))
		for j, c := range cells {
			parts[j] = pad(c, widths[j])
		}
		if r.Status != "" {
			last := len(parts) - 1
			parts[last] = statusStyle(r.Status).Render(parts[last])
		}
		line := strings.Join(parts, "  ")
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) cells(r Row) []string {
	if r.Status == "" {
		return r.Cells
	}
	return append(append([]string(nil), r.Cells...), view.Humanize(r.Status))
}

func pad(s string, width int) string {
	if lipgloss.Width(s) > width {
		runes := []rune(s)
		if len(runes) > width-1 && width > 1 {
			s = string(runes[:width-1]) + "…"
		}
	}
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
