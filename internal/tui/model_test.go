package tui

import (
	"context"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/ports"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI implements only what the tests call; anything else panics.
type fakeAPI struct {
	ports.AdminAPI
	queries []string
	err     error
}

func (f *fakeAPI) Packages(ctx context.Context, status, search string) ([]domain.Package, error) {
	f.queries = append(f.queries, search)
	if f.err != nil {
		return nil, f.err
	}
	desc := "shoes"
	return []domain.Package{{ID: "p1", TrackingNumber: "NY-" + search, Description: &desc, Status: "EN_ROUTE"}}, nil
}

func newTestModel(t *testing.T, api ports.AdminAPI, search func(string)) Model {
	t.Helper()
	e, ok := Lookup("packages")
	require.True(t, ok)
	return NewModel(context.Background(), api, e, search)
}

func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestSearchMsgFetchesWithQuery(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(t, api, nil)

	next, cmd := m.Update(SearchMsg{Query: "abc"})
	m = next.(Model)
	assert.True(t, m.loading)

	next, _ = m.Update(run(cmd))
	m = next.(Model)

	assert.Equal(t, []string{"abc"}, api.queries)
	assert.False(t, m.loading)
	require.Len(t, m.rows, 1)
	assert.Equal(t, "NY-abc", m.rows[0].Cells[0])
}

func TestStaleResultsAreDropped(t *testing.T) {
	m := newTestModel(t, &fakeAPI{}, nil)

	next, _ := m.Update(SearchMsg{Query: "new"})
	m = next.(Model)

	next, _ = m.Update(rowsMsg{query: "old", rows: []Row{{ID: "stale"}}})
	m = next.(Model)
	assert.Empty(t, m.rows)
	assert.True(t, m.loading)

	next, _ = m.Update(rowsMsg{query: "new", rows: []Row{{ID: "fresh"}}})
	m = next.(Model)
	require.Len(t, m.rows, 1)
	assert.Equal(t, "fresh", m.rows[0].ID)
}

func TestTypingFeedsTheDebouncer(t *testing.T) {
	var got []string
	m := newTestModel(t, &fakeAPI{}, func(q string) { got = append(got, q) })

	for _, r := range "ab" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)

	assert.Equal(t, []string{"a", "ab"}, got)
}

func TestUnauthorizedShowsLoginHint(t *testing.T) {
	api := &fakeAPI{err: ports.ErrUnauthorized}
	m := newTestModel(t, api, nil)

	next, _ := m.Update(run(m.fetch("")))
	m = next.(Model)

	assert.Contains(t, m.View(), "adminctl login")
}

func TestViewShowsRowsAndPendingCount(t *testing.T) {
	m := newTestModel(t, &fakeAPI{}, nil)

	next, _ := m.Update(run(m.fetch("x")))
	m = next.(Model)
	assert.Empty(t, m.rows, "result for a query that was never requested")

	next, _ = m.Update(run(m.fetch("")))
	m = next.(Model)
	next, _ = m.Update(PendingMsg{Count: 120})
	m = next.(Model)

	out := m.View()
	assert.Contains(t, out, "NY-")
	assert.Contains(t, out, "EN ROUTE")
	assert.Contains(t, out, "99+ pending payments")
}

func TestFilterRows(t *testing.T) {
	rows := []Row{
		{ID: "1", Cells: []string{"NYS-001", "Ada Obi"}},
		{ID: "2", Cells: []string{"NYS-002", "Kofi Mensah"}},
	}
	got := filterRows(rows, " kofi ")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
	assert.Len(t, filterRows(rows, ""), 2)
	assert.Equal(t, "1", rows[0].ID)
}

func TestPadTruncates(t *testing.T) {
	assert.Equal(t, "abc  ", pad("abc", 5))
	assert.Equal(t, "abcd…", pad("abcdefgh", 5))
	assert.False(t, strings.HasSuffix(pad("ab", 2), " "))
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("trucks")
	assert.False(t, ok)
	assert.Contains(t, Names(), "bills")
}
