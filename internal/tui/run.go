package tui

import (
	"context"
	"fmt"
	"naiyuan-admin/internal/platform/debounce"
	"naiyuan-admin/internal/platform/poll"
	"naiyuan-admin/internal/ports"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the interactive browser for entity and blocks until the user quits.
// Search input is debounced and the pending-payments count is polled in the
// background for as long as the browser is open.
func Run(ctx context.Context, api ports.AdminAPI, entity string) error {
	e, ok := Lookup(entity)
	if !ok {
		return fmt.Errorf("browse: unknown entity %q (one of: %s)", entity, strings.Join(Names(), ", "))
	}

	var p *tea.Program
	d := debounce.New(debounce.DefaultDelay, func(q string) {
		p.Send(SearchMsg{Query: q})
	})
	defer d.Stop()

	p = tea.NewProgram(NewModel(ctx, api, e, d.Trigger), tea.WithContext(ctx), tea.WithAltScreen())

	stop := poll.Start(ctx, poll.PendingPaymentsInterval, func(ctx context.Context) {
		payments, err := api.PendingPayments(ctx)
		if err != nil {
			return
		}
		p.Send(PendingMsg{Count: len(payments)})
	})
	defer stop()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
