package poll

import (
	"context"
	"time"
)

// PendingPaymentsInterval is how often the sidebar badge count refreshes.
const PendingPaymentsInterval = 30 * time.Second

// Every calls fn immediately and then once per interval until ctx is done.
// It blocks; run it in its own goroutine. Calls never overlap.
func Every(ctx context.Context, interval time.Duration, fn func(context.Context)) {
	if ctx.Err() != nil {
		return
	}
	fn(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}

// Start runs Every in a goroutine and returns a stop function that waits
// for it to exit.
func Start(ctx context.Context, interval time.Duration, fn func(context.Context)) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		Every(ctx, interval, fn)
	}()
	return func() {
		cancel()
		<-done
	}
}
