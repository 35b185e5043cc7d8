package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period before a search triggers a fetch.
const DefaultDelay = 400 * time.Millisecond

// Debouncer collapses bursts of values into one call with the last value,
// made once no new value has arrived for the delay.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Trigger records v and restarts the quiet period.
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current := gen == d.gen
		d.mu.Unlock()
		if current {
			d.fn(v)
		}
	})
}

// Stop cancels a pending call.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
}
