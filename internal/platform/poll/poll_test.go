package poll

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStartPollsUntilStopped(t *testing.T) {
	var calls atomic.Int32
	stop := Start(context.Background(), 10*time.Millisecond, func(context.Context) {
		calls.Add(1)
	})

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	stop()

	after := calls.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestEveryReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	var calls atomic.Int32

	go func() {
		defer close(done)
		Every(ctx, time.Hour, func(context.Context) { calls.Add(1) })
	}()

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Every did not return after cancel")
	}
}

func TestEveryWithCancelledContextDoesNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	Every(ctx, time.Millisecond, func(context.Context) { called = true })
	assert.False(t, called)
}
