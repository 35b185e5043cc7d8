package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
	done  chan struct{}
}

func (r *recorder) fn(v string) {
	r.mu.Lock()
	r.calls = append(r.calls, v)
	r.mu.Unlock()
	r.done <- struct{}{}
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func TestRapidChangesCollapseToFinalValue(t *testing.T) {
	rec := &recorder{done: make(chan struct{}, 4)}
	d := New(50*time.Millisecond, rec.fn)

	for _, v := range []string{"l", "la", "lag", "lago", "lagos"} {
		d.Trigger(v)
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-rec.done:
	case <-time.After(time.Second):
		t.Fatal("debounced call never happened")
	}
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, []string{"lagos"}, rec.snapshot())
}

func TestSeparatedChangesEachFire(t *testing.T) {
	rec := &recorder{done: make(chan struct{}, 4)}
	d := New(20*time.Millisecond, rec.fn)

	d.Trigger("a")
	<-rec.done
	d.Trigger("b")
	<-rec.done

	assert.Equal(t, []string{"a", "b"}, rec.snapshot())
}

func TestStopCancelsPending(t *testing.T) {
	rec := &recorder{done: make(chan struct{}, 4)}
	d := New(20*time.Millisecond, rec.fn)

	d.Trigger("a")
	d.Stop()
	time.Sleep(60 * time.Millisecond)

	require.Empty(t, rec.snapshot())
}
