package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFeed implementa Feed en memoria.
type fakeFeed struct {
	mu      sync.Mutex
	items   []Notification
	fetches int
	failOn  string // "fetch" | "markread" | "markall"
}

func (f *fakeFeed) Fetch(_ context.Context, limit, _ int) ([]Notification, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.failOn == "fetch" {
		return nil, 0, errors.New("api caída")
	}
	unread := 0
	for _, n := range f.items {
		if !n.Read {
			unread++
		}
	}
	out := f.items
	if len(out) > limit {
		out = out[:limit]
	}
	return append([]Notification(nil), out...), unread, nil
}

func (f *fakeFeed) MarkRead(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == "markread" {
		return errors.New("api caída")
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return nil
		}
	}
	return errors.New("no existe")
}

func (f *fakeFeed) MarkAllRead(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == "markall" {
		return errors.New("api caída")
	}
	for i := range f.items {
		f.items[i].Read = true
	}
	return nil
}

func (f *fakeFeed) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func twoUnread() *fakeFeed {
	return &fakeFeed{items: []Notification{
		{ID: "n1", Title: "Factura vencida"},
		{ID: "n2", Title: "Contrato por vencer"},
	}}
}

func TestPoller_PollActualizaSnapshot(t *testing.T) {
	feed := twoUnread()
	p := NewPoller(feed, time.Minute, 20, nil)

	p.Poll(context.Background())

	snap := p.Snapshot()
	assert.Len(t, snap.Items, 2)
	assert.Equal(t, 2, snap.UnreadCount)
	assert.NoError(t, snap.LastErr)
	assert.False(t, snap.LastPollAt.IsZero())
}

func TestPoller_MarkReadOptimistaYConfirmado(t *testing.T) {
	feed := twoUnread()
	p := NewPoller(feed, time.Minute, 20, nil)
	p.Poll(context.Background())

	require.NoError(t, p.MarkRead(context.Background(), "n1"))

	snap := p.Snapshot()
	assert.Equal(t, 1, snap.UnreadCount)
	assert.True(t, snap.Items[0].Read)
}

func TestPoller_MarkReadFalla_RestauraEstado(t *testing.T) {
	feed := twoUnread()
	p := NewPoller(feed, time.Minute, 20, nil)
	p.Poll(context.Background())

	feed.failOn = "markread"
	err := p.MarkRead(context.Background(), "n1")
	require.Error(t, err)

	snap := p.Snapshot()
	assert.Equal(t, 2, snap.UnreadCount, "el contador se restaura")
	assert.False(t, snap.Items[0].Read)
}

func TestPoller_MarkAllRead(t *testing.T) {
	feed := twoUnread()
	p := NewPoller(feed, time.Minute, 20, nil)
	p.Poll(context.Background())

	require.NoError(t, p.MarkAllRead(context.Background()))

	snap := p.Snapshot()
	assert.Equal(t, 0, snap.UnreadCount)
	for _, n := range snap.Items {
		assert.True(t, n.Read)
	}
}

func TestPoller_MarkAllReadFalla_Restaura(t *testing.T) {
	feed := twoUnread()
	p := NewPoller(feed, time.Minute, 20, nil)
	p.Poll(context.Background())

	feed.failOn = "markall"
	require.Error(t, p.MarkAllRead(context.Background()))

	snap := p.Snapshot()
	assert.Equal(t, 2, snap.UnreadCount)
}

func TestPoller_FetchFalla_ConservaEstadoAnterior(t *testing.T) {
	feed := twoUnread()
	p := NewPoller(feed, time.Minute, 20, nil)
	p.Poll(context.Background())

	feed.failOn = "fetch"
	p.Poll(context.Background())

	snap := p.Snapshot()
	assert.Error(t, snap.LastErr, "el error queda visible")
	assert.Len(t, snap.Items, 2, "la última página buena se conserva")
	assert.Equal(t, 2, snap.UnreadCount)
}

func TestPoller_RunSeDetieneAlCancelar(t *testing.T) {
	feed := twoUnread()
	p := NewPoller(feed, 5*time.Millisecond, 20, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	// Esperar a que haya al menos dos sondeos (el inmediato y uno del ticker).
	require.Eventually(t, func() bool { return feed.fetchCount() >= 2 },
		time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run no terminó tras cancelar el context")
	}

	n := feed.fetchCount()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, feed.fetchCount(), "no debe seguir sondeando tras cancelar")
}
