// Package backend pumps host notifications into the UI and layers a periodic
// resync on top, so a dropped or missed notification degrades into a slightly
// late rebuild instead of a permanently stale tree.
package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/tab-sidebar/internal/host"
)

// Kind represents the type of event emitted by the watcher.
type Kind int

const (
	// KindHostEvent wraps one notification from the host feed.
	KindHostEvent Kind = iota
	// KindResync is the periodic structural catch-up tick.
	KindResync
)

// Event is one watcher emission. Host is only meaningful for KindHostEvent.
type Event struct {
	Kind Kind
	Host host.Event
}

// Watcher forwards the host event feed and emits resync ticks.
type Watcher struct {
	feed     <-chan host.Event
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// minResyncGap guards against pathologically small resync intervals.
const minResyncGap = 250 * time.Millisecond

// NewWatcher starts forwarding the feed immediately. A non-positive interval
// disables resync ticks.
func NewWatcher(feed <-chan host.Event, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		feed:     feed,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startForwarder()
	if interval > 0 {
		w.startResyncTicker()
	}

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the watcher's event channel.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Goroutines exit after their current emission;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all watcher goroutines have exited and the events
// channel is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startForwarder() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-w.ctx.Done():
				return
			case evt, ok := <-w.feed:
				if !ok {
					return
				}
				select {
				case <-w.ctx.Done():
					return
				case w.events <- Event{Kind: KindHostEvent, Host: evt}:
				}
			}
		}
	}()
}

// resyncGate enforces a minimum spacing between resync emissions, so a
// misconfigured tiny interval cannot stampede the host with full fetches.
type resyncGate struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newResyncGate(interval time.Duration) *resyncGate {
	return &resyncGate{interval: interval}
}

// wait blocks until the minimum spacing since the previous emission has
// elapsed, then claims the next slot.
func (g *resyncGate) wait() {
	if g == nil || g.interval <= 0 {
		return
	}
	for {
		g.mu.Lock()
		remaining := time.Until(g.next)
		if remaining <= 0 {
			g.next = time.Now().Add(g.interval)
			g.mu.Unlock()
			return
		}
		g.mu.Unlock()
		time.Sleep(remaining)
	}
}

func (w *Watcher) startResyncTicker() {
	gate := newResyncGate(minResyncGap)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				gate.wait()
				select {
				case <-w.ctx.Done():
					return
				case w.events <- Event{Kind: KindResync}:
				}
			}
		}
	}()
}
