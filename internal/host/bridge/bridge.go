// Package bridge exposes the browser to the sidebar as a host.Client. The
// extension dials the bridge's WebSocket endpoint, answers queries, executes
// commands, and pushes host notifications. One extension connection is live
// at a time; a newer connection replaces the old one.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/atomicstack/tab-sidebar/internal/host"
	"github.com/atomicstack/tab-sidebar/internal/logging"
	"github.com/atomicstack/tab-sidebar/internal/logging/events"
)

// ErrNotConnected is returned for calls issued while no extension is
// attached to the bridge.
var ErrNotConnected = errors.New("no browser extension connected")

var upgrader = websocket.Upgrader{
	// The bridge binds to loopback; the extension connects from the local
	// browser, so origin checks stay permissive.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const eventBuffer = 32

// Bridge implements host.Client over a WebSocket connection to the browser
// extension.
type Bridge struct {
	addr   string
	events chan host.Event

	mu      sync.Mutex
	conn    *websocket.Conn
	pending map[string]chan inboundMessage
	closed  bool

	writeMu sync.Mutex
	nextID  atomic.Uint64

	server *http.Server
}

// New creates a bridge that will listen on addr once Start is called.
func New(addr string) *Bridge {
	return &Bridge{
		addr:    addr,
		events:  make(chan host.Event, eventBuffer),
		pending: make(map[string]chan inboundMessage),
	}
}

// Handler returns the HTTP handler serving the extension endpoint. Exposed
// separately from Start so tests can mount it on their own server.
func (b *Bridge) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/bridge", b.handleConnection)
	return mux
}

// Start begins listening for extension connections. It returns once the
// listener is active; serving continues in the background.
func (b *Bridge) Start() error {
	b.server = &http.Server{Addr: b.addr, Handler: b.Handler()}
	ln, err := net.Listen("tcp", b.addr)
	if err != nil {
		return fmt.Errorf("bridge listen on %s: %w", b.addr, err)
	}
	go func() {
		if err := b.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(err)
		}
	}()
	return nil
}

// Close shuts the bridge down and closes the event feed. The feed is closed
// under the same lock deliverEvent sends under, so a message racing shutdown
// is discarded instead of hitting a closed channel.
func (b *Bridge) Close() error {
	var err error
	if b.server != nil {
		err = b.server.Close()
	}
	b.mu.Lock()
	if b.conn != nil {
		b.conn.Close()
		b.conn = nil
	}
	b.failPendingLocked()
	if !b.closed {
		b.closed = true
		close(b.events)
	}
	b.mu.Unlock()
	return err
}

// Events implements host.Client.
func (b *Bridge) Events() <-chan host.Event {
	return b.events
}

func (b *Bridge) handleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error(fmt.Errorf("bridge upgrade: %w", err))
		return
	}

	b.mu.Lock()
	if b.conn != nil {
		b.conn.Close()
		b.failPendingLocked()
	}
	b.conn = conn
	b.mu.Unlock()
	events.Host.Connected(r.RemoteAddr)

	b.readLoop(conn)

	b.mu.Lock()
	if b.conn == conn {
		b.conn = nil
		b.failPendingLocked()
	}
	b.mu.Unlock()
	conn.Close()
	events.Host.Disconnected(r.RemoteAddr)
}

func (b *Bridge) readLoop(conn *websocket.Conn) {
	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Error(fmt.Errorf("bridge read: %w", err))
			}
			return
		}
		switch msg.Type {
		case msgEvent:
			b.deliverEvent(msg)
		case msgResponse:
			b.deliverResponse(msg)
		}
	}
}

func (b *Bridge) deliverEvent(msg inboundMessage) {
	evt := msg.toHostEvent()
	if evt.Kind == host.EventUnknown {
		return
	}
	events.Host.Event(evt.Kind.String(), evt.WindowID, evt.TabID)

	// Sending under the lock pairs with Close, which marks the bridge
	// closed before closing the feed.
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	select {
	case b.events <- evt:
	default:
		// Feed consumer is behind; the periodic resync recovers the gap.
		events.Host.Dropped(evt.Kind.String())
	}
}

func (b *Bridge) deliverResponse(msg inboundMessage) {
	b.mu.Lock()
	ch, ok := b.pending[msg.ID]
	if ok {
		delete(b.pending, msg.ID)
	}
	b.mu.Unlock()
	if ok {
		ch <- msg
	}
}

// call sends one outbound message and waits for the matching response.
func (b *Bridge) call(ctx context.Context, msg outboundMessage) (inboundMessage, error) {
	b.mu.Lock()
	conn := b.conn
	if conn == nil {
		b.mu.Unlock()
		return inboundMessage{}, ErrNotConnected
	}
	msg.ID = strconv.FormatUint(b.nextID.Add(1), 10)
	reply := make(chan inboundMessage, 1)
	b.pending[msg.ID] = reply
	b.mu.Unlock()

	b.writeMu.Lock()
	err := conn.WriteJSON(msg)
	b.writeMu.Unlock()
	if err != nil {
		b.forgetPending(msg.ID)
		return inboundMessage{}, fmt.Errorf("bridge write: %w", err)
	}

	select {
	case <-ctx.Done():
		b.forgetPending(msg.ID)
		return inboundMessage{}, ctx.Err()
	case resp, ok := <-reply:
		if !ok {
			return inboundMessage{}, ErrNotConnected
		}
		if !resp.OK {
			return inboundMessage{}, fmt.Errorf("host rejected %s: %s", callName(msg), resp.Error)
		}
		return resp, nil
	}
}

func (b *Bridge) forgetPending(id string) {
	b.mu.Lock()
	delete(b.pending, id)
	b.mu.Unlock()
}

// failPendingLocked resolves every in-flight call with a closed channel so
// waiters fail fast. Caller holds b.mu.
func (b *Bridge) failPendingLocked() {
	for id, ch := range b.pending {
		close(ch)
		delete(b.pending, id)
	}
}

func callName(msg outboundMessage) string {
	if msg.Command != "" {
		return msg.Command
	}
	return msg.Query
}

// Windows implements host.Client.
func (b *Bridge) Windows(ctx context.Context) ([]host.Window, error) {
	resp, err := b.call(ctx, outboundMessage{Type: msgQuery, Query: queryWindows})
	if err != nil {
		return nil, err
	}
	windows := make([]host.Window, len(resp.Windows))
	for i, w := range resp.Windows {
		windows[i] = w.toHost()
	}
	return windows, nil
}

// Groups implements host.Client.
func (b *Bridge) Groups(ctx context.Context) ([]host.TabGroup, error) {
	resp, err := b.call(ctx, outboundMessage{Type: msgQuery, Query: queryGroups})
	if err != nil {
		return nil, err
	}
	groups := make([]host.TabGroup, len(resp.Groups))
	for i, g := range resp.Groups {
		groups[i] = g.toHost()
	}
	return groups, nil
}

// LastFocusedWindow implements host.Client.
func (b *Bridge) LastFocusedWindow(ctx context.Context) (*host.Window, error) {
	resp, err := b.call(ctx, outboundMessage{Type: msgQuery, Query: queryLastFocused})
	if err != nil {
		return nil, err
	}
	if resp.Window == nil {
		return nil, nil
	}
	w := resp.Window.toHost()
	return &w, nil
}

// FocusWindow implements host.Client.
func (b *Bridge) FocusWindow(ctx context.Context, windowID int) error {
	_, err := b.call(ctx, outboundMessage{Type: msgCommand, Command: commandFocusWindow, WindowID: windowID})
	return err
}

// ActivateTab implements host.Client.
func (b *Bridge) ActivateTab(ctx context.Context, tabID int) error {
	_, err := b.call(ctx, outboundMessage{Type: msgCommand, Command: commandActivateTab, TabID: tabID})
	return err
}
