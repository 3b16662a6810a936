// Package ws pushes collection snapshots to connected UIs over WebSocket.
//
// A client receives the current snapshot of every collection right after
// connecting and then a fresh snapshot of a collection after each local
// write to it. Messages are JSON:
//
//	{"type":"snapshot","collection":"self","items":[...]}
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

const (
	sendBuffer     = 16
	maxMessageSize = 512
)

type lister interface {
	List(ctx context.Context, c domain.Collection) ([]domain.Item, error)
}

// Options configures a Hub.
type Options struct {
	// AllowedOrigins lists browser origins allowed to connect; "*" allows all.
	// Requests without an Origin header (native clients) are always allowed.
	AllowedOrigins []string
	PingInterval   time.Duration
	WriteTimeout   time.Duration
}

// Message is the JSON frame sent to clients.
type Message struct {
	Type       string            `json:"type"`
	Collection domain.Collection `json:"collection"`
	Items      []domain.Item     `json:"items"`
}

// Hub tracks connected clients and fans snapshots out to them.
type Hub struct {
	items    lister
	log      *slog.Logger
	opts     Options
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// NewHub creates a Hub. items provides the snapshot sent on connect.
func NewHub(items lister, logger *slog.Logger, opts Options) *Hub {
	if opts.PingInterval <= 0 {
		opts.PingInterval = 30 * time.Second
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	h := &Hub{
		items:   items,
		log:     logger.With("handler", "feed"),
		opts:    opts,
		clients: make(map[*client]struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

func (h *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return slices.Contains(h.opts.AllowedOrigins, "*") || slices.Contains(h.opts.AllowedOrigins, origin)
}

// Publish sends a collection snapshot to every client. It never blocks:
// a client whose buffer is full is disconnected and can reconnect for a
// fresh snapshot.
func (h *Hub) Publish(c domain.Collection, items []domain.Item) {
	msg, err := encode(c, items)
	if err != nil {
		h.log.Error("encode snapshot", slog.String("error", err.Error()))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients {
		select {
		case cl.send <- msg:
		default:
			h.log.Warn("feed client too slow, disconnecting")
			delete(h.clients, cl)
			cl.close()
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for cl := range h.clients {
		delete(h.clients, cl)
		cl.close()
	}
}

// ServeHTTP handles GET /v1/feed.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error response.
		h.log.WarnContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	if !h.register(r.Context(), cl) {
		conn.Close() //nolint:errcheck
		return
	}

	go h.writePump(cl)
	h.readPump(cl)
}

// register queues the initial snapshots and adds the client to the hub.
// The hub lock is held while listing so no Publish can slip in between
// the snapshot and the registration.
func (h *Hub) register(ctx context.Context, cl *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}

	for _, c := range domain.Collections {
		items, err := h.items.List(ctx, c)
		if err != nil {
			h.log.ErrorContext(ctx, "initial snapshot", slog.String("collection", c.String()), slog.String("error", err.Error()))
			return false
		}
		msg, err := encode(c, items)
		if err != nil {
			return false
		}
		cl.send <- msg
	}

	h.clients[cl] = struct{}{}
	h.log.DebugContext(ctx, "feed client connected", slog.Int("clients", len(h.clients)))
	return true
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		cl.close()
	}
}

// readPump discards client frames and detects disconnects. Clients are
// expected to answer pings within two intervals.
func (h *Hub) readPump(cl *client) {
	defer h.unregister(cl)

	deadline := 2 * h.opts.PingInterval
	cl.conn.SetReadLimit(maxMessageSize)
	cl.conn.SetReadDeadline(time.Now().Add(deadline)) //nolint:errcheck
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(deadline))
	})
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(cl *client) {
	ticker := time.NewTicker(h.opts.PingInterval)
	defer func() {
		ticker.Stop()
		cl.conn.Close() //nolint:errcheck
	}()

	for {
		select {
		case msg, ok := <-cl.send:
			cl.conn.SetWriteDeadline(time.Now().Add(h.opts.WriteTimeout)) //nolint:errcheck
			if !ok {
				cl.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "")) //nolint:errcheck
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			cl.conn.SetWriteDeadline(time.Now().Add(h.opts.WriteTimeout)) //nolint:errcheck
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func encode(c domain.Collection, items []domain.Item) ([]byte, error) {
	if items == nil {
		items = []domain.Item{}
	}
	return json.Marshal(Message{Type: "snapshot", Collection: c, Items: items})
}
