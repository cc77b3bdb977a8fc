package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans cart-change events out to connected WebSocket clients so a page
// holding a cart badge learns about mutations made elsewhere. Clients filter
// by session id themselves; the event carries no cart data, only the cue to
// re-fetch.
type Hub struct {
	bus Bus

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub(bus Bus) *Hub {
	return &Hub{
		bus:     bus,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Run forwards bus events to all clients until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	ch, cancel := h.bus.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			h.broadcast(ev)
		}
	}
}

func (h *Hub) broadcast(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Register adds a connection and blocks reading it until the peer goes away,
// then removes it.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
