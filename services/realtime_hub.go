package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	Email string
	Conn  *websocket.Conn

	// gorilla/websocket allows one writer at a time; every write to Conn
	// (broadcasts and keepalive pings) must go through WriteMessage.
	writeMu sync.Mutex
}

func (c *WSClient) WriteMessage(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// RealtimeHub fans food lifecycle events out to websocket clients,
// grouped by the owner email they subscribed with.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.Email] == nil {
		h.clients[c.Email] = make(map[*WSClient]struct{})
	}
	h.clients[c.Email][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.Email]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.Email)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Broadcast(email string, payload interface{}) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[email] {
		_ = c.WriteMessage(websocket.TextMessage, msg)
	}
}
