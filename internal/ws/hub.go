package ws

import (
	"encoding/json"
	"sync"
)

// ChangeEvent tells connected consoles that an entity changed so they can
// re-fetch authoritative state instead of trusting local copies.
type ChangeEvent struct {
	Entity string `json:"entity"` // clients | memberships | rewards | transactions
	Action string `json:"action"` // created | updated | deleted
	ID     uint   `json:"id,omitempty"`
}

// Conn is one console connection.
type Conn struct {
	Send   chan []byte
	hub    *Hub
	mu     sync.Mutex
	closed bool
}

func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
	if c.hub != nil {
		c.hub.unregister(c)
	}
}

// trySend queues a message unless the connection is closed or its buffer
// is full. Sending and closing share c.mu, so a broadcast can never hit a
// just-closed channel.
func (c *Conn) trySend(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.Send <- data:
	default:
	}
}

// Hub fans change events out to every connected console. It implements
// the ChangeNotifier interface handlers depend on, keeping the
// notification path a typed value that is passed in rather than a global
// broadcast.
type Hub struct {
	mu    sync.RWMutex
	conns map[*Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*Conn]struct{})}
}

func (h *Hub) Register(c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.hub = h
	h.conns[c] = struct{}{}
}

func (h *Hub) unregister(c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c)
}

// EntityChanged broadcasts a change event. Slow consumers are skipped
// rather than blocking the mutating request.
func (h *Hub) EntityChanged(entity, action string, id uint) {
	data, _ := json.Marshal(ChangeEvent{Entity: entity, Action: action, ID: id})
	h.mu.RLock()
	conns := make([]*Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.RUnlock()
	for _, c := range conns {
		c.trySend(data)
	}
}
