package notify

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
)

// Hub fans backend notifications out to the browsers connected to this
// gateway.  Delivery inherits the channel's advisory contract: a slow
// client is dropped rather than allowed to stall the rest.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu sync.RWMutex
}

// NewHub builds a hub; call Run in a goroutine before registering clients.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
	}
}

// Run is the hub's event loop.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			n := len(h.clients)
			h.mu.Unlock()
			log.Printf("notify: browser %s connected (%d total)", c.id, n)

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			n := len(h.clients)
			h.mu.Unlock()
			log.Printf("notify: browser %s disconnected (%d total)", c.id, n)

		case msg := <-h.broadcast:
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Send buffer full; drop the client, it will reconnect.
					go func(c *Client) { h.unregister <- c }(c)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Dispatch is the listener's sink.  Events tagged with a user id go only
// to that user's connections; untagged ones are broadcast.
func (h *Hub) Dispatch(n model.Notification) {
	if n.UserID != "" {
		h.SendToUser(n.UserID, n)
		return
	}
	h.Relay(n)
}

// Relay marshals a backend notification and broadcasts it to every
// connected browser.
func (h *Hub) Relay(n model.Notification) {
	raw, err := json.Marshal(n)
	if err != nil {
		log.Printf("notify: marshal relay message: %v", err)
		return
	}
	select {
	case h.broadcast <- raw:
	default:
		log.Printf("notify: broadcast buffer full, dropping %s", n.Type)
	}
}

// SendToUser delivers a message only to connections registered under the
// given user id.
func (h *Hub) SendToUser(userID string, n model.Notification) {
	raw, err := json.Marshal(n)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if c.UserID() == userID {
			select {
			case c.send <- raw:
			default:
			}
		}
	}
}

// ClientCount returns how many browsers are connected.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// UserClientCount returns how many connections are registered under the
// given user id.
func (h *Hub) UserClientCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for c := range h.clients {
		if c.UserID() == userID {
			n++
		}
	}
	return n
}
