// server/internal/socket/hub.go
package socket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 5 * time.Second

	// Events queued per client before it is considered too slow and dropped.
	sendBuffer = 16
)

// Change events pushed to connected UIs.
const (
	EventDriverCreated             = "driver.created"
	EventDriverAvailabilityUpdated = "driver.availability_updated"
	EventBookingCreated            = "booking.created"
	EventBookingStatusUpdated      = "booking.status_updated"
)

type Event struct {
	Type      string    `json:"type"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// client owns the write side of one connection. Only its writer goroutine
// writes data frames to conn.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks the open WebSocket connections and fans events out to all of them.
type Hub struct {
	// clients is keyed by a per-connection id.
	clients map[string]*client
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*client),
	}
}

// Register adds the connection and starts its writer.
func (h *Hub) Register(clientID string, conn *websocket.Conn) {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	if old, ok := h.clients[clientID]; ok {
		close(old.send)
	}
	h.clients[clientID] = c
	h.mu.Unlock()

	go c.writePump(clientID)
	log.Printf("WebSocket client registered: %s", clientID)
}

func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[clientID]; ok {
		close(c.send)
		delete(h.clients, clientID)
		log.Printf("WebSocket client unregistered: %s", clientID)
	}
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish queues an event for every client without waiting on the network.
// A nil Hub drops the event. Clients whose queue is full are closed and dropped.
func (h *Hub) Publish(eventType string, data any) {
	if h == nil {
		return
	}
	message, err := json.Marshal(Event{Type: eventType, Data: data, Timestamp: time.Now().UTC()})
	if err != nil {
		log.Printf("Failed to encode %s event: %v", eventType, err)
		return
	}

	slow := make(map[string]*client)
	h.mu.RLock()
	for id, c := range h.clients {
		select {
		case c.send <- message:
		default:
			slow[id] = c
		}
	}
	h.mu.RUnlock()

	if len(slow) == 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range slow {
		if h.clients[id] != c {
			continue
		}
		log.Printf("WebSocket client %s is not keeping up, dropping it", id)
		close(c.send)
		delete(h.clients, id)
		c.conn.Close()
	}
}

// writePump drains the queue until it is closed or a write fails.
func (c *client) writePump(clientID string) {
	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write to %s failed: %v", clientID, err)
			// The reader sees the closed connection and unregisters the client.
			c.conn.Close()
			return
		}
	}
}
