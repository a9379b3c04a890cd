package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/gofiber/websocket/v2"
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// ContentHub fans content-change events out to every connected landing page.
// Client bookkeeping happens only inside Run.
type ContentHub struct {
	Register   chan Conn
	Unregister chan Conn
	Broadcast  chan []byte
	clients    map[Conn]bool
	done       chan struct{}
}

func NewContentHub() *ContentHub {
	return &ContentHub{
		Register:   make(chan Conn),
		Unregister: make(chan Conn),
		Broadcast:  make(chan []byte, 16),
		clients:    make(map[Conn]bool),
		done:       make(chan struct{}),
	}
}

var Content = NewContentHub()

// Run owns the client set until ctx is cancelled. After it returns the hub
// accepts no more clients.
func (h *ContentHub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				c.Close()
			}
			return
		case c := <-h.Register:
			h.clients[c] = true
			log.Printf("[ws] client registered, total: %d", len(h.clients))
		case c := <-h.Unregister:
			if h.clients[c] {
				delete(h.clients, c)
				c.Close()
			}
		case msg := <-h.Broadcast:
			for c := range h.clients {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					log.Printf("[ws] write error, drop client: %v", err)
					delete(h.clients, c)
					c.Close()
				}
			}
		}
	}
}

// Subscribe registers c with the running hub. It reports false without
// blocking once Run has returned.
func (h *ContentHub) Subscribe(c Conn) bool {
	select {
	case h.Register <- c:
		return true
	case <-h.done:
		return false
	}
}

// Unsubscribe removes c. A no-op once Run has returned, since Run already
// closed every client on the way out.
func (h *ContentHub) Unsubscribe(c Conn) {
	select {
	case h.Unregister <- c:
	case <-h.done:
	}
}

type ContentEvent struct {
	Type    string `json:"type"`
	Section string `json:"section"`
}

// NotifyContentUpdated queues a content_updated event for section. The event
// is dropped if the broadcast queue is full.
func (h *ContentHub) NotifyContentUpdated(section string) {
	payload, err := json.Marshal(ContentEvent{Type: "content_updated", Section: section})
	if err != nil {
		return
	}

	select {
	case h.Broadcast <- payload:
	default:
		log.Printf("[ws] broadcast queue penuh, event %s dibuang", section)
	}
}
