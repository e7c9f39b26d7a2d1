package editor

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// writeWait bounds a single websocket write; a client that misses it is dead.
const writeWait = 10 * time.Second

// sendBuffer is the per-client event backlog. A client that falls this far
// behind is dropped rather than allowed to stall the mutation path.
const sendBuffer = 8

// Event is the outgoing WebSocket message format.
type Event struct {
	Type string `json:"type"`           // "preview" or "saved"
	HTML string `json:"html,omitempty"` // rendered preview markup for "preview"
}

// Client is one preview subscriber. Writes go through a buffered channel
// drained by a dedicated goroutine, so broadcasters never touch the socket.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan Event
}

// Send queues an event for the client, dropping the client if its backlog
// is full.
func (c *Client) Send(ev Event) {
	c.hub.mu.Lock()
	c.hub.sendLocked(c, ev)
	c.hub.mu.Unlock()
}

// writeLoop drains the send channel onto the socket. It exits when the hub
// closes the channel or a write fails, and owns closing the connection.
func (c *Client) writeLoop() {
	defer c.conn.Close()
	for ev := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(ev); err != nil {
			log.Printf("editor: dropping preview client: %v", err)
			c.hub.Remove(c)
			return
		}
	}
}

// Hub fans events out to every connected preview client. Broadcast only
// queues; it never blocks on a socket, so a stalled client cannot hold up
// a mutation.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: map[*Client]bool{}}
}

// Add registers a connection for broadcasts and starts its writer.
func (h *Hub) Add(conn *websocket.Conn) *Client {
	c := &Client{hub: h, conn: conn, send: make(chan Event, sendBuffer)}
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
	go c.writeLoop()
	return c
}

// Remove unregisters a client and closes its send channel. Safe to call
// more than once.
func (h *Hub) Remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c] {
		delete(h.clients, c)
		close(c.send)
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast queues the event for every connected client.
func (h *Hub) Broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.sendLocked(c, ev)
	}
}

// sendLocked queues ev for c, dropping c when its backlog is full. Caller
// holds h.mu.
func (h *Hub) sendLocked(c *Client, ev Event) {
	if !h.clients[c] {
		return
	}
	select {
	case c.send <- ev:
	default:
		log.Printf("editor: dropping slow preview client")
		delete(h.clients, c)
		close(c.send)
	}
}
