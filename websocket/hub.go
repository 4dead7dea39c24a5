package websocket

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Event types pushed to connected dashboards
const (
	EventTypeInquiryCreated = "inquiry_created"
	EventTypeInquiryRead    = "inquiry_read"
)

// Event is a message sent over WebSocket to dashboard sessions
type Event struct {
	Type    string      `json:"type"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Client represents a connected dashboard session
type Client struct {
	UID  string
	Conn *websocket.Conn
}

// Hub maintains the set of connected dashboard sessions and broadcasts events
// to all of them. Every admin sees the same unread badges, so there is no
// per-user routing.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Conn.Close()
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends an event to every connected dashboard session
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		client.Conn.WriteJSON(event)
	}
}

// NotifyInquiryCreated pushes a new-inquiry event so open dashboards can bump
// their unread badge without polling
func (h *Hub) NotifyInquiryCreated(inquiry interface{}) {
	h.Broadcast(Event{
		Type:    EventTypeInquiryCreated,
		Message: "New inquiry received",
		Data:    inquiry,
	})
}

// NotifyInquiryRead tells other open dashboards an inquiry was handled
func (h *Hub) NotifyInquiryRead(inquiryID string) {
	h.Broadcast(Event{
		Type:    EventTypeInquiryRead,
		Message: "Inquiry marked as read",
		Data:    map[string]string{"id": inquiryID},
	})
}
