package websocket

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket upgrades an authenticated dashboard request and registers
// the session with the hub. The auth middleware has already validated the
// cookie, so the connection is trusted from the first frame.
func HandleWebSocket(c echo.Context, hub *Hub, uid string) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{
		UID:  uid,
		Conn: conn,
	}

	hub.register <- client

	conn.WriteJSON(Event{
		Type:    "connected",
		Message: "WebSocket connection established",
	})

	// Drain incoming frames until the peer disconnects
	go func() {
		defer func() {
			hub.unregister <- client
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()

	return nil
}
