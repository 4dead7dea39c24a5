package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	e := echo.New()
	e.GET("/ws", func(c echo.Context) error {
		return HandleWebSocket(c, hub, "uid-123")
	})

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	return event
}

func TestHubWelcomeAndBroadcast(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dialTestHub(t, hub)

	welcome := readEvent(t, conn)
	assert.Equal(t, "connected", welcome.Type)

	// The register channel is unbuffered, so the client is in the map once the
	// welcome frame has arrived.
	hub.NotifyInquiryRead("abc123")

	event := readEvent(t, conn)
	assert.Equal(t, EventTypeInquiryRead, event.Type)

	data, ok := event.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "abc123", data["id"])
}

func TestHubBroadcastReachesAllSessions(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := dialTestHub(t, hub)
	second := dialTestHub(t, hub)
	readEvent(t, first)
	readEvent(t, second)

	hub.NotifyInquiryCreated(map[string]string{"type": "sponsorship"})

	for _, conn := range []*websocket.Conn{first, second} {
		event := readEvent(t, conn)
		assert.Equal(t, EventTypeInquiryCreated, event.Type)
	}
}

func TestHubBroadcastWithNoSessions(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Must not panic or block
	hub.NotifyInquiryRead("abc123")
}
