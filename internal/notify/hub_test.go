package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
)

// newHubServer runs a hub behind a WS endpoint and returns a dialer for
// browser-side connections.
func newHubServer(t *testing.T) (*Hub, func() *websocket.Conn) {
	t.Helper()
	hub := NewHub()
	go hub.Run()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		NewClient(hub, conn)
	}))
	t.Cleanup(srv.Close)
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	dial := func() *websocket.Conn {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.NoError(t, err)
		t.Cleanup(func() { conn.Close() })
		return conn
	}
	return hub, dial
}

func readNotification(t *testing.T, conn *websocket.Conn) model.Notification {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	var n model.Notification
	require.NoError(t, json.Unmarshal(raw, &n))
	return n
}

func TestHub_DispatchTargetsRegisteredUser(t *testing.T) {
	hub, dial := newHubServer(t)

	ana := dial()
	other := dial()
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	reg, _ := json.Marshal(model.Notification{Type: model.NotifyRegister, UserID: "u7"})
	require.NoError(t, ana.WriteMessage(websocket.TextMessage, reg))
	require.Eventually(t, func() bool { return hub.UserClientCount("u7") == 1 }, time.Second, 10*time.Millisecond)

	hub.Dispatch(model.Notification{Type: model.NotifyBookingConfirmed, UserID: "u7"})
	got := readNotification(t, ana)
	assert.Equal(t, model.NotifyBookingConfirmed, got.Type)
	assert.Equal(t, "u7", got.UserID)

	// Per-connection delivery is FIFO, so if the targeted event had leaked
	// to the unregistered client it would arrive before this broadcast.
	hub.Dispatch(model.Notification{Type: model.NotifyNewBooking})
	got = readNotification(t, other)
	assert.Equal(t, model.NotifyNewBooking, got.Type)
}

func TestHub_DispatchWithoutUserBroadcasts(t *testing.T) {
	hub, dial := newHubServer(t)

	a := dial()
	b := dial()
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	hub.Dispatch(model.Notification{Type: model.NotifyBookingCancelled})
	assert.Equal(t, model.NotifyBookingCancelled, readNotification(t, a).Type)
	assert.Equal(t, model.NotifyBookingCancelled, readNotification(t, b).Type)
}
