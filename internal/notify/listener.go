// Package notify moves booking notifications from the backend's WebSocket
// feed to connected browsers.  The channel is best-effort and advisory:
// messages may be lost or duplicated and consumers only react by
// re-fetching, never by mutating state, so no ordering or delivery
// guarantee is attempted.
package notify

import (
	"context"
	"encoding/json"
	"log"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
)

// Status of the backend notification channel.
type Status int32

const (
	StatusConnecting Status = iota
	StatusConnected
	// StatusDisconnected means the retry budget is exhausted and the
	// listener has given up.  Queryable so the UI can show an explicit
	// indicator instead of live updates just going quiet.
	StatusDisconnected
)

func (s Status) String() string {
	switch s {
	case StatusConnected:
		return "connected"
	case StatusDisconnected:
		return "disconnected"
	default:
		return "connecting"
	}
}

// Listener maintains the WebSocket connection to the backend notification
// feed.  After each successful connect it sends one REGISTER message and
// then forwards every decoded event to the sink.  On drop it retries with
// a fixed delay up to maxRetries consecutive failures; a successful
// connect resets the budget.
type Listener struct {
	url        string
	userID     string
	retryDelay time.Duration
	maxRetries int
	sink       func(model.Notification)

	status atomic.Int32
}

// NewListener wires a listener to the given feed URL.  sink must be safe
// for calls from the listener goroutine; events arrive in whatever order
// the backend sends them.
func NewListener(url, userID string, retryDelay time.Duration, maxRetries int, sink func(model.Notification)) *Listener {
	return &Listener{
		url:        url,
		userID:     userID,
		retryDelay: retryDelay,
		maxRetries: maxRetries,
		sink:       sink,
	}
}

// Status returns the current channel state.
func (l *Listener) Status() Status {
	return Status(l.status.Load())
}

// Run blocks until ctx is cancelled or the retry budget is exhausted.
// Every session end (failed dial or dropped connection) consumes one
// attempt; a successful open refills the budget.  Intended to be started
// as a goroutine from main.
func (l *Listener) Run(ctx context.Context) {
	attempts := 0
	for {
		if ctx.Err() != nil {
			return
		}
		l.status.Store(int32(StatusConnecting))

		connected, err := l.session(ctx)
		if ctx.Err() != nil {
			return
		}
		if connected {
			attempts = 0
		}
		attempts++
		if err != nil {
			log.Printf("notify: session ended: %v (attempt %d/%d)", err, attempts, l.maxRetries)
		}
		if attempts > l.maxRetries {
			l.status.Store(int32(StatusDisconnected))
			log.Printf("notify: giving up after %d consecutive failures", l.maxRetries)
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(l.retryDelay):
		}
	}
}

// session dials, registers and reads until the connection drops or ctx is
// cancelled.  connected reports whether the dial and registration made it
// through, which is what refills the caller's retry budget.
func (l *Listener) session(ctx context.Context) (connected bool, err error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, l.url, nil)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	reg, _ := json.Marshal(model.Notification{Type: model.NotifyRegister, UserID: l.userID})
	if err := conn.WriteMessage(websocket.TextMessage, reg); err != nil {
		return false, err
	}
	l.status.Store(int32(StatusConnected))
	log.Printf("notify: connected to %s", l.url)

	// Unblock the read loop when ctx is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return true, err
		}
		var n model.Notification
		if err := json.Unmarshal(raw, &n); err != nil {
			log.Printf("notify: skipping malformed message: %v", err)
			continue
		}
		switch n.Type {
		case model.NotifyConnected, model.NotifyPong:
			// Channel chatter; nothing to relay.
		case model.NotifyNewBooking, model.NotifyBookingCancelled, model.NotifyBookingConfirmed:
			l.sink(n)
		default:
			// Unknown types are ignored, per the advisory contract.
		}
	}
}
