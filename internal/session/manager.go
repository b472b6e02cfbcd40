package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/backend"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/seatmap"
)

// ErrNoSession is returned when a seat-session id is unknown, closed or
// already swept.
var ErrNoSession = errors.New("session: not found")

// Manager owns every open seat-picking session.  It starts one occupancy
// poller per session and sweeps sessions whose user went quiet, so a
// browser tab that disappears without closing cleanly cannot leak a timer.
type Manager struct {
	client       *backend.Client
	pollInterval time.Duration
	ttl          time.Duration

	mu       sync.RWMutex
	sessions map[string]*SeatSession

	ctx    context.Context
	cancel context.CancelFunc
}

// NewManager builds a manager whose pollers and sweeper stop when Shutdown
// is called.
func NewManager(client *backend.Client, pollInterval, ttl time.Duration) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		client:       client,
		pollInterval: pollInterval,
		ttl:          ttl,
		sessions:     make(map[string]*SeatSession),
		ctx:          ctx,
		cancel:       cancel,
	}
	go m.sweep()
	return m
}

// Open fetches the showtime once and starts a session polling it.  The
// first fetch is synchronous so the caller gets an immediate error for an
// unknown or unreachable showtime instead of an empty grid.
func (m *Manager) Open(ctx context.Context, showtimeID string) (*SeatSession, error) {
	st, err := m.client.Showtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	if st.Room == nil {
		return nil, errors.New("session: showtime has no room attached")
	}

	s := &SeatSession{
		ID:         uuid.NewString(),
		client:     m.client,
		showtime:   st,
		selection:  seatmap.NewSelection(),
		lastActive: time.Now(),
	}
	s.poller = StartPoller(m.ctx, m.pollInterval, s.refresh)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

// Get returns an open session by id.
func (m *Manager) Get(id string) (*SeatSession, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}

// Close stops a session's poller and forgets it.  The selection dies with
// it; any backend holds the user obtained stay until the backend expires
// them, exactly as when a browser tab closes mid-checkout.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if !ok {
		return ErrNoSession
	}
	s.close()
	return nil
}

// Shutdown stops every poller and the sweeper.
func (m *Manager) Shutdown() {
	m.cancel()
	m.mu.Lock()
	for id, s := range m.sessions {
		s.close()
		delete(m.sessions, id)
	}
	m.mu.Unlock()
}

// sweep closes sessions idle past the TTL.
func (m *Manager) sweep() {
	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-m.ctx.Done():
			return
		case <-t.C:
			cutoff := time.Now().Add(-m.ttl)
			m.mu.Lock()
			for id, s := range m.sessions {
				if s.idleSince().Before(cutoff) {
					s.close()
					delete(m.sessions, id)
					log.Printf("session: swept idle seat session %s", id)
				}
			}
			m.mu.Unlock()
		}
	}
}
