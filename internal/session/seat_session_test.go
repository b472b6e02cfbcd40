package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/backend"
)

// fakeBackend serves one showtime whose occupancy can be mutated between
// polls, plus recording hold/release calls.
type fakeBackend struct {
	mu         sync.Mutex
	occupied   []string
	held       map[string]int64
	holds      [][]string
	releases   [][]string
	rejectHold string // when set, hold requests fail with this message
}

func (f *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch {
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/funciones/"):
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": map[string]any{
					"id":                 "f1",
					"precio":             8.50,
					"fechaHora":          "2026-12-24T20:00:00",
					"sala":               map[string]any{"id": "s1", "nombre": "Sala 1", "tipo": "2D", "filas": 2, "columnas": 3},
					"pelicula":           map[string]any{"id": "p1", "titulo": "Dune"},
					"asientosOcupados":   f.occupied,
					"asientosBloqueados": f.held,
				},
			})
		case strings.HasSuffix(r.URL.Path, "/bloquear-asientos"):
			var body struct {
				Seats []string `json:"asientos"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			if f.rejectHold != "" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]any{"success": false, "message": f.rejectHold})
				return
			}
			f.holds = append(f.holds, body.Seats)
			json.NewEncoder(w).Encode(map[string]any{"success": true})
		case strings.HasSuffix(r.URL.Path, "/liberar-asientos"):
			var body struct {
				Seats []string `json:"asientos"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			f.releases = append(f.releases, body.Seats)
			json.NewEncoder(w).Encode(map[string]any{"success": true})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"success": false})
		}
	}
}

func newTestManager(t *testing.T, f *fakeBackend, poll time.Duration) *Manager {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	m := NewManager(backend.New(srv.URL, time.Second), poll, time.Hour)
	t.Cleanup(m.Shutdown)
	return m
}

func TestSeatSession_SnapshotDerivesGrid(t *testing.T) {
	f := &fakeBackend{occupied: []string{"A1"}, held: map[string]int64{"B2": 99}}
	m := newTestManager(t, f, time.Hour)

	s, err := m.Open(context.Background(), "f1")
	require.NoError(t, err)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Seats, 6)
	for _, seat := range snap.Seats {
		switch seat.ID {
		case "A1", "B2":
			assert.False(t, seat.Available, "seat %s", seat.ID)
		default:
			assert.True(t, seat.Available, "seat %s", seat.ID)
		}
	}
	assert.Zero(t, snap.Total)
}

func TestSeatSession_ToggleAndTotal(t *testing.T) {
	f := &fakeBackend{occupied: []string{"A1"}}
	m := newTestManager(t, f, time.Hour)

	s, err := m.Open(context.Background(), "f1")
	require.NoError(t, err)

	changed, err := s.Toggle("A2")
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = s.Toggle("A3")
	require.NoError(t, err)
	assert.True(t, changed)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []string{"A2", "A3"}, snap.Selected)
	assert.InDelta(t, 17.00, snap.Total, 1e-9)

	// Occupied seat: no-op, not an error.
	changed, err = s.Toggle("A1")
	require.NoError(t, err)
	assert.False(t, changed)

	// Outside the 2x3 layout: error.
	_, err = s.Toggle("Z9")
	assert.ErrorIs(t, err, ErrUnknownSeat)

	// Deselect.
	_, err = s.Toggle("A2")
	require.NoError(t, err)
	snap, _ = s.Snapshot()
	assert.InDelta(t, 8.50, snap.Total, 1e-9)
}

func TestSeatSession_ContinueDispatchesHold(t *testing.T) {
	f := &fakeBackend{}
	m := newTestManager(t, f, time.Hour)

	s, err := m.Open(context.Background(), "f1")
	require.NoError(t, err)

	_, err = s.Continue(context.Background())
	assert.ErrorIs(t, err, ErrEmptySelection)

	s.Toggle("A2")
	s.Toggle("B3")
	h, err := s.Continue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "f1", h.ShowtimeID)
	assert.Equal(t, []string{"A2", "B3"}, h.Seats)
	assert.InDelta(t, 17.00, h.Total, 1e-9)
	assert.Equal(t, [][]string{{"A2", "B3"}}, f.holds)
}

func TestSeatSession_HoldRejectionKeepsSelection(t *testing.T) {
	f := &fakeBackend{rejectHold: "Asiento A2 ya no está disponible"}
	m := newTestManager(t, f, time.Hour)

	s, err := m.Open(context.Background(), "f1")
	require.NoError(t, err)
	s.Toggle("A2")

	_, err = s.Continue(context.Background())
	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Asiento A2 ya no está disponible", apiErr.UserMessage())

	// Selection intact for adjust-and-resubmit.
	snap, _ := s.Snapshot()
	assert.Equal(t, []string{"A2"}, snap.Selected)
}

func TestSeatSession_PollPicksUpNewOccupancy(t *testing.T) {
	f := &fakeBackend{}
	m := newTestManager(t, f, 20*time.Millisecond)

	s, err := m.Open(context.Background(), "f1")
	require.NoError(t, err)
	s.Toggle("A2")

	// Another user takes A2 between polls.
	f.mu.Lock()
	f.occupied = []string{"A2"}
	f.mu.Unlock()

	require.Eventually(t, func() bool {
		snap, err := s.Snapshot()
		if err != nil {
			return false
		}
		for _, seat := range snap.Seats {
			if seat.ID == "A2" {
				return seat.Occupied
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)

	// Lost seat is rendered unavailable but stays selected.
	snap, _ := s.Snapshot()
	assert.Equal(t, []string{"A2"}, snap.Selected)
}

func TestManager_CloseStopsPolling(t *testing.T) {
	f := &fakeBackend{}
	m := newTestManager(t, f, 10*time.Millisecond)

	s, err := m.Open(context.Background(), "f1")
	require.NoError(t, err)
	require.NoError(t, m.Close(s.ID))

	_, err = m.Get(s.ID)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.ErrorIs(t, m.Close(s.ID), ErrNoSession)
}

func TestPoller_StopIsIdempotentAndFinal(t *testing.T) {
	var mu sync.Mutex
	ticks := 0
	p := StartPoller(context.Background(), 5*time.Millisecond, func(context.Context) {
		mu.Lock()
		ticks++
		mu.Unlock()
	})

	time.Sleep(30 * time.Millisecond)
	p.Stop()
	p.Stop() // second stop must not panic or block

	mu.Lock()
	after := ticks
	mu.Unlock()
	time.Sleep(30 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, after, ticks, "ticks after Stop")
}
