package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/backend"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/seatmap"
)

var (
	// ErrEmptySelection rejects a continue with no seats picked.
	ErrEmptySelection = errors.New("session: no seats selected")
	// ErrUnknownSeat rejects a toggle for an identifier outside the room.
	ErrUnknownSeat = errors.New("session: seat not in room layout")
)

// SeatSession is one user's seat-picking flow for one showtime.  It owns
// the selection, the latest occupancy snapshot and the poller refreshing
// it.  The selection is ephemeral: closing the session (navigating away)
// discards it.
type SeatSession struct {
	ID string

	client *backend.Client
	poller *Poller

	mu         sync.Mutex
	showtime   *model.Showtime
	selection  *seatmap.Selection
	refreshErr error     // last poll failure, surfaced as a stale flag
	lastActive time.Time // bumped on every user interaction, drives the sweep
}

// Snapshot is what a browser renders: the derived grid plus selection
// state.  Stale is true when the most recent occupancy refresh failed and
// the grid may lag the backend.
type Snapshot struct {
	Showtime *model.Showtime `json:"funcion"`
	Seats    []seatmap.Seat  `json:"asientos"`
	Selected []string        `json:"seleccionados"`
	Total    float64         `json:"total"`
	Stale    bool            `json:"desactualizado,omitempty"`
}

// Handoff carries a successful hold into checkout: the same identifiers
// that were held plus the total computed from the showtime price.
type Handoff struct {
	ShowtimeID string   `json:"funcionId"`
	Seats      []string `json:"asientos"`
	Total      float64  `json:"total"`
}

// refresh re-fetches the showtime's occupancy sets.  Failures are recorded
// but do not clear the previous snapshot: a stale grid beats no grid, and
// the hold call is the arbiter anyway.
func (s *SeatSession) refresh(ctx context.Context) {
	st, err := s.client.Showtime(ctx, s.showtimeID())
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.refreshErr = err
		return
	}
	s.showtime = st
	s.refreshErr = nil
}

func (s *SeatSession) showtimeID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showtime.ID
}

// Snapshot derives the current grid.  Identical inputs always produce an
// identical grid, so callers re-render on every poll without diffing.
func (s *SeatSession) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	occupied, held := s.showtime.SeatIDs()
	seats, err := seatmap.Build(s.showtime.Room.Rows, s.showtime.Room.Columns, occupied, held, s.selection.Set())
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Showtime: s.showtime,
		Seats:    seats,
		Selected: s.selection.IDs(),
		Total:    s.selection.Total(s.showtime.Price),
		Stale:    s.refreshErr != nil,
	}, nil
}

// Toggle flips one seat in the selection.  Unavailable seats are a no-op;
// identifiers outside the room layout are an error.  Note the asymmetry
// the availability rule creates on purpose: a seat that was selected and
// then lost to another user cannot be toggled out here; it stays in the
// selection until the user clears it or the hold call rejects it.
func (s *SeatSession) Toggle(seatID string) (changed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	occupied, held := s.showtime.SeatIDs()
	seats, err := seatmap.Build(s.showtime.Room.Rows, s.showtime.Room.Columns, occupied, held, nil)
	if err != nil {
		return false, err
	}
	for _, seat := range seats {
		if seat.ID == seatID {
			return s.selection.Toggle(seatID, seat.Available), nil
		}
	}
	return false, ErrUnknownSeat
}

// Clear empties the selection without touching any backend state.
func (s *SeatSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	s.selection.Clear()
}

// Continue dispatches the hold request: the full selection in one call,
// all-or-nothing at the backend's discretion.  On success the handoff
// carries the seats and total into checkout; on failure the selection is
// left intact so the user can adjust and resubmit.
func (s *SeatSession) Continue(ctx context.Context) (*Handoff, error) {
	s.mu.Lock()
	seats := s.selection.IDs()
	total := s.selection.Total(s.showtime.Price)
	id := s.showtime.ID
	s.lastActive = time.Now()
	s.mu.Unlock()

	if len(seats) == 0 {
		return nil, ErrEmptySelection
	}
	if err := s.client.HoldSeats(ctx, id, seats); err != nil {
		return nil, err
	}
	return &Handoff{ShowtimeID: id, Seats: seats, Total: total}, nil
}

// Release drops the backend holds for the current selection, used when the
// user backs out of checkout.  The selection itself is kept so they can
// continue again.
func (s *SeatSession) Release(ctx context.Context) error {
	s.mu.Lock()
	seats := s.selection.IDs()
	id := s.showtime.ID
	s.lastActive = time.Now()
	s.mu.Unlock()

	if len(seats) == 0 {
		return nil
	}
	return s.client.ReleaseSeats(ctx, id, seats)
}

// close stops the poller.  Called by the manager only.
func (s *SeatSession) close() {
	s.poller.Stop()
}

func (s *SeatSession) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}
