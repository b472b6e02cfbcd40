package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/session"
)

// SeatHandler drives the seat-picking flow.  A browser opens a session for
// a showtime, toggles seats against the polled occupancy grid, and either
// continues into checkout (which holds the whole selection at once) or
// walks away and lets the sweeper clean up.
type SeatHandler struct {
	Sessions *session.Manager
}

type openSeatsReq struct {
	ShowtimeID string `json:"funcionId"`
}

type toggleReq struct {
	Seat string `json:"asiento"`
}

// Open creates a seat session and returns its id with the first snapshot.
func (h *SeatHandler) Open(c echo.Context) error {
	var req openSeatsReq
	if err := c.Bind(&req); err != nil || req.ShowtimeID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "funcionId required"})
	}
	s, err := h.Sessions.Open(c.Request().Context(), req.ShowtimeID)
	if err != nil {
		return writeErr(c, err)
	}
	snap, err := s.Snapshot()
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"sesionId": s.ID, "estado": snap})
}

// Snapshot returns the current grid; the browser polls this while the
// session's own poller refreshes occupancy behind it.
func (h *SeatHandler) Snapshot(c echo.Context) error {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	snap, err := s.Snapshot()
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

// Toggle flips one seat and returns the resulting snapshot.  Toggling an
// occupied or held seat changes nothing, mirroring a click that bounces
// off a taken seat.
func (h *SeatHandler) Toggle(c echo.Context) error {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	var req toggleReq
	if err := c.Bind(&req); err != nil || req.Seat == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "asiento required"})
	}
	changed, err := s.Toggle(req.Seat)
	if err != nil {
		return writeErr(c, err)
	}
	snap, err := s.Snapshot()
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"cambiado": changed, "estado": snap})
}

// Clear drops the whole selection.
func (h *SeatHandler) Clear(c echo.Context) error {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	s.Clear()
	snap, err := s.Snapshot()
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

// Continue holds the selection on the backend and hands off to checkout.
// A rejected hold keeps the selection so the user can adjust; the error
// carries the backend's reason.
func (h *SeatHandler) Continue(c echo.Context) error {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	handoff, err := s.Continue(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, handoff)
}

// Release frees the backend holds when the user backs out of checkout.
func (h *SeatHandler) Release(c echo.Context) error {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	if err := s.Release(c.Request().Context()); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Close ends the session.  The selection dies with it; backend holds are
// left for the backend to expire.
func (h *SeatHandler) Close(c echo.Context) error {
	if err := h.Sessions.Close(c.Param("id")); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
