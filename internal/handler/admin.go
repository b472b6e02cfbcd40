package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/backend"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/middleware"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
)

// AdminHandler is the management console: movie, room and showtime CRUD
// plus booking oversight.  Every call runs with the admin's own backend
// token so the backend applies its authorization too.
type AdminHandler struct {
	Backend *backend.Client
}

// client returns a backend client carrying the caller's token.  Admin
// routes always run behind SessionAuth, so a session is present.
func (h *AdminHandler) client(c echo.Context) *backend.Client {
	if auth := middleware.Auth(c); auth != nil {
		return h.Backend.WithToken(auth.Token)
	}
	return h.Backend
}

// ----- movies -----

func (h *AdminHandler) Movies(c echo.Context) error {
	movies, err := h.client(c).Movies(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, movies)
}

func validMovie(m *model.Movie) string {
	m.Title = strings.TrimSpace(m.Title)
	switch {
	case m.Title == "":
		return "titulo required"
	case m.DurationMin <= 0:
		return "duracion must be positive"
	case len(m.Genres) == 0:
		return "at least one genre required"
	}
	return ""
}

func (h *AdminHandler) CreateMovie(c echo.Context) error {
	var in model.Movie
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := validMovie(&in); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	m, err := h.client(c).CreateMovie(c.Request().Context(), in)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *AdminHandler) UpdateMovie(c echo.Context) error {
	var in model.Movie
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := validMovie(&in); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	m, err := h.client(c).UpdateMovie(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *AdminHandler) DeactivateMovie(c echo.Context) error {
	if err := h.client(c).DeactivateMovie(c.Request().Context(), c.Param("id")); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) DeleteMovie(c echo.Context) error {
	if err := h.client(c).DeleteMovie(c.Request().Context(), c.Param("id")); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- rooms -----

func (h *AdminHandler) Rooms(c echo.Context) error {
	rooms, err := h.client(c).Rooms(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, rooms)
}

func validRoom(r *model.Room) string {
	r.Name = strings.TrimSpace(r.Name)
	switch {
	case r.Name == "":
		return "nombre required"
	case r.Rows < 1 || r.Rows > model.MaxRows:
		return "filas must be between 1 and 26"
	case r.Columns < 1:
		return "columnas must be positive"
	}
	return ""
}

func (h *AdminHandler) CreateRoom(c echo.Context) error {
	var in model.Room
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := validRoom(&in); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	r, err := h.client(c).CreateRoom(c.Request().Context(), in)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *AdminHandler) UpdateRoom(c echo.Context) error {
	var in model.Room
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := validRoom(&in); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	r, err := h.client(c).UpdateRoom(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *AdminHandler) DeactivateRoom(c echo.Context) error {
	if err := h.client(c).DeactivateRoom(c.Request().Context(), c.Param("id")); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) DeleteRoom(c echo.Context) error {
	if err := h.client(c).DeleteRoom(c.Request().Context(), c.Param("id")); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- showtimes -----

func (h *AdminHandler) Showtimes(c echo.Context) error {
	sts, err := h.client(c).Showtimes(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, sts)
}

func validShowtime(in *model.ShowtimeInput) string {
	switch {
	case in.MovieID == "":
		return "peliculaId required"
	case in.RoomID == "":
		return "salaId required"
	case in.StartsAt.IsZero():
		return "fechaHora required"
	case in.StartsAt.Before(time.Now()):
		return "fechaHora must be in the future"
	case in.Price <= 0:
		return "precio must be positive"
	}
	return ""
}

func (h *AdminHandler) CreateShowtime(c echo.Context) error {
	var in model.ShowtimeInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := validShowtime(&in); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	st, err := h.client(c).CreateShowtime(c.Request().Context(), in)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, st)
}

func (h *AdminHandler) UpdateShowtime(c echo.Context) error {
	var in model.ShowtimeInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := validShowtime(&in); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	st, err := h.client(c).UpdateShowtime(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *AdminHandler) DeactivateShowtime(c echo.Context) error {
	if err := h.client(c).DeactivateShowtime(c.Request().Context(), c.Param("id")); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) DeleteShowtime(c echo.Context) error {
	if err := h.client(c).DeleteShowtime(c.Request().Context(), c.Param("id")); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- bookings -----

func (h *AdminHandler) Bookings(c echo.Context) error {
	bookings, err := h.client(c).Bookings(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// CancelBooking cancels by id without the customer's two-hour window; the
// admin console is where late cancellations happen.
func (h *AdminHandler) CancelBooking(c echo.Context) error {
	b, err := h.client(c).CancelBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, b)
}
