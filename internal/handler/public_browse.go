package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/backend"
)

// BrowseHandler serves the unauthenticated browsing flow: the billboard,
// movie detail pages and showtime listings.  Everything is proxied as-is
// from the backend; the response cache in front of these routes keeps the
// backend out of the hot path.
type BrowseHandler struct {
	Backend *backend.Client
}

// Billboard lists the active movies.
func (h *BrowseHandler) Billboard(c echo.Context) error {
	movies, err := h.Backend.Billboard(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, movies)
}

// SearchMovies filters the billboard by title.  An empty query falls back
// to the full billboard.
func (h *BrowseHandler) SearchMovies(c echo.Context) error {
	ctx := c.Request().Context()
	q := strings.TrimSpace(c.QueryParam("titulo"))
	if q == "" {
		return h.Billboard(c)
	}
	movies, err := h.Backend.SearchMoviesByTitle(ctx, q)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, movies)
}

// Movie returns one movie plus its upcoming showtimes, the payload the
// detail page renders in one request.
func (h *BrowseHandler) Movie(c echo.Context) error {
	ctx := c.Request().Context()
	movie, err := h.Backend.Movie(ctx, c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	showtimes, err := h.Backend.ShowtimesByMovie(ctx, movie.ID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"pelicula":  movie,
		"funciones": showtimes,
	})
}

// Showtimes lists every future showtime across movies.
func (h *BrowseHandler) Showtimes(c echo.Context) error {
	showtimes, err := h.Backend.FutureShowtimes(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, showtimes)
}

// Showtime returns one showtime with its room and occupancy sets.
func (h *BrowseHandler) Showtime(c echo.Context) error {
	st, err := h.Backend.Showtime(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, st)
}
