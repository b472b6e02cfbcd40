// Package handler exposes the gateway's HTTP surface: public browsing,
// seat-picking sessions, checkout, booking lookup with QR/PDF tickets,
// authentication and the admin console, all proxied to the cinema backend.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/backend"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/session"
)

// unavailableMsg is shown whenever the backend cannot be reached at all.
// Rejections that carry a backend message use that message instead.
const unavailableMsg = "The cinema service is temporarily unavailable. Please try again in a moment."

// writeErr maps an error from the lower layers onto an HTTP response.
// Backend rejections keep their status and user-facing message; transport
// failures collapse into a single 503 so browsers get one retry story.
func writeErr(c echo.Context, err error) error {
	var apiErr *backend.APIError
	switch {
	case errors.As(err, &apiErr):
		return c.JSON(apiErr.Status, echo.Map{"error": apiErr.UserMessage()})
	case errors.Is(err, backend.ErrUnavailable):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": unavailableMsg})
	case errors.Is(err, session.ErrNoSession):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "seat session not found"})
	case errors.Is(err, session.ErrEmptySelection):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "select at least one seat"})
	case errors.Is(err, session.ErrUnknownSeat):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat does not exist in this room"})
	default:
		c.Logger().Errorf("handler: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
