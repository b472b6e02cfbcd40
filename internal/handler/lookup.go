package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/backend"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/middleware"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/ticket"
)

// LookupHandler serves the "find my booking" flow: lookup by code, the
// booking's QR image and the printable PDF ticket.
type LookupHandler struct {
	Backend *backend.Client
}

// ByCode returns the booking a code points at.  Codes are shareable; no
// authentication is required, matching a ticket shown at the entrance.
func (h *LookupHandler) ByCode(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking code required"})
	}
	b, err := h.Backend.BookingByCode(c.Request().Context(), code)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// QR renders the booking code as a PNG.  The lookup first confirms the
// code exists so a typo yields 404 instead of a scannable dead code.
func (h *LookupHandler) QR(c echo.Context) error {
	b, err := h.Backend.BookingByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return writeErr(c, err)
	}
	png, err := ticket.QRPNG(b.Code)
	if err != nil {
		return writeErr(c, err)
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

// Ticket renders the printable PDF with the embedded QR.
func (h *LookupHandler) Ticket(c echo.Context) error {
	b, err := h.Backend.BookingByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return writeErr(c, err)
	}
	pdf, err := ticket.PDF(b)
	if err != nil {
		return writeErr(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="ticket-%s.pdf"`, b.Code))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// Mine lists the logged-in user's bookings by their account email.
func (h *LookupHandler) Mine(c echo.Context) error {
	auth := middleware.Auth(c)
	if auth == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no session"})
	}
	bookings, err := h.Backend.WithToken(auth.Token).BookingsByEmail(c.Request().Context(), auth.User.Email)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}
