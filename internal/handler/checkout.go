package handler

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/backend"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/middleware"
	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
)

// cancelWindow is how long before the showtime a customer may still cancel.
// The backend enforces the same rule; checking here just fails fast with a
// friendlier message.
const cancelWindow = 2 * time.Hour

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CheckoutHandler turns a held selection into a booking and walks it
// through confirmation or cancellation.
type CheckoutHandler struct {
	Backend *backend.Client
}

type checkoutReq struct {
	ShowtimeID    string   `json:"funcionId"`
	CustomerName  string   `json:"nombreCliente"`
	CustomerEmail string   `json:"emailCliente"`
	Seats         []string `json:"asientos"`
}

type confirmReq struct {
	PaymentMethod string `json:"metodoPago"`
}

// Create books the held seats.  Guests may book; a logged-in user gets the
// booking attached to their account.
func (h *CheckoutHandler) Create(c echo.Context) error {
	var req checkoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)

	switch {
	case req.ShowtimeID == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "funcionId required"})
	case len(req.Seats) == 0:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "select at least one seat"})
	case req.CustomerName == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer name required"})
	case !emailRe.MatchString(req.CustomerEmail):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "valid email required"})
	}

	in := model.BookingInput{
		ShowtimeID:    req.ShowtimeID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Seats:         req.Seats,
	}
	if auth := middleware.Auth(c); auth != nil {
		in.UserID = auth.User.ID
	}

	b, err := h.Backend.CreateBooking(c.Request().Context(), in)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

// Confirm settles a pending booking with a payment method.
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	var req confirmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	method := strings.ToUpper(strings.TrimSpace(req.PaymentMethod))
	switch method {
	case model.PayCash, model.PayCard, model.PayTransfer:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "metodoPago must be EFECTIVO, TARJETA or TRANSFERENCIA"})
	}

	b, err := h.Backend.ConfirmBooking(c.Request().Context(), c.Param("id"), method)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Cancel cancels a booking looked up by its code.  Customers are cut off
// two hours before the showtime; the backend applies the same window, so
// this check only saves a doomed round trip.
func (h *CheckoutHandler) Cancel(c echo.Context) error {
	ctx := c.Request().Context()
	b, err := h.Backend.BookingByCode(ctx, c.Param("code"))
	if err != nil {
		return writeErr(c, err)
	}
	if b.Status == model.BookingCancelled {
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking is already cancelled"})
	}
	if b.Showtime != nil && !b.Showtime.StartsAt.IsZero() {
		if time.Until(b.Showtime.StartsAt.Time) < cancelWindow {
			return c.JSON(http.StatusConflict, echo.Map{"error": "bookings can only be cancelled up to 2 hours before the showtime"})
		}
	}
	cancelled, err := h.Backend.CancelBooking(ctx, b.ID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, cancelled)
}
