package backend

import (
	"context"
	"net/url"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
)

// CreateBooking submits a held selection plus the checkout form and gets
// back a PENDIENTE booking with its server-assigned code.
func (c *Client) CreateBooking(ctx context.Context, in model.BookingInput) (*model.Booking, error) {
	var out model.Booking
	if err := c.post(ctx, "/reservas", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmBooking confirms a pending booking with a payment method
// (EFECTIVO, TARJETA or TRANSFERENCIA).
func (c *Client) ConfirmBooking(ctx context.Context, id, paymentMethod string) (*model.Booking, error) {
	body := struct {
		PaymentMethod string `json:"metodoPago"`
	}{PaymentMethod: paymentMethod}
	var out model.Booking
	if err := c.post(ctx, "/reservas/"+url.PathEscape(id)+"/confirmar", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelBooking cancels a booking.  The backend enforces the cancellation
// window for customers; administrators may cancel at any time.
func (c *Client) CancelBooking(ctx context.Context, id string) (*model.Booking, error) {
	var out model.Booking
	if err := c.post(ctx, "/reservas/"+url.PathEscape(id)+"/cancelar", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BookingByCode looks a booking up by its shareable code, as typed in or
// decoded from a scanned QR.
func (c *Client) BookingByCode(ctx context.Context, code string) (*model.Booking, error) {
	var out model.Booking
	if err := c.get(ctx, "/reservas/codigo/"+url.PathEscape(code), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bookings returns every booking.  Admin listing.
func (c *Client) Bookings(ctx context.Context) ([]model.Booking, error) {
	var out []model.Booking
	err := c.get(ctx, "/reservas", &out)
	return out, err
}

// BookingsByEmail returns the bookings made with a customer email, used by
// the "my bookings" screen.
func (c *Client) BookingsByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	var out []model.Booking
	err := c.get(ctx, "/reservas/email/"+url.PathEscape(email), &out)
	return out, err
}
