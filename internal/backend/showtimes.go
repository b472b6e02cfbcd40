package backend

import (
	"context"
	"net/url"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
)

// Showtimes returns every scheduled screening.
func (c *Client) Showtimes(ctx context.Context) ([]model.Showtime, error) {
	var out []model.Showtime
	err := c.get(ctx, "/funciones", &out)
	return out, err
}

// FutureShowtimes returns screenings that have not started yet.
func (c *Client) FutureShowtimes(ctx context.Context) ([]model.Showtime, error) {
	var out []model.Showtime
	err := c.get(ctx, "/funciones/futuras", &out)
	return out, err
}

// Showtime fetches one screening, including its current occupied and held
// seat sets.  Seat sessions call this on every poll tick.
func (c *Client) Showtime(ctx context.Context, id string) (*model.Showtime, error) {
	var out model.Showtime
	if err := c.get(ctx, "/funciones/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShowtimesByMovie returns the screenings scheduled for one movie.
func (c *Client) ShowtimesByMovie(ctx context.Context, movieID string) ([]model.Showtime, error) {
	var out []model.Showtime
	err := c.get(ctx, "/funciones/pelicula/"+url.PathEscape(movieID), &out)
	return out, err
}

// CreateShowtime schedules a screening.
func (c *Client) CreateShowtime(ctx context.Context, in model.ShowtimeInput) (*model.Showtime, error) {
	var out model.Showtime
	if err := c.post(ctx, "/funciones", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateShowtime replaces a screening's schedule or price.
func (c *Client) UpdateShowtime(ctx context.Context, id string, in model.ShowtimeInput) (*model.Showtime, error) {
	var out model.Showtime
	if err := c.put(ctx, "/funciones/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeactivateShowtime hides a screening from the billboard.
func (c *Client) DeactivateShowtime(ctx context.Context, id string) error {
	return c.patch(ctx, "/funciones/"+url.PathEscape(id)+"/desactivar", nil)
}

// DeleteShowtime removes a screening permanently.
func (c *Client) DeleteShowtime(ctx context.Context, id string) error {
	return c.del(ctx, "/funciones/"+url.PathEscape(id))
}

// seatsBody is the payload for the hold and release endpoints.
type seatsBody struct {
	Seats []string `json:"asientos"`
}

// HoldSeats asks the backend to place a temporary hold on the whole
// selection in one call.  The hold is all-or-nothing: if any seat was
// claimed concurrently the backend rejects the request and no seat is
// held.  The rejection surfaces as an *APIError carrying the backend's
// message so the user can adjust and resubmit.
func (c *Client) HoldSeats(ctx context.Context, showtimeID string, seats []string) error {
	return c.post(ctx, "/funciones/"+url.PathEscape(showtimeID)+"/bloquear-asientos", seatsBody{Seats: seats}, nil)
}

// ReleaseSeats drops the temporary holds for the given seats, used when a
// user abandons checkout before paying.
func (c *Client) ReleaseSeats(ctx context.Context, showtimeID string, seats []string) error {
	return c.post(ctx, "/funciones/"+url.PathEscape(showtimeID)+"/liberar-asientos", seatsBody{Seats: seats}, nil)
}
